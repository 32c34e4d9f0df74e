// internal/engine/rules_design.go
package engine

import "edilia-assistant/internal/models"

var designStylePairs = []enumPair{
	{`modern\w*`, "moderno"},
	{`contemporane\w*`, "contemporaneo"},
	{`classic\w*`, "classico"},
	{`minimal\w*`, "minimalista"},
	{`industrial\w*`, "industriale"},
	{`rustic\w*`, "rustico"},
	{`scandinav\w*|nordic\w*`, "scandinavo"},
	{`shabby`, "shabby chic"},
	{`mediterrane\w*`, "mediterraneo"},
}

var layoutTypePairs = []enumPair{
	{`open\s*space`, "open space"},
	{`loft\b`, "loft"},
	{`duplex\b`, "duplex"},
	{`monolocal\w*`, "monolocale"},
	{`bilocal\w*`, "bilocale"},
	{`trilocal\w*`, "trilocale"},
	{`quadrilocal\w*`, "quadrilocale"},
	{`attic\w*`, "attico"},
	{`villett\w*`, "villetta"},
	{`vill\w*`, "villa"},
}

var materialPairs = []enumPair{
	{`legn\w*`, "legno"},
	{`acciaio`, "acciaio"},
	{`vetro`, "vetro"},
	{`cemento|calcestruzzo`, "cemento"},
	{`marmo`, "marmo"},
	{`pietra`, "pietra"},
	{`lateriz\w*`, "laterizio"},
	{`alluminio`, "alluminio"},
	{`cartongesso`, "cartongesso"},
	{`bambù|bamboo`, "bambù"},
	{`sughero`, "sughero"},
}

var specialRequirementPairs = []enumPair{
	{`domotic\w*`, "domotica"},
	{`fotovoltaic\w*|pannelli solari`, "fotovoltaico"},
	{`piscin\w*`, "piscina"},
	{`giardin\w*`, "giardino"},
	{`garage|box auto`, "garage"},
	{`ascensor\w*`, "ascensore"},
	{`terrazz\w*`, "terrazzo"},
	{`classe a\b|efficienza energetica|risparmio energetico`, "efficienza energetica"},
	{`sostenib\w*`, "sostenibilità"},
	{`accessibil\w*`, "accessibilità"},
	{`cantin\w*`, "cantina"},
}

func designRules() *ruleSet {
	return &ruleSet{
		fields: []fieldSpec{
			{name: "projectName", rules: projectNameRules()},
			{name: "location", rules: locationRules()},
			{name: "propertyType", rules: []fieldRule{enumMatch(propertyTypePairs)}},
			{name: "designStyle", rules: []fieldRule{enumMatch(designStylePairs)}},
			{name: "layoutType", rules: []fieldRule{enumMatch(layoutTypePairs)}},
			{name: "totalArea", rules: areaRules()},
			{name: "rooms", rules: []fieldRule{
				captureInt(`(?i)(\d+)\s*(?:local[ie]|stanz[ae]|camer[ae]|van[oi])`),
			}},
			{name: "budget", rules: budgetRules()},
			{name: "timeline", rules: timelineRules()},
			{name: "materials", rules: []fieldRule{collectList(materialPairs)}},
			{name: "specialRequirements", rules: []fieldRule{collectList(specialRequirementPairs)}},
		},
		derive: func(slots models.SlotMap) {
			if slots.Get("projectName").IsZero() && !slots.Get("location").IsZero() {
				slots["projectName"] = models.TextValue("Design " + slots.Get("location").Display())
			}
		},
	}
}
