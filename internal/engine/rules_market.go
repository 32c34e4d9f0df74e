// internal/engine/rules_market.go
package engine

import "edilia-assistant/internal/models"

var analysisTypePairs = []enumPair{
	{`complet\w*`, "completa"},
	{`prezz\w*|quotazion\w*|valutazion\w*`, "prezzi"},
	{`domanda`, "domanda"},
	{`offerta`, "offerta"},
	{`concorrenz\w*|competitor\w*`, "concorrenza"},
	{`trend\b|andament\w*`, "trend"},
}

// marketRules fills analysisType and timeframe with defaults when the
// message gives no cue, so a market search is complete as soon as location
// and propertyType are known.
func marketRules() *ruleSet {
	return &ruleSet{
		fields: []fieldSpec{
			{name: "location", rules: locationRules()},
			{name: "propertyType", rules: []fieldRule{enumMatch(propertyTypePairs)}},
			{name: "analysisType", rules: []fieldRule{
				enumMatch(analysisTypePairs),
				fixedValue(models.EnumValue("completa")),
			}},
			{name: "timeframe", rules: append(timelineRules(),
				fixedValue(models.TextValue("12 mesi")),
			)},
		},
	}
}
