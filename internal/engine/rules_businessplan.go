// internal/engine/rules_businessplan.go
package engine

import "edilia-assistant/internal/models"

var businessTypePairs = []enumPair{
	{`ristorant\w*|ristorazione|pizzeri\w*|trattori\w*`, "ristorazione"},
	{`caffetteri\w*|bar\b`, "bar"},
	{`hotel\b|albergh\w*|b&b|bed\s*(?:and|&)\s*breakfast`, "ricettivo"},
	{`negoz\w*|retail|boutique|vendita al dettaglio`, "retail"},
	{`palestr\w*|fitness|wellness`, "fitness"},
	{`coworking|uffici condivisi`, "coworking"},
	{`agenzia immobiliare|intermediazione immobiliare`, "agenzia immobiliare"},
	{`affitti brevi|residence|locazione turistica`, "affitti brevi"},
	{`supermercat\w*|gdo\b`, "gdo"},
}

var targetMarketPairs = []enumPair{
	{`giovani|under 35`, "giovani"},
	{`famigli\w*`, "famiglie"},
	{`professionist\w*|business traveler`, "professionisti"},
	{`turist\w*`, "turisti"},
	{`student\w*`, "studenti"},
	{`aziend\w*|b2b|imprese`, "aziende"},
	{`lusso|alta gamma|premium|luxury`, "alta gamma"},
	{`anzian\w*|senior\b`, "senior"},
}

var revenueModelPairs = []enumPair{
	{`compravendit\w*|vendit\w*`, "vendita"},
	{`affitt\w*|locazion\w*|canon[ei]`, "locazione"},
	{`abbonament\w*|membership`, "abbonamento"},
	{`commission\w*|intermediazion\w*`, "commissioni"},
	{`misto`, "misto"},
}

func businessPlanRules() *ruleSet {
	return &ruleSet{
		fields: []fieldSpec{
			{name: "projectName", rules: projectNameRules()},
			{name: "businessType", rules: []fieldRule{enumMatch(businessTypePairs)}},
			{name: "targetMarket", rules: []fieldRule{enumMatch(targetMarketPairs)}},
			{name: "revenueModel", rules: []fieldRule{enumMatch(revenueModelPairs)}},
			{name: "budget", rules: budgetRules()},
			{name: "timeline", rules: timelineRules()},
		},
		derive: func(slots models.SlotMap) {
			if slots.Get("projectName").IsZero() && !slots.Get("businessType").IsZero() {
				slots["projectName"] = models.TextValue("Business Plan " + titleCase(slots.Get("businessType").Display()))
			}
		},
	}
}
