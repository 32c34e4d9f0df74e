// internal/engine/rules_feasibility.go
package engine

import "edilia-assistant/internal/models"

func feasibilityRules() *ruleSet {
	return &ruleSet{
		fields: []fieldSpec{
			{name: "projectName", rules: projectNameRules()},
			{name: "location", rules: locationRules()},
			{name: "propertyType", rules: []fieldRule{enumMatch(propertyTypePairs)}},
			{name: "totalArea", rules: areaRules()},
			{name: "buildableArea", rules: []fieldRule{
				captureInt(`(?i)(?:superficie\s+)?(?:edificabil\w+|costruibil\w+)\s*(?:di\s+)?([\d.]+)\s*(?:mq|m2|metri quadri|metri quadrati)`),
				captureInt(`(?i)([\d.]+)\s*(?:mq|m2|metri quadri|metri quadrati)\s+(?:edificabil\w+|costruibil\w+)`),
			}},
			{name: "budget", rules: budgetRules()},
			{name: "timeline", rules: timelineRules()},
		},
		derive: func(slots models.SlotMap) {
			if slots.Get("projectName").IsZero() && !slots.Get("location").IsZero() {
				slots["projectName"] = models.TextValue("Fattibilità " + slots.Get("location").Display())
			}
		},
	}
}
