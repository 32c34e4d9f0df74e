// internal/engine/extractor.go
package engine

import "edilia-assistant/internal/models"

// Extract runs the intent's ordered rule set over the text and returns the
// fields that matched. Extraction is deterministic and idempotent: the same
// text always yields the same slots. The general intent extracts nothing.
func Extract(intent models.IntentType, text string) models.SlotMap {
	slots := models.SlotMap{}
	rs, ok := ruleSets[intent]
	if !ok {
		return slots
	}
	for _, f := range rs.fields {
		for _, rule := range f.rules {
			v, matched := rule(text)
			if matched && !v.IsZero() {
				slots[f.name] = v
				break
			}
		}
	}
	if rs.derive != nil {
		rs.derive(slots)
	}
	return slots
}
