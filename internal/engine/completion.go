// internal/engine/completion.go
package engine

import (
	"edilia-assistant/internal/models"
	"edilia-assistant/pkg/registry"
)

// MissingFields returns the required fields not yet present in the slots, in
// schema order. The general intent has no schema and is never incomplete.
func MissingFields(intent models.IntentType, slots models.SlotMap) []string {
	missing := []string{}
	spec, ok := registry.Lookup(intent)
	if !ok {
		return missing
	}
	for _, f := range spec.Required {
		if slots.Get(f.Name).IsZero() {
			missing = append(missing, f.Name)
		}
	}
	return missing
}
