// internal/engine/suggest.go
package engine

import (
	"edilia-assistant/internal/models"
	"edilia-assistant/pkg/registry"
)

// DefaultMaxSuggestions caps how many follow-up questions a single reply
// carries.
const DefaultMaxSuggestions = 3

// Suggestions turns the first missing fields into their follow-up questions,
// capped at max. Question order follows the schema's field order.
func Suggestions(intent models.IntentType, missing []string, max int) []string {
	if max <= 0 {
		max = DefaultMaxSuggestions
	}
	spec, ok := registry.Lookup(intent)
	if !ok {
		return nil
	}
	var questions []string
	for _, name := range missing {
		if len(questions) == max {
			break
		}
		if f, ok := spec.FieldByName(name); ok {
			questions = append(questions, f.Question)
		}
	}
	return questions
}
