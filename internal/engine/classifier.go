// internal/engine/classifier.go
package engine

import (
	"strings"

	"edilia-assistant/internal/models"
	"edilia-assistant/pkg/registry"
)

// DefaultConfidenceThreshold is the score at or below which a message is
// classified as general conversation.
const DefaultConfidenceThreshold = 0.1

// overridePhrases force a minimum confidence when a strongly indicative
// phrase appears, regardless of how the keyword ratio comes out.
var overridePhrases = []struct {
	phrase string
	intent models.IntentType
}{
	{"studio di fattibilità", models.IntentFeasibility},
	{"analisi di fattibilità", models.IntentFeasibility},
	{"business plan", models.IntentBusinessPlan},
	{"piano industriale", models.IntentBusinessPlan},
	{"cercare terreni", models.IntentMarketIntelligence},
	{"cerco terreni", models.IntentMarketIntelligence},
	{"ricerca di mercato", models.IntentMarketIntelligence},
	{"design center", models.IntentDesign},
}

const overrideConfidence = 0.8

// Classify scores the message against every catalog intent and returns the
// winner with its confidence. Ties break toward the earlier catalog entry.
// Scores at or below the threshold collapse to the general intent.
func Classify(message string) (models.IntentType, float64) {
	return classify(message, DefaultConfidenceThreshold)
}

func classify(message string, threshold float64) (models.IntentType, float64) {
	lower := strings.ToLower(message)

	scores := map[models.IntentType]float64{}
	for _, spec := range registry.Catalog() {
		matched := 0
		for _, kw := range spec.Keywords {
			if strings.Contains(lower, kw) {
				matched++
			}
		}
		scores[spec.Type] = float64(matched) / float64(len(spec.Keywords))
	}
	for _, ov := range overridePhrases {
		if strings.Contains(lower, ov.phrase) && scores[ov.intent] < overrideConfidence {
			scores[ov.intent] = overrideConfidence
		}
	}

	best := models.IntentGeneral
	bestScore := 0.0
	for _, spec := range registry.Catalog() {
		if scores[spec.Type] > bestScore {
			best = spec.Type
			bestScore = scores[spec.Type]
		}
	}
	if bestScore > 1 {
		bestScore = 1
	}
	if bestScore <= threshold {
		return models.IntentGeneral, bestScore
	}
	return best, bestScore
}

// scoreFor computes the keyword ratio of one intent against a message. Used
// when an intent is carried over from a previous turn and only its own score
// matters.
func scoreFor(intent models.IntentType, message string) float64 {
	spec, ok := registry.Lookup(intent)
	if !ok {
		return 0
	}
	lower := strings.ToLower(message)
	matched := 0
	for _, kw := range spec.Keywords {
		if strings.Contains(lower, kw) {
			matched++
		}
	}
	return float64(matched) / float64(len(spec.Keywords))
}
