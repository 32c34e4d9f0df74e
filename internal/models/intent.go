// internal/models/intent.go
package models

// IntentType identifies the category of domain object the user wants created.
type IntentType string

const (
	IntentFeasibility        IntentType = "feasibility"
	IntentBusinessPlan       IntentType = "business-plan"
	IntentMarketIntelligence IntentType = "market-intelligence"
	IntentDesign             IntentType = "design"
	IntentGeneral            IntentType = "general"
)

// IsActionable reports whether the intent can ever be materialized into a project.
func (t IntentType) IsActionable() bool {
	return t != IntentGeneral && t != ""
}

// RecognizedIntent is the result of processing one user message. It is produced
// fresh on every turn and never mutated afterwards.
type RecognizedIntent struct {
	Type          IntentType `json:"type"`
	Confidence    float64    `json:"confidence"`
	MissingFields []string   `json:"missingFields"`
	CollectedData SlotMap    `json:"collectedData"`
	Suggestions   []string   `json:"suggestions"`
}

// Complete reports whether every required field for the intent has been collected.
func (r *RecognizedIntent) Complete() bool {
	return r.Type.IsActionable() && len(r.MissingFields) == 0
}
