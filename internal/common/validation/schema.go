package validation

import (
	"fmt"
	"strings"

	"edilia-assistant/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationResult carries the outcome of a payload validation.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (r *ValidationResult) ErrorString() string {
	if r.Valid {
		return ""
	}
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(parts, "; ")
}

// Creation payload schemas, one per actionable intent. Normalized payloads are
// validated against these before any external creation call.
var payloadSchemas = map[models.IntentType]string{
	models.IntentFeasibility: `{
		"type": "object",
		"required": ["name", "location", "propertyType", "totalArea", "buildableArea", "budget", "timelineMonths"],
		"properties": {
			"name":           {"type": "string", "minLength": 1},
			"location":       {"type": "string", "minLength": 1},
			"propertyType":   {"type": "string", "minLength": 1},
			"totalArea":      {"type": "integer", "minimum": 1},
			"buildableArea":  {"type": "integer", "minimum": 1},
			"budget":         {"type": "number", "minimum": 1},
			"timelineMonths": {"type": "integer", "minimum": 1}
		}
	}`,
	models.IntentBusinessPlan: `{
		"type": "object",
		"required": ["name", "businessType", "targetMarket", "revenueModel", "budget", "timelineMonths"],
		"properties": {
			"name":           {"type": "string", "minLength": 1},
			"businessType":   {"type": "string", "minLength": 1},
			"targetMarket":   {"type": "string", "minLength": 1},
			"revenueModel":   {"type": "string", "minLength": 1},
			"budget":         {"type": "number", "minimum": 1},
			"timelineMonths": {"type": "integer", "minimum": 1}
		}
	}`,
	models.IntentMarketIntelligence: `{
		"type": "object",
		"required": ["location", "propertyType", "analysisType", "timeframe"],
		"properties": {
			"location":     {"type": "string", "minLength": 1},
			"propertyType": {"type": "string", "minLength": 1},
			"analysisType": {"type": "string", "minLength": 1},
			"timeframe":    {"type": "string", "minLength": 1}
		}
	}`,
	models.IntentDesign: `{
		"type": "object",
		"required": ["name", "location", "propertyType", "style", "layout", "totalArea", "rooms", "budget", "timelineMonths"],
		"properties": {
			"name":                {"type": "string", "minLength": 1},
			"location":            {"type": "string", "minLength": 1},
			"propertyType":        {"type": "string", "minLength": 1},
			"style":               {"type": "string", "minLength": 1},
			"layout":              {"type": "string", "minLength": 1},
			"totalArea":           {"type": "integer", "minimum": 1},
			"rooms":               {"type": "integer", "minimum": 1},
			"budget":              {"type": "number", "minimum": 1},
			"timelineMonths":      {"type": "integer", "minimum": 1},
			"materials":           {"type": "array", "items": {"type": "string"}},
			"specialRequirements": {"type": "array", "items": {"type": "string"}}
		}
	}`,
}

var compiledSchemas = map[models.IntentType]*gojsonschema.Schema{}

func init() {
	for intent, doc := range payloadSchemas {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
		if err != nil {
			panic(fmt.Sprintf("invalid payload schema for %s: %v", intent, err))
		}
		compiledSchemas[intent] = schema
	}
}

// ValidateCreationPayload validates a normalized creation payload against the
// intent's JSON schema.
func ValidateCreationPayload(intent models.IntentType, payload interface{}) *ValidationResult {
	schema, ok := compiledSchemas[intent]
	if !ok {
		return &ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "intent", Message: fmt.Sprintf("no payload schema for intent %q", intent)}},
		}
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(payload))
	if err != nil {
		return &ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "payload", Message: err.Error()}},
		}
	}

	if result.Valid() {
		return &ValidationResult{Valid: true}
	}

	out := &ValidationResult{Valid: false}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return out
}
