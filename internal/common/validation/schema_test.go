// internal/common/validation/schema_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edilia-assistant/internal/models"
)

type feasibilityDoc struct {
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	PropertyType   string  `json:"propertyType"`
	TotalArea      int     `json:"totalArea"`
	BuildableArea  int     `json:"buildableArea"`
	Budget         float64 `json:"budget"`
	TimelineMonths int     `json:"timelineMonths"`
}

func validFeasibilityDoc() feasibilityDoc {
	return feasibilityDoc{
		Name:           "Fattibilità Milano",
		Location:       "Milano",
		PropertyType:   "residenziale",
		TotalArea:      1000,
		BuildableArea:  600,
		Budget:         500_000,
		TimelineMonths: 12,
	}
}

func TestValidateCreationPayloadAccepts(t *testing.T) {
	result := ValidateCreationPayload(models.IntentFeasibility, validFeasibilityDoc())
	require.NotNil(t, result)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateCreationPayloadRejectsZeroBudget(t *testing.T) {
	doc := validFeasibilityDoc()
	doc.Budget = 0

	result := ValidateCreationPayload(models.IntentFeasibility, doc)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.ErrorString())
}

func TestValidateCreationPayloadRejectsEmptyStrings(t *testing.T) {
	doc := validFeasibilityDoc()
	doc.Location = ""

	result := ValidateCreationPayload(models.IntentFeasibility, doc)
	assert.False(t, result.Valid)
}

func TestValidateCreationPayloadUnknownIntent(t *testing.T) {
	result := ValidateCreationPayload(models.IntentGeneral, validFeasibilityDoc())
	assert.False(t, result.Valid)
}

func TestValidateCreationPayloadAllIntentsHaveSchemas(t *testing.T) {
	for _, intent := range []models.IntentType{
		models.IntentFeasibility,
		models.IntentBusinessPlan,
		models.IntentMarketIntelligence,
		models.IntentDesign,
	} {
		_, ok := compiledSchemas[intent]
		assert.True(t, ok, "missing schema for %s", intent)
	}
}
