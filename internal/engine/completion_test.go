// internal/engine/completion_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"edilia-assistant/internal/models"
)

func TestMissingFieldsSchemaOrder(t *testing.T) {
	slots := models.SlotMap{
		"projectName": models.TextValue("Fattibilità Milano"),
		"location":    models.TextValue("Milano"),
		"budget":      models.MoneyValue(500_000),
	}

	missing := MissingFields(models.IntentFeasibility, slots)

	assert.Equal(t, []string{"propertyType", "totalArea", "buildableArea", "timeline"}, missing)
}

func TestMissingFieldsEmptyWhenComplete(t *testing.T) {
	slots := Extract(models.IntentFeasibility, fullFeasibilityMessage)
	assert.Empty(t, MissingFields(models.IntentFeasibility, slots))
}

func TestMissingFieldsGeneralNeverMissing(t *testing.T) {
	missing := MissingFields(models.IntentGeneral, models.SlotMap{})
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}

func TestMissingFieldsZeroValuesCountAsMissing(t *testing.T) {
	slots := models.SlotMap{
		"location":  models.TextValue("   "),
		"totalArea": models.IntValue(0),
	}
	missing := MissingFields(models.IntentFeasibility, slots)
	assert.Contains(t, missing, "location")
	assert.Contains(t, missing, "totalArea")
}

func TestSuggestionsCappedAtMax(t *testing.T) {
	missing := MissingFields(models.IntentFeasibility, models.SlotMap{})
	questions := Suggestions(models.IntentFeasibility, missing, 3)

	assert.Len(t, questions, 3)
	assert.Equal(t, "Come vuoi chiamare il progetto?", questions[0])
}

func TestSuggestionsFollowSchemaOrder(t *testing.T) {
	questions := Suggestions(models.IntentMarketIntelligence, []string{"location"}, 3)
	assert.Equal(t, []string{"In quale città o zona vuoi fare la ricerca?"}, questions)
}

func TestSuggestionsGeneralHasNone(t *testing.T) {
	assert.Empty(t, Suggestions(models.IntentGeneral, []string{"location"}, 3))
}
