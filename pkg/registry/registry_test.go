// pkg/registry/registry_test.go
package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edilia-assistant/internal/models"
)

func TestCatalogOrder(t *testing.T) {
	var types []models.IntentType
	for _, spec := range Catalog() {
		types = append(types, spec.Type)
	}
	assert.Equal(t, []models.IntentType{
		models.IntentFeasibility,
		models.IntentBusinessPlan,
		models.IntentMarketIntelligence,
		models.IntentDesign,
	}, types)
}

func TestCatalogEntriesAreWellFormed(t *testing.T) {
	for _, spec := range Catalog() {
		t.Run(string(spec.Type), func(t *testing.T) {
			assert.NotEmpty(t, spec.Label)
			assert.NotEmpty(t, spec.Keywords)
			assert.NotEmpty(t, spec.Required)
			assert.NotEmpty(t, spec.URLPrefix)
			for _, f := range spec.Required {
				assert.NotEmpty(t, f.Name)
				assert.NotEmpty(t, f.Label)
				assert.NotEmpty(t, f.Question)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	spec, ok := Lookup(models.IntentFeasibility)
	require.True(t, ok)
	assert.Equal(t, "Studio di Fattibilità", spec.Label)
	assert.Equal(t, []string{
		"projectName", "location", "propertyType", "totalArea",
		"buildableArea", "budget", "timeline",
	}, spec.RequiredNames())

	_, ok = Lookup(models.IntentGeneral)
	assert.False(t, ok)
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "località", FieldLabel(models.IntentFeasibility, "location"))
	assert.Equal(t, "unknown", FieldLabel(models.IntentFeasibility, "unknown"))
	assert.Equal(t, "location", FieldLabel(models.IntentGeneral, "location"))
}
