// internal/engine/extractor_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edilia-assistant/internal/models"
)

const fullFeasibilityMessage = "Studio di fattibilità per un progetto residenziale a Milano, " +
	"area di 1000 mq di cui 600 mq edificabili, budget di 500 mila euro, tempi 12 mesi"

func TestExtractFeasibility(t *testing.T) {
	slots := Extract(models.IntentFeasibility, fullFeasibilityMessage)

	assert.Equal(t, "Milano", slots.Get("location").Text)
	assert.Equal(t, "residenziale", slots.Get("propertyType").Text)
	assert.Equal(t, 1000, slots.Get("totalArea").Int)
	assert.Equal(t, 600, slots.Get("buildableArea").Int)
	assert.Equal(t, 500_000.0, slots.Get("budget").Money)
	assert.Equal(t, "12 mesi", slots.Get("timeline").Text)
	assert.Equal(t, "Fattibilità Milano", slots.Get("projectName").Text)
}

func TestExtractIsIdempotent(t *testing.T) {
	first := Extract(models.IntentFeasibility, fullFeasibilityMessage)
	second := Extract(models.IntentFeasibility, fullFeasibilityMessage)
	assert.Equal(t, first, second)
}

func TestExtractGeneralReturnsNothing(t *testing.T) {
	slots := Extract(models.IntentGeneral, fullFeasibilityMessage)
	assert.Empty(t, slots)
}

func TestExtractBudgetVariants(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    float64
	}{
		{"labelled with scale", "budget di 500 mila", 500_000},
		{"currency symbol", "ho a disposizione €750.000", 750_000},
		{"millions", "investimento di 1,5 milioni di euro", 1_500_000},
		{"euro suffix", "circa 300000 euro", 300_000},
		{"bare digits fallback", "diciamo 250000 per tutto", 250_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := Extract(models.IntentFeasibility, tt.message)
			require.False(t, slots.Get("budget").IsZero(), "budget not extracted")
			assert.Equal(t, tt.want, slots.Get("budget").Money)
		})
	}
}

func TestExtractLocationVariants(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"known city canonicalized", "un terreno a milano", "Milano"},
		{"neighborhood phrase", "zona navigli", "navigli"},
		{"preposition capture", "un immobile a Legnano", "Legnano"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := Extract(models.IntentFeasibility, tt.message)
			assert.Equal(t, tt.want, slots.Get("location").Text)
		})
	}
}

func TestExtractBusinessPlan(t *testing.T) {
	slots := Extract(models.IntentBusinessPlan,
		"Business plan per un ristorante rivolto alle famiglie, ricavi dalla vendita, "+
			"capitale 200 mila euro, avvio in 8 mesi")

	assert.Equal(t, "ristorazione", slots.Get("businessType").Text)
	assert.Equal(t, "famiglie", slots.Get("targetMarket").Text)
	assert.Equal(t, "vendita", slots.Get("revenueModel").Text)
	assert.Equal(t, 200_000.0, slots.Get("budget").Money)
	assert.Equal(t, "8 mesi", slots.Get("timeline").Text)
	assert.Equal(t, "Business Plan Ristorazione", slots.Get("projectName").Text)
}

func TestExtractMarketDefaults(t *testing.T) {
	slots := Extract(models.IntentMarketIntelligence, "Cerco terreni")

	assert.True(t, slots.Get("location").IsZero())
	assert.True(t, slots.Get("propertyType").IsZero())
	assert.Equal(t, "completa", slots.Get("analysisType").Text)
	assert.Equal(t, "12 mesi", slots.Get("timeframe").Text)
}

func TestExtractMarketExplicitAnalysis(t *testing.T) {
	slots := Extract(models.IntentMarketIntelligence,
		"analisi dei prezzi residenziali a Bologna negli ultimi 24 mesi")

	assert.Equal(t, "Bologna", slots.Get("location").Text)
	assert.Equal(t, "residenziale", slots.Get("propertyType").Text)
	assert.Equal(t, "prezzi", slots.Get("analysisType").Text)
	assert.Equal(t, "24 mesi", slots.Get("timeframe").Text)
}

func TestExtractDesign(t *testing.T) {
	slots := Extract(models.IntentDesign,
		"Progetto design per un trilocale moderno a Torino, 90 mq, 3 locali, "+
			"budget 80 mila euro, 6 mesi, con legno e vetro, domotica e fotovoltaico")

	assert.Equal(t, "Torino", slots.Get("location").Text)
	assert.Equal(t, "moderno", slots.Get("designStyle").Text)
	assert.Equal(t, "trilocale", slots.Get("layoutType").Text)
	assert.Equal(t, 90, slots.Get("totalArea").Int)
	assert.Equal(t, 3, slots.Get("rooms").Int)
	assert.Equal(t, 80_000.0, slots.Get("budget").Money)
	assert.Equal(t, []string{"legno", "vetro"}, slots.Get("materials").List)
	assert.Equal(t, []string{"domotica", "fotovoltaico"}, slots.Get("specialRequirements").List)
}

func TestExtractQuotedProjectName(t *testing.T) {
	slots := Extract(models.IntentFeasibility, `il progetto "Borgo Verde" a Verona`)
	assert.Equal(t, "Borgo Verde", slots.Get("projectName").Text)
}

func TestExtractBuildableAreaNeedsContext(t *testing.T) {
	slots := Extract(models.IntentFeasibility, "un lotto di 1000 mq a Parma")
	assert.Equal(t, 1000, slots.Get("totalArea").Int)
	assert.True(t, slots.Get("buildableArea").IsZero())
}
