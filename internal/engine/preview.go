// internal/engine/preview.go
package engine

import (
	"fmt"
	"strings"

	"edilia-assistant/internal/models"
	"edilia-assistant/pkg/registry"
)

// buildPreview renders the outward preview for a materialized project. The
// indicator figures are deterministic estimates derived from the collected
// data, the real ones come from the project service once it processes the
// creation.
func buildPreview(intent models.IntentType, slots models.SlotMap, id string) *models.ProjectPreview {
	spec, _ := registry.Lookup(intent)

	p := &models.ProjectPreview{
		ID:     id,
		Type:   intent,
		Status: models.StatusCreated,
		URL:    spec.URLPrefix + id,
	}

	switch intent {
	case models.IntentFeasibility:
		fillFeasibilityPreview(p, slots)
	case models.IntentBusinessPlan:
		fillBusinessPlanPreview(p, slots)
	case models.IntentMarketIntelligence:
		fillMarketPreview(p, slots)
	case models.IntentDesign:
		fillDesignPreview(p, slots)
	}
	return p
}

func fillFeasibilityPreview(p *models.ProjectPreview, slots models.SlotMap) {
	budget := slots.Get("budget").Money
	costs := budget * 0.65
	revenue := budget * 1.25

	p.Name = slots.Get("projectName").Display()
	p.Preview = models.PreviewContent{
		Title:       "Studio di Fattibilità: " + p.Name,
		Description: fmt.Sprintf("Analisi economica preliminare per %s a %s.", slots.Get("propertyType").Display(), slots.Get("location").Display()),
		KeyInfo: []string{
			"Località: " + slots.Get("location").Display(),
			"Tipologia: " + slots.Get("propertyType").Display(),
			fmt.Sprintf("Area: %d mq", slots.Get("totalArea").Int),
			fmt.Sprintf("Edificabile: %d mq", slots.Get("buildableArea").Int),
			"Tempi: " + slots.Get("timeline").Display(),
		},
		Metrics: map[string]string{
			"Budget":               formatEuro(budget),
			"Costi di costruzione": formatEuro(costs),
			"Ricavi stimati":       formatEuro(revenue),
			"Margine lordo":        formatEuro(revenue - budget),
			"Rendimento atteso":    "25%",
		},
	}
}

func fillBusinessPlanPreview(p *models.ProjectPreview, slots models.SlotMap) {
	budget := slots.Get("budget").Money
	months := timelineMonths(slots)

	p.Name = slots.Get("projectName").Display()
	p.Preview = models.PreviewContent{
		Title:       "Business Plan: " + p.Name,
		Description: fmt.Sprintf("Piano economico per attività %s rivolta a %s.", slots.Get("businessType").Display(), slots.Get("targetMarket").Display()),
		KeyInfo: []string{
			"Attività: " + slots.Get("businessType").Display(),
			"Target: " + slots.Get("targetMarket").Display(),
			"Modello di ricavi: " + slots.Get("revenueModel").Display(),
			"Avvio: " + slots.Get("timeline").Display(),
		},
		Metrics: map[string]string{
			"Investimento iniziale": formatEuro(budget),
			"Ricavi primo anno":     formatEuro(budget * 0.8),
			"Break even":            fmt.Sprintf("%d mesi", months+12),
		},
	}
}

// marketBasePrices are the baseline €/mq estimates per property type used in
// the preview before real market data is available.
var marketBasePrices = map[string]float64{
	"residenziale": 3200,
	"commerciale":  2800,
	"direzionale":  2500,
	"industriale":  900,
	"ricettivo":    2600,
	"agricolo":     120,
	"misto":        2100,
}

func fillMarketPreview(p *models.ProjectPreview, slots models.SlotMap) {
	location := slots.Get("location").Display()
	propertyType := slots.Get("propertyType").Display()

	base, ok := marketBasePrices[strings.ToLower(propertyType)]
	if !ok {
		base = 2000
	}

	p.Name = "Ricerca " + location
	p.Preview = models.PreviewContent{
		Title:       "Ricerca di Mercato: " + location,
		Description: fmt.Sprintf("Analisi %s del mercato %s a %s.", slots.Get("analysisType").Display(), propertyType, location),
		KeyInfo: []string{
			"Località: " + location,
			"Tipologia: " + propertyType,
			"Analisi: " + slots.Get("analysisType").Display(),
			"Periodo: " + slots.Get("timeframe").Display(),
		},
		Metrics: map[string]string{
			"Prezzo medio":     formatEuro(base) + "/mq",
			"Trend annuo":      "+4,2%",
			"Tempo di vendita": "5 mesi",
		},
	}
}

func fillDesignPreview(p *models.ProjectPreview, slots models.SlotMap) {
	budget := slots.Get("budget").Money
	area := slots.Get("totalArea").Int

	metrics := map[string]string{
		"Budget": formatEuro(budget),
		"Durata": slots.Get("timeline").Display(),
	}
	if area > 0 {
		metrics["Costo al mq"] = formatEuro(budget / float64(area))
	}

	p.Name = slots.Get("projectName").Display()
	p.Preview = models.PreviewContent{
		Title:       "Progetto Design: " + p.Name,
		Description: fmt.Sprintf("Progetto %s in stile %s a %s.", slots.Get("layoutType").Display(), slots.Get("designStyle").Display(), slots.Get("location").Display()),
		KeyInfo: []string{
			"Località: " + slots.Get("location").Display(),
			"Stile: " + slots.Get("designStyle").Display(),
			"Layout: " + slots.Get("layoutType").Display(),
			fmt.Sprintf("Area: %d mq", area),
			fmt.Sprintf("Locali: %d", slots.Get("rooms").Int),
		},
		Metrics: metrics,
	}
}
