// pkg/registry/registry.go
package registry

import "edilia-assistant/internal/models"

// catalog lists every actionable intent in classification order. The order is
// load-bearing: classification ties are broken by the first entry encountered,
// and completion checking iterates required fields as declared here.
var catalog = []IntentSpec{
	{
		Type:  models.IntentFeasibility,
		Label: "Studio di Fattibilità",
		Keywords: []string{
			"fattibilità", "studio di fattibilità", "analisi economica",
			"valutazione economica", "costi di costruzione", "margine",
			"rendimento", "sviluppo immobiliare", "costruire", "edificare",
		},
		Required: []Field{
			{Name: "projectName", Label: "nome del progetto", Question: "Come vuoi chiamare il progetto?"},
			{Name: "location", Label: "località", Question: "In quale città o zona si trova il terreno?"},
			{Name: "propertyType", Label: "tipologia immobiliare", Question: "Che tipologia di immobile prevedi (residenziale, commerciale, direzionale...)?"},
			{Name: "totalArea", Label: "superficie totale", Question: "Qual è la superficie totale del lotto in mq?"},
			{Name: "buildableArea", Label: "superficie edificabile", Question: "Quanti mq sono edificabili?"},
			{Name: "budget", Label: "budget", Question: "Qual è il budget disponibile per l'operazione?"},
			{Name: "timeline", Label: "tempistiche", Question: "In quanti mesi vorresti completare l'intervento?"},
		},
		URLPrefix: "/dashboard/feasibility/",
	},
	{
		Type:  models.IntentBusinessPlan,
		Label: "Business Plan",
		Keywords: []string{
			"business plan", "piano industriale", "piano economico",
			"proiezioni", "ricavi", "investitori", "finanziamento",
			"break even", "modello di business",
		},
		Required: []Field{
			{Name: "projectName", Label: "nome del progetto", Question: "Come vuoi chiamare il progetto?"},
			{Name: "businessType", Label: "tipo di attività", Question: "Di che attività si tratta (ristorante, hotel, retail...)?"},
			{Name: "targetMarket", Label: "mercato di riferimento", Question: "A quale clientela ti rivolgi?"},
			{Name: "revenueModel", Label: "modello di ricavi", Question: "Come genererai ricavi (vendita, locazione, abbonamento...)?"},
			{Name: "budget", Label: "budget", Question: "Qual è il capitale iniziale a disposizione?"},
			{Name: "timeline", Label: "tempistiche", Question: "In quanti mesi prevedi di avviare l'attività?"},
		},
		URLPrefix: "/dashboard/business-plans/",
	},
	{
		Type:  models.IntentMarketIntelligence,
		Label: "Ricerca di Mercato",
		Keywords: []string{
			"mercato", "ricerca di mercato", "cercare terreni", "cerco terreni",
			"terreni", "prezzi al metro quadro", "quotazioni", "domanda",
			"offerta", "concorrenza", "compravendite", "andamento del mercato",
		},
		Required: []Field{
			{Name: "location", Label: "località", Question: "In quale città o zona vuoi fare la ricerca?"},
			{Name: "propertyType", Label: "tipologia immobiliare", Question: "Che tipologia di immobile ti interessa (residenziale, commerciale, terreno...)?"},
			{Name: "analysisType", Label: "tipo di analisi", Question: "Che tipo di analisi preferisci (completa, prezzi, domanda, concorrenza)?"},
			{Name: "timeframe", Label: "orizzonte temporale", Question: "Su quale orizzonte temporale (es. 12 mesi)?"},
		},
		URLPrefix: "/dashboard/market-search/",
	},
	{
		Type:  models.IntentDesign,
		Label: "Progetto Design",
		Keywords: []string{
			"design", "design center", "progettazione", "layout",
			"planimetria", "interni", "arredo", "stile", "rendering",
			"ristrutturazione",
		},
		Required: []Field{
			{Name: "projectName", Label: "nome del progetto", Question: "Come vuoi chiamare il progetto?"},
			{Name: "location", Label: "località", Question: "In quale città si trova l'immobile?"},
			{Name: "propertyType", Label: "tipologia immobiliare", Question: "Che tipologia di immobile è (residenziale, commerciale...)?"},
			{Name: "designStyle", Label: "stile", Question: "Che stile preferisci (moderno, classico, industriale...)?"},
			{Name: "layoutType", Label: "layout", Question: "Che layout immagini (open space, trilocale, loft...)?"},
			{Name: "totalArea", Label: "superficie", Question: "Quanti mq ha l'immobile?"},
			{Name: "rooms", Label: "numero di locali", Question: "Quanti locali deve avere?"},
			{Name: "budget", Label: "budget", Question: "Qual è il budget per il progetto?"},
			{Name: "timeline", Label: "tempistiche", Question: "In quanti mesi vorresti completarlo?"},
			{Name: "materials", Label: "materiali", Question: "Ci sono materiali che vuoi usare (legno, vetro, marmo...)?"},
			{Name: "specialRequirements", Label: "requisiti speciali", Question: "Hai requisiti particolari (domotica, fotovoltaico, giardino...)?"},
		},
		URLPrefix: "/dashboard/design/",
	},
}

// Catalog returns every actionable intent in classification order.
func Catalog() []IntentSpec {
	return catalog
}

// Lookup finds the spec for an intent type. The general intent has no spec.
func Lookup(t models.IntentType) (IntentSpec, bool) {
	for _, s := range catalog {
		if s.Type == t {
			return s, true
		}
	}
	return IntentSpec{}, false
}

// FieldLabel resolves a field name to its display label, falling back to the
// raw name for fields outside the schema.
func FieldLabel(t models.IntentType, field string) string {
	if spec, ok := Lookup(t); ok {
		if f, ok := spec.FieldByName(field); ok {
			return f.Label
		}
	}
	return field
}
