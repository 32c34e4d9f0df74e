// internal/engine/respond.go
package engine

import (
	"fmt"
	"strings"

	"edilia-assistant/internal/models"
	"edilia-assistant/pkg/registry"
)

// ComposeReply renders the assistant's natural-language reply for a turn.
// Three shapes: project created, data still missing, general conversation.
func ComposeReply(rec *models.RecognizedIntent, preview *models.ProjectPreview) string {
	if preview != nil {
		return composeCreatedReply(preview)
	}
	if rec.Type.IsActionable() {
		return composeCollectingReply(rec)
	}
	return composeGeneralReply()
}

func composeCreatedReply(preview *models.ProjectPreview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Perfetto! Ho creato %s.\n\n", preview.Preview.Title)
	for _, info := range preview.Preview.KeyInfo {
		fmt.Fprintf(&b, "• %s\n", info)
	}
	fmt.Fprintf(&b, "\nPuoi consultarlo qui: %s", preview.URL)
	return b.String()
}

func composeCollectingReply(rec *models.RecognizedIntent) string {
	spec, _ := registry.Lookup(rec.Type)

	var b strings.Builder
	fmt.Fprintf(&b, "Ottimo, procediamo con %s.", spec.Label)

	if len(rec.MissingFields) > 0 {
		labels := make([]string, 0, len(rec.MissingFields))
		for _, name := range rec.MissingFields {
			labels = append(labels, registry.FieldLabel(rec.Type, name))
		}
		fmt.Fprintf(&b, " Mi mancano ancora: %s.", strings.Join(labels, ", "))
	}
	if len(rec.Suggestions) > 0 {
		b.WriteString("\n")
		for i, q := range rec.Suggestions {
			fmt.Fprintf(&b, "\n%d. %s", i+1, q)
		}
	}
	return b.String()
}

func composeGeneralReply() string {
	return "Ciao! Posso aiutarti con studi di fattibilità, business plan, " +
		"ricerche di mercato e progetti di design. Dimmi pure cosa ti serve."
}
