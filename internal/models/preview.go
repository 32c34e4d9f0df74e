// internal/models/preview.go
package models

// PreviewStatus is the lifecycle state of a materialized project preview.
type PreviewStatus string

const (
	StatusCreating PreviewStatus = "creating"
	StatusCreated  PreviewStatus = "created"
	StatusError    PreviewStatus = "error"
)

// PreviewContent is the displayable summary of a created project.
type PreviewContent struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	KeyInfo     []string          `json:"keyInfo"`
	Metrics     map[string]string `json:"metrics,omitempty"`
}

// ProjectPreview wraps the outcome of a materialization. It is immutable after
// construction; ownership transfers to the chat layer for display. A preview
// built from the local fallback path carries a "local-" prefixed ID and is
// indistinguishable from a real creation for the user.
type ProjectPreview struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Type    IntentType     `json:"type"`
	Status  PreviewStatus  `json:"status"`
	Preview PreviewContent `json:"preview"`
	URL     string         `json:"url"`
}
