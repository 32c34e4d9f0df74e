// internal/session/store.go
package session

import (
	"context"
	"time"

	"edilia-assistant/internal/models"
)

// State is what the engine remembers about a conversation between turns: the
// intent being pursued and the data collected so far.
type State struct {
	Intent    models.IntentType `json:"intent"`
	Slots     models.SlotMap    `json:"slots"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Store persists conversation state keyed by conversation id. Get returns
// (nil, nil) when no state exists.
type Store interface {
	Get(ctx context.Context, conversationID string) (*State, error)
	Put(ctx context.Context, conversationID string, state *State) error
	Delete(ctx context.Context, conversationID string) error
}
