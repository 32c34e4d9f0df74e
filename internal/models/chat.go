// internal/models/chat.go
package models

// Role of a conversation participant.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is one message in a chat session. The history store owns
// these; the engine only reads them.
type ConversationTurn struct {
	Role    string            `json:"role"`
	Content string            `json:"content"`
	Intent  *RecognizedIntent `json:"intent,omitempty"`
}
