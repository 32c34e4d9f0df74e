// internal/engine/engine.go
package engine

import (
	"context"
	"strings"
	"time"

	"edilia-assistant/internal/common/logger"
	"edilia-assistant/internal/common/metrics"
	"edilia-assistant/internal/models"
	"edilia-assistant/internal/session"
)

// Config tunes the engine's classification and questioning behavior.
type Config struct {
	ConfidenceThreshold float64
	MaxSuggestions      int
}

// TurnInput is one user message plus the conversation it belongs to. The
// history carries previous turns in chronological order; ConversationID is
// optional and only enables the session store shortcut.
type TurnInput struct {
	ConversationID string
	Message        string
	History        []models.ConversationTurn
}

// TurnOutput is everything a turn produces: the recognized intent with its
// accumulated data, the preview when a project was materialized, and the
// composed reply.
type TurnOutput struct {
	Intent  models.RecognizedIntent
	Preview *models.ProjectPreview
	Reply   string
}

// Engine drives a full conversational turn: intent resolution, slot
// extraction and merging, completion checking, materialization and reply
// composition. Internal failures never escape Process; they degrade to
// logged fallbacks.
type Engine struct {
	cfg      Config
	mat      *Materializer
	sessions session.Store
	logger   logger.Logger
}

func New(cfg Config, mat *Materializer, sessions session.Store, log logger.Logger) *Engine {
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = DefaultMaxSuggestions
	}
	return &Engine{cfg: cfg, mat: mat, sessions: sessions, logger: log}
}

// Process handles one turn. An intent already being pursued is sticky: the
// turn stays on it and keeps collecting data instead of reclassifying.
func (e *Engine) Process(ctx context.Context, in TurnInput) *TurnOutput {
	start := time.Now()

	intentType, confidence, carried := e.resolveIntent(ctx, in)

	current := models.SlotMap{}
	history := models.SlotMap{}
	if intentType.IsActionable() {
		current = Extract(intentType, in.Message)
		history = Extract(intentType, historyText(in))
	}
	merged := MergeTurnSlots(carried, current, history)

	missing := MissingFields(intentType, merged)
	rec := models.RecognizedIntent{
		Type:          intentType,
		Confidence:    confidence,
		MissingFields: missing,
		CollectedData: merged,
		Suggestions:   Suggestions(intentType, missing, e.cfg.MaxSuggestions),
	}

	var preview *models.ProjectPreview
	if intentType.IsActionable() && rec.Complete() {
		preview = e.mat.Materialize(ctx, intentType, merged)
	}

	e.updateSession(ctx, in.ConversationID, intentType, merged, preview != nil)

	metrics.TurnsProcessed.WithLabelValues(string(intentType)).Inc()
	metrics.TurnDuration.WithLabelValues(string(intentType)).Observe(time.Since(start).Seconds())

	return &TurnOutput{
		Intent:  rec,
		Preview: preview,
		Reply:   ComposeReply(&rec, preview),
	}
}

// resolveIntent picks the turn's intent: session state first, then a scan of
// the history for the most recent actionable intent, then fresh
// classification. A sticky intent keeps a high confidence floor because the
// user is answering questions rather than restating keywords.
func (e *Engine) resolveIntent(ctx context.Context, in TurnInput) (models.IntentType, float64, models.SlotMap) {
	if e.sessions != nil && in.ConversationID != "" {
		state, err := e.sessions.Get(ctx, in.ConversationID)
		if err != nil {
			e.logger.WithError(err).Warn("session lookup failed, falling back to history scan", map[string]interface{}{
				"conversation_id": in.ConversationID,
			})
		} else if state != nil && state.Intent.IsActionable() {
			return state.Intent, stickyConfidence(state.Intent, in.Message), state.Slots.Clone()
		}
	}

	for i := len(in.History) - 1; i >= 0; i-- {
		turn := in.History[i]
		if turn.Intent != nil && turn.Intent.Type.IsActionable() {
			return turn.Intent.Type, stickyConfidence(turn.Intent.Type, in.Message), turn.Intent.CollectedData.Clone()
		}
	}

	intentType, confidence := classify(in.Message, e.cfg.ConfidenceThreshold)
	metrics.IntentsClassified.WithLabelValues(string(intentType)).Inc()
	return intentType, confidence, models.SlotMap{}
}

const stickyConfidenceFloor = 0.8

func stickyConfidence(intent models.IntentType, message string) float64 {
	if score := scoreFor(intent, message); score > stickyConfidenceFloor {
		return score
	}
	return stickyConfidenceFloor
}

// historyText concatenates the user side of the conversation plus the
// current message. Assistant turns are excluded so the follow-up questions'
// own example values never get extracted as data.
func historyText(in TurnInput) string {
	var b strings.Builder
	for _, turn := range in.History {
		if turn.Role == models.RoleUser {
			b.WriteString(turn.Content)
			b.WriteString(" ")
		}
	}
	b.WriteString(in.Message)
	return b.String()
}

func (e *Engine) updateSession(ctx context.Context, conversationID string, intent models.IntentType, slots models.SlotMap, materialized bool) {
	if e.sessions == nil || conversationID == "" || !intent.IsActionable() {
		return
	}
	var err error
	if materialized {
		err = e.sessions.Delete(ctx, conversationID)
	} else {
		err = e.sessions.Put(ctx, conversationID, &session.State{Intent: intent, Slots: slots})
	}
	if err != nil {
		e.logger.WithError(err).Warn("session update failed", map[string]interface{}{
			"conversation_id": conversationID,
		})
	}
}
