// internal/engine/engine_test.go
package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edilia-assistant/internal/common/logger"
	"edilia-assistant/internal/models"
	"edilia-assistant/internal/session"
)

func newTestEngine(t *testing.T, creators Creators) *Engine {
	t.Helper()
	return New(
		Config{ConfidenceThreshold: 0.1, MaxSuggestions: 3},
		NewMaterializer(creators, logger.NewTestLogger(t)),
		session.NewMemoryStore(time.Hour),
		logger.NewTestLogger(t),
	)
}

func TestProcessFullMessageCreatesProject(t *testing.T) {
	creator := &stubFeasibilityCreator{id: "fs-1"}
	e := newTestEngine(t, Creators{Feasibility: creator})

	out := e.Process(context.Background(), TurnInput{
		ConversationID: "c1",
		Message:        fullFeasibilityMessage,
	})

	assert.Equal(t, models.IntentFeasibility, out.Intent.Type)
	assert.Empty(t, out.Intent.MissingFields)
	require.NotNil(t, out.Preview)
	assert.Equal(t, "fs-1", out.Preview.ID)
	assert.Contains(t, out.Preview.Preview.KeyInfo, "Area: 1000 mq")
	assert.Contains(t, out.Reply, "Ho creato")
	assert.Contains(t, out.Reply, "/dashboard/feasibility/fs-1")
}

func TestProcessIncompleteMessageAsksQuestions(t *testing.T) {
	e := newTestEngine(t, Creators{})

	out := e.Process(context.Background(), TurnInput{
		ConversationID: "c2",
		Message:        "Vorrei uno studio di fattibilità a Milano",
	})

	assert.Equal(t, models.IntentFeasibility, out.Intent.Type)
	assert.NotEmpty(t, out.Intent.MissingFields)
	assert.Nil(t, out.Preview)
	require.NotEmpty(t, out.Intent.Suggestions)
	assert.LessOrEqual(t, len(out.Intent.Suggestions), 3)
	assert.Contains(t, out.Reply, "1. ")
}

func TestProcessMarketDefaults(t *testing.T) {
	e := newTestEngine(t, Creators{})

	out := e.Process(context.Background(), TurnInput{
		ConversationID: "c3",
		Message:        "Cerco terreni",
	})

	assert.Equal(t, models.IntentMarketIntelligence, out.Intent.Type)
	assert.Equal(t, "completa", out.Intent.CollectedData.Get("analysisType").Text)
	assert.Equal(t, "12 mesi", out.Intent.CollectedData.Get("timeframe").Text)
	assert.ElementsMatch(t, []string{"location", "propertyType"}, out.Intent.MissingFields)
	assert.NotEmpty(t, out.Intent.Suggestions)
	assert.Nil(t, out.Preview)
}

func TestProcessStickyIntentAccumulatesAcrossTurns(t *testing.T) {
	creator := &stubFeasibilityCreator{id: "fs-2"}
	e := newTestEngine(t, Creators{Feasibility: creator})
	ctx := context.Background()

	out1 := e.Process(ctx, TurnInput{
		ConversationID: "c4",
		Message:        "Studio di fattibilità per un residenziale a Milano",
	})
	require.Equal(t, models.IntentFeasibility, out1.Intent.Type)
	require.Nil(t, out1.Preview)

	// The follow-up carries no intent keywords at all, yet stays on the
	// feasibility track and accumulates data.
	out2 := e.Process(ctx, TurnInput{
		ConversationID: "c4",
		Message:        "superficie di 1000 mq, 600 mq edificabili",
	})
	assert.Equal(t, models.IntentFeasibility, out2.Intent.Type)
	assert.GreaterOrEqual(t, out2.Intent.Confidence, 0.8)
	assert.Equal(t, "Milano", out2.Intent.CollectedData.Get("location").Text)
	assert.Equal(t, 1000, out2.Intent.CollectedData.Get("totalArea").Int)
	require.Nil(t, out2.Preview)

	out3 := e.Process(ctx, TurnInput{
		ConversationID: "c4",
		Message:        "budget di 500 mila euro, tempi 12 mesi",
	})
	assert.Empty(t, out3.Intent.MissingFields)
	require.NotNil(t, out3.Preview)
	assert.Equal(t, "fs-2", out3.Preview.ID)
}

func TestProcessStickyViaHistoryWithoutSessionStore(t *testing.T) {
	e := New(
		Config{},
		NewMaterializer(Creators{}, logger.NewNoOpLogger()),
		nil,
		logger.NewNoOpLogger(),
	)

	history := []models.ConversationTurn{
		{Role: models.RoleUser, Content: "Studio di fattibilità a Milano"},
		{Role: models.RoleAssistant, Content: "Che tipologia di immobile prevedi?", Intent: &models.RecognizedIntent{
			Type:          models.IntentFeasibility,
			CollectedData: models.SlotMap{"location": models.TextValue("Milano")},
		}},
	}

	out := e.Process(context.Background(), TurnInput{
		Message: "residenziale, 1000 mq",
		History: history,
	})

	assert.Equal(t, models.IntentFeasibility, out.Intent.Type)
	assert.Equal(t, "Milano", out.Intent.CollectedData.Get("location").Text)
	assert.Equal(t, "residenziale", out.Intent.CollectedData.Get("propertyType").Text)
	assert.Equal(t, 1000, out.Intent.CollectedData.Get("totalArea").Int)
}

func TestProcessAssistantTurnsNotReExtracted(t *testing.T) {
	e := New(
		Config{},
		NewMaterializer(Creators{}, logger.NewNoOpLogger()),
		nil,
		logger.NewNoOpLogger(),
	)

	history := []models.ConversationTurn{
		{Role: models.RoleUser, Content: "Cerco terreni"},
		{Role: models.RoleAssistant, Content: "Vuoi cercare a Milano o a Roma?", Intent: &models.RecognizedIntent{
			Type:          models.IntentMarketIntelligence,
			CollectedData: models.SlotMap{},
		}},
	}

	out := e.Process(context.Background(), TurnInput{
		Message: "non ho ancora deciso",
		History: history,
	})

	assert.Equal(t, models.IntentMarketIntelligence, out.Intent.Type)
	assert.True(t, out.Intent.CollectedData.Get("location").IsZero())
}

func TestProcessGeneralConversation(t *testing.T) {
	e := newTestEngine(t, Creators{})

	out := e.Process(context.Background(), TurnInput{
		ConversationID: "c5",
		Message:        "Ciao, come funziona?",
	})

	assert.Equal(t, models.IntentGeneral, out.Intent.Type)
	assert.Empty(t, out.Intent.MissingFields)
	assert.Empty(t, out.Intent.CollectedData)
	assert.Nil(t, out.Preview)
	assert.True(t, strings.Contains(out.Reply, "fattibilità"))
}

func TestProcessSessionClearedAfterMaterialization(t *testing.T) {
	creator := &stubFeasibilityCreator{id: "fs-3"}
	store := session.NewMemoryStore(time.Hour)
	e := New(
		Config{},
		NewMaterializer(Creators{Feasibility: creator}, logger.NewNoOpLogger()),
		store,
		logger.NewNoOpLogger(),
	)
	ctx := context.Background()

	out := e.Process(ctx, TurnInput{ConversationID: "c6", Message: fullFeasibilityMessage})
	require.NotNil(t, out.Preview)

	state, err := store.Get(ctx, "c6")
	require.NoError(t, err)
	assert.Nil(t, state)

	// The next message starts fresh instead of sticking to the finished
	// project.
	next := e.Process(ctx, TurnInput{ConversationID: "c6", Message: "grazie mille!"})
	assert.Equal(t, models.IntentGeneral, next.Intent.Type)
}
