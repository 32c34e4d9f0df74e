// internal/server/handlers_test.go
package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edilia-assistant/internal/common/config"
	"edilia-assistant/internal/common/logger"
	"edilia-assistant/internal/engine"
	"edilia-assistant/internal/models"
	"edilia-assistant/internal/session"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	eng := engine.New(
		engine.Config{},
		engine.NewMaterializer(engine.Creators{}, logger.NewTestLogger(t)),
		session.NewMemoryStore(time.Hour),
		logger.NewTestLogger(t),
	)
	return New(config.ServerConfig{Address: ":0"}, eng, nil, logger.NewTestLogger(t))
}

func postChat(t *testing.T, s *Server, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleChat(t *testing.T) {
	s := newTestServer(t)

	rec := postChat(t, s, chatRequest{
		ConversationID: "c1",
		Message:        "Vorrei uno studio di fattibilità a Milano",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.IntentFeasibility, resp.Intent.Type)
	assert.NotEmpty(t, resp.Reply)
	assert.Nil(t, resp.Preview)
	assert.NotEmpty(t, resp.Intent.Suggestions)
}

func TestHandleChatCompleteMessageReturnsPreview(t *testing.T) {
	s := newTestServer(t)

	rec := postChat(t, s, chatRequest{
		ConversationID: "c2",
		Message: "Studio di fattibilità per un progetto residenziale a Milano, " +
			"area di 1000 mq di cui 600 mq edificabili, budget di 500 mila euro, tempi 12 mesi",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Preview)
	assert.Equal(t, models.StatusCreated, resp.Preview.Status)
	assert.Contains(t, resp.Preview.Preview.KeyInfo, "Area: 1000 mq")
}

func TestHandleChatRejectsEmptyMessage(t *testing.T) {
	s := newTestServer(t)

	rec := postChat(t, s, chatRequest{ConversationID: "c3", Message: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleChatRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
