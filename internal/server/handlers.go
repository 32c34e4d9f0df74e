// internal/server/handlers.go
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"edilia-assistant/internal/engine"
	"edilia-assistant/internal/models"
)

type chatRequest struct {
	ConversationID string                    `json:"conversationId"`
	Message        string                    `json:"message"`
	History        []models.ConversationTurn `json:"history"`
}

type chatResponse struct {
	Reply   string                  `json:"reply"`
	Intent  models.RecognizedIntent `json:"intent"`
	Preview *models.ProjectPreview  `json:"preview,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}

	start := time.Now()
	out := s.engine.Process(r.Context(), engine.TurnInput{
		ConversationID: req.ConversationID,
		Message:        req.Message,
		History:        req.History,
	})
	if s.obs != nil {
		s.obs.RecordTurnProcessed(r.Context(), string(out.Intent.Type))
		s.obs.RecordTurnDuration(r.Context(), time.Since(start), string(out.Intent.Type))
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Reply:   out.Reply,
		Intent:  out.Intent,
		Preview: out.Preview,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
