// Package chat exposes the assessment conversation over HTTP.
package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/sulnaq/snti/backend/internal/model/assessment"
	"github.com/sulnaq/snti/backend/internal/service/conversation"
	"github.com/sulnaq/snti/backend/internal/store"
	"github.com/sulnaq/snti/backend/pkg/utils"
)

// Handler serves the conversational endpoint and operational listings.
type Handler struct {
	svc  *conversation.Service
	repo store.Repository
}

// New creates the chat handler.
func New(svc *conversation.Service, repo store.Repository) *Handler {
	return &Handler{svc: svc, repo: repo}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/psychology-chat", h.handleTurn)
	r.Get("/sessions", h.handleListSessions)
}

// handleTurn processes one conversational turn.
func (h *Handler) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req conversation.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Identifier = resolveIdentifier(r, req)

	reply, err := h.svc.HandleTurn(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, conversation.ErrIdentifierRequired),
			errors.Is(err, conversation.ErrMessageRequired):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondError(w, http.StatusInternalServerError, "failed to process message")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, reply)
}

// handleListSessions returns the reduced projection of every live session,
// newest first.
func (h *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.repo.All(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}

	summaries := make([]assessment.Summary, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, session.Summarize())
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"count":    len(summaries),
		"sessions": summaries,
	})
}

// resolveIdentifier picks the session key for a turn. Explicit identifiers
// win; otherwise the registration contact details serve, and as a last
// resort the remote address keeps anonymous callers on one session.
func resolveIdentifier(r *http.Request, req conversation.Request) string {
	if req.Identifier != "" {
		return req.Identifier
	}
	if reg := req.Registration; reg != nil {
		if reg.Email != "" {
			return reg.Email
		}
		if reg.Phone != "" {
			return reg.Phone
		}
	}
	return r.RemoteAddr
}
