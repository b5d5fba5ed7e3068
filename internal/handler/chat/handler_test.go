package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sulnaq/snti/backend/internal/question"
	"github.com/sulnaq/snti/backend/internal/service/conversation"
	"github.com/sulnaq/snti/backend/internal/store"
)

func setupRouter() (*chi.Mux, *store.MemoryStore) {
	repo := store.NewMemoryStore(nil)
	svc := conversation.NewService(
		repo,
		question.NewStaticProvider(),
		nil,
		nil,
		rand.New(rand.NewSource(1)),
		conversation.Config{},
	)
	handler := New(svc, repo)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, repo
}

func postTurn(t *testing.T, r *chi.Mux, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/psychology-chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestTurnInvalidBody(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/psychology-chat", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestTurnMissingMessage(t *testing.T) {
	r, _ := setupRouter()

	resp := postTurn(t, r, map[string]any{"identifier": "client-1"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestTurnPromptsForRegistration(t *testing.T) {
	r, _ := setupRouter()

	resp := postTurn(t, r, map[string]any{"identifier": "client-1", "message": "hello"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var reply conversation.Reply
	if err := json.Unmarshal(resp.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if reply.Key != conversation.KeyRegistrationRequired {
		t.Fatalf("expected registration.required, got %s", reply.Key)
	}
}

func TestTurnWithRegistration(t *testing.T) {
	r, _ := setupRouter()

	resp := postTurn(t, r, map[string]any{
		"identifier": "client-1",
		"message":    "hello",
		"registration": map[string]any{
			"name":  "Bilal",
			"phone": "03009998877",
			"age":   25,
		},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var reply conversation.Reply
	if err := json.Unmarshal(resp.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if reply.Key != conversation.KeyIntroWelcome {
		t.Fatalf("expected intro.welcome, got %s", reply.Key)
	}
	if reply.SessionID == "" {
		t.Fatal("expected a session id after registration")
	}
}

func TestIdentifierFallsBackToRegistrationContact(t *testing.T) {
	r, repo := setupRouter()

	resp := postTurn(t, r, map[string]any{
		"message": "hello",
		"registration": map[string]any{
			"name":  "Bilal",
			"phone": "03009998877",
			"email": "bilal@example.com",
			"age":   30,
		},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	sessions, _ := repo.All(context.Background())
	if len(sessions) != 1 || sessions[0].Identifier != "bilal@example.com" {
		t.Fatalf("expected session keyed by email, got %+v", sessions)
	}
}

func TestListSessions(t *testing.T) {
	r, _ := setupRouter()

	postTurn(t, r, map[string]any{"identifier": "client-1", "message": "hello"})
	postTurn(t, r, map[string]any{"identifier": "client-2", "message": "hello"})

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var listing struct {
		Count    int               `json:"count"`
		Sessions []json.RawMessage `json:"sessions"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if listing.Count != 2 || len(listing.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got count=%d len=%d", listing.Count, len(listing.Sessions))
	}
}
