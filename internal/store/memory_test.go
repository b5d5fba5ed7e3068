package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sulnaq/snti/backend/internal/model/assessment"
)

func TestGetOrCreateMintsAwaitingSession(t *testing.T) {
	s := NewMemoryStore(nil)

	session, err := s.GetOrCreate(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.State != assessment.StateAwaitingRegistration {
		t.Fatalf("expected AWAITING_REGISTRATION, got %s", session.State)
	}
	if session.ID != "" {
		t.Fatalf("expected no public id before registration, got %s", session.ID)
	}
	if session.Identifier != "client-1" {
		t.Fatalf("expected identifier client-1, got %s", session.Identifier)
	}
}

func TestGetOrCreateReturnsExisting(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	session, _ := s.GetOrCreate(ctx, "client-1")
	session.State = assessment.StateTestComplete
	session.MBTIType = "INFP"
	if _, err := s.Upsert(ctx, session); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	again, err := s.GetOrCreate(ctx, "client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.State != assessment.StateTestComplete || again.MBTIType != "INFP" {
		t.Fatalf("expected stored session back, got state=%s type=%s", again.State, again.MBTIType)
	}
}

func TestUpsertRefreshesUpdatedAt(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	session, _ := s.GetOrCreate(ctx, "client-1")
	before := session.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	updated, err := s.Upsert(ctx, session)
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if !updated.UpdatedAt.After(before) {
		t.Fatalf("expected UpdatedAt to advance past %v, got %v", before, updated.UpdatedAt)
	}
}

func TestSweepExpiredRemovesOnlyOldSessions(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	fresh, _ := s.GetOrCreate(ctx, "fresh")
	_ = fresh

	stale, _ := s.GetOrCreate(ctx, "stale")
	stale.CreatedAt = time.Now().UTC().Add(-25 * time.Hour)
	s.mu.Lock()
	s.sessions["stale"] = stale
	s.mu.Unlock()

	removed, err := s.SweepExpired(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removal, got %d", removed)
	}

	sessions, _ := s.All(ctx)
	if len(sessions) != 1 || sessions[0].Identifier != "fresh" {
		t.Fatalf("expected only the fresh session to survive, got %+v", sessions)
	}
}

type failingArchive struct{}

func (failingArchive) SaveSession(context.Context, assessment.Session) error {
	return errors.New("disk full")
}

func TestArchiveFailureIsObservableAndNonFatal(t *testing.T) {
	s := NewMemoryStore(failingArchive{})
	ctx := context.Background()

	session, _ := s.GetOrCreate(ctx, "client-1")
	session.ID = "SNTI-000001-1234"
	if _, err := s.Upsert(ctx, session); err != nil {
		t.Fatalf("upsert must not surface archive errors, got %v", err)
	}

	select {
	case err := <-s.ArchiveErrors():
		if err == nil {
			t.Fatal("expected a non-nil archive error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("archive error never published")
	}

	// The in-memory record survives regardless.
	got, err := s.GetOrCreate(ctx, "client-1")
	if err != nil || got.ID != "SNTI-000001-1234" {
		t.Fatalf("expected session to remain live, got %+v err=%v", got, err)
	}
}

func TestArchiveSkipsUnregisteredSessions(t *testing.T) {
	s := NewMemoryStore(failingArchive{})
	ctx := context.Background()

	session, _ := s.GetOrCreate(ctx, "client-1")
	if _, err := s.Upsert(ctx, session); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	select {
	case err := <-s.ArchiveErrors():
		t.Fatalf("no archive write expected for id-less session, got %v", err)
	case <-time.After(100 * time.Millisecond):
	}
}
