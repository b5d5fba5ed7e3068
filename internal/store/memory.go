package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/sulnaq/snti/backend/internal/model/assessment"
)

// MemoryStore implements Repository with a mutex-guarded map. Archive writes
// happen on a background goroutine per upsert; failures are logged and
// published on an error channel that callers may observe or ignore.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]assessment.Session

	archive     Archive
	archiveErrs chan error
}

// NewMemoryStore builds an empty registry. archive may be nil, in which case
// upserts skip persistence entirely.
func NewMemoryStore(archive Archive) *MemoryStore {
	return &MemoryStore{
		sessions:    make(map[string]assessment.Session),
		archive:     archive,
		archiveErrs: make(chan error, 16),
	}
}

// ArchiveErrors exposes persistence failures. The channel is buffered and
// drops when full, so ignoring it never stalls an upsert.
func (s *MemoryStore) ArchiveErrors() <-chan error {
	return s.archiveErrs
}

// GetOrCreate returns the session for an identifier, minting a fresh
// awaiting-registration record when none exists. New sessions have no public
// id yet; one is minted at registration.
func (s *MemoryStore) GetOrCreate(_ context.Context, identifier string) (assessment.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[identifier]; ok {
		return session, nil
	}

	now := time.Now().UTC()
	session := assessment.Session{
		Identifier: identifier,
		State:      assessment.StateAwaitingRegistration,
		Answers:    []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.sessions[identifier] = session
	log.Printf("[store] new session for identifier=%s", truncate(identifier, 20))
	return session, nil
}

// Upsert replaces the stored record and refreshes UpdatedAt, then schedules
// a best-effort archive write of the new record.
func (s *MemoryStore) Upsert(ctx context.Context, session assessment.Session) (assessment.Session, error) {
	session.UpdatedAt = time.Now().UTC()

	s.mu.Lock()
	s.sessions[session.Identifier] = session
	s.mu.Unlock()

	s.scheduleArchive(session)
	return session, nil
}

// scheduleArchive fires the persistence write in the background. Unregistered
// sessions have no id to key the record by and are skipped.
func (s *MemoryStore) scheduleArchive(session assessment.Session) {
	if s.archive == nil || session.ID == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.archive.SaveSession(ctx, session); err != nil {
			log.Printf("[store] archive write failed for session=%s: %v", session.ID, err)
			select {
			case s.archiveErrs <- err:
			default:
			}
		}
	}()
}

// All snapshots every live session.
func (s *MemoryStore) All(_ context.Context) ([]assessment.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]assessment.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// SweepExpired drops sessions created more than maxAge ago.
func (s *MemoryStore) SweepExpired(_ context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for identifier, session := range s.sessions {
		if session.CreatedAt.Before(cutoff) {
			delete(s.sessions, identifier)
			removed++
		}
	}
	return removed, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
