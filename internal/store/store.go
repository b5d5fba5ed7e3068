package store

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/sulnaq/snti/backend/internal/model/assessment"
)

var ErrNotFound = errors.New("session not found")

// Repository is the session registry contract. The conversation service is
// written against it so backing stores can be swapped without touching the
// state machine.
type Repository interface {
	// GetOrCreate returns the session for an identifier, creating one in
	// the default awaiting-registration state when absent.
	GetOrCreate(ctx context.Context, identifier string) (assessment.Session, error)
	// Upsert replaces the record for session.Identifier, refreshes
	// UpdatedAt, and schedules a best-effort archive write.
	Upsert(ctx context.Context, session assessment.Session) (assessment.Session, error)
	// All enumerates every live session, for operational listings.
	All(ctx context.Context) ([]assessment.Session, error)
	// SweepExpired removes sessions whose CreatedAt is older than maxAge
	// and reports how many were removed.
	SweepExpired(ctx context.Context, maxAge time.Duration) (int, error)
}

// Archive persists full session records keyed by session id. Writes are
// best-effort; the in-memory registry stays the source of truth.
type Archive interface {
	SaveSession(ctx context.Context, session assessment.Session) error
}

// RunSweeper clears expired sessions on a fixed interval until the context
// is cancelled. Run it as a goroutine from main.
func RunSweeper(ctx context.Context, repo Repository, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := repo.SweepExpired(ctx, maxAge)
			if err != nil {
				log.Printf("[store] sweep failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("[store] cleared %d expired sessions", removed)
			}
		}
	}
}
