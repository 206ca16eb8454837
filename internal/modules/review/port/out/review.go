package out

import (
	"context"

	profiledomain "gakuplan/internal/modules/profile/domain"
)

// SessionStore reads and writes the shared session aggregate. Load is
// fail-open and always yields a usable session.
type SessionStore interface {
	Load(ctx context.Context) profiledomain.Session
	Save(ctx context.Context, s profiledomain.Session) error
}

// CycleProjector maintains a queryable read model of completed review
// cycles. The session file stays the source of truth.
type CycleProjector interface {
	Reset(ctx context.Context) error
	Project(ctx context.Context, entry profiledomain.HistoryItem) error
}
