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

// SnapshotProjector maintains a queryable read model of saved week
// snapshots. The session file stays the source of truth; a projection can
// always be rebuilt from it.
type SnapshotProjector interface {
	Reset(ctx context.Context) error
	Project(ctx context.Context, snapshot profiledomain.WeekSnapshot) error
}
