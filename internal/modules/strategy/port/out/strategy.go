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
