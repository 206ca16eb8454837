package out

import (
	"context"

	"gakuplan/internal/modules/profile/domain"
)

// SessionStore persists the whole session aggregate. Load never fails:
// a missing or unreadable value yields the default session, so the planner
// always starts from a usable state.
type SessionStore interface {
	Load(ctx context.Context) domain.Session
	Save(ctx context.Context, session domain.Session) error
}
