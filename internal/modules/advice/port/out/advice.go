package out

import (
	"context"

	profiledomain "gakuplan/internal/modules/profile/domain"
)

// SessionSource provides the current session for recommendation runs.
// Loading is fail-open: implementations return a default session rather
// than an error.
type SessionSource interface {
	Load(ctx context.Context) profiledomain.Session
}
