package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gakuplan/internal/modules/profile/domain"
	profileout "gakuplan/internal/modules/profile/port/out"
	"gakuplan/internal/platform/clock"
	"gakuplan/internal/platform/isodate"
)

// FileSessionStore keeps the whole aggregate in one pretty-printed JSON
// file. Reads fall back to the default session on any failure; the file is
// a best-effort side channel, never an authority the planner blocks on.
type FileSessionStore struct {
	path  string
	clock clock.Clock
}

func NewFileSessionStore(path string, clk clock.Clock) profileout.SessionStore {
	return &FileSessionStore{path: path, clock: clk}
}

func (s *FileSessionStore) Load(_ context.Context) domain.Session {
	today := isodate.Format(s.clock.Now())
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Default(today)
	}
	session := domain.Session{}
	if err := json.Unmarshal(payload, &session); err != nil {
		return domain.Default(today)
	}
	if session.Subject == "" {
		// an empty file or foreign payload decodes to a zero session;
		// treat it like a corrupt value
		return domain.Default(today)
	}
	if session.Causes == nil {
		session.Causes = map[string]bool{}
	}
	return session
}

func (s *FileSessionStore) Save(_ context.Context, session domain.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
