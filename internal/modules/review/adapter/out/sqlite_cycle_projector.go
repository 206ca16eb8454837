package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	profiledomain "gakuplan/internal/modules/profile/domain"
	reviewout "gakuplan/internal/modules/review/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteCycleProjector struct {
	db *sql.DB
}

func NewSQLiteCycleProjector(dbPath string) (reviewout.CycleProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteCycleProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteCycleProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS review_cycles (
  at TEXT PRIMARY KEY,
  subject TEXT NOT NULL,
  target INTEGER NOT NULL,
  prev_score INTEGER NOT NULL,
  label TEXT,
  exam_type TEXT,
  solutions TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create review_cycles table: %w", err)
	}
	return nil
}

func (s *SQLiteCycleProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM review_cycles`); err != nil {
		return fmt.Errorf("reset review_cycles: %w", err)
	}
	return nil
}

func (s *SQLiteCycleProjector) Project(ctx context.Context, entry profiledomain.HistoryItem) error {
	const stmt = `
INSERT INTO review_cycles (at, subject, target, prev_score, label, exam_type, solutions)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(at) DO UPDATE SET
  subject=excluded.subject,
  target=excluded.target,
  prev_score=excluded.prev_score,
  label=excluded.label,
  exam_type=excluded.exam_type,
  solutions=excluded.solutions;
`
	solutions, err := json.Marshal(entry.Solutions)
	if err != nil {
		return fmt.Errorf("encode solutions: %w", err)
	}
	_, err = s.db.ExecContext(ctx, stmt,
		entry.At.Format(time.RFC3339),
		string(entry.Subject),
		entry.Target,
		entry.PrevScore,
		entry.Label,
		entry.ExamType,
		string(solutions),
	)
	if err != nil {
		return fmt.Errorf("project review cycle: %w", err)
	}
	return nil
}
