package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	profiledomain "gakuplan/internal/modules/profile/domain"
	weeklyout "gakuplan/internal/modules/weekly/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteSnapshotProjector struct {
	db *sql.DB
}

func NewSQLiteSnapshotProjector(dbPath string) (weeklyout.SnapshotProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteSnapshotProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteSnapshotProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS week_snapshot_cells (
  snapshot_at TEXT NOT NULL,
  week_start TEXT NOT NULL,
  subject TEXT NOT NULL,
  title TEXT NOT NULL,
  day INTEGER NOT NULL,
  content TEXT NOT NULL,
  PRIMARY KEY (snapshot_at, subject, title, day)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create week_snapshot_cells table: %w", err)
	}
	return nil
}

func (s *SQLiteSnapshotProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM week_snapshot_cells`); err != nil {
		return fmt.Errorf("reset week_snapshot_cells: %w", err)
	}
	return nil
}

func (s *SQLiteSnapshotProjector) Project(ctx context.Context, snapshot profiledomain.WeekSnapshot) error {
	const stmt = `
INSERT INTO week_snapshot_cells (snapshot_at, week_start, subject, title, day, content)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(snapshot_at, subject, title, day) DO UPDATE SET
  week_start=excluded.week_start,
  content=excluded.content;
`
	at := snapshot.At.Format(time.RFC3339)
	for _, row := range snapshot.Rows {
		for day, content := range row.Cells {
			if _, err := s.db.ExecContext(ctx, stmt, at, snapshot.WeekStart, row.Subject, row.Title, day, content); err != nil {
				return fmt.Errorf("project snapshot cell: %w", err)
			}
		}
	}
	return nil
}
