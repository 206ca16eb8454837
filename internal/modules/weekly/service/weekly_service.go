package service

import (
	"context"

	profiledomain "gakuplan/internal/modules/profile/domain"
	"gakuplan/internal/modules/weekly/domain"
	"gakuplan/internal/modules/weekly/port/out"
	"gakuplan/internal/platform/clock"
)

// WeeklyService owns the grid and snapshot operations. The sqlite
// projection is kept in step on every snapshot save; it is a derived
// index, so a failed projection never fails the save.
type WeeklyService struct {
	clk       clock.Clock
	store     out.SessionStore
	projector out.SnapshotProjector
}

func NewWeeklyService(clk clock.Clock, store out.SessionStore, projector out.SnapshotProjector) *WeeklyService {
	return &WeeklyService{clk: clk, store: store, projector: projector}
}

func (s *WeeklyService) Session(ctx context.Context) profiledomain.Session {
	return s.store.Load(ctx)
}

func (s *WeeklyService) SetCell(ctx context.Context, itemIndex, day int, text string) (profiledomain.Session, error) {
	cur := s.store.Load(ctx)
	next, err := domain.SetCell(cur, itemIndex, day, text)
	if err != nil {
		return profiledomain.Session{}, err
	}
	_ = s.store.Save(ctx, next)
	return next, nil
}

func (s *WeeklyService) SaveSnapshot(ctx context.Context) (profiledomain.WeekSnapshot, error) {
	cur := s.store.Load(ctx)
	next, err := domain.BuildSnapshot(cur, s.clk.Now())
	if err != nil {
		return profiledomain.WeekSnapshot{}, err
	}
	_ = s.store.Save(ctx, next)
	snapshot := next.WeekSnapshots[0]
	if s.projector != nil {
		_ = s.projector.Project(ctx, snapshot)
	}
	return snapshot, nil
}

func (s *WeeklyService) RemoveSnapshot(ctx context.Context, index int) ([]profiledomain.WeekSnapshot, error) {
	cur := s.store.Load(ctx)
	next, err := domain.RemoveSnapshot(cur, index)
	if err != nil {
		return nil, err
	}
	_ = s.store.Save(ctx, next)
	return next.WeekSnapshots, nil
}

// Reindex rebuilds the snapshot read model from the session file.
func (s *WeeklyService) Reindex(ctx context.Context) error {
	if s.projector == nil {
		return nil
	}
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	for _, snapshot := range s.store.Load(ctx).WeekSnapshots {
		if err := s.projector.Project(ctx, snapshot); err != nil {
			return err
		}
	}
	return nil
}
