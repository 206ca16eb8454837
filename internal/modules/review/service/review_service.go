package service

import (
	"context"

	advicedomain "gakuplan/internal/modules/advice/domain"
	catalogdomain "gakuplan/internal/modules/catalog/domain"
	profiledomain "gakuplan/internal/modules/profile/domain"
	"gakuplan/internal/modules/review/domain"
	"gakuplan/internal/modules/review/port/out"
	"gakuplan/internal/platform/clock"
)

// ReviewService closes review cycles. The archived solutions are the
// recommendations active at reset time, recomputed from the same rules
// the advice screen shows.
type ReviewService struct {
	tables    catalogdomain.Tables
	clk       clock.Clock
	store     out.SessionStore
	projector out.CycleProjector
}

func NewReviewService(tables catalogdomain.Tables, clk clock.Clock, store out.SessionStore, projector out.CycleProjector) *ReviewService {
	return &ReviewService{tables: tables, clk: clk, store: store, projector: projector}
}

func (s *ReviewService) ResetToRetry(ctx context.Context) (profiledomain.HistoryItem, error) {
	cur := s.store.Load(ctx)
	solutions := advicedomain.Recommend(cur, s.tables)
	next := domain.Reset(cur, solutions, s.clk.Now())
	_ = s.store.Save(ctx, next)
	entry := next.History[0]
	if s.projector != nil {
		_ = s.projector.Project(ctx, entry)
	}
	return entry, nil
}

func (s *ReviewService) History(ctx context.Context) []profiledomain.HistoryItem {
	return s.store.Load(ctx).History
}

// Reindex rebuilds the cycle read model from the session file.
func (s *ReviewService) Reindex(ctx context.Context) error {
	if s.projector == nil {
		return nil
	}
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	for _, entry := range s.store.Load(ctx).History {
		if err := s.projector.Project(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
