package service

import (
	"context"
	"fmt"

	advicedomain "gakuplan/internal/modules/advice/domain"
	catalogdomain "gakuplan/internal/modules/catalog/domain"
	profiledomain "gakuplan/internal/modules/profile/domain"
	"gakuplan/internal/modules/strategy/domain"
	"gakuplan/internal/modules/strategy/port/out"
	"gakuplan/internal/platform/clock"
	apperrors "gakuplan/internal/platform/errors"
)

// StrategyService owns plan mutations. Promotion re-runs the
// recommendation rules so the promoted solution is always the one the
// learner currently sees, never a stale copy.
type StrategyService struct {
	tables catalogdomain.Tables
	clk    clock.Clock
	store  out.SessionStore
}

func NewStrategyService(tables catalogdomain.Tables, clk clock.Clock, store out.SessionStore) *StrategyService {
	return &StrategyService{tables: tables, clk: clk, store: store}
}

func (s *StrategyService) List(ctx context.Context) []profiledomain.StrategyItem {
	return s.store.Load(ctx).Strategy
}

func (s *StrategyService) Promote(ctx context.Context, solutionIndex int) ([]profiledomain.StrategyItem, error) {
	cur := s.store.Load(ctx)
	solutions := advicedomain.Recommend(cur, s.tables)
	if solutionIndex < 0 || solutionIndex >= len(solutions) {
		return nil, fmt.Errorf("solution %d of %d: %w", solutionIndex, len(solutions), apperrors.ErrNotFound)
	}
	next, err := domain.Promote(cur, solutions[solutionIndex], s.clk.Now())
	if err != nil {
		return nil, err
	}
	// persistence is best-effort, the session in memory is authoritative
	_ = s.store.Save(ctx, next)
	return next.Strategy, nil
}

func (s *StrategyService) ToggleMonth(ctx context.Context, itemIndex, month int) ([]profiledomain.StrategyItem, error) {
	return s.apply(ctx, func(cur profiledomain.Session) (profiledomain.Session, error) {
		return domain.ToggleMonth(cur, itemIndex, month)
	})
}

func (s *StrategyService) SetWeekly(ctx context.Context, itemIndex int, weekly bool) ([]profiledomain.StrategyItem, error) {
	return s.apply(ctx, func(cur profiledomain.Session) (profiledomain.Session, error) {
		return domain.SetWeekly(cur, itemIndex, weekly)
	})
}

func (s *StrategyService) Remove(ctx context.Context, itemIndex int) ([]profiledomain.StrategyItem, error) {
	return s.apply(ctx, func(cur profiledomain.Session) (profiledomain.Session, error) {
		return domain.Remove(cur, itemIndex)
	})
}

func (s *StrategyService) Clear(ctx context.Context) ([]profiledomain.StrategyItem, error) {
	return s.apply(ctx, func(cur profiledomain.Session) (profiledomain.Session, error) {
		return domain.Clear(cur), nil
	})
}

func (s *StrategyService) apply(ctx context.Context, mutate func(profiledomain.Session) (profiledomain.Session, error)) ([]profiledomain.StrategyItem, error) {
	cur := s.store.Load(ctx)
	next, err := mutate(cur)
	if err != nil {
		return nil, err
	}
	_ = s.store.Save(ctx, next)
	return next.Strategy, nil
}
