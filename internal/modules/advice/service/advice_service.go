package service

import (
	"context"

	"gakuplan/internal/modules/advice/domain"
	"gakuplan/internal/modules/advice/port/out"
	catalogdomain "gakuplan/internal/modules/catalog/domain"
	profiledomain "gakuplan/internal/modules/profile/domain"
)

// AdviceService runs the recommendation rules against whatever session is
// currently on disk. It holds the merged catalog tables so a run never
// touches the override store.
type AdviceService struct {
	tables catalogdomain.Tables
	source out.SessionSource
}

func NewAdviceService(tables catalogdomain.Tables, source out.SessionSource) *AdviceService {
	return &AdviceService{tables: tables, source: source}
}

// Advise returns the session the rules ran against, the resolved exam
// tier, and the ordered solutions.
func (s *AdviceService) Advise(ctx context.Context) (profiledomain.Session, catalogdomain.Tier, []profiledomain.Solution) {
	cur := s.source.Load(ctx)
	tier := s.tables.ClassifyTier(cur.ExamLabel)
	return cur, tier, domain.Recommend(cur, s.tables)
}

// Tables exposes the merged catalog for presentation layers that need
// material links alongside the solutions.
func (s *AdviceService) Tables() catalogdomain.Tables {
	return s.tables
}
