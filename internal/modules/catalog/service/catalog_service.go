package service

import (
	"context"
	"fmt"

	"gakuplan/internal/modules/catalog/domain"
	catalogout "gakuplan/internal/modules/catalog/port/out"
)

// CatalogService resolves the built-in tables against installation
// overrides once, at construction time; the merged tables are immutable
// for the process lifetime.
type CatalogService struct {
	tables domain.Tables
}

func NewCatalogService(ctx context.Context, store catalogout.OverrideStore) (*CatalogService, error) {
	tables := domain.DefaultTables()
	if store != nil {
		overrides, err := store.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load catalog overrides: %w", err)
		}
		tables = tables.Apply(overrides)
	}
	return &CatalogService{tables: tables}, nil
}

func (s *CatalogService) Tables() domain.Tables {
	return s.tables
}

func (s *CatalogService) Subjects() []domain.Subject {
	return domain.Subjects
}

func (s *CatalogService) Nodes() []domain.NodeKey {
	return domain.Nodes
}

func (s *CatalogService) CausesFor(subject domain.Subject) []domain.Cause {
	return domain.CausesFor(subject)
}

func (s *CatalogService) Classify(label string) (domain.Tier, []domain.Tier) {
	tier := s.tables.ClassifyTier(label)
	return tier, domain.FallbackChain(tier)
}
