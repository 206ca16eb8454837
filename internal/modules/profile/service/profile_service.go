package service

import (
	"context"
	"fmt"

	catalog "gakuplan/internal/modules/catalog/domain"
	"gakuplan/internal/modules/profile/domain"
	profileout "gakuplan/internal/modules/profile/port/out"
	apperrors "gakuplan/internal/platform/errors"
	"gakuplan/internal/platform/id"
	"gakuplan/internal/platform/isodate"
)

type ProfileService struct {
	idGen id.Generator
	store profileout.SessionStore
}

func NewProfileService(idGen id.Generator, store profileout.SessionStore) *ProfileService {
	return &ProfileService{idGen: idGen, store: store}
}

func (s *ProfileService) Load(ctx context.Context) domain.Session {
	return s.store.Load(ctx)
}

// apply runs a value-semantic mutation over the stored aggregate.
// Persistence is best effort: a failed write leaves the returned in-memory
// session authoritative and the next successful write catches up.
func (s *ProfileService) apply(ctx context.Context, mutate func(domain.Session) domain.Session) domain.Session {
	next := mutate(s.store.Load(ctx))
	_ = s.store.Save(ctx, next)
	return next
}

func (s *ProfileService) SetSubject(ctx context.Context, subject catalog.Subject) (domain.Session, error) {
	if err := subject.Validate(); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return s.apply(ctx, func(cur domain.Session) domain.Session {
		return cur.WithSubject(subject)
	}), nil
}

func (s *ProfileService) SetTarget(ctx context.Context, target int) domain.Session {
	return s.apply(ctx, func(cur domain.Session) domain.Session { return cur.WithTarget(target) })
}

func (s *ProfileService) SetScore(ctx context.Context, score int) domain.Session {
	return s.apply(ctx, func(cur domain.Session) domain.Session { return cur.WithScore(score) })
}

func (s *ProfileService) SetExamYear(ctx context.Context, year int) domain.Session {
	return s.apply(ctx, func(cur domain.Session) domain.Session { return cur.WithExamYear(year) })
}

func (s *ProfileService) SetExamType(ctx context.Context, examType string) domain.Session {
	return s.apply(ctx, func(cur domain.Session) domain.Session { return cur.WithExamType(examType) })
}

func (s *ProfileService) SetExamLabel(ctx context.Context, label string) domain.Session {
	return s.apply(ctx, func(cur domain.Session) domain.Session { return cur.WithExamLabel(label) })
}

func (s *ProfileService) SetStudyStart(ctx context.Context, date string) (domain.Session, error) {
	if !isodate.Valid(date) {
		return domain.Session{}, fmt.Errorf("%w: study start %q is not a date", apperrors.ErrInvalidInput, date)
	}
	return s.apply(ctx, func(cur domain.Session) domain.Session { return cur.WithStudyStart(date) }), nil
}

func (s *ProfileService) SetWeeklyStart(ctx context.Context, date string) (domain.Session, error) {
	if !isodate.Valid(date) {
		return domain.Session{}, fmt.Errorf("%w: weekly start %q is not a date", apperrors.ErrInvalidInput, date)
	}
	return s.apply(ctx, func(cur domain.Session) domain.Session { return cur.WithWeeklyStart(date) }), nil
}

func (s *ProfileService) ToggleCause(ctx context.Context, key string, selected bool) (domain.Session, error) {
	cur := s.store.Load(ctx)
	// the generic three keys stay valid for every subject; the English
	// advice path keys off "practice" even though the English checklist
	// names finer-grained causes
	known := key == "unlearned" || key == "practice" || key == "format"
	if !known {
		for _, cause := range catalog.CausesFor(cur.Subject) {
			if cause.Key == key {
				known = true
				break
			}
		}
	}
	if !known {
		return domain.Session{}, fmt.Errorf("%w: cause %q is not registered for %s", apperrors.ErrInvalidInput, key, cur.Subject)
	}
	next := cur.WithCause(key, selected)
	_ = s.store.Save(ctx, next)
	return next, nil
}

func (s *ProfileService) SetMemo(ctx context.Context, memo string) domain.Session {
	return s.apply(ctx, func(cur domain.Session) domain.Session { return cur.WithMemo(memo) })
}

func (s *ProfileService) SetPurpose(ctx context.Context, note string) domain.Session {
	return s.apply(ctx, func(cur domain.Session) domain.Session { return cur.WithPurpose(note) })
}

func (s *ProfileService) AddGoal(ctx context.Context, title string) (domain.Session, domain.Goal, error) {
	if title == "" {
		return domain.Session{}, domain.Goal{}, fmt.Errorf("%w: goal title is required", apperrors.ErrInvalidInput)
	}
	goal := domain.Goal{ID: s.idGen.New(), Title: title}
	next := s.apply(ctx, func(cur domain.Session) domain.Session { return cur.AddGoal(goal) })
	return next, goal, nil
}

func (s *ProfileService) SetGoalProgress(ctx context.Context, goalID string, progress int) (domain.Session, error) {
	cur := s.store.Load(ctx)
	found := false
	for _, g := range cur.Goals {
		if g.ID == goalID {
			found = true
			break
		}
	}
	if !found {
		return domain.Session{}, fmt.Errorf("goal %s: %w", goalID, apperrors.ErrNotFound)
	}
	next := cur.WithGoalProgress(goalID, progress)
	_ = s.store.Save(ctx, next)
	return next, nil
}

func (s *ProfileService) RemoveGoal(ctx context.Context, goalID string) domain.Session {
	return s.apply(ctx, func(cur domain.Session) domain.Session { return cur.RemoveGoal(goalID) })
}
