package usecase

import (
	"context"

	catalogdomain "gakuplan/internal/modules/catalog/domain"
	profiledomain "gakuplan/internal/modules/profile/domain"
	weeklydomain "gakuplan/internal/modules/weekly/domain"
	"gakuplan/internal/modules/weekly/dto"
	"gakuplan/internal/modules/weekly/service"
)

type Interactor struct {
	svc *service.WeeklyService
}

func NewInteractor(svc *service.WeeklyService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) Grid(ctx context.Context) (dto.GridOutput, error) {
	return toGrid(i.svc.Session(ctx)), nil
}

func (i *Interactor) SetCell(ctx context.Context, itemIndex, day int, text string) (dto.GridOutput, error) {
	next, err := i.svc.SetCell(ctx, itemIndex, day, text)
	if err != nil {
		return dto.GridOutput{}, err
	}
	return toGrid(next), nil
}

func (i *Interactor) SaveSnapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	snapshot, err := i.svc.SaveSnapshot(ctx)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	return toSnapshot(0, snapshot), nil
}

func (i *Interactor) ListSnapshots(ctx context.Context) ([]dto.SnapshotOutput, error) {
	return toSnapshots(i.svc.Session(ctx).WeekSnapshots), nil
}

func (i *Interactor) RemoveSnapshot(ctx context.Context, index int) ([]dto.SnapshotOutput, error) {
	snapshots, err := i.svc.RemoveSnapshot(ctx, index)
	if err != nil {
		return nil, err
	}
	return toSnapshots(snapshots), nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func toGrid(s profiledomain.Session) dto.GridOutput {
	out := dto.GridOutput{
		WeekStart: s.WeeklyStart,
		Dates:     weeklydomain.WeekDates(s.WeeklyStart),
		Labels:    weeklydomain.DayLabels(),
	}
	for idx, item := range s.Strategy {
		if !item.Weekly {
			continue
		}
		cells := make(map[int]string, len(item.WeekCells))
		for day, text := range item.WeekCells {
			cells[day] = text
		}
		out.Rows = append(out.Rows, dto.GridRowOutput{
			Index:   idx,
			Node:    string(item.Node),
			Title:   catalogdomain.NodeTitle(item.Node),
			Subject: string(item.Subject),
			Cells:   cells,
		})
	}
	return out
}

func toSnapshot(index int, snapshot profiledomain.WeekSnapshot) dto.SnapshotOutput {
	out := dto.SnapshotOutput{Index: index, At: snapshot.At, WeekStart: snapshot.WeekStart}
	for _, row := range snapshot.Rows {
		cells := make(map[int]string, len(row.Cells))
		for day, text := range row.Cells {
			cells[day] = text
		}
		out.Rows = append(out.Rows, dto.SnapshotRowOutput{Subject: row.Subject, Title: row.Title, Cells: cells})
	}
	return out
}

func toSnapshots(snapshots []profiledomain.WeekSnapshot) []dto.SnapshotOutput {
	out := make([]dto.SnapshotOutput, 0, len(snapshots))
	for idx, snapshot := range snapshots {
		out = append(out, toSnapshot(idx, snapshot))
	}
	return out
}
