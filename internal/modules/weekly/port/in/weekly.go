package in

import (
	"context"

	"gakuplan/internal/modules/weekly/dto"
)

// Usecase manages the seven-day grid and its saved snapshots.
type Usecase interface {
	Grid(ctx context.Context) (dto.GridOutput, error)
	SetCell(ctx context.Context, itemIndex, day int, text string) (dto.GridOutput, error)
	SaveSnapshot(ctx context.Context) (dto.SnapshotOutput, error)
	ListSnapshots(ctx context.Context) ([]dto.SnapshotOutput, error)
	RemoveSnapshot(ctx context.Context, index int) ([]dto.SnapshotOutput, error)
	Reindex(ctx context.Context) error
}
