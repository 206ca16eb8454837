package in

import (
	"context"

	"gakuplan/internal/modules/weekly/dto"
	weeklyin "gakuplan/internal/modules/weekly/port/in"
)

type CLIHandler struct {
	usecase weeklyin.Usecase
}

func NewCLIHandler(usecase weeklyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Grid(ctx context.Context) (dto.GridOutput, error) {
	return h.usecase.Grid(ctx)
}

func (h CLIHandler) SetCell(ctx context.Context, itemIndex, day int, text string) (dto.GridOutput, error) {
	return h.usecase.SetCell(ctx, itemIndex, day, text)
}

func (h CLIHandler) SaveSnapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.SaveSnapshot(ctx)
}

func (h CLIHandler) ListSnapshots(ctx context.Context) ([]dto.SnapshotOutput, error) {
	return h.usecase.ListSnapshots(ctx)
}

func (h CLIHandler) RemoveSnapshot(ctx context.Context, index int) ([]dto.SnapshotOutput, error) {
	return h.usecase.RemoveSnapshot(ctx, index)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
