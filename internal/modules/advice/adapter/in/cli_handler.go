package in

import (
	"context"

	"gakuplan/internal/modules/advice/dto"
	advicein "gakuplan/internal/modules/advice/port/in"
)

type CLIHandler struct {
	usecase advicein.Usecase
}

func NewCLIHandler(usecase advicein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Advise(ctx context.Context) (dto.AdviceOutput, error) {
	return h.usecase.Advise(ctx)
}
