package out

import (
	"context"

	"gakuplan/internal/modules/catalog/domain"
)

// OverrideStore loads catalog overrides supplied by the surrounding
// installation. A missing override file is not an error; implementations
// return zero Overrides in that case.
type OverrideStore interface {
	Load(ctx context.Context) (domain.Overrides, error)
}
