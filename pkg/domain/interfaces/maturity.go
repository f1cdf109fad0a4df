package interfaces

import (
	"context"

	"github.com/tq-lab/maturika/pkg/domain/model"
)

// ModelLoader provides the maturity model. Load is idempotent and
// callers must not mutate the returned value.
type ModelLoader interface {
	Load(ctx context.Context) (*model.MaturityModel, error)
}
