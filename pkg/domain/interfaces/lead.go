package interfaces

import (
	"context"

	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
)

type LeadRepository interface {
	// Create creates a new lead, assigning an ID when none is set
	Create(ctx context.Context, lead *model.Lead) (*model.Lead, error)

	// Get retrieves a lead by ID
	Get(ctx context.Context, id types.LeadID) (*model.Lead, error)
}
