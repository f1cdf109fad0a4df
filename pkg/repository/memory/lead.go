package memory

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
)

type leadRepository struct {
	store *Memory
	leads map[types.LeadID]*model.Lead
}

func newLeadRepository(store *Memory) *leadRepository {
	return &leadRepository{
		store: store,
		leads: make(map[types.LeadID]*model.Lead),
	}
}

// createLocked inserts a lead; the store lock must be held
func (r *leadRepository) createLocked(lead *model.Lead, now time.Time) *model.Lead {
	created := *lead
	if created.ID == "" {
		created.ID = types.NewLeadID()
	}
	created.CreatedAt = now

	r.leads[created.ID] = &created
	copied := created
	return &copied
}

func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.createLocked(lead, time.Now().UTC()), nil
}

func (r *leadRepository) Get(ctx context.Context, id types.LeadID) (*model.Lead, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "lead not found", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	copied := *lead
	return &copied, nil
}
