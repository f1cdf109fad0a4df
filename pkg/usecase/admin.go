package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/model"
)

// ListSubmissions returns every stored submission joined with its
// lead, oldest first. Admin surface only; callers must have passed the
// admin gate already.
func (uc *UseCases) ListSubmissions(ctx context.Context) ([]*model.Submission, error) {
	submissions, err := uc.repo.Assessment().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list submissions")
	}
	return submissions, nil
}
