package interfaces

import (
	"context"

	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
)

type AssessmentRepository interface {
	// Create creates a new assessment, assigning an ID when none is set
	Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error)

	// GetByToken retrieves an assessment by its report token, joined
	// with its lead
	GetByToken(ctx context.Context, token types.ReportToken) (*model.Submission, error)

	// List retrieves all assessments joined with their leads, ordered
	// by creation time
	List(ctx context.Context) ([]*model.Submission, error)
}
