package interfaces

import (
	"context"

	"github.com/tq-lab/maturika/pkg/domain/model"
)

// Repository defines the interface for data persistence
type Repository interface {
	Lead() LeadRepository
	Assessment() AssessmentRepository

	// CreateSubmission persists a lead and its assessment as a single
	// atomic write: either both rows exist afterwards or neither does,
	// and no reader can observe an assessment without its lead.
	CreateSubmission(ctx context.Context, lead *model.Lead, assessment *model.Assessment) (*model.Submission, error)

	Close() error
}
