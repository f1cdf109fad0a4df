package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
)

type assessmentRepository struct {
	store       *Memory
	assessments map[types.AssessmentID]*model.Assessment
	byToken     map[types.ReportToken]types.AssessmentID
	order       []types.AssessmentID
}

func newAssessmentRepository(store *Memory) *assessmentRepository {
	return &assessmentRepository{
		store:       store,
		assessments: make(map[types.AssessmentID]*model.Assessment),
		byToken:     make(map[types.ReportToken]types.AssessmentID),
	}
}

func (r *assessmentRepository) tokenTaken(token types.ReportToken) bool {
	_, taken := r.byToken[token]
	return taken
}

// createLocked inserts an assessment; the store lock must be held
func (r *assessmentRepository) createLocked(assessment *model.Assessment, now time.Time) *model.Assessment {
	created := *assessment
	if created.ID == "" {
		created.ID = types.NewAssessmentID()
	}
	created.CreatedAt = now

	r.assessments[created.ID] = &created
	r.byToken[created.ReportToken] = created.ID
	r.order = append(r.order, created.ID)

	copied := created
	return &copied
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := assessment.ReportToken.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid report token")
	}
	if r.tokenTaken(assessment.ReportToken) {
		return nil, goerr.Wrap(ErrTokenConflict, "report token already in use")
	}

	return r.createLocked(assessment, time.Now().UTC()), nil
}

func (r *assessmentRepository) GetByToken(ctx context.Context, token types.ReportToken) (*model.Submission, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.byToken[token]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found")
	}

	return r.joinLocked(id)
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.Submission, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	submissions := make([]*model.Submission, 0, len(r.order))
	for _, id := range r.order {
		submission, err := r.joinLocked(id)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}

	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].Assessment.CreatedAt.Before(submissions[j].Assessment.CreatedAt)
	})

	return submissions, nil
}

// joinLocked pairs an assessment with its lead; the store lock must be
// held. A missing lead means the atomic write contract was broken, so
// it is surfaced as an error rather than papered over.
func (r *assessmentRepository) joinLocked(id types.AssessmentID) (*model.Submission, error) {
	assessment, ok := r.assessments[id]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
	}

	lead, ok := r.store.lead.leads[assessment.LeadID]
	if !ok {
		return nil, goerr.New("assessment references missing lead",
			goerr.V("assessment_id", id), goerr.V("lead_id", assessment.LeadID))
	}

	assessmentCopy := *assessment
	leadCopy := *lead
	return &model.Submission{
		Assessment: &assessmentCopy,
		Lead:       &leadCopy,
	}, nil
}
