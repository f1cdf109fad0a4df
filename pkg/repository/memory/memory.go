package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/interfaces"
	"github.com/tq-lab/maturika/pkg/domain/model"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	// one lock shared by both stores so CreateSubmission is atomic
	// against every reader
	mu         sync.RWMutex
	lead       *leadRepository
	assessment *assessmentRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	m := &Memory{}
	m.lead = newLeadRepository(m)
	m.assessment = newAssessmentRepository(m)
	return m
}

func (m *Memory) Lead() interfaces.LeadRepository {
	return m.lead
}

func (m *Memory) Assessment() interfaces.AssessmentRepository {
	return m.assessment
}

func (m *Memory) CreateSubmission(ctx context.Context, lead *model.Lead, assessment *model.Assessment) (*model.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := assessment.ReportToken.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid report token")
	}
	if m.assessment.tokenTaken(assessment.ReportToken) {
		return nil, goerr.Wrap(ErrTokenConflict, "report token already in use")
	}

	now := time.Now().UTC()
	createdLead := m.lead.createLocked(lead, now)

	toCreate := *assessment
	toCreate.LeadID = createdLead.ID
	createdAssessment := m.assessment.createLocked(&toCreate, now)

	return &model.Submission{
		Assessment: createdAssessment,
		Lead:       createdLead,
	}, nil
}

func (m *Memory) Close() error {
	return nil
}
