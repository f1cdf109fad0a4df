package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/interfaces"
	"github.com/tq-lab/maturika/pkg/domain/model"
)

type Firestore struct {
	client     *firestore.Client
	lead       *leadRepository
	assessment *assessmentRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, used by tests to
// isolate runs against a shared project
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.lead.collectionPrefix = prefix
		f.assessment.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:     client,
		lead:       newLeadRepository(client),
		assessment: newAssessmentRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Lead() interfaces.LeadRepository {
	return f.lead
}

func (f *Firestore) Assessment() interfaces.AssessmentRepository {
	return f.assessment
}

// CreateSubmission writes the lead and its assessment in a single
// Firestore transaction. The transaction also asserts that no existing
// assessment holds the same report token, which backstops the token
// generator's entropy guarantee.
func (f *Firestore) CreateSubmission(ctx context.Context, lead *model.Lead, assessment *model.Assessment) (*model.Submission, error) {
	if err := assessment.ReportToken.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid report token")
	}

	now := time.Now().UTC()
	leadDoc := f.lead.newDocument(lead, now)
	assessmentDoc, err := f.assessment.newDocument(assessment, leadDoc.ID, now)
	if err != nil {
		return nil, err
	}

	err = f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := f.client.Collection(f.assessment.assessmentsCollection()).
			Where("report_token", "==", string(assessment.ReportToken)).
			Limit(1)
		docs, err := tx.Documents(query).GetAll()
		if err != nil {
			return goerr.Wrap(err, "failed to check report token uniqueness")
		}
		if len(docs) > 0 {
			return goerr.Wrap(ErrTokenConflict, "report token already in use")
		}

		leadRef := f.client.Collection(f.lead.leadsCollection()).Doc(leadDoc.ID)
		if err := tx.Set(leadRef, leadDoc); err != nil {
			return goerr.Wrap(err, "failed to create lead")
		}

		assessmentRef := f.client.Collection(f.assessment.assessmentsCollection()).Doc(assessmentDoc.ID)
		if err := tx.Set(assessmentRef, assessmentDoc); err != nil {
			return goerr.Wrap(err, "failed to create assessment")
		}

		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "submission transaction failed")
	}

	createdAssessment, err := assessmentDoc.toModel()
	if err != nil {
		return nil, err
	}

	return &model.Submission{
		Assessment: createdAssessment,
		Lead:       leadDoc.toModel(),
	}, nil
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
