package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type assessmentDocument struct {
	ID              string             `firestore:"id"`
	LeadID          string             `firestore:"lead_id"`
	ModelVersion    string             `firestore:"model_version"`
	Responses       map[string]int     `firestore:"responses"`
	DimensionScores map[string]float64 `firestore:"dimension_scores"`
	AreaScores      map[string]float64 `firestore:"area_scores"`
	OverallScore    float64            `firestore:"overall_score"`
	OverallLevel    int                `firestore:"overall_level"`
	ReportToken     string             `firestore:"report_token"`
	CreatedAt       time.Time          `firestore:"created_at"`
}

func (d *assessmentDocument) toModel() (*model.Assessment, error) {
	level, err := types.ParseLevel(d.OverallLevel)
	if err != nil {
		return nil, goerr.Wrap(err, "stored assessment has invalid overall level",
			goerr.V("id", d.ID))
	}

	responses := make(model.ResponseSet, len(d.Responses))
	for id, rating := range d.Responses {
		responses[types.QuestionID(id)] = rating
	}

	dimensionScores := make(map[types.DimensionKey]float64, len(d.DimensionScores))
	for key, score := range d.DimensionScores {
		dimensionScores[types.DimensionKey(key)] = score
	}

	return &model.Assessment{
		ID:           types.AssessmentID(d.ID),
		LeadID:       types.LeadID(d.LeadID),
		ModelVersion: types.ModelVersion(d.ModelVersion),
		Responses:    responses,
		Scores: model.ScoreResult{
			DimensionScores: dimensionScores,
			AreaScores:      d.AreaScores,
			OverallScore:    d.OverallScore,
			OverallLevel:    level,
		},
		ReportToken: types.ReportToken(d.ReportToken),
		CreatedAt:   d.CreatedAt,
	}, nil
}

type assessmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAssessmentRepository(client *firestore.Client) *assessmentRepository {
	return &assessmentRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *assessmentRepository) assessmentsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_assessments"
	}
	return "assessments"
}

func (r *assessmentRepository) leadsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_leads"
	}
	return "leads"
}

func (r *assessmentRepository) newDocument(assessment *model.Assessment, leadID string, now time.Time) (*assessmentDocument, error) {
	if leadID == "" {
		return nil, goerr.New("assessment requires a lead ID")
	}

	id := assessment.ID
	if id == "" {
		id = types.NewAssessmentID()
	}

	responses := make(map[string]int, len(assessment.Responses))
	for qid, rating := range assessment.Responses {
		responses[qid.String()] = rating
	}

	dimensionScores := make(map[string]float64, len(assessment.Scores.DimensionScores))
	for key, score := range assessment.Scores.DimensionScores {
		dimensionScores[key.String()] = score
	}

	return &assessmentDocument{
		ID:              id.String(),
		LeadID:          leadID,
		ModelVersion:    assessment.ModelVersion.String(),
		Responses:       responses,
		DimensionScores: dimensionScores,
		AreaScores:      assessment.Scores.AreaScores,
		OverallScore:    assessment.Scores.OverallScore,
		OverallLevel:    int(assessment.Scores.OverallLevel),
		ReportToken:     assessment.ReportToken.String(),
		CreatedAt:       now,
	}, nil
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	doc, err := r.newDocument(assessment, assessment.LeadID.String(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	docRef := r.client.Collection(r.assessmentsCollection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create assessment")
	}

	return doc.toModel()
}

func (r *assessmentRepository) GetByToken(ctx context.Context, token types.ReportToken) (*model.Submission, error) {
	iter := r.client.Collection(r.assessmentsCollection()).
		Where("report_token", "==", token.String()).
		OrderBy("created_at", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found")
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query assessment by token")
	}

	var assessmentDoc assessmentDocument
	if err := doc.DataTo(&assessmentDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal assessment")
	}

	return r.join(ctx, &assessmentDoc)
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.Submission, error) {
	iter := r.client.Collection(r.assessmentsCollection()).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var submissions []*model.Submission
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate assessments")
		}

		var assessmentDoc assessmentDocument
		if err := doc.DataTo(&assessmentDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal assessment")
		}

		submission, err := r.join(ctx, &assessmentDoc)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}

	return submissions, nil
}

// join resolves the lead referenced by an assessment document. The
// atomic CreateSubmission write guarantees the lead exists, so a
// missing lead is a data fault, not a normal not-found.
func (r *assessmentRepository) join(ctx context.Context, doc *assessmentDocument) (*model.Submission, error) {
	assessment, err := doc.toModel()
	if err != nil {
		return nil, err
	}

	leadRef := r.client.Collection(r.leadsCollection()).Doc(doc.LeadID)
	leadSnap, err := leadRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.New("assessment references missing lead",
				goerr.V("assessment_id", doc.ID), goerr.V("lead_id", doc.LeadID))
		}
		return nil, goerr.Wrap(err, "failed to get lead", goerr.V("lead_id", doc.LeadID))
	}

	var leadDoc leadDocument
	if err := leadSnap.DataTo(&leadDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal lead", goerr.V("lead_id", doc.LeadID))
	}

	return &model.Submission{
		Assessment: assessment,
		Lead:       leadDoc.toModel(),
	}, nil
}
