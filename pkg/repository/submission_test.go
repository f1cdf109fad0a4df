package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/tq-lab/maturika/pkg/domain/interfaces"
	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
	"github.com/tq-lab/maturika/pkg/repository/firestore"
	"github.com/tq-lab/maturika/pkg/repository/memory"
)

var tokenSeq int

// testToken returns a distinct well-formed report token per call
func testToken() types.ReportToken {
	tokenSeq++
	return types.ReportToken(fmt.Sprintf("%064x", tokenSeq))
}

func testLead(email string) *model.Lead {
	return &model.Lead{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Company:   "Analytical Engines Ltd",
		Role:      "QA Lead",
		Consent:   true,
	}
}

func testAssessment(token types.ReportToken) *model.Assessment {
	return &model.Assessment{
		ModelVersion: "test-1",
		Responses: model.ResponseSet{
			"q1": 3,
			"q2": 4,
		},
		Scores: model.ScoreResult{
			DimensionScores: map[types.DimensionKey]float64{
				types.NewDimensionKey("Engineering", "Automation"): 3.5,
			},
			AreaScores:   map[string]float64{"Engineering": 3.5},
			OverallScore: 3.5,
			OverallLevel: 4,
		},
		ReportToken: token,
	}
}

func runSubmissionRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("CreateSubmission persists lead and assessment together", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		token := testToken()
		created, err := repo.CreateSubmission(ctx, testLead("ada@example.com"), testAssessment(token))
		gt.NoError(t, err).Required()

		gt.Value(t, created.Lead.ID.String()).NotEqual("")
		gt.Value(t, created.Assessment.ID.String()).NotEqual("")
		gt.Value(t, created.Assessment.LeadID).Equal(created.Lead.ID)
		gt.Value(t, created.Assessment.ReportToken).Equal(token)
		gt.Bool(t, created.Assessment.CreatedAt.IsZero()).False()
		gt.Bool(t, created.Lead.CreatedAt.IsZero()).False()
	})

	t.Run("GetByToken joins assessment with its lead", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		token := testToken()
		created, err := repo.CreateSubmission(ctx, testLead("join@example.com"), testAssessment(token))
		gt.NoError(t, err).Required()

		found, err := repo.Assessment().GetByToken(ctx, token)
		gt.NoError(t, err).Required()

		gt.Value(t, found.Assessment.ID).Equal(created.Assessment.ID)
		gt.Value(t, found.Lead.ID).Equal(created.Lead.ID)
		gt.Value(t, found.Lead.Email).Equal("join@example.com")
		gt.Value(t, found.Assessment.Scores.OverallScore).Equal(3.5)
		gt.Value(t, found.Assessment.Scores.OverallLevel).Equal(types.Level(4))
		gt.Value(t, found.Assessment.Responses["q1"]).Equal(3)
	})

	t.Run("GetByToken unknown token fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Assessment().GetByToken(ctx, testToken())
		gt.Value(t, err).NotNil()
	})

	t.Run("CreateSubmission rejects duplicate token", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		token := testToken()
		_, err := repo.CreateSubmission(ctx, testLead("first@example.com"), testAssessment(token))
		gt.NoError(t, err).Required()

		_, err = repo.CreateSubmission(ctx, testLead("second@example.com"), testAssessment(token))
		gt.Value(t, err).NotNil()
	})

	t.Run("CreateSubmission rejects malformed token", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.CreateSubmission(ctx, testLead("bad@example.com"), testAssessment("too-short"))
		gt.Value(t, err).NotNil()
	})

	t.Run("List returns submissions oldest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.CreateSubmission(ctx, testLead("one@example.com"), testAssessment(testToken()))
		gt.NoError(t, err).Required()

		time.Sleep(10 * time.Millisecond)

		second, err := repo.CreateSubmission(ctx, testLead("two@example.com"), testAssessment(testToken()))
		gt.NoError(t, err).Required()

		listed, err := repo.Assessment().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, listed).Length(2)
		gt.Value(t, listed[0].Assessment.ID).Equal(first.Assessment.ID)
		gt.Value(t, listed[1].Assessment.ID).Equal(second.Assessment.ID)
		gt.Value(t, listed[0].Lead.Email).Equal("one@example.com")
	})

	t.Run("Lead Get returns stored lead", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Lead().Create(ctx, testLead("direct@example.com"))
		gt.NoError(t, err).Required()

		retrieved, err := repo.Lead().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Email).Equal("direct@example.com")
		gt.Value(t, retrieved.Consent).Equal(true)
	})

	t.Run("Lead Get unknown ID fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Lead().Get(ctx, types.NewLeadID())
		gt.Value(t, err).NotNil()
	})
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func TestMemorySubmissionRepository(t *testing.T) {
	runSubmissionRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreSubmissionRepository(t *testing.T) {
	runSubmissionRepositoryTest(t, newFirestoreRepository)
}
