package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/utils/async"
	"github.com/tq-lab/maturika/pkg/utils/errutil"
	"github.com/tq-lab/maturika/pkg/utils/logging"
)

// SubmitResult is what the submitter gets back: the scores plus the
// token that unlocks the full report
type SubmitResult struct {
	Submission *model.Submission
	Report     *model.Report
}

// SubmitAssessment validates, scores and persists one submission.
// Nothing is written unless both the lead and the responses pass
// validation, and the stored lead and assessment appear atomically.
// Notification runs in the background after the write; its failure
// never reaches the submitter.
func (uc *UseCases) SubmitAssessment(ctx context.Context, lead *model.Lead, responses model.ResponseSet) (*SubmitResult, error) {
	m, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	if fieldErrs := lead.ValidateFields(); len(fieldErrs) > 0 {
		return nil, &LeadError{Fields: fieldErrs}
	}
	if respErrs := model.ValidateResponses(responses, m); len(respErrs) > 0 {
		return nil, &ValidationError{Errors: respErrs}
	}

	scores := model.Aggregate(responses, m)

	reportToken, err := uc.tokens.NewReportToken()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate report token")
	}

	assessment := &model.Assessment{
		ModelVersion: m.Version,
		Responses:    responses,
		Scores:       *scores,
		ReportToken:  reportToken,
	}

	submission, err := uc.repo.CreateSubmission(ctx, lead, assessment)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to persist submission")
	}

	logging.From(ctx).Info("assessment submitted",
		"assessment_id", submission.Assessment.ID,
		"lead_id", submission.Lead.ID,
		"overall_score", scores.OverallScore,
		"overall_level", scores.OverallLevel,
		"token", reportToken.Masked(),
	)

	if uc.notifier != nil {
		notifyLead := submission.Lead
		async.Dispatch(ctx, func(ctx context.Context) error {
			if err := uc.notifier.NotifyReportReady(ctx, notifyLead, reportToken, scores.OverallScore, scores.OverallLevel); err != nil {
				errutil.Handle(ctx, err, "failed to notify lead")
			}
			return nil
		})
	}

	return &SubmitResult{
		Submission: submission,
		Report:     model.AssembleReport(scores, m),
	}, nil
}
