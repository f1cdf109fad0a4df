package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
	"github.com/tq-lab/maturika/pkg/repository/firestore"
	"github.com/tq-lab/maturika/pkg/repository/memory"
)

// ReportView is a retrieved report with the submission it was built
// from
type ReportView struct {
	Submission *model.Submission
	Report     *model.Report
}

// GetReport retrieves the report behind a token. Malformed tokens and
// unknown tokens both map to ErrReportNotFound so the response gives a
// prober no signal.
func (uc *UseCases) GetReport(ctx context.Context, token types.ReportToken) (*ReportView, error) {
	if err := token.Validate(); err != nil {
		return nil, goerr.Wrap(ErrReportNotFound, "rejected report token",
			goerr.V("token", token.Masked()))
	}

	submission, err := uc.repo.Assessment().GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound) {
			return nil, goerr.Wrap(ErrReportNotFound, "no assessment for token",
				goerr.V("token", token.Masked()))
		}
		return nil, goerr.Wrap(err, "failed to look up report")
	}

	m, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ReportView{
		Submission: submission,
		Report:     model.AssembleReport(&submission.Assessment.Scores, m),
	}, nil
}
