package usecase

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/model"
)

var (
	// ErrReportNotFound is returned for any token that does not match
	// a stored assessment. It deliberately carries no detail: the
	// response must not reveal whether a near-miss token exists.
	ErrReportNotFound = goerr.New("report not found")

	// ErrUnauthorized is returned for any failed admin authentication,
	// with the same shape regardless of which credential was wrong
	ErrUnauthorized = goerr.New("unauthorized")
)

// ValidationError carries every response violation from one rejected
// submission so the client can render them all at once
type ValidationError struct {
	Errors []model.ResponseError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submission validation failed: %d invalid or missing answers", len(e.Errors))
}

// LeadError carries every rejected lead field from one submission
type LeadError struct {
	Fields []model.LeadFieldError
}

func (e *LeadError) Error() string {
	return fmt.Sprintf("lead validation failed: %d rejected fields", len(e.Fields))
}
