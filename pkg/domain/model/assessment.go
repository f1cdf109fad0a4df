package model

import (
	"time"

	"github.com/tq-lab/maturika/pkg/domain/types"
)

// Assessment is one scored submission. It owns its response set and
// score result outright; the lead is referenced by ID. Assessments are
// written exactly once and never mutated.
type Assessment struct {
	ID           types.AssessmentID `json:"id"`
	LeadID       types.LeadID       `json:"lead_id"`
	ModelVersion types.ModelVersion `json:"model_version"`
	Responses    ResponseSet        `json:"responses"`
	Scores       ScoreResult        `json:"scores"`
	ReportToken  types.ReportToken  `json:"report_token"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Submission is an assessment joined with its lead, as returned by
// token lookup and the admin listing
type Submission struct {
	Assessment *Assessment `json:"assessment"`
	Lead       *Lead       `json:"lead"`
}
