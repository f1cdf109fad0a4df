package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// minReportTokenLength matches a 32 byte token in hex encoding
const minReportTokenLength = 64

// ReportToken is the unguessable capability that grants access to one
// report. Whoever holds the token can read the report, so it must never
// appear in logs unmasked.
type ReportToken string

func (t ReportToken) String() string {
	return string(t)
}

func (t ReportToken) Validate() error {
	if t == "" {
		return goerr.New("report token is empty")
	}
	if len(t) < minReportTokenLength {
		return goerr.New("report token is too short", goerr.V("length", len(t)))
	}
	return nil
}

// Masked returns a loggable form of the token that keeps only a short
// prefix
func (t ReportToken) Masked() string {
	if len(t) <= 8 {
		return "****"
	}
	return string(t[:8]) + "..."
}
