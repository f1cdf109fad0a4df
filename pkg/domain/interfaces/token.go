package interfaces

import "github.com/tq-lab/maturika/pkg/domain/types"

// TokenSource produces unguessable report tokens. It is injected so
// the scoring core has no dependency on any particular entropy source
// and tests can use deterministic fixtures.
type TokenSource interface {
	NewReportToken() (types.ReportToken, error)
}
