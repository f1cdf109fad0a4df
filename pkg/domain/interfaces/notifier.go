package interfaces

import (
	"context"

	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
)

// Notifier delivers the report link to the lead after a successful
// submission. Delivery is fire-and-forget: errors are logged by the
// caller and never reach the submitter.
type Notifier interface {
	NotifyReportReady(ctx context.Context, lead *model.Lead, token types.ReportToken, overallScore float64, overallLevel types.Level) error
}
