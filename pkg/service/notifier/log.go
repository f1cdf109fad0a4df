package notifier

import (
	"context"

	"github.com/tq-lab/maturika/pkg/domain/interfaces"
	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
	"github.com/tq-lab/maturika/pkg/utils/logging"
)

// Log writes the composed email to the log instead of delivering it.
// Development mode only.
type Log struct {
	baseURL string
	loader  interfaces.ModelLoader
}

var _ interfaces.Notifier = &Log{}

func NewLog(baseURL string, loader interfaces.ModelLoader) *Log {
	return &Log{baseURL: baseURL, loader: loader}
}

func (n *Log) NotifyReportReady(ctx context.Context, lead *model.Lead, token types.ReportToken, overallScore float64, overallLevel types.Level) error {
	msg := composeMessage(n.baseURL, lead, token, overallScore, overallLevel,
		levelName(ctx, n.loader, overallLevel))

	logging.From(ctx).Info("report notification (dev mode, not delivered)",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
