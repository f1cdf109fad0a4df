package notifier

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/interfaces"
	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
)

// SES delivers report notifications via Amazon SES
type SES struct {
	client  *ses.Client
	from    string
	baseURL string
	loader  interfaces.ModelLoader
}

var _ interfaces.Notifier = &SES{}

func NewSES(ctx context.Context, region, from, baseURL string, loader interfaces.ModelLoader) (*SES, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load AWS config", goerr.V("region", region))
	}

	return &SES{
		client:  ses.NewFromConfig(cfg),
		from:    from,
		baseURL: baseURL,
		loader:  loader,
	}, nil
}

func (n *SES) NotifyReportReady(ctx context.Context, lead *model.Lead, token types.ReportToken, overallScore float64, overallLevel types.Level) error {
	msg := composeMessage(n.baseURL, lead, token, overallScore, overallLevel,
		levelName(ctx, n.loader, overallLevel))

	input := &ses.SendEmailInput{
		Source: aws.String(n.from),
		Destination: &sestypes.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(msg.Subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(msg.Body)},
			},
		},
	}

	if _, err := n.client.SendEmail(ctx, input); err != nil {
		return goerr.Wrap(err, "failed to send report notification",
			goerr.V("to", msg.To), goerr.V("token", token.Masked()))
	}

	return nil
}

// levelName resolves the display name of a level from the model,
// falling back to a generic label if the model cannot be loaded
func levelName(ctx context.Context, loader interfaces.ModelLoader, level types.Level) string {
	if loader != nil {
		if m, err := loader.Load(ctx); err == nil {
			if def := m.LevelByRank(level); def != nil {
				return def.Name
			}
		}
	}
	return "Level " + level.String()
}
