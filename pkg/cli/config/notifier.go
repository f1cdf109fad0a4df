package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/interfaces"
	"github.com/tq-lab/maturika/pkg/service/notifier"
	"github.com/tq-lab/maturika/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Notifier holds CLI flags for report notification delivery
type Notifier struct {
	backend   string
	sesRegion string
	emailFrom string
}

// Flags returns CLI flags for notifier configuration
func (n *Notifier) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "notifier-backend",
			Usage:       "Notification backend (ses or log)",
			Value:       "log",
			Sources:     cli.EnvVars("MATURIKA_NOTIFIER_BACKEND"),
			Destination: &n.backend,
		},
		&cli.StringFlag{
			Name:        "ses-region",
			Usage:       "AWS region for SES delivery (required when using ses backend)",
			Sources:     cli.EnvVars("MATURIKA_SES_REGION"),
			Destination: &n.sesRegion,
		},
		&cli.StringFlag{
			Name:        "email-from",
			Usage:       "Sender address for report notifications (required when using ses backend)",
			Sources:     cli.EnvVars("MATURIKA_EMAIL_FROM"),
			Destination: &n.emailFrom,
		},
	}
}

// Configure initializes the notification backend
func (n *Notifier) Configure(ctx context.Context, baseURL string, loader interfaces.ModelLoader) (interfaces.Notifier, error) {
	switch n.backend {
	case "ses":
		if n.sesRegion == "" {
			return nil, goerr.New("ses-region is required when using ses backend")
		}
		if n.emailFrom == "" {
			return nil, goerr.New("email-from is required when using ses backend")
		}
		sesNotifier, err := notifier.NewSES(ctx, n.sesRegion, n.emailFrom, baseURL, loader)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize SES notifier")
		}
		logging.Default().Info("Using SES notifier",
			"region", n.sesRegion,
			"from", n.emailFrom,
		)
		return sesNotifier, nil

	case "log":
		logging.Default().Warn("Using log notifier, report emails are not delivered")
		return notifier.NewLog(baseURL, loader), nil

	default:
		return nil, goerr.New("invalid notifier backend", goerr.V("backend", n.backend))
	}
}
