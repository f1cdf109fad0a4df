package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/tq-lab/maturika/pkg/cli/config"
	httpctrl "github.com/tq-lab/maturika/pkg/controller/http"
	"github.com/tq-lab/maturika/pkg/service/token"
	"github.com/tq-lab/maturika/pkg/usecase"
	"github.com/tq-lab/maturika/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var baseURL string
	var modelCfg config.Model
	var repoCfg config.Repository
	var notifierCfg config.Notifier
	var adminCfg config.Admin

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("MATURIKA_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Public base URL used in report links (e.g., https://assessment.example.com)",
			Value:       "http://localhost:8080",
			Sources:     cli.EnvVars("MATURIKA_BASE_URL"),
			Destination: &baseURL,
		},
	}

	flags = append(flags, modelCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, notifierCfg.Flags()...)
	flags = append(flags, adminCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			loader := modelCfg.Configure()

			// Fail fast on a broken model document instead of at the
			// first submission
			if _, err := loader.Load(ctx); err != nil {
				return goerr.Wrap(err, "failed to load maturity model")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			notify, err := notifierCfg.Configure(ctx, baseURL, loader)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize notifier")
			}

			if adminCfg.Enabled() {
				// credential fields are masq-tagged, so this logs redacted
				logging.Default().Info("Admin surface enabled", "admin", adminCfg)
			} else {
				logging.Default().Warn("Admin credentials not configured, admin surface rejects all requests")
			}

			uc := usecase.New(
				usecase.WithRepository(repo),
				usecase.WithModelLoader(loader),
				usecase.WithNotifier(notify),
				usecase.WithTokenSource(token.New()),
				usecase.WithAdminGate(adminCfg.Configure()),
			)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "base_url", baseURL)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server stopped")
				return nil
			}
		},
	}
}
