package config

import (
	"github.com/tq-lab/maturika/pkg/service/maturity"
	"github.com/urfave/cli/v3"
)

// Model holds CLI flags for the maturity model document
type Model struct {
	path string
}

// Flags returns CLI flags for model configuration
func (m *Model) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "model-path",
			Usage:       "Path to the maturity model document (.json or .toml)",
			Value:       "data/model.json",
			Sources:     cli.EnvVars("MATURIKA_MODEL_PATH"),
			Destination: &m.path,
		},
	}
}

// Path returns the configured model document path
func (m *Model) Path() string {
	return m.path
}

// Configure returns a loader for the configured model document. The
// document is not read until the first Load call.
func (m *Model) Configure() *maturity.Loader {
	return maturity.New(m.path)
}
