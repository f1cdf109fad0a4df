package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var modelCfg config.Model

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the maturity model document",
		Flags:   modelCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			loader := modelCfg.Configure()

			m, err := loader.Load(ctx)
			if err != nil {
				color.Red("✗ %s", modelCfg.Path())
				return goerr.Wrap(err, "model validation failed")
			}

			byDimension := m.QuestionsByDimension()
			color.Green("✓ %s", modelCfg.Path())
			fmt.Printf("  model:      %s (%s)\n", m.ModelName, m.Version)
			fmt.Printf("  areas:      %d\n", len(m.Areas()))
			fmt.Printf("  dimensions: %d\n", len(m.DimensionKeys()))
			fmt.Printf("  questions:  %d\n", len(m.Questionnaire))

			for _, key := range m.DimensionKeys() {
				fmt.Printf("    %-56s %d questions\n", key.String(), len(byDimension[key]))
			}

			return nil
		},
	}
}
