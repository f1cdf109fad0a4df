package token_test

import (
	"encoding/hex"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tq-lab/maturika/pkg/service/token"
)

func TestSourceNewReportToken(t *testing.T) {
	source := token.New()

	t.Run("tokens are 64 hex characters", func(t *testing.T) {
		generated, err := source.NewReportToken()
		gt.NoError(t, err).Required()
		gt.Value(t, len(generated)).Equal(64)

		raw, err := hex.DecodeString(generated.String())
		gt.NoError(t, err)
		gt.Value(t, len(raw)).Equal(32)
	})

	t.Run("tokens pass domain validation", func(t *testing.T) {
		generated, err := source.NewReportToken()
		gt.NoError(t, err).Required()
		gt.NoError(t, generated.Validate())
	})

	t.Run("tokens do not repeat", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 1000 {
			generated, err := source.NewReportToken()
			gt.NoError(t, err).Required()
			gt.Bool(t, seen[generated.String()]).False()
			seen[generated.String()] = true
		}
	})
}
