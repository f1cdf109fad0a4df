package notifier

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
)

func TestComposeMessage(t *testing.T) {
	lead := &model.Lead{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	}
	token := types.ReportToken(strings.Repeat("cd", 32))

	msg := composeMessage("https://assessment.example.com", lead, token, 3.42, 3, "AI-driven Workflows")

	gt.Value(t, msg.To).Equal("grace@example.com")
	gt.Value(t, msg.Subject).Equal("Grace, Your AI Testing Maturity: Level 3 - AI-driven Workflows")
	gt.Bool(t, strings.Contains(msg.Body, "Overall Score: 3.4 out of 5.0")).True()
	gt.Bool(t, strings.Contains(msg.Body, "https://assessment.example.com/report/"+token.String())).True()
}

// A trailing slash on the base URL must not produce a double slash in
// the report link
func TestComposeMessageBaseURLTrailingSlash(t *testing.T) {
	lead := &model.Lead{FirstName: "Grace", Email: "grace@example.com"}
	token := types.ReportToken(strings.Repeat("cd", 32))

	msg := composeMessage("https://assessment.example.com/", lead, token, 4.0, 4, "Agentic AI")

	gt.Bool(t, strings.Contains(msg.Body, "com/report/"+token.String())).True()
	gt.Bool(t, strings.Contains(msg.Body, "com//report/")).False()
}

func TestLevelNameFallback(t *testing.T) {
	gt.Value(t, levelName(t.Context(), nil, 4)).Equal("Level 4")
}
