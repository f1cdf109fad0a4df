package notifier

import (
	"fmt"
	"strings"

	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
)

// message is a composed report-ready email, shared by every delivery
// backend
type message struct {
	To      string
	Subject string
	Body    string
}

func composeMessage(baseURL string, lead *model.Lead, token types.ReportToken, overallScore float64, overallLevel types.Level, levelName string) message {
	reportURL := strings.TrimRight(baseURL, "/") + "/report/" + token.String()

	subject := fmt.Sprintf("%s, Your AI Testing Maturity: Level %d - %s",
		lead.FirstName, int(overallLevel), levelName)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", lead.FirstName)
	b.WriteString("Thank you for completing the AI Testing Maturity Assessment!\n\n")
	b.WriteString("YOUR RESULTS\n")
	fmt.Fprintf(&b, "Overall Score: %.1f out of 5.0\n", overallScore)
	fmt.Fprintf(&b, "Maturity Level: Level %d - %s\n\n", int(overallLevel), levelName)
	b.WriteString("VIEW YOUR FULL REPORT\n")
	b.WriteString("Your personalized report includes a breakdown across all\n")
	b.WriteString("assessed areas and dimensions, plus your top improvement\n")
	b.WriteString("opportunities and next-level recommendations.\n\n")
	fmt.Fprintf(&b, "Access your report here:\n%s\n\n", reportURL)
	b.WriteString("This link is unique to you and will remain active for future reference.\n")

	return message{
		To:      lead.Email,
		Subject: subject,
		Body:    b.String(),
	}
}
