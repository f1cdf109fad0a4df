package model

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/tq-lab/maturika/pkg/domain/types"
)

// Lead is the contact record captured with a submission. Leads are
// never deduplicated: a repeat submission from the same email creates a
// new row.
type Lead struct {
	ID        types.LeadID `json:"id"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Email     string       `json:"email"`
	Company   string       `json:"company"`
	Role      string       `json:"role"`
	Consent   bool         `json:"consent"`
	CreatedAt time.Time    `json:"created_at"`
}

// LeadFieldError describes one rejected lead field
type LeadFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e LeadFieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateFields checks the lead's contact fields, collecting every
// violation so the client can highlight each rejected field at once
func (l *Lead) ValidateFields() []LeadFieldError {
	var errs []LeadFieldError

	if l.FirstName == "" {
		errs = append(errs, LeadFieldError{Field: "first_name", Message: "first name is required"})
	}
	if l.LastName == "" {
		errs = append(errs, LeadFieldError{Field: "last_name", Message: "last name is required"})
	}
	if l.Email == "" {
		errs = append(errs, LeadFieldError{Field: "email", Message: "email is required"})
	} else if _, err := mail.ParseAddress(l.Email); err != nil {
		errs = append(errs, LeadFieldError{Field: "email", Message: "email address is not valid"})
	}
	if l.Company == "" {
		errs = append(errs, LeadFieldError{Field: "company", Message: "company is required"})
	}
	if l.Role == "" {
		errs = append(errs, LeadFieldError{Field: "role", Message: "role is required"})
	}
	if !l.Consent {
		errs = append(errs, LeadFieldError{Field: "consent", Message: "consent to receive results must be affirmed"})
	}

	return errs
}
