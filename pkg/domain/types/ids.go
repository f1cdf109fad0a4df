package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// QuestionID identifies a question within the questionnaire. IDs come
// from the model definition, not from this service.
type QuestionID string

func (id QuestionID) String() string {
	return string(id)
}

func (id QuestionID) Validate() error {
	if id == "" {
		return goerr.New("question ID is empty")
	}
	return nil
}

// LeadID identifies a stored lead
type LeadID string

func NewLeadID() LeadID {
	return LeadID(uuid.New().String())
}

func (id LeadID) String() string {
	return string(id)
}

func (id LeadID) Validate() error {
	if id == "" {
		return goerr.New("lead ID is empty")
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return goerr.Wrap(err, "invalid lead ID format", goerr.V("id", id))
	}
	return nil
}

// AssessmentID identifies a stored assessment
type AssessmentID string

func NewAssessmentID() AssessmentID {
	return AssessmentID(uuid.New().String())
}

func (id AssessmentID) String() string {
	return string(id)
}

func (id AssessmentID) Validate() error {
	if id == "" {
		return goerr.New("assessment ID is empty")
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return goerr.Wrap(err, "invalid assessment ID format", goerr.V("id", id))
	}
	return nil
}

// ModelVersion is the version tag of the maturity model a submission
// was scored against
type ModelVersion string

func (v ModelVersion) String() string {
	return string(v)
}

func (v ModelVersion) Validate() error {
	if v == "" {
		return goerr.New("model version is empty")
	}
	return nil
}
