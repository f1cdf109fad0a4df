package model

import (
	"fmt"

	"github.com/tq-lab/maturika/pkg/domain/types"
)

// ResponseSet maps question IDs to the integer rating (1-5) the
// respondent assigned. It is submitted as a complete unit; partial sets
// are rejected before anything is persisted.
type ResponseSet map[types.QuestionID]int

// ResponseErrorKind discriminates the two validation failure modes
type ResponseErrorKind string

const (
	MissingAnswer    ResponseErrorKind = "missing_answer"
	OutOfRangeAnswer ResponseErrorKind = "out_of_range_answer"
)

// ResponseError describes one invalid or missing answer. The Value
// field is only meaningful for OutOfRangeAnswer.
type ResponseError struct {
	Kind       ResponseErrorKind `json:"kind"`
	QuestionID types.QuestionID  `json:"question_id"`
	Value      int               `json:"value,omitempty"`
}

func (e ResponseError) Error() string {
	switch e.Kind {
	case OutOfRangeAnswer:
		return fmt.Sprintf("invalid answer for question %s: got %d, must be 1-5", e.QuestionID, e.Value)
	default:
		return fmt.Sprintf("missing answer for question: %s", e.QuestionID)
	}
}

// ValidateResponses checks a response set against the model's
// questionnaire. It collects every violation instead of stopping at the
// first one, in questionnaire order, so error lists are deterministic.
// Keys that do not belong to the questionnaire are ignored; this keeps
// submissions from a slightly newer or older client usable.
func ValidateResponses(responses ResponseSet, m *MaturityModel) []ResponseError {
	var errs []ResponseError
	for _, q := range m.Questionnaire {
		value, ok := responses[q.ID]
		if !ok {
			errs = append(errs, ResponseError{Kind: MissingAnswer, QuestionID: q.ID})
			continue
		}
		if value < int(types.LevelMin) || value > int(types.LevelMax) {
			errs = append(errs, ResponseError{Kind: OutOfRangeAnswer, QuestionID: q.ID, Value: value})
		}
	}
	return errs
}
