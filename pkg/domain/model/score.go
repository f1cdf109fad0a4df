package model

import (
	"github.com/tq-lab/maturika/pkg/domain/types"
)

// ScoreResult is the three-level rollup computed from a validated
// response set. Immutable once produced.
type ScoreResult struct {
	DimensionScores map[types.DimensionKey]float64 `json:"dimension_scores"`
	AreaScores      map[string]float64             `json:"area_scores"`
	OverallScore    float64                        `json:"overall_score"`
	OverallLevel    types.Level                    `json:"overall_level"`
}

// LevelForScore discretizes a score in [1,5] into a maturity level.
// Breakpoints are at 1.5/2.5/3.5/4.5 and a score exactly on a
// breakpoint rounds up. This is the single rounding rule for every
// place a score becomes a level.
func LevelForScore(score float64) types.Level {
	switch {
	case score >= 4.5:
		return 5
	case score >= 3.5:
		return 4
	case score >= 2.5:
		return 3
	case score >= 1.5:
		return 2
	default:
		return 1
	}
}

// Aggregate reduces a validated response set into dimension, area and
// overall scores. Callers must run ValidateResponses first; a missing
// answer here is a programming error and panics rather than being
// silently defaulted, so data-quality bugs cannot hide in the scores.
//
// The overall score is the flat mean over ALL dimension scores, not the
// mean of area scores. Areas with more dimensions therefore weigh more.
// This matches the shipped scoring behavior and must not be "fixed"
// without a model revision.
func Aggregate(responses ResponseSet, m *MaturityModel) *ScoreResult {
	byDimension := m.QuestionsByDimension()
	dimKeys := m.DimensionKeys()

	dimensionScores := make(map[types.DimensionKey]float64, len(dimKeys))
	for _, key := range dimKeys {
		questions := byDimension[key]
		sum := 0
		for _, q := range questions {
			rating, ok := responses[q.ID]
			if !ok {
				panic("aggregate called with unvalidated responses: missing " + q.ID.String())
			}
			sum += rating
		}
		dimensionScores[key] = float64(sum) / float64(len(questions))
	}

	areaDims := make(map[string][]types.DimensionKey)
	var areaOrder []string
	for _, key := range dimKeys {
		area := key.Area()
		if _, ok := areaDims[area]; !ok {
			areaOrder = append(areaOrder, area)
		}
		areaDims[area] = append(areaDims[area], key)
	}

	areaScores := make(map[string]float64, len(areaOrder))
	for _, area := range areaOrder {
		sum := 0.0
		for _, key := range areaDims[area] {
			sum += dimensionScores[key]
		}
		areaScores[area] = sum / float64(len(areaDims[area]))
	}

	overall := 0.0
	for _, key := range dimKeys {
		overall += dimensionScores[key]
	}
	overall /= float64(len(dimKeys))

	return &ScoreResult{
		DimensionScores: dimensionScores,
		AreaScores:      areaScores,
		OverallScore:    overall,
		OverallLevel:    LevelForScore(overall),
	}
}
