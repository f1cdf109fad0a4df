package model

import (
	"sort"

	"github.com/tq-lab/maturika/pkg/domain/types"
)

// DimensionInsight joins one dimension's score with the rubric text for
// its current level and, below the top rank, the next level up
type DimensionInsight struct {
	Key             types.DimensionKey `json:"key"`
	Area            string             `json:"area"`
	Dimension       string             `json:"dimension"`
	Score           float64            `json:"score"`
	Level           types.Level        `json:"level"`
	Rubric          string             `json:"rubric"`
	NextLevelRubric string             `json:"next_level_rubric,omitempty"`
}

// Report is the presentation view of a score result: per-dimension
// insights in model order plus the three lowest-scoring dimensions as
// improvement opportunities
type Report struct {
	Dimensions    []DimensionInsight `json:"dimensions"`
	Opportunities []DimensionInsight `json:"opportunities"`
	OverallScore  float64            `json:"overall_score"`
	OverallLevel  types.Level        `json:"overall_level"`
	LevelName     string             `json:"level_name"`
	LevelOverview string             `json:"level_overview"`
}

const opportunityCount = 3

// AssembleReport joins a computed score result with the model's
// descriptive text. Pure lookup and sorting; no new computation beyond
// what Aggregate already produced.
func AssembleReport(sr *ScoreResult, m *MaturityModel) *Report {
	keys := m.DimensionKeys()

	insights := make([]DimensionInsight, 0, len(keys))
	for _, key := range keys {
		score := sr.DimensionScores[key]
		level := LevelForScore(score)

		insight := DimensionInsight{
			Key:       key,
			Area:      key.Area(),
			Dimension: key.Dimension(),
			Score:     score,
			Level:     level,
			Rubric:    m.Rubric(key, level),
		}
		if level < types.LevelMax {
			insight.NextLevelRubric = m.Rubric(key, level.Next())
		}
		insights = append(insights, insight)
	}

	// Rank by raw score ascending; SliceStable keeps model order on
	// ties, so the first-encountered dimension wins.
	ranked := make([]DimensionInsight, len(insights))
	copy(ranked, insights)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	n := opportunityCount
	if len(ranked) < n {
		n = len(ranked)
	}

	report := &Report{
		Dimensions:    insights,
		Opportunities: ranked[:n],
		OverallScore:  sr.OverallScore,
		OverallLevel:  sr.OverallLevel,
	}
	if level := m.LevelByRank(sr.OverallLevel); level != nil {
		report.LevelName = level.Name
		report.LevelOverview = level.Overview
	}
	return report
}
