package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/domain/types"
)

// MaturityLevel is one of the five model-wide maturity stages with its
// descriptive text
type MaturityLevel struct {
	Level        int    `json:"level" toml:"level"`
	Name         string `json:"name" toml:"name"`
	NameFull     string `json:"name_full" toml:"name_full"`
	Overview     string `json:"overview" toml:"overview"`
	WhatToExpect string `json:"what_to_expect" toml:"what_to_expect"`
	HumanFocus   string `json:"human_focus" toml:"human_focus"`
}

// Dimension is a scored sub-capability within an area, carrying rubric
// text per maturity rank
type Dimension struct {
	Area      string            `json:"area" toml:"area"`
	Dimension string            `json:"dimension" toml:"dimension"`
	Levels    map[string]string `json:"levels" toml:"levels"`
}

// Key returns the (area, dimension) identity of this dimension
func (d *Dimension) Key() types.DimensionKey {
	return types.NewDimensionKey(d.Area, d.Dimension)
}

// Question is a single rateable item on the 1-5 scale, belonging to
// exactly one (area, dimension) pair
type Question struct {
	ID        types.QuestionID  `json:"id" toml:"id"`
	Area      string            `json:"area" toml:"area"`
	Dimension string            `json:"dimension" toml:"dimension"`
	Title     string            `json:"title" toml:"title"`
	Prompt    string            `json:"prompt" toml:"prompt"`
	Options   map[string]string `json:"options" toml:"options"`
}

// Key returns the (area, dimension) pair the question is scored under
func (q *Question) Key() types.DimensionKey {
	return types.NewDimensionKey(q.Area, q.Dimension)
}

// MaturityModel is the static questionnaire and rubric definition.
// It is loaded once per process and never mutated afterwards, so it is
// safe for concurrent reads.
type MaturityModel struct {
	ModelName      string             `json:"model_name" toml:"model_name"`
	Version        types.ModelVersion `json:"version" toml:"version"`
	GeneratedAt    string             `json:"generated_at" toml:"generated_at"`
	MaturityLevels []MaturityLevel    `json:"maturity_levels" toml:"maturity_levels"`
	Dimensions     []Dimension        `json:"maturity_model" toml:"maturity_model"`
	Questionnaire  []Question         `json:"questionnaire" toml:"questionnaire"`
}

// Validate checks the structural invariants of the model: exactly five
// levels ranked 1-5 without gaps, full rubric coverage per dimension,
// and a questionnaire whose questions all belong to known dimensions,
// with at least one question per dimension.
func (m *MaturityModel) Validate() error {
	if m.Version == "" {
		return goerr.New("model version is required")
	}

	seenRanks := make(map[int]bool)
	for _, level := range m.MaturityLevels {
		if !types.Level(level.Level).IsValid() {
			return goerr.New("maturity level rank out of domain", goerr.V("level", level.Level))
		}
		if seenRanks[level.Level] {
			return goerr.New("duplicate maturity level rank", goerr.V("level", level.Level))
		}
		if level.Name == "" {
			return goerr.New("maturity level name is required", goerr.V("level", level.Level))
		}
		seenRanks[level.Level] = true
	}
	if len(seenRanks) != len(types.AllLevels()) {
		return goerr.New("maturity levels must cover ranks 1 through 5",
			goerr.V("count", len(seenRanks)))
	}

	dimKeys := make(map[types.DimensionKey]bool)
	for _, dim := range m.Dimensions {
		key := dim.Key()
		if dim.Area == "" || dim.Dimension == "" {
			return goerr.New("dimension area and name are required", goerr.V("key", key))
		}
		if dimKeys[key] {
			return goerr.New("duplicate dimension", goerr.V("key", key))
		}
		for _, rank := range types.AllLevels() {
			if dim.Levels[rank.String()] == "" {
				return goerr.New("dimension rubric text missing for rank",
					goerr.V("key", key), goerr.V("rank", rank))
			}
		}
		dimKeys[key] = true
	}

	questionIDs := make(map[types.QuestionID]bool)
	questionsPerDim := make(map[types.DimensionKey]int)
	for _, q := range m.Questionnaire {
		if err := q.ID.Validate(); err != nil {
			return goerr.Wrap(err, "invalid question ID")
		}
		if questionIDs[q.ID] {
			return goerr.New("duplicate question ID", goerr.V("id", q.ID))
		}
		if !dimKeys[q.Key()] {
			return goerr.New("question references unknown dimension",
				goerr.V("id", q.ID), goerr.V("key", q.Key()))
		}
		for _, rank := range types.AllLevels() {
			if q.Options[rank.String()] == "" {
				return goerr.New("question option text missing for rank",
					goerr.V("id", q.ID), goerr.V("rank", rank))
			}
		}
		questionIDs[q.ID] = true
		questionsPerDim[q.Key()]++
	}

	for key := range dimKeys {
		if questionsPerDim[key] == 0 {
			return goerr.New("dimension has no questions", goerr.V("key", key))
		}
	}

	return nil
}

// LevelByRank returns the maturity level definition for the given rank,
// or nil if the rank is not part of the model
func (m *MaturityModel) LevelByRank(rank types.Level) *MaturityLevel {
	for i := range m.MaturityLevels {
		if m.MaturityLevels[i].Level == int(rank) {
			return &m.MaturityLevels[i]
		}
	}
	return nil
}

// Rubric returns the rubric text of the given dimension at the given
// rank, or an empty string if no such dimension exists
func (m *MaturityModel) Rubric(key types.DimensionKey, rank types.Level) string {
	for i := range m.Dimensions {
		if m.Dimensions[i].Key() == key {
			return m.Dimensions[i].Levels[rank.String()]
		}
	}
	return ""
}

// DimensionKeys returns the keys of all dimensions that have questions,
// in questionnaire order (first occurrence wins)
func (m *MaturityModel) DimensionKeys() []types.DimensionKey {
	var keys []types.DimensionKey
	seen := make(map[types.DimensionKey]bool)
	for i := range m.Questionnaire {
		key := m.Questionnaire[i].Key()
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

// QuestionsByDimension groups the questionnaire by (area, dimension),
// preserving question order within each group
func (m *MaturityModel) QuestionsByDimension() map[types.DimensionKey][]Question {
	groups := make(map[types.DimensionKey][]Question)
	for _, q := range m.Questionnaire {
		groups[q.Key()] = append(groups[q.Key()], q)
	}
	return groups
}

// Areas returns the distinct area names in questionnaire order
func (m *MaturityModel) Areas() []string {
	var areas []string
	seen := make(map[string]bool)
	for i := range m.Questionnaire {
		if !seen[m.Questionnaire[i].Area] {
			seen[m.Questionnaire[i].Area] = true
			areas = append(areas, m.Questionnaire[i].Area)
		}
	}
	return areas
}
