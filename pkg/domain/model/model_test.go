package model_test

import (
	"fmt"

	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
)

// testModel builds a small but fully valid model: two areas where the
// first has two dimensions and the second has one, two questions per
// dimension. The uneven area sizes matter for the overall score tests.
func testModel() *model.MaturityModel {
	m := &model.MaturityModel{
		ModelName:   "Test Maturity Model",
		Version:     "test-1",
		GeneratedAt: "2026-01-01",
	}

	for rank := 1; rank <= 5; rank++ {
		m.MaturityLevels = append(m.MaturityLevels, model.MaturityLevel{
			Level:    rank,
			Name:     fmt.Sprintf("Stage %d", rank),
			NameFull: fmt.Sprintf("Level %d - Stage %d", rank, rank),
			Overview: fmt.Sprintf("Overview of stage %d", rank),
		})
	}

	dims := []struct {
		area string
		name string
	}{
		{"Engineering", "Automation"},
		{"Engineering", "Data"},
		{"People", "Skills"},
	}

	for _, d := range dims {
		levels := make(map[string]string)
		options := make(map[string]string)
		for rank := 1; rank <= 5; rank++ {
			levels[fmt.Sprint(rank)] = fmt.Sprintf("%s/%s rubric at %d", d.area, d.name, rank)
			options[fmt.Sprint(rank)] = fmt.Sprintf("option %d", rank)
		}

		m.Dimensions = append(m.Dimensions, model.Dimension{
			Area:      d.area,
			Dimension: d.name,
			Levels:    levels,
		})

		for i := 1; i <= 2; i++ {
			m.Questionnaire = append(m.Questionnaire, model.Question{
				ID:        questionID(d.area, d.name, i),
				Area:      d.area,
				Dimension: d.name,
				Title:     fmt.Sprintf("%s question %d", d.name, i),
				Prompt:    fmt.Sprintf("How mature is %s (%d)?", d.name, i),
				Options:   options,
			})
		}
	}

	return m
}

func questionID(area, dimension string, n int) types.QuestionID {
	return types.QuestionID(fmt.Sprintf("%s-%s-%d", area, dimension, n))
}
