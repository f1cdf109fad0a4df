package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
	"github.com/tq-lab/maturika/pkg/repository/memory"
	"github.com/tq-lab/maturika/pkg/service/token"
	"github.com/tq-lab/maturika/pkg/usecase"

	httpctrl "github.com/tq-lab/maturika/pkg/controller/http"
)

type staticLoader struct {
	model *model.MaturityModel
}

func (l *staticLoader) Load(ctx context.Context) (*model.MaturityModel, error) {
	return l.model, nil
}

func testModel() *model.MaturityModel {
	m := &model.MaturityModel{
		ModelName:   "HTTP Test Model",
		Version:     "test-1",
		GeneratedAt: "2026-01-01",
	}

	for rank := 1; rank <= 5; rank++ {
		m.MaturityLevels = append(m.MaturityLevels, model.MaturityLevel{
			Level:    rank,
			Name:     fmt.Sprintf("Stage %d", rank),
			Overview: fmt.Sprintf("Overview %d", rank),
		})
	}

	levels := make(map[string]string)
	options := make(map[string]string)
	for rank := 1; rank <= 5; rank++ {
		levels[fmt.Sprint(rank)] = fmt.Sprintf("rubric %d", rank)
		options[fmt.Sprint(rank)] = fmt.Sprintf("option %d", rank)
	}

	m.Dimensions = []model.Dimension{
		{Area: "Engineering", Dimension: "Automation", Levels: levels},
	}
	for i := 1; i <= 2; i++ {
		m.Questionnaire = append(m.Questionnaire, model.Question{
			ID:        types.QuestionID(fmt.Sprintf("q%d", i)),
			Area:      "Engineering",
			Dimension: "Automation",
			Title:     fmt.Sprintf("Question %d", i),
			Prompt:    "How mature?",
			Options:   options,
		})
	}

	return m
}

func newTestServer() *httpctrl.Server {
	uc := usecase.New(
		usecase.WithRepository(memory.New()),
		usecase.WithModelLoader(&staticLoader{model: testModel()}),
		usecase.WithTokenSource(token.New()),
		usecase.WithAdminGate(usecase.NewStaticCredentials("admin", "hunter2")),
	)
	return httpctrl.New(uc)
}

func submitBody() []byte {
	body := map[string]any{
		"lead": map[string]any{
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"email":      "ada@example.com",
			"company":    "Analytical Engines Ltd",
			"role":       "QA Lead",
			"consent":    true,
		},
		"responses": map[string]int{"q1": 4, "q2": 3},
	}
	data, _ := json.Marshal(body)
	return data
}

func doRequest(t *testing.T, server *httpctrl.Server, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/health", nil, nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
}

func TestModelEndpoint(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/model", nil, nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var m model.MaturityModel
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m)).Required()
	gt.Value(t, m.Version.String()).Equal("test-1")
	gt.Array(t, m.Questionnaire).Length(2)
}

func TestSubmitEndpoint(t *testing.T) {
	t.Run("valid submission returns token and scores", func(t *testing.T) {
		server := newTestServer()
		rec := doRequest(t, server, http.MethodPost, "/api/assessment/submit", submitBody(), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			ReportToken  string  `json:"report_token"`
			OverallScore float64 `json:"overall_score"`
			OverallLevel int     `json:"overall_level"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, len(resp.ReportToken)).Equal(64)
		gt.Value(t, resp.OverallScore).Equal(3.5)
		gt.Value(t, resp.OverallLevel).Equal(4)
	})

	t.Run("missing answers return per-question details", func(t *testing.T) {
		body := map[string]any{
			"lead": map[string]any{
				"first_name": "Ada",
				"last_name":  "Lovelace",
				"email":      "ada@example.com",
				"company":    "Analytical Engines Ltd",
				"role":       "QA Lead",
				"consent":    true,
			},
			"responses": map[string]int{"q1": 6},
		}
		data, _ := json.Marshal(body)

		rec := doRequest(t, newTestServer(), http.MethodPost, "/api/assessment/submit", data, nil)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)

		var resp struct {
			Error   string                `json:"error"`
			Details []model.ResponseError `json:"details"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Array(t, resp.Details).Length(2)
		gt.Value(t, resp.Details[0].Kind).Equal(model.OutOfRangeAnswer)
		gt.Value(t, resp.Details[1].Kind).Equal(model.MissingAnswer)
	})

	t.Run("rejected lead returns per-field details", func(t *testing.T) {
		body := map[string]any{
			"lead":      map[string]any{"first_name": "Ada"},
			"responses": map[string]int{"q1": 3, "q2": 3},
		}
		data, _ := json.Marshal(body)

		rec := doRequest(t, newTestServer(), http.MethodPost, "/api/assessment/submit", data, nil)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)

		var resp struct {
			Error   string                 `json:"error"`
			Details []model.LeadFieldError `json:"details"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Array(t, resp.Details).Length(5)
	})

	t.Run("malformed JSON rejected", func(t *testing.T) {
		rec := doRequest(t, newTestServer(), http.MethodPost, "/api/assessment/submit", []byte("{nope"), nil)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestReportEndpoint(t *testing.T) {
	t.Run("submitted report is retrievable", func(t *testing.T) {
		server := newTestServer()

		rec := doRequest(t, server, http.MethodPost, "/api/assessment/submit", submitBody(), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var submitted struct {
			ReportToken string `json:"report_token"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitted)).Required()

		rec = doRequest(t, server, http.MethodGet, "/api/report/"+submitted.ReportToken, nil, nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Assessment *model.Assessment    `json:"assessment"`
			Lead       *model.Lead          `json:"lead"`
			Model      *model.MaturityModel `json:"model"`
			Report     *model.Report        `json:"report"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp.Lead.Email).Equal("ada@example.com")
		gt.Value(t, resp.Model.Version.String()).Equal("test-1")
		gt.Value(t, resp.Report.OverallScore).Equal(3.5)
		gt.Array(t, resp.Report.Dimensions).Length(1)
	})

	t.Run("unknown token is a generic 404", func(t *testing.T) {
		unknown := fmt.Sprintf("%064x", 0xbeef)
		rec := doRequest(t, newTestServer(), http.MethodGet, "/api/report/"+unknown, nil, nil)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)

		var resp struct {
			Error   string `json:"error"`
			Details any    `json:"details"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp.Error).Equal("report not found")
		gt.Value(t, resp.Details).Nil()
	})

	t.Run("malformed token is the same 404", func(t *testing.T) {
		rec := doRequest(t, newTestServer(), http.MethodGet, "/api/report/short", nil, nil)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestAdminEndpoints(t *testing.T) {
	adminHeaders := map[string]string{
		"X-Admin-Username": "admin",
		"X-Admin-Password": "hunter2",
	}

	t.Run("verify accepts correct credentials", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"username": "admin", "password": "hunter2"})
		rec := doRequest(t, newTestServer(), http.MethodPost, "/api/admin/verify", body, nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp map[string]bool
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Bool(t, resp["success"]).True()
	})

	t.Run("verify rejects wrong credentials generically", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"username": "admin", "password": "wrong"})
		rec := doRequest(t, newTestServer(), http.MethodPost, "/api/admin/verify", body, nil)
		gt.Value(t, rec.Code).Equal(http.StatusUnauthorized)
	})

	t.Run("listing requires admin headers", func(t *testing.T) {
		server := newTestServer()

		rec := doRequest(t, server, http.MethodGet, "/api/admin/assessments", nil, nil)
		gt.Value(t, rec.Code).Equal(http.StatusUnauthorized)

		rec = doRequest(t, server, http.MethodGet, "/api/admin/assessments", nil, map[string]string{
			"X-Admin-Username": "admin",
			"X-Admin-Password": "wrong",
		})
		gt.Value(t, rec.Code).Equal(http.StatusUnauthorized)
	})

	t.Run("listing returns stored submissions", func(t *testing.T) {
		server := newTestServer()

		rec := doRequest(t, server, http.MethodPost, "/api/assessment/submit", submitBody(), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		rec = doRequest(t, server, http.MethodGet, "/api/admin/assessments", nil, adminHeaders)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Submissions []*model.Submission `json:"submissions"`
			Count       int                 `json:"count"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp.Count).Equal(1)
		gt.Array(t, resp.Submissions).Length(1)
		gt.Value(t, resp.Submissions[0].Lead.Email).Equal("ada@example.com")
	})
}
