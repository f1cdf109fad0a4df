package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/domain/types"
	"github.com/tq-lab/maturika/pkg/usecase"
	"github.com/tq-lab/maturika/pkg/utils/errutil"
)

// modelHandler serves the maturity model for client bootstrapping
func modelHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		m, err := uc.GetModel(ctx)
		if err != nil {
			errutil.Handle(ctx, err, "failed to load maturity model")
			writeError(ctx, w, http.StatusInternalServerError, "model unavailable", nil)
			return
		}

		writeJSON(ctx, w, http.StatusOK, m)
	}
}

type submitRequest struct {
	Lead struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Company   string `json:"company"`
		Role      string `json:"role"`
		Consent   bool   `json:"consent"`
	} `json:"lead"`
	Responses map[string]int `json:"responses"`
}

type submitResponse struct {
	ReportToken  string             `json:"report_token"`
	OverallScore float64            `json:"overall_score"`
	OverallLevel int                `json:"overall_level"`
	AreaScores   map[string]float64 `json:"area_scores"`
}

func submitHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(ctx, w, http.StatusBadRequest, "invalid request body", nil)
			return
		}

		lead := &model.Lead{
			FirstName: req.Lead.FirstName,
			LastName:  req.Lead.LastName,
			Email:     req.Lead.Email,
			Company:   req.Lead.Company,
			Role:      req.Lead.Role,
			Consent:   req.Lead.Consent,
		}

		responses := make(model.ResponseSet, len(req.Responses))
		for id, rating := range req.Responses {
			responses[types.QuestionID(id)] = rating
		}

		result, err := uc.SubmitAssessment(ctx, lead, responses)
		if err != nil {
			var leadErr *usecase.LeadError
			if errors.As(err, &leadErr) {
				writeError(ctx, w, http.StatusBadRequest, "lead validation failed", leadErr.Fields)
				return
			}
			var validationErr *usecase.ValidationError
			if errors.As(err, &validationErr) {
				writeError(ctx, w, http.StatusBadRequest, "response validation failed", validationErr.Errors)
				return
			}
			errutil.Handle(ctx, err, "failed to process submission")
			writeError(ctx, w, http.StatusInternalServerError, "submission failed", nil)
			return
		}

		scores := result.Submission.Assessment.Scores
		writeJSON(ctx, w, http.StatusOK, submitResponse{
			ReportToken:  result.Submission.Assessment.ReportToken.String(),
			OverallScore: scores.OverallScore,
			OverallLevel: int(scores.OverallLevel),
			AreaScores:   scores.AreaScores,
		})
	}
}

type reportResponse struct {
	Assessment *model.Assessment    `json:"assessment"`
	Lead       *model.Lead          `json:"lead"`
	Model      *model.MaturityModel `json:"model"`
	Report     *model.Report        `json:"report"`
}

func reportHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := types.ReportToken(chi.URLParam(r, "token"))

		view, err := uc.GetReport(ctx, token)
		if err != nil {
			if errors.Is(err, usecase.ErrReportNotFound) {
				writeError(ctx, w, http.StatusNotFound, "report not found", nil)
				return
			}
			errutil.Handle(ctx, err, "failed to retrieve report")
			writeError(ctx, w, http.StatusInternalServerError, "report retrieval failed", nil)
			return
		}

		m, err := uc.GetModel(ctx)
		if err != nil {
			errutil.Handle(ctx, err, "failed to load maturity model")
			writeError(ctx, w, http.StatusInternalServerError, "model unavailable", nil)
			return
		}

		writeJSON(ctx, w, http.StatusOK, reportResponse{
			Assessment: view.Submission.Assessment,
			Lead:       view.Submission.Lead,
			Model:      m,
			Report:     view.Report,
		})
	}
}

func adminVerifyHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(ctx, w, http.StatusBadRequest, "invalid request body", nil)
			return
		}

		if err := uc.VerifyAdmin(ctx, req.Username, req.Password); err != nil {
			writeError(ctx, w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		writeJSON(ctx, w, http.StatusOK, map[string]bool{"success": true})
	}
}

func adminAssessmentsHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Submissions []*model.Submission `json:"submissions"`
		Count       int                 `json:"count"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		submissions, err := uc.ListSubmissions(ctx)
		if err != nil {
			errutil.Handle(ctx, err, "admin listing failed")
			writeError(ctx, w, http.StatusInternalServerError, "listing failed", nil)
			return
		}

		writeJSON(ctx, w, http.StatusOK, response{
			Submissions: submissions,
			Count:       len(submissions),
		})
	}
}
