package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tq-lab/maturika/pkg/utils/errutil"
	"github.com/tq-lab/maturika/pkg/utils/safe"
)

// errorResponse is the body of every non-2xx response. Details is only
// populated for validation failures; not-found and unauthorized
// responses stay deliberately opaque.
type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, message string, details any) {
	writeJSON(ctx, w, status, errorResponse{
		Error:   message,
		Details: details,
	})
}
