package http

import (
	"net/http"

	"github.com/tq-lab/maturika/pkg/usecase"
)

// adminAuth gates admin routes on credential headers. Every request
// re-authenticates; there is no session state to steal or expire.
func adminAuth(uc *usecase.UseCases) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			username := r.Header.Get("X-Admin-Username")
			password := r.Header.Get("X-Admin-Password")

			if err := uc.VerifyAdmin(ctx, username, password); err != nil {
				writeError(ctx, w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
