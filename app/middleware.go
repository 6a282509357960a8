package app

import (
	"net/http"

	"github.com/km-arc/go-container/container"
)

// TaskSpan opens a fresh task span for every incoming request and carries the
// bound resolver in the request context. Handlers recover it with
// container.FromTaskContext, so per-task services behave as request-scoped.
func TaskSpan(sp *container.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := container.NewTaskContext(r.Context(), sp)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
