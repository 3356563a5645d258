package mwmetrics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestObserver
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// New records every request under its chi route pattern, so that path
// parameters do not blow up label cardinality.
func New(observer RequestObserver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			observer.ObserveRequest(r.Method, route, status, time.Since(start))
		}

		return http.HandlerFunc(fn)
	}
}
