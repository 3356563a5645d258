package router

import (
	"expoBooths/internal/http-server/handlers/booth/floorPlanPage"
	"expoBooths/internal/http-server/handlers/booth/getDetail"
	"expoBooths/internal/http-server/handlers/booth/getFloorPlan"
	"expoBooths/internal/http-server/handlers/booth/getTooltip"
	"expoBooths/internal/http-server/handlers/inquiry/getInquiry"
	"expoBooths/internal/http-server/handlers/inquiry/submitInquiry"
	"expoBooths/internal/http-server/middleware/mwlogger"
	"expoBooths/internal/http-server/middleware/mwmetrics"
	"expoBooths/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Catalog is the read side of the floor plan used by every booth route.
type Catalog interface {
	Entries() []models.Entry
	GetEntry(id string) (models.Entry, error)
	PackageDetails(pkg models.Package) (models.PackageDetails, bool)
}

// Metrics is optional; when nil no metrics route or middleware is
// installed.
type Metrics interface {
	mwmetrics.RequestObserver
	getDetail.DetailObserver
}

type Options struct {
	InquiryBase string
	Metrics     Metrics
	MetricsPath string
	MetricsHTTP http.Handler
}

func New(log *slog.Logger, catalog Catalog, opts Options) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	if opts.Metrics != nil {
		router.Use(mwmetrics.New(opts.Metrics))
	}
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/floor-plan", http.StatusFound)
	})
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/floor-plan", floorPlanPage.New(log, catalog, opts.InquiryBase))
	router.Get("/inquiry", getInquiry.New(log))
	router.Post("/inquiry", submitInquiry.New(log, catalog))

	var detailObserver getDetail.DetailObserver
	if opts.Metrics != nil {
		detailObserver = opts.Metrics
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/floor-plan", getFloorPlan.New(log, catalog, opts.InquiryBase))
		r.Get("/booths/{id}/tooltip", getTooltip.New(log, catalog))
		r.Get("/booths/{id}/detail", getDetail.New(log, catalog, opts.InquiryBase, detailObserver))
	})

	if opts.Metrics != nil && opts.MetricsHTTP != nil {
		router.Handle(opts.MetricsPath, opts.MetricsHTTP)
	}

	return router
}
