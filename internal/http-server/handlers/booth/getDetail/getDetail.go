package getDetail

import (
	"errors"
	"expoBooths/internal/floorplan"
	"expoBooths/internal/lib/api/response"
	"expoBooths/internal/lib/logger/sl"
	"expoBooths/internal/models"
	"expoBooths/internal/storage/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type DetailResponse struct {
	response.Response
	Detail floorplan.Detail `json:"detail"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BoothDetailer
type BoothDetailer interface {
	GetEntry(id string) (models.Entry, error)
	PackageDetails(pkg models.Package) (models.PackageDetails, bool)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DetailObserver
type DetailObserver interface {
	ObserveDetail(pkg models.Package)
}

// New serves the booth detail panel. Sold booths answer 204 with no body:
// clicking them opens nothing.
func New(log *slog.Logger, detailer BoothDetailer, inquiryBase string, observer DetailObserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booth.getDetail.New"

		log := log.With(slog.String("op", op))

		boothID := chi.URLParam(r, "id")
		if err := validator.New().Var(boothID, "required,alphanum,max=16"); err != nil {
			log.Error("invalid booth id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booth id"))
			return
		}

		log = log.With(slog.String("booth_id", boothID))

		entry, err := detailer.GetEntry(boothID)
		if err != nil {
			if errors.Is(err, catalog.ErrEntryNotFound) {
				log.Info("booth not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booth not found"))
				return
			}

			log.Error("failed to get booth", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booth"))
			return
		}

		if !entry.IsBooth() {
			log.Info("entry is not a booth")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("booth not found"))
			return
		}

		detail, ok := floorplan.BuildDetail(floorplan.Render([]models.Entry{entry})[0], detailer, inquiryBase)
		if !ok {
			log.Info("booth is sold, nothing to show")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if observer != nil {
			observer.ObserveDetail(detail.Package)
		}

		log.Info("booth detail served", slog.String("package", string(detail.Package)))

		responseOK(w, r, detail)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, detail floorplan.Detail) {
	render.JSON(w, r, DetailResponse{
		Response: response.OK(),
		Detail:   detail,
	})
}
