package getFloorPlan

import (
	"errors"
	"expoBooths/internal/floorplan"
	"expoBooths/internal/http-server/floorview"
	"expoBooths/internal/lib/api/response"
	"expoBooths/internal/lib/logger/sl"
	"expoBooths/internal/models"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type Request struct {
	Filter string `validate:"omitempty,oneof=all basic silver gold platinum"`
}

type FloorPlanResponse struct {
	response.Response
	Filter   floorplan.Filter          `json:"filter"`
	Controls []floorplan.FilterControl `json:"controls"`
	Counts   floorplan.Counts          `json:"counts"`
	Nodes    []floorplan.Node          `json:"nodes"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FloorPlanReader
type FloorPlanReader interface {
	Entries() []models.Entry
	PackageDetails(pkg models.Package) (models.PackageDetails, bool)
}

func New(log *slog.Logger, reader FloorPlanReader, inquiryBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booth.getFloorPlan.New"

		log := log.With(slog.String("op", op))

		req := Request{Filter: r.URL.Query().Get("filter")}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		snap, err := floorview.Build(reader, inquiryBase, floorview.Selection{Filter: req.Filter})
		if err != nil {
			log.Error("failed to build floor plan", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to build floor plan"))
			return
		}

		log.Info("floor plan rendered",
			slog.String("filter", string(snap.Filter)),
			slog.Int("nodes", len(snap.Nodes)),
		)

		responseOK(w, r, snap)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, snap floorview.Snapshot) {
	render.JSON(w, r, FloorPlanResponse{
		Response: response.OK(),
		Filter:   snap.Filter,
		Controls: snap.Controls,
		Counts:   snap.Counts,
		Nodes:    snap.Nodes,
	})
}
