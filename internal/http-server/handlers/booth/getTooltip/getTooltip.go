package getTooltip

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

type TooltipResponse struct {
	response.Response
	Tooltip floorplan.TooltipContent `json:"tooltip"`
	Lines   []string                 `json:"lines"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EntryGetter
type EntryGetter interface {
	GetEntry(id string) (models.Entry, error)
}

func New(log *slog.Logger, getter EntryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booth.getTooltip.New"

		log := log.With(slog.String("op", op))

		boothID := chi.URLParam(r, "id")
		if err := validator.New().Var(boothID, "required,alphanum,max=16"); err != nil {
			log.Error("invalid booth id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booth id"))
			return
		}

		log = log.With(slog.String("booth_id", boothID))

		entry, err := getter.GetEntry(boothID)
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

		content, ok := floorplan.TooltipFor(floorplan.Render([]models.Entry{entry})[0])
		if !ok {
			log.Info("entry is not a booth")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("booth not found"))
			return
		}

		responseOK(w, r, content)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, content floorplan.TooltipContent) {
	render.JSON(w, r, TooltipResponse{
		Response: response.OK(),
		Tooltip:  content,
		Lines:    content.Lines(),
	})
}
