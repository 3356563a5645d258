package submitInquiry

import (
	"errors"
	"expoBooths/internal/inquiry"
	"expoBooths/internal/lib/api/response"
	"expoBooths/internal/lib/logger/sl"
	"expoBooths/internal/models"
	"expoBooths/internal/storage/catalog"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// fieldBoothID names the booth in field errors, as in the request body.
const fieldBoothID = "booth_id"

type SubmitResponse struct {
	response.Response
	Fields []inquiry.FieldError `json:"fields,omitempty"`
	Form   *inquiry.Form        `json:"form,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BoothGetter
type BoothGetter interface {
	GetEntry(id string) (models.Entry, error)
}

// New accepts a booth inquiry. The submission is validated and logged;
// it is not stored.
func New(log *slog.Logger, booths BoothGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inquiry.submitInquiry.New"

		log := log.With(slog.String("op", op))

		var req inquiry.Submission

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		fieldErrs := req.Validate()

		if req.BoothID != "" {
			entry, err := booths.GetEntry(req.BoothID)
			switch {
			case errors.Is(err, catalog.ErrEntryNotFound):
				fieldErrs = append(fieldErrs, inquiry.FieldError{Field: fieldBoothID, Message: "Unknown booth."})
			case err != nil:
				log.Error("failed to get booth", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get booth"))

				return
			case !entry.IsBooth():
				fieldErrs = append(fieldErrs, inquiry.FieldError{Field: fieldBoothID, Message: "Unknown booth."})
			case entry.Status == models.StatusSold:
				fieldErrs = append(fieldErrs, inquiry.FieldError{Field: fieldBoothID, Message: "This booth is already sold."})
			}
		}

		if len(fieldErrs) > 0 {
			log.Info("invalid inquiry", slog.Int("errors", len(fieldErrs)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, SubmitResponse{
				Response: response.Error("invalid inquiry"),
				Fields:   fieldErrs,
			})

			return
		}

		pkg, _ := models.ParsePackage(req.Package)

		log.Info("inquiry received",
			slog.String("package", string(pkg)),
			slog.String("booth_id", req.BoothID),
		)

		responseOK(w, r, inquiry.Form{Package: pkg, BoothID: req.BoothID})
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, form inquiry.Form) {
	render.JSON(w, r, SubmitResponse{
		Response: response.OK(),
		Form:     &form,
	})
}
