package getInquiry

import (
	"expoBooths/internal/inquiry"
	"expoBooths/internal/lib/api/response"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type InquiryResponse struct {
	response.Response
	Form    inquiry.Form     `json:"form"`
	Options []inquiry.Option `json:"options"`
}

// New returns the defaults of the inquiry form read from the package and
// boothId query parameters. Missing or unknown values are not errors.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inquiry.getInquiry.New"

		log := log.With(slog.String("op", op))

		form := inquiry.Prefill(r.URL.Query())

		log.Info("inquiry form prefilled",
			slog.String("package", string(form.Package)),
			slog.String("booth_id", form.BoothID),
		)

		render.JSON(w, r, InquiryResponse{
			Response: response.OK(),
			Form:     form,
			Options:  inquiry.Options(),
		})
	}
}
