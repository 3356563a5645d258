package floorPlanPage

import (
	"bytes"
	"embed"
	"expoBooths/internal/floorplan"
	"expoBooths/internal/http-server/floorview"
	"expoBooths/internal/lib/logger/sl"
	"expoBooths/internal/models"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(
	template.New("floor_plan.html").
		Funcs(template.FuncMap{
			"classes": func(n floorplan.Node) string { return strings.Join(n.Classes(), " ") },
			"tooltip": func(n floorplan.Node) string {
				content, ok := floorplan.TooltipFor(n)
				if !ok {
					return ""
				}
				return strings.Join(content.Lines(), " | ")
			},
		}).
		ParseFS(templatesFS, "templates/floor_plan.html"),
)

type pageData struct {
	floorview.Snapshot
	TooltipOffset int
}

type FloorPlanReader interface {
	Entries() []models.Entry
	PackageDetails(pkg models.Package) (models.PackageDetails, bool)
}

// New serves the floor plan page. The filter and booth query parameters
// replay a filter click and a booth click; unknown values are ignored.
func New(log *slog.Logger, reader FloorPlanReader, inquiryBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booth.floorPlanPage.New"

		log := log.With(slog.String("op", op))

		query := r.URL.Query()
		snap, err := floorview.Build(reader, inquiryBase, floorview.Selection{
			Filter:  query.Get("filter"),
			BoothID: query.Get("booth"),
		})
		if err != nil {
			log.Error("failed to build floor plan", sl.Err(err))
			http.Error(w, "failed to build floor plan", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err = pageTemplate.Execute(&buf, pageData{Snapshot: snap, TooltipOffset: floorplan.TooltipOffset}); err != nil {
			log.Error("failed to render floor plan page", sl.Err(err))
			http.Error(w, "failed to render floor plan", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	}
}
