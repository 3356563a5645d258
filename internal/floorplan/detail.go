package floorplan

import (
	"fmt"
	"strings"

	"expoBooths/internal/inquiry"
	"expoBooths/internal/models"
)

// DetailsSource looks up the benefits sheet of a package.
type DetailsSource interface {
	PackageDetails(pkg models.Package) (models.PackageDetails, bool)
}

// Detail is the content of the booth detail modal.
type Detail struct {
	Title      string         `json:"title"`
	ID         string         `json:"id"`
	Package    models.Package `json:"package"`
	SizeLabel  string         `json:"size_label"`
	Benefits   []string       `json:"benefits"`
	Status     models.Status  `json:"status"`
	InquiryURL string         `json:"inquiry_url"`
}

// StatusClass is the class used to style the status line.
func (d Detail) StatusClass() string {
	return "status-" + string(d.Status)
}

// BuildDetail assembles the modal for a booth. It reports false for
// spacers and sold booths, which open nothing. The package set is closed
// and checked when the catalog is loaded, so a missing details entry is a
// programming error and panics.
func BuildDetail(n Node, details DetailsSource, inquiryBase string) (Detail, bool) {
	if !n.IsBooth() || n.Status == models.StatusSold {
		return Detail{}, false
	}

	sheet, ok := details.PackageDetails(n.Package)
	if !ok {
		panic(fmt.Sprintf("floorplan: no package details for %q (booth %s)", n.Package, n.ID))
	}

	return Detail{
		Title:      packageTitle(n.Package),
		ID:         n.ID,
		Package:    n.Package,
		SizeLabel:  sheet.SizeLabel,
		Benefits:   append([]string(nil), sheet.Benefits...),
		Status:     n.Status,
		InquiryURL: inquiry.Link(inquiryBase, n.ID, n.Package),
	}, true
}

func packageTitle(p models.Package) string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:] + " Package"
}

// Modal is the single booth detail modal. Opening it while open replaces
// its content.
type Modal struct {
	open    bool
	content Detail
}

func (m *Modal) Open(d Detail) {
	m.content = d
	m.open = true
}

func (m *Modal) Close() {
	m.open = false
	m.content = Detail{}
}

// ClickScrim closes the modal when the click lands on the background
// outside the content panel.
func (m *Modal) ClickScrim(insidePanel bool) {
	if insidePanel {
		return
	}
	m.Close()
}

func (m Modal) IsOpen() bool {
	return m.open
}

func (m Modal) Content() Detail {
	return m.content
}
