// Package inquiry covers the exhibitor inquiry form: building the outbound
// link from a booth, and reading that link back into form defaults.
package inquiry

import (
	"net/url"
	"strings"

	"expoBooths/internal/models"
)

const (
	ParamPackage = "package"
	ParamBoothID = "boothId"
)

// Option is one entry of the package dropdown on the inquiry form.
type Option struct {
	Value models.Package `json:"value"`
	Label string         `json:"label"`
}

// Form holds the pre-filled values of the inquiry form. Zero values mean
// the field is left at its default.
type Form struct {
	Package models.Package `json:"package,omitempty"`
	BoothID string         `json:"booth_id,omitempty"`
}

func Options() []Option {
	return []Option{
		{Value: models.PackageBasic, Label: "Basic"},
		{Value: models.PackageSilver, Label: "Silver"},
		{Value: models.PackageGold, Label: "Gold"},
		{Value: models.PackagePlatinum, Label: "Platinum"},
	}
}

// Link appends boothId and package to base, keeping any query the base
// already carries.
func Link(base, boothID string, pkg models.Package) string {
	u, err := url.Parse(base)
	if err != nil {
		u = &url.URL{Path: base}
	}

	q := u.Query()
	q.Set(ParamBoothID, boothID)
	q.Set(ParamPackage, string(pkg))
	u.RawQuery = q.Encode()

	return u.String()
}

// Prefill reads the inquiry query. The package is matched
// case-insensitively against the dropdown options; the booth id is copied
// as is.
func Prefill(values url.Values) Form {
	var f Form

	if raw := values.Get(ParamPackage); raw != "" {
		for _, opt := range Options() {
			if strings.EqualFold(raw, string(opt.Value)) {
				f.Package = opt.Value
				break
			}
		}
	}

	f.BoothID = values.Get(ParamBoothID)

	return f
}
