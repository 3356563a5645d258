package floorplan

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expoBooths/internal/models"
	"expoBooths/internal/storage/catalog"
)

type detailsMap map[models.Package]models.PackageDetails

func (m detailsMap) PackageDetails(pkg models.Package) (models.PackageDetails, bool) {
	d, ok := m[pkg]
	return d, ok
}

func TestBuildDetail(t *testing.T) {
	t.Parallel()

	details := catalog.Default()
	nodes := Render([]models.Entry{
		models.Booth("B01", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		models.Booth("G01", models.Size4x3, models.PackageGold, models.StatusSold),
		models.Booth("G02", models.Size4x3, models.PackageGold, models.StatusReserved),
		models.Spacer("s1", models.SpacerCell),
	})

	d, ok := BuildDetail(nodes[0], details, "/inquiry")
	require.True(t, ok)
	assert.Equal(t, "Basic Package", d.Title)
	assert.Equal(t, "B01", d.ID)
	assert.Equal(t, "3m x 3m", d.SizeLabel)
	assert.Equal(t, []string{"Standard booth", "Website listing", "2 exhibitor passes"}, d.Benefits)
	assert.Equal(t, models.StatusAvailable, d.Status)
	assert.Equal(t, "status-available", d.StatusClass())

	u, err := url.Parse(d.InquiryURL)
	require.NoError(t, err)
	assert.Equal(t, "B01", u.Query().Get("boothId"))
	assert.Equal(t, "basic", u.Query().Get("package"))

	_, ok = BuildDetail(nodes[1], details, "/inquiry")
	assert.False(t, ok, "sold booths open nothing")

	d, ok = BuildDetail(nodes[2], details, "/inquiry")
	require.True(t, ok, "reserved booths can still be inquired about")
	assert.Equal(t, models.StatusReserved, d.Status)

	_, ok = BuildDetail(nodes[3], details, "/inquiry")
	assert.False(t, ok)
}

func TestBuildDetailMissingPackagePanics(t *testing.T) {
	t.Parallel()

	nodes := Render([]models.Entry{
		models.Booth("P01", models.Size7x3, models.PackagePlatinum, models.StatusAvailable),
	})

	assert.Panics(t, func() {
		BuildDetail(nodes[0], detailsMap{}, "/inquiry")
	})
}

func TestBuildDetailCopiesBenefits(t *testing.T) {
	t.Parallel()

	details := detailsMap{
		models.PackageGold: {SizeLabel: "4m x 3m", Benefits: []string{"a", "b"}},
	}
	nodes := Render([]models.Entry{
		models.Booth("G05", models.Size4x3, models.PackageGold, models.StatusAvailable),
	})

	d, ok := BuildDetail(nodes[0], details, "/inquiry")
	require.True(t, ok)
	d.Benefits[0] = "changed"

	assert.Equal(t, "a", details[models.PackageGold].Benefits[0])
}

func TestModal(t *testing.T) {
	t.Parallel()

	var m Modal
	assert.False(t, m.IsOpen())

	m.Open(Detail{ID: "B01"})
	m.Open(Detail{ID: "B02"})
	assert.True(t, m.IsOpen())
	assert.Equal(t, "B02", m.Content().ID, "opening again replaces the content")

	m.ClickScrim(true)
	assert.True(t, m.IsOpen())

	m.ClickScrim(false)
	assert.False(t, m.IsOpen())
	assert.Equal(t, Detail{}, m.Content())

	m.Open(Detail{ID: "B03"})
	m.Close()
	assert.False(t, m.IsOpen())
}
