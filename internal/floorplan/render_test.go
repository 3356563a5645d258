package floorplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expoBooths/internal/models"
	"expoBooths/internal/storage/catalog"
)

func TestSizeSpan(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		size models.Size
		want int
	}{
		{size: models.Size3x3, want: 1},
		{size: models.Size4x3, want: 2},
		{size: "4x3", want: 2},
		{size: models.Size6x3, want: 4},
		{size: models.Size7x3, want: 5},
		{size: "10X10", want: 1},
		{size: "", want: 1},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(string(tc.size), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, SizeSpan(tc.size))
		})
	}
}

func TestSpacerSpan(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, SpacerSpan(models.SpacerCell))
	assert.Equal(t, 2, SpacerSpan(models.SpacerEdge))
	assert.Equal(t, 3, SpacerSpan(models.SpacerAisle))
	assert.Equal(t, 12, SpacerSpan(models.SpacerRow))
	assert.Equal(t, 1, SpacerSpan("unknown"))
}

func TestRenderKeepsOrderAndCount(t *testing.T) {
	t.Parallel()

	entries := catalog.Default().Entries()
	nodes := Render(entries)

	require.Len(t, nodes, len(entries))
	for i, e := range entries {
		assert.Equal(t, e.Kind, nodes[i].Kind, "node %d", i)
		if e.IsBooth() {
			assert.Equal(t, e.ID, nodes[i].ID)
			assert.Equal(t, e.Package, nodes[i].Package)
			assert.Equal(t, e.Status, nodes[i].Status)
		}
	}
}

func TestRenderNodes(t *testing.T) {
	t.Parallel()

	nodes := Render([]models.Entry{
		models.Booth("G09", "6x3", models.PackageGold, models.StatusReserved),
		models.Spacer("mid1", models.SpacerRow),
		models.Booth("X01", "9X9", "bronze", "pending"),
	})
	require.Len(t, nodes, 3)

	gold := nodes[0]
	assert.Equal(t, 4, gold.Span)
	assert.Equal(t, "6X3", gold.Label)
	assert.Equal(t, []string{"booth", "reserved", "gold"}, gold.Classes())
	id, ok := gold.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "G09", id)
	status, _ := gold.Attr("status")
	assert.Equal(t, "reserved", status)
	_, ok = gold.Attr("size")
	assert.False(t, ok)

	spacer := nodes[1]
	assert.False(t, spacer.IsBooth())
	assert.Equal(t, 12, spacer.Span)
	assert.Empty(t, spacer.ID)
	assert.Equal(t, []string{"booth-spacer", "row"}, spacer.Classes())
	_, ok = spacer.Attr("id")
	assert.False(t, ok)

	unknown := nodes[2]
	assert.Equal(t, 1, unknown.Span)
	assert.True(t, unknown.IsBooth())
}

func TestContainerReplaceIsIdempotent(t *testing.T) {
	t.Parallel()

	entries := catalog.Default().Entries()

	var c Container
	c.Replace(Render(entries))
	first := c.Nodes()
	c.Replace(Render(entries))

	assert.Equal(t, len(entries), c.Len())
	assert.Equal(t, first, c.Nodes())
}

func TestContainerLookup(t *testing.T) {
	t.Parallel()

	var c Container
	c.Replace(Render([]models.Entry{
		models.Spacer("s1", models.SpacerCell),
		models.Booth("B01", models.Size3x3, models.PackageBasic, models.StatusAvailable),
	}))

	i, ok := c.IndexOf("B01")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = c.IndexOf("s1")
	assert.False(t, ok, "spacers are not tagged with an id")

	_, ok = c.At(5)
	assert.False(t, ok)
	_, ok = c.At(-1)
	assert.False(t, ok)
}
