package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestSpliceOverlay(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		view    string
		overlay []string
		x, y    int
		want    string
	}{
		{
			name:    "inside a line",
			view:    "abcdefgh\n12345678",
			overlay: []string{"XY"},
			x:       2, y: 1,
			want: "abcdefgh\n12XY5678",
		},
		{
			name:    "past the end of a line",
			view:    "abc",
			overlay: []string{"XY"},
			x:       5, y: 0,
			want: "abc  XY",
		},
		{
			name:    "below the view",
			view:    "abc",
			overlay: []string{"XY", "ZW"},
			x:       1, y: 1,
			want: "abc\n XY\n ZW",
		},
		{
			name:    "negative anchor is clamped",
			view:    "abcd",
			overlay: []string{"XY"},
			x:       -3, y: -1,
			want: "XYcd",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := spliceOverlay(tc.view, tc.overlay, tc.x, tc.y)
			assert.Equal(t, tc.want, ansi.Strip(got))
		})
	}
}

func TestSpliceOverlayKeepsStyledSuffix(t *testing.T) {
	t.Parallel()

	view := "\x1b[31mredredred\x1b[0m"
	got := spliceOverlay(view, []string{"ab"}, 3, 0)

	assert.Equal(t, "redabdred", ansi.Strip(got))
	assert.Equal(t, 9, ansi.StringWidth(got))
}

func TestPadLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Booth B01  ", "Package: ab"}, padLines([]string{"Booth B01", "Package: ab"}))
}
