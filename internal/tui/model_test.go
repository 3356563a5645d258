package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expoBooths/internal/floorplan"
	"expoBooths/internal/models"
	"expoBooths/internal/storage/catalog"
)

// On the map: B01 at x 0-4, spacer at 6-10, G01 at 12-22, S01 at 24-28.
func testEntries() []models.Entry {
	return []models.Entry{
		models.Booth("B01", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		models.Spacer("s1", models.SpacerCell),
		models.Booth("G01", models.Size4x3, models.PackageGold, models.StatusReserved),
		models.Booth("S01", models.Size3x3, models.PackageSilver, models.StatusSold),
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()

	model, err := NewModel(testEntries(), catalog.Default(), "/inquiry", DefaultTheme())
	require.NoError(t, err)

	return update(t, model, tea.WindowSizeMsg{Width: 80, Height: 30})
}

func update(t *testing.T, model Model, message tea.Msg) Model {
	t.Helper()

	next, _ := model.Update(message)
	m, ok := next.(Model)
	require.True(t, ok)
	return m
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelWritesCounts(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)

	assert.Equal(t, map[string]string{
		floorplan.SlotAvailable: "1",
		floorplan.SlotReserved:  "1",
		floorplan.SlotSold:      "1",
	}, model.screen.slots)

	frame := ansi.Strip(model.View())
	assert.Contains(t, frame, "available: 1")
	assert.Contains(t, frame, "B01")
	assert.Contains(t, frame, "G01")
}

func TestHoverShowsTooltip(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)

	model = update(t, model, motion(1, mapTop))
	tooltip := model.screen.tooltip
	require.True(t, tooltip.Shown())
	assert.Equal(t, "B01", tooltip.Content().ID)
	assert.Equal(t, floorplan.Point{X: 8 + floorplan.TooltipOffset, Y: floorplan.TooltipOffset}, tooltip.Position())
	assert.Contains(t, ansi.Strip(model.View()), "Package: basic")

	model = update(t, model, motion(3, mapTop))
	assert.Equal(t, floorplan.Point{X: 24 + floorplan.TooltipOffset, Y: floorplan.TooltipOffset}, model.screen.tooltip.Position())

	// Moving onto the spacer leaves the booth.
	model = update(t, model, motion(7, mapTop))
	assert.False(t, model.screen.tooltip.Shown())
	assert.NotContains(t, ansi.Strip(model.View()), "Package: basic")

	model = update(t, model, motion(13, mapTop))
	require.True(t, model.screen.tooltip.Shown())
	assert.Equal(t, "G01", model.screen.tooltip.Content().ID)
}

func TestClickOpensAndClosesModal(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)

	model = update(t, model, motion(13, mapTop))
	model = update(t, model, press(13, mapTop))

	modal := model.screen.modal
	require.True(t, modal.IsOpen())
	assert.Equal(t, "G01", modal.Content().ID)
	assert.Equal(t, "Gold Package", modal.Content().Title)
	assert.False(t, model.screen.tooltip.Shown())

	frame := ansi.Strip(model.View())
	assert.Contains(t, frame, "Gold Package")
	assert.Contains(t, frame, "/inquiry?boothId=G01&package=gold")

	_, x, y, _, _ := model.modalBox()
	model = update(t, model, press(x+2, y+2))
	assert.True(t, model.screen.modal.IsOpen(), "clicks inside the panel keep it open")

	model = update(t, model, press(0, 0))
	assert.False(t, model.screen.modal.IsOpen())
}

func TestClickSoldBoothIsNoop(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)

	model = update(t, model, press(25, mapTop))
	assert.False(t, model.screen.modal.IsOpen())

	model = update(t, model, press(7, mapTop))
	assert.False(t, model.screen.modal.IsOpen())
}

func TestEscClosesModal(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)

	model = update(t, model, press(1, mapTop))
	require.True(t, model.screen.modal.IsOpen())

	model = update(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, model.screen.modal.IsOpen())
}

func TestFilterKeys(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		key     string
		active  floorplan.Filter
		visible []string
	}{
		{key: "1", active: "basic", visible: []string{"B01"}},
		{key: "2", active: "silver", visible: []string{"S01"}},
		{key: "3", active: "gold", visible: []string{"G01"}},
		{key: "4", active: "platinum", visible: []string{}},
		{key: "a", active: "all", visible: []string{"B01", "G01", "S01"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.key, func(t *testing.T) {
			t.Parallel()

			model := update(t, newTestModel(t), keyPress(tc.key))
			assert.Equal(t, tc.active, model.view.ActiveFilter())

			visible := []string{}
			for _, n := range floorplan.VisibleBooths(model.screen.nodes) {
				visible = append(visible, n.ID)
			}
			assert.Equal(t, tc.visible, visible)
		})
	}
}

func TestHiddenBoothIgnoresPointer(t *testing.T) {
	t.Parallel()

	model := update(t, newTestModel(t), keyPress("3"))

	model = update(t, model, motion(1, mapTop))
	assert.False(t, model.screen.tooltip.Shown())

	model = update(t, model, press(1, mapTop))
	assert.False(t, model.screen.modal.IsOpen())
	assert.NotContains(t, ansi.Strip(model.View()), "B01")
}

func TestClickFilterControl(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)

	// " all " " basic " ... separated by one space.
	model = update(t, model, press(7, controlsLine))
	assert.Equal(t, floorplan.Filter("basic"), model.view.ActiveFilter())

	header := strings.Split(ansi.Strip(model.View()), "\n")[controlsLine]
	assert.Equal(t, " all   basic   silver   gold   platinum ", header)
}

func TestQuit(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	model = update(t, model, press(1, mapTop))

	next, cmd := model.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.False(t, next.(Model).screen.modal.IsOpen())
}

func TestZeroKeyResetsFilter(t *testing.T) {
	t.Parallel()

	model := update(t, newTestModel(t), keyPress("4"))
	require.Equal(t, floorplan.Filter("platinum"), model.view.ActiveFilter())

	model = update(t, model, keyPress("0"))
	assert.Equal(t, floorplan.FilterAll, model.view.ActiveFilter())
	assert.Len(t, floorplan.VisibleBooths(model.screen.nodes), 3)
}

func TestFooterListsKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"a all  1 basic  2 silver  3 gold  4 platinum  esc close  q quit",
		DefaultKeyMap.shortHelp(),
	)
}

func TestFilterDropsTooltipOfHiddenBooth(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)

	model = update(t, model, motion(1, mapTop))
	require.True(t, model.screen.tooltip.Shown())

	model = update(t, model, keyPress("3"))
	assert.False(t, model.screen.tooltip.Shown())
	assert.NotContains(t, ansi.Strip(model.View()), "Booth B01")

	// Back to all booths, the pointer still resting on B01 shows it again.
	model = update(t, model, keyPress("a"))
	model = update(t, model, motion(2, mapTop))
	require.True(t, model.screen.tooltip.Shown())
	assert.Equal(t, "B01", model.screen.tooltip.Content().ID)
}
