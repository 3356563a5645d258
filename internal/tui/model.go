package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"expoBooths/internal/floorplan"
	"expoBooths/internal/models"
)

var ErrNotMounted = errors.New("floor plan view could not be mounted")

const (
	controlsLine = 0
	// mapTop is the first screen line of the booth map.
	mapTop = 3

	modalWidth = 56
)

// screen is what the floor plan view paints into. The model reads it back
// when bubbletea asks for a frame.
type screen struct {
	nodes    []floorplan.Node
	controls []floorplan.FilterControl
	tooltip  floorplan.Tooltip
	modal    floorplan.Modal
	slots    map[string]string
}

func (s *screen) PaintMap(nodes []floorplan.Node)                  { s.nodes = nodes }
func (s *screen) PaintControls(controls []floorplan.FilterControl) { s.controls = controls }
func (s *screen) PaintTooltip(t floorplan.Tooltip)                 { s.tooltip = t }
func (s *screen) PaintModal(m floorplan.Modal)                     { s.modal = m }

type slotWriter struct {
	screen *screen
	id     string
}

func (w slotWriter) SetText(text string) { w.screen.slots[w.id] = text }

// controlRect is the clickable area of one filter button on the
// controls line.
type controlRect struct {
	filter floorplan.Filter
	x      int
	width  int
}

// Model is the bubbletea model of the terminal floor plan.
type Model struct {
	view   *floorplan.View
	screen *screen
	theme  Theme
	keys   KeyMap

	width  int
	height int

	rects   []rect
	hovered int
}

// NewModel mounts the catalog entries on a terminal screen.
func NewModel(entries []models.Entry, details floorplan.DetailsSource, inquiryBase string, theme Theme) (Model, error) {
	s := &screen{slots: make(map[string]string, 3)}

	view, ok := floorplan.Mount(entries, details, inquiryBase, floorplan.Host{
		Map:      s,
		Tooltip:  s,
		Modal:    s,
		Controls: s,
		Slots: map[string]floorplan.CountSlot{
			floorplan.SlotAvailable: slotWriter{screen: s, id: floorplan.SlotAvailable},
			floorplan.SlotReserved:  slotWriter{screen: s, id: floorplan.SlotReserved},
			floorplan.SlotSold:      slotWriter{screen: s, id: floorplan.SlotSold},
		},
		Filters: floorplan.Filters(),
	})
	if !ok {
		return Model{}, ErrNotMounted
	}

	return Model{
		view:    view,
		screen:  s,
		theme:   theme,
		keys:    DefaultKeyMap,
		width:   gridColumns * cellWidth,
		height:  24,
		rects:   layoutNodes(s.nodes),
		hovered: -1,
	}, nil
}

func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height

	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.MouseMsg:
		model.handleMouse(message)
	}

	return model, nil
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		model.view.Unmount()
		return model, tea.Quit
	case key.Matches(message, model.keys.CloseModal):
		model.view.CloseModal()
		return model, nil
	}

	for _, f := range model.keys.filterBindings() {
		if key.Matches(message, f.binding) {
			model.clickFilter(f.value)
			break
		}
	}

	return model, nil
}

// clickFilter applies a filter. When the hovered booth lost its tooltip
// the pointer no longer counts as over it, so the next motion onto a
// visible booth enters it again.
func (model *Model) clickFilter(value string) {
	model.view.ClickFilter(value)
	if !model.screen.tooltip.Shown() {
		model.hovered = -1
	}
}

func (model *Model) handleMouse(message tea.MouseMsg) {
	mapX, mapY := message.X, message.Y-mapTop

	if message.Action == tea.MouseActionMotion && message.Button == tea.MouseButtonNone {
		if model.screen.modal.IsOpen() {
			return
		}
		model.hover(hitTest(model.rects, mapX, mapY))
		model.view.PointerMove(toPixels(mapX, mapY))
		return
	}

	if message.Action != tea.MouseActionPress || message.Button != tea.MouseButtonLeft {
		return
	}

	if model.screen.modal.IsOpen() {
		_, x, y, w, h := model.modalBox()
		inside := message.X >= x && message.X < x+w && message.Y >= y && message.Y < y+h
		model.view.ClickScrim(inside)
		return
	}

	if message.Y == controlsLine {
		for _, c := range model.controlRects() {
			if message.X >= c.x && message.X < c.x+c.width {
				model.clickFilter(string(c.filter))
				return
			}
		}
		return
	}

	idx := hitTest(model.rects, mapX, mapY)
	if idx < 0 {
		return
	}
	model.view.Click(idx)

	// The modal covers the map, so the pointer has left the booth.
	if model.screen.modal.IsOpen() {
		model.hover(-1)
	}
}

// hover moves the pointer onto the node at idx, leaving the previous one.
func (model *Model) hover(idx int) {
	if idx == model.hovered {
		return
	}
	if model.hovered >= 0 {
		model.view.PointerLeave(model.hovered)
	}
	model.hovered = idx
	if idx >= 0 {
		model.view.PointerEnter(idx)
	}
}

func (model Model) controlRects() []controlRect {
	rects := make([]controlRect, 0, len(model.screen.controls))
	x := 0
	for _, c := range model.screen.controls {
		w := len(c.Value) + 2
		rects = append(rects, controlRect{filter: c.Value, x: x, width: w})
		x += w + 1
	}
	return rects
}

// View implements tea.Model.
func (model Model) View() string {
	lines := []string{
		model.renderControls(),
		model.renderCounts(),
		"",
	}
	lines = append(lines, model.renderMap()...)
	lines = append(lines, "", lipgloss.NewStyle().Foreground(model.theme.FaintText).
		Render(model.keys.shortHelp()))

	frame := strings.Join(lines, "\n")

	if t := model.screen.tooltip; t.Shown() {
		box := model.renderTooltip(t.Content())
		x, y := fromPixels(t.Position())
		y += mapTop
		if w := ansi.StringWidth(box[0]); x+w > model.width {
			x = model.width - w
		}
		frame = spliceOverlay(frame, box, x, y)
	}

	if model.screen.modal.IsOpen() {
		box, x, y, _, _ := model.modalBox()
		frame = spliceOverlay(frame, box, x, y)
	}

	return frame
}

func (model Model) renderControls() string {
	normal := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	active := lipgloss.NewStyle().Bold(true).
		Foreground(model.theme.TooltipForeground).
		Background(model.theme.ActiveFilterBackground)

	parts := make([]string, 0, len(model.screen.controls))
	for _, c := range model.screen.controls {
		label := " " + string(c.Value) + " "
		if c.Active {
			parts = append(parts, active.Render(label))
			continue
		}
		parts = append(parts, normal.Render(label))
	}
	return strings.Join(parts, " ")
}

func (model Model) renderCounts() string {
	count := func(slot string, status models.Status) string {
		return lipgloss.NewStyle().Foreground(model.theme.StatusColor(status)).
			Render(fmt.Sprintf("%s: %s", status, model.screen.slots[slot]))
	}
	return strings.Join([]string{
		count(floorplan.SlotAvailable, models.StatusAvailable),
		count(floorplan.SlotReserved, models.StatusReserved),
		count(floorplan.SlotSold, models.StatusSold),
	}, "   ")
}

func (model Model) renderMap() []string {
	rows := make([]strings.Builder, mapHeight(model.rects))
	cursor := make([]int, len(rows))

	for _, r := range model.rects {
		if pad := r.x - cursor[r.y]; pad > 0 {
			rows[r.y].WriteString(strings.Repeat(" ", pad))
		}
		rows[r.y].WriteString(model.renderNode(model.screen.nodes[r.index], r.width))
		cursor[r.y] = r.x + r.width
	}

	out := make([]string, len(rows))
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}

func (model Model) renderNode(n floorplan.Node, width int) string {
	if !n.IsBooth() || n.Hidden {
		return strings.Repeat(" ", width)
	}

	label := ansi.Truncate(n.ID, width, "")
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(model.theme.PackageColor(n.Package)).
		Background(model.theme.StatusColor(n.Status)).
		Render(label)
}

func (model Model) renderTooltip(content floorplan.TooltipContent) []string {
	style := lipgloss.NewStyle().
		Foreground(model.theme.TooltipForeground).
		Background(model.theme.TooltipBackground).
		Padding(0, 1)

	lines := padLines(content.Lines())
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = style.Render(l)
	}
	return out
}

// modalBox renders the open detail modal and returns its lines with the
// screen rectangle it occupies.
func (model Model) modalBox() (lines []string, x, y, width, height int) {
	d := model.screen.modal.Content()

	body := []string{
		lipgloss.NewStyle().Bold(true).Foreground(model.theme.PackageColor(d.Package)).Render(d.Title),
		"",
		"Booth:  " + d.ID,
		"Size:   " + d.SizeLabel,
		"Status: " + lipgloss.NewStyle().Foreground(model.theme.StatusColor(d.Status)).Render(string(d.Status)),
		"",
		"Benefits:",
	}
	for _, b := range d.Benefits {
		body = append(body, "  • "+b)
	}
	body = append(body, "", "Inquire: "+d.InquiryURL)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor).
		Padding(0, 1).
		Width(modalWidth).
		Render(strings.Join(body, "\n"))

	lines = strings.Split(box, "\n")
	width = ansi.StringWidth(lines[0])
	height = len(lines)
	x = max((model.width-width)/2, 0)
	y = max((model.height-height)/2, 0)
	return lines, x, y, width, height
}
