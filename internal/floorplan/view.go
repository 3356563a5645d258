package floorplan

import "expoBooths/internal/models"

// MapSurface draws the floor plan nodes.
type MapSurface interface {
	PaintMap(nodes []Node)
}

// TooltipSurface draws the hover tooltip.
type TooltipSurface interface {
	PaintTooltip(t Tooltip)
}

// ModalSurface draws the booth detail modal.
type ModalSurface interface {
	PaintModal(m Modal)
}

// CountSlot is an externally owned element showing one status count.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CountSlot
type CountSlot interface {
	SetText(text string)
}

// ControlsSurface draws the filter buttons.
type ControlsSurface interface {
	PaintControls(controls []FilterControl)
}

// Host is what an adapter provides to mount a view. Map, Tooltip and
// Modal are required. Slots are keyed by SlotAvailable, SlotReserved and
// SlotSold; missing slots are skipped. Filters lists the values carried
// by the adapter's filter buttons.
type Host struct {
	Map      MapSurface
	Tooltip  TooltipSurface
	Modal    ModalSurface
	Controls ControlsSurface
	Slots    map[string]CountSlot
	Filters  []Filter
}

// View owns the floor plan UI state: the rendered container, the active
// filter, the tooltip and the modal.
type View struct {
	entries     []models.Entry
	details     DetailsSource
	inquiryBase string
	host        Host

	container Container
	filter    *FilterState
	tooltip   Tooltip
	modal     Modal
	counts    Counts
}

// Mount renders entries into host, writes the status counts and returns
// the view. When a required surface is missing nothing is painted and ok
// is false.
func Mount(entries []models.Entry, details DetailsSource, inquiryBase string, host Host) (*View, bool) {
	if host.Map == nil || host.Tooltip == nil || host.Modal == nil {
		return nil, false
	}

	v := &View{
		entries:     append([]models.Entry(nil), entries...),
		details:     details,
		inquiryBase: inquiryBase,
		host:        host,
		filter:      NewFilterState(host.Filters),
	}

	v.Render()
	v.updateCounts()
	v.host.Tooltip.PaintTooltip(v.tooltip)
	v.host.Modal.PaintModal(v.modal)

	return v, true
}

// Render repaints the map from the catalog with the active filter applied.
func (v *View) Render() {
	v.container.Replace(Render(v.entries))
	v.filter.Apply(&v.container)
	v.paintMap()
}

func (v *View) updateCounts() {
	v.counts = Aggregate(v.entries)
	for id, text := range v.counts.Slots() {
		if slot, ok := v.host.Slots[id]; ok && slot != nil {
			slot.SetText(text)
		}
	}
}

func (v *View) paintMap() {
	v.host.Map.PaintMap(v.container.Nodes())
	if v.host.Controls != nil {
		v.host.Controls.PaintControls(v.filter.Controls())
	}
}

// ClickFilter handles a click on the filter button carrying value.
// Values that belong to no button are ignored. A tooltip showing a booth
// the filter hides is hidden with it.
func (v *View) ClickFilter(value string) {
	if !v.filter.Select(Filter(value)) {
		return
	}
	v.filter.Apply(&v.container)
	v.paintMap()

	if !v.tooltip.Shown() {
		return
	}
	if i, ok := v.container.IndexOf(v.tooltip.Content().ID); ok {
		if n, _ := v.container.At(i); !n.Hidden {
			return
		}
	}
	v.tooltip.Hide()
	v.host.Tooltip.PaintTooltip(v.tooltip)
}

// PointerEnter handles the pointer entering the node at index i.
func (v *View) PointerEnter(i int) {
	n, ok := v.container.At(i)
	if !ok || n.Hidden {
		return
	}
	if v.tooltip.Enter(n) {
		v.host.Tooltip.PaintTooltip(v.tooltip)
	}
}

// PointerMove handles pointer motion, in container coordinates.
func (v *View) PointerMove(p Point) {
	if !v.tooltip.Shown() {
		return
	}
	v.tooltip.Move(p)
	v.host.Tooltip.PaintTooltip(v.tooltip)
}

// PointerLeave handles the pointer leaving the node at index i.
func (v *View) PointerLeave(i int) {
	n, ok := v.container.At(i)
	if !ok || !n.IsBooth() {
		return
	}
	v.tooltip.Leave(n)
	v.host.Tooltip.PaintTooltip(v.tooltip)
}

// Click handles a click on the node at index i. Only booths that are not
// sold open the detail modal; anything else is a no-op.
func (v *View) Click(i int) {
	n, ok := v.container.At(i)
	if !ok || n.Hidden {
		return
	}
	d, ok := BuildDetail(n, v.details, v.inquiryBase)
	if !ok {
		return
	}
	v.modal.Open(d)
	v.host.Modal.PaintModal(v.modal)
}

func (v *View) CloseModal() {
	if !v.modal.IsOpen() {
		return
	}
	v.modal.Close()
	v.host.Modal.PaintModal(v.modal)
}

// ClickScrim handles a click on the modal overlay; clicks inside the
// content panel are ignored.
func (v *View) ClickScrim(insidePanel bool) {
	if !v.modal.IsOpen() || insidePanel {
		return
	}
	v.CloseModal()
}

// Unmount hides the tooltip and closes the modal.
func (v *View) Unmount() {
	v.tooltip.Hide()
	v.host.Tooltip.PaintTooltip(v.tooltip)
	v.CloseModal()
}

func (v *View) Nodes() []Node {
	return v.container.Nodes()
}

// IndexOf returns the container index of the booth tagged with id.
func (v *View) IndexOf(id string) (int, bool) {
	return v.container.IndexOf(id)
}

func (v *View) ActiveFilter() Filter {
	return v.filter.Active()
}

func (v *View) Controls() []FilterControl {
	return v.filter.Controls()
}

func (v *View) Counts() Counts {
	return v.counts
}

func (v *View) Tooltip() Tooltip {
	return v.tooltip
}

func (v *View) Modal() Modal {
	return v.modal
}
