// Package floorview is the server-side display adapter of the floor plan.
// Each request mounts a fresh view, replays the user's selection from the
// query string and captures what the surfaces were painted with.
package floorview

import (
	"errors"

	"expoBooths/internal/floorplan"
	"expoBooths/internal/models"
)

var ErrNotMounted = errors.New("floor plan view could not be mounted")

type Catalog interface {
	Entries() []models.Entry
	PackageDetails(pkg models.Package) (models.PackageDetails, bool)
}

// Snapshot is the painted state of the floor plan after replaying a
// selection.
type Snapshot struct {
	Filter   floorplan.Filter          `json:"filter"`
	Controls []floorplan.FilterControl `json:"controls"`
	Nodes    []floorplan.Node          `json:"nodes"`
	Counts   floorplan.Counts          `json:"counts"`
	Slots    map[string]string         `json:"-"`
	Detail   *floorplan.Detail         `json:"detail,omitempty"`
}

// Selection is what the visitor picked on the page.
type Selection struct {
	Filter  string
	BoothID string
}

type canvas struct {
	nodes    []floorplan.Node
	controls []floorplan.FilterControl
	modal    floorplan.Modal
	slots    map[string]string
}

func (c *canvas) PaintMap(nodes []floorplan.Node)                  { c.nodes = nodes }
func (c *canvas) PaintControls(controls []floorplan.FilterControl) { c.controls = controls }
func (c *canvas) PaintTooltip(floorplan.Tooltip)                   {}
func (c *canvas) PaintModal(m floorplan.Modal)                     { c.modal = m }
func (c *canvas) slot(id string) floorplan.CountSlot {
	return slotFunc(func(s string) { c.slots[id] = s })
}

type slotFunc func(text string)

func (f slotFunc) SetText(text string) { f(text) }

// Build mounts the catalog, applies the selection and returns the result.
func Build(catalog Catalog, inquiryBase string, sel Selection) (Snapshot, error) {
	c := &canvas{slots: make(map[string]string, 3)}

	view, ok := floorplan.Mount(catalog.Entries(), catalog, inquiryBase, floorplan.Host{
		Map:      c,
		Tooltip:  c,
		Modal:    c,
		Controls: c,
		Slots: map[string]floorplan.CountSlot{
			floorplan.SlotAvailable: c.slot(floorplan.SlotAvailable),
			floorplan.SlotReserved:  c.slot(floorplan.SlotReserved),
			floorplan.SlotSold:      c.slot(floorplan.SlotSold),
		},
		Filters: floorplan.Filters(),
	})
	if !ok {
		return Snapshot{}, ErrNotMounted
	}

	if sel.Filter != "" {
		view.ClickFilter(sel.Filter)
	}
	if sel.BoothID != "" {
		if i, found := view.IndexOf(sel.BoothID); found {
			view.Click(i)
		}
	}

	snap := Snapshot{
		Filter:   view.ActiveFilter(),
		Controls: c.controls,
		Nodes:    c.nodes,
		Counts:   view.Counts(),
		Slots:    c.slots,
	}
	if c.modal.IsOpen() {
		d := c.modal.Content()
		snap.Detail = &d
	}

	return snap, nil
}
