package floorplan

import (
	"strings"

	"expoBooths/internal/models"
)

// Filter is the package selection of the floor plan: "all" or one of the
// packages.
type Filter string

const FilterAll Filter = "all"

// Filters returns the standard filter controls in display order.
func Filters() []Filter {
	filters := []Filter{FilterAll}
	for _, p := range models.Packages {
		filters = append(filters, Filter(p))
	}
	return filters
}

func ParseFilter(s string) (Filter, bool) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if f == FilterAll {
		return f, true
	}
	if !models.Package(f).Valid() {
		return "", false
	}
	return f, true
}

// Matches reports whether a node belongs to the filtered set. Spacers
// never match; they are layout only and are not subject to filtering.
func (f Filter) Matches(n Node) bool {
	if !n.IsBooth() {
		return false
	}
	return f == FilterAll || string(n.Package) == string(f)
}

// FilterControl is the display state of one filter button.
type FilterControl struct {
	Value  Filter `json:"value"`
	Active bool   `json:"active"`
}

// FilterState tracks which of a fixed set of controls is selected.
// Exactly one control is active at any time.
type FilterState struct {
	controls []Filter
	active   int
}

// NewFilterState selects "all" when it is among the controls, otherwise
// the first control.
func NewFilterState(controls []Filter) *FilterState {
	s := &FilterState{controls: append([]Filter(nil), controls...)}
	for i, f := range s.controls {
		if f == FilterAll {
			s.active = i
			break
		}
	}
	return s
}

// Active returns the selected filter; with no controls it is "all".
func (s *FilterState) Active() Filter {
	if len(s.controls) == 0 {
		return FilterAll
	}
	return s.controls[s.active]
}

// Select makes f the active control. Values that name no control are
// ignored and reported as false.
func (s *FilterState) Select(f Filter) bool {
	for i, c := range s.controls {
		if c == f {
			s.active = i
			return true
		}
	}
	return false
}

func (s *FilterState) Controls() []FilterControl {
	out := make([]FilterControl, len(s.controls))
	for i, f := range s.controls {
		out[i] = FilterControl{Value: f, Active: i == s.active}
	}
	return out
}

// Apply hides every booth outside the active filter. Spacers are left
// untouched.
func (s *FilterState) Apply(c *Container) {
	active := s.Active()
	for i := range c.nodes {
		if !c.nodes[i].IsBooth() {
			continue
		}
		c.nodes[i].Hidden = !active.Matches(c.nodes[i])
	}
}

// VisibleBooths returns the booth nodes that are not hidden.
func VisibleBooths(nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		if n.IsBooth() && !n.Hidden {
			out = append(out, n)
		}
	}
	return out
}
