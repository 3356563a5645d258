package floorplan

import "expoBooths/internal/models"

// Node is the rendered form of one catalog entry. Booth nodes are tagged
// with id, package and status so that filtering, tooltips and the detail
// modal can read them back without going to the catalog. Spacer nodes
// carry only their layout span.
type Node struct {
	Kind    models.EntryKind  `json:"kind"`
	ID      string            `json:"id,omitempty"`
	Package models.Package    `json:"package,omitempty"`
	Status  models.Status     `json:"status,omitempty"`
	Spacer  models.SpacerKind `json:"spacer,omitempty"`
	Label   string            `json:"label,omitempty"`
	Span    int               `json:"span"`
	Hidden  bool              `json:"hidden"`
}

func (n Node) IsBooth() bool {
	return n.Kind == models.KindBooth
}

// Attr returns the queryable attributes of a booth node: "id", "package"
// and "status". Spacers expose none.
func (n Node) Attr(name string) (string, bool) {
	if !n.IsBooth() {
		return "", false
	}
	switch name {
	case "id":
		return n.ID, true
	case "package":
		return string(n.Package), true
	case "status":
		return string(n.Status), true
	}
	return "", false
}

// Classes mirrors the node state as style class names.
func (n Node) Classes() []string {
	if !n.IsBooth() {
		return []string{"booth-spacer", string(n.Spacer)}
	}

	classes := []string{"booth", string(n.Status), string(n.Package)}
	if n.Hidden {
		classes = append(classes, "hidden")
	}
	return classes
}

var sizeSpans = map[models.Size]int{
	models.Size3x3: 1,
	models.Size4x3: 2,
	models.Size6x3: 4,
	models.Size7x3: 5,
}

var spacerSpans = map[models.SpacerKind]int{
	models.SpacerCell:  1,
	models.SpacerEdge:  2,
	models.SpacerAisle: 3,
	models.SpacerRow:   12,
}

// SizeSpan is the number of grid tracks a booth of the given size
// occupies. Unknown sizes take a single track.
func SizeSpan(size models.Size) int {
	if span, ok := sizeSpans[size.Normalize()]; ok {
		return span
	}
	return 1
}

func SpacerSpan(kind models.SpacerKind) int {
	if span, ok := spacerSpans[kind]; ok {
		return span
	}
	return 1
}

// Render produces one node per entry, in catalog order.
func Render(entries []models.Entry) []Node {
	nodes := make([]Node, 0, len(entries))

	for _, e := range entries {
		if !e.IsBooth() {
			nodes = append(nodes, Node{
				Kind:   models.KindSpacer,
				Spacer: e.Spacer,
				Span:   SpacerSpan(e.Spacer),
			})
			continue
		}

		nodes = append(nodes, Node{
			Kind:    models.KindBooth,
			ID:      e.ID,
			Package: e.Package,
			Status:  e.Status,
			Label:   string(e.Size.Normalize()),
			Span:    SizeSpan(e.Size),
		})
	}

	return nodes
}

// Container holds the nodes currently painted on the map.
type Container struct {
	nodes []Node
}

// Replace swaps out the container contents. Calling it twice with the
// same nodes leaves the same result.
func (c *Container) Replace(nodes []Node) {
	c.nodes = append(c.nodes[:0:0], nodes...)
}

func (c *Container) Len() int {
	return len(c.nodes)
}

func (c *Container) Nodes() []Node {
	out := make([]Node, len(c.nodes))
	copy(out, c.nodes)
	return out
}

// At returns the node at index i; ok is false when i is out of range.
func (c *Container) At(i int) (Node, bool) {
	if i < 0 || i >= len(c.nodes) {
		return Node{}, false
	}
	return c.nodes[i], true
}

// IndexOf finds the booth node tagged with id.
func (c *Container) IndexOf(id string) (int, bool) {
	for i, n := range c.nodes {
		if n.IsBooth() && n.ID == id {
			return i, true
		}
	}
	return -1, false
}
