package tui

import "expoBooths/internal/floorplan"

const (
	gridColumns = 12
	cellWidth   = 6

	// Terminal cells are mapped to nominal pixels so that the floor plan
	// tooltip offset keeps its meaning on a character grid.
	cellPixelWidth  = 8
	cellPixelHeight = 16
)

// rect is the area a node occupies on the map, in characters relative to
// the top-left corner of the map.
type rect struct {
	index int
	x, y  int
	width int
}

func (r rect) contains(x, y int) bool {
	return y == r.y && x >= r.x && x < r.x+r.width
}

// layoutNodes places nodes on a grid of gridColumns tracks, flowing left to
// right and wrapping when a node does not fit in the rest of the row.
// Every grid row is one line followed by a blank line.
func layoutNodes(nodes []floorplan.Node) []rect {
	rects := make([]rect, 0, len(nodes))

	col, row := 0, 0
	for i, n := range nodes {
		span := n.Span
		if span < 1 {
			span = 1
		}
		if span > gridColumns {
			span = gridColumns
		}
		if col+span > gridColumns {
			col = 0
			row++
		}

		rects = append(rects, rect{
			index: i,
			x:     col * cellWidth,
			y:     row * 2,
			width: span*cellWidth - 1,
		})

		col += span
	}

	return rects
}

// mapHeight is the number of lines the laid out map occupies.
func mapHeight(rects []rect) int {
	height := 0
	for _, r := range rects {
		if r.y+1 > height {
			height = r.y + 1
		}
	}
	return height
}

// hitTest returns the node under the map-relative position, or -1.
func hitTest(rects []rect, x, y int) int {
	for _, r := range rects {
		if r.contains(x, y) {
			return r.index
		}
	}
	return -1
}

func toPixels(x, y int) floorplan.Point {
	return floorplan.Point{X: x * cellPixelWidth, Y: y * cellPixelHeight}
}

func fromPixels(p floorplan.Point) (int, int) {
	return p.X / cellPixelWidth, p.Y / cellPixelHeight
}
