package floorplan

import (
	"fmt"

	"expoBooths/internal/models"
)

// TooltipOffset keeps the tooltip clear of the pointer on both axes.
const TooltipOffset = 15

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type TooltipContent struct {
	ID      string         `json:"id"`
	Package models.Package `json:"package"`
	Status  models.Status  `json:"status"`
}

// Lines is the text of the tooltip panel.
func (c TooltipContent) Lines() []string {
	return []string{
		fmt.Sprintf("Booth %s", c.ID),
		fmt.Sprintf("Package: %s", c.Package),
		fmt.Sprintf("Status: %s", c.Status),
	}
}

// Tooltip is the hover panel. It moves between Hidden and Shown; moving
// the pointer while Shown only repositions it.
type Tooltip struct {
	shown    bool
	content  TooltipContent
	position Point
}

// TooltipFor returns the tooltip content of a booth node.
func TooltipFor(n Node) (TooltipContent, bool) {
	if !n.IsBooth() {
		return TooltipContent{}, false
	}
	return TooltipContent{ID: n.ID, Package: n.Package, Status: n.Status}, true
}

// Enter shows the tooltip for a booth. Spacers are ignored.
func (t *Tooltip) Enter(n Node) bool {
	content, ok := TooltipFor(n)
	if !ok {
		return false
	}
	t.content = content
	t.shown = true
	return true
}

// Move places the tooltip at p plus TooltipOffset. It has no effect while
// the tooltip is hidden.
func (t *Tooltip) Move(p Point) {
	if !t.shown {
		return
	}
	t.position = Point{X: p.X + TooltipOffset, Y: p.Y + TooltipOffset}
}

// Leave hides the tooltip when the pointer leaves a booth.
func (t *Tooltip) Leave(n Node) {
	if !n.IsBooth() {
		return
	}
	t.shown = false
}

func (t *Tooltip) Hide() {
	t.shown = false
}

func (t Tooltip) Shown() bool {
	return t.shown
}

func (t Tooltip) Content() TooltipContent {
	return t.content
}

func (t Tooltip) Position() Point {
	return t.position
}
