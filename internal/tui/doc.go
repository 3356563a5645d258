// Package tui is the terminal display adapter of the floor plan. It lays
// the booths out on a character grid, turns mouse motion and clicks into
// floor plan pointer events, and draws the tooltip and the detail modal
// as overlays.
package tui
