// Package floorplan implements the interactive exhibition floor plan:
// rendering catalog entries into layout nodes, counting booths by status,
// filtering by package, hover tooltips and the booth detail modal.
//
// Everything here is plain state. A display adapter (the HTTP page, the
// terminal viewer) mounts a View with its surfaces and forwards user
// events to it; the View repaints the surfaces after every event. All
// handlers run to completion synchronously, so a View is owned by a
// single goroutine and does no locking.
package floorplan
