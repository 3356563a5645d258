package floorplan

import (
	"strconv"

	"expoBooths/internal/models"
)

// Identifiers of the status-count display slots.
const (
	SlotAvailable = "available-count"
	SlotReserved  = "reserved-count"
	SlotSold      = "sold-count"
)

type Counts struct {
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
	Sold      int `json:"sold"`
}

func (c Counts) Total() int {
	return c.Available + c.Reserved + c.Sold
}

// Aggregate partitions the booths by status. Spacers and booths with an
// unknown status are not counted.
func Aggregate(entries []models.Entry) Counts {
	var c Counts

	for _, e := range entries {
		if !e.IsBooth() {
			continue
		}
		switch e.Status {
		case models.StatusAvailable:
			c.Available++
		case models.StatusReserved:
			c.Reserved++
		case models.StatusSold:
			c.Sold++
		}
	}

	return c
}

// Slots maps each display slot identifier to its text.
func (c Counts) Slots() map[string]string {
	return map[string]string{
		SlotAvailable: strconv.Itoa(c.Available),
		SlotReserved:  strconv.Itoa(c.Reserved),
		SlotSold:      strconv.Itoa(c.Sold),
	}
}
