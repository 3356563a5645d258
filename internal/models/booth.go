package models

import "strings"

type Package string

const (
	PackageBasic    Package = "basic"
	PackageSilver   Package = "silver"
	PackageGold     Package = "gold"
	PackagePlatinum Package = "platinum"
)

// Packages lists the closed package set in tier order.
var Packages = []Package{PackageBasic, PackageSilver, PackageGold, PackagePlatinum}

func (p Package) Valid() bool {
	switch p {
	case PackageBasic, PackageSilver, PackageGold, PackagePlatinum:
		return true
	}
	return false
}

// ParsePackage matches s case-insensitively against the package set.
func ParsePackage(s string) (Package, bool) {
	p := Package(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", false
	}
	return p, true
}

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSold      Status = "sold"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", false
	}
	return st, true
}

// Size is the nominal footprint of a booth in metres, e.g. "4X3".
type Size string

const (
	Size3x3 Size = "3X3"
	Size4x3 Size = "4X3"
	Size6x3 Size = "6X3"
	Size7x3 Size = "7X3"
)

// Normalize upper-cases the size so "4x3" and "4X3" compare equal.
func (s Size) Normalize() Size {
	return Size(strings.ToUpper(strings.TrimSpace(string(s))))
}

type EntryKind string

const (
	KindBooth  EntryKind = "booth"
	KindSpacer EntryKind = "spacer"
)

// SpacerKind selects how many grid tracks a spacer occupies.
type SpacerKind string

const (
	SpacerCell  SpacerKind = "cell"
	SpacerEdge  SpacerKind = "edge"
	SpacerAisle SpacerKind = "aisle"
	SpacerRow   SpacerKind = "row"
)

// Entry is one slot of the floor plan: either a bookable booth or a
// layout-only spacer. Spacers carry no package and no status.
type Entry struct {
	ID      string     `json:"id" yaml:"id" toml:"id"`
	Kind    EntryKind  `json:"kind" yaml:"kind" toml:"kind"`
	Size    Size       `json:"size,omitempty" yaml:"size,omitempty" toml:"size"`
	Package Package    `json:"package,omitempty" yaml:"package,omitempty" toml:"package"`
	Status  Status     `json:"status,omitempty" yaml:"status,omitempty" toml:"status"`
	Spacer  SpacerKind `json:"spacer,omitempty" yaml:"spacer,omitempty" toml:"spacer"`
}

func (e Entry) IsBooth() bool {
	return e.Kind == KindBooth
}

func Booth(id string, size Size, pkg Package, status Status) Entry {
	return Entry{ID: id, Kind: KindBooth, Size: size, Package: pkg, Status: status}
}

func Spacer(id string, kind SpacerKind) Entry {
	return Entry{ID: id, Kind: KindSpacer, Spacer: kind}
}

// PackageDetails is the static benefits sheet shown in the booth detail panel.
type PackageDetails struct {
	SizeLabel string   `json:"size_label" yaml:"size_label" toml:"size_label"`
	Benefits  []string `json:"benefits" yaml:"benefits" toml:"benefits"`
}
