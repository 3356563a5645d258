package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"expoBooths/internal/models"
)

var (
	ErrEntryNotFound  = errors.New("entry not found")
	ErrDuplicateID    = errors.New("duplicate entry id")
	ErrEmptyID        = errors.New("entry id is empty")
	ErrUnknownPackage = errors.New("unknown package")
	ErrUnknownKind    = errors.New("unknown entry kind")
)

// Storage holds the floor plan for the lifetime of the process. It is
// built once and never mutated afterwards, so it is safe for concurrent
// readers without locking.
type Storage struct {
	entries []models.Entry
	index   map[string]int
	details map[models.Package]models.PackageDetails
}

type file struct {
	Entries []models.Entry                           `yaml:"entries" toml:"entries"`
	Details map[models.Package]models.PackageDetails `yaml:"details" toml:"details"`
}

// Default returns the built-in exhibition hall.
func Default() *Storage {
	s, err := New(defaultEntries(), defaultDetails())
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in floor plan is invalid: %v", err))
	}
	return s
}

// New validates entries and builds the id index. Booths with an unknown
// status or size are accepted; every booth must name a known package so
// that its benefits can always be looked up.
func New(entries []models.Entry, details map[models.Package]models.PackageDetails) (*Storage, error) {
	const op = "storage.catalog.New"

	if details == nil {
		details = defaultDetails()
	}

	copied := make([]models.Entry, len(entries))
	copy(copied, entries)

	index := make(map[string]int, len(copied))
	for i := range copied {
		e := &copied[i]
		if e.ID == "" {
			return nil, fmt.Errorf("%s: entry #%d: %w", op, i, ErrEmptyID)
		}
		if _, ok := index[e.ID]; ok {
			return nil, fmt.Errorf("%s: %q: %w", op, e.ID, ErrDuplicateID)
		}
		switch e.Kind {
		case models.KindBooth:
			normalizeBooth(e)
			if !e.Package.Valid() {
				return nil, fmt.Errorf("%s: %q has package %q: %w", op, e.ID, e.Package, ErrUnknownPackage)
			}
			if _, ok := details[e.Package]; !ok {
				return nil, fmt.Errorf("%s: no details for package %q: %w", op, e.Package, ErrUnknownPackage)
			}
		case models.KindSpacer:
		default:
			return nil, fmt.Errorf("%s: %q has kind %q: %w", op, e.ID, e.Kind, ErrUnknownKind)
		}
		index[e.ID] = i
	}

	return &Storage{
		entries: copied,
		index:   index,
		details: details,
	}, nil
}

// normalizeBooth folds the case of package, status and size so that a
// hand-edited "SOLD" still counts as sold. Values outside the known sets
// are left as written.
func normalizeBooth(e *models.Entry) {
	if p, ok := models.ParsePackage(string(e.Package)); ok {
		e.Package = p
	}
	if st, ok := models.ParseStatus(string(e.Status)); ok {
		e.Status = st
	}
	e.Size = e.Size.Normalize()
}

// Load reads a floor plan from a YAML or, for a .toml extension, a TOML
// file. When the file carries no details section the built-in package
// sheets are used.
func Load(path string) (*Storage, error) {
	const op = "storage.catalog.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var f file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.Decode(string(data), &f)
	default:
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse %s: %w", op, path, err)
	}

	s, err := New(f.Entries, f.Details)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// Entries returns a copy of the floor plan in layout order.
func (s *Storage) Entries() []models.Entry {
	out := make([]models.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Storage) GetEntry(id string) (models.Entry, error) {
	i, ok := s.index[id]
	if !ok {
		return models.Entry{}, fmt.Errorf("storage.catalog.GetEntry: %q: %w", id, ErrEntryNotFound)
	}
	return s.entries[i], nil
}

func (s *Storage) Details() map[models.Package]models.PackageDetails {
	out := make(map[models.Package]models.PackageDetails, len(s.details))
	for k, v := range s.details {
		out[k] = v
	}
	return out
}

func (s *Storage) PackageDetails(pkg models.Package) (models.PackageDetails, bool) {
	d, ok := s.details[pkg]
	return d, ok
}
