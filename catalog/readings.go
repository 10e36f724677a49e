package catalog

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/sse-mib/instviz/errors"
)

// FilterAll is the wildcard filter value. A filter set to FilterAll matches
// every reading.
const FilterAll = "all"

// Reading is one catalog record, scored on every registered axis.
// Immutable after load.
type Reading struct {
	Title       string             `json:"reading"`
	Category    string             `json:"category"`
	Section     string             `json:"section"`
	Author      string             `json:"author"`
	Description string             `json:"description"`
	OneLiner    string             `json:"one_liner"`
	Dimensions  map[string]float64 `json:"dimensions"`
}

// Score returns the reading's value on an axis. The catalog loader guarantees
// a score exists for every registered axis, so a miss here means the caller
// asked for an unregistered axis.
func (r *Reading) Score(axisID string) (float64, bool) {
	v, ok := r.Dimensions[axisID]
	return v, ok
}

// FilterState narrows the catalog by section and/or author.
// FilterAll (or empty) disables that predicate; any other value is an
// exact match.
type FilterState struct {
	Section string `json:"section"`
	Author  string `json:"author"`
}

func matches(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// Matches reports whether a reading passes both predicates
func (f FilterState) Matches(r *Reading) bool {
	return matches(f.Section, r.Section) && matches(f.Author, r.Author)
}

// Catalog is the load-once set of readings, in file order.
// Immutable after load.
type Catalog struct {
	readings []*Reading
	byTitle  map[string]*Reading
	sections []string
	authors  []string
}

// readingsFile mirrors the readings_data.json document
type readingsFile struct {
	Readings []*Reading `json:"readings"`
}

// LoadReadings reads the readings dataset and validates it against the axis
// registry. Any mismatch is ErrData; the process must not proceed on failure.
func LoadReadings(path string, reg *Registry) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrData, "read readings %s: %v", path, err)
	}
	return ParseReadings(data, reg)
}

// ParseReadings validates raw readings JSON against the registry and builds
// a Catalog. Every reading must carry a score for every registered axis; a
// missing dimension is a load failure, never a runtime default.
func ParseReadings(data []byte, reg *Registry) (*Catalog, error) {
	var file readingsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(ErrData, "parse readings: %v", err)
	}
	if len(file.Readings) == 0 {
		return nil, errors.Wrap(ErrData, "no readings defined")
	}

	c := &Catalog{
		readings: file.Readings,
		byTitle:  make(map[string]*Reading, len(file.Readings)),
	}

	sections := make(map[string]struct{})
	authors := make(map[string]struct{})

	for _, r := range file.Readings {
		if r.Title == "" {
			return nil, errors.Wrap(ErrData, "reading missing title")
		}
		if _, dup := c.byTitle[r.Title]; dup {
			return nil, errors.Wrapf(ErrData, "duplicate reading %q", r.Title)
		}
		if r.Author == "" {
			return nil, errors.Wrapf(ErrData, "reading %q missing author", r.Title)
		}
		if r.Section == "" {
			return nil, errors.Wrapf(ErrData, "reading %q missing section", r.Title)
		}
		for _, axisID := range reg.IDs() {
			if _, ok := r.Dimensions[axisID]; !ok {
				return nil, errors.Wrapf(ErrData, "reading %q missing score for axis %q", r.Title, axisID)
			}
		}

		c.byTitle[r.Title] = r
		sections[r.Section] = struct{}{}
		authors[r.Author] = struct{}{}
	}

	c.sections = sortedKeys(sections)
	c.authors = sortedKeys(authors)
	return c, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sections returns the distinct course sections, lexicographically sorted.
// The ordering is a contract: filter dropdowns depend on it being stable.
func (c *Catalog) Sections() []string {
	out := make([]string, len(c.sections))
	copy(out, c.sections)
	return out
}

// Authors returns the distinct authors, lexicographically sorted
func (c *Catalog) Authors() []string {
	out := make([]string, len(c.authors))
	copy(out, c.authors)
	return out
}

// Filter returns the readings matching the filter state, preserving catalog
// insertion order among matches.
func (c *Catalog) Filter(f FilterState) []*Reading {
	var out []*Reading
	for _, r := range c.readings {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// All returns every reading in catalog order
func (c *Catalog) All() []*Reading {
	out := make([]*Reading, len(c.readings))
	copy(out, c.readings)
	return out
}

// FindByTitle recovers the full record for a selected point. A stale or
// unmatched title is errors.ErrNotFound, surfaced to the user as a message
// rather than a crash.
func (c *Catalog) FindByTitle(title string) (*Reading, error) {
	r, ok := c.byTitle[title]
	if !ok {
		return nil, errors.NewNotFoundError("reading %q", title)
	}
	return r, nil
}

// Len returns the number of readings in the catalog
func (c *Catalog) Len() int {
	return len(c.readings)
}
