// Package catalog holds the load-once reading dataset: axis definitions and
// the readings scored on them. Both structures are immutable after load and
// safe for concurrent reads across sessions.
package catalog

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/sse-mib/instviz/errors"
)

// DefaultAxisMax is the score ceiling for axes that do not declare their own
// max_value. Scores live on [1, max_value].
const DefaultAxisMax = 10

// AxisDefinition describes one named dimension readings are scored on.
// Immutable after load.
type AxisDefinition struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ShortName      string `json:"short_name"`
	Color          string `json:"color"`
	MinLabel       string `json:"min_label"`
	MinDescription string `json:"min_description"`
	MaxLabel       string `json:"max_label"`
	MaxDescription string `json:"max_description"`
	MaxValue       int    `json:"max_value"`
}

// AxisTriple names the axes plotted on X, Y and Z. The ids need not be
// distinct; plotting the same axis twice is a degenerate but valid view.
type AxisTriple struct {
	X string `json:"x"`
	Y string `json:"y"`
	Z string `json:"z"`
}

// Registry holds the validated axis definitions and the configured default
// axis selection. Immutable after load.
type Registry struct {
	axes     map[string]*AxisDefinition
	order    []string
	defaults AxisTriple
}

// axisFile mirrors the axis_definitions.json document
type axisFile struct {
	Axes        orderedAxes `json:"axes"`
	DefaultAxes AxisTriple  `json:"default_axes"`
}

// orderedAxes decodes the "axes" JSON object preserving declaration order and
// rejecting duplicate ids. encoding/json's map decoding would silently keep
// the last duplicate and lose the file order the axis dropdowns rely on.
type orderedAxes struct {
	defs  []*AxisDefinition
	byID  map[string]*AxisDefinition
	order []string
}

func (oa *orderedAxes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("axes must be a JSON object")
	}

	oa.byID = make(map[string]*AxisDefinition)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		id := keyTok.(string)
		if _, dup := oa.byID[id]; dup {
			return errors.Newf("duplicate axis id %q", id)
		}

		var def AxisDefinition
		if err := dec.Decode(&def); err != nil {
			return errors.Wrapf(err, "axis %q", id)
		}
		def.ID = id
		oa.byID[id] = &def
		oa.order = append(oa.order, id)
		oa.defs = append(oa.defs, &def)
	}
	// Consume closing '}'
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// LoadAxes reads and validates axis definitions from a JSON file.
// Any malformation is ErrConfig; the process must not proceed on failure.
func LoadAxes(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrConfig, "read axis definitions %s: %v", path, err)
	}
	return ParseAxes(data)
}

// ParseAxes validates raw axis definition JSON and builds a Registry.
func ParseAxes(data []byte) (*Registry, error) {
	var file axisFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(ErrConfig, "parse axis definitions: %v", err)
	}
	if len(file.Axes.defs) == 0 {
		return nil, errors.Wrap(ErrConfig, "no axes defined")
	}

	for _, def := range file.Axes.defs {
		if err := validateAxis(def); err != nil {
			return nil, err
		}
		if def.MaxValue == 0 {
			def.MaxValue = DefaultAxisMax
		}
	}

	reg := &Registry{
		axes:     file.Axes.byID,
		order:    file.Axes.order,
		defaults: file.DefaultAxes,
	}

	// Default axis ids must themselves be registered
	for _, id := range []string{reg.defaults.X, reg.defaults.Y, reg.defaults.Z} {
		if id == "" {
			return nil, errors.Wrap(ErrConfig, "default_axes must name x, y and z")
		}
		if _, ok := reg.axes[id]; !ok {
			return nil, errors.Wrapf(ErrConfig, "default axis %q is not registered", id)
		}
	}

	return reg, nil
}

func validateAxis(def *AxisDefinition) error {
	switch {
	case def.Name == "":
		return errors.Wrapf(ErrConfig, "axis %q missing name", def.ID)
	case def.ShortName == "":
		return errors.Wrapf(ErrConfig, "axis %q missing short_name", def.ID)
	case def.Color == "":
		return errors.Wrapf(ErrConfig, "axis %q missing color", def.ID)
	case def.MinLabel == "" || def.MaxLabel == "":
		return errors.Wrapf(ErrConfig, "axis %q missing min/max labels", def.ID)
	case def.MaxValue < 0:
		return errors.Wrapf(ErrConfig, "axis %q has negative max_value %d", def.ID, def.MaxValue)
	}
	return nil
}

// Get returns the definition for an axis id
func (r *Registry) Get(id string) (*AxisDefinition, error) {
	def, ok := r.axes[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAxis, "%q", id)
	}
	return def, nil
}

// Has reports whether an axis id is registered
func (r *Registry) Has(id string) bool {
	_, ok := r.axes[id]
	return ok
}

// MaxValue returns the score ceiling for an axis. The configured max_value
// always wins; axes that do not declare one use DefaultAxisMax.
func (r *Registry) MaxValue(id string) (int, error) {
	def, err := r.Get(id)
	if err != nil {
		return 0, err
	}
	return def.MaxValue, nil
}

// DefaultSelection returns the configured default axis triple
func (r *Registry) DefaultSelection() AxisTriple {
	return r.defaults
}

// IDs returns the axis ids in definition-file order
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Axes returns the axis definitions in definition-file order
func (r *Registry) Axes() []*AxisDefinition {
	defs := make([]*AxisDefinition, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, r.axes[id])
	}
	return defs
}

// Len returns the number of registered axes
func (r *Registry) Len() int {
	return len(r.axes)
}
