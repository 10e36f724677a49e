// Package projection maps filtered readings onto a chosen axis triple,
// producing plot-ready points and padded display ranges for the 3D chart.
package projection

import (
	"math"

	"github.com/sse-mib/instviz/catalog"
	"github.com/sse-mib/instviz/errors"
)

// ErrEmptyResult signals a valid request that matched zero readings.
// Callers must render an explicit "no data" state, not an empty chart.
var ErrEmptyResult = errors.New("no readings match the current filters")

// Range is a display range as [lower, upper], JSON-encoded as a two-element
// array the way the chart layer expects axis ranges.
type Range [2]float64

// Contains reports whether v falls inside the range
func (r Range) Contains(v float64) bool {
	return r[0] <= v && v <= r[1]
}

// Point is one reading positioned under the selected axis triple, carrying
// the metadata the hover tooltip needs.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Title    string  `json:"title"`
	OneLiner string  `json:"one_liner"`
	Section  string  `json:"section"`
}

// Series groups the points of one author for an independent colored trace
type Series struct {
	Author string  `json:"author"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

// Ranges holds the padded display range per plotted axis
type Ranges struct {
	X Range `json:"x"`
	Y Range `json:"y"`
	Z Range `json:"z"`
}

// Result is the plot-ready projection of a filtered reading subset
type Result struct {
	Ranges Ranges   `json:"ranges"`
	Series []Series `json:"series"`
}

// Project positions readings under the selected axis triple and computes the
// per-axis display ranges. An empty subset returns ErrEmptyResult; an
// unregistered axis id returns catalog.ErrUnknownAxis.
func Project(readings []*catalog.Reading, axes catalog.AxisTriple, reg *catalog.Registry) (*Result, error) {
	if len(readings) == 0 {
		return nil, ErrEmptyResult
	}

	xs, err := scores(readings, axes.X, reg)
	if err != nil {
		return nil, err
	}
	ys, err := scores(readings, axes.Y, reg)
	if err != nil {
		return nil, err
	}
	zs, err := scores(readings, axes.Z, reg)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	if result.Ranges.X, err = displayRange(xs, axes.X, reg); err != nil {
		return nil, err
	}
	if result.Ranges.Y, err = displayRange(ys, axes.Y, reg); err != nil {
		return nil, err
	}
	if result.Ranges.Z, err = displayRange(zs, axes.Z, reg); err != nil {
		return nil, err
	}

	// Group by author, preserving first-appearance order so trace colors
	// and the legend stay stable across re-renders.
	byAuthor := make(map[string]int)
	for i, r := range readings {
		idx, ok := byAuthor[r.Author]
		if !ok {
			idx = len(result.Series)
			byAuthor[r.Author] = idx
			result.Series = append(result.Series, Series{
				Author: r.Author,
				Color:  ColorFor(r.Author),
			})
		}
		result.Series[idx].Points = append(result.Series[idx].Points, Point{
			X:        xs[i],
			Y:        ys[i],
			Z:        zs[i],
			Title:    r.Title,
			OneLiner: r.OneLiner,
			Section:  r.Section,
		})
	}

	return result, nil
}

// scores collects each reading's value on one axis, in input order
func scores(readings []*catalog.Reading, axisID string, reg *catalog.Registry) ([]float64, error) {
	if !reg.Has(axisID) {
		return nil, errors.Wrapf(catalog.ErrUnknownAxis, "%q", axisID)
	}
	out := make([]float64, len(readings))
	for i, r := range readings {
		v, ok := r.Score(axisID)
		if !ok {
			// Load-time validation makes this unreachable for registered
			// axes; treat it as a data fault rather than defaulting.
			return nil, errors.Wrapf(catalog.ErrData, "reading %q has no score for axis %q", r.Title, axisID)
		}
		out[i] = v
	}
	return out, nil
}

// displayRange pads the observed value range for breathing room and clamps
// it to the axis scale. The 0.5 floor keeps a degenerate subset (single
// point, or all equal values) from collapsing to a zero-width range; the
// clamps keep the range inside [0, axisMax+1] so the chart never suggests
// values off the defined scale.
func displayRange(values []float64, axisID string, reg *catalog.Registry) (Range, error) {
	axisMax, err := reg.MaxValue(axisID)
	if err != nil {
		return Range{}, err
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	padding := math.Max(0.5, (hi-lo)*0.1)
	return Range{
		math.Max(0, lo-padding),
		math.Min(float64(axisMax)+1, hi+padding),
	}, nil
}
