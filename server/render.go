package server

import (
	"fmt"

	"github.com/sse-mib/instviz/catalog"
	"github.com/sse-mib/instviz/errors"
	"github.com/sse-mib/instviz/projection"
	"github.com/sse-mib/instviz/view"
)

// buildInit composes the control-panel payload for a session: axis options
// in definition order, filter values in sorted order, and the current view.
func buildInit(ds *Dataset, vs *view.State) initMessage {
	return initMessage{
		Type:        "init",
		Axes:        ds.Registry.Axes(),
		DefaultAxes: vs.Selection(),
		Sections:    ds.Catalog.Sections(),
		Authors:     ds.Catalog.Authors(),
		Preset:      vs.CameraPreset(),
		Camera:      vs.CurrentCamera(),
		Count:       ds.Catalog.Len(),
	}
}

// buildChart filters and projects the catalog under the session's view
// state. Every outcome is a valid payload: a chart, an explicit empty
// state, or an error message. It never panics on a bad combination.
func buildChart(ds *Dataset, vs *view.State, filters catalog.FilterState) interface{} {
	readings := ds.Catalog.Filter(filters)
	sel := vs.Selection()

	result, err := projection.Project(readings, sel, ds.Registry)
	if err != nil {
		if errors.Is(err, projection.ErrEmptyResult) {
			return emptyMessage{
				Type:    "empty",
				Message: "No readings match the selected filters.",
			}
		}
		return errorMessage{Type: "error", Message: userMessage(err)}
	}

	// Selection was validated by SetAxes, so these lookups cannot fail
	xDef, _ := ds.Registry.Get(sel.X)
	yDef, _ := ds.Registry.Get(sel.Y)
	zDef, _ := ds.Registry.Get(sel.Z)

	return chartMessage{
		Type:   "chart",
		Ranges: result.Ranges,
		Series: result.Series,
		Axes:   chartAxes{X: xDef, Y: yDef, Z: zDef},
		Preset: vs.CameraPreset(),
		Camera: vs.CurrentCamera(),
		Count:  len(readings),
	}
}

// buildDetail recovers the full record for a selected point. A stale title
// (for instance after a dataset reload) yields an explanatory error payload
// rather than a crash.
func buildDetail(ds *Dataset, title string) interface{} {
	reading, err := ds.Catalog.FindByTitle(title)
	if err != nil {
		return errorMessage{Type: "error", Message: userMessage(err)}
	}

	scores := make([]detailScore, 0, ds.Registry.Len())
	for _, def := range ds.Registry.Axes() {
		value, _ := reading.Score(def.ID)
		scores = append(scores, detailScore{
			Axis:  def.ID,
			Name:  def.Name,
			Color: def.Color,
			Value: value,
			Max:   def.MaxValue,
		})
	}

	return detailMessage{
		Type:    "detail",
		Reading: reading,
		Scores:  scores,
	}
}

// userMessage maps the domain error taxonomy to explanatory text the UI can
// show in place of a chart or detail panel.
func userMessage(err error) string {
	switch {
	case errors.Is(err, catalog.ErrUnknownAxis):
		return "Unknown axis selected. The previous view was kept."
	case errors.Is(err, view.ErrUnknownPreset):
		return "Unknown camera preset. The previous view was kept."
	case errors.IsNotFoundError(err):
		return "That reading is no longer in the catalog. Try re-selecting a point."
	default:
		return fmt.Sprintf("Request failed: %v", err)
	}
}
