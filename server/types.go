package server

import (
	"github.com/sse-mib/instviz/catalog"
	"github.com/sse-mib/instviz/projection"
	"github.com/sse-mib/instviz/version"
	"github.com/sse-mib/instviz/view"
)

// clientMessage is any request arriving over the WebSocket.
// Type selects the handler; the remaining fields are per-type.
type clientMessage struct {
	// Type is one of: render, camera, detail, ping
	Type string `json:"type"`

	// render: optional filter/axis updates applied before recomputing
	Filters *catalog.FilterState `json:"filters,omitempty"`
	Axes    *catalog.AxisTriple  `json:"axes,omitempty"`

	// camera (also honored on render): preset name
	Camera string `json:"camera,omitempty"`

	// detail: selected point's reading title
	Title string `json:"title,omitempty"`
}

// versionMessage is sent once on connect
type versionMessage struct {
	Type string `json:"type"` // "version"
	version.Info
}

// initMessage carries everything the UI needs to build its controls:
// axis dropdown options, filter dropdown values, and the starting view.
type initMessage struct {
	Type        string                    `json:"type"` // "init"
	Axes        []*catalog.AxisDefinition `json:"axes"`
	DefaultAxes catalog.AxisTriple        `json:"default_axes"`
	Sections    []string                  `json:"sections"`
	Authors     []string                  `json:"authors"`
	Preset      string                    `json:"preset"`
	Camera      view.Camera               `json:"camera"`
	Count       int                       `json:"count"`
}

// chartAxes carries the full definitions of the three plotted axes so the
// UI can label them without a second round trip.
type chartAxes struct {
	X *catalog.AxisDefinition `json:"x"`
	Y *catalog.AxisDefinition `json:"y"`
	Z *catalog.AxisDefinition `json:"z"`
}

// chartMessage is a complete render response
type chartMessage struct {
	Type   string              `json:"type"` // "chart"
	Ranges projection.Ranges   `json:"ranges"`
	Series []projection.Series `json:"series"`
	Axes   chartAxes           `json:"axes"`
	Preset string              `json:"preset"`
	Camera view.Camera         `json:"camera"`
	Count  int                 `json:"count"`
}

// emptyMessage tells the UI to render an explicit "no data" state
type emptyMessage struct {
	Type    string `json:"type"` // "empty"
	Message string `json:"message"`
}

// cameraMessage answers a camera-preset change; no data is recomputed
type cameraMessage struct {
	Type   string      `json:"type"` // "camera"
	Preset string      `json:"preset"`
	Camera view.Camera `json:"camera"`
}

// detailScore is one axis row in the details panel
type detailScore struct {
	Axis  string  `json:"axis"`
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Value float64 `json:"value"`
	Max   int     `json:"max"`
}

// detailMessage is the full record behind a clicked point
type detailMessage struct {
	Type    string           `json:"type"` // "detail"
	Reading *catalog.Reading `json:"reading"`
	Scores  []detailScore    `json:"scores"`
}

// errorMessage is a degraded-but-valid response for a rejected request.
// The client keeps its previous chart and shows the message.
type errorMessage struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}
