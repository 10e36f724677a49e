// Package view tracks per-session UI state: the selected axis triple and the
// active camera preset. The two are independent state slices; changing one
// never touches the other.
package view

import (
	"github.com/sse-mib/instviz/catalog"
	"github.com/sse-mib/instviz/errors"
)

// ErrUnknownPreset indicates a camera request named a preset outside the
// fixed table. Recoverable: reject the request, keep prior state.
var ErrUnknownPreset = errors.New("unknown camera preset")

// Camera preset names
const (
	PresetTop       = "top"        // looking down at the XY plane
	PresetFront     = "front"      // looking at the XZ plane
	PresetSide      = "side"       // looking at the YZ plane
	PresetDefault3D = "default-3d" // angled default view
)

// Vector is a 3D position in camera space
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Camera is a fixed viewpoint: eye position and look-at center
type Camera struct {
	Eye    Vector `json:"eye"`
	Center Vector `json:"center"`
}

// presets is the fixed preset table. Center is the origin for all presets.
var presets = map[string]Camera{
	PresetTop:       {Eye: Vector{X: 0, Y: 0, Z: 2.5}},
	PresetFront:     {Eye: Vector{X: 0, Y: -2.5, Z: 0}},
	PresetSide:      {Eye: Vector{X: 2.5, Y: 0, Z: 0}},
	PresetDefault3D: {Eye: Vector{X: 1.5, Y: 1.5, Z: 1.3}},
}

// CameraForPreset looks up a preset's eye/center vectors
func CameraForPreset(preset string) (Camera, error) {
	cam, ok := presets[preset]
	if !ok {
		return Camera{}, errors.Wrapf(ErrUnknownPreset, "%q", preset)
	}
	return cam, nil
}

// State is one session's view state. Sessions handle one interaction event
// at a time (serialized by the hosting event loop), so State is not
// self-locking.
type State struct {
	reg       *catalog.Registry
	selection catalog.AxisTriple
	preset    string
}

// NewState creates session view state with the registry's default axis
// selection and the default-3d camera.
func NewState(reg *catalog.Registry) *State {
	return &State{
		reg:       reg,
		selection: reg.DefaultSelection(),
		preset:    PresetDefault3D,
	}
}

// SetAxes validates all three ids against the registry, then replaces the
// selection atomically. A partially valid triple leaves the selection
// untouched. Duplicate ids across dimensions are permitted.
func (s *State) SetAxes(x, y, z string) error {
	for _, id := range []string{x, y, z} {
		if !s.reg.Has(id) {
			return errors.Wrapf(catalog.ErrUnknownAxis, "%q", id)
		}
	}
	s.selection = catalog.AxisTriple{X: x, Y: y, Z: z}
	return nil
}

// SetCamera activates a camera preset. Unknown presets are rejected and the
// prior preset is kept.
func (s *State) SetCamera(preset string) error {
	if _, ok := presets[preset]; !ok {
		return errors.Wrapf(ErrUnknownPreset, "%q", preset)
	}
	s.preset = preset
	return nil
}

// Selection returns the currently selected axis triple
func (s *State) Selection() catalog.AxisTriple {
	return s.selection
}

// CameraPreset returns the active preset name
func (s *State) CameraPreset() string {
	return s.preset
}

// CurrentCamera returns the active preset's eye/center vectors
func (s *State) CurrentCamera() Camera {
	return presets[s.preset]
}
