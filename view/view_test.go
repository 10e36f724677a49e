package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sse-mib/instviz/catalog"
	"github.com/sse-mib/instviz/errors"
)

const axesJSON = `{
	"axes": {
		"power": {
			"name": "Power Distance", "short_name": "Power", "color": "#2A73FF",
			"min_label": "Dispersed", "max_label": "Concentrated"
		},
		"capital": {
			"name": "Capital Intensity", "short_name": "Capital", "color": "#2ACC88",
			"min_label": "Labor", "max_label": "Capital"
		}
	},
	"default_axes": {"x": "power", "y": "capital", "z": "power"}
}`

func testState(t *testing.T) *State {
	t.Helper()
	reg, err := catalog.ParseAxes([]byte(axesJSON))
	require.NoError(t, err)
	return NewState(reg)
}

func TestNewState_Defaults(t *testing.T) {
	s := testState(t)

	assert.Equal(t, catalog.AxisTriple{X: "power", Y: "capital", Z: "power"}, s.Selection())
	assert.Equal(t, PresetDefault3D, s.CameraPreset())

	cam := s.CurrentCamera()
	assert.Equal(t, Vector{X: 1.5, Y: 1.5, Z: 1.3}, cam.Eye)
	assert.Equal(t, Vector{}, cam.Center)
}

func TestSetAxes(t *testing.T) {
	s := testState(t)

	require.NoError(t, s.SetAxes("capital", "power", "capital"))
	assert.Equal(t, catalog.AxisTriple{X: "capital", Y: "power", Z: "capital"}, s.Selection())
}

func TestSetAxes_DuplicateAxisPermitted(t *testing.T) {
	s := testState(t)

	require.NoError(t, s.SetAxes("power", "capital", "power"))
	assert.Equal(t, catalog.AxisTriple{X: "power", Y: "capital", Z: "power"}, s.Selection())
}

func TestSetAxes_AtomicOnInvalid(t *testing.T) {
	s := testState(t)
	before := s.Selection()

	// X is valid but Z is not; the selection must not end up mixed
	err := s.SetAxes("capital", "power", "velocity")
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrUnknownAxis))
	assert.Equal(t, before, s.Selection())
}

func TestSetCamera(t *testing.T) {
	s := testState(t)

	require.NoError(t, s.SetCamera(PresetTop))
	assert.Equal(t, PresetTop, s.CameraPreset())
	assert.Equal(t, Vector{X: 0, Y: 0, Z: 2.5}, s.CurrentCamera().Eye)
}

func TestSetCamera_UnknownPreset(t *testing.T) {
	s := testState(t)
	require.NoError(t, s.SetCamera(PresetSide))

	err := s.SetCamera("isometric")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
	// Prior preset kept
	assert.Equal(t, PresetSide, s.CameraPreset())
}

func TestCameraAndSelectionAreIndependent(t *testing.T) {
	s := testState(t)

	require.NoError(t, s.SetCamera(PresetTop))
	require.NoError(t, s.SetAxes("capital", "capital", "power"))

	// Axis change leaves the camera preset unchanged
	assert.Equal(t, PresetTop, s.CameraPreset())

	require.NoError(t, s.SetCamera(PresetFront))
	// Camera change leaves the selection unchanged
	assert.Equal(t, catalog.AxisTriple{X: "capital", Y: "capital", Z: "power"}, s.Selection())
}

func TestCameraForPreset(t *testing.T) {
	tests := []struct {
		preset string
		eye    Vector
	}{
		{PresetTop, Vector{X: 0, Y: 0, Z: 2.5}},
		{PresetFront, Vector{X: 0, Y: -2.5, Z: 0}},
		{PresetSide, Vector{X: 2.5, Y: 0, Z: 0}},
		{PresetDefault3D, Vector{X: 1.5, Y: 1.5, Z: 1.3}},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			cam, err := CameraForPreset(tt.preset)
			require.NoError(t, err)
			assert.Equal(t, tt.eye, cam.Eye)
			assert.Equal(t, Vector{}, cam.Center)
		})
	}

	_, err := CameraForPreset("behind")
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}
