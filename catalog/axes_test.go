package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sse-mib/instviz/errors"
)

const axesJSON = `{
	"axes": {
		"power": {
			"name": "Power Distance",
			"short_name": "Power",
			"color": "#2A73FF",
			"min_label": "Dispersed",
			"min_description": "Authority is widely shared",
			"max_label": "Concentrated",
			"max_description": "Authority is held by a narrow elite"
		},
		"capital": {
			"name": "Capital Intensity",
			"short_name": "Capital",
			"color": "#2ACC88",
			"min_label": "Labor",
			"max_label": "Capital"
		},
		"alphabetical_order": {
			"name": "Alphabetical Order",
			"short_name": "A-Z",
			"color": "#A78BFA",
			"min_label": "A",
			"max_label": "Z",
			"max_value": 13
		}
	},
	"default_axes": {"x": "power", "y": "capital", "z": "alphabetical_order"}
}`

func TestParseAxes(t *testing.T) {
	reg, err := ParseAxes([]byte(axesJSON))
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	power, err := reg.Get("power")
	require.NoError(t, err)
	assert.Equal(t, "Power Distance", power.Name)
	assert.Equal(t, "Power", power.ShortName)
	assert.Equal(t, "#2A73FF", power.Color)
}

func TestParseAxes_PreservesFileOrder(t *testing.T) {
	reg, err := ParseAxes([]byte(axesJSON))
	require.NoError(t, err)
	assert.Equal(t, []string{"power", "capital", "alphabetical_order"}, reg.IDs())
}

func TestParseAxes_MaxValueDefault(t *testing.T) {
	reg, err := ParseAxes([]byte(axesJSON))
	require.NoError(t, err)

	// Undeclared max_value defaults to 10
	max, err := reg.MaxValue("power")
	require.NoError(t, err)
	assert.Equal(t, DefaultAxisMax, max)

	// Declared max_value always wins, never silently defaulted
	max, err = reg.MaxValue("alphabetical_order")
	require.NoError(t, err)
	assert.Equal(t, 13, max)
}

func TestParseAxes_DefaultSelection(t *testing.T) {
	reg, err := ParseAxes([]byte(axesJSON))
	require.NoError(t, err)
	assert.Equal(t, AxisTriple{X: "power", Y: "capital", Z: "alphabetical_order"}, reg.DefaultSelection())
}

func TestGet_UnknownAxis(t *testing.T) {
	reg, err := ParseAxes([]byte(axesJSON))
	require.NoError(t, err)

	_, err = reg.Get("velocity")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAxis))
}

func TestParseAxes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed json", `{"axes": `},
		{"empty axes", `{"axes": {}, "default_axes": {"x": "a", "y": "a", "z": "a"}}`},
		{
			"duplicate axis id",
			`{"axes": {
				"power": {"name": "P", "short_name": "p", "color": "#000", "min_label": "lo", "max_label": "hi"},
				"power": {"name": "P2", "short_name": "p", "color": "#000", "min_label": "lo", "max_label": "hi"}
			}, "default_axes": {"x": "power", "y": "power", "z": "power"}}`,
		},
		{
			"missing name",
			`{"axes": {"power": {"short_name": "p", "color": "#000", "min_label": "lo", "max_label": "hi"}},
			"default_axes": {"x": "power", "y": "power", "z": "power"}}`,
		},
		{
			"missing labels",
			`{"axes": {"power": {"name": "P", "short_name": "p", "color": "#000"}},
			"default_axes": {"x": "power", "y": "power", "z": "power"}}`,
		},
		{
			"unregistered default axis",
			`{"axes": {"power": {"name": "P", "short_name": "p", "color": "#000", "min_label": "lo", "max_label": "hi"}},
			"default_axes": {"x": "power", "y": "capital", "z": "power"}}`,
		},
		{
			"missing default axes",
			`{"axes": {"power": {"name": "P", "short_name": "p", "color": "#000", "min_label": "lo", "max_label": "hi"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAxes([]byte(tt.json))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfig), "expected ErrConfig, got %v", err)
		})
	}
}
