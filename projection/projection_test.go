package projection

import (
	"fmt"
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
		},
		"alphabetical_order": {
			"name": "Alphabetical Order", "short_name": "A-Z", "color": "#A78BFA",
			"min_label": "A", "max_label": "Z", "max_value": 13
		}
	},
	"default_axes": {"x": "power", "y": "capital", "z": "alphabetical_order"}
}`

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.ParseAxes([]byte(axesJSON))
	require.NoError(t, err)
	return reg
}

func reading(t *testing.T, title, author string, power, capital, alpha float64) *catalog.Reading {
	t.Helper()
	return &catalog.Reading{
		Title:    title,
		Section:  "Foundations",
		Author:   author,
		OneLiner: fmt.Sprintf("one liner for %s", title),
		Dimensions: map[string]float64{
			"power":              power,
			"capital":            capital,
			"alphabetical_order": alpha,
		},
	}
}

func TestProject_Empty(t *testing.T) {
	_, err := Project(nil, catalog.AxisTriple{X: "power", Y: "capital", Z: "power"}, testRegistry(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyResult))
}

func TestProject_UnknownAxis(t *testing.T) {
	readings := []*catalog.Reading{reading(t, "A", "Ostrom", 1, 2, 3)}
	_, err := Project(readings, catalog.AxisTriple{X: "velocity", Y: "capital", Z: "power"}, testRegistry(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrUnknownAxis))
}

func TestProject_RangePadding(t *testing.T) {
	// Scores {2, 5, 9} on power: padding = (9-2)*0.1 = 0.7,
	// range = [max(0, 2-0.7), min(11, 9+0.7)] = [1.3, 9.7]
	readings := []*catalog.Reading{
		reading(t, "A", "Ostrom", 2, 1, 1),
		reading(t, "B", "Basu", 5, 1, 2),
		reading(t, "C", "Dixit", 9, 1, 3),
	}

	result, err := Project(readings, catalog.AxisTriple{X: "power", Y: "capital", Z: "capital"}, testRegistry(t))
	require.NoError(t, err)

	assert.InDelta(t, 1.3, result.Ranges.X[0], 1e-9)
	assert.InDelta(t, 9.7, result.Ranges.X[1], 1e-9)
}

func TestProject_PaddingFloor(t *testing.T) {
	// Single reading, score 6: padding floored at 0.5,
	// range = [max(0, 5.5), min(11, 6.5)] = [5.5, 6.5]
	readings := []*catalog.Reading{reading(t, "A", "Ostrom", 6, 6, 6)}

	result, err := Project(readings, catalog.AxisTriple{X: "power", Y: "power", Z: "power"}, testRegistry(t))
	require.NoError(t, err)

	assert.InDelta(t, 5.5, result.Ranges.X[0], 1e-9)
	assert.InDelta(t, 6.5, result.Ranges.X[1], 1e-9)
}

func TestProject_RangeClamps(t *testing.T) {
	t.Run("lower bound never negative", func(t *testing.T) {
		readings := []*catalog.Reading{reading(t, "A", "Ostrom", 0.2, 1, 1)}
		result, err := Project(readings, catalog.AxisTriple{X: "power", Y: "capital", Z: "capital"}, testRegistry(t))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Ranges.X[0], 0.0)
	})

	t.Run("upper bound clamped to axis max plus one", func(t *testing.T) {
		readings := []*catalog.Reading{reading(t, "A", "Ostrom", 10, 1, 13)}
		result, err := Project(readings, catalog.AxisTriple{X: "power", Y: "capital", Z: "alphabetical_order"}, testRegistry(t))
		require.NoError(t, err)
		assert.LessOrEqual(t, result.Ranges.X[1], 11.0)
		assert.LessOrEqual(t, result.Ranges.Z[1], 14.0)
	})
}

func TestProject_RangeCoversValues(t *testing.T) {
	// Property: for any non-empty subset, range[0] <= min <= max <= range[1]
	cases := [][]float64{
		{1},
		{1, 10},
		{3, 3, 3},
		{2, 5, 9},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	}

	for _, scores := range cases {
		var readings []*catalog.Reading
		for i, s := range scores {
			readings = append(readings, reading(t, fmt.Sprintf("R%d", i), "Ostrom", s, 1, 1))
		}

		result, err := Project(readings, catalog.AxisTriple{X: "power", Y: "capital", Z: "capital"}, testRegistry(t))
		require.NoError(t, err)

		for _, s := range scores {
			assert.True(t, result.Ranges.X.Contains(s),
				"range %v should contain %v (scores %v)", result.Ranges.X, s, scores)
		}
		// Padding >= 0.5 even when min == max
		assert.GreaterOrEqual(t, result.Ranges.X[1]-result.Ranges.X[0], 0.5)
	}
}

func TestProject_DuplicateAxisAcrossDimensions(t *testing.T) {
	readings := []*catalog.Reading{reading(t, "A", "Ostrom", 4, 7, 2)}

	result, err := Project(readings, catalog.AxisTriple{X: "power", Y: "capital", Z: "power"}, testRegistry(t))
	require.NoError(t, err)

	p := result.Series[0].Points[0]
	assert.Equal(t, 4.0, p.X)
	assert.Equal(t, 7.0, p.Y)
	assert.Equal(t, 4.0, p.Z)
	assert.Equal(t, result.Ranges.X, result.Ranges.Z)
}

func TestProject_SeriesGrouping(t *testing.T) {
	readings := []*catalog.Reading{
		reading(t, "A", "Ostrom", 1, 1, 1),
		reading(t, "B", "Basu", 2, 2, 2),
		reading(t, "C", "Ostrom", 3, 3, 3),
	}

	result, err := Project(readings, catalog.AxisTriple{X: "power", Y: "capital", Z: "capital"}, testRegistry(t))
	require.NoError(t, err)

	require.Len(t, result.Series, 2)
	assert.Equal(t, "Ostrom", result.Series[0].Author)
	assert.Len(t, result.Series[0].Points, 2)
	assert.Equal(t, "Basu", result.Series[1].Author)
	assert.Len(t, result.Series[1].Points, 1)

	// Points carry hover metadata
	assert.Equal(t, "A", result.Series[0].Points[0].Title)
	assert.Equal(t, "Foundations", result.Series[0].Points[0].Section)
	assert.NotEmpty(t, result.Series[0].Points[0].OneLiner)
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, "#10B981", ColorFor("Ostrom"))
	// Shared authorship keyed by primary author shares a color
	assert.Equal(t, ColorFor("Acemoglu, Johnson, Robinson"), ColorFor("Acemoglu,  Robinson"))
	// Total function: unknown authors get the fallback, never an error
	assert.Equal(t, DefaultSeriesColor, ColorFor("Coase"))
}
