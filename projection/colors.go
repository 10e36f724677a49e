package projection

// DefaultSeriesColor is used for any author not present in the color table.
// Color lookup is a total function: every author renders with some color.
const DefaultSeriesColor = "#999999"

// authorColors assigns each author a fixed series color. Shared authorship
// keyed by primary author gets the same color (both Acemoglu entries).
var authorColors = map[string]string{
	"Acemoglu, Johnson, Robinson": "#FF6B6B",
	"Acemoglu,  Robinson":         "#FF6B6B",
	"Aghion, Howitt, Mokyr":       "#06B6D4",
	"Basu":                        "#2A73FF",
	"Bowles":                      "#2ACC88",
	"Dixit":                       "#FFD93D",
	"Greif":                       "#A78BFA",
	"Mokyr":                       "#F97316",
	"North, Weingast":             "#EC4899",
	"Ostrom":                      "#10B981",
	"Roine":                       "#8B5CF6",
}

// ColorFor returns the series color for an author, falling back to
// DefaultSeriesColor for authors outside the table.
func ColorFor(author string) string {
	if color, ok := authorColors[author]; ok {
		return color
	}
	return DefaultSeriesColor
}
