// Package viz renders concentration profiles to the terminal and to PNG
// files.
package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rdsim/internal/rd"
)

// Profiles renders both species' concentration profiles as one terminal
// chart.
func Profiles(u, v rd.Field, width, height int) string {
	return asciigraph.PlotMany(
		[][]float64{u, v},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.SeriesLegends("U (active)", "V (inactive)"),
	)
}
