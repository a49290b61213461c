package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/rdsim/internal/rd"
)

// SaveProfiles writes a PNG of both species' final concentration profiles.
func SaveProfiles(path, title string, g rd.Grid, u, v rd.Field) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "concentration"

	lineU, err := plotter.NewLine(fieldXY(g, u))
	if err != nil {
		return err
	}
	lineU.Color = color.RGBA{R: 220, G: 50, B: 47, A: 255}

	lineV, err := plotter.NewLine(fieldXY(g, v))
	if err != nil {
		return err
	}
	lineV.Color = color.RGBA{R: 38, G: 139, B: 210, A: 255}

	p.Add(lineU, lineV)
	p.Legend.Add("U", lineU)
	p.Legend.Add("V", lineV)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// SaveHeatmap writes a PNG space-time heatmap of one species' trajectory,
// space on the horizontal axis and time increasing upward.
func SaveHeatmap(path, title string, g rd.Grid, states []rd.Field) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "t"

	hm := plotter.NewHeatMap(spaceTimeGrid{g: g, rows: states}, palette.Heat(64, 1))
	p.Add(hm)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

func fieldXY(g rd.Grid, f rd.Field) plotter.XYs {
	xys := make(plotter.XYs, len(f))
	for i, y := range f {
		xys[i].X = float64(i) * g.Dx
		xys[i].Y = y
	}
	return xys
}

// spaceTimeGrid adapts a trajectory to plotter.GridXYZ.
type spaceTimeGrid struct {
	g    rd.Grid
	rows []rd.Field
}

func (s spaceTimeGrid) Dims() (c, r int)   { return s.g.Points, len(s.rows) }
func (s spaceTimeGrid) Z(c, r int) float64 { return s.rows[r][c] }
func (s spaceTimeGrid) X(c int) float64    { return float64(c) * s.g.Dx }
func (s spaceTimeGrid) Y(r int) float64    { return float64(r) * s.g.Dt }
