package imagegrid

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PlotSurface is the gonum/plot implementation of Surface. Each panel slot
// becomes one *plot.Plot carrying a heat-map raster of the image; colorbars
// are rendered as slim companion plots. Handles returned from DrawImage are
// the *plot.Plot values. Call WritePNG after rendering to produce the figure.
type PlotSurface struct {
	rows, cols int
	plots      []*plot.Plot
	bars       []*plot.Plot
	shared     *plot.Plot
	pal        palette.Palette
}

// NewPlotSurface returns an empty surface. CreateGrid must be called before
// any panel is drawn; Render does this.
func NewPlotSurface() *PlotSurface {
	return &PlotSurface{}
}

// CreateGrid implements Surface.
func (s *PlotSurface) CreateGrid(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%dx%d grid: %w", rows, cols, ErrInvalidLayout)
	}
	s.rows, s.cols = rows, cols
	s.plots = make([]*plot.Plot, rows*cols)
	s.bars = make([]*plot.Plot, rows*cols)
	s.shared = nil
	s.pal = nil
	return nil
}

// DrawImage implements Surface.
func (s *PlotSurface) DrawImage(index int, img [][]float64, norm *Range, opts DrawOptions) (Handle, error) {
	if index < 0 || index >= len(s.plots) {
		return nil, fmt.Errorf("slot %d outside %dx%d grid: %w", index, s.rows, s.cols, ErrInvalidLayout)
	}
	pal, err := lookupPalette(opts)
	if err != nil {
		return nil, err
	}
	s.pal = pal

	p := plot.New()
	p.X.Padding = 0
	p.Y.Padding = 0
	hm := plotter.NewHeatMap(&rasterGrid{z: img}, pal)
	if norm != nil {
		hm.Min = norm.Min
		hm.Max = norm.Max
	}
	p.Add(hm)
	s.plots[index] = p
	return p, nil
}

// AttachColorbar implements Surface.
func (s *PlotSurface) AttachColorbar(index int, norm Range) error {
	if index < 0 || index >= len(s.bars) {
		return fmt.Errorf("slot %d outside %dx%d grid: %w", index, s.rows, s.cols, ErrInvalidLayout)
	}
	s.bars[index] = s.colorbarPlot(norm)
	return nil
}

// SharedColorbar implements Surface.
func (s *PlotSurface) SharedColorbar(norm Range) error {
	s.shared = s.colorbarPlot(norm)
	return nil
}

// SetTitle implements Surface.
func (s *PlotSurface) SetTitle(index int, title string) error {
	if index < 0 || index >= len(s.plots) || s.plots[index] == nil {
		return fmt.Errorf("slot %d has no panel: %w", index, ErrInvalidLayout)
	}
	s.plots[index].Title.Text = title
	return nil
}

// LinkAxes implements Surface. gonum/plot figures are static, so linking
// amounts to giving every panel the same axis ranges.
func (s *PlotSurface) LinkAxes() error {
	first := true
	var xmin, xmax, ymin, ymax float64
	for _, p := range s.plots {
		if p == nil {
			continue
		}
		if first {
			xmin, xmax, ymin, ymax = p.X.Min, p.X.Max, p.Y.Min, p.Y.Max
			first = false
			continue
		}
		xmin = min(xmin, p.X.Min)
		xmax = max(xmax, p.X.Max)
		ymin = min(ymin, p.Y.Min)
		ymax = max(ymax, p.Y.Max)
	}
	for _, p := range s.plots {
		if p == nil {
			continue
		}
		p.X.Min, p.X.Max = xmin, xmax
		p.Y.Min, p.Y.Max = ymin, ymax
	}
	return nil
}

// WritePNG lays the grid out on a canvas of the given size and writes the
// figure as PNG. Colorbar plots occupy companion tiles: one per panel in
// per-panel mode, or a single trailing tile in shared mode.
func (s *PlotSurface) WritePNG(w io.Writer, width, height vg.Length) error {
	if s.plots == nil {
		return fmt.Errorf("no grid created: %w", ErrInvalidLayout)
	}
	hasBars := false
	for _, b := range s.bars {
		if b != nil {
			hasBars = true
			break
		}
	}

	gcols := s.cols
	switch {
	case hasBars:
		gcols = 2 * s.cols
	case s.shared != nil:
		gcols = s.cols + 1
	}

	grid := make([][]*plot.Plot, s.rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, gcols)
	}
	for idx, p := range s.plots {
		if p == nil {
			continue
		}
		r, c := idx/s.cols, idx%s.cols
		if hasBars {
			grid[r][2*c] = p
			grid[r][2*c+1] = s.bars[idx]
		} else {
			grid[r][c] = p
		}
	}
	if s.shared != nil && !hasBars {
		grid[0][s.cols] = s.shared
	}

	t := draw.Tiles{
		Rows: s.rows, Cols: gcols,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Millimeter, PadBottom: vg.Millimeter,
		PadLeft: vg.Millimeter, PadRight: vg.Millimeter,
	}
	img := vgimg.New(width, height)
	canvases := plot.Align(grid, t, draw.New(img))
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] != nil {
				grid[r][c].Draw(canvases[r][c])
			}
		}
	}
	_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

func (s *PlotSurface) colorbarPlot(norm Range) *plot.Plot {
	pal := s.pal
	if pal == nil {
		pal = grayPalette{shades: 256}
	}
	p := plot.New()
	p.Add(&plotter.ColorBar{
		ColorMap: &paletteColorMap{colors: pal.Colors(), min: norm.Min, max: norm.Max, alpha: 1},
		Vertical: true,
	})
	p.HideX()
	p.Y.Padding = 0
	return p
}

func lookupPalette(opts DrawOptions) (palette.Palette, error) {
	name := "gray"
	if v, ok := opts["cmap"]; ok {
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("cmap option must be a string, got %T: %w", v, ErrInvalidLayout)
		}
		name = str
	}
	switch name {
	case "gray", "grey":
		return grayPalette{shades: 256}, nil
	case "heat":
		return palette.Heat(256, 1), nil
	case "rainbow":
		return palette.Rainbow(256, palette.Blue, palette.Red, 1, 1, 1), nil
	default:
		return nil, fmt.Errorf("unknown cmap %q: %w", name, ErrInvalidLayout)
	}
}

// rasterGrid adapts a row-major image to plotter.GridXYZ. Rows are flipped so
// image row 0 appears at the top of the panel.
type rasterGrid struct {
	z [][]float64
}

func (g *rasterGrid) Dims() (c, r int) { return len(g.z[0]), len(g.z) }
func (g *rasterGrid) Z(c, r int) float64 {
	return g.z[len(g.z)-1-r][c]
}
func (g *rasterGrid) X(c int) float64 { return float64(c) }
func (g *rasterGrid) Y(r int) float64 { return float64(r) }

// grayPalette is a linear grayscale palette.
type grayPalette struct {
	shades int
}

func (g grayPalette) Colors() []color.Color {
	cs := make([]color.Color, g.shades)
	for i := range cs {
		cs[i] = color.Gray{Y: uint8(i * 255 / (g.shades - 1))}
	}
	return cs
}

// paletteColorMap adapts a discrete palette to the continuous
// palette.ColorMap interface colorbars require. Values outside [min, max]
// clamp to the end colors.
type paletteColorMap struct {
	colors   []color.Color
	min, max float64
	alpha    float64
}

func (m *paletteColorMap) At(v float64) (color.Color, error) {
	t := 0.0
	if m.max > m.min {
		t = (v - m.min) / (m.max - m.min)
	}
	t = math.Min(1, math.Max(0, t))
	return m.colors[int(math.Round(t*float64(len(m.colors)-1)))], nil
}

func (m *paletteColorMap) Min() float64     { return m.min }
func (m *paletteColorMap) Max() float64     { return m.max }
func (m *paletteColorMap) SetMin(v float64) { m.min = v }
func (m *paletteColorMap) SetMax(v float64) { m.max = v }

func (m *paletteColorMap) Alpha() float64 { return m.alpha }
func (m *paletteColorMap) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic("imagegrid: alpha must be between zero and one")
	}
	m.alpha = a
}

func (m *paletteColorMap) Palette(colors int) palette.Palette {
	cs := make([]color.Color, colors)
	for i := range cs {
		c, _ := m.At(m.min + (m.max-m.min)*float64(i)/float64(colors-1))
		cs[i] = c
	}
	return colorSlice(cs)
}

type colorSlice []color.Color

func (p colorSlice) Colors() []color.Color { return p }
