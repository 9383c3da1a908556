// Package imagegrid lays out collections of 2-D images into a rows-by-columns
// grid on a drawing surface. The renderer decides a normalization policy up
// front: either one shared intensity range across every panel with a single
// colorbar, or an independent range and colorbar per panel.
package imagegrid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidLayout reports grid geometry that cannot hold the supplied
// panels, or a malformed panel.
var ErrInvalidLayout = errors.New("imagegrid: invalid layout")

// Panel is one image in a grid. A non-empty Name is shown as the panel's
// caption.
type Panel struct {
	Name string
	Grid [][]float64
}

// Range is an intensity interval used to normalize panel values for display.
type Range struct {
	Min, Max float64
}

// DrawOptions carries per-panel display options forwarded verbatim to the
// surface, e.g. {"cmap": "gray"}.
type DrawOptions map[string]any

// Handle identifies one drawn panel on a Surface, returned to the caller for
// further customization. Its concrete type is surface-specific.
type Handle any

// Surface is the narrow drawing backend contract the renderer targets.
// Panels are addressed by their input order; the surface maps that index to
// a grid cell row-major, left to right.
type Surface interface {
	// CreateGrid prepares a figure with rows*cols panel slots.
	CreateGrid(rows, cols int) error
	// DrawImage displays img in slot index. A nil norm means the panel
	// normalizes to its own value range; otherwise norm applies.
	DrawImage(index int, img [][]float64, norm *Range, opts DrawOptions) (Handle, error)
	// AttachColorbar attaches a colorbar with the given range to slot index.
	AttachColorbar(index int, norm Range) error
	// SharedColorbar attaches one colorbar for the whole grid.
	SharedColorbar(norm Range) error
	// SetTitle captions slot index.
	SetTitle(index int, title string) error
	// LinkAxes ties all panel axes together for synchronized pan and zoom.
	LinkAxes() error
}

// Options controls grid geometry and normalization policy.
type Options struct {
	// Rows is the number of grid rows. Zero means 1.
	Rows int
	// Cols is the number of grid columns. Zero means ceil(len(panels)/Rows).
	Cols int
	// SeparateColorbars selects per-panel normalization: each panel scales to
	// its own range and gets its own colorbar. When false, one range spanning
	// all panels is applied everywhere and a single colorbar is attached.
	SeparateColorbars bool
	// ShareAll links all panel axes for synchronized pan and zoom.
	ShareAll bool
	// Draw is forwarded verbatim to the surface for every panel.
	Draw DrawOptions
}

// NormMode selects how panel intensities map to display colors.
type NormMode int

const (
	// NormShared applies one min/max range to every panel.
	NormShared NormMode = iota
	// NormPerPanel lets each panel normalize to its own range.
	NormPerPanel
)

// Normalization is the policy computed once per render call. Min and Max are
// meaningful only in NormShared mode.
type Normalization struct {
	Mode     NormMode
	Min, Max float64
}

// Render draws panels onto the surface in input order, filling grid rows left
// to right. It returns one handle per panel, in input order. An empty panel
// collection returns an empty handle list without touching the surface.
func Render(s Surface, panels []Panel, opts Options) ([]Handle, error) {
	if len(panels) == 0 {
		return []Handle{}, nil
	}

	rows := opts.Rows
	if rows == 0 {
		rows = 1
	}
	if rows < 1 {
		return nil, fmt.Errorf("row count %d: %w", rows, ErrInvalidLayout)
	}
	cols := opts.Cols
	if cols == 0 {
		cols = (len(panels) + rows - 1) / rows
	}
	if rows*cols < len(panels) {
		return nil, fmt.Errorf("%dx%d grid cannot hold %d panels: %w", rows, cols, len(panels), ErrInvalidLayout)
	}

	ranges := make([]Range, len(panels))
	for i, p := range panels {
		rng, err := panelRange(p.Grid)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
		ranges[i] = rng
	}

	// The policy is fixed before any panel is drawn; in shared mode every
	// panel contributes to the range first.
	norm := Normalization{Mode: NormPerPanel}
	if !opts.SeparateColorbars {
		norm = Normalization{Mode: NormShared, Min: ranges[0].Min, Max: ranges[0].Max}
		for _, rng := range ranges[1:] {
			norm.Min = min(norm.Min, rng.Min)
			norm.Max = max(norm.Max, rng.Max)
		}
	}

	if err := s.CreateGrid(rows, cols); err != nil {
		return nil, err
	}

	handles := make([]Handle, 0, len(panels))
	for i, p := range panels {
		var panelNorm *Range
		if norm.Mode == NormShared {
			panelNorm = &Range{Min: norm.Min, Max: norm.Max}
		}
		h, err := s.DrawImage(i, p.Grid, panelNorm, opts.Draw)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
		if p.Name != "" {
			if err := s.SetTitle(i, p.Name); err != nil {
				return nil, fmt.Errorf("panel %d: %w", i, err)
			}
		}
		if norm.Mode == NormPerPanel {
			if err := s.AttachColorbar(i, ranges[i]); err != nil {
				return nil, fmt.Errorf("panel %d: %w", i, err)
			}
		}
		handles = append(handles, h)
	}

	if norm.Mode == NormShared {
		if err := s.SharedColorbar(Range{Min: norm.Min, Max: norm.Max}); err != nil {
			return nil, err
		}
	}
	if opts.ShareAll {
		if err := s.LinkAxes(); err != nil {
			return nil, err
		}
	}
	return handles, nil
}

func panelRange(grid [][]float64) (Range, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return Range{}, fmt.Errorf("empty image: %w", ErrInvalidLayout)
	}
	cols := len(grid[0])
	rng := Range{Min: floats.Min(grid[0]), Max: floats.Max(grid[0])}
	for r := 1; r < len(grid); r++ {
		if len(grid[r]) != cols {
			return Range{}, fmt.Errorf("ragged image: row %d has %d columns, row 0 has %d: %w", r, len(grid[r]), cols, ErrInvalidLayout)
		}
		rng.Min = min(rng.Min, floats.Min(grid[r]))
		rng.Max = max(rng.Max, floats.Max(grid[r]))
	}
	return rng, nil
}
