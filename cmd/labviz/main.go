// Command labviz renders lab imagery to PNG files: color-coded motion fields
// via the gopcolor wheel encoding, and grids of grayscale images with shared
// or per-panel colorbars.
package main

import (
	"encoding/csv"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/Parskatt/tsbb15-labs/internal/dataset"
	"github.com/Parskatt/tsbb15-labs/internal/flowfield"
	"github.com/Parskatt/tsbb15-labs/internal/gopcolor"
	"github.com/Parskatt/tsbb15-labs/internal/imagegrid"
)

var (
	log = logrus.New()

	imageDir string
	output   string
	verbose  bool

	flowScale float64

	gridRows     int
	gridCols     int
	separateBars bool
	shareAll     bool
	cmapName     string
	figWidth     float64
	figHeight    float64
)

func main() {
	root := &cobra.Command{
		Use:   "labviz",
		Short: "Render motion fields and image grids from the lab datasets",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVar(&imageDir, "dir", "", "dataset directory (default $"+dataset.EnvImageDirectory+")")
	root.PersistentFlags().StringVarP(&output, "out", "o", "out.png", "output PNG path")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	flowCmd := &cobra.Command{
		Use:   "flow <field.csv>",
		Short: "Encode a motion field CSV as a color image",
		Long: "Encode a motion field as a color image. The CSV holds one image row per\n" +
			"record, with x,y component pairs interleaved: a row of C vectors has 2*C values.",
		Args: cobra.ExactArgs(1),
		RunE: runFlow,
	}
	flowCmd.Flags().Float64Var(&flowScale, "scale", 1, "magnitude scale factor")

	gridCmd := &cobra.Command{
		Use:   "grid <image>...",
		Short: "Render dataset images in a grid",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runGrid,
	}
	gridCmd.Flags().IntVar(&gridRows, "nrows", 1, "number of grid rows")
	gridCmd.Flags().IntVar(&gridCols, "ncols", 0, "number of grid columns (0 = fit)")
	gridCmd.Flags().BoolVar(&separateBars, "separate-colorbars", false, "per-panel normalization and colorbars")
	gridCmd.Flags().BoolVar(&shareAll, "share-all", false, "link panel axes")
	gridCmd.Flags().StringVar(&cmapName, "cmap", "gray", "colormap: gray, heat or rainbow")
	gridCmd.Flags().Float64Var(&figWidth, "width", 20, "figure width in cm")
	gridCmd.Flags().Float64Var(&figHeight, "height", 15, "figure height in cm")

	datasetsCmd := &cobra.Command{
		Use:   "datasets",
		Short: "List images in the dataset directory",
		Args:  cobra.NoArgs,
		RunE:  runDatasets,
	}

	root.AddCommand(flowCmd, gridCmd, datasetsCmd)
	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func runFlow(cmd *cobra.Command, args []string) error {
	field, err := readFlowCSV(args[0])
	if err != nil {
		return err
	}
	im, err := gopcolor.Encode(field, flowScale)
	if err != nil {
		return err
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, im.ToRGBA()); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	log.WithFields(logrus.Fields{"out": output, "rows": im.Rows, "cols": im.Cols}).Info("wrote flow image")
	return nil
}

func runGrid(cmd *cobra.Command, args []string) error {
	loader, err := dataset.NewLoader(imageDir, log)
	if err != nil {
		return err
	}
	panels := make([]imagegrid.Panel, 0, len(args))
	for _, name := range args {
		grid, err := loader.LoadImage(name)
		if err != nil {
			return err
		}
		title := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		panels = append(panels, imagegrid.Panel{Name: title, Grid: grid})
	}

	surface := imagegrid.NewPlotSurface()
	_, err = imagegrid.Render(surface, panels, imagegrid.Options{
		Rows:              gridRows,
		Cols:              gridCols,
		SeparateColorbars: separateBars,
		ShareAll:          shareAll,
		Draw:              imagegrid.DrawOptions{"cmap": cmapName},
	})
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := surface.WritePNG(f, vg.Length(figWidth)*vg.Centimeter, vg.Length(figHeight)*vg.Centimeter); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	log.WithFields(logrus.Fields{"out": output, "panels": len(panels)}).Info("wrote image grid")
	return nil
}

func runDatasets(cmd *cobra.Command, args []string) error {
	loader, err := dataset.NewLoader(imageDir, log)
	if err != nil {
		return err
	}
	names, err := loader.List()
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

// readFlowCSV parses a motion field stored as CSV: one image row per record,
// x,y pairs interleaved.
func readFlowCSV(path string) (*flowfield.Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	xs := make([][]float64, len(records))
	ys := make([][]float64, len(records))
	for r, rec := range records {
		if len(rec)%2 != 0 {
			return nil, fmt.Errorf("%s row %d: odd value count %d, want x,y pairs", path, r+1, len(rec))
		}
		xs[r] = make([]float64, len(rec)/2)
		ys[r] = make([]float64, len(rec)/2)
		for c := 0; c < len(rec)/2; c++ {
			if xs[r][c], err = strconv.ParseFloat(strings.TrimSpace(rec[2*c]), 64); err != nil {
				return nil, fmt.Errorf("%s row %d: %w", path, r+1, err)
			}
			if ys[r][c], err = strconv.ParseFloat(strings.TrimSpace(rec[2*c+1]), 64); err != nil {
				return nil, fmt.Errorf("%s row %d: %w", path, r+1, err)
			}
		}
	}
	return flowfield.FromComponents(xs, ys)
}
