// Package dataset loads the course's shared reference images. Images are
// converted to single-channel grayscale grids on load, with one float64 per
// pixel in [0, 255]. The package is plain I/O plumbing: the visualization
// packages never import it, they only consume the grids it produces.
package dataset

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
)

// EnvImageDirectory names the environment variable consulted when no dataset
// directory is given explicitly.
const EnvImageDirectory = "TSBB15_IMAGE_DIRECTORY"

// manifestFile is the optional per-directory manifest naming the well-known
// dataset artifacts.
const manifestFile = "datasets.yaml"

// ErrNoDirectory reports that no dataset directory was configured.
var ErrNoDirectory = errors.New("dataset: no image directory configured (set " + EnvImageDirectory + " or pass a directory)")

// Manifest maps the well-known dataset keys to files and scalar metadata.
type Manifest struct {
	Cameraman CameramanEntry `yaml:"cameraman"`
	Stereo    StereoEntry    `yaml:"stereo"`
}

// CameramanEntry describes the cameraman reference fixture: the source file,
// the side length of the square crops, and the known displacement between
// the two crops in (x, y) order.
type CameramanEntry struct {
	File   string `yaml:"file"`
	Size   int    `yaml:"size"`
	Offset [2]int `yaml:"offset"`
}

// StereoEntry names the two images of the stereo pair.
type StereoEntry struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

func defaultManifest() Manifest {
	return Manifest{
		Cameraman: CameramanEntry{File: "cameraman.tif", Size: 236, Offset: [2]int{1, -2}},
		Stereo:    StereoEntry{Left: "stereo_left.png", Right: "stereo_right.png"},
	}
}

// Loader reads images from one dataset directory.
type Loader struct {
	dir      string
	manifest Manifest
	log      *logrus.Logger
}

// NewLoader opens the dataset directory. An empty dir falls back to the
// TSBB15_IMAGE_DIRECTORY environment variable. If the directory contains a
// datasets.yaml manifest it overrides the built-in artifact names.
func NewLoader(dir string, log *logrus.Logger) (*Loader, error) {
	if dir == "" {
		dir = os.Getenv(EnvImageDirectory)
	}
	if dir == "" {
		return nil, ErrNoDirectory
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	l := &Loader{dir: dir, manifest: defaultManifest(), log: log}

	raw, err := os.ReadFile(filepath.Join(dir, manifestFile))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No manifest; built-in names apply.
	case err != nil:
		return nil, fmt.Errorf("read manifest: %w", err)
	default:
		if err := yaml.Unmarshal(raw, &l.manifest); err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
		l.log.WithField("dir", dir).Debug("loaded dataset manifest")
	}
	return l, nil
}

// Dir returns the dataset directory.
func (l *Loader) Dir() string { return l.dir }

// LoadImage loads the named image from the dataset directory as a grayscale
// grid. Name may be a bare filename or a path relative to the directory.
func (l *Loader) LoadImage(name string) ([][]float64, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.dir, name)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	grid := toGrayGrid(img)
	l.log.WithFields(logrus.Fields{
		"path":   path,
		"format": format,
		"rows":   len(grid),
		"cols":   len(grid[0]),
	}).Debug("loaded image")
	return grid, nil
}

// List returns the image filenames in the dataset directory, sorted.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".tif", ".tiff", ".jpg", ".jpeg":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Cameraman returns the cameraman reference fixture: two equally sized square
// crops of the source image displaced by a known (x, y) offset, plus that
// offset. The pair is the standard input for the displacement-estimation
// exercise.
func (l *Loader) Cameraman() (ref, shifted [][]float64, offset [2]int, err error) {
	entry := l.manifest.Cameraman
	full, err := l.LoadImage(entry.File)
	if err != nil {
		return nil, nil, [2]int{}, err
	}
	dx, dy := entry.Offset[0], entry.Offset[1]

	// Base origin chosen so both crops stay inside the source image.
	ox, oy := max(0, -dx), max(0, -dy)
	ref, err = crop(full, ox, oy, entry.Size)
	if err != nil {
		return nil, nil, [2]int{}, fmt.Errorf("cameraman reference crop: %w", err)
	}
	shifted, err = crop(full, ox+dx, oy+dy, entry.Size)
	if err != nil {
		return nil, nil, [2]int{}, fmt.Errorf("cameraman shifted crop: %w", err)
	}
	return ref, shifted, entry.Offset, nil
}

// LoadStereoPair returns the left and right images of the stereo pair. Both
// images must have the same shape.
func (l *Loader) LoadStereoPair() (left, right [][]float64, err error) {
	entry := l.manifest.Stereo
	left, err = l.LoadImage(entry.Left)
	if err != nil {
		return nil, nil, err
	}
	right, err = l.LoadImage(entry.Right)
	if err != nil {
		return nil, nil, err
	}
	if len(left) != len(right) || len(left[0]) != len(right[0]) {
		return nil, nil, fmt.Errorf("stereo pair shapes differ: %dx%d vs %dx%d",
			len(left), len(left[0]), len(right), len(right[0]))
	}
	return left, right, nil
}

func toGrayGrid(img image.Image) [][]float64 {
	b := img.Bounds()
	grid := make([][]float64, b.Dy())
	for y := range grid {
		row := make([]float64, b.Dx())
		for x := range row {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// ITU-R BT.601 luma, matching PIL's 'L' conversion.
			row[x] = (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)) / 257
		}
		grid[y] = row
	}
	return grid
}

func crop(grid [][]float64, x, y, size int) ([][]float64, error) {
	if y < 0 || x < 0 || y+size > len(grid) || x+size > len(grid[0]) {
		return nil, fmt.Errorf("crop %dx%d at (%d, %d) outside %dx%d image",
			size, size, x, y, len(grid), len(grid[0]))
	}
	out := make([][]float64, size)
	for r := 0; r < size; r++ {
		out[r] = append([]float64(nil), grid[y+r][x:x+size]...)
	}
	return out, nil
}
