package bpipe

// Drives the two rendering stages as one pipeline: the run
// configuration, the Kernel that holds every buffer, and the file
// output helpers the command-line tool uses.

import(
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/3bl3gamer/buddhabrot/pkg/bbrot"
	"github.com/3bl3gamer/buddhabrot/pkg/bmath"
	"github.com/3bl3gamer/buddhabrot/pkg/btone"
)

// Config is everything a render run needs, loadable from yaml. All the
// strategy knobs are strings so config files stay readable; they get
// resolved into typed modes by the getters below.
type Config struct {
	Verbosity int

	Width, Height int
	Iters         int // iteration budget per sample
	Samples       int // total across the whole run
	Batches       int // how many Render calls the samples are split over
	Seed, Seq     uint64

	Points    string // inner | outer
	Color     string // constant | hue-red | hue-green | hue-blue | depth
	Escape    string // axis | radius
	Luminance string // max | rec709

	Step     int     // exposure estimator subsampling stride
	Contrast float64 // gamma exponent for the output table

	Matrix []float64 // 8 projection coefficients; empty means identity
}

func NewConfig() Config {
	return Config{
		Width:     512,
		Height:    512,
		Iters:     500,
		Samples:   2000000,
		Batches:   10,
		Points:    "outer",
		Color:     "constant",
		Escape:    "axis",
		Luminance: "max",
		Step:      2,
		Contrast:  1,
	}
}

// LoadConfig reads a yaml file over the defaults.
func LoadConfig(filename string) (Config, error) {
	c := NewConfig()
	b, err := os.ReadFile(filename)
	if err != nil {
		return c, fmt.Errorf("open+r '%s': %v", filename, err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse yaml '%s': %v", filename, err)
	}
	return c, nil
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("can't marshal config yaml: %v", err)
	}
	return string(b)
}

func (c Config)PointsMode() (bbrot.PointsMode, error) {
	switch c.Points {
	case "inner": return bbrot.PointsInner, nil
	case "outer": return bbrot.PointsOuter, nil
	}
	return 0, fmt.Errorf("no points mode named '%s'", c.Points)
}

func (c Config)ColorMode() (bbrot.ColorMode, error) {
	switch c.Color {
	case "constant":  return bbrot.ColorConstant, nil
	case "hue-red":   return bbrot.ColorHueRed, nil
	case "hue-green": return bbrot.ColorHueGreen, nil
	case "hue-blue":  return bbrot.ColorHueBlue, nil
	case "depth":     return bbrot.ColorDepth, nil
	}
	return 0, fmt.Errorf("no color mode named '%s'", c.Color)
}

func (c Config)EscapeTest() (bbrot.EscapeTest, error) {
	switch c.Escape {
	case "axis":   return bbrot.EscapeAxis, nil
	case "radius": return bbrot.EscapeRadius, nil
	}
	return 0, fmt.Errorf("no escape test named '%s'", c.Escape)
}

func (c Config)LumMetric() (btone.LumMetric, error) {
	switch c.Luminance {
	case "max":    return btone.LumMax, nil
	case "rec709": return btone.LumRec709, nil
	}
	return 0, fmt.Errorf("no luminance metric named '%s'", c.Luminance)
}

// ViewMatrix resolves the projection coefficients.
func (c Config)ViewMatrix() (bmath.ProjMat, error) {
	if len(c.Matrix) == 0 {
		return bmath.Identity(), nil
	}
	if len(c.Matrix) != 8 {
		return bmath.ProjMat{}, fmt.Errorf("matrix has %d coefficients, want 8", len(c.Matrix))
	}
	var m bmath.ProjMat
	copy(m[:], c.Matrix)
	return m, nil
}

// Finalize checks the numeric ranges and resolves every strategy name
// once, so a bad config fails before any buffer gets allocated.
func (c Config)Finalize() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("image size %dx%d", c.Width, c.Height)
	}
	if c.Iters < 1 {
		return fmt.Errorf("iteration budget %d, want >= 1", c.Iters)
	}
	if c.Samples < 0 {
		return fmt.Errorf("negative sample count %d", c.Samples)
	}
	if c.Batches < 1 {
		return fmt.Errorf("batch count %d, want >= 1", c.Batches)
	}
	if c.Step < 1 {
		return fmt.Errorf("subsampling step %d, want >= 1", c.Step)
	}
	if _, err := c.PointsMode(); err != nil {
		return err
	}
	if _, err := c.ColorMode(); err != nil {
		return err
	}
	if _, err := c.EscapeTest(); err != nil {
		return err
	}
	if _, err := c.LumMetric(); err != nil {
		return err
	}
	if _, err := c.ViewMatrix(); err != nil {
		return err
	}
	return nil
}
