package main

import(
	"flag"
	"fmt"
	"log"

	"github.com/3bl3gamer/buddhabrot/pkg/bdiag"
	"github.com/3bl3gamer/buddhabrot/pkg/bpipe"
)

var(
	fConfigFilename string
	fOutputFilename string
	fHDRFilename    string
	fChartFilename  string
	fTonemapper     string
	fSamples        int
	fBatches        int
	fSeed           uint64
	fSeq            uint64
	fVerbosity      int
)

func init() {
	flag.StringVar(&fConfigFilename, "config", "", "yaml render configuration file")
	flag.StringVar(&fOutputFilename, "o", "out.png", "name of output image file")
	flag.StringVar(&fHDRFilename, "hdr", "", "also dump the raw accumulator to this Radiance RGBE file")
	flag.StringVar(&fChartFilename, "chart", "", "also write an exposure-diagnostic chart PNG")
	flag.StringVar(&fTonemapper, "tmo", "", "also run a library tone mapper for comparison, or 'all'")
	flag.IntVar(&fSamples, "samples", 0, "total sample count (overrides config)")
	flag.IntVar(&fBatches, "batches", 0, "number of render batches (overrides config)")
	flag.Uint64Var(&fSeed, "seed", 0, "RNG seed state ((0,0) with -seq keeps the reference stream)")
	flag.Uint64Var(&fSeq, "seq", 0, "RNG seed sequence")
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.Parse()

	log.Printf("Starting\n")
}

func main() {
	cfg := bpipe.NewConfig()
	if fConfigFilename != "" {
		var err error
		if cfg, err = bpipe.LoadConfig(fConfigFilename); err != nil {
			log.Fatalf("%v", err)
		}
	}

	// Override the config file with command line args, if relevant
	if fSamples > 0 { cfg.Samples = fSamples }
	if fBatches > 0 { cfg.Batches = fBatches }
	if fSeed != 0 || fSeq != 0 { cfg.Seed, cfg.Seq = fSeed, fSeq }
	if fVerbosity > 0 { cfg.Verbosity = fVerbosity }

	if err := cfg.Finalize(); err != nil {
		log.Fatalf("bad configuration: %v", err)
	}
	if cfg.Verbosity > 0 {
		log.Printf("Configuration:-\n\n%s\n", cfg.AsYaml())
	}

	// Finalize vetted all of these
	pm, _ := cfg.PointsMode()
	cm, _ := cfg.ColorMode()
	et, _ := cfg.EscapeTest()
	lm, _ := cfg.LumMetric()
	mat, _ := cfg.ViewMatrix()

	k, err := bpipe.New(cfg.Width, cfg.Height, cfg.Iters)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if cfg.Seed != 0 || cfg.Seq != 0 {
		k.Seed(cfg.Seed, cfg.Seq)
	}
	k.SetEscape(et)
	k.SetLumMetric(lm)
	*k.Matrix() = mat

	for i := 0; i < cfg.Batches; i++ {
		n := cfg.Samples / cfg.Batches
		if i < cfg.Samples%cfg.Batches {
			n++
		}
		if err := k.Render(cfg.Width, cfg.Height, cfg.Iters, n, pm, cm); err != nil {
			log.Fatalf("render failed: %v", err)
		}
		log.Printf("Rendered batch %d/%d (%d samples of %s/%s)", i+1, cfg.Batches, n, pm, cm)
	}

	if cfg.Verbosity > 0 {
		log.Printf("Accumulator: %s", bdiag.Stats(k.HDR(), lm))
		log.Printf("Log-lum histogram: %v", bdiag.LogLumHistogram(k.HDR(), lm))
	}

	if err := k.EstimateExposure(cfg.Width, cfg.Height, cfg.Step, cfg.Contrast); err != nil {
		log.Fatalf("exposure estimation failed: %v", err)
	}
	tm := k.Tonemapper()
	log.Printf("Auto-exposure: brightness %.6g (avg lum %.3f, thresh bucket %d)",
		tm.Brightness, tm.AvgLum(), tm.ThresholdBucket())

	if err := k.Convert(); err != nil {
		log.Fatalf("conversion failed: %v", err)
	}
	if err := bpipe.WritePNG(k.Image(), fOutputFilename); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("LDR output file written '%s'\n", fOutputFilename)

	if fHDRFilename != "" {
		err := bpipe.WriteHDR(k.HDR(), fHDRFilename)
		log.Printf("HDR write: er=%v\n", err)
	}
	if fChartFilename != "" {
		if err := bdiag.WriteExposureChart(tm, fChartFilename); err != nil {
			log.Fatalf("chart write failed: %v", err)
		}
		log.Printf("Exposure chart written '%s'\n", fChartFilename)
	}
	if fTonemapper != "" {
		compareTonemaps(k, fTonemapper)
	}
}

// compareTonemaps runs the library operators over the raw accumulator,
// one output file per operator.
func compareTonemaps(k *bpipe.Kernel, names string) {
	list := []string{names}
	if names == "all" {
		list = bpipe.Tonemappers
	}
	for _, name := range list {
		log.Printf("Tonemapping: %s", name)
		img, err := bpipe.CompareTonemap(k.HDR(), name)
		if err != nil {
			log.Fatalf("%v", err)
		}
		filename := fmt.Sprintf("tmo-%s.png", name)
		if err := bpipe.WritePNG(img, filename); err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("Tonemapped output written '%s'", filename)
	}
}
