package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"sliceview/internal/models"
	"sliceview/pkg/config"
	"sliceview/pkg/render"
	"sliceview/pkg/stats"
	"sliceview/pkg/view"
)

// namedView pairs a view with the label used for output files and stats
type namedView struct {
	name string
	v    *view.SliceView[uint8]
}

func main() {
	// Parse command line arguments
	inputPath := flag.String("input", "", "Input image file (JPEG or PNG)")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	outputDir := flag.String("output", "", "Directory to save crops (overrides config)")
	row := flag.Int("row", -1, "Region start row in the parent image (overrides config)")
	col := flag.Int("col", -1, "Region start column in the parent image (overrides config)")
	width := flag.Int("width", 0, "Region width in columns (overrides config)")
	height := flag.Int("height", 0, "Region height in rows (overrides config)")
	split := flag.Bool("split", false, "Split the region into adjacent left/right halves")
	quadrants := flag.Bool("quadrants", false, "View the four quadrants of the whole image")
	writeConfig := flag.String("write-config", "", "Write a default configuration file to the given path and exit")
	flag.Parse()

	// Generate a starter config if requested
	if *writeConfig != "" {
		if err := config.CreateDefaultConfigFile(*writeConfig); err != nil {
			log.Fatalf("Failed to write default config: %v", err)
		}
		fmt.Printf("Default configuration written to: %s\n", *writeConfig)
		return
	}

	// Validate inputs
	if *inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration, then let flags override it
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *row >= 0 {
		cfg.View.Region.Row = *row
	}
	if *col >= 0 {
		cfg.View.Region.Col = *col
	}
	if *width > 0 {
		cfg.View.Region.Width = *width
	}
	if *height > 0 {
		cfg.View.Region.Height = *height
	}
	if *split {
		cfg.View.Split = true
	}
	if *quadrants {
		cfg.View.Quadrants = true
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	// Load the parent image as a row-major luminance buffer
	buf, parentDims, err := render.LoadGray(*inputPath)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}
	if cfg.Output.Verbose {
		fmt.Printf("Loaded %s: %dx%d pixels\n", *inputPath, parentDims.Columns, parentDims.Rows)
	}

	views, err := buildViews(cfg, parentDims, buf)
	if err != nil {
		log.Fatalf("Failed to build views: %v", err)
	}

	// Create the output directory
	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	for _, nv := range views {
		if cfg.Stats.Enabled {
			printStats(nv, cfg.Stats.HistogramBins)
		}

		filename := filepath.Join(cfg.Output.Dir, fmt.Sprintf("crop_%s.jpg", nv.name))
		img := render.Materialize(nv.v)
		if err := render.SaveJPEG(img, filename, cfg.Output.JPEGQuality); err != nil {
			log.Fatalf("Failed to save crop %s: %v", nv.name, err)
		}
		if cfg.Output.Verbose {
			fmt.Printf("Saved %s crop to: %s\n", nv.name, filename)
		}
	}
}

// buildViews constructs the requested set of views over the loaded buffer
func buildViews(cfg *config.Config, parentDims view.ImageDimensions, buf []uint8) ([]namedView, error) {
	if cfg.View.Quadrants {
		qs := view.NewQuadrants(parentDims, buf)
		views := make([]namedView, 0, len(qs))
		for q, v := range qs {
			views = append(views, namedView{name: models.Quadrant(q).String(), v: v})
		}
		return views, nil
	}

	region := cfg.View.Region
	childDims := view.NewImageDimensions(region.Width, region.Height)

	if cfg.View.Split {
		left, right, err := view.NewSplitChecked(parentDims, region.Row, region.Col, buf, childDims)
		if err != nil {
			return nil, err
		}
		return []namedView{{name: "left", v: left}, {name: "right", v: right}}, nil
	}

	v, err := view.NewChecked(parentDims, region.Row, region.Col, buf, childDims)
	if err != nil {
		return nil, err
	}
	return []namedView{{name: "region", v: v}}, nil
}

// printStats reports the statistics of one view's child region
func printStats(nv namedView, bins int) {
	summary := stats.Summarize(nv.v)
	fmt.Printf("\nStatistics for %s (%dx%d):\n",
		nv.name, nv.v.ChildDims.Columns, nv.v.ChildDims.Rows)
	fmt.Printf("  Mean:    %.3f\n", summary.Mean)
	fmt.Printf("  StdDev:  %.3f\n", summary.StdDev)
	fmt.Printf("  Min/Max: %.0f / %.0f\n", summary.Min, summary.Max)

	entropy, err := stats.Entropy(nv.v, bins)
	if err != nil {
		log.Printf("Warning: Failed to compute entropy for %s: %v", nv.name, err)
		return
	}
	fmt.Printf("  Entropy: %.3f nats (%d bins)\n", entropy, bins)
}
