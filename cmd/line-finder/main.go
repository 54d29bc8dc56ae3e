// Command line-finder runs one detection pass over a frame and reports what
// it found, or why it found nothing. It is the debugging companion of
// line-watch: point it at a screenshot (or let it capture one), and it
// prints every measurement the pipeline took along the way.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/JoshuaGerke/Pool-Line-Detector/internal/capture"
	"github.com/JoshuaGerke/Pool-Line-Detector/internal/detection"
	"github.com/JoshuaGerke/Pool-Line-Detector/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	imagePath := flag.String("image", "", "frame to analyze (default: capture the primary display)")
	outDir := flag.String("out", ".", "directory for preview and debug dumps")
	debug := flag.Bool("debug", false, "write threshold mask dumps, and the shape preview on no-match")
	gridSpacing := flag.Int("grid", 0, "draw a labeled coordinate grid with this spacing on previews")
	showVersion := flag.Bool("version", false, "print version information")

	cfg := detection.DefaultConfig()
	flag.IntVar(&cfg.BrightThreshold, "bright", cfg.BrightThreshold, "minimum channel value for a line pixel")
	flag.IntVar(&cfg.DarkThreshold, "dark", cfg.DarkThreshold, "maximum channel value for bounding dark material")
	flag.Float64Var(&cfg.MinLength, "min-length", cfg.MinLength, "minimum line length in pixels")
	flag.Float64Var(&cfg.MinThickness, "min-thickness", cfg.MinThickness, "minimum line thickness in pixels")
	flag.Float64Var(&cfg.MaxThickness, "max-thickness", cfg.MaxThickness, "maximum line thickness in pixels")
	flag.Float64Var(&cfg.MinAspectRatio, "min-aspect", cfg.MinAspectRatio, "minimum length/thickness ratio")
	flag.IntVar(&cfg.TerminationRadius, "termination-radius", cfg.TerminationRadius, "how far past each endpoint to look for dark material")
	flag.Float64Var(&cfg.MinArea, "min-area", cfg.MinArea, "minimum region area in pixels")
	flag.Parse()

	if *showVersion {
		fmt.Printf("line-finder %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return 0
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("  Pool table line finder")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println()
	fmt.Println("Parameters:")
	fmt.Printf("  White: RGB >= %d\n", cfg.BrightThreshold)
	fmt.Printf("  Dark at ends: RGB <= %d\n", cfg.DarkThreshold)
	fmt.Printf("  Length: >= %.0fpx\n", cfg.MinLength)
	fmt.Printf("  Thickness: %.0f-%.0fpx\n", cfg.MinThickness, cfg.MaxThickness)
	fmt.Println()

	frame, code := loadFrame(*imagePath)
	if code != 0 {
		return code
	}

	if *debug {
		if code := dumpMasks(frame, cfg, *outDir); code != 0 {
			return code
		}
	}

	fmt.Println("Searching for lines...")
	result := detection.DetectLines(frame, cfg)
	fmt.Printf("   Found: %d line(s)\n", result.Count)

	if result.Count == 0 {
		return reportNoMatch(frame, cfg, *outDir, *debug, *gridSpacing)
	}
	return reportFound(frame, result, *outDir, *gridSpacing)
}

// loadFrame reads the frame from disk, or captures the primary display when
// no path was given.
func loadFrame(path string) (image.Image, int) {
	if path != "" {
		fmt.Printf("Loading %s...\n", path)
		img, _, err := imaging.Open(path)
		if err != nil {
			log.Printf("Failed to load frame: %v", err)
			return nil, 2
		}
		return img, 0
	}

	fmt.Println("Capturing the primary display...")
	img, err := capture.PrimaryDisplay()
	if err != nil {
		log.Printf("Failed to capture screen: %v", err)
		return nil, 2
	}
	return img, 0
}

// dumpMasks writes the two threshold masks next to the previews.
func dumpMasks(frame image.Image, cfg detection.Config, outDir string) int {
	bright, dark := detection.Masks(frame, cfg)

	brightPath := filepath.Join(outDir, "debug_white.png")
	if err := imaging.Save(brightPath, bright); err != nil {
		log.Printf("Failed to write mask dump: %v", err)
		return 2
	}
	darkPath := filepath.Join(outDir, "debug_black.png")
	if err := imaging.Save(darkPath, dark); err != nil {
		log.Printf("Failed to write mask dump: %v", err)
		return 2
	}
	fmt.Printf("Debug: %s (%d pixels)\n", brightPath, countMask(bright))
	fmt.Printf("Debug: %s (%d pixels)\n", darkPath, countMask(dark))
	return 0
}

// reportFound prints the longest line, writes the annotated preview, and
// lists the runners-up.
func reportFound(frame image.Image, result *detection.LinesResult, outDir string, gridSpacing int) int {
	best := result.Lines[0]

	fmt.Println()
	fmt.Println("LONGEST LINE:")
	fmt.Printf("   Start:     (%d, %d)\n", best.Start.X, best.Start.Y)
	fmt.Printf("   End:       (%d, %d)\n", best.End.X, best.End.Y)
	fmt.Printf("   Length:    %.1fpx\n", best.Length)
	fmt.Printf("   Thickness: %.1fpx\n", best.Thickness)
	fmt.Printf("   Angle:     %.1f deg\n", best.AngleDegrees)

	preview := imaging.RenderDetection(frame, result)
	path := filepath.Join(outDir, "detected_line.png")
	if err := imaging.Save(path, withGrid(preview, gridSpacing)); err != nil {
		log.Printf("Failed to write preview: %v", err)
		return 2
	}
	fmt.Println()
	fmt.Printf("Preview: %s\n", path)

	if result.Count > 1 {
		top := len(result.Lines)
		if top > 5 {
			top = 5
		}
		fmt.Println()
		fmt.Printf("All %d lines:\n", result.Count)
		for i, l := range result.Lines[:top] {
			fmt.Printf("   %d. Length=%.0fpx, Thickness=%.1fpx\n", i+1, l.Length, l.Thickness)
		}
	}
	return 0
}

// reportNoMatch explains what the bright mask held instead of a valid line,
// shape by shape.
func reportNoMatch(frame image.Image, cfg detection.Config, outDir string, debug bool, gridSpacing int) int {
	fmt.Println()
	fmt.Println("No matching line found!")

	analysis := detection.AnalyzeShapes(frame, cfg)
	fmt.Printf("   White regions: %d\n", analysis.Regions)
	fmt.Printf("   Shapes with area >= %.0f: %d\n", cfg.MinArea, analysis.Count)

	top := len(analysis.Shapes)
	if top > 10 {
		top = 10
	}
	for i, s := range analysis.Shapes[:top] {
		note := ""
		if !s.Terminated {
			note = ", no dark ends"
		}
		fmt.Printf("   %d. Area=%.0f, L=%.0f, D=%.1f, Aspect=%.1f%s\n",
			i+1, s.Area, s.Length, s.Thickness, s.Aspect, note)
		fmt.Printf("       Endpoints: (%d, %d) -> (%d, %d)\n",
			s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	}

	if debug {
		preview := imaging.RenderShapes(frame, analysis)
		path := filepath.Join(outDir, "debug_contours.png")
		if err := imaging.Save(path, withGrid(preview, gridSpacing)); err != nil {
			log.Printf("Failed to write shape preview: %v", err)
			return 2
		}
		fmt.Println()
		fmt.Printf("Debug: %s\n", path)
	}
	return 1
}

// withGrid overlays the coordinate grid when a spacing was requested.
func withGrid(img *image.NRGBA, spacing int) image.Image {
	if spacing <= 0 {
		return img
	}
	return imaging.Grid(img, spacing, true, "#FF000080")
}

// countMask counts the set pixels of a 0/255 mask.
func countMask(mask *image.Gray) int {
	n := 0
	for _, v := range mask.Pix {
		if v == 255 {
			n++
		}
	}
	return n
}
