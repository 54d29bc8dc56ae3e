// Command line-watch polls a display for the white aiming line and renders
// its extended trajectory onto each captured frame. Annotated frames go to
// the save directory, where an overlay window (or anything else) can pick
// them up; without a save directory the watcher only logs what it sees.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/JoshuaGerke/Pool-Line-Detector/internal/capture"
	"github.com/JoshuaGerke/Pool-Line-Detector/internal/detection"
	"github.com/JoshuaGerke/Pool-Line-Detector/internal/imaging"
	"github.com/JoshuaGerke/Pool-Line-Detector/internal/overlay"
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
	interval := flag.Duration("interval", time.Millisecond, "delay between detection passes")
	display := flag.Int("display", 0, "display index to watch")
	extend := flag.Float64("extend", 2000, "pixels to extend the line beyond each endpoint")
	colorHex := flag.String("color", "#00FF00", "trajectory color as a hex string")
	width := flag.Int("width", 3, "trajectory stroke width in pixels")
	saveDir := flag.String("save-dir", "", "directory for annotated frames (default: log only)")
	showVersion := flag.Bool("version", false, "print version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("line-watch %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return 0
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if n := capture.Displays(); *display < 0 || *display >= n {
		log.Printf("Display %d out of range: %d display(s) available", *display, n)
		return 2
	}

	renderer, err := overlay.NewRenderer(*colorHex, *width, *extend)
	if err != nil {
		log.Printf("Invalid trajectory color: %v", err)
		return 2
	}

	if *saveDir != "" {
		if err := os.MkdirAll(*saveDir, 0o755); err != nil {
			log.Printf("Failed to create save directory: %v", err)
			return 2
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Watching display %d every %v (Ctrl+C to stop)", *display, *interval)
	watch(ctx, *display, *interval, renderer, *saveDir)
	log.Printf("Stopped")
	return 0
}

// watch runs the capture/detect/render loop until the context is canceled.
// One pass per tick: a pass that outlasts the interval simply delays the
// next one instead of piling up.
func watch(ctx context.Context, display int, interval time.Duration, renderer *overlay.Renderer, saveDir string) {
	cfg := detection.DefaultConfig()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var (
		frameNum int
		visible  bool
	)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		frame, err := capture.Display(display)
		if err != nil {
			log.Printf("Capture failed: %v", err)
			continue
		}

		line := detection.DetectLine(frame, cfg)
		if line == nil {
			if visible {
				log.Printf("Line lost")
				visible = false
			}
			continue
		}
		if !visible {
			log.Printf("Line: (%d, %d) -> (%d, %d), length %.1fpx, angle %.1f deg",
				line.Start.X, line.Start.Y, line.End.X, line.End.Y,
				line.Length, line.AngleDegrees)
			visible = true
		}

		if saveDir == "" {
			continue
		}
		frameNum++
		annotated := renderer.Render(frame, line)
		path := filepath.Join(saveDir, fmt.Sprintf("frame_%06d.png", frameNum))
		if err := imaging.Save(path, annotated); err != nil {
			log.Printf("Failed to save frame: %v", err)
		}
	}
}
