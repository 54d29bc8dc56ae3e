package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// createTestImageFile writes a solid-color PNG to dir and returns its path.
func createTestImageFile(t *testing.T, dir, name string, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return path
}

func TestNewImageCache(t *testing.T) {
	cache := NewImageCache()
	if cache == nil {
		t.Fatal("NewImageCache returned nil")
	}
	if cache.entries == nil {
		t.Error("Cache entries map not initialized")
	}
}

func TestImageCache_Load(t *testing.T) {
	path := createTestImageFile(t, t.TempDir(), "frame.png", 64, 48, color.White)
	cache := NewImageCache()

	img1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img1.Bounds().Dx() != 64 || img1.Bounds().Dy() != 48 {
		t.Errorf("Loaded image is %dx%d, want 64x48", img1.Bounds().Dx(), img1.Bounds().Dy())
	}

	// Second load must come from the cache, not a fresh decode.
	img2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("Second Load returned a different image instance")
	}
}

func TestImageCache_Load_NonExistent(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load("/nonexistent/path/frame.png"); err == nil {
		t.Error("Expected error loading non-existent file")
	}
}

func TestImageCache_Load_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notanimage.png")
	if err := os.WriteFile(path, []byte("this is not image data"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	cache := NewImageCache()
	if _, err := cache.Load(path); err == nil {
		t.Error("Expected error decoding invalid image data")
	}
}

func TestImageCache_Evict(t *testing.T) {
	path := createTestImageFile(t, t.TempDir(), "frame.png", 32, 32, color.White)
	cache := NewImageCache()

	img1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)

	img2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if img1 == img2 {
		t.Error("Load after Evict returned the cached instance")
	}

	// Evicting an unknown path is a no-op.
	cache.Evict("/never/loaded.png")
}

func TestImageCache_Clear(t *testing.T) {
	dir := t.TempDir()
	path1 := createTestImageFile(t, dir, "a.png", 16, 16, color.White)
	path2 := createTestImageFile(t, dir, "b.png", 16, 16, color.Black)

	cache := NewImageCache()
	if _, err := cache.Load(path1); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := cache.Load(path2); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Clear()

	cache.mu.RLock()
	size := len(cache.entries)
	cache.mu.RUnlock()
	if size != 0 {
		t.Errorf("Cache holds %d entries after Clear, want 0", size)
	}
}

func TestImageCache_Concurrent(t *testing.T) {
	path := createTestImageFile(t, t.TempDir(), "frame.png", 16, 16, color.White)
	cache := NewImageCache()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				t.Errorf("Concurrent Load failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestLoadImageInfo(t *testing.T) {
	path := createTestImageFile(t, t.TempDir(), "frame.png", 120, 80, color.White)
	cache := NewImageCache()

	info, err := LoadImageInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 120 {
		t.Errorf("Width: got %d, want 120", info.Width)
	}
	if info.Height != 80 {
		t.Errorf("Height: got %d, want 80", info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("ColorDepth: got %s, want 8-bit", info.ColorDepth)
	}
	if !info.HasAlpha {
		t.Error("Expected HasAlpha for an NRGBA-encoded PNG")
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestLoadImageInfo_NonExistent(t *testing.T) {
	cache := NewImageCache()
	if _, err := LoadImageInfo(cache, "/nonexistent/frame.png"); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestOpen(t *testing.T) {
	path := createTestImageFile(t, t.TempDir(), "frame.png", 40, 30, color.White)

	img, format, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if format != "png" {
		t.Errorf("Format: got %s, want png", format)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("Opened image is %dx%d, want 40x30", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestOpen_NonExistent(t *testing.T) {
	if _, _, err := Open("/nonexistent/frame.png"); err == nil {
		t.Error("Expected error opening non-existent file")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	img := createInMemoryImage(50, 25, color.RGBA{10, 200, 30, 255})
	path := filepath.Join(t.TempDir(), "out.png")

	if err := Save(path, img); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, _, err := Open(path)
	if err != nil {
		t.Fatalf("Open after Save failed: %v", err)
	}
	if loaded.Bounds().Dx() != 50 || loaded.Bounds().Dy() != 25 {
		t.Errorf("Saved image is %dx%d, want 50x25", loaded.Bounds().Dx(), loaded.Bounds().Dy())
	}

	r, g, b, _ := loaded.At(25, 12).RGBA()
	if uint8(r>>8) != 10 || uint8(g>>8) != 200 || uint8(b>>8) != 30 {
		t.Errorf("Saved pixel is (%d,%d,%d), want (10,200,30)",
			uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
}

func TestSave_BadPath(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)
	if err := Save("/nonexistent/dir/out.png", img); err == nil {
		t.Error("Expected error saving into a non-existent directory")
	}
}
