package imgio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/youruser/collageapp/internal/faults"
)

// EnsureDir creates the directory path if it does not exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Save encodes img to path, choosing the codec from the file extension.
// The parent directory is created if missing. Nothing is written until the
// caller has a fully composited image, so a failed run leaves no partial
// output behind.
func Save(img image.Image, path string, jpegQuality int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := EnsureDir(dir); err != nil {
			return faults.IO(fmt.Errorf("creating output directory: %w", err))
		}
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".webp":
		return saveWebP(img, path)
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff":
		if err := imaging.Save(img, path, imaging.JPEGQuality(jpegQuality)); err != nil {
			return faults.IO(fmt.Errorf("writing %s: %w", path, err))
		}
		return nil
	default:
		return faults.Configf("unsupported output format %q", ext)
	}
}

func saveWebP(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return faults.IO(fmt.Errorf("creating %s: %w", path, err))
	}
	if err := webp.Encode(f, img, &webp.Options{Lossless: true}); err != nil {
		f.Close()
		return faults.IO(fmt.Errorf("encoding %s: %w", path, err))
	}
	if err := f.Close(); err != nil {
		return faults.IO(fmt.Errorf("closing %s: %w", path, err))
	}
	return nil
}
