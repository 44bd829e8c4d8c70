// Package imgio reads the source images and writes the finished collage.
package imgio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/youruser/collageapp/internal/faults"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// ListImages returns the image files directly inside dir, sorted by name.
// The order is what pairs each file with its layout cell, so it must be
// deterministic. Subdirectories and non-image files are skipped.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, faults.Input(fmt.Errorf("reading input directory: %w", err))
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, faults.Inputf("no images found in %s", dir)
	}
	return paths, nil
}

// LoadImages decodes every listed file. A single undecodable file fails the
// whole run; there is no skipping, since a custom layout pairs rectangles
// with files by position.
func LoadImages(paths []string) ([]image.Image, error) {
	out := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := decodeFile(p)
		if err != nil {
			return nil, faults.Input(fmt.Errorf("decoding %s: %w", p, err))
		}
		out = append(out, img)
	}
	return out, nil
}

func decodeFile(path string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return webp.Decode(f)
	}
	return imaging.Open(path)
}
