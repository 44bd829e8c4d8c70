package collage

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/collageapp/internal/faults"
)

// qrTileSize is the edge length the QR code is rendered at before the
// compositor scales it into its cell like any other tile.
const qrTileSize = 400

// QRTile renders text as a square QR code image for use as an extra tile.
func QRTile(text string, size int) (image.Image, error) {
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, faults.Config(fmt.Errorf("rendering qr tile: %w", err))
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decoding qr png: %w", err)
	}
	return img, nil
}
