package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/tile-rearrange-mcp/internal/tiles"
)

// TileImageResult contains a single tile encoded as base64 PNG.
type TileImageResult struct {
	Index       int             `json:"index"`
	Position    tiles.Position  `json:"position"`
	Bounds      image.Rectangle `json:"bounds"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	ImageBase64 string          `json:"image_base64"`
	MimeType    string          `json:"mime_type"`
}

// ExtractTile crops the tile with the given linear index out of img.
// A scale other than 1.0 resizes the tile with Lanczos resampling; the
// returned Bounds are always the unscaled source rectangle. Scale must be
// positive.
func ExtractTile(img image.Image, tileSize tiles.Size, index int, scale float64) (*TileImageResult, error) {
	bounds := img.Bounds()
	grid, err := tiles.NewGrid(tiles.Size{Width: bounds.Dx(), Height: bounds.Dy()}, tileSize)
	if err != nil {
		return nil, err
	}
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %g", scale)
	}
	if index < 0 || index >= grid.Count() {
		return nil, fmt.Errorf("tile index %d outside grid of %d tiles", index, grid.Count())
	}

	rect := grid.Rect(index).Add(bounds.Min)
	var tile image.Image = imaging.Crop(img, rect)

	if scale != 1.0 {
		newWidth := int(float64(tileSize.Width) * scale)
		newHeight := int(float64(tileSize.Height) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %g shrinks tile below one pixel", scale)
		}
		tile = imaging.Resize(tile, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, tile); err != nil {
		return nil, fmt.Errorf("failed to encode tile: %w", err)
	}

	return &TileImageResult{
		Index:       index,
		Position:    grid.Position(index),
		Bounds:      rect,
		Width:       tile.Bounds().Dx(),
		Height:      tile.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
