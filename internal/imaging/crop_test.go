package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ironsheep/tile-rearrange-mcp/internal/tiles"
)

func decodeTile(t *testing.T, result *TileImageResult) image.Image {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return img
}

func TestExtractTile(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		index int
		want  color.RGBA
	}{
		{0, color.RGBA{255, 0, 0, 255}},
		{1, color.RGBA{0, 255, 0, 255}},
		{2, color.RGBA{0, 0, 255, 255}},
		{3, color.RGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		result, err := ExtractTile(img, tiles.Size{Width: 50, Height: 50}, tt.index, 1.0)
		if err != nil {
			t.Fatalf("ExtractTile(%d) failed: %v", tt.index, err)
		}
		if result.Width != 50 || result.Height != 50 {
			t.Errorf("tile %d dimensions: got %dx%d, want 50x50", tt.index, result.Width, result.Height)
		}
		if result.MimeType != "image/png" {
			t.Errorf("MimeType: got %s, want image/png", result.MimeType)
		}

		tile := decodeTile(t, result)
		r, g, b, _ := tile.At(25, 25).RGBA()
		if uint8(r>>8) != tt.want.R || uint8(g>>8) != tt.want.G || uint8(b>>8) != tt.want.B {
			t.Errorf("tile %d center: got (%d,%d,%d), want %v", tt.index, r>>8, g>>8, b>>8, tt.want)
		}
	}
}

func TestExtractTile_Bounds(t *testing.T) {
	result, err := ExtractTile(createPatternImage(60, 40), tiles.Size{Width: 20, Height: 20}, 4, 1.0)
	if err != nil {
		t.Fatalf("ExtractTile failed: %v", err)
	}
	if result.Bounds != image.Rect(20, 20, 40, 40) {
		t.Errorf("Bounds: got %v, want (20,20)-(40,40)", result.Bounds)
	}
	if result.Position != (tiles.Position{Col: 1, Row: 1}) {
		t.Errorf("Position: got %+v, want col 1 row 1", result.Position)
	}
}

func TestExtractTile_Scale(t *testing.T) {
	result, err := ExtractTile(createPatternImage(100, 100), tiles.Size{Width: 50, Height: 50}, 0, 2.0)
	if err != nil {
		t.Fatalf("ExtractTile failed: %v", err)
	}
	if result.Width != 100 || result.Height != 100 {
		t.Errorf("scaled dimensions: got %dx%d, want 100x100", result.Width, result.Height)
	}
	if result.Bounds != image.Rect(0, 0, 50, 50) {
		t.Errorf("Bounds should stay unscaled, got %v", result.Bounds)
	}
}

func TestExtractTile_Errors(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name  string
		tile  tiles.Size
		index int
		scale float64
	}{
		{"index too large", tiles.Size{Width: 50, Height: 50}, 4, 1.0},
		{"negative index", tiles.Size{Width: 50, Height: 50}, -1, 1.0},
		{"tile does not divide image", tiles.Size{Width: 30, Height: 50}, 0, 1.0},
		{"scale below one pixel", tiles.Size{Width: 50, Height: 50}, 0, 0.01},
		{"negative scale", tiles.Size{Width: 50, Height: 50}, 0, -2.0},
		{"zero scale", tiles.Size{Width: 50, Height: 50}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExtractTile(img, tt.tile, tt.index, tt.scale); err == nil {
				t.Errorf("ExtractTile should fail for %s", tt.name)
			}
		})
	}
}
