package imaging

import (
	"image"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/tile-rearrange-mcp/internal/tiles"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// TileColor is the mean color of one tile.
type TileColor struct {
	Index    int            `json:"index"`
	Position tiles.Position `json:"position"`
	Hex      string         `json:"hex"` // Hex format "#RRGGBB" (no alpha)
	RGB      RGBColor       `json:"rgb"`
	HSL      HSLColor       `json:"hsl"`
	Alpha    uint8          `json:"alpha"` // Mean alpha (0-255)
}

// TileColorsResult lists the mean color of every tile in row-major order.
type TileColorsResult struct {
	Grid  tiles.Grid  `json:"grid"`
	Tiles []TileColor `json:"tiles"`
}

// TileColors averages the pixels of every tile of img. It is meant to help
// pick or check an ordering: after rearranging with p, tile i of the output
// has the mean color of tile p[i] of the input.
//
// Averaging is done on non-premultiplied 8-bit components; fully transparent
// pixels count toward Alpha only.
func TileColors(img image.Image, tileSize tiles.Size) (*TileColorsResult, error) {
	bounds := img.Bounds()
	grid, err := tiles.NewGrid(tiles.Size{Width: bounds.Dx(), Height: bounds.Dy()}, tileSize)
	if err != nil {
		return nil, err
	}

	result := &TileColorsResult{Grid: grid, Tiles: make([]TileColor, 0, grid.Count())}
	for i := 0; i < grid.Count(); i++ {
		result.Tiles = append(result.Tiles, meanColor(img, grid.Rect(i).Add(bounds.Min), i, grid.Position(i)))
	}
	return result, nil
}

func meanColor(img image.Image, rect image.Rectangle, index int, pos tiles.Position) TileColor {
	var sumR, sumG, sumB, sumA float64
	var opaque int
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			sumA += float64(a)
			if a == 0 {
				continue
			}
			// Un-premultiply so translucent pixels keep their hue.
			sumR += float64(r) / float64(a)
			sumG += float64(g) / float64(a)
			sumB += float64(b) / float64(a)
			opaque++
		}
	}

	var c colorful.Color
	if opaque > 0 {
		c = colorful.Color{R: sumR / float64(opaque), G: sumG / float64(opaque), B: sumB / float64(opaque)}
	}
	r8, g8, b8 := c.Clamped().RGB255()
	h, s, l := c.Hsl()
	pixels := float64(rect.Dx() * rect.Dy())

	return TileColor{
		Index:    index,
		Position: pos,
		Hex:      strings.ToUpper(c.Clamped().Hex()),
		RGB:      RGBColor{R: r8, G: g8, B: b8},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
		Alpha: uint8(math.Round(sumA / pixels / 257)),
	}
}
