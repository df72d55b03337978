package tiles

import (
	"fmt"
	"image"
)

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Position is the 0-indexed grid cell of a tile.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// PositionOf converts a row-major linear index into a grid position.
// columns must be at least 1.
func PositionOf(index, columns int) Position {
	if columns < 1 {
		panic(fmt.Sprintf("tiles: PositionOf called with %d columns", columns))
	}
	row := index / columns
	return Position{Col: index - row*columns, Row: row}
}

// IndexOf converts a grid position back into its row-major linear index.
func IndexOf(p Position, columns int) int {
	return p.Row*columns + p.Col
}

// RectangleOf returns the pixel rectangle covered by the tile at (row, col).
func RectangleOf(row, col, tileHeight, tileWidth int) image.Rectangle {
	left := col * tileWidth
	top := row * tileHeight
	return image.Rect(left, top, left+tileWidth, top+tileHeight)
}

// Grid describes how an image is partitioned into tiles.
type Grid struct {
	Image   Size `json:"image"`
	Tile    Size `json:"tile"`
	Columns int  `json:"columns"`
	Rows    int  `json:"rows"`
}

// NewGrid returns the grid for the given image and tile sizes. It fails with a
// *ValidationError when the tile size does not evenly divide the image.
func NewGrid(imageSize, tileSize Size) (Grid, error) {
	if err := checkGeometry(imageSize, tileSize); err != nil {
		return Grid{}, err
	}
	return Grid{
		Image:   imageSize,
		Tile:    tileSize,
		Columns: imageSize.Width / tileSize.Width,
		Rows:    imageSize.Height / tileSize.Height,
	}, nil
}

// Count returns the number of tiles in the grid.
func (g Grid) Count() int {
	return g.Columns * g.Rows
}

// Position returns the grid position of the tile with the given linear index.
func (g Grid) Position(index int) Position {
	return PositionOf(index, g.Columns)
}

// Rect returns the pixel rectangle of the tile with the given linear index,
// relative to the top-left corner of the image.
func (g Grid) Rect(index int) image.Rectangle {
	p := g.Position(index)
	return RectangleOf(p.Row, p.Col, g.Tile.Height, g.Tile.Width)
}
