package tiles

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPositionOf(t *testing.T) {
	tests := []struct {
		index   int
		columns int
		want    Position
	}{
		{0, 1, Position{Col: 0, Row: 0}},
		{0, 4, Position{Col: 0, Row: 0}},
		{3, 4, Position{Col: 3, Row: 0}},
		{4, 4, Position{Col: 0, Row: 1}},
		{7, 4, Position{Col: 3, Row: 1}},
		{5, 1, Position{Col: 0, Row: 5}},
		{10, 3, Position{Col: 1, Row: 3}},
	}

	for _, tt := range tests {
		got := PositionOf(tt.index, tt.columns)
		if got != tt.want {
			t.Errorf("PositionOf(%d, %d): got %+v, want %+v", tt.index, tt.columns, got, tt.want)
		}
		if back := IndexOf(got, tt.columns); back != tt.index {
			t.Errorf("IndexOf(%+v, %d): got %d, want %d", got, tt.columns, back, tt.index)
		}
	}
}

func TestPositionOf_SecondRowStart(t *testing.T) {
	for columns := 1; columns <= 8; columns++ {
		if got := PositionOf(columns, columns); got != (Position{Col: 0, Row: 1}) {
			t.Errorf("PositionOf(%d, %d): got %+v, want start of second row", columns, columns, got)
		}
	}
}

func TestPositionOf_ZeroColumnsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("PositionOf with 0 columns should panic")
		}
	}()
	PositionOf(1, 0)
}

func TestRectangleOf(t *testing.T) {
	tests := []struct {
		row, col, tileHeight, tileWidth int
		want                            image.Rectangle
	}{
		{0, 0, 2, 2, image.Rect(0, 0, 2, 2)},
		{0, 1, 2, 2, image.Rect(2, 0, 4, 2)},
		{1, 0, 2, 2, image.Rect(0, 2, 2, 4)},
		{2, 3, 10, 5, image.Rect(15, 20, 20, 30)},
	}

	for _, tt := range tests {
		got := RectangleOf(tt.row, tt.col, tt.tileHeight, tt.tileWidth)
		if got != tt.want {
			t.Errorf("RectangleOf(%d, %d, %d, %d): got %v, want %v",
				tt.row, tt.col, tt.tileHeight, tt.tileWidth, got, tt.want)
		}
	}
}

func TestNewGrid(t *testing.T) {
	grid, err := NewGrid(Size{Width: 6, Height: 4}, Size{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if grid.Columns != 3 || grid.Rows != 2 {
		t.Errorf("grid: got %dx%d, want 3x2", grid.Columns, grid.Rows)
	}
	if grid.Count() != 6 {
		t.Errorf("Count: got %d, want 6", grid.Count())
	}

	var rects []image.Rectangle
	for i := 0; i < grid.Count(); i++ {
		rects = append(rects, grid.Rect(i))
	}
	want := []image.Rectangle{
		image.Rect(0, 0, 2, 2), image.Rect(2, 0, 4, 2), image.Rect(4, 0, 6, 2),
		image.Rect(0, 2, 2, 4), image.Rect(2, 2, 4, 4), image.Rect(4, 2, 6, 4),
	}
	if diff := cmp.Diff(want, rects); diff != "" {
		t.Errorf("grid rects mismatch (-want+got):\n%v", diff)
	}
}

func TestNewGrid_NotDivisible(t *testing.T) {
	_, err := NewGrid(Size{Width: 5, Height: 4}, Size{Width: 2, Height: 2})
	if err == nil {
		t.Fatal("NewGrid should fail for 5x4 image with 2x2 tiles")
	}
}
