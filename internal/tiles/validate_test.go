package tiles

import (
	"errors"
	"testing"
)

func identity(n int) []int {
	ordering := make([]int, n)
	for i := range ordering {
		ordering[i] = i
	}
	return ordering
}

func TestValid(t *testing.T) {
	tests := []struct {
		name     string
		image    Size
		tile     Size
		ordering []int
		want     bool
	}{
		{"identity 2x2 grid", Size{4, 4}, Size{2, 2}, []int{0, 1, 2, 3}, true},
		{"swap pairs", Size{4, 4}, Size{2, 2}, []int{1, 0, 3, 2}, true},
		{"single tile", Size{7, 3}, Size{7, 3}, []int{0}, true},
		{"one pixel tiles", Size{3, 2}, Size{1, 1}, []int{5, 4, 3, 2, 1, 0}, true},
		{"non-square tiles", Size{6, 4}, Size{3, 1}, []int{7, 6, 5, 4, 3, 2, 1, 0}, true},
		{"width not divisible", Size{5, 4}, Size{2, 2}, []int{0, 1, 2, 3}, false},
		{"height not divisible", Size{4, 5}, Size{2, 2}, []int{0, 1, 2, 3}, false},
		{"duplicate value", Size{4, 4}, Size{2, 2}, []int{0, 1, 1, 3}, false},
		{"value out of range", Size{4, 4}, Size{2, 2}, []int{0, 1, 2, 4}, false},
		{"negative value", Size{4, 4}, Size{2, 2}, []int{0, 1, 2, -1}, false},
		{"too short", Size{4, 4}, Size{2, 2}, []int{0, 1, 2}, false},
		{"too long", Size{4, 4}, Size{2, 2}, []int{0, 1, 2, 3, 4}, false},
		{"empty ordering", Size{4, 4}, Size{2, 2}, nil, false},
		{"zero tile width", Size{4, 4}, Size{0, 2}, []int{0, 1}, false},
		{"negative tile height", Size{4, 4}, Size{2, -2}, []int{0, 1}, false},
		{"zero image", Size{0, 0}, Size{2, 2}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.image, tt.tile, tt.ordering); got != tt.want {
				t.Errorf("Valid(%v, %v, %v): got %v, want %v", tt.image, tt.tile, tt.ordering, got, tt.want)
			}
		})
	}
}

func TestValid_AllDivisibleGeometries(t *testing.T) {
	for tw := 1; tw <= 4; tw++ {
		for th := 1; th <= 4; th++ {
			for cols := 1; cols <= 4; cols++ {
				for rows := 1; rows <= 4; rows++ {
					img := Size{Width: tw * cols, Height: th * rows}
					tile := Size{Width: tw, Height: th}
					n := cols * rows
					if !Valid(img, tile, identity(n)) {
						t.Errorf("identity rejected for image %v tile %v", img, tile)
					}
					reversed := make([]int, n)
					for i := range reversed {
						reversed[i] = n - 1 - i
					}
					if !Valid(img, tile, reversed) {
						t.Errorf("reverse rejected for image %v tile %v", img, tile)
					}
					if Valid(Size{img.Width + 1, img.Height}, tile, identity(n)) && tw > 1 {
						t.Errorf("image %v accepted with tile %v", Size{img.Width + 1, img.Height}, tile)
					}
				}
			}
		}
	}
}

func TestValidate_Error(t *testing.T) {
	err := Validate(Size{5, 4}, Size{2, 2}, []int{0, 1, 2, 3})
	if err == nil {
		t.Fatal("Validate should fail for non-divisible geometry")
	}
	if err.Error() != "The tile size or ordering are not valid for the given image" {
		t.Errorf("message: got %q", err.Error())
	}
	if !errors.Is(err, ErrInvalidTiling) {
		t.Error("errors.Is(err, ErrInvalidTiling) should be true")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("errors.As should find *ValidationError")
	}
	if verr.Reason == "" {
		t.Error("Reason should describe the failed check")
	}
}

func TestValidate_CheckOrder(t *testing.T) {
	// Geometry is checked before the ordering contents.
	err := Validate(Size{5, 4}, Size{2, 2}, []int{0, 0})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if got, want := verr.Reason, "image size 5x4 is not divisible by tile size 2x2"; got != want {
		t.Errorf("Reason: got %q, want %q", got, want)
	}

	// Permutation is checked before the tile count.
	err = Validate(Size{4, 4}, Size{2, 2}, []int{0, 0})
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if got, want := verr.Reason, "ordering[1] = 0 is a duplicate"; got != want {
		t.Errorf("Reason: got %q, want %q", got, want)
	}

	err = Validate(Size{4, 4}, Size{2, 2}, []int{1, 0})
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if got, want := verr.Reason, "ordering has 2 entries, grid has 4 tiles"; got != want {
		t.Errorf("Reason: got %q, want %q", got, want)
	}
}
