package tiles

import (
	"errors"
	"fmt"
)

// InvalidTilingMessage is the text of every validation failure.
const InvalidTilingMessage = "The tile size or ordering are not valid for the given image"

// ErrInvalidTiling matches any *ValidationError with errors.Is.
var ErrInvalidTiling = errors.New(InvalidTilingMessage)

// ValidationError reports that a tile size or ordering cannot be applied to an image.
//
// Error always returns InvalidTilingMessage. Reason holds the specific check
// that failed and is meant for logs, not for callers to match on.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return InvalidTilingMessage
}

// Is reports whether target is ErrInvalidTiling.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidTiling
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Valid reports whether ordering rearranges an image of imageSize cut into
// tiles of tileSize.
func Valid(imageSize, tileSize Size, ordering []int) bool {
	return Validate(imageSize, tileSize, ordering) == nil
}

// Validate is Valid with the failing check attached. It returns nil when the
// rearrangement is well defined and a *ValidationError otherwise.
//
// The checks run in this order:
//  1. the tile size divides both image dimensions without remainder
//  2. ordering holds every value in 0..len(ordering)-1 exactly once
//  3. len(ordering) equals the number of tiles in the grid
func Validate(imageSize, tileSize Size, ordering []int) error {
	if err := checkGeometry(imageSize, tileSize); err != nil {
		return err
	}
	if err := checkPermutation(ordering); err != nil {
		return err
	}
	count := (imageSize.Width / tileSize.Width) * (imageSize.Height / tileSize.Height)
	if len(ordering) != count {
		return invalid("ordering has %d entries, grid has %d tiles", len(ordering), count)
	}
	return nil
}

func checkGeometry(imageSize, tileSize Size) error {
	if imageSize.Width <= 0 || imageSize.Height <= 0 {
		return invalid("image size %s is not positive", imageSize)
	}
	if tileSize.Width <= 0 || tileSize.Height <= 0 {
		return invalid("tile size %s is not positive", tileSize)
	}
	if imageSize.Width%tileSize.Width != 0 || imageSize.Height%tileSize.Height != 0 {
		return invalid("image size %s is not divisible by tile size %s", imageSize, tileSize)
	}
	return nil
}

func checkPermutation(ordering []int) error {
	seen := make([]bool, len(ordering))
	for i, v := range ordering {
		if v < 0 || v >= len(ordering) {
			return invalid("ordering[%d] = %d is outside 0..%d", i, v, len(ordering)-1)
		}
		if seen[v] {
			return invalid("ordering[%d] = %d is a duplicate", i, v)
		}
		seen[v] = true
	}
	return nil
}
