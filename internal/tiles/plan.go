package tiles

import "image"

// Move copies one tile from Source to Dest. Both rectangles are relative to the
// top-left corner of the image and always have the same size.
type Move struct {
	DestIndex   int             `json:"dest_index"`
	SourceIndex int             `json:"source_index"`
	Source      image.Rectangle `json:"source"`
	Dest        image.Rectangle `json:"dest"`
}

// Plan validates ordering against the grid and returns one Move per tile, in
// destination order.
func Plan(imageSize, tileSize Size, ordering []int) ([]Move, error) {
	if err := Validate(imageSize, tileSize, ordering); err != nil {
		return nil, err
	}
	grid, err := NewGrid(imageSize, tileSize)
	if err != nil {
		return nil, err
	}

	moves := make([]Move, len(ordering))
	for newIndex, sourceIndex := range ordering {
		moves[newIndex] = Move{
			DestIndex:   newIndex,
			SourceIndex: sourceIndex,
			Source:      grid.Rect(sourceIndex),
			Dest:        grid.Rect(newIndex),
		}
	}
	return moves, nil
}
