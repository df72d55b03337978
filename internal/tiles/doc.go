// Package tiles rearranges the tiles of a raster image according to a permutation.
//
// An image of Width x Height pixels is split into a uniform grid of tiles of
// TileWidth x TileHeight pixels. Tiles are numbered by a row-major linear index:
// index 0 is the top-left tile, indices increase left-to-right and then
// top-to-bottom.
//
// # Orderings
//
// An ordering is a slice of N integers where ordering[newIndex] = sourceIndex:
// the tile at position sourceIndex in the input is placed at position newIndex
// in the output. An ordering is valid for an image when the tile size divides
// both image dimensions exactly, the ordering is a permutation of 0..N-1, and
// N equals the number of tiles in the grid.
//
// # Coordinate System
//
// Rectangles follow the image package convention: Min is inclusive, Max is
// exclusive, and (0,0) is the top-left pixel of the image bounds.
//
// # Error Handling
//
// Every validation failure is reported as a *ValidationError whose message is
// always "The tile size or ordering are not valid for the given image".
// Errors from the Codec are returned unchanged.
package tiles
