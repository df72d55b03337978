// Package imaging is the file and pixel layer around the tiles package.
//
// It decodes images from disk, writes rearranged images back as PNG, caches
// decoded images for the server, and renders per-tile views (a single tile as
// PNG, the mean color of every tile).
//
// # Formats
//
// Decoding supports PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding always
// produces PNG, which is lossless for every color model the tiles package
// preserves.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner. For
// rectangles Min is inclusive and Max is exclusive.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. FileCodec holds no state.
// Tile operations only read the image they are given.
//
// # Error Handling
//
// File and decoder errors are wrapped with a "failed to ..." prefix and keep
// the underlying error available to errors.Is. Grid errors are the
// *tiles.ValidationError returned by tiles.NewGrid.
package imaging
