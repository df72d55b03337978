// Package server implements the MCP (Model Context Protocol) server for tile rearrangement.
//
// The server speaks JSON-RPC 2.0 over stdio: one request per line on stdin,
// one response per line on stdout.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Geometry:
//   - tiles_validate: Check a tile size and ordering against an image
//   - tiles_position: Map a tile index to its row, column and rectangle
//   - tiles_plan: List the tile moves an ordering performs
//
// Rearrangement:
//   - tiles_rearrange: Rearrange tiles and write a PNG
//   - tiles_ordering: Generate identity, reverse, shuffle or Hilbert orderings
//   - tiles_inverse: Invert an ordering
//
// Tile Inspection:
//   - tiles_extract: Return one tile as PNG
//   - tiles_colors: Mean color of every tile
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process. A
// tiles_rearrange call evicts its out_path so later calls see the new file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string. For an invalid tile size or ordering this is
//     always "The tile size or ordering are not valid for the given image".
package server
