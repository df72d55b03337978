package server

import (
	"strings"

	"github.com/ironsheep/tile-rearrange-mcp/internal/ordering"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func integerProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

func orderingProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "integer"},
		"description": "ordering[i] is the source tile index placed at output position i (row-major, 0-based)",
	}
}

// withTileSize adds tile_width and tile_height to a property set.
func withTileSize(props map[string]interface{}) map[string]interface{} {
	props["tile_width"] = integerProperty("Tile width in pixels; must divide the image width")
	props["tile_height"] = integerProperty("Tile height in pixels; must divide the image height")
	return props
}

// withImageSize adds the path-or-explicit-size alternative used by the
// geometry-only tools.
func withImageSize(props map[string]interface{}) map[string]interface{} {
	props["path"] = pathProperty("Absolute path to the image file. Takes precedence over width/height")
	props["width"] = integerProperty("Image width in pixels, used when path is omitted")
	props["height"] = integerProperty("Image height in pixels, used when path is omitted")
	return props
}

func objectSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	kinds := make([]string, 0, len(ordering.Kinds))
	for _, k := range ordering.Kinds {
		kinds = append(kinds, string(k))
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and color model.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProperty("Absolute path to the image file"),
			}, "path"),
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProperty("Absolute path to the image file"),
			}, "path"),
		},

		// Geometry
		{
			Name:        "tiles_validate",
			Description: "Check whether a tile size and ordering can rearrange an image: the tile size must divide both image dimensions and the ordering must use every tile exactly once.",
			InputSchema: objectSchema(withTileSize(withImageSize(map[string]interface{}{
				"ordering": orderingProperty(),
			})), "tile_width", "tile_height", "ordering"),
		},
		{
			Name:        "tiles_position",
			Description: "Convert a linear tile index into its grid row/column and pixel rectangle.",
			InputSchema: objectSchema(withTileSize(map[string]interface{}{
				"index":   integerProperty("Row-major tile index (0-based)"),
				"columns": integerProperty("Number of tile columns in the grid"),
			}), "index", "columns", "tile_width", "tile_height"),
		},
		{
			Name:        "tiles_plan",
			Description: "List the source and destination rectangle of every tile move an ordering performs, without touching pixels.",
			InputSchema: objectSchema(withTileSize(withImageSize(map[string]interface{}{
				"ordering": orderingProperty(),
			})), "tile_width", "tile_height", "ordering"),
		},

		// Rearrangement
		{
			Name:        "tiles_rearrange",
			Description: "Split an image into tiles, place them according to the ordering and save the result as PNG. Fails without writing anything when the tile size or ordering are not valid for the image.",
			InputSchema: objectSchema(withTileSize(map[string]interface{}{
				"path":     pathProperty("Absolute path to the source image"),
				"ordering": orderingProperty(),
				"out_path": pathProperty("Absolute path of the PNG file to write"),
			}), "path", "tile_width", "tile_height", "ordering", "out_path"),
		},
		{
			Name:        "tiles_ordering",
			Description: "Generate an ordering for a grid: identity, reverse, seeded shuffle or Hilbert curve (square power-of-two grids only).",
			InputSchema: objectSchema(withTileSize(map[string]interface{}{
				"kind": map[string]interface{}{
					"type":        "string",
					"enum":        kinds,
					"description": "Ordering generator: " + strings.Join(kinds, ", "),
				},
				"path":    pathProperty("Optional image path; the grid is derived from it and the tile size"),
				"columns": integerProperty("Number of tile columns, used when path is omitted"),
				"rows":    integerProperty("Number of tile rows, used when path is omitted"),
				"seed":    integerProperty("Seed for the shuffle generator. Default 1"),
			}), "kind"),
		},
		{
			Name:        "tiles_inverse",
			Description: "Return the ordering that undoes the given ordering.",
			InputSchema: objectSchema(map[string]interface{}{
				"ordering": orderingProperty(),
			}, "ordering"),
		},

		// Tile inspection
		{
			Name:        "tiles_extract",
			Description: "Return a single tile as base64-encoded PNG.",
			InputSchema: objectSchema(withTileSize(map[string]interface{}{
				"path":  pathProperty("Absolute path to the image file"),
				"index": integerProperty("Row-major tile index (0-based)"),
				"scale": map[string]interface{}{
					"type":        "number",
					"description": "Optional positive scale factor (e.g., 2.0 to double size). Default 1.0",
					"default":     1.0,
				},
			}), "path", "tile_width", "tile_height", "index"),
		},
		{
			Name:        "tiles_colors",
			Description: "Return the mean color of every tile, in row-major order.",
			InputSchema: objectSchema(withTileSize(map[string]interface{}{
				"path": pathProperty("Absolute path to the image file"),
			}), "path", "tile_width", "tile_height"),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
