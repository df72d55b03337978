package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/tile-rearrange-mcp/internal/imaging"
	"github.com/ironsheep/tile-rearrange-mcp/internal/ordering"
	"github.com/ironsheep/tile-rearrange-mcp/internal/tiles"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "tiles_rearrange").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		var verr *tiles.ValidationError
		if errors.As(err, &verr) && s.Debug {
			log.Printf("%s rejected: %s", params.Name, verr.Reason)
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Geometry
	case "tiles_validate":
		return s.handleTilesValidate(args)
	case "tiles_position":
		return s.handleTilesPosition(args)
	case "tiles_plan":
		return s.handleTilesPlan(args)

	// Rearrangement
	case "tiles_rearrange":
		return s.handleTilesRearrange(args)
	case "tiles_ordering":
		return s.handleTilesOrdering(args)
	case "tiles_inverse":
		return s.handleTilesInverse(args)

	// Tile inspection
	case "tiles_extract":
		return s.handleTilesExtract(args)
	case "tiles_colors":
		return s.handleTilesColors(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	mcpErr := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		mcpErr.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   mcpErr,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return errors.New("missing arguments")
	}
	return json.Unmarshal(args, v)
}

// rect is the JSON form of a tile rectangle. Right and Bottom are exclusive.
type rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

func toRect(r image.Rectangle) rect {
	return rect{Left: r.Min.X, Top: r.Min.Y, Right: r.Max.X, Bottom: r.Max.Y}
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Geometry Handlers ===

type tileSizeArgs struct {
	TileWidth  int `json:"tile_width"`
	TileHeight int `json:"tile_height"`
}

func (a tileSizeArgs) size() tiles.Size {
	return tiles.Size{Width: a.TileWidth, Height: a.TileHeight}
}

// gridArgs identifies an image either by path or by explicit dimensions.
type gridArgs struct {
	tileSizeArgs
	Path     string `json:"path"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Ordering []int  `json:"ordering"`
}

func (s *Server) imageSize(a gridArgs) (tiles.Size, error) {
	if a.Path == "" {
		return tiles.Size{Width: a.Width, Height: a.Height}, nil
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return tiles.Size{}, err
	}
	b := img.Bounds()
	return tiles.Size{Width: b.Dx(), Height: b.Dy()}, nil
}

type validateResult struct {
	Valid     bool       `json:"valid"`
	Message   string     `json:"message,omitempty"`
	Reason    string     `json:"reason,omitempty"`
	Image     tiles.Size `json:"image"`
	Columns   int        `json:"columns,omitempty"`
	Rows      int        `json:"rows,omitempty"`
	TileCount int        `json:"tile_count,omitempty"`
}

func (s *Server) handleTilesValidate(args json.RawMessage) (interface{}, error) {
	var a gridArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	size, err := s.imageSize(a)
	if err != nil {
		return nil, err
	}

	result := &validateResult{Valid: true, Image: size}
	if grid, err := tiles.NewGrid(size, a.size()); err == nil {
		result.Columns = grid.Columns
		result.Rows = grid.Rows
		result.TileCount = grid.Count()
	}

	var verr *tiles.ValidationError
	if err := tiles.Validate(size, a.size(), a.Ordering); errors.As(err, &verr) {
		result.Valid = false
		result.Message = verr.Error()
		result.Reason = verr.Reason
	}
	return result, nil
}

type positionArgs struct {
	tileSizeArgs
	Index   int `json:"index"`
	Columns int `json:"columns"`
}

type positionResult struct {
	Index int  `json:"index"`
	Col   int  `json:"col"`
	Row   int  `json:"row"`
	Rect  rect `json:"rect"`
}

func (s *Server) handleTilesPosition(args json.RawMessage) (interface{}, error) {
	var a positionArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Columns < 1 {
		return nil, fmt.Errorf("columns must be at least 1, got %d", a.Columns)
	}
	if a.Index < 0 {
		return nil, fmt.Errorf("index must not be negative, got %d", a.Index)
	}
	if a.TileWidth < 1 || a.TileHeight < 1 {
		return nil, fmt.Errorf("tile size %s must be positive", a.size())
	}

	p := tiles.PositionOf(a.Index, a.Columns)
	return &positionResult{
		Index: a.Index,
		Col:   p.Col,
		Row:   p.Row,
		Rect:  toRect(tiles.RectangleOf(p.Row, p.Col, a.TileHeight, a.TileWidth)),
	}, nil
}

type moveResult struct {
	DestIndex   int  `json:"dest_index"`
	SourceIndex int  `json:"source_index"`
	Source      rect `json:"source"`
	Dest        rect `json:"dest"`
}

type planResult struct {
	Image tiles.Size   `json:"image"`
	Tile  tiles.Size   `json:"tile"`
	Moves []moveResult `json:"moves"`
}

func (s *Server) handleTilesPlan(args json.RawMessage) (interface{}, error) {
	var a gridArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	size, err := s.imageSize(a)
	if err != nil {
		return nil, err
	}

	moves, err := tiles.Plan(size, a.size(), a.Ordering)
	if err != nil {
		return nil, err
	}
	result := &planResult{Image: size, Tile: a.size(), Moves: make([]moveResult, 0, len(moves))}
	for _, m := range moves {
		result.Moves = append(result.Moves, moveResult{
			DestIndex:   m.DestIndex,
			SourceIndex: m.SourceIndex,
			Source:      toRect(m.Source),
			Dest:        toRect(m.Dest),
		})
	}
	return result, nil
}

// === Rearrangement Handlers ===

type rearrangeArgs struct {
	tileSizeArgs
	Path     string `json:"path"`
	Ordering []int  `json:"ordering"`
	OutPath  string `json:"out_path"`
}

type rearrangeResult struct {
	OutPath   string `json:"out_path"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	TileCount int    `json:"tile_count"`
	MimeType  string `json:"mime_type"`
}

func (s *Server) handleTilesRearrange(args json.RawMessage) (interface{}, error) {
	var a rearrangeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.OutPath == "" {
		return nil, errors.New("out_path is required")
	}

	if err := tiles.Rearrange(s.cache, a.Path, a.size(), a.Ordering, a.OutPath); err != nil {
		return nil, err
	}
	if s.Debug {
		log.Printf("rearranged %s into %s (%d tiles of %s)", a.Path, a.OutPath, len(a.Ordering), a.size())
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &rearrangeResult{
		OutPath:   a.OutPath,
		Width:     b.Dx(),
		Height:    b.Dy(),
		TileCount: len(a.Ordering),
		MimeType:  "image/png",
	}, nil
}

type orderingArgs struct {
	tileSizeArgs
	Kind    string  `json:"kind"`
	Path    string  `json:"path"`
	Columns int     `json:"columns"`
	Rows    int     `json:"rows"`
	Seed    *uint32 `json:"seed"`
}

type orderingResult struct {
	Kind     string `json:"kind"`
	Columns  int    `json:"columns"`
	Rows     int    `json:"rows"`
	Ordering []int  `json:"ordering"`
}

func (s *Server) handleTilesOrdering(args json.RawMessage) (interface{}, error) {
	var a orderingArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	seed := uint32(1)
	if a.Seed != nil {
		seed = *a.Seed
	}

	columns, rows := a.Columns, a.Rows
	if a.Path != "" {
		img, err := s.cache.Load(a.Path)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		grid, err := tiles.NewGrid(tiles.Size{Width: b.Dx(), Height: b.Dy()}, a.size())
		if err != nil {
			return nil, err
		}
		columns, rows = grid.Columns, grid.Rows
	}

	p, err := ordering.Generate(ordering.Kind(a.Kind), columns, rows, seed)
	if err != nil {
		return nil, err
	}
	return &orderingResult{Kind: a.Kind, Columns: columns, Rows: rows, Ordering: p}, nil
}

type inverseArgs struct {
	Ordering []int `json:"ordering"`
}

func (s *Server) handleTilesInverse(args json.RawMessage) (interface{}, error) {
	var a inverseArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	inv, err := ordering.Inverse(a.Ordering)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"ordering": inv}, nil
}

// === Tile Inspection Handlers ===

type extractArgs struct {
	tileSizeArgs
	Path  string  `json:"path"`
	Index int     `json:"index"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleTilesExtract(args json.RawMessage) (interface{}, error) {
	var a extractArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.ExtractTile(img, a.size(), a.Index, a.Scale)
}

type colorsArgs struct {
	tileSizeArgs
	Path string `json:"path"`
}

func (s *Server) handleTilesColors(args json.RawMessage) (interface{}, error) {
	var a colorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.TileColors(img, a.size())
}
