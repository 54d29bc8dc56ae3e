package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/JoshuaGerke/Pool-Line-Detector/internal/detection"
	"github.com/JoshuaGerke/Pool-Line-Detector/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "line_detect", "sample_color").
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
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the frame from cache as needed
//  4. Calls the appropriate detection/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Detection
	case "line_detect":
		return s.handleLineDetect(args)
	case "line_detect_all":
		return s.handleLineDetectAll(args)

	// Detection Diagnostics
	case "line_analyze":
		return s.handleLineAnalyze(args)
	case "line_masks":
		return s.handleLineMasks(args)
	case "line_preview":
		return s.handleLinePreview(args)

	// Frame Inspection
	case "image_info":
		return s.handleImageInfo(args)
	case "sample_color":
		return s.handleSampleColor(args)
	case "dominant_colors":
		return s.handleDominantColors(args)
	case "measure_distance":
		return s.handleMeasureDistance(args)
	case "grid_overlay":
		return s.handleGridOverlay(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Detection Handlers ===

// detectArgs carries a frame path plus optional threshold overrides. The
// embedded Config fields unmarshal at the top level of the arguments object;
// absent fields stay zero and fall back to the calibrated defaults inside
// the detector.
type detectArgs struct {
	Path string `json:"path"`
	detection.Config
}

// DetectResult wraps the longest detected line. Found false with a nil Line
// means the frame holds no valid line, which is a result, not an error.
type DetectResult struct {
	Found bool                    `json:"found"`
	Line  *detection.DetectedLine `json:"line,omitempty"`
}

func (s *Server) handleLineDetect(args json.RawMessage) (interface{}, error) {
	var a detectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	line := detection.DetectLine(img, a.Config)
	return &DetectResult{Found: line != nil, Line: line}, nil
}

func (s *Server) handleLineDetectAll(args json.RawMessage) (interface{}, error) {
	var a detectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return detection.DetectLines(img, a.Config), nil
}

// === Detection Diagnostic Handlers ===

func (s *Server) handleLineAnalyze(args json.RawMessage) (interface{}, error) {
	var a detectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return detection.AnalyzeShapes(img, a.Config), nil
}

// renderArgs extends detectArgs with a transport scale for tools that ship
// an image back.
type renderArgs struct {
	Path  string  `json:"path"`
	Scale float64 `json:"scale"`
	detection.Config
}

// MasksResult carries the two threshold masks and their population counts.
type MasksResult struct {
	Bright       *imaging.EncodedImage `json:"bright"`
	Dark         *imaging.EncodedImage `json:"dark"`
	BrightPixels int                   `json:"bright_pixels"`
	DarkPixels   int                   `json:"dark_pixels"`
}

func (s *Server) handleLineMasks(args json.RawMessage) (interface{}, error) {
	var a renderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	bright, dark := detection.Masks(img, a.Config)

	brightEnc, err := imaging.EncodePNG(bright, a.Scale)
	if err != nil {
		return nil, err
	}
	darkEnc, err := imaging.EncodePNG(dark, a.Scale)
	if err != nil {
		return nil, err
	}

	return &MasksResult{
		Bright:       brightEnc,
		Dark:         darkEnc,
		BrightPixels: countWhite(bright),
		DarkPixels:   countWhite(dark),
	}, nil
}

// PreviewResult carries the annotated preview frame. When lines were found
// the preview marks them; otherwise it falls back to outlining the measured
// shapes so the caller can see what the detector rejected.
type PreviewResult struct {
	Found  bool                  `json:"found"`
	Lines  int                   `json:"lines"`
	Shapes int                   `json:"shapes"`
	Image  *imaging.EncodedImage `json:"image"`
}

func (s *Server) handleLinePreview(args json.RawMessage) (interface{}, error) {
	var a renderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result := detection.DetectLines(img, a.Config)

	var preview *image.NRGBA
	shapes := 0
	if result.Count > 0 {
		preview = imaging.RenderDetection(img, result)
	} else {
		analysis := detection.AnalyzeShapes(img, a.Config)
		shapes = analysis.Count
		preview = imaging.RenderShapes(img, analysis)
	}

	encoded, err := imaging.EncodePNG(preview, a.Scale)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		Found:  result.Count > 0,
		Lines:  result.Count,
		Shapes: shapes,
		Image:  encoded,
	}, nil
}

// countWhite counts the fully set pixels of a 0/255 mask image.
func countWhite(mask *image.Gray) int {
	count := 0
	for _, v := range mask.Pix {
		if v == 255 {
			count++
		}
	}
	return count
}

// === Frame Inspection Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type sampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type dominantColorsArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

func (s *Server) handleDominantColors(args json.RawMessage) (interface{}, error) {
	var a dominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *image.Rectangle
	if a.Region != nil {
		r := image.Rect(a.Region.X1, a.Region.Y1, a.Region.X2, a.Region.Y2)
		region = &r
	}
	return imaging.DominantColors(img, a.Count, region)
}

type measureDistanceArgs struct {
	Path string `json:"path"`
	X1   int    `json:"x1"`
	Y1   int    `json:"y1"`
	X2   int    `json:"x2"`
	Y2   int    `json:"y2"`
}

func (s *Server) handleMeasureDistance(args json.RawMessage) (interface{}, error) {
	var a measureDistanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.MeasureDistance(img, a.X1, a.Y1, a.X2, a.Y2)
}

type gridOverlayArgs struct {
	Path            string  `json:"path"`
	GridSpacing     int     `json:"grid_spacing"`
	ShowCoordinates bool    `json:"show_coordinates"`
	GridColor       string  `json:"grid_color"`
	Scale           float64 `json:"scale"`
}

func (s *Server) handleGridOverlay(args json.RawMessage) (interface{}, error) {
	var a gridOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.GridSpacing == 0 {
		a.GridSpacing = 50
	}
	if a.GridColor == "" {
		a.GridColor = "#FF000080"
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(imaging.Grid(img, a.GridSpacing, a.ShowCoordinates, a.GridColor), a.Scale)
}
