package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// thresholdProperties returns the schema fragment for the detection tunables
// shared by every tool that runs the pipeline. Property names match the
// Config JSON tags; omitted values fall back to the calibrated defaults.
func thresholdProperties() map[string]interface{} {
	return map[string]interface{}{
		"bright_threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Minimum value all three channels must reach for a line pixel (default 240)",
			"default":     240,
		},
		"dark_threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Maximum value all three channels may hold for bounding dark material (default 40)",
			"default":     40,
		},
		"min_length": map[string]interface{}{
			"type":        "number",
			"description": "Minimum line length in pixels (default 30)",
			"default":     30,
		},
		"min_thickness": map[string]interface{}{
			"type":        "number",
			"description": "Minimum line thickness in pixels (default 2)",
			"default":     2,
		},
		"max_thickness": map[string]interface{}{
			"type":        "number",
			"description": "Maximum line thickness in pixels (default 15)",
			"default":     15,
		},
		"min_aspect_ratio": map[string]interface{}{
			"type":        "number",
			"description": "Minimum length/thickness ratio (default 3)",
			"default":     3,
		},
		"termination_check_radius": map[string]interface{}{
			"type":        "integer",
			"description": "How far past each endpoint to look for dark material (default 20)",
			"default":     20,
		},
		"min_area": map[string]interface{}{
			"type":        "number",
			"description": "Minimum region area in pixels to consider (default 50)",
			"default":     50,
		},
	}
}

// detectionInputSchema builds the input schema for a detection tool: the
// required frame path, the shared threshold overrides, and any tool-specific
// properties merged on top.
func detectionInputSchema(extra map[string]interface{}) map[string]interface{} {
	properties := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the frame image",
		},
	}
	for name, prop := range thresholdProperties() {
		properties[name] = prop
	}
	for name, prop := range extra {
		properties[name] = prop
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   []string{"path"},
	}
}

// scaleProperty is the transport downscale shared by the image-returning
// tools.
func scaleProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Optional downscale factor for the returned image (e.g. 0.5). Default 1.0",
		"default":     1.0,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Detection
		{
			Name:        "line_detect",
			Description: "Find the longest white, dark-bounded line in a frame. Returns its endpoints, length, thickness and angle, or found=false when the frame holds no valid line.",
			InputSchema: detectionInputSchema(nil),
		},
		{
			Name:        "line_detect_all",
			Description: "Find every valid line candidate in a frame, ranked longest first.",
			InputSchema: detectionInputSchema(nil),
		},

		// Detection Diagnostics
		{
			Name:        "line_analyze",
			Description: "Measure every bright region in a frame, including the ones the filters rejected. Use this to answer why line_detect found nothing: each shape reports area, length, thickness, aspect, endpoints and which checks it passed.",
			InputSchema: detectionInputSchema(nil),
		},
		{
			Name:        "line_masks",
			Description: "Return the bright and dark threshold masks as base64 PNGs with their pixel counts. Shows exactly which pixels the detector reads as line and as bounding material.",
			InputSchema: detectionInputSchema(map[string]interface{}{
				"scale": scaleProperty(),
			}),
		},
		{
			Name:        "line_preview",
			Description: "Return an annotated preview as base64 PNG: detected lines in gray, the best line in green with red/blue endpoint markers. When nothing is found, the measured shapes are outlined instead.",
			InputSchema: detectionInputSchema(map[string]interface{}{
				"scale": scaleProperty(),
			}),
		},

		// Frame Inspection
		{
			Name:        "image_info",
			Description: "Get the dimensions, format, color depth and file size of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "sample_color",
			Description: "Get the exact color at a pixel as hex, RGB, RGBA and HSL. The lightness value shows where the pixel sits relative to the bright and dark thresholds.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "dominant_colors",
			Description: "Return the N most common quantized colors of the frame or a region. Shows where the table surface and line colors sit relative to the detection thresholds.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return (default 5)",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to analyze. If omitted, analyzes the entire frame.",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "measure_distance",
			Description: "Measure the pixel distance and angle between two frame coordinates. Useful for cross-checking a reported line length against coordinates read off a grid overlay.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x1": map[string]interface{}{"type": "integer", "description": "First point X"},
					"y1": map[string]interface{}{"type": "integer", "description": "First point Y"},
					"x2": map[string]interface{}{"type": "integer", "description": "Second point X"},
					"y2": map[string]interface{}{"type": "integer", "description": "Second point Y"},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "grid_overlay",
			Description: "Return the frame with a coordinate grid overlay as base64 PNG, for reading endpoint positions off the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"grid_spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels between grid lines (default 50)",
						"default":     50,
					},
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Whether to label grid intersections with coordinates",
						"default":     false,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as hex (default #FF000080 - semi-transparent red)",
						"default":     "#FF000080",
					},
					"scale": scaleProperty(),
				},
				"required": []string{"path"},
			},
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
