// Package server implements the MCP (Model Context Protocol) surface of the
// line detector.
//
// This package provides a JSON-RPC 2.0 server that exposes the detection
// pipeline and its diagnostic views through the MCP protocol, so an
// MCP-compatible client can run detections, inspect why a frame produced no
// line, and tune thresholds interactively.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Detection:
//   - line_detect: Longest valid line in a frame
//   - line_detect_all: Every valid line, ranked by length
//
// Detection Diagnostics:
//   - line_analyze: Per-shape measurements, including rejected shapes
//   - line_masks: Bright/dark threshold masks as base64 PNGs
//   - line_preview: Annotated detection preview as base64 PNG
//
// Frame Inspection:
//   - image_info: Dimensions, format, color depth, file size
//   - sample_color: Hex/RGB/HSL at a pixel
//   - dominant_colors: Quantized color frequencies
//   - measure_distance: Distance and angle between two points
//   - grid_overlay: Coordinate grid preview
//
// Every detection tool accepts the eight threshold overrides alongside the
// frame path; omitted thresholds use the calibrated defaults.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded frames. A typical
// session hits the same file several times in a row (detect, analyze,
// preview), so frames are cached by path and reused across tool calls.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// A frame without a detectable line is not an error: line_detect answers
// found=false.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
