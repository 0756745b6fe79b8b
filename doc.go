// Package vg is a 2D vector drawing and anti-aliased rasterization engine.
//
// # Overview
//
// vg turns geometric descriptions (lines, curves, polygons, paths, gradients,
// patterns) into pixel coverage written onto a caller-owned raster surface.
// The API is stateless and immediate-mode: every draw call flattens its
// geometry, rasterizes fractional coverage, evaluates the paint source per
// pixel and composites the result into the destination. Nothing is retained
// between calls.
//
// # Quick Start
//
//	import "github.com/gogpu/vg"
//
//	pm := vg.NewPixmap(256, 256)
//	cv := vg.NewCanvas(pm)
//
//	p, _ := vg.BuildPath().
//		MoveTo(30, 30).
//		LineTo(226, 30).
//		LineTo(128, 200).
//		Close().
//		Build()
//	cv.FillPath(p, vg.FillRuleNonZero, vg.SolidPaint(vg.Red))
//
//	pm.SavePNG("triangle.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Canvas, Path, PathBuilder, Paint, gradients, shape styles
//   - internal/raster: scanline coverage (supersampled anti-aliasing)
//   - internal/stroke: centerline-to-outline expansion
//   - internal/blend: blend modes and alpha compositing
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Angles in radians, 0 points right, positive angles turn toward +Y
//
// # Concurrency
//
// The engine holds no process-wide mutable state. Draw calls targeting
// different surfaces may run in parallel without synchronization. Draw calls
// targeting the same surface must be serialized by the caller.
package vg
