// Package gridpane renders a virtually-infinite two-dimensional grid of
// cells onto a fixed-size raster surface, repainting only the pixel
// regions invalidated by scrolling, resizing, or data changes.
//
// # Overview
//
// gridpane is the rendering engine beneath a data-grid component. Callers
// supply row/column sizing through a pair of [SectionOracle] values and
// cell content through a [DataModel]; the engine turns that information
// into correctly-positioned pixels with minimal redraw work. Scrolling is
// satisfied by blitting already-rendered pixels whenever possible, so the
// per-cell renderers only run for the newly exposed margins.
//
// # Quick Start
//
//	import "github.com/gogpu/gridpane"
//
//	pane := gridpane.New(gridpane.WithSize(400, 300))
//	pane.SetRowOracle(gridpane.NewUniformSections(1000, 20))
//	pane.SetColumnOracle(gridpane.NewUniformSections(50, 80))
//	pane.SetModel(model)
//
//	pane.Repaint()
//	pane.ScrollBy(0, 120) // blit + margin repaint, not a full redraw
//
//	_ = pane.Surface().SavePNG("grid.png")
//
// # Architecture
//
// The engine is organized around five pieces:
//   - Surface management: a visible raster plus an off-screen buffer,
//     resized in lock-step and used as the blit staging area
//   - Scroll engine: converts scroll deltas into a blit plus margin
//     repaints, or a full repaint when the delta exceeds the viewport
//   - Region resolution: maps an arbitrary dirty pixel rectangle to a
//     whole-cell-aligned [Region]
//   - Paint pipeline: background, grid lines, then per-cell renderer
//     dispatch over a resolved region
//   - Renderer registry: name to [CellRenderer] mapping with a "default"
//     entry
//
// All operations are synchronous and complete on the calling goroutine;
// the engine is driven by a single-threaded host loop and needs no
// internal locking.
package gridpane
