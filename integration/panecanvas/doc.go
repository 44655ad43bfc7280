// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package panecanvas presents a gridpane surface inside GPU-accelerated
// gogpu windows.
//
// The pane renders on the CPU; this package manages the upload pipeline:
//
//	gridpane.Pane (paint/blit) -> *image.RGBA (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	canvas, err := panecanvas.New(app.GPUContextProvider(), pane)
//	defer canvas.Close()
//
//	canvas.Update(func(p *gridpane.Pane) {
//	    p.ScrollBy(0, 40)
//	})
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use, matching the pane it wraps.
//
// # Integration Without Circular Imports
//
// Only gpucontext interfaces are used — DeviceProvider for device access,
// TextureCreator/TextureDrawer for upload and draw — so no GPU backend is
// imported directly.
package panecanvas
