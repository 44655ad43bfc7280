// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package panecanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Rendering errors.
var (
	// ErrInvalidDrawContext is returned when the draw context doesn't
	// implement gpucontext.TextureDrawer.
	ErrInvalidDrawContext = errors.New("panecanvas: dc must implement gpucontext.TextureDrawer")

	// ErrInvalidRenderer is returned when the renderer doesn't implement
	// gpucontext.TextureCreator.
	ErrInvalidRenderer = errors.New("panecanvas: renderer must implement gpucontext.TextureCreator")
)

// RenderTo draws the pane content to a gpucontext.TextureDrawer at the
// window origin. This is the primary integration method.
//
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer().
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToPosition(dc, 0, 0)
}

// RenderToPosition draws the pane content with its top-left at (x, y).
//
// Returns an error if the canvas is closed or texture creation or
// drawing fails.
func (c *Canvas) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	if c.closed {
		return ErrCanvasClosed
	}

	// Flush to ensure the pixel data is up to date.
	tex, err := c.Flush()
	if err != nil {
		return err
	}

	// If the texture is a pending placeholder, create the real GPU
	// texture now that a creator is available.
	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}

		// NewTextureFromRGBA calls WriteTexture, which waits for the GPU
		// internally. After it returns all prior GPU work is complete, so
		// it is safe to destroy the deferred old texture.
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("panecanvas: NewTextureFromRGBA failed: %w", err)
		}

		// The pane surface holds premultiplied alpha — mark the texture
		// accordingly so gogpu composites with the BlendFactorOne pipeline.
		if pt, ok := realTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}

		c.texture = realTex
		tex = realTex

		if c.oldTexture != nil {
			if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
			c.oldTexture = nil
		}
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, x, y)
}
