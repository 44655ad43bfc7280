// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package panecanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gridpane"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("panecanvas: canvas is closed")

	// ErrNilPane is returned when a nil pane is passed to New.
	ErrNilPane = errors.New("panecanvas: nil pane")

	// ErrNilProvider is returned when a nil DeviceProvider is passed to New.
	ErrNilProvider = errors.New("panecanvas: nil DeviceProvider")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Canvas wraps a gridpane.Pane with gogpu integration.
// It manages the CPU-to-GPU pipeline automatically.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	pane        *gridpane.Pane
	provider    gpucontext.DeviceProvider
	texture     any  // Lazy-created texture (*gogpu.Texture)
	oldTexture  any  // Previous texture awaiting deferred destruction
	dirty       bool // Needs GPU upload
	sizeChanged bool // Resize pending — texture must be recreated
	closed      bool
}

// New creates a Canvas around an existing pane.
// The provider should come from gogpu.App.GPUContextProvider().
//
// Returns an error if the pane or provider is nil.
func New(provider gpucontext.DeviceProvider, pane *gridpane.Pane) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if pane == nil {
		return nil, ErrNilPane
	}
	return &Canvas{
		pane:     pane,
		provider: provider,
		dirty:    true, // Mark dirty so first Flush creates the texture
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes.
func MustNew(provider gpucontext.DeviceProvider, pane *gridpane.Pane) *Canvas {
	c, err := New(provider, pane)
	if err != nil {
		panic(err)
	}
	return c
}

// Pane returns the wrapped pane. After mutating it directly, call
// MarkDirty (or use Update, which does both).
//
// Returns nil if the canvas is closed.
func (c *Canvas) Pane() *gridpane.Pane {
	if c.closed {
		return nil
	}
	return c.pane
}

// Width returns the pane surface width in pixels.
func (c *Canvas) Width() int { return c.pane.Surface().Width() }

// Height returns the pane surface height in pixels.
func (c *Canvas) Height() int { return c.pane.Surface().Height() }

// MarkDirty flags the canvas for GPU upload on next Flush().
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// Update calls fn with the pane and marks the canvas dirty.
// This is the recommended way to scroll, invalidate, or repaint, as it
// guarantees the next Flush/RenderTo uploads the result.
func (c *Canvas) Update(fn func(*gridpane.Pane)) error {
	if c.closed {
		return ErrCanvasClosed
	}
	fn(c.pane)
	c.dirty = true
	return nil
}

// IsDirty returns true if the canvas has pending changes that need to be
// uploaded to the GPU.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Resize changes the pane dimensions through gridpane's
// content-preserving resize and schedules texture recreation.
//
// Returns an error if the canvas is closed.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width == c.Width() && height == c.Height() {
		return nil
	}
	c.pane.ResizeTo(width, height)
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Flush uploads the pane surface to the GPU texture if dirty.
// Returns the texture for manual drawing if needed.
//
// The texture is created lazily on first Flush(); subsequent calls only
// upload data when the dirty flag is set.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	// If size changed, defer old texture destruction until after the GPU
	// is idle. The old texture may still be referenced by in-flight
	// command buffers; destroying it now would free descriptor heap
	// entries the GPU is reading. RenderToEx destroys it after
	// WriteTexture's internal wait.
	if c.sizeChanged {
		if c.texture != nil {
			if c.oldTexture != nil {
				if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
					destroyer.Destroy()
				}
			}
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	data := c.pane.Surface().Image().Pix

	// Create texture if needed (lazy initialization).
	if c.texture == nil {
		c.texture = &pendingTexture{
			width:  c.Width(),
			height: c.Height(),
			data:   data,
		}
		c.dirty = false
		return c.texture, nil
	}

	// Update existing texture.
	if updater, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("panecanvas: texture update failed: %w", err)
		}
	}

	c.dirty = false
	return c.texture, nil
}

// Texture returns the current GPU texture without flushing.
// Returns nil if the texture hasn't been created yet.
func (c *Canvas) Texture() any {
	return c.texture
}

// Provider returns the DeviceProvider associated with this canvas.
// Returns nil if the canvas is closed.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

// Close releases the GPU textures and the pane's subscriptions.
// Close is idempotent: multiple calls are safe.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.oldTexture != nil {
		if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		c.oldTexture = nil
	}
	if c.texture != nil {
		if destroyer, ok := c.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		c.texture = nil
	}

	err := c.pane.Close()
	c.provider = nil
	return err
}

// pendingTexture is a placeholder for texture creation. It holds the
// data needed to create a real texture once a TextureCreator is
// available (during RenderTo).
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
