package gridpane

import "github.com/gogpu/gridpane/style"

// Option configures a Pane during creation.
//
// Example:
//
//	// Default zero-area pane, resized later by the host
//	pane := gridpane.New()
//
//	// Pane with an initial surface size and a custom theme
//	pane := gridpane.New(
//	    gridpane.WithSize(800, 600),
//	    gridpane.WithTheme(theme),
//	)
type Option func(*Pane)

// WithSize sets the initial surface dimensions. Equivalent to calling
// ResizeTo before any collaborator is attached, so no repaint happens.
func WithSize(width, height int) Option {
	return func(p *Pane) {
		if width < 0 {
			width = 0
		}
		if height < 0 {
			height = 0
		}
		p.surface = NewSurface(width, height)
		p.buffer = NewSurface(width, height)
	}
}

// WithTheme sets the pane's colors. A nil theme keeps the default.
func WithTheme(t *style.Theme) Option {
	return func(p *Pane) {
		if t != nil {
			p.theme = t
		}
	}
}

// WithRegistry replaces the pane's renderer registry.
// Use this to share one registry between several panes. A nil registry
// keeps the default.
func WithRegistry(r *Registry) Option {
	return func(p *Pane) {
		if r != nil {
			p.registry = r
		}
	}
}
