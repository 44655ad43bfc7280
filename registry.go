package gridpane

import (
	"sort"
	"sync"
)

// CellRenderer draws one cell's content into its pixel box.
//
// Paint is side-effect-only: it must not return an error and must degrade
// gracefully (draw nothing) for values it does not understand. The
// surface clip is already set to the dirty rectangle when Paint runs.
type CellRenderer interface {
	Paint(s *Surface, cfg *CellConfig)
}

// RendererFunc adapts a plain function to the CellRenderer interface.
type RendererFunc func(s *Surface, cfg *CellConfig)

// Paint calls f.
func (f RendererFunc) Paint(s *Surface, cfg *CellConfig) { f(s, cfg) }

// Registry maps renderer names to CellRenderer values.
//
// A new registry always contains a "default" entry so that models that
// never set CellData.RendererName still render. Lookup uses an explicit
// two-value return; a missing name is reported, never a nil renderer
// masquerading as a hit.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]CellRenderer
}

// NewRegistry creates a registry seeded with the "default" solid-fill
// renderer.
func NewRegistry() *Registry {
	return &Registry{
		entries: map[string]CellRenderer{
			DefaultRendererName: &SolidRenderer{},
		},
	}
}

// Lookup returns the renderer registered under name.
func (r *Registry) Lookup(name string) (CellRenderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.entries[name]
	return renderer, ok
}

// Register adds or replaces the renderer under name.
// A nil renderer removes the entry, matching Unregister.
func (r *Registry) Register(name string, renderer CellRenderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if renderer == nil {
		delete(r.entries, name)
		return
	}
	r.entries[name] = renderer
}

// Unregister removes the entry under name. Removing an absent name is a
// no-op; removing "default" is allowed and leaves default-named cells
// silently skipped.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
