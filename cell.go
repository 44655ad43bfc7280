package gridpane

// DefaultRendererName is the registry key the paint pipeline falls back
// to when a model leaves CellData.RendererName untouched.
const DefaultRendererName = "default"

// DataModel supplies cell content for the grid.
//
// CellData mutates the provided scratch record in place and must not
// retain the pointer: the pipeline reuses a single record across all
// cells of a region to avoid per-cell allocation.
type DataModel interface {
	RowCount() int
	ColumnCount() int
	CellData(row, column int, out *CellData)
}

// CellData is the transient per-cell payload produced by the data model.
// The pipeline resets it before every cell, so a model need only set the
// fields it cares about.
type CellData struct {
	// Value is the opaque cell value handed to the renderer.
	Value any

	// RendererName selects the renderer from the registry.
	RendererName string

	// Options is opaque renderer-specific configuration.
	Options any
}

// Reset restores the record to its pre-query state.
func (d *CellData) Reset() {
	d.Value = nil
	d.RendererName = DefaultRendererName
	d.Options = nil
}

// CellConfig is the transient per-cell draw instruction passed to a
// renderer. Like CellData it is reused across cells; renderers must not
// retain the pointer past the Paint call.
type CellConfig struct {
	// X, Y, Width, Height is the cell's pixel box in surface coordinates.
	X, Y, Width, Height int

	// Row, Column are the cell's grid indices.
	Row, Column int

	// Value and Options are copied from the model's CellData.
	Value   any
	Options any
}

// ModelFunc adapts a plain function to the DataModel interface with fixed
// row and column counts.
type ModelFunc struct {
	Rows    int
	Columns int
	Func    func(row, column int, out *CellData)
}

// RowCount returns the fixed row count.
func (m *ModelFunc) RowCount() int { return m.Rows }

// ColumnCount returns the fixed column count.
func (m *ModelFunc) ColumnCount() int { return m.Columns }

// CellData invokes the wrapped function if it is non-nil.
func (m *ModelFunc) CellData(row, column int, out *CellData) {
	if m.Func != nil {
		m.Func(row, column, out)
	}
}
