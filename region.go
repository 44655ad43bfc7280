package gridpane

// Region describes one rectangular batch of whole cells queued for
// drawing. It is always aligned to cell boundaries and never represents
// a partial cell. A Region is built fresh per paint call, owned by that
// call, and discarded afterwards.
type Region struct {
	// OriginX, OriginY is the surface-space pixel position of the
	// top-left of the first cell, already offset by the current scroll.
	OriginX, OriginY int

	// Width, Height is the summed pixel size of the constituent
	// columns and rows.
	Width, Height int

	// FirstRow, FirstColumn are the grid indices of the top-left cell.
	FirstRow, FirstColumn int

	// RowSizes, ColumnSizes hold the pixel size of each constituent
	// row/column, in index order starting at FirstRow/FirstColumn.
	RowSizes    []int
	ColumnSizes []int
}

// LastRow returns the grid index of the region's bottom row.
func (r *Region) LastRow() int { return r.FirstRow + len(r.RowSizes) - 1 }

// LastColumn returns the grid index of the region's rightmost column.
func (r *Region) LastColumn() int { return r.FirstColumn + len(r.ColumnSizes) - 1 }

// resolveRegion maps a dirty rectangle in surface pixel coordinates to
// the aligned Region covering it. It reports false when the rectangle
// lies entirely beyond all known sections.
//
// The trailing-edge lookup deliberately queries one pixel past the
// rectangle: a cell whose boundary exactly touches the dirty rect is
// included, so the adjacent cell can overdraw the shared border. A rect
// that extends past the last section falls back to the last row/column
// instead of resolving empty.
func (p *Pane) resolveRegion(rx, ry, rw, rh int) (Region, bool) {
	// Translate to logical content coordinates.
	cx := rx + p.scrollX
	cy := ry + p.scrollY

	firstColumn, ok := p.columnOracle.SectionAt(cx)
	if !ok {
		return Region{}, false
	}
	firstRow, ok := p.rowOracle.SectionAt(cy)
	if !ok {
		return Region{}, false
	}

	lastColumn, ok := p.columnOracle.SectionAt(cx + rw)
	if !ok {
		lastColumn = p.columnOracle.SectionCount() - 1
	}
	lastRow, ok := p.rowOracle.SectionAt(cy + rh)
	if !ok {
		lastRow = p.rowOracle.SectionCount() - 1
	}

	region := Region{
		OriginX:     p.columnOracle.SectionPosition(firstColumn) - p.scrollX,
		OriginY:     p.rowOracle.SectionPosition(firstRow) - p.scrollY,
		FirstRow:    firstRow,
		FirstColumn: firstColumn,
		ColumnSizes: make([]int, 0, lastColumn-firstColumn+1),
		RowSizes:    make([]int, 0, lastRow-firstRow+1),
	}
	for i := firstColumn; i <= lastColumn; i++ {
		size := p.columnOracle.SectionSize(i)
		region.ColumnSizes = append(region.ColumnSizes, size)
		region.Width += size
	}
	for j := firstRow; j <= lastRow; j++ {
		size := p.rowOracle.SectionSize(j)
		region.RowSizes = append(region.RowSizes, size)
		region.Height += size
	}
	return region, true
}
