package gridpane

import "image"

// Paint repaints the dirty rectangle (x, y, width, height) in surface
// pixel coordinates. It is the single entry point for every repaint
// need: scroll margins, resize margins, full invalidation, and external
// update requests.
//
// The dirty rectangle is first filled with the theme's void color; that
// fill is all that remains when no model or oracles are attached, the
// model is empty, or the rectangle lies beyond all known sections. The
// resolved cell region may extend past the dirty rectangle because of
// the trailing-edge overdraw lookup, so all region drawing is clipped to
// the dirty rectangle.
func (p *Pane) Paint(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	dirty := image.Rect(x, y, x+width, y+height).Intersect(p.surface.Bounds())
	if dirty.Empty() {
		return
	}

	p.surface.FillRect(dirty, p.theme.Void)

	if p.model == nil || p.rowOracle == nil || p.columnOracle == nil {
		return
	}
	if p.model.RowCount() <= 0 || p.model.ColumnCount() <= 0 {
		return
	}

	region, ok := p.resolveRegion(dirty.Min.X, dirty.Min.Y, dirty.Dx(), dirty.Dy())
	if !ok {
		return
	}

	p.surface.SetClip(dirty)
	defer p.surface.ClearClip()

	box := image.Rect(region.OriginX, region.OriginY,
		region.OriginX+region.Width, region.OriginY+region.Height)
	p.surface.FillRect(box, p.theme.Background)

	p.paintGridLines(&region)
	p.paintCells(&region)
}

// paintGridLines draws one 1px separator per interior column and row
// boundary, spanning the full region box. The stroke occupies the first
// pixel past the boundary, so a repaint of either neighboring cell
// redraws it.
func (p *Pane) paintGridLines(region *Region) {
	x := region.OriginX
	for i := 0; i < len(region.ColumnSizes)-1; i++ {
		x += region.ColumnSizes[i]
		p.surface.VLine(x, region.OriginY, region.Height, p.theme.GridLine)
	}
	y := region.OriginY
	for j := 0; j < len(region.RowSizes)-1; j++ {
		y += region.RowSizes[j]
		p.surface.HLine(region.OriginX, y, region.Width, p.theme.GridLine)
	}
}

// paintCells dispatches every cell of the region to its renderer,
// columns left to right, rows top to bottom within each column.
//
// Zero-size sections are skipped and contribute nothing to the running
// pixel coordinate. The scratch CellData record is reset before each
// model query so the model only sets fields it cares about, and the last
// resolved name/renderer pair is cached across the loop since adjacent
// cells usually share a renderer.
func (p *Pane) paintCells(region *Region) {
	var (
		lastName     string
		lastRenderer CellRenderer
	)
	x := region.OriginX
	for ci, columnWidth := range region.ColumnSizes {
		if columnWidth == 0 {
			continue
		}
		column := region.FirstColumn + ci
		y := region.OriginY
		for ri, rowHeight := range region.RowSizes {
			if rowHeight == 0 {
				continue
			}
			row := region.FirstRow + ri

			p.cellData.Reset()
			p.model.CellData(row, column, &p.cellData)
			name := p.cellData.RendererName
			if name == "" {
				name = DefaultRendererName
			}

			if name != lastName {
				lastName = name
				lastRenderer, _ = p.registry.Lookup(name)
				if lastRenderer == nil {
					Logger().Debug("gridpane: no renderer registered",
						"name", name, "row", row, "column", column)
				}
			}
			// Missing renderer: the cell area stays background.
			if lastRenderer != nil {
				p.cellConfig = CellConfig{
					X:       x,
					Y:       y,
					Width:   columnWidth,
					Height:  rowHeight,
					Row:     row,
					Column:  column,
					Value:   p.cellData.Value,
					Options: p.cellData.Options,
				}
				lastRenderer.Paint(p.surface, &p.cellConfig)
			}
			y += rowHeight
		}
		x += columnWidth
	}
}
