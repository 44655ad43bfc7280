package gridpane

import (
	"image/color"
	"testing"
)

// cellKey identifies one queried cell in a recordingModel.
type cellKey struct{ row, col int }

// recordingModel colors every cell from its indices plus a phase
// counter, and records which cells the pipeline queried. Bumping the
// phase makes repainted pixels distinguishable from blitted ones.
type recordingModel struct {
	rows, cols int
	phase      uint8
	queried    []cellKey
}

func (m *recordingModel) RowCount() int    { return m.rows }
func (m *recordingModel) ColumnCount() int { return m.cols }

func (m *recordingModel) CellData(row, col int, out *CellData) {
	m.queried = append(m.queried, cellKey{row, col})
	out.Value = m.cellColor(row, col)
}

func (m *recordingModel) cellColor(row, col int) color.RGBA {
	return color.RGBA{R: m.phase, G: uint8(row), B: uint8(col), A: 0xff}
}

func (m *recordingModel) resetQueries() { m.queried = m.queried[:0] }

// newTestPane builds a 100x60 pane over 10 columns of width 50 and 100
// rows of height 20, with a recording model.
func newTestPane(t *testing.T) (*Pane, *recordingModel) {
	t.Helper()
	model := &recordingModel{rows: 100, cols: 10}
	pane := New(WithSize(100, 60))
	pane.SetRowOracle(NewUniformSections(model.rows, 20))
	pane.SetColumnOracle(NewUniformSections(model.cols, 50))
	pane.SetModel(model)
	return pane, model
}

func containsCell(queried []cellKey, row, col int) bool {
	for _, k := range queried {
		if k.row == row && k.col == col {
			return true
		}
	}
	return false
}
