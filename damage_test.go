package gridpane

import (
	"image"
	"testing"
)

func TestInvalidate_BatchedUntilValidate(t *testing.T) {
	pane, model := newTestPane(t)
	pane.Repaint()
	model.resetQueries()

	pane.Invalidate(image.Rect(0, 0, 10, 10))
	pane.Invalidate(image.Rect(60, 0, 70, 10))
	if len(model.queried) != 0 {
		t.Fatalf("Invalidate painted eagerly (%d cells queried)", len(model.queried))
	}

	pane.Validate()
	if !containsCell(model.queried, 0, 0) {
		t.Error("cell (0,0) not repainted")
	}
	if !containsCell(model.queried, 0, 1) {
		t.Error("cell (0,1) not repainted")
	}
	// Rows outside both rects stay untouched.
	if containsCell(model.queried, 2, 0) {
		t.Error("cell (2,0) repainted without being invalidated")
	}
}

func TestValidate_NoDamageIsNoOp(t *testing.T) {
	pane, model := newTestPane(t)
	pane.Repaint()
	model.resetQueries()

	pane.Validate()
	if len(model.queried) != 0 {
		t.Errorf("Validate with no damage queried %d cells, want 0", len(model.queried))
	}
}

// TestDamage_OverflowSwitchesToFullRepaint: past maxDamageRects the list
// collapses into a single full repaint.
func TestDamage_OverflowSwitchesToFullRepaint(t *testing.T) {
	var d damageList
	for i := 0; i <= maxDamageRects; i++ {
		d.add(image.Rect(i, 0, i+1, 1))
	}
	if !d.full {
		t.Fatal("damage list did not switch to full after overflow")
	}
	if len(d.rects) != 0 {
		t.Errorf("full damage list still holds %d rects", len(d.rects))
	}
	// Further rects are absorbed.
	d.add(image.Rect(0, 0, 5, 5))
	if len(d.rects) != 0 {
		t.Error("full damage list accepted another rect")
	}
}

func TestInvalidateAll_RepaintsEverything(t *testing.T) {
	pane, model := newTestPane(t)
	pane.Repaint()

	model.phase = 1
	model.resetQueries()
	pane.InvalidateAll()
	pane.Validate()

	if got := pane.Surface().At(5, 5); got.R != 1 {
		t.Errorf("pixel phase = %d, want 1", got.R)
	}
	if got := pane.Surface().At(95, 55); got.R != 1 {
		t.Errorf("bottom-right pixel phase = %d, want 1", got.R)
	}
}

func TestDamage_EmptyRectIgnored(t *testing.T) {
	var d damageList
	d.add(image.Rectangle{})
	d.add(image.Rect(3, 3, 3, 9))
	if d.pending() {
		t.Error("empty rects marked damage pending")
	}
}
