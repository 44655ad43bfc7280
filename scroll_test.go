package gridpane

import (
	"math"
	"testing"
)

func TestScrollTo_StoredPosition(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		wantX int
		wantY int
	}{
		{"integral", 10, 20, 10, 20},
		{"fractional rounds", 10.6, 19.4, 11, 19},
		{"half rounds away", 10.5, 20.5, 11, 21},
		{"negative clamps", -5, -0.4, 0, 0},
		{"nan coerces", math.NaN(), 5, 0, 5},
		{"inf coerces", math.Inf(1), math.Inf(-1), 0, 0},
		{"huge finite saturates", 1e30, 5, math.MaxInt, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pane := New()
			pane.ScrollTo(tt.x, tt.y)
			if pane.ScrollX() != tt.wantX || pane.ScrollY() != tt.wantY {
				t.Errorf("scroll = (%d,%d), want (%d,%d)",
					pane.ScrollX(), pane.ScrollY(), tt.wantX, tt.wantY)
			}
		})
	}
}

func TestScrollBy_MatchesScrollTo(t *testing.T) {
	a := New()
	a.ScrollTo(30, 40)
	a.ScrollBy(12, -7)

	b := New()
	b.ScrollTo(30+12, 40-7)

	if a.ScrollX() != b.ScrollX() || a.ScrollY() != b.ScrollY() {
		t.Errorf("ScrollBy = (%d,%d), ScrollTo = (%d,%d)",
			a.ScrollX(), a.ScrollY(), b.ScrollX(), b.ScrollY())
	}
}

func TestScrollTo_StateMovesWhileHidden(t *testing.T) {
	pane, model := newTestPane(t)
	pane.Repaint()
	model.resetQueries()

	pane.SetVisible(false)
	pane.ScrollTo(10, 0)

	if pane.ScrollX() != 10 {
		t.Errorf("ScrollX() = %d, want 10", pane.ScrollX())
	}
	if len(model.queried) != 0 {
		t.Errorf("hidden scroll queried %d cells, want 0", len(model.queried))
	}
}

// TestScrollTo_SmallDelta_Blits verifies that a small horizontal scroll
// copies existing pixels instead of re-rendering them: after the model
// changes phase, the blitted area still shows phase-0 colors and only
// the exposed margin shows phase-1 colors.
func TestScrollTo_SmallDelta_Blits(t *testing.T) {
	pane, model := newTestPane(t)
	pane.Repaint()

	model.phase = 1
	model.resetQueries()
	pane.ScrollTo(10, 0)

	// Pixel (0,5) now shows content x=10, still column 0, copied from
	// the phase-0 paint.
	blitted := pane.Surface().At(0, 5)
	if blitted.R != 0 {
		t.Errorf("blitted pixel has phase %d, want 0 (copied, not redrawn)", blitted.R)
	}

	// The exposed right margin (x in [90,100)) shows content x in
	// [100,110): column 2, painted fresh at phase 1.
	margin := pane.Surface().At(95, 5)
	want := model.cellColor(0, 2)
	if margin != want {
		t.Errorf("margin pixel = %v, want %v (freshly painted)", margin, want)
	}

	// Only margin cells were queried; column 0 stays untouched.
	if containsCell(model.queried, 0, 0) {
		t.Error("cell (0,0) was re-queried during a blit scroll")
	}
	if !containsCell(model.queried, 0, 2) {
		t.Error("margin cell (0,2) was not queried")
	}
}

// TestScrollTo_LargeDelta_FullRepaint verifies that a delta >= the
// surface size skips the blit and repaints everything.
func TestScrollTo_LargeDelta_FullRepaint(t *testing.T) {
	pane, model := newTestPane(t)
	pane.Repaint()

	model.phase = 1
	model.resetQueries()
	pane.ScrollTo(100, 0) // dx == surfaceWidth

	// Every visible pixel must carry the new phase.
	got := pane.Surface().At(5, 5)
	if got.R != 1 {
		t.Errorf("pixel phase = %d, want 1 (full repaint)", got.R)
	}
	// Leftmost visible cell is now column 2 (content x=100).
	if !containsCell(model.queried, 0, 2) {
		t.Error("cell (0,2) was not queried during full repaint")
	}
}

func TestScrollTo_NoOpKeepsPixels(t *testing.T) {
	pane, model := newTestPane(t)
	pane.Repaint()
	model.resetQueries()

	pane.ScrollTo(0, 0)
	if len(model.queried) != 0 {
		t.Errorf("no-op scroll queried %d cells, want 0", len(model.queried))
	}
}

// TestScrollTo_VerticalMargin verifies the margin geometry for a small
// vertical scroll: exactly one strip of height |dy| is repainted.
func TestScrollTo_VerticalMargin(t *testing.T) {
	pane, model := newTestPane(t)
	pane.Repaint()

	model.phase = 1
	model.resetQueries()
	pane.ScrollTo(0, 5)

	// Bottom strip y in [55,60) shows content y in [60,65): row 3.
	got := pane.Surface().At(10, 57)
	want := model.cellColor(3, 0)
	if got != want {
		t.Errorf("bottom margin pixel = %v, want %v", got, want)
	}
	// Top of the surface was blitted, not repainted.
	top := pane.Surface().At(10, 5)
	if top.R != 0 {
		t.Errorf("blitted pixel has phase %d, want 0", top.R)
	}
	if containsCell(model.queried, 0, 0) {
		t.Error("cell (0,0) re-queried during vertical blit scroll")
	}
}
