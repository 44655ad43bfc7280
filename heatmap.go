package gridpane

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// HeatmapRenderer fills the cell with a color interpolated between Low
// and High according to the cell's numeric value.
//
// Values at or below Min map to Low, values at or above Max map to High,
// and anything between is blended in Luv space (perceptually uniform, no
// muddy midpoints). Non-numeric values draw nothing.
type HeatmapRenderer struct {
	Low, High colorful.Color
	Min, Max  float64
}

// NewHeatmapRenderer creates a blue-to-red heatmap over [min, max].
func NewHeatmapRenderer(min, max float64) *HeatmapRenderer {
	return &HeatmapRenderer{
		Low:  colorful.Color{R: 0.15, G: 0.35, B: 0.80},
		High: colorful.Color{R: 0.85, G: 0.20, B: 0.15},
		Min:  min,
		Max:  max,
	}
}

// Paint fills the cell box with the interpolated color.
func (r *HeatmapRenderer) Paint(s *Surface, cfg *CellConfig) {
	v, ok := numericValue(cfg.Value)
	if !ok {
		return
	}
	t := 0.0
	if r.Max > r.Min {
		t = (v - r.Min) / (r.Max - r.Min)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	c := r.Low.BlendLuv(r.High, t).Clamped()
	s.FillRect(image.Rect(cfg.X, cfg.Y, cfg.X+cfg.Width, cfg.Y+cfg.Height), c)
}

// numericValue coerces the common numeric kinds a model is likely to
// hand over. Anything else reports false.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
