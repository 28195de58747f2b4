package raycast

import "math"

// Span is a run of screen pixels [X0, X1) where a sprite is in front of the walls.
// U0 and U1 are the matching horizontal texture fractions in [0, 1].
type Span struct {
	X0, X1 int
	U0, U1 float64
}

// VisibleSpans clips a projected sprite against the wall depth buffer, one
// entry per ray column, and merges neighbouring visible columns.
func VisibleSpans(p Projection, depth []float64, view View) []Span {
	if p.Size <= 0 || len(depth) == 0 {
		return nil
	}

	colWidth := view.Width / len(depth)
	if colWidth <= 0 {
		colWidth = 1
	}

	left := p.ScreenX - p.Size/2
	x0 := int(math.Max(0, math.Floor(left)))
	x1 := int(math.Min(float64(view.Width), math.Ceil(left+p.Size)))
	if x0 >= x1 {
		return nil
	}

	var spans []Span
	open := false
	for col := x0 / colWidth; col*colWidth < x1 && col < len(depth); col++ {
		px0 := max(x0, col*colWidth)
		px1 := min(x1, (col+1)*colWidth)
		if p.Depth >= depth[col] {
			open = false
			continue
		}
		if open {
			spans[len(spans)-1].X1 = px1
			continue
		}
		spans = append(spans, Span{X0: px0, X1: px1})
		open = true
	}

	for i := range spans {
		spans[i].U0 = math.Max(0, (float64(spans[i].X0)-left)/p.Size)
		spans[i].U1 = math.Min(1, (float64(spans[i].X1)-left)/p.Size)
	}
	return spans
}
