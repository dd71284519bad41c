package engine

import (
	"testing"

	"github.com/lixenwraith/tabstack/geom"
)

func TestChainGapShrinksTowardLeadingEdge(t *testing.T) {
	const attached, spacing = 50.0, 25.0

	if got := chainGap(-3, attached, spacing); got != 0 {
		t.Errorf("gap below the edge = %.2f, want 0", got)
	}
	if got := chainGap(0, attached, spacing); got != 0 {
		t.Errorf("gap at the edge = %.2f, want 0", got)
	}
	if got := chainGap(25, attached, spacing); !geom.ApproxEqual(got, 12.5, 1e-9) {
		t.Errorf("gap halfway = %.2f, want 12.5", got)
	}
	if got := chainGap(50, attached, spacing); !geom.ApproxEqual(got, 25, 1e-9) {
		t.Errorf("gap at attached = %.2f, want 25", got)
	}
	if got := chainGap(80, attached, spacing); !geom.ApproxEqual(got, 25, 1e-9) {
		t.Errorf("gap above attached = %.2f, want saturated 25", got)
	}
}

func TestChainPreviousInvertsChainNext(t *testing.T) {
	const attached, spacing = 50.0, 25.0

	for _, p := range []float64{0.5, 5, 20, 49, 50, 60, 90} {
		next := chainNext(p, attached, spacing)
		back := chainPrevious(next, attached, spacing)
		if !geom.ApproxEqual(back, p, 1e-9) {
			t.Errorf("p=%.2f: chainPrevious(chainNext(p)) = %.4f", p, back)
		}
	}
}

func TestChainPreviousAtAndBelowZero(t *testing.T) {
	const attached, spacing = 50.0, 25.0

	if got := chainPrevious(0, attached, spacing); got != 0 {
		t.Errorf("chainPrevious(0) = %.2f, want 0", got)
	}
	if got := chainPrevious(-4, attached, spacing); got != -4 {
		t.Errorf("chainPrevious(-4) = %.2f, want identity", got)
	}
}

func TestChainDegeneratesWithoutAttachedPosition(t *testing.T) {
	if got := chainGap(10, 0, 25); got != 25 {
		t.Errorf("gap = %.2f, want constant spacing", got)
	}
	if got := chainPrevious(10, 0, 25); got != -15 {
		t.Errorf("previous = %.2f, want constant spacing", got)
	}
}
