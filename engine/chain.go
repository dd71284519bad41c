package engine

import "github.com/lixenwraith/tabstack/geom"

// The position chain relates a tab's position to its successor's. The gap
// between neighbors is not constant: it shrinks toward zero as positions
// approach the leading edge, so tabs compact softly into the pile, and
// saturates at max spacing once the predecessor passes the attached
// position. Both directions of the chain are used: forward to derive a
// successor from a reference, inverse to derive a predecessor.

// chainGap returns the drag-axis gap a successor keeps above a
// predecessor at position pos
func chainGap(pos, attached, maxSpacing float64) float64 {
	if attached <= 0 {
		return maxSpacing
	}
	return geom.Clamp01(pos/attached) * maxSpacing
}

// chainNext maps a predecessor position to its successor's position
func chainNext(pos, attached, maxSpacing float64) float64 {
	return pos + chainGap(pos, attached, maxSpacing)
}

// chainPrevious inverts chainNext: given a successor position, it returns
// the predecessor position whose chained successor lands there
func chainPrevious(pos, attached, maxSpacing float64) float64 {
	if attached <= 0 {
		return pos - maxSpacing
	}
	if pos >= attached+maxSpacing {
		return pos - maxSpacing
	}
	if pos <= 0 {
		return pos
	}
	// Inside the compression zone: pos = p + p/attached*maxSpacing
	return pos / (1 + maxSpacing/attached)
}
