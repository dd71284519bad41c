package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tabstack/geom"
)

// Draw composites the full switcher frame: background, then every bound
// card in index order so higher-positioned cards overlap the ones beneath
// them, which is what produces the pile at each edge. Hidden tabs have no
// bound view and are skipped. The caller flushes with Show
func (s *Surface) Draw() {
	w, h := s.screen.Size()
	bg := tcell.StyleDefault.Background(s.theme.Background)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	selected := s.model.SelectedTab()
	for i := 0; i < s.model.Count(); i++ {
		tab := s.model.Tab(i)
		view := s.views[tab.ID()]
		if view == nil {
			continue
		}
		s.drawCard(view, tab == selected)
	}

	if s.model.AddButtonShown() {
		s.drawAddButton()
	}
}

// addButtonExtent is the square side of the new-tab affordance in cells
const addButtonExtent = 3

// addButtonRect returns the affordance bounds in screen cells, x1 and y1
// exclusive. It sits in the trailing top corner, above whatever card is
// drawn beneath it
func (s *Surface) addButtonRect() (x0, y0, x1, y1 int) {
	w, _ := s.screen.Size()
	return w - addButtonExtent - 1, 0, w - 1, addButtonExtent
}

// AddButtonContains reports whether p lands on the new-tab affordance.
// Always false while the model does not offer one
func (s *Surface) AddButtonContains(p geom.Point) bool {
	if !s.model.AddButtonShown() {
		return false
	}
	x0, y0, x1, y1 := s.addButtonRect()
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	return x >= x0 && x < x1 && y >= y0 && y < y1
}

func (s *Surface) drawAddButton() {
	x0, y0, x1, y1 := s.addButtonRect()
	style := tcell.StyleDefault.
		Foreground(s.theme.Selected).
		Background(s.theme.CardBody)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			ch := ' '
			switch {
			case y == y0 && x == x0:
				ch = '╭'
			case y == y0 && x == x1-1:
				ch = '╮'
			case y == y1-1 && x == x0:
				ch = '╰'
			case y == y1-1 && x == x1-1:
				ch = '╯'
			case y == y0 || y == y1-1:
				ch = '─'
			case x == x0 || x == x1-1:
				ch = '│'
			case x == (x0+x1)/2 && y == (y0+y1)/2:
				ch = '+'
			}
			s.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawCard renders one card from its leading drag edge to the screen
// boundary; cards drawn after it cover the remainder, leaving only the
// visible strip
func (s *Surface) drawCard(view *CardView, selected bool) {
	screenW, screenH := s.screen.Size()
	pad := s.model.Padding()

	// Leading drag edge in screen cells
	lead := int(math.Round(pad.Start + view.DragPos))

	// Orthogonal placement: swipe offset plus the inset a shrunken card
	// keeps around itself
	orthExtent := view.OrthSize * view.Scale()
	orthStart := int(math.Round(view.OrthOffset + (view.OrthSize-orthExtent)*view.pivotOrth))
	orthEnd := orthStart + int(math.Round(orthExtent))

	border := s.theme.CardBorder
	if selected {
		border = s.theme.Selected
	}
	alpha := view.Alpha()
	borderStyle := tcell.StyleDefault.
		Foreground(blendToward(border, s.theme.Background, alpha)).
		Background(blendToward(s.theme.CardBody, s.theme.Background, alpha))
	bodyColor := view.Tab.ContentColor()
	if bodyColor == tcell.ColorDefault {
		bodyColor = s.theme.CardBody
	}
	bodyStyle := tcell.StyleDefault.
		Foreground(blendToward(s.theme.CardTitle, s.theme.Background, alpha)).
		Background(blendToward(bodyColor, s.theme.Background, alpha))

	// Tilt as a shear along the orthogonal axis, growing with drag-axis
	// distance from the leading edge
	shear := math.Tan(view.Rotation() * math.Pi / 180)

	if s.dragIsVertical() {
		for y := lead; y < screenH; y++ {
			shift := int(math.Round(shear * float64(y-lead)))
			x0, x1 := orthStart+shift, orthEnd+shift
			if y == lead {
				s.drawEdge(x0, x1, y, true, view, borderStyle)
				continue
			}
			for x := x0; x < x1; x++ {
				if x < 0 || x >= screenW {
					continue
				}
				style := bodyStyle
				ch := ' '
				if x == x0 || x == x1-1 {
					style = borderStyle
					ch = '│'
				}
				s.screen.SetContent(x, y, ch, nil, style)
			}
		}
		if s.decorator != nil && lead+1 < screenH {
			s.decorator.DecorateCard(s.screen, view.Tab, orthStart+1, lead+1, orthEnd-orthStart-2, screenH-lead-1)
		}
		return
	}

	for x := lead; x < screenW; x++ {
		shift := int(math.Round(shear * float64(x-lead)))
		y0, y1 := orthStart+shift, orthEnd+shift
		if x == lead {
			s.drawEdge(y0, y1, x, false, view, borderStyle)
			continue
		}
		for y := y0; y < y1; y++ {
			if y < 0 || y >= screenH {
				continue
			}
			style := bodyStyle
			ch := ' '
			if y == y0 || y == y1-1 {
				style = borderStyle
				ch = '─'
			}
			s.screen.SetContent(x, y, ch, nil, style)
		}
	}
	if s.decorator != nil && lead+1 < screenW {
		s.decorator.DecorateCard(s.screen, view.Tab, lead+1, orthStart+1, screenW-lead-1, orthEnd-orthStart-2)
	}
}

// drawEdge renders the leading edge of a card with its truncated title.
// horizontal selects whether the edge runs along screen columns
func (s *Surface) drawEdge(from, to, at int, horizontal bool, view *CardView, style tcell.Style) {
	screenW, screenH := s.screen.Size()
	limit := screenH
	if horizontal {
		limit = screenW
	}

	extent := to - from
	if extent < 2 {
		return
	}
	title := view.Tab.Title()
	if icon := view.Tab.Icon(); icon != 0 {
		title = string(icon) + " " + title
	}
	title = runewidth.Truncate(title, extent-4, "…")
	label := []rune("╴" + title + "╶")

	pos := from
	put := func(p int, ch rune) {
		if p < 0 || p >= limit {
			return
		}
		if horizontal {
			s.screen.SetContent(p, at, ch, nil, style)
		} else {
			s.screen.SetContent(at, p, ch, nil, style)
		}
	}

	closing := '╮'
	fill := '─'
	if !horizontal {
		closing = '╰'
		fill = '│'
	}

	put(pos, '╭')
	pos++
	for _, ch := range label {
		if pos >= to-1 {
			break
		}
		put(pos, ch)
		pos += runewidth.RuneWidth(ch)
	}
	for ; pos < to-1; pos++ {
		put(pos, fill)
	}
	put(to-1, closing)
}
