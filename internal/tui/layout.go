package tui

// Layout constants, in terminal cells.
const (
	screenMargin  = 1
	headerHeight  = 3
	footerHeight  = 3
	bodyMinHeight = 5
	infoHeight    = 5
)

// Rect is a screen region. Width and Height are never negative.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the region has no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Layout holds the panel regions of one frame.
type Layout struct {
	Header Rect
	List   Rect
	Info   Rect
	Gauge  Rect
	Footer Rect
}

// ComputeLayout splits a viewport of the given size into panels. It is
// recomputed for every frame and holds no state.
//
// The body keeps up to bodyMinHeight rows before the header and footer
// give up theirs, header first.
func ComputeLayout(width, height int) Layout {
	w := max(width-2*screenMargin, 0)
	h := max(height-2*screenMargin, 0)
	x, y := screenMargin, screenMargin

	body := max(h-headerHeight-footerHeight, min(bodyMinHeight, h))
	rest := h - body
	header := min(headerHeight, rest)
	footer := min(footerHeight, rest-header)

	listW := w / 2
	sideW := w - listW
	info := min(infoHeight, body)

	bodyY := y + header
	return Layout{
		Header: Rect{X: x, Y: y, Width: w, Height: header},
		List:   Rect{X: x, Y: bodyY, Width: listW, Height: body},
		Info:   Rect{X: x + listW, Y: bodyY, Width: sideW, Height: info},
		Gauge:  Rect{X: x + listW, Y: bodyY + info, Width: sideW, Height: body - info},
		Footer: Rect{X: x, Y: bodyY + body, Width: w, Height: footer},
	}
}
