package livechart

import (
	"math"
)

// Viewport is a rectangle in data space. Top is greater than or equal to
// Bottom, Left is lower than or equal to Right.
type Viewport struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

func NewViewport(left, top, right, bottom float64) Viewport {
	if left > right {
		left, right = right, left
	}
	if bottom > top {
		top, bottom = bottom, top
	}
	return Viewport{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
	}
}

func (v Viewport) Width() float64 {
	return v.Right - v.Left
}

func (v Viewport) Height() float64 {
	return v.Top - v.Bottom
}

func (v Viewport) CenterX() float64 {
	return v.Left + v.Width()/2
}

func (v Viewport) CenterY() float64 {
	return v.Bottom + v.Height()/2
}

func (v Viewport) Empty() bool {
	return v.Width() <= 0 || v.Height() <= 0
}

func (v Viewport) Contains(x, y float64) bool {
	return x >= v.Left && x <= v.Right && y >= v.Bottom && y <= v.Top
}

func (v Viewport) Union(other Viewport) Viewport {
	return Viewport{
		Left:   math.Min(v.Left, other.Left),
		Top:    math.Max(v.Top, other.Top),
		Right:  math.Max(v.Right, other.Right),
		Bottom: math.Min(v.Bottom, other.Bottom),
	}
}

// Constrain moves and shrinks v so that it fits inside bounds.
func (v Viewport) Constrain(bounds Viewport) Viewport {
	x := v
	if x.Width() > bounds.Width() {
		x.Left, x.Right = bounds.Left, bounds.Right
	} else if x.Left < bounds.Left {
		x.Right += bounds.Left - x.Left
		x.Left = bounds.Left
	} else if x.Right > bounds.Right {
		x.Left -= x.Right - bounds.Right
		x.Right = bounds.Right
	}
	if x.Height() > bounds.Height() {
		x.Top, x.Bottom = bounds.Top, bounds.Bottom
	} else if x.Bottom < bounds.Bottom {
		x.Top += bounds.Bottom - x.Bottom
		x.Bottom = bounds.Bottom
	} else if x.Top > bounds.Top {
		x.Bottom -= x.Top - bounds.Top
		x.Top = bounds.Top
	}
	return x
}

// Rect is a rectangle in pixel space. Unlike Viewport, y grows downward.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Left:   x,
		Top:    y,
		Right:  x + w,
		Bottom: y + h,
	}
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

func (r Rect) CenterX() float64 {
	return r.Left + r.Width()/2
}

func (r Rect) CenterY() float64 {
	return r.Top + r.Height()/2
}

func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right - dx,
		Bottom: r.Bottom - dy,
	}
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}
