package livechart

// BoundsFunc computes the maximum viewport from the current chart data.
type BoundsFunc func() Viewport

// Computator holds the maximum and current viewports of a chart and maps data
// coordinates to pixels. Pixel bounds are given on each call since the
// drawing surface can be resized between two frames.
type Computator struct {
	current Viewport
	maximum Viewport
	bounds  BoundsFunc
	manual  bool
}

func NewComputator(bounds BoundsFunc) *Computator {
	return &Computator{
		bounds: bounds,
	}
}

// InitMaxViewport recomputes the maximum viewport with the bounds policy of
// the computator.
func (c *Computator) InitMaxViewport() {
	if c.bounds == nil {
		return
	}
	c.maximum = c.bounds()
}

func (c *Computator) SetMaxViewport(v *Viewport) {
	if v == nil {
		c.InitMaxViewport()
		return
	}
	c.maximum = NewViewport(v.Left, v.Top, v.Right, v.Bottom)
}

func (c *Computator) MaxViewport() Viewport {
	return c.maximum
}

// InitCurrentViewport resets the current viewport to the maximum one when
// viewport calculation is enabled. Otherwise the current viewport is left
// untouched.
func (c *Computator) InitCurrentViewport() {
	if c.manual {
		return
	}
	c.current = c.maximum
}

func (c *Computator) SetCurrentViewport(v *Viewport) {
	if v == nil {
		c.InitCurrentViewport()
		return
	}
	x := NewViewport(v.Left, v.Top, v.Right, v.Bottom)
	if !c.maximum.Empty() {
		x = x.Constrain(c.maximum)
	}
	c.current = x
}

func (c *Computator) CurrentViewport() Viewport {
	return c.current
}

func (c *Computator) ViewportCalculationEnabled() bool {
	return !c.manual
}

func (c *Computator) SetViewportCalculationEnabled(enabled bool) {
	c.manual = !enabled
}

// ComputeX returns the pixel abscissa of x inside area.
func (c *Computator) ComputeX(area Rect, x float64) float64 {
	w := c.current.Width()
	if w == 0 {
		return area.CenterX()
	}
	return area.Left + (x-c.current.Left)*(area.Width()/w)
}

// ComputeY returns the pixel ordinate of y inside area.
func (c *Computator) ComputeY(area Rect, y float64) float64 {
	h := c.current.Height()
	if h == 0 {
		return area.CenterY()
	}
	return area.Bottom - (y-c.current.Bottom)*(area.Height()/h)
}

func (c *Computator) RawDistanceX(area Rect, d float64) float64 {
	w := c.current.Width()
	if w == 0 {
		return 0
	}
	return d * (area.Width() / w)
}

func (c *Computator) RawDistanceY(area Rect, d float64) float64 {
	h := c.current.Height()
	if h == 0 {
		return 0
	}
	return d * (area.Height() / h)
}

// ValueAt maps a pixel position back to data space. It reports false when the
// position is outside area or when one of the rectangles has no extent.
func (c *Computator) ValueAt(area Rect, px, py float64) (float64, float64, bool) {
	if !area.Contains(px, py) || area.Width() == 0 || area.Height() == 0 {
		return 0, 0, false
	}
	var (
		x = c.current.Left + (px-area.Left)*(c.current.Width()/area.Width())
		y = c.current.Bottom + (area.Bottom-py)*(c.current.Height()/area.Height())
	)
	return x, y, true
}
