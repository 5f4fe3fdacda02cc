package livechart

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Chart binds a renderer to a pixel size.
type Chart struct {
	Title      string
	TitleStyle TextStyle
	Width      float64
	Height     float64
	Background string

	Padding

	Renderer ChartRenderer
	Axis     *ValueAxis
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Area returns the pixel rectangle where the renderer draws its values.
func (c Chart) Area() Rect {
	return NewRect(c.Padding.Left, c.Padding.Top, c.DrawingWidth(), c.DrawingHeight())
}

// Draw draws one frame of the chart on s.
func (c Chart) Draw(s Surface) {
	if c.Background != "" {
		s.FillRect(NewRect(0, 0, c.Width, c.Height), c.Background)
	}
	if c.Title != "" {
		c.drawTitle(s)
	}
	if c.Renderer == nil {
		return
	}
	c.Renderer.InitCurrentViewport()
	c.Renderer.Draw(s, c.Area())
	if c.Axis != nil {
		c.Axis.Draw(s, c.Area(), c.Renderer.CurrentViewport())
	}
}

// drawTitle draws the title left aligned with the drawing area and centered
// in the top padding.
func (c Chart) drawTitle(s Surface) {
	style := c.TitleStyle
	if style.Size <= 0 {
		style.Size = DefaultLabelTextSize
	}
	if style.Color == "" {
		style.Color = DefaultAxisColor
	}
	if style.Typeface == "" {
		style.Typeface = DefaultTypeface
	}
	y := (c.Padding.Top - style.Size) / 2
	if y < 0 {
		y = 0
	}
	s.DrawText(c.Padding.Left, y, c.Title, style)
}
