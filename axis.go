package livechart

const (
	DefaultTicks     = 5
	DefaultAxisColor = "#000000"
	DefaultGridColor = "#e0e0e0"

	tickSizeDp = 4
	tickGapDp  = 2
)

type Orientation int

const (
	OrientLeft Orientation = iota
	OrientRight
)

// ValueAxis draws the scale of the values along a vertical side of the
// drawing area.
type ValueAxis struct {
	Orientation
	Ticks          int
	Format         LabelFormat
	Text           TextStyle
	Color          string
	GridColor      string
	WithOuterTicks bool

	Metrics Metrics
}

// Values returns the values of the ticks of v, from bottom to top.
func (a ValueAxis) Values(v Viewport) []float64 {
	count := a.Ticks
	if count <= 0 {
		count = DefaultTicks
	}
	if v.Height() == 0 {
		return []float64{v.Bottom}
	}
	var (
		all  = make([]float64, 0, count+1)
		step = v.Height() / float64(count)
	)
	for i := 0; i < count; i++ {
		all = append(all, v.Bottom+float64(i)*step)
	}
	return append(all, v.Top)
}

func (a ValueAxis) Draw(s Surface, area Rect, v Viewport) {
	var (
		comp  = NewComputator(nil)
		color = a.Color
		grid  = a.GridColor
		size  = a.dpToPx(tickSizeDp)
		gap   = a.dpToPx(tickGapDp)
		line  = area.Left - 1
	)
	comp.SetMaxViewport(&v)
	comp.InitCurrentViewport()
	if color == "" {
		color = DefaultAxisColor
	}
	if grid == "" {
		grid = DefaultGridColor
	}
	if a.Orientation == OrientRight {
		line = area.Right
	}
	s.FillRect(NewRect(line, area.Top, 1, area.Height()), color)
	for _, t := range a.Values(v) {
		var (
			y   = comp.ComputeY(area, t)
			str = a.Format.Format(t, "")
			w   = a.textWidth(str)
			h   = a.textHeight(str)
		)
		if a.WithOuterTicks {
			s.FillRect(NewRect(area.Left, y, area.Width(), 1), grid)
		}
		if a.Orientation == OrientRight {
			s.FillRect(NewRect(line+1, y, size, 1), color)
			s.DrawText(line+1+size+gap, y-h/2, str, a.Text)
			continue
		}
		s.FillRect(NewRect(line-size, y, size, 1), color)
		s.DrawText(line-size-gap-w, y-h/2, str, a.Text)
	}
}

func (a ValueAxis) dpToPx(dp float64) float64 {
	if a.Metrics == nil {
		return dp
	}
	return a.Metrics.DpToPx(dp)
}

func (a ValueAxis) textWidth(str string) float64 {
	if a.Metrics == nil {
		return 0
	}
	return a.Metrics.TextWidth(str, a.Text)
}

func (a ValueAxis) textHeight(str string) float64 {
	if a.Metrics == nil {
		return 0
	}
	return a.Metrics.TextHeight(str, a.Text)
}
