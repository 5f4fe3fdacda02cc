package livechart

import (
	"math"
)

const (
	minColumnWidthDp   = 2
	subcolumnSpacingDp = 1
)

// ColumnRenderer draws a ColumnData. Each column gets a slot of width 1 in
// data space, the bar covering FillRatio of it.
type ColumnRenderer struct {
	BaseRenderer
	data *ColumnData
}

func NewColumnRenderer(data *ColumnData, metrics Metrics) *ColumnRenderer {
	r := ColumnRenderer{
		data: data,
	}
	if r.data == nil {
		r.data = NewColumnData()
	}
	r.BaseRenderer = NewBaseRenderer(metrics, NewComputator(r.bounds))
	r.InitDataAttributes()
	r.InitMaxViewport()
	r.InitCurrentViewport()
	return &r
}

func (r *ColumnRenderer) Data() *ColumnData {
	return r.data
}

// SetData replaces the data of the renderer and recomputes its viewports.
func (r *ColumnRenderer) SetData(data *ColumnData) {
	if data == nil {
		data = NewColumnData()
	}
	r.data = data
	r.InitDataAttributes()
	r.InitMaxViewport()
	r.InitCurrentViewport()
}

func (r *ColumnRenderer) InitDataAttributes() {
	r.BaseRenderer.InitDataAttributes(r.data.Labels)
}

func (r *ColumnRenderer) InitMaxViewport() {
	if !r.ViewportCalculationEnabled() {
		return
	}
	r.computator.InitMaxViewport()
}

func (r *ColumnRenderer) bounds() Viewport {
	return r.data.Bounds()
}

func (r *ColumnRenderer) Draw(s Surface, area Rect) {
	var (
		slot  = r.computator.RawDistanceX(area, 1)
		width = math.Max(slot*r.data.FillRatio(), r.metrics.DpToPx(minColumnWidthDp))
	)
	for i := range r.data.columns {
		col := &r.data.columns[i]
		if col.Len() == 0 {
			continue
		}
		var (
			x    = r.computator.ComputeX(area, float64(i))
			bars []Rect
		)
		if r.data.IsStacked() {
			bars = r.stackedBars(area, col, x, width)
		} else {
			bars = r.groupedBars(area, col, x, width)
		}
		for j, b := range bars {
			v := col.At(j)
			color := v.Color()
			if r.selection.Is(i, j) {
				color = v.DarkenColor()
			}
			s.FillRect(b, color)
		}
		for j, b := range bars {
			r.drawValueLabel(s, area, i, j, b)
		}
	}
}

func (r *ColumnRenderer) groupedBars(area Rect, col *Column, x, width float64) []Rect {
	var (
		count   = float64(col.Len())
		spacing = r.metrics.DpToPx(subcolumnSpacingDp)
		sub     = math.Max((width-spacing*(count-1))/count, 1)
		left    = x - width/2
		base    = r.computator.ComputeY(area, r.data.BaseValue())
		bars    = make([]Rect, 0, col.Len())
	)
	for j, v := range col.Values() {
		var (
			y    = r.computator.ComputeY(area, v.value)
			from = left + float64(j)*(sub+spacing)
		)
		bars = append(bars, Rect{
			Left:   from,
			Right:  from + sub,
			Top:    math.Min(y, base),
			Bottom: math.Max(y, base),
		})
	}
	return bars
}

func (r *ColumnRenderer) stackedBars(area Rect, col *Column, x, width float64) []Rect {
	var (
		base = r.data.BaseValue()
		pos  = base
		neg  = base
		bars = make([]Rect, 0, col.Len())
	)
	for _, v := range col.Values() {
		var (
			delta = v.value - base
			from  float64
			to    float64
		)
		if delta >= 0 {
			from, pos = pos, pos+delta
			to = pos
		} else {
			from, neg = neg, neg+delta
			to = neg
		}
		var (
			y1 = r.computator.ComputeY(area, from)
			y2 = r.computator.ComputeY(area, to)
		)
		bars = append(bars, Rect{
			Left:   x - width/2,
			Right:  x + width/2,
			Top:    math.Min(y1, y2),
			Bottom: math.Max(y1, y2),
		})
	}
	return bars
}

func (r *ColumnRenderer) drawValueLabel(s Surface, area Rect, i, j int, bar Rect) {
	var (
		col      = &r.data.columns[i]
		val      = col.At(j)
		selected = r.selection.Is(i, j)
	)
	if !col.HasLabels && !(col.HasLabelsOnlyForSelected && selected) {
		return
	}
	var (
		text   = val.FormattedLabel(col.Format)
		style  = r.labels.Style()
		width  = r.metrics.TextWidth(text, style.Text) + 2*r.labelMargin
		height = r.metrics.TextHeight(text, style.Text) + 2*r.labelMargin
		rect   = Rect{
			Left:  bar.CenterX() - width/2,
			Right: bar.CenterX() + width/2,
		}
	)
	switch {
	case r.data.IsStacked():
		rect.Top = bar.CenterY() - height/2
	case r.data.IsBelowBase(val.value):
		rect.Top = bar.Bottom + r.labelMargin
		if r.data.IsFlexibleLabelPosition() && rect.Top+height > area.Bottom {
			rect.Top = bar.Bottom - r.labelMargin - height
		}
	default:
		rect.Top = bar.Top - r.labelMargin - height
		if r.data.IsFlexibleLabelPosition() && rect.Top < area.Top {
			rect.Top = bar.Top + r.labelMargin
		}
	}
	rect.Bottom = rect.Top + height

	if selected {
		r.DrawLabelColor(s, text, rect, val.Color(), val.DarkenColor())
		return
	}
	r.DrawLabel(s, text, rect, val.DarkenColor())
}
