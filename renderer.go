package livechart

const (
	DefaultLabelMarginDp = 4
	DefaultTypeface      = "bold"
)

// ChartRenderer is implemented by every kind of chart. The frame driver and
// the input handling of the host only talk to a chart through it.
type ChartRenderer interface {
	InitMaxViewport()
	InitCurrentViewport()
	InitDataAttributes()
	Draw(Surface, Rect)

	IsTouched() bool
	ClearTouch()
	SelectValue(Selection)
	SelectedValue() Selection

	MaxViewport() Viewport
	SetMaxViewport(*Viewport)
	CurrentViewport() Viewport
	SetCurrentViewport(*Viewport)
	ViewportCalculationEnabled() bool
	SetViewportCalculationEnabled(bool)
}

// BaseRenderer holds the state shared by all renderers: the viewports, the
// label style and the selected value. It is meant to be embedded.
type BaseRenderer struct {
	computator  *Computator
	metrics     Metrics
	labels      LabelRenderer
	selection   Selection
	labelMargin float64
}

func NewBaseRenderer(metrics Metrics, computator *Computator) BaseRenderer {
	if computator == nil {
		computator = NewComputator(nil)
	}
	r := BaseRenderer{
		computator:  computator,
		metrics:     metrics,
		labelMargin: metrics.DpToPx(DefaultLabelMarginDp),
	}
	r.InitDataAttributes(DefaultLabelAttributes())
	return r
}

// InitDataAttributes rebuilds the label style from attrs. The selection is
// cleared since it may refer to values that no longer exist.
func (r *BaseRenderer) InitDataAttributes(attrs LabelAttributes) {
	face := attrs.Typeface
	if face == "" {
		face = DefaultTypeface
	}
	style := LabelStyle{
		Text: TextStyle{
			Size:     r.metrics.SpToPx(attrs.TextSize),
			Color:    attrs.TextColor,
			Typeface: face,
		},
		Margin:            r.labelMargin,
		BackgroundEnabled: attrs.BackgroundEnabled,
		BackgroundAuto:    attrs.BackgroundAuto,
		BackgroundColor:   attrs.BackgroundColor,
	}
	r.labels = NewLabelRenderer(style, r.metrics)
	r.selection.Clear()
}

func (r *BaseRenderer) Computator() *Computator {
	return r.computator
}

func (r *BaseRenderer) Metrics() Metrics {
	return r.metrics
}

func (r *BaseRenderer) Labels() LabelRenderer {
	return r.labels
}

func (r *BaseRenderer) LabelMargin() float64 {
	return r.labelMargin
}

func (r *BaseRenderer) DrawLabel(s Surface, text string, rect Rect, auto string) {
	r.labels.Draw(s, text, rect, auto)
}

func (r *BaseRenderer) DrawLabelColor(s Surface, text string, rect Rect, auto, color string) {
	r.labels.DrawColor(s, text, rect, auto, color)
}

func (r *BaseRenderer) InitCurrentViewport() {
	r.computator.InitCurrentViewport()
}

func (r *BaseRenderer) MaxViewport() Viewport {
	return r.computator.MaxViewport()
}

func (r *BaseRenderer) SetMaxViewport(v *Viewport) {
	r.computator.SetMaxViewport(v)
}

func (r *BaseRenderer) CurrentViewport() Viewport {
	return r.computator.CurrentViewport()
}

func (r *BaseRenderer) SetCurrentViewport(v *Viewport) {
	r.computator.SetCurrentViewport(v)
}

func (r *BaseRenderer) ViewportCalculationEnabled() bool {
	return r.computator.ViewportCalculationEnabled()
}

func (r *BaseRenderer) SetViewportCalculationEnabled(enabled bool) {
	r.computator.SetViewportCalculationEnabled(enabled)
}

func (r *BaseRenderer) IsTouched() bool {
	return r.selection.IsSet()
}

func (r *BaseRenderer) ClearTouch() {
	r.selection.Clear()
}

func (r *BaseRenderer) SelectValue(s Selection) {
	r.selection.Set(s)
}

func (r *BaseRenderer) SelectedValue() Selection {
	return r.selection
}
