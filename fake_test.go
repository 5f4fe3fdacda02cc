package livechart

const (
	fakeCharWidth  = 6
	fakeTextHeight = 10
	fakeDensity    = 2
)

type fakeMetrics struct{}

func (fakeMetrics) DpToPx(dp float64) float64 {
	return dp * fakeDensity
}

func (fakeMetrics) SpToPx(sp float64) float64 {
	return sp * fakeDensity
}

func (fakeMetrics) TextWidth(str string, _ TextStyle) float64 {
	return float64(len(str) * fakeCharWidth)
}

func (fakeMetrics) TextHeight(str string, _ TextStyle) float64 {
	if str == "" {
		return 0
	}
	return fakeTextHeight
}

type fillOp struct {
	Rect  Rect
	Color string
}

type textOp struct {
	X     float64
	Y     float64
	Text  string
	Style TextStyle
}

// recorder is a Surface keeping every call with absolute coordinates.
type recorder struct {
	fills []fillOp
	texts []textOp

	dx    float64
	dy    float64
	stack [][2]float64
	saves int
}

func (r *recorder) FillRect(rect Rect, color string) {
	rect.Left += r.dx
	rect.Right += r.dx
	rect.Top += r.dy
	rect.Bottom += r.dy
	r.fills = append(r.fills, fillOp{Rect: rect, Color: color})
}

func (r *recorder) DrawText(x, y float64, text string, style TextStyle) {
	r.texts = append(r.texts, textOp{X: x + r.dx, Y: y + r.dy, Text: text, Style: style})
}

func (r *recorder) Save() {
	r.saves++
	r.stack = append(r.stack, [2]float64{r.dx, r.dy})
}

func (r *recorder) Restore() {
	n := len(r.stack)
	r.dx, r.dy = r.stack[n-1][0], r.stack[n-1][1]
	r.stack = r.stack[:n-1]
}

func (r *recorder) Translate(dx, dy float64) {
	r.dx += dx
	r.dy += dy
}
