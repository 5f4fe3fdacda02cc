package livechart

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidArgument = errors.New("invalid argument")

// LabelStyle is the configuration of a LabelRenderer. It is copied by value
// on every draw.
type LabelStyle struct {
	Text              TextStyle
	Margin            float64
	BackgroundEnabled bool
	BackgroundAuto    bool
	BackgroundColor   string
}

// LabelRenderer draws value labels and their background.
type LabelRenderer struct {
	style   LabelStyle
	metrics Metrics
}

func NewLabelRenderer(style LabelStyle, metrics Metrics) LabelRenderer {
	return LabelRenderer{
		style:   style,
		metrics: metrics,
	}
}

func (r LabelRenderer) Style() LabelStyle {
	return r.style
}

// Draw draws text centered in rect with the text color of the style. auto is
// the background color used when automatic background coloring is enabled.
func (r LabelRenderer) Draw(s Surface, text string, rect Rect, auto string) {
	r.DrawColor(s, text, rect, auto, r.style.Text.Color)
}

// DrawColor is like Draw but the text is drawn with color.
func (r LabelRenderer) DrawColor(s Surface, text string, rect Rect, auto, color string) {
	style := r.style.Text
	style.Color = color

	if r.style.BackgroundEnabled {
		bg := r.style.BackgroundColor
		if r.style.BackgroundAuto && auto != "" {
			bg = auto
		}
		s.FillRect(rect, bg)
	}
	var (
		width  = rect.Width() - 2*r.style.Margin
		lines  = r.Wrap(text, style, width)
		height = r.metrics.TextHeight(text, style)
		top    = rect.CenterY() - (float64(len(lines))*height)/2
	)
	if len(lines) == 0 {
		return
	}
	s.Save()
	defer s.Restore()

	s.Translate(rect.Left+r.style.Margin, top)
	for i, str := range lines {
		x := (width - r.metrics.TextWidth(str, style)) / 2
		s.DrawText(x, float64(i)*height, str, style)
	}
}

// DrawChars draws the last n characters of buf.
func (r LabelRenderer) DrawChars(s Surface, buf []rune, n int, rect Rect, auto string) error {
	if n < 0 || n > len(buf) {
		return errors.Wrapf(ErrInvalidArgument, "%d characters requested from a buffer of %d", n, len(buf))
	}
	r.Draw(s, string(buf[len(buf)-n:]), rect, auto)
	return nil
}

// Wrap splits text into lines no wider than width. A word wider than width
// is put alone on its line.
func (r LabelRenderer) Wrap(text string, style TextStyle, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var line string
		for _, w := range strings.Fields(para) {
			if line == "" {
				line = w
				continue
			}
			next := line + " " + w
			if r.metrics.TextWidth(next, style) <= width {
				line = next
				continue
			}
			lines = append(lines, line)
			line = w
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
