// Package svgdraw implements a livechart.Surface producing SVG documents.
package svgdraw

import (
	"bufio"
	"io"

	"github.com/midbel/livechart"
	"github.com/midbel/svg"
	"github.com/pkg/errors"
)

type offset struct {
	X float64
	Y float64
}

// Surface records the drawing commands of a renderer as SVG elements.
type Surface struct {
	Width  float64
	Height float64

	elements []svg.Element
	current  offset
	stack    []offset
}

func New(width, height float64) *Surface {
	return &Surface{
		Width:  width,
		Height: height,
	}
}

func (s *Surface) FillRect(r livechart.Rect, color string) {
	var el svg.Rect
	el.Pos = svg.NewPos(r.Left+s.current.X, r.Top+s.current.Y)
	el.Dim = svg.NewDim(r.Width(), r.Height())
	el.Fill = svg.NewFill(color)
	s.elements = append(s.elements, el.AsElement())
}

func (s *Surface) DrawText(x, y float64, text string, style livechart.TextStyle) {
	txt := svg.NewText(text)
	txt.Pos = svg.NewPos(x+s.current.X, y+s.current.Y)
	txt.Font = svg.NewFont(style.Size)
	txt.Anchor = "start"
	txt.Baseline = "hanging"

	var g svg.Group
	g.Class = []string{"label"}
	if style.Typeface != "" {
		g.Class = append(g.Class, style.Typeface)
	}
	g.Fill = svg.NewFill(style.Color)
	g.Append(txt.AsElement())
	s.elements = append(s.elements, g.AsElement())
}

func (s *Surface) Save() {
	s.stack = append(s.stack, s.current)
}

func (s *Surface) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.current = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

func (s *Surface) Translate(dx, dy float64) {
	s.current.X += dx
	s.current.Y += dy
}

// Len returns the number of elements drawn so far.
func (s *Surface) Len() int {
	return len(s.elements)
}

// Reset removes every element drawn so far.
func (s *Surface) Reset() {
	s.elements = s.elements[:0]
	s.current = offset{}
	s.stack = s.stack[:0]
}

func (s *Surface) Render(w io.Writer) error {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(s.Width, s.Height)
	el.OmitProlog = true
	for _, e := range s.elements {
		el.Append(e)
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return errors.Wrap(bw.Flush(), "svg")
}

// RenderChart draws one frame of c and writes it to w.
func RenderChart(w io.Writer, c livechart.Chart) error {
	s := New(c.Width, c.Height)
	c.Draw(s)
	return s.Render(w)
}
