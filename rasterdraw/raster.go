// Package rasterdraw implements a livechart.Surface drawing into an image.
package rasterdraw

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/midbel/livechart"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
)

// Faces gives the font face used to draw a text style.
type Faces interface {
	Face(livechart.TextStyle) (font.Face, error)
}

type Surface struct {
	ctx   *gg.Context
	faces Faces
	err   error
}

func New(width, height int, faces Faces) *Surface {
	return &Surface{
		ctx:   gg.NewContext(width, height),
		faces: faces,
	}
}

func (s *Surface) FillRect(r livechart.Rect, color string) {
	s.ctx.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
	s.ctx.SetHexColor(color)
	s.ctx.Fill()
}

func (s *Surface) DrawText(x, y float64, text string, style livechart.TextStyle) {
	face, err := s.faces.Face(style)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return
	}
	s.ctx.SetFontFace(face)
	s.ctx.SetHexColor(style.Color)
	s.ctx.DrawStringAnchored(text, x, y, 0, 1)
}

func (s *Surface) Save() {
	s.ctx.Push()
}

func (s *Surface) Restore() {
	s.ctx.Pop()
}

func (s *Surface) Translate(dx, dy float64) {
	s.ctx.Translate(dx, dy)
}

// Err returns the first error met while drawing.
func (s *Surface) Err() error {
	return s.err
}

func (s *Surface) Image() image.Image {
	return s.ctx.Image()
}

func (s *Surface) Render(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	return errors.Wrap(s.ctx.EncodePNG(w), "png")
}

// RenderChart draws one frame of c and writes it to w as a PNG image.
func RenderChart(w io.Writer, c livechart.Chart, faces Faces) error {
	s := New(int(c.Width), int(c.Height), faces)
	c.Draw(s)
	return s.Render(w)
}
