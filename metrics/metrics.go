// Package metrics measures text with the Go fonts and converts density
// independent units to pixels.
package metrics

import (
	"sync"

	"github.com/midbel/livechart"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	Regular = "regular"
	Bold    = "bold"
	Mono    = "mono"

	DefaultTextSize = 12.0
	dpi             = 72
)

type faceKey struct {
	name string
	size float64
}

// Metrics implements livechart.Metrics. Faces are created lazily and cached
// per typeface and size. It is safe for concurrent use but the faces it
// returns are not.
type Metrics struct {
	Density       float64
	ScaledDensity float64

	mu    sync.Mutex
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
	err   error
}

func New(density, scaled float64) (*Metrics, error) {
	if density <= 0 {
		density = 1
	}
	if scaled <= 0 {
		scaled = density
	}
	m := Metrics{
		Density:       density,
		ScaledDensity: scaled,
		fonts:         make(map[string]*opentype.Font),
		faces:         make(map[faceKey]font.Face),
	}
	all := map[string][]byte{
		Regular: goregular.TTF,
		Bold:    gobold.TTF,
		Mono:    gomono.TTF,
	}
	for name, ttf := range all {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s font", name)
		}
		m.fonts[name] = f
	}
	return &m, nil
}

func (m *Metrics) DpToPx(dp float64) float64 {
	return dp * m.Density
}

func (m *Metrics) SpToPx(sp float64) float64 {
	return sp * m.ScaledDensity
}

func (m *Metrics) TextWidth(text string, style livechart.TextStyle) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(style)
	if err != nil {
		m.fail(err)
		return float64(len(text)) * size(style) * 0.6
	}
	return toFloat(font.MeasureString(face, text))
}

func (m *Metrics) TextHeight(text string, style livechart.TextStyle) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(style)
	if err != nil {
		m.fail(err)
		return size(style)
	}
	bounds, _ := font.BoundString(face, text)
	return toFloat(bounds.Max.Y - bounds.Min.Y)
}

// Err returns the first error met while creating a face for TextWidth or
// TextHeight. Measures taken after such an error are estimated from the text
// size.
func (m *Metrics) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *Metrics) fail(err error) {
	if m.err == nil {
		m.err = err
	}
}

// Face returns the font face matching style. Unknown typefaces fall back to
// the regular one.
func (m *Metrics) Face(style livechart.TextStyle) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.face(style)
}

func (m *Metrics) face(style livechart.TextStyle) (font.Face, error) {
	name := style.Typeface
	if _, ok := m.fonts[name]; !ok {
		name = Regular
	}
	ft, ok := m.fonts[name]
	if !ok {
		return nil, errors.Errorf("%s: font not loaded", name)
	}
	key := faceKey{
		name: name,
		size: size(style),
	}
	if f, ok := m.faces[key]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "%s face at size %.1f", name, key.size)
	}
	m.faces[key] = f
	return f, nil
}

func size(style livechart.TextStyle) float64 {
	if style.Size <= 0 {
		return DefaultTextSize
	}
	return style.Size
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
