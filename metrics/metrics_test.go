package metrics

import (
	"testing"

	"github.com/midbel/livechart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

func TestMetrics_Units(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 8.0, m.DpToPx(4))
	assert.Equal(t, 12.0, m.SpToPx(4))

	m, err = New(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, m.DpToPx(4))
	assert.Equal(t, 4.0, m.SpToPx(4))
}

func TestMetrics_Text(t *testing.T) {
	m, err := New(1, 1)
	require.NoError(t, err)

	var (
		small = livechart.TextStyle{Size: 12, Typeface: Bold}
		large = livechart.TextStyle{Size: 24, Typeface: Bold}
	)
	assert.Equal(t, 0.0, m.TextWidth("", small))
	assert.Greater(t, m.TextWidth("hello", small), 0.0)
	assert.Greater(t, m.TextWidth("hello world", small), m.TextWidth("hello", small))
	assert.Greater(t, m.TextWidth("hello", large), m.TextWidth("hello", small))

	height := m.TextHeight("Hx", small)
	assert.Greater(t, height, 0.0)
	assert.LessOrEqual(t, height, 2*small.Size)
	assert.Greater(t, m.TextHeight("Hx", large), height)
}

func TestMetrics_Face(t *testing.T) {
	m, err := New(1, 1)
	require.NoError(t, err)

	fst, err := m.Face(livechart.TextStyle{Size: 12, Typeface: "unknown"})
	require.NoError(t, err)
	snd, err := m.Face(livechart.TextStyle{Size: 12, Typeface: Regular})
	require.NoError(t, err)
	assert.Same(t, fst, snd)

	_, err = m.Face(livechart.TextStyle{Typeface: Mono})
	require.NoError(t, err)
}

func TestMetrics_Fallback(t *testing.T) {
	m := Metrics{
		Density:       1,
		ScaledDensity: 1,
		fonts:         make(map[string]*opentype.Font),
		faces:         make(map[faceKey]font.Face),
	}
	style := livechart.TextStyle{Size: 10}
	assert.InDelta(t, 30.0, m.TextWidth("hello", style), 1e-9)
	assert.Equal(t, 10.0, m.TextHeight("hello", style))
	require.Error(t, m.Err())

	_, err := m.Face(style)
	assert.Error(t, err)

	ok, err := New(1, 1)
	require.NoError(t, err)
	ok.TextWidth("hello", style)
	assert.NoError(t, ok.Err())
}
