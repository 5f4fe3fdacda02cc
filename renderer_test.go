package livechart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseRenderer_InitDataAttributes(t *testing.T) {
	r := NewBaseRenderer(fakeMetrics{}, nil)
	assert.Equal(t, 8.0, r.LabelMargin())

	r.SelectValue(NewSelection(0, 1))
	require.True(t, r.IsTouched())
	assert.Equal(t, NewSelection(0, 1), r.SelectedValue())

	attrs := LabelAttributes{
		TextSize:        10,
		TextColor:       "#111111",
		BackgroundColor: "#222222",
	}
	r.InitDataAttributes(attrs)
	assert.False(t, r.IsTouched(), "selection should be cleared")

	style := r.Labels().Style()
	assert.Equal(t, 20.0, style.Text.Size)
	assert.Equal(t, "#111111", style.Text.Color)
	assert.Equal(t, DefaultTypeface, style.Text.Typeface)
	assert.Equal(t, 8.0, style.Margin)
	assert.False(t, style.BackgroundEnabled)
	assert.Equal(t, "#222222", style.BackgroundColor)

	attrs.Typeface = "mono"
	r.InitDataAttributes(attrs)
	assert.Equal(t, "mono", r.Labels().Style().Text.Typeface)

	r.SelectValue(NewSelection(2, 0))
	r.ClearTouch()
	assert.False(t, r.IsTouched())
}

func TestColumnRenderer_Viewports(t *testing.T) {
	r := NewColumnRenderer(GenerateDummyData(4), fakeMetrics{})
	assert.Equal(t, NewViewport(-0.5, 4, 3.5, 0), r.MaxViewport())
	assert.Equal(t, r.MaxViewport(), r.CurrentViewport())

	r.SetData(GenerateDummyData(2))
	assert.Equal(t, NewViewport(-0.5, 2, 1.5, 0), r.MaxViewport())
	assert.Equal(t, r.MaxViewport(), r.CurrentViewport())

	r.SetViewportCalculationEnabled(false)
	r.SetData(GenerateDummyData(6))
	assert.Equal(t, NewViewport(-0.5, 2, 1.5, 0), r.MaxViewport(), "max viewport should be left untouched")

	r.SetMaxViewport(nil)
	assert.Equal(t, NewViewport(-0.5, 6, 5.5, 0), r.MaxViewport())
}

func TestColumnRenderer_SetDataClearsSelection(t *testing.T) {
	r := NewColumnRenderer(GenerateDummyData(4), fakeMetrics{})
	r.SelectValue(NewSelection(3, 0))
	require.True(t, r.IsTouched())

	r.SetData(GenerateDummyData(2))
	assert.False(t, r.IsTouched())
}

func baseData() *ColumnData {
	d := NewColumnData(ColumnOf(nil, 10), ColumnOf(nil, 20))
	d.SetBaseValue(15)
	d.SetFillRatio(1)
	return d
}

func TestColumnRenderer_Draw(t *testing.T) {
	var (
		r    = NewColumnRenderer(baseData(), fakeMetrics{})
		area = NewRect(0, 0, 200, 100)
		rec  recorder
	)
	r.Draw(&rec, area)

	want := []fillOp{
		{Rect: Rect{Left: 0, Right: 100, Top: 50, Bottom: 100}, Color: DefaultColor},
		{Rect: Rect{Left: 100, Right: 200, Top: 0, Bottom: 50}, Color: DefaultColor},
	}
	assert.Equal(t, want, rec.fills)
	assert.Empty(t, rec.texts)

	r.SelectValue(NewSelection(1, 0))
	rec = recorder{}
	r.Draw(&rec, area)
	require.Len(t, rec.fills, 2)
	assert.Equal(t, DefaultColor, rec.fills[0].Color)
	assert.Equal(t, DefaultDarkenColor, rec.fills[1].Color)
}

func TestColumnRenderer_DrawGrouped(t *testing.T) {
	var (
		d    = NewColumnData(ColumnOf(nil, 2, 4))
		area = NewRect(0, 0, 100, 40)
		rec  recorder
	)
	d.SetFillRatio(0.5)
	r := NewColumnRenderer(d, fakeMetrics{})
	r.Draw(&rec, area)

	want := []fillOp{
		{Rect: Rect{Left: 25, Right: 49, Top: 20, Bottom: 40}, Color: DefaultColor},
		{Rect: Rect{Left: 51, Right: 75, Top: 0, Bottom: 40}, Color: DefaultColor},
	}
	assert.Equal(t, want, rec.fills)
}

func TestColumnRenderer_DrawStacked(t *testing.T) {
	var (
		d    = NewColumnData(ColumnOf(nil, 1, 2))
		area = NewRect(0, 0, 100, 30)
		rec  recorder
	)
	d.SetStacked(true)
	d.SetFillRatio(0.5)
	r := NewColumnRenderer(d, fakeMetrics{})
	r.Draw(&rec, area)

	want := []fillOp{
		{Rect: Rect{Left: 25, Right: 75, Top: 20, Bottom: 30}, Color: DefaultColor},
		{Rect: Rect{Left: 25, Right: 75, Top: 0, Bottom: 20}, Color: DefaultColor},
	}
	assert.Equal(t, want, rec.fills)
}

func TestColumnRenderer_DrawLabels(t *testing.T) {
	var (
		d    = baseData()
		area = NewRect(0, 0, 200, 100)
		rec  recorder
	)
	for i := 0; i < d.Len(); i++ {
		d.At(i).HasLabels = true
	}
	r := NewColumnRenderer(d, fakeMetrics{})
	r.Draw(&rec, area)

	require.Len(t, rec.texts, 2)
	assert.Equal(t, "10", rec.texts[0].Text)
	assert.Equal(t, "20", rec.texts[1].Text)

	require.Len(t, rec.fills, 4)
	assert.Equal(t, Rect{Left: 36, Right: 64, Top: 66, Bottom: 92}, rec.fills[1].Rect)
	assert.Equal(t, DefaultDarkenColor, rec.fills[1].Color)
	assert.Equal(t, Rect{Left: 136, Right: 164, Top: 8, Bottom: 34}, rec.fills[3].Rect)

	d.SetFlexibleLabelPosition(false)
	rec = recorder{}
	r.Draw(&rec, area)
	require.Len(t, rec.fills, 4)
	assert.Equal(t, Rect{Left: 36, Right: 64, Top: 108, Bottom: 134}, rec.fills[1].Rect)
	assert.Equal(t, Rect{Left: 136, Right: 164, Top: -34, Bottom: -8}, rec.fills[3].Rect)
}

func TestColumnRenderer_DrawSelectedLabel(t *testing.T) {
	var (
		d    = baseData()
		area = NewRect(0, 0, 200, 100)
		rec  recorder
	)
	for i := 0; i < d.Len(); i++ {
		d.At(i).HasLabelsOnlyForSelected = true
	}
	r := NewColumnRenderer(d, fakeMetrics{})
	r.Draw(&rec, area)
	assert.Empty(t, rec.texts)

	r.SelectValue(NewSelection(0, 0))
	r.Draw(&rec, area)
	require.Len(t, rec.texts, 1)
	assert.Equal(t, "10", rec.texts[0].Text)
	assert.Equal(t, DefaultDarkenColor, rec.texts[0].Style.Color)
	assert.Equal(t, DefaultLabelColor, r.Labels().Style().Text.Color)
}

func TestColumnRenderer_DrawIdempotent(t *testing.T) {
	var (
		d    = baseData()
		area = NewRect(0, 0, 200, 100)
	)
	d.At(0).HasLabels = true
	r := NewColumnRenderer(d, fakeMetrics{})

	var fst, snd recorder
	r.Draw(&fst, area)
	r.Draw(&snd, area)
	assert.Equal(t, fst.fills, snd.fills)
	assert.Equal(t, fst.texts, snd.texts)
	assert.Equal(t, 10.0, d.At(0).At(0).Value())
}

func TestColumnRenderer_DrawDegenerate(t *testing.T) {
	area := NewRect(0, 0, 200, 100)
	t.Run("empty", func(t *testing.T) {
		var rec recorder
		NewColumnRenderer(NewColumnData(), fakeMetrics{}).Draw(&rec, area)
		assert.Empty(t, rec.fills)
	})
	t.Run("flat", func(t *testing.T) {
		var rec recorder
		NewColumnRenderer(NewColumnData(ColumnOf(nil, 0)), fakeMetrics{}).Draw(&rec, area)
		require.Len(t, rec.fills, 1)
		r := rec.fills[0].Rect
		for _, f := range []float64{r.Left, r.Right, r.Top, r.Bottom} {
			assert.False(t, math.IsNaN(f) || math.IsInf(f, 0))
		}
	})
}

func TestChart_Draw(t *testing.T) {
	var (
		r  = NewColumnRenderer(baseData(), fakeMetrics{})
		ch = Chart{
			Width:      220,
			Height:     120,
			Background: "#ffffff",
			Padding: Padding{
				Top:    10,
				Right:  10,
				Bottom: 10,
				Left:   10,
			},
			Renderer: r,
		}
		rec recorder
	)
	assert.Equal(t, Rect{Left: 10, Top: 10, Right: 210, Bottom: 110}, ch.Area())

	zoom := NewViewport(0, 20, 1, 10)
	r.SetCurrentViewport(&zoom)
	ch.Draw(&rec)

	require.Len(t, rec.fills, 3)
	assert.Equal(t, fillOp{Rect: NewRect(0, 0, 220, 120), Color: "#ffffff"}, rec.fills[0])
	assert.Equal(t, r.MaxViewport(), r.CurrentViewport(), "current viewport should be reset")
	assert.Equal(t, Rect{Left: 10, Right: 110, Top: 60, Bottom: 110}, rec.fills[1].Rect)
}

func TestChart_DrawTitle(t *testing.T) {
	var (
		rec recorder
		ch  = Chart{
			Title:    "langs",
			Width:    220,
			Height:   120,
			Padding:  Padding{Top: 30, Right: 10, Bottom: 10, Left: 20},
			Renderer: NewColumnRenderer(baseData(), fakeMetrics{}),
		}
	)
	ch.Draw(&rec)
	require.Len(t, rec.texts, 1)
	want := textOp{
		X:    20,
		Y:    9,
		Text: "langs",
		Style: TextStyle{
			Size:     DefaultLabelTextSize,
			Color:    DefaultAxisColor,
			Typeface: DefaultTypeface,
		},
	}
	assert.Equal(t, want, rec.texts[0])

	rec = recorder{}
	ch.Title = ""
	ch.Draw(&rec)
	assert.Empty(t, rec.texts)
}
