package livechart

// TextStyle describes how a line of text is drawn. Size is in pixels.
type TextStyle struct {
	Size     float64
	Color    string
	Typeface string
}

// Surface is the drawing target of a renderer.
type Surface interface {
	FillRect(Rect, string)
	// DrawText draws a single line of text. x is the left edge and y the top
	// of the line.
	DrawText(x, y float64, text string, style TextStyle)
	Save()
	Restore()
	Translate(dx, dy float64)
}

// Metrics converts device independent units to pixels and measures text.
type Metrics interface {
	DpToPx(float64) float64
	SpToPx(float64) float64
	TextWidth(string, TextStyle) float64
	TextHeight(string, TextStyle) float64
}
