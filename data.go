package livechart

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

const (
	DefaultFillRatio = 0.75
	DefaultBaseValue = 0.0

	DefaultLabelTextSize = 12
)

// LabelAttributes are the value label settings carried by chart data. Sizes
// are given in scale independent pixels.
type LabelAttributes struct {
	TextSize          float64
	TextColor         string
	Typeface          string
	BackgroundEnabled bool
	BackgroundAuto    bool
	BackgroundColor   string
}

func DefaultLabelAttributes() LabelAttributes {
	return LabelAttributes{
		TextSize:          DefaultLabelTextSize,
		TextColor:         DefaultLabelColor,
		BackgroundEnabled: true,
		BackgroundAuto:    true,
		BackgroundColor:   DefaultDarkenColor,
	}
}

// ColumnData is the model of a column chart.
type ColumnData struct {
	Labels LabelAttributes

	columns   []Column
	stacked   bool
	fillRatio float64
	baseValue float64
	flexible  bool
}

func NewColumnData(columns ...Column) *ColumnData {
	d := ColumnData{
		Labels:    DefaultLabelAttributes(),
		fillRatio: DefaultFillRatio,
		baseValue: DefaultBaseValue,
		flexible:  true,
	}
	d.SetColumns(columns)
	return &d
}

// GenerateDummyData returns n columns with one value each, the value being
// the position of the column starting at 1.
func GenerateDummyData(n int) *ColumnData {
	if n < 0 {
		n = 0
	}
	cs := make([]Column, 0, n)
	for i := 1; i <= n; i++ {
		cs = append(cs, NewColumn(NewValue(float64(i))))
	}
	return NewColumnData(cs...)
}

// Copy returns a deep copy of d. No column nor value is shared between d and
// the returned data.
func (d *ColumnData) Copy() *ColumnData {
	x := *d
	x.columns = make([]Column, len(d.columns))
	for i := range d.columns {
		x.columns[i] = d.columns[i].Copy()
	}
	return &x
}

func (d *ColumnData) Columns() []Column {
	return d.columns
}

func (d *ColumnData) SetColumns(columns []Column) {
	if columns == nil {
		columns = []Column{}
	}
	d.columns = columns
}

func (d *ColumnData) Len() int {
	return len(d.columns)
}

func (d *ColumnData) At(i int) *Column {
	return &d.columns[i]
}

func (d *ColumnData) IsStacked() bool {
	return d.stacked
}

func (d *ColumnData) SetStacked(stacked bool) {
	d.stacked = stacked
}

func (d *ColumnData) FillRatio() float64 {
	return d.fillRatio
}

func (d *ColumnData) SetFillRatio(ratio float64) {
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	d.fillRatio = ratio
}

func (d *ColumnData) BaseValue() float64 {
	return d.baseValue
}

// SetBaseValue sets the value below which values are drawn as negative.
func (d *ColumnData) SetBaseValue(base float64) {
	d.baseValue = base
}

func (d *ColumnData) IsBelowBase(v float64) bool {
	return v < d.baseValue
}

func (d *ColumnData) IsFlexibleLabelPosition() bool {
	return d.flexible
}

func (d *ColumnData) SetFlexibleLabelPosition(flexible bool) {
	d.flexible = flexible
}

func (d *ColumnData) Update(scale float64) {
	for i := range d.columns {
		d.columns[i].Update(scale)
	}
}

func (d *ColumnData) Finish() {
	for i := range d.columns {
		d.columns[i].Finish()
	}
}

// Bounds computes the viewport enclosing every column of d. Each column owns
// a slot of width 1 centered on its index.
func (d *ColumnData) Bounds() Viewport {
	var (
		n  = float64(len(d.columns))
		vs = []float64{d.baseValue}
	)
	for _, c := range d.columns {
		if d.stacked {
			pos, neg := d.stack(c)
			vs = append(vs, pos, neg)
			continue
		}
		for _, v := range c.values {
			vs = append(vs, v.value)
		}
	}
	bottom, top := stats.Bounds(vs)
	return NewViewport(-0.5, top, n-0.5, bottom)
}

func (d *ColumnData) stack(c Column) (float64, float64) {
	pos, neg := d.baseValue, d.baseValue
	for _, v := range c.values {
		delta := v.value - d.baseValue
		if delta >= 0 {
			pos += delta
		} else {
			neg += delta
		}
	}
	return pos, neg
}
