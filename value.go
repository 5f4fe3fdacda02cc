package livechart

import (
	"strconv"
	"strings"
)

// LabelFormat describes how the value of a Value is turned into a label
// when no explicit label is given.
type LabelFormat struct {
	Decimals  int
	Separator string
	Prefix    string
	Suffix    string
}

func (f LabelFormat) Format(v float64, label string) string {
	if label != "" {
		return label
	}
	str := strconv.FormatFloat(v, 'f', f.Decimals, 64)
	if f.Separator != "" && f.Decimals > 0 {
		str = strings.Replace(str, ".", f.Separator, 1)
	}
	return f.Prefix + str + f.Suffix
}

type labelCache struct {
	valid  bool
	value  float64
	label  string
	format LabelFormat
	text   string
}

// Value is a single datum of a Column. The current value moves from an origin
// to a target while an animation is running.
type Value struct {
	value  float64
	origin float64
	diff   float64

	label  string
	color  string
	darken string

	cache labelCache
}

func NewValue(v float64) Value {
	x := Value{
		color:  DefaultColor,
		darken: DefaultDarkenColor,
	}
	x.SetValue(v)
	return x
}

func (v *Value) Value() float64 {
	return v.value
}

// SetValue sets the value and ends any pending transition.
func (v *Value) SetValue(f float64) {
	v.value = f
	v.origin = f
	v.diff = 0
}

// SetTarget starts a transition from the current value to f.
func (v *Value) SetTarget(f float64) {
	v.origin = v.value
	v.diff = f - v.origin
}

func (v *Value) Target() float64 {
	return v.origin + v.diff
}

func (v *Value) Update(scale float64) {
	v.value = v.origin + v.diff*scale
}

func (v *Value) Finish() {
	v.SetValue(v.Target())
}

func (v *Value) Label() string {
	return v.label
}

func (v *Value) SetLabel(label string) {
	v.label = label
}

func (v *Value) Color() string {
	return v.color
}

func (v *Value) DarkenColor() string {
	return v.darken
}

func (v *Value) SetColor(color string) {
	v.color = color
	v.darken = Darken(color)
}

// FormattedLabel returns the text displayed for v. The text is only formatted
// again when the value, the label or the format changed since the last call.
func (v *Value) FormattedLabel(f LabelFormat) string {
	c := &v.cache
	if c.valid && c.value == v.value && c.label == v.label && c.format == f {
		return c.text
	}
	c.valid = true
	c.value = v.value
	c.label = v.label
	c.format = f
	c.text = f.Format(v.value, v.label)
	return c.text
}

type Column struct {
	HasLabels                bool
	HasLabelsOnlyForSelected bool
	Format                   LabelFormat

	values []Value
}

func NewColumn(values ...Value) Column {
	var c Column
	c.SetValues(values)
	return c
}

// ColumnOf builds a Column from raw numbers, coloring each value with the
// given palette.
func ColumnOf(p Palette, values ...float64) Column {
	vs := make([]Value, len(values))
	for i := range values {
		vs[i] = NewValue(values[i])
		if len(p) > 0 {
			vs[i].SetColor(p.Color(i))
		}
	}
	return NewColumn(vs...)
}

func (c *Column) Values() []Value {
	return c.values
}

func (c *Column) SetValues(values []Value) {
	if values == nil {
		values = []Value{}
	}
	c.values = values
}

func (c *Column) Len() int {
	return len(c.values)
}

func (c *Column) At(i int) *Value {
	return &c.values[i]
}

func (c *Column) Update(scale float64) {
	for i := range c.values {
		c.values[i].Update(scale)
	}
}

func (c *Column) Finish() {
	for i := range c.values {
		c.values[i].Finish()
	}
}

func (c Column) Copy() Column {
	x := c
	x.values = make([]Value, len(c.values))
	copy(x.values, c.values)
	return x
}
