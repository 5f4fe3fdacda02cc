package livechart

// Selection identifies the highlighted value of a chart. The zero value is
// an empty selection.
type Selection struct {
	column int
	value  int
	set    bool
}

// NewSelection returns a selection of the value at index v in the column at
// index c. Negative indices give an empty selection.
func NewSelection(c, v int) Selection {
	var s Selection
	if c >= 0 && v >= 0 {
		s.column = c
		s.value = v
		s.set = true
	}
	return s
}

func (s *Selection) Set(other Selection) {
	*s = other
}

func (s *Selection) Clear() {
	*s = Selection{}
}

func (s Selection) IsSet() bool {
	return s.set
}

func (s Selection) Column() int {
	return s.column
}

func (s Selection) Value() int {
	return s.value
}

func (s Selection) Is(c, v int) bool {
	return s.set && s.column == c && s.value == v
}
