package livechart

import (
	"fmt"
	"strconv"
	"strings"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func (p Palette) Color(i int) string {
	if len(p) == 0 {
		return DefaultColor
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

const (
	DefaultColor       = "#33b5e5"
	DefaultDarkenColor = "#0099cc"
	DefaultLabelColor  = "#ffffff"

	darkenFactor = 0.7
)

// Darken returns a darker version of a "#rrggbb" color. Colors that can not be
// parsed are returned as is.
func Darken(color string) string {
	str := strings.TrimPrefix(color, "#")
	if len(str) != 6 || str == color {
		return color
	}
	rgb, err := strconv.ParseUint(str, 16, 32)
	if err != nil {
		return color
	}
	var (
		r = float64((rgb >> 16) & 0xff)
		g = float64((rgb >> 8) & 0xff)
		b = float64(rgb & 0xff)
	)
	return fmt.Sprintf("#%02x%02x%02x", int(r*darkenFactor), int(g*darkenFactor), int(b*darkenFactor))
}
