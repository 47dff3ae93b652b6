package logomark

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// NamedColor is a circle color with the label used to pick it.
type NamedColor struct {
	Name string
	RGB  color.NRGBA
}

func rgb(r, g, b uint8) color.NRGBA { return color.NRGBA{r, g, b, 0xff} }

// Palette is the fixed set of named circle colors.
// The order is the order used when every color is requested.
var Palette = []NamedColor{
	{"white", rgb(255, 255, 255)},
	{"black", rgb(0, 0, 0)},
	{"magenta", rgb(236, 0, 140)},
	{"orange", rgb(244, 123, 32)},
	{"green", rgb(122, 193, 67)},
	{"cyan", rgb(0, 174, 239)},
	{"purple", rgb(46, 49, 146)},
}

// ErrInvalidColor is returned for color settings that are neither a
// palette name nor a color literal.
var ErrInvalidColor = errors.New("wrong color format: palette color name or #rrggbb hexadecimal format expected")

// ColorChoice is a parsed color setting: one color, a random palette
// color per image, or the whole palette.
type ColorChoice struct {
	mode  selection
	color NamedColor
}

// ColorOf returns a choice of exactly one color.
func ColorOf(c NamedColor) ColorChoice { return ColorChoice{color: c} }

// RandomColor picks a random palette color each time it is resolved.
var RandomColor = ColorChoice{mode: selectRandom}

// AllColors resolves to the whole palette.
var AllColors = ColorChoice{mode: selectAll}

// ParseColor parses a color setting. Besides "random", "all" and the
// palette names, it accepts #rgb and #rrggbb literals and CSS color names.
func ParseColor(s string) (ColorChoice, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "random":
		return RandomColor, nil
	case "all":
		return AllColors, nil
	}
	for _, c := range Palette {
		if c.Name == name {
			return ColorOf(c), nil
		}
	}
	if c, ok := colornames.Map[name]; ok {
		return ColorOf(NamedColor{name, rgb(c.R, c.G, c.B)}), nil
	}
	c, err := parseHex(name)
	if err != nil {
		return ColorChoice{}, err
	}
	return ColorOf(NamedColor{s, c}), nil
}

func parseHex(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, ErrInvalidColor
	}
	s = s[1:]
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.NRGBA{}, ErrInvalidColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, ErrInvalidColor
	}
	return rgb(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Resolve expands the choice into the colors to render. Random choices
// are drawn again on every call.
func (c ColorChoice) Resolve() []NamedColor {
	switch c.mode {
	case selectRandom:
		return []NamedColor{Palette[rand.N(len(Palette))]}
	case selectAll:
		return append([]NamedColor(nil), Palette...)
	default:
		return []NamedColor{c.color}
	}
}

func (c ColorChoice) String() string {
	switch c.mode {
	case selectRandom:
		return "random"
	case selectAll:
		return "all"
	default:
		return c.color.Name
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c ColorChoice) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ColorChoice) UnmarshalText(text []byte) error {
	choice, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = choice
	return nil
}

// ResolveColors parses and resolves a color setting in one step.
func ResolveColors(setting string) ([]NamedColor, error) {
	c, err := ParseColor(setting)
	if err != nil {
		return nil, err
	}
	return c.Resolve(), nil
}
