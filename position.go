package logomark

import (
	"errors"
	"math/rand/v2"
	"strings"
)

// Corner is the image corner a watermark is anchored to.
type Corner int

// Corners in the order used when every corner is requested.
const (
	BottomRight Corner = iota
	BottomLeft
	TopRight
	TopLeft
)

// Corners lists every corner in a fixed order.
var Corners = []Corner{BottomRight, BottomLeft, TopRight, TopLeft}

var cornerNames = map[Corner]string{
	BottomRight: "bottom_right",
	BottomLeft:  "bottom_left",
	TopRight:    "top_right",
	TopLeft:     "top_left",
}

// ErrInvalidPosition is returned for position settings that name no corner.
var ErrInvalidPosition = errors.New("invalid position: expected bottom_right, bottom_left, top_right, top_left, random or all")

func (c Corner) String() string {
	if s, ok := cornerNames[c]; ok {
		return s
	}
	return "unknown"
}

// Left reports whether the corner is on the left edge.
func (c Corner) Left() bool { return c == BottomLeft || c == TopLeft }

// Top reports whether the corner is on the top edge.
func (c Corner) Top() bool { return c == TopRight || c == TopLeft }

// ParseCorner returns the corner with the given name.
func ParseCorner(s string) (Corner, error) {
	s = strings.ToLower(s)
	for _, c := range Corners {
		if cornerNames[c] == s {
			return c, nil
		}
	}
	return -1, ErrInvalidPosition
}

type selection int

const (
	selectOne selection = iota
	selectRandom
	selectAll
)

// PositionChoice is a parsed position setting: one corner, a random
// corner per image, or every corner.
type PositionChoice struct {
	mode   selection
	corner Corner
}

// PositionOf returns a choice of exactly one corner.
func PositionOf(c Corner) PositionChoice { return PositionChoice{corner: c} }

// RandomPosition picks a random corner each time it is resolved.
var RandomPosition = PositionChoice{mode: selectRandom}

// AllPositions resolves to every corner.
var AllPositions = PositionChoice{mode: selectAll}

// ParsePosition parses a position setting.
func ParsePosition(s string) (PositionChoice, error) {
	switch strings.ToLower(s) {
	case "random":
		return RandomPosition, nil
	case "all":
		return AllPositions, nil
	}
	c, err := ParseCorner(s)
	if err != nil {
		return PositionChoice{}, err
	}
	return PositionOf(c), nil
}

// Resolve expands the choice into the corners to render. Random choices
// are drawn again on every call.
func (p PositionChoice) Resolve() []Corner {
	switch p.mode {
	case selectRandom:
		return []Corner{Corners[rand.N(len(Corners))]}
	case selectAll:
		return append([]Corner(nil), Corners...)
	default:
		return []Corner{p.corner}
	}
}

func (p PositionChoice) String() string {
	switch p.mode {
	case selectRandom:
		return "random"
	case selectAll:
		return "all"
	default:
		return p.corner.String()
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p PositionChoice) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PositionChoice) UnmarshalText(text []byte) error {
	choice, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = choice
	return nil
}

// ResolvePositions parses and resolves a position setting in one step.
func ResolvePositions(setting string) ([]Corner, error) {
	p, err := ParsePosition(setting)
	if err != nil {
		return nil, err
	}
	return p.Resolve(), nil
}
