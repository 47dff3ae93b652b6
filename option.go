package logomark

import (
	"errors"
	"fmt"
)

// Default settings.
const (
	DefaultSizeRatio     = 0.07
	DefaultCircleRatio   = 1.6
	DefaultPaddingRatio  = 0.15
	DefaultSupersampling = 2
)

var (
	defaultOffset  = Vec{3.0 / 5, 1}
	centeredOffset = Vec{0.5, 0.5}
)

// Settings configures how a watermark is sized and drawn.
type Settings struct {
	// SizeRatio is the logo height relative to the shorter image side.
	SizeRatio float64
	// CircleRatio is the circle diameter relative to the logo width.
	CircleRatio float64
	// PaddingRatio is the gap between the logo and the image edges
	// relative to the logo height.
	PaddingRatio float64
	// Offset is the circle center position in logo sizes, 0.5 being
	// the logo center.
	Offset Vec
	// Supersampling is the factor the watermark is rendered at before
	// being scaled back down.
	Supersampling int
	// Circle enables the backing circle.
	Circle bool
}

// NewSettings creates settings with default values.
func NewSettings() Settings {
	return Settings{
		SizeRatio:     DefaultSizeRatio,
		CircleRatio:   DefaultCircleRatio,
		PaddingRatio:  DefaultPaddingRatio,
		Offset:        defaultOffset,
		Supersampling: DefaultSupersampling,
		Circle:        true,
	}
}

// SetCentered sets whether the circle is centered on the logo.
func (s *Settings) SetCentered(centered bool) *Settings {
	if centered {
		s.Offset = centeredOffset
	} else {
		s.Offset = defaultOffset
	}
	return s
}

// Validate reports settings that cannot produce a watermark.
func (s Settings) Validate() error {
	switch {
	case s.SizeRatio <= 0:
		return fmt.Errorf("watermark size ratio must be positive, got %v", s.SizeRatio)
	case s.CircleRatio <= 0:
		return fmt.Errorf("circle ratio must be positive, got %v", s.CircleRatio)
	case s.PaddingRatio < 0:
		return fmt.Errorf("padding ratio must not be negative, got %v", s.PaddingRatio)
	case s.Supersampling < 1:
		return errors.New("supersampling factor must be at least 1")
	}
	return nil
}

// placement derives the placement distances for a logo of w x h pixels.
func (s Settings) placement(w, h float64) Placement {
	padding := h * s.PaddingRatio
	return Placement{
		Padding: Vec{padding + w/2, padding + h/2},
		Radius:  w * s.CircleRatio / 2,
		Offset:  Vec{w * (s.Offset.X - 0.5), h * (s.Offset.Y - 0.5)},
	}
}
