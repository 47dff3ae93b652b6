package logomark

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Logo file names inside a logo directory.
const (
	ColorLogoFile = "logo_color.png"
	WhiteLogoFile = "logo_white.png"
)

// Logos is the pair of logo variants. Both should carry an alpha channel
// and share the same size.
type Logos struct {
	Color image.Image
	White image.Image
}

// OpenLogos loads the color and white logos from dir.
func OpenLogos(dir string) (*Logos, error) {
	c, err := imaging.Open(filepath.Join(dir, ColorLogoFile))
	if err != nil {
		return nil, fmt.Errorf("open color logo: %w", err)
	}
	w, err := imaging.Open(filepath.Join(dir, WhiteLogoFile))
	if err != nil {
		return nil, fmt.Errorf("open white logo: %w", err)
	}
	return &Logos{Color: c, White: w}, nil
}

// For returns the logo variant that stands out on a circle of color c:
// the color logo on white, the white logo on everything else.
func (l *Logos) For(c NamedColor) image.Image {
	if c.Name == "white" {
		return l.Color
	}
	return l.White
}

// Size returns the size of the logos.
func (l *Logos) Size() image.Point {
	return l.Color.Bounds().Size()
}

// Resize returns both logos scaled to width x height.
func (l *Logos) Resize(width, height int) *Logos {
	return &Logos{
		Color: imaging.Resize(l.Color, width, height, imaging.Lanczos),
		White: imaging.Resize(l.White, width, height, imaging.Lanczos),
	}
}

// logoSize returns the logo size on an image of the given size: its
// height is ratio times the shorter image side and it keeps the logo's
// aspect ratio.
func logoSize(logo, base image.Point, ratio float64) (w, h float64) {
	h = ratio * float64(min(base.X, base.Y))
	w = h / float64(logo.Y) * float64(logo.X)
	return
}
