package logomark

import (
	"errors"
	"image"
	"strconv"
)

// Variant is one watermarked rendition of an image.
type Variant struct {
	Corner Corner
	Color  NamedColor
	// Suffix distinguishes the variant's file name from its siblings.
	// It is empty when the image has a single variant.
	Suffix string
	Image  *image.NRGBA
}

// Watermarker applies logos to images according to settings.
// It is safe to share between images; it never modifies its logos.
type Watermarker struct {
	logos    *Logos
	settings Settings
}

// New returns a Watermarker for the given logos and settings.
func New(logos *Logos, settings Settings) (*Watermarker, error) {
	if logos == nil || logos.Color == nil || logos.White == nil {
		return nil, errors.New("both logo variants are required")
	}
	if logos.Color.Bounds().Size() != logos.White.Bounds().Size() {
		return nil, errors.New("logo variants must have the same size")
	}
	if logos.Size().X == 0 || logos.Size().Y == 0 {
		return nil, errors.New("logo is empty")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Watermarker{logos, settings}, nil
}

// Watermark renders a single variant of base.
func (w *Watermarker) Watermark(base image.Image, corner Corner, c NamedColor) (*image.NRGBA, error) {
	var variant *image.NRGBA
	if err := w.Apply(base, []Corner{corner}, []NamedColor{c}, func(v Variant) error {
		variant = v.Image
		return nil
	}); err != nil {
		return nil, err
	}
	return variant, nil
}

// Apply renders base once per corner and color, corners in the outer
// loop, and hands every variant to fn. It stops at the first error
// returned by fn.
func (w *Watermarker) Apply(base image.Image, corners []Corner, colors []NamedColor, fn func(Variant) error) error {
	size := base.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return errors.New("image is empty")
	}

	ss := w.settings.Supersampling
	lw, lh := logoSize(w.logos.Size(), size, w.settings.SizeRatio)
	ssw, ssh := max(1, int(float64(ss)*lw)), max(1, int(float64(ss)*lh))
	logos := w.logos.Resize(ssw, ssh)
	pl := w.settings.placement(lw, lh)

	for _, corner := range corners {
		p := Locate(size, image.Pt(ssw, ssh), corner, pl, ss)
		for i, c := range colors {
			var circle *NamedColor
			if w.settings.Circle {
				circle = &c
			}
			v := Variant{
				Corner: corner,
				Color:  c,
				Suffix: suffix(corner, len(corners), i, len(colors)),
				Image:  render(base, logos.For(c), circle, ss, p),
			}
			if err := fn(v); err != nil {
				return err
			}
		}
	}
	return nil
}

func render(base, logo image.Image, circle *NamedColor, ss int, p Positioning) *image.NRGBA {
	if circle == nil {
		return Render(base, logo, nil, ss, p)
	}
	return Render(base, logo, circle.RGB, ss, p)
}

func suffix(corner Corner, corners, index, colors int) (s string) {
	if corners > 1 {
		s = "_" + corner.String()
	}
	if colors > 1 {
		s += "_" + strconv.Itoa(index)
	}
	return
}
