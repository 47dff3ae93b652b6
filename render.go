package logomark

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so that four curves
// approximate a quarter ellipse each.
const kappa = 0.5522847498

// Render draws the watermark described by p onto a copy of base and
// returns the copy. logo must already be scaled by ss. A nil circle
// color skips the backing circle. base is never modified.
func Render(base, logo image.Image, circle color.Color, ss int, p Positioning) *image.NRGBA {
	if ss < 1 {
		ss = 1
	}
	box := p.Watermark.Add(base.Bounds().Min).Intersect(base.Bounds())
	if box.Empty() {
		return imaging.Clone(base)
	}

	canvas := supersample(base, box, ss)
	if circle != nil {
		fillEllipse(canvas, scale(p.Circle, ss), circle)
	}
	paste(canvas, logo, p.Logo)

	mark := imaging.Resize(canvas, box.Dx(), box.Dy(), imaging.Box)
	return imaging.Paste(base, mark, box.Min)
}

// supersample crops box out of img and enlarges it ss times into a new
// canvas with its origin at (0, 0).
func supersample(img image.Image, box image.Rectangle, ss int) *image.NRGBA {
	crop := imaging.Crop(img, box)
	if ss == 1 {
		return crop
	}
	return imaging.Resize(crop, box.Dx()*ss, box.Dy()*ss, imaging.NearestNeighbor)
}

func scale(r image.Rectangle, f int) image.Rectangle {
	return image.Rect(r.Min.X*f, r.Min.Y*f, r.Max.X*f, r.Max.Y*f)
}

// fillEllipse fills the ellipse inscribed in r with an opaque color.
// r may extend past the canvas; only the visible part is rasterized.
func fillEllipse(canvas draw.Image, r image.Rectangle, c color.Color) {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	clip := r.Intersect(canvas.Bounds())
	if clip.Empty() {
		return
	}
	w, h := float32(r.Dx()), float32(r.Dy())
	rx, ry := w/2, h/2
	kx, ky := rx*kappa, ry*kappa
	// Path coordinates relative to the clipped mask.
	dx, dy := float32(r.Min.X-clip.Min.X), float32(r.Min.Y-clip.Min.Y)

	z := vector.NewRasterizer(clip.Dx(), clip.Dy())
	z.MoveTo(dx+w, dy+ry)
	z.CubeTo(dx+w, dy+ry+ky, dx+rx+kx, dy+h, dx+rx, dy+h)
	z.CubeTo(dx+rx-kx, dy+h, dx, dy+ry+ky, dx, dy+ry)
	z.CubeTo(dx, dy+ry-ky, dx+rx-kx, dy, dx+rx, dy)
	z.CubeTo(dx+rx+kx, dy, dx+w, dy+ry-ky, dx+w, dy+ry)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, clip.Dx(), clip.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	r0, g0, b0, _ := c.RGBA()
	fill := color.RGBA64{uint16(r0), uint16(g0), uint16(b0), 0xffff}
	draw.DrawMask(canvas, clip, image.NewUniform(fill), image.Point{}, mask, image.Point{}, draw.Over)
}

// paste draws mark onto canvas with its top-left corner at pt. Marks that
// can carry transparency are composited through their alpha channel,
// opaque marks overwrite the canvas.
func paste(canvas draw.Image, mark image.Image, pt image.Point) {
	op := draw.Over
	if o, ok := mark.(interface{ Opaque() bool }); ok && o.Opaque() {
		op = draw.Src
	}
	r := image.Rectangle{pt, pt.Add(mark.Bounds().Size())}
	draw.Draw(canvas, r, mark, mark.Bounds().Min, op)
}
