package logomark

import "image"

// Vec is a pair of source-image pixel quantities.
type Vec struct {
	X, Y float64
}

// Placement holds the per-image distances used to place a watermark,
// all expressed in source-image pixels.
type Placement struct {
	// Padding is the distance from the near edges to the logo center.
	Padding Vec
	// Radius of the backing circle.
	Radius float64
	// Offset magnitudes of the circle center from the logo center.
	// The sign is derived from the corner.
	Offset Vec
}

// Positioning is the geometry of one watermark on one image.
type Positioning struct {
	// Watermark is the region of the source image that is rendered into,
	// clipped to the image.
	Watermark image.Rectangle
	// Circle is the circle bounding box relative to Watermark.Min, in
	// source-image pixels. It may extend past the watermark region.
	Circle image.Rectangle
	// Logo is the top-left corner of the supersampled logo relative to
	// the supersampled watermark canvas.
	Logo image.Point
}

// Locate computes where the watermark goes on an image of the given size.
// logo is the size of the supersampled logo and ss the supersampling factor.
func Locate(size, logo image.Point, corner Corner, pl Placement, ss int) Positioning {
	w, h := float64(size.X), float64(size.Y)

	cx, cy := w-pl.Padding.X, h-pl.Padding.Y
	ox, oy := pl.Offset.X, pl.Offset.Y
	if corner.Left() {
		cx, ox = pl.Padding.X, -ox
	}
	if corner.Top() {
		cy, oy = pl.Padding.Y, -oy
	}

	ccx, ccy := cx+ox, cy+oy
	x0, y0 := ccx-pl.Radius, ccy-pl.Radius
	x1, y1 := ccx+pl.Radius, ccy+pl.Radius

	wx0, wx1 := clamp(x0, 0, w), clamp(x1, 0, w)
	wy0, wy1 := clamp(y0, 0, h), clamp(y1, 0, h)

	f := float64(ss)
	return Positioning{
		Watermark: image.Rect(int(wx0), int(wy0), int(wx1), int(wy1)),
		Circle:    image.Rect(int(x0-wx0), int(y0-wy0), int(x1-wx0), int(y1-wy0)),
		Logo: image.Pt(
			int(f*(cx-wx0)-float64(logo.X)/2),
			int(f*(cy-wy0)-float64(logo.Y)/2),
		),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
