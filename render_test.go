package logomark

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func compare(t *testing.T, img0, img1 image.Image) {
	t.Helper()
	b0 := img0.Bounds()
	b1 := img1.Bounds()
	if b0.Dx() != b1.Dx() || b0.Dy() != b1.Dy() {
		t.Fatalf("wrong image size: want %s, got %s", b0, b1)
	}
	x1 := b1.Min.X - b0.Min.X
	y1 := b1.Min.Y - b0.Min.Y
	for y := b0.Min.Y; y < b0.Max.Y; y++ {
		for x := b0.Min.X; x < b0.Max.X; x++ {
			c0 := img0.At(x, y)
			c1 := img1.At(x+x1, y+y1)
			r0, g0, b0, a0 := c0.RGBA()
			r1, g1, b1, a1 := c1.RGBA()
			if r0 != r1 || g0 != g1 || b0 != b1 || a0 != a1 {
				t.Fatalf("pixel at (%d, %d) has wrong color: want %v, got %v", x, y, c0, c1)
			}
		}
	}
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 255 / w), uint8(y * 255 / h), 0x80, 0xff})
		}
	}
	return img
}

func filled(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func sameColor(c0, c1 color.Color) bool {
	r0, g0, b0, a0 := c0.RGBA()
	r1, g1, b1, a1 := c1.RGBA()
	return r0 == r1 && g0 == g1 && b0 == b1 && a0 == a1
}

var (
	black = color.NRGBA{0, 0, 0, 0xff}
	white = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	red   = color.NRGBA{0xff, 0, 0, 0xff}
	blue  = color.NRGBA{0, 0, 0xff, 0xff}
)

func TestRenderEmpty(t *testing.T) {
	base := gradient(50, 50)
	logo := filled(4, 4, red)
	for _, p := range []Positioning{
		{Watermark: image.Rect(50, 50, 50, 50), Circle: image.Rect(-10, -10, 10, 10)},
		{Watermark: image.Rect(0, 10, 0, 30), Circle: image.Rect(-5, 0, 5, 20)},
		{Watermark: image.Rect(10, 0, 30, 0)},
	} {
		out := Render(base, logo, red, 2, p)
		compare(t, base, out)
		if out == base {
			t.Fatal("Render returned its input")
		}
	}
}

func TestRenderOutside(t *testing.T) {
	base := gradient(60, 40)
	orig := gradient(60, 40)
	logo := filled(6, 6, blue)
	p := Positioning{
		Watermark: image.Rect(10, 10, 30, 30),
		Circle:    image.Rect(-5, -5, 25, 25),
		Logo:      image.Pt(14, 14),
	}

	out := Render(base, logo, red, 3, p)
	if out.Bounds() != base.Bounds() {
		t.Fatalf("want bounds %v, got %v", base.Bounds(), out.Bounds())
	}
	compare(t, orig, base)
	for y := 0; y < 40; y++ {
		for x := 0; x < 60; x++ {
			if image.Pt(x, y).In(p.Watermark) {
				continue
			}
			if c0, c1 := base.At(x, y), out.At(x, y); !sameColor(c0, c1) {
				t.Fatalf("pixel at (%d, %d) outside the watermark changed: want %v, got %v", x, y, c0, c1)
			}
		}
	}
}

func TestRenderCircle(t *testing.T) {
	base := filled(40, 40, black)
	logo := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	p := Positioning{
		Watermark: image.Rect(0, 0, 40, 40),
		Circle:    image.Rect(0, 0, 40, 40),
		Logo:      image.Pt(36, 36),
	}

	out := Render(base, logo, white, 2, p)
	for _, tc := range []struct {
		pt   image.Point
		want color.Color
	}{
		{image.Pt(20, 20), white},
		{image.Pt(5, 20), white},
		{image.Pt(20, 35), white},
		{image.Pt(0, 0), black},
		{image.Pt(39, 0), black},
		{image.Pt(0, 39), black},
		{image.Pt(39, 39), black},
	} {
		if c := out.At(tc.pt.X, tc.pt.Y); !sameColor(c, tc.want) {
			t.Errorf("pixel at %v: want %v, got %v", tc.pt, tc.want, c)
		}
	}

	out = Render(base, logo, nil, 2, p)
	compare(t, base, out)
}

func TestRenderLogo(t *testing.T) {
	base := filled(20, 20, black)
	logo := filled(8, 8, red)
	p := Positioning{Watermark: image.Rect(4, 4, 16, 16), Logo: image.Pt(4, 4)}

	out := Render(base, logo, nil, 2, p)
	if c := out.At(7, 7); !sameColor(c, red) {
		t.Errorf("want logo color at (7, 7), got %v", c)
	}
	if c := out.At(12, 12); !sameColor(c, black) {
		t.Errorf("want base color at (12, 12), got %v", c)
	}
}

func TestPaste(t *testing.T) {
	mark := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	mark.SetNRGBA(0, 0, color.NRGBA{0, 0xff, 0, 0})
	mark.SetNRGBA(1, 0, blue)
	mark.SetNRGBA(0, 1, color.NRGBA{0, 0xff, 0, 0})
	mark.SetNRGBA(1, 1, blue)

	canvas := filled(4, 4, red)
	paste(canvas, mark, image.Pt(1, 1))
	for _, tc := range []struct {
		pt   image.Point
		want color.Color
	}{
		{image.Pt(0, 0), red},
		{image.Pt(1, 1), red},
		{image.Pt(1, 2), red},
		{image.Pt(2, 1), blue},
		{image.Pt(2, 2), blue},
		{image.Pt(3, 3), red},
	} {
		if c := canvas.At(tc.pt.X, tc.pt.Y); !sameColor(c, tc.want) {
			t.Errorf("pixel at %v: want %v, got %v", tc.pt, tc.want, c)
		}
	}

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	for i := range gray.Pix {
		gray.Pix[i] = 0x80
	}
	canvas = filled(4, 4, red)
	paste(canvas, gray, image.Pt(2, 2))
	for y := 2; y < 4; y++ {
		for x := 2; x < 4; x++ {
			if c := canvas.At(x, y); !sameColor(c, color.Gray{0x80}) {
				t.Errorf("pixel at (%d, %d): want gray, got %v", x, y, c)
			}
		}
	}
	if c := canvas.At(1, 1); !sameColor(c, red) {
		t.Errorf("pixel at (1, 1): want red, got %v", c)
	}

	canvas = filled(4, 4, red)
	paste(canvas, image.NewNRGBA(image.Rect(0, 0, 4, 4)), image.Point{})
	compare(t, filled(4, 4, red), canvas)
}

func TestFillEllipse(t *testing.T) {
	canvas := filled(10, 10, black)
	fillEllipse(canvas, image.Rect(0, 0, 0, 10), white)
	fillEllipse(canvas, image.Rect(3, 3, 3, 3), white)
	compare(t, filled(10, 10, black), canvas)

	fillEllipse(canvas, image.Rect(-10, -10, 30, 30), white)
	compare(t, filled(10, 10, white), canvas)
}

func TestFillEllipseClipped(t *testing.T) {
	full := filled(100, 100, black)
	fillEllipse(full, image.Rect(0, 0, 100, 100), white)

	strip := filled(100, 10, black)
	fillEllipse(strip, image.Rect(0, 0, 100, 100), white)
	compare(t, full.SubImage(image.Rect(0, 0, 100, 10)), strip)
	if !sameColor(strip.At(50, 5), white) || !sameColor(strip.At(2, 5), black) {
		t.Error("clipped ellipse drawn at wrong place")
	}

	// Only the bottom rows of a huge circle box overlap the canvas.
	canvas := filled(20, 20, black)
	fillEllipse(canvas, image.Rect(-5000, -10000+5, 5020, 5), white)
	if !sameColor(canvas.At(10, 2), white) || !sameColor(canvas.At(10, 10), black) {
		t.Error("edge of a large ellipse drawn at wrong place")
	}
}
