package main

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"os"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/heic"
	"github.com/sunshineplan/logomark"
)

var errNoPreview = errors.New("no embedded preview found")

func registerDecoders() {
	for _, ext := range []string{".heic", ".heif"} {
		logomark.RegisterDecoder(ext, decodeHEIF)
	}
	logomark.RegisterDecoder(".nef", decodeRawPreview)
}

func decodeHEIF(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return heic.Decode(f)
}

var soi = []byte{0xff, 0xd8, 0xff}

// decodeRawPreview decodes the largest JPEG preview embedded in a camera
// RAW file. Cameras store a full size preview next to the sensor data.
func decodeRawPreview(file string) (image.Image, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var preview []byte
	var area int
	for i := 0; i < len(b); {
		n := bytes.Index(b[i:], soi)
		if n < 0 {
			break
		}
		start := i + n
		if c, err := jpeg.DecodeConfig(bytes.NewReader(b[start:])); err == nil && c.Width*c.Height > area {
			preview, area = b[start:], c.Width*c.Height
		}
		i = start + len(soi)
	}
	if preview == nil {
		return nil, errNoPreview
	}
	return imaging.Decode(bytes.NewReader(preview))
}
