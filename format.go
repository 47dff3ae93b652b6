package logomark

import (
	"errors"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
)

// Format is an output image format.
type Format int

// Output formats.
const (
	PNG Format = iota
	JPEG
	GIF
	TIFF
	BMP
	WEBP
)

var formatExts = map[Format]string{
	PNG:  "png",
	JPEG: "jpg",
	GIF:  "gif",
	TIFF: "tif",
	BMP:  "bmp",
	WEBP: "webp",
}

var imagingFormats = map[Format]imaging.Format{
	PNG:  imaging.PNG,
	JPEG: imaging.JPEG,
	GIF:  imaging.GIF,
	TIFF: imaging.TIFF,
	BMP:  imaging.BMP,
}

// ErrUnsupportedFormat means the given output format is not supported.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// FormatFromExtension parses image format from filename extension:
// "png", "jpg" (or "jpeg"), "gif", "tif" (or "tiff"), "bmp" and "webp" are supported.
func FormatFromExtension(ext string) (Format, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "webp" {
		return WEBP, nil
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return -1, ErrUnsupportedFormat
	}
	for k, v := range imagingFormats {
		if v == f {
			return k, nil
		}
	}
	return -1, ErrUnsupportedFormat
}

func (f Format) String() string {
	if ext, ok := formatExts[f]; ok {
		return ext
	}
	return "unsupported"
}

// Ext returns the file extension of the format, without the dot.
func (f Format) Ext() string { return formatExts[f] }

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if _, ok := formatExts[f]; !ok {
		return nil, ErrUnsupportedFormat
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	format, err := FormatFromExtension(string(text))
	if err != nil {
		return err
	}
	*f = format
	return nil
}

// EncodeOption sets an optional parameter for the Encode function.
// https://github.com/disintegration/imaging
type EncodeOption imaging.EncodeOption

// JPEGQuality returns an EncodeOption that sets the output JPEG quality.
// Quality ranges from 1 to 100 inclusive, higher is better.
func JPEGQuality(quality int) EncodeOption {
	return EncodeOption(imaging.JPEGQuality(quality))
}

// PNGCompressionLevel returns an EncodeOption that sets the compression level
// of the PNG-encoded image. Default is png.DefaultCompression.
func PNGCompressionLevel(level png.CompressionLevel) EncodeOption {
	return EncodeOption(imaging.PNGCompressionLevel(level))
}

// FormatOption is format option
type FormatOption struct {
	Format       Format
	EncodeOption []EncodeOption
}

// Encode writes the image img to w in the format option.
func (f *FormatOption) Encode(w io.Writer, img image.Image) error {
	if f.Format == WEBP {
		return nativewebp.Encode(w, img, nil)
	}
	format, ok := imagingFormats[f.Format]
	if !ok {
		return ErrUnsupportedFormat
	}
	var opts []imaging.EncodeOption
	for _, i := range f.EncodeOption {
		opts = append(opts, imaging.EncodeOption(i))
	}
	return imaging.Encode(w, img, format, opts...)
}

// Filename returns the output file name for an image stem.
func (f *FormatOption) Filename(prefix, stem, suffix string) string {
	return prefix + stem + suffix + "." + f.Format.Ext()
}
