package logomark

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/ftrvxmtrx/tga"
	"github.com/sunshineplan/tiff"
	_ "golang.org/x/image/bmp"  // decode bmp format
	_ "golang.org/x/image/webp" // decode webp format
)

// Kind classifies a file found in the input tree.
type Kind int

const (
	// Invalid files are moved out of the way.
	Invalid Kind = iota
	// Ignored files are left alone.
	Ignored
	// Supported files are watermarked.
	Supported
)

var (
	ignoredNames = []string{".ds_store", ".gitkeep"}

	standardExts = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"}
	tiffExts     = []string{".tif", ".tiff"}
	tgaExts      = []string{".tga"}
	// Formats that need a decoder registered with RegisterDecoder.
	externalExts = []string{".heic", ".heif", ".nef"}
)

// ErrNoDecoder is returned when no decoder is registered for a format.
var ErrNoDecoder = errors.New("no decoder registered")

// DecodeFunc decodes the image stored in a file.
type DecodeFunc func(file string) (image.Image, error)

var (
	decodersMu sync.RWMutex
	decoders   = map[string]DecodeFunc{}
)

// RegisterDecoder registers a decoder for a file extension such as
// ".heic". Images decoded this way are not auto-oriented.
func RegisterDecoder(ext string, fn DecodeFunc) {
	decodersMu.Lock()
	defer decodersMu.Unlock()
	decoders[strings.ToLower(ext)] = fn
}

func decoder(ext string) DecodeFunc {
	decodersMu.RLock()
	defer decodersMu.RUnlock()
	return decoders[ext]
}

func has(list []string, s string) bool {
	for _, i := range list {
		if i == s {
			return true
		}
	}
	return false
}

// Classify tells what to do with the file at path.
func Classify(path string) Kind {
	name := strings.ToLower(filepath.Base(path))
	if has(ignoredNames, name) {
		return Ignored
	}
	switch ext := filepath.Ext(name); {
	case has(standardExts, ext), has(tiffExts, ext), has(tgaExts, ext), has(externalExts, ext):
		return Supported
	default:
		if decoder(ext) != nil {
			return Supported
		}
		return Invalid
	}
}

type decodeConfig struct {
	autoOrientation bool
}

var defaultDecodeConfig = decodeConfig{
	autoOrientation: true,
}

// DecodeOption sets an optional parameter for the Open function.
type DecodeOption func(*decodeConfig)

// AutoOrientation returns a DecodeOption that sets the auto-orientation mode.
// If auto-orientation is enabled, the image will be transformed after decoding
// according to the EXIF orientation tag (if present). By default it's enabled.
func AutoOrientation(enabled bool) DecodeOption {
	return func(c *decodeConfig) {
		c.autoOrientation = enabled
	}
}

// Open loads an image from file.
func Open(file string, opts ...DecodeOption) (image.Image, error) {
	cfg := defaultDecodeConfig
	for _, option := range opts {
		option(&cfg)
	}

	ext := strings.ToLower(filepath.Ext(file))
	if fn := decoder(ext); fn != nil {
		return fn(file)
	}
	switch {
	case has(externalExts, ext):
		return nil, fmt.Errorf("%s: %w", ext, ErrNoDecoder)
	case has(tgaExts, ext):
		return decodeFile(file, tga.Decode)
	}

	img, err := imaging.Open(file, imaging.AutoOrientation(cfg.autoOrientation))
	if err != nil && has(tiffExts, ext) {
		return decodeFile(file, tiff.Decode)
	}
	return img, err
}

func decodeFile(file string, decode func(io.Reader) (image.Image, error)) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return decode(f)
}
