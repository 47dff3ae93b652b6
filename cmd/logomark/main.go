package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sunshineplan/logomark"
	"github.com/sunshineplan/utils/log"
	"github.com/vharitonsky/iniflags"
)

const (
	defaultPrefix  = "wm_"
	defaultQuality = 95
)

var (
	input         = flag.String("input", "input", "")
	output        = flag.String("output", "output", "")
	invalid       = flag.String("invalid", "invalid", "")
	logos         = flag.String("logos", "logos", "")
	flush         = flag.Bool("flush", false, "")
	noPrefix      = flag.Bool("no-prefix", false, "")
	noRotate      = flag.Bool("no-rotate", false, "")
	noCircle      = flag.Bool("no-circle", false, "")
	centerCircle  = flag.Bool("center-circle", false, "")
	size          = flag.Float64("size", logomark.DefaultSizeRatio, "")
	ratio         = flag.Float64("ratio", logomark.DefaultCircleRatio, "")
	padding       = flag.Float64("padding", logomark.DefaultPaddingRatio, "")
	supersampling = flag.Int("supersampling", logomark.DefaultSupersampling, "")
	quality       = flag.Int("quality", defaultQuality, "")
	quiet         = flag.Bool("quiet", false, "")

	colorChoice    = logomark.RandomColor
	positionChoice = logomark.PositionOf(logomark.BottomRight)
	outputFormat   = logomark.PNG
)

func init() {
	flag.TextVar(&colorChoice, "color", logomark.RandomColor, "")
	flag.TextVar(&positionChoice, "position", logomark.PositionOf(logomark.BottomRight), "")
	flag.TextVar(&outputFormat, "format", logomark.PNG, "")
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
	fmt.Println(`
  --input
		input directory, processed recursively (default: input)
  --output
		output directory, mirrors the input tree (default: output)
  --invalid
		directory unreadable files are moved to (default: invalid)
  --logos
		directory holding logo_color.png and logo_white.png (default: logos)
  --flush
		remove images from output folders before processing them
  --no-prefix
		do not add the 'wm_' prefix to output names
  --no-rotate
		do not rotate images according to their EXIF orientation
  --no-circle
		do not draw the colored circle behind the logo (not recommended)
  --center-circle
		center the circle around the logo (not recommended)
  --size
		logo height relative to the shorter image side (default: 0.07)
  --ratio
		circle diameter relative to the logo width (default: 1.6)
  --padding
		gap between logo and image edges relative to the logo height (default: 0.15)
  --supersampling
		supersampling factor, smaller is faster but less smooth (default: 2)
  --color
		circle color: random (default), all, white, black, magenta, orange,
		green, cyan, purple or a #rrggbb literal
  --position
		bottom_right (default), bottom_left, top_right, top_left, random or all
  --format
		output format (png, jpg, gif, tif, bmp and webp are supported, default: png)
  --quality
		JPEG quality, 1 to 100 (default: 95)
  --quiet
		do not show progress`)
}

func main() {
	var code int
	defer func() { os.Exit(code) }()

	self, err := os.Executable()
	if err != nil {
		log.Println("Failed to get self path", err)
		code = 1
		return
	}

	flag.Usage = usage
	iniflags.SetConfigFile(filepath.Join(filepath.Dir(self), "config.ini"))
	iniflags.SetAllowMissingConfigFile(true)
	iniflags.Parse()

	registerDecoders()

	settings := logomark.NewSettings()
	settings.SetCentered(*centerCircle)
	settings.SizeRatio = *size
	settings.CircleRatio = *ratio
	settings.PaddingRatio = *padding
	settings.Supersampling = *supersampling
	settings.Circle = !*noCircle

	l, err := logomark.OpenLogos(*logos)
	if err != nil {
		log.Print(err)
		code = 1
		return
	}
	marker, err := logomark.New(l, settings)
	if err != nil {
		log.Print(err)
		code = 1
		return
	}

	prefix := defaultPrefix
	if *noPrefix {
		prefix = ""
	}

	b := &batch{
		input:     *input,
		output:    *output,
		invalid:   *invalid,
		prefix:    prefix,
		flush:     *flush,
		rotate:    !*noRotate,
		progress:  !*quiet,
		colors:    colorChoice,
		positions: positionChoice,
		format:    outputOption(outputFormat, *quality),
		marker:    marker,
	}
	log.Print("Start")
	total, err := b.run()
	if err != nil {
		log.Print(err)
		code = 1
		return
	}
	log.Info("Done", "processed", total.processed, "failed", total.failed, "invalid", total.invalid)
}
