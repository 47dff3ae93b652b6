package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sunshineplan/logomark"
	"github.com/sunshineplan/progressbar"
	"github.com/sunshineplan/utils/log"
)

// batch watermarks every image below input into a mirrored output tree.
type batch struct {
	input   string
	output  string
	invalid string
	prefix  string

	flush    bool
	rotate   bool
	progress bool

	colors    logomark.ColorChoice
	positions logomark.PositionChoice
	format    logomark.FormatOption
	marker    *logomark.Watermarker
}

// folderStats counts what happened to the files of one folder.
type folderStats struct {
	processed int
	failed    int
	invalid   int
}

func (s folderStats) add(o folderStats) folderStats {
	return folderStats{s.processed + o.processed, s.failed + o.failed, s.invalid + o.invalid}
}

func (b *batch) run() (total folderStats, err error) {
	info, err := os.Stat(b.input)
	if err != nil || !info.IsDir() {
		err = fmt.Errorf("input folder %q not found, make sure your arguments are correct or use the default 'input' folder", b.input)
		return
	}

	dirs, err := folders(b.input, b.output, b.invalid)
	if err != nil {
		return
	}
	for _, dir := range dirs {
		s, err := b.processFolder(dir)
		if err != nil {
			log.Error("Failed to process folder", "folder", dir, "error", err)
			continue
		}
		total = total.add(s)
	}
	return
}

func (b *batch) processFolder(dir string) (stats folderStats, err error) {
	rel, err := filepath.Rel(b.input, dir)
	if err != nil {
		return
	}
	out := filepath.Join(b.output, rel)
	bad := filepath.Join(b.invalid, rel)

	files, err := listFiles(dir)
	if err != nil {
		return
	}
	if len(files) == 0 {
		log.Printf("Skipping folder %q (no images found)", dir)
		return
	}
	if err = os.MkdirAll(out, 0755); err != nil {
		return
	}
	log.Printf("Processing folder %q", dir)

	if b.flush {
		if err = flushOutput(out); err != nil {
			return
		}
	}

	tick, done := func() {}, func() {}
	if b.progress {
		pb := progressbar.New(len(files))
		pb.Start()
		tick, done = func() { pb.Add(1) }, func() { pb.Wait() }
	}
	for _, file := range files {
		stats = b.processFile(file, out, bad, stats)
		tick()
	}
	done()

	log.Info("Folder done", "folder", dir, "processed", stats.processed, "failed", stats.failed, "invalid", stats.invalid)
	return
}

// processFile handles one input file and returns the updated stats.
func (b *batch) processFile(file, out, bad string, stats folderStats) folderStats {
	switch logomark.Classify(file) {
	case logomark.Ignored:
		return stats
	case logomark.Invalid:
		if err := moveFile(file, bad); err != nil {
			log.Error("Failed to move invalid file", "file", file, "to", bad, "error", err)
			stats.failed++
		} else {
			stats.invalid++
		}
		return stats
	}

	img, err := logomark.Open(file, logomark.AutoOrientation(b.rotate))
	if err != nil {
		log.Error("Failed to open image", "image", file, "error", err)
		stats.failed++
		return stats
	}

	name := filepath.Base(file)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if err := b.marker.Apply(
		img,
		b.positions.Resolve(),
		b.colors.Resolve(),
		func(v logomark.Variant) error {
			return save(filepath.Join(out, b.format.Filename(b.prefix, stem, v.Suffix)), v.Image, &b.format)
		},
	); err != nil {
		log.Error("Failed to process image", "image", file, "error", err)
		stats.failed++
		return stats
	}
	stats.processed++
	return stats
}
