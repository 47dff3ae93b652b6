package main

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/sunshineplan/logomark"
)

func TestDecodeRawPreview(t *testing.T) {
	registerDecoders()

	var buf bytes.Buffer
	buf.WriteString("MM\x00\x2a")
	buf.Write(make([]byte, 64))
	for _, size := range []image.Point{{8, 6}, {40, 30}, {16, 12}} {
		fo := logomark.FormatOption{Format: logomark.JPEG}
		if err := fo.Encode(&buf, photo(size.X, size.Y)); err != nil {
			t.Fatal(err)
		}
		buf.Write([]byte{0xff, 0xd8, 0xff, 0x00, 0x01})
	}

	dir := t.TempDir()
	file := filepath.Join(dir, "a.NEF")
	if err := os.WriteFile(file, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	img, err := logomark.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	if size := img.Bounds().Size(); size != image.Pt(40, 30) {
		t.Errorf("want largest preview 40x30, got %v", size)
	}

	empty := filepath.Join(dir, "b.nef")
	if err := os.WriteFile(empty, []byte("MM\x00\x2a no preview"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := logomark.Open(empty); !errors.Is(err, errNoPreview) {
		t.Errorf("want errNoPreview, got %v", err)
	}
}

func TestDecodeHEIF(t *testing.T) {
	registerDecoders()

	dir := t.TempDir()
	for _, name := range []string{"a.heic", "a.HEIF"} {
		file := filepath.Join(dir, name)
		if err := os.WriteFile(file, []byte("not an image"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := logomark.Open(file); err == nil || errors.Is(err, logomark.ErrNoDecoder) {
			t.Errorf("%s: want decode error, got %v", name, err)
		}
	}
	if _, err := logomark.Open(filepath.Join(dir, "missing.heic")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want not exist error, got %v", err)
	}
}
