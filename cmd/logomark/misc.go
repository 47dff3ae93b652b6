package main

import (
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sunshineplan/logomark"
)

// outputOption returns the encoder settings used for every output file.
func outputOption(format logomark.Format, quality int) logomark.FormatOption {
	return logomark.FormatOption{
		Format: format,
		EncodeOption: []logomark.EncodeOption{
			logomark.JPEGQuality(quality),
			logomark.PNGCompressionLevel(png.DefaultCompression),
		},
	}
}

// folders returns root followed by every directory below it, skipping
// the given directories so outputs are never read back as inputs.
func folders(root string, skip ...string) (dirs []string, err error) {
	var excluded []string
	for _, i := range skip {
		if abs, err := filepath.Abs(i); err == nil {
			excluded = append(excluded, abs)
		}
	}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root {
			if abs, err := filepath.Abs(path); err == nil {
				for _, i := range excluded {
					if abs == i {
						return filepath.SkipDir
					}
				}
			}
		}
		dirs = append(dirs, path)
		return nil
	})
	return
}

// listFiles returns the regular files directly inside dir.
func listFiles(dir string) (files []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if !e.IsDir() && logomark.Classify(e.Name()) != logomark.Ignored {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return
}

// flushOutput removes the images found directly inside dir.
func flushOutput(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() && logomark.Classify(e.Name()) == logomark.Supported {
			if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

// moveFile moves file into dir, creating dir if needed.
func moveFile(file, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	dst := filepath.Join(dir, filepath.Base(file))
	if err := os.Rename(file, dst); err == nil {
		return nil
	}

	src, err := os.Open(file)
	if err != nil {
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		src.Close()
		return err
	}
	_, err = io.Copy(f, src)
	src.Close()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	return os.Remove(file)
}

// save encodes img into output through a temporary file in the same folder.
func save(output string, img image.Image, format *logomark.FormatOption) error {
	f, err := os.CreateTemp(filepath.Dir(output), "*.tmp")
	if err != nil {
		return err
	}
	if err := format.Encode(f, img); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), output)
}
