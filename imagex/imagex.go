// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex loads and saves images in a few raster formats:
// png, jpeg, gif, tiff, bmp, webp (decode only), and the portable
// pixel-map (PPM) format in both ascii (P3) and binary (P6) flavors.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the supported image encoding / decoding formats.
type Formats int32

// The supported image encoding formats.
const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP

	// PPM is the ascii (P3) flavor of the portable pixel-map format
	PPM

	// PPMRaw is the binary (P6) flavor of the portable pixel-map format
	PPMRaw
)

var formatNames = map[Formats]string{
	None:   "None",
	PNG:    "PNG",
	JPEG:   "JPEG",
	GIF:    "GIF",
	TIFF:   "TIFF",
	BMP:    "BMP",
	WebP:   "WebP",
	PPM:    "PPM",
	PPMRaw: "PPMRaw",
}

func (f Formats) String() string {
	return formatNames[f]
}

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not.
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("imagex.ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	case "ppm":
		return PPMRaw, nil
	}
	return None, fmt.Errorf("imagex.ExtToFormat: extension %q not recognized", ext)
}

// Open opens an image from the given filename.
// The format is inferred automatically, and returned.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// OpenFS opens an image from the given filename using the given
// [fs.FS] filesystem (e.g., for embed files).
// The format is inferred automatically, and returned.
func OpenFS(fsys fs.FS, filename string) (image.Image, Formats, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// Read reads an image from the given reader.
// The format is inferred automatically, and returned.
func Read(r io.Reader) (image.Image, Formats, error) {
	im, ext, err := image.Decode(r)
	if err != nil {
		return im, None, err
	}
	switch ext {
	case "ppm":
		return im, PPMRaw, nil
	default:
		f, err := ExtToFormat(ext)
		return im, f, err
	}
}

// Save saves the image to the given filename, with the format
// inferred from the filename extension.
func Save(im image.Image, filename string) error {
	ext := filepath.Ext(filename)
	f, err := ExtToFormat(ext)
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	defer bw.Flush()
	return Write(im, bw, f)
}

// Write writes the image to the given writer using the given format.
// webp is decode-only and cannot be written.
func Write(im image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, im, nil)
	case TIFF:
		return tiff.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	case PPM:
		return EncodePPM(w, im, true)
	case PPMRaw:
		return EncodePPM(w, im, false)
	default:
		return fmt.Errorf("imagex.Write: format %q not valid", f)
	}
}
