// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// PPM implements the portable pixel-map format with a maximum
// component value of 255: P3 (ascii) and P6 (binary).
// The header is the magic number, width, height, and maxval,
// separated by whitespace, with #-comments allowed between tokens.

func init() {
	image.RegisterFormat("ppm", "P3", DecodePPM, DecodePPMConfig)
	image.RegisterFormat("ppm", "P6", DecodePPM, DecodePPMConfig)
}

// EncodePPM writes the image to the given writer in PPM format,
// ascii (P3) if ascii is true, otherwise binary (P6).
func EncodePPM(w io.Writer, im image.Image, ascii bool) error {
	bw := bufio.NewWriter(w)
	b := im.Bounds()
	magic := "P6"
	if ascii {
		magic = "P3"
	}
	_, err := fmt.Fprintf(bw, "%s\n%d %d\n255\n", magic, b.Dx(), b.Dy())
	if err != nil {
		return err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := im.At(x, y).RGBA()
			if ascii {
				_, err = fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, bl>>8)
			} else {
				_, err = bw.Write([]byte{byte(r >> 8), byte(g >> 8), byte(bl >> 8)})
			}
			if err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ppmHeader reads the magic, width, height, and maxval tokens.
func ppmHeader(br *bufio.Reader) (magic string, width, height, maxval int, err error) {
	magic, err = ppmToken(br)
	if err != nil {
		return
	}
	if magic != "P3" && magic != "P6" {
		err = fmt.Errorf("imagex.DecodePPM: bad magic number %q", magic)
		return
	}
	width, err = ppmInt(br)
	if err != nil {
		return
	}
	height, err = ppmInt(br)
	if err != nil {
		return
	}
	maxval, err = ppmInt(br)
	if err != nil {
		return
	}
	if width <= 0 || height <= 0 {
		err = fmt.Errorf("imagex.DecodePPM: bad dimensions %d x %d", width, height)
		return
	}
	if maxval <= 0 || maxval > 255 {
		err = fmt.Errorf("imagex.DecodePPM: maxval %d out of range [1..255]", maxval)
	}
	return
}

// ppmToken reads the next whitespace-delimited token,
// skipping #-comments through end of line.
func ppmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	inComment := false
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		if inComment {
			if c == '\n' {
				inComment = false
			}
			continue
		}
		switch {
		case c == '#':
			inComment = true
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, c)
		}
	}
}

func ppmInt(br *bufio.Reader) (int, error) {
	tok, err := ppmToken(br)
	if err != nil {
		return 0, err
	}
	v := 0
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("imagex.DecodePPM: bad integer token %q", tok)
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}

// DecodePPM reads a PPM image (P3 or P6) from the given reader.
func DecodePPM(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	magic, width, height, maxval, err := ppmHeader(br)
	if err != nil {
		return nil, err
	}
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	if magic == "P6" {
		row := make([]byte, width*3)
		for y := 0; y < height; y++ {
			if _, err := io.ReadFull(br, row); err != nil {
				return nil, fmt.Errorf("imagex.DecodePPM: short pixel data at row %d: %w", y, err)
			}
			for x := 0; x < width; x++ {
				im.SetRGBA(x, y, ppmColor(row[x*3], row[x*3+1], row[x*3+2], maxval))
			}
		}
		return im, nil
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cr, err := ppmInt(br)
			if err != nil {
				return nil, err
			}
			cg, err := ppmInt(br)
			if err != nil {
				return nil, err
			}
			cb, err := ppmInt(br)
			if err != nil {
				return nil, err
			}
			im.SetRGBA(x, y, ppmColor(byte(cr), byte(cg), byte(cb), maxval))
		}
	}
	return im, nil
}

func ppmColor(r, g, b byte, maxval int) color.RGBA {
	if maxval != 255 {
		r = byte(int(r) * 255 / maxval)
		g = byte(int(g) * 255 / maxval)
		b = byte(int(b) * 255 / maxval)
	}
	return color.RGBA{r, g, b, 255}
}

// DecodePPMConfig returns the color model and dimensions of a PPM
// image without decoding the pixel data.
func DecodePPMConfig(r io.Reader) (image.Config, error) {
	br := bufio.NewReader(r)
	_, width, height, _, err := ppmHeader(br)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: width, Height: height}, nil
}
