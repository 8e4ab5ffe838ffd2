// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package thermalbar renders a temperature reading as a colored gradient
// strip on the terminal (stdout) using ANSI color codes.
//
// The strip spans a configurable temperature range, colored from blue
// (cold) through red (hot), with a white marker at the reading's position.
// Useful to eyeball where an RTD reading sits in the sensor's span without
// plotting anything.
package thermalbar

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
)

// Opts represents the options available for the strip.
type Opts struct {
	// Width is the strip length in terminal cells.
	Width int
	// Min and Max bound the displayed temperature span.
	Min physic.Temperature
	Max physic.Temperature
	// Palette selects the ANSI palette; nil means ansi256.Default.
	Palette *ansi256.Palette
	// Writer receives the output; nil means a colorable stdout.
	Writer io.Writer
}

// DefaultOpts covers the platinum RTD range at one cell per ~15°C.
func DefaultOpts() *Opts {
	return &Opts{
		Width: 70,
		Min:   physic.ZeroCelsius - 200*physic.Kelvin,
		Max:   physic.ZeroCelsius + 850*physic.Kelvin,
	}
}

// Dev is a 1D temperature strip that outputs to the console.
type Dev struct {
	w       io.Writer
	width   int
	min     physic.Temperature
	max     physic.Temperature
	palette ansi256.Palette

	pixels []byte
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = DefaultOpts()
	}
	if opts.Width <= 0 {
		return nil, errors.New("thermalbar: width must be positive")
	}
	if opts.Max <= opts.Min {
		return nil, errors.New("thermalbar: max must be above min")
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{
		w:       w,
		width:   opts.Width,
		min:     opts.Min,
		max:     opts.Max,
		palette: *p,
		pixels:  make([]byte, 3*opts.Width),
	}, nil
}

func (d *Dev) String() string {
	return "ThermalBar"
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the display is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Mark renders the strip with a white marker at t's position and the
// reading printed after the bar. Readings outside the strip's span clamp to
// its ends.
func (d *Dev) Mark(t physic.Temperature) error {
	f := float64(t-d.min) / float64(d.max-d.min)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	mark := int(f * float64(d.width-1))
	for i := 0; i < d.width; i++ {
		c := gradient(float64(i) / float64(d.width-1))
		if i == mark {
			c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		d.pixels[3*i] = c.R
		d.pixels[3*i+1] = c.G
		d.pixels[3*i+2] = c.B
	}
	if _, err := d.refresh(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(d.w, "%.2f°C", t.Celsius())
	return err
}

// Write accepts a stream of raw RGB pixels and writes it to the console.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels)%3 != 0 {
		return 0, errors.New("thermalbar: invalid RGB stream length")
	}
	copy(d.pixels, pixels)
	return d.refresh()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rectangle{Max: image.Point{X: d.width, Y: 1}}
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	srcR := src.Bounds()
	srcR.Min = srcR.Min.Add(sp)
	if dX := r.Dx(); dX < srcR.Dx() {
		srcR.Max.X = srcR.Min.X + dX
	}
	if dY := r.Dy(); dY < srcR.Dy() {
		srcR.Max.Y = srcR.Min.Y + dY
	}
	deltaX3 := 3 * (r.Min.X - srcR.Min.X)
	for sX := srcR.Min.X; sX < srcR.Max.X; sX++ {
		r16, g16, b16, _ := src.At(sX, srcR.Min.Y).RGBA()
		dX3 := 3*sX + deltaX3
		d.pixels[dX3] = byte(r16 >> 8)
		d.pixels[dX3+1] = byte(g16 >> 8)
		d.pixels[dX3+2] = byte(b16 >> 8)
	}
	_, err := d.refresh()
	return err
}

// gradient maps 0..1 to a blue-to-red ramp with a brighter midsection.
func gradient(f float64) color.NRGBA {
	mid := 1 - 2*abs(f-0.5)
	return color.NRGBA{
		R: byte(255 * f),
		G: byte(200 * mid),
		B: byte(255 * (1 - f)),
		A: 255,
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func (d *Dev) refresh() (int, error) {
	// Designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for i := 0; i < len(d.pixels)/3; i++ {
		c := color.NRGBA{d.pixels[3*i], d.pixels[3*i+1], d.pixels[3*i+2], 255}
		_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	}
	_, _ = d.buf.WriteString("\033[0m ")
	_, err := d.buf.WriteTo(d.w)
	return len(d.pixels), err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
