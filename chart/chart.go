// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package chart renders the Callendar–Van Dusen resistance curve of a
// platinum RTD sensor to an image, for documentation or quick visual
// sanity checks of a sensor's expected readings.
package chart

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	rtd "github.com/AmirhoseinAskari/platinum-rtd-lib"
)

// Opts represents the rendering options.
type Opts struct {
	// Sensor selects the curve to plot.
	Sensor rtd.SensorType
	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int
	// Samples is the number of curve points; 0 means one per degree.
	Samples int
}

// DefaultOpts plots a PT100 at 800x600.
func DefaultOpts() *Opts {
	return &Opts{Sensor: rtd.PT100, Width: 800, Height: 600}
}

const margin = 48.0

// Render draws the resistance-vs-temperature curve over the sensor's full
// -200..850°C span.
func Render(opts *Opts) (image.Image, error) {
	if opts == nil {
		opts = DefaultOpts()
	}
	if !opts.Sensor.IsValid() {
		return nil, rtd.ErrSensorType
	}
	if opts.Width < 2*margin+10 || opts.Height < 2*margin+10 {
		return nil, errors.New("chart: image too small to plot")
	}
	samples := opts.Samples
	if samples <= 0 {
		samples = 1051
	}

	const tMin, tMax = -200.0, 850.0
	rMin, err := rtd.Resistance(opts.Sensor, tMin)
	if err != nil {
		return nil, err
	}
	rMax, err := rtd.Resistance(opts.Sensor, tMax)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 13}))

	plotW := float64(opts.Width) - 2*margin
	plotH := float64(opts.Height) - 2*margin
	toX := func(t float64) float64 { return margin + (t-tMin)/(tMax-tMin)*plotW }
	toY := func(r float64) float64 { return float64(opts.Height) - margin - (r-rMin)/(rMax-rMin)*plotH }

	// Grid and tick labels.
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(1)
	for t := -200.0; t <= 850; t += 150 {
		x := toX(t)
		dc.DrawLine(x, margin, x, float64(opts.Height)-margin)
		dc.Stroke()
	}
	for i := 0; i <= 5; i++ {
		r := rMin + (rMax-rMin)*float64(i)/5
		y := toY(r)
		dc.DrawLine(margin, y, float64(opts.Width)-margin, y)
		dc.Stroke()
	}
	dc.SetRGB(0.2, 0.2, 0.2)
	for t := -200.0; t <= 850; t += 150 {
		dc.DrawStringAnchored(fmt.Sprintf("%.0f", t), toX(t), float64(opts.Height)-margin+6, 0.5, 1)
	}
	for i := 0; i <= 5; i++ {
		r := rMin + (rMax-rMin)*float64(i)/5
		dc.DrawStringAnchored(fmt.Sprintf("%.0fΩ", r), margin-6, toY(r), 1, 0.5)
	}
	dc.DrawStringAnchored(fmt.Sprintf("%s resistance vs temperature (°C)", opts.Sensor), float64(opts.Width)/2, margin/2, 0.5, 0.5)

	// Axes.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.5)
	dc.DrawLine(margin, margin, margin, float64(opts.Height)-margin)
	dc.DrawLine(margin, float64(opts.Height)-margin, float64(opts.Width)-margin, float64(opts.Height)-margin)
	dc.Stroke()

	// The curve itself.
	dc.SetRGB(0.75, 0.1, 0.1)
	dc.SetLineWidth(2)
	for i := 0; i < samples; i++ {
		t := tMin + (tMax-tMin)*float64(i)/float64(samples-1)
		r, err := rtd.Resistance(opts.Sensor, t)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			dc.MoveTo(toX(t), toY(r))
		} else {
			dc.LineTo(toX(t), toY(r))
		}
	}
	dc.Stroke()

	return dc.Image(), nil
}

// RenderPNG renders the curve and encodes it as PNG to w.
func RenderPNG(w io.Writer, opts *Opts) error {
	img, err := Render(opts)
	if err != nil {
		return err
	}
	return gg.NewContextForImage(img).EncodePNG(w)
}
