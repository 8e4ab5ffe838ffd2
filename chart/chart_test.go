// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	rtd "github.com/AmirhoseinAskari/platinum-rtd-lib"
)

func TestRender(t *testing.T) {
	img, err := Render(&Opts{Sensor: rtd.PT100, Width: 320, Height: 240, Samples: 106})
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("unexpected bounds %v", b)
	}

	// The curve must actually have been stroked: look for a reddish pixel
	// anywhere in the plot area.
	found := false
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, _, _ := img.At(x, y).RGBA()
			if r > 2*g && r > 0x6000 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no curve pixels found")
	}
}

func TestRenderDefault(t *testing.T) {
	img, err := Render(nil)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("unexpected bounds %v", b)
	}
	// Corners stay background white.
	if c := color.NRGBAModel.Convert(img.At(1, 1)).(color.NRGBA); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("corner not white: %v", c)
	}
}

func TestRenderBadOpts(t *testing.T) {
	if _, err := Render(&Opts{Sensor: rtd.SensorType(3), Width: 320, Height: 240}); !errors.Is(err, rtd.ErrSensorType) {
		t.Errorf("got %v, want ErrSensorType", err)
	}
	if _, err := Render(&Opts{Sensor: rtd.PT100, Width: 20, Height: 20}); err == nil {
		t.Error("tiny image should be rejected")
	}
}

func TestRenderPNG(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := RenderPNG(buf, &Opts{Sensor: rtd.PT1000, Width: 320, Height: 240, Samples: 106}); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}
