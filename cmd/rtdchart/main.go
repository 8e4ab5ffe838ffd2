// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// rtdchart renders a sensor's Callendar–Van Dusen resistance curve to a
// PNG file.
//
//	rtdchart -sensor pt1000 -out pt1000.png
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	rtd "github.com/AmirhoseinAskari/platinum-rtd-lib"
	"github.com/AmirhoseinAskari/platinum-rtd-lib/chart"
)

func main() {
	sensorFlag := flag.String("sensor", "pt100", "sensor type (pt50, pt100, pt200, pt500, pt1000)")
	out := flag.String("out", "rtd.png", "output PNG path")
	width := flag.Int("width", 800, "image width in pixels")
	height := flag.Int("height", 600, "image height in pixels")
	flag.Parse()

	var sensor rtd.SensorType
	switch strings.ToLower(*sensorFlag) {
	case "pt50":
		sensor = rtd.PT50
	case "pt100":
		sensor = rtd.PT100
	case "pt200":
		sensor = rtd.PT200
	case "pt500":
		sensor = rtd.PT500
	case "pt1000":
		sensor = rtd.PT1000
	default:
		log.Fatalf("unknown sensor type %q", *sensorFlag)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := chart.RenderPNG(f, &chart.Opts{Sensor: sensor, Width: *width, Height: *height}); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s curve to %s", sensor, *out)
}
