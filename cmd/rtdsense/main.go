// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// rtdsense reads temperatures from a MAX31865 RTD amplifier over SPI and
// prints them, optionally on a terminal gradient strip.
//
//	rtdsense -bus SPI0.0 -type pt100
package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/AmirhoseinAskari/platinum-rtd-lib/max31865"
	"github.com/AmirhoseinAskari/platinum-rtd-lib/thermalbar"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func main() {
	bus := flag.String("bus", "", "name of the SPI bus")
	devFlag := flag.String("type", "pt100", "breakout type (pt100 or pt1000)")
	ref := flag.Float64("ref", 0, "reference resistor in Ω, overrides the breakout default")
	interval := flag.Duration("interval", time.Second, "time between readings")
	bar := flag.Bool("bar", false, "show readings on a terminal gradient strip")
	flag.Parse()

	var opts *max31865.Opts
	switch strings.ToLower(*devFlag) {
	case "pt100":
		opts = max31865.DefaultOpts()
	case "pt1000":
		opts = max31865.AdafruitPT1000()
	default:
		log.Fatalf("unknown breakout type %q", *devFlag)
	}
	if *ref > 0 {
		opts.RefResistor = *ref
	}

	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	p, err := spireg.Open(*bus)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	dev, err := max31865.New(p, opts)
	if err != nil {
		log.Fatal(err)
	}

	var strip *thermalbar.Dev
	if *bar {
		if strip, err = thermalbar.New(thermalbar.DefaultOpts()); err != nil {
			log.Fatal(err)
		}
	}

	ch, err := dev.SenseContinuous(*interval)
	if err != nil {
		log.Fatal(err)
	}
	for e := range ch {
		if strip != nil {
			if err := strip.Mark(e.Temperature); err != nil {
				log.Fatal(err)
			}
			continue
		}
		log.Printf("%s: %.3f°C", dev, e.Temperature.Celsius())
	}
}
