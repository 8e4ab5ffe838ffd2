// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// rtdconv converts between platinum RTD temperature and resistance on the
// command line.
//
//	rtdconv -sensor pt100 -celsius 25
//	rtdconv -sensor pt500 -ohms 1300.5 -guess 400 -bar
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	rtd "github.com/AmirhoseinAskari/platinum-rtd-lib"
	"github.com/AmirhoseinAskari/platinum-rtd-lib/thermalbar"
	"periph.io/x/conn/v3/physic"
)

func sensorType(name string) (rtd.SensorType, error) {
	switch strings.ToLower(name) {
	case "pt50":
		return rtd.PT50, nil
	case "pt100":
		return rtd.PT100, nil
	case "pt200":
		return rtd.PT200, nil
	case "pt500":
		return rtd.PT500, nil
	case "pt1000":
		return rtd.PT1000, nil
	default:
		return 0, fmt.Errorf("unknown sensor type %q", name)
	}
}

func main() {
	sensorFlag := flag.String("sensor", "pt100", "sensor type (pt50, pt100, pt200, pt500, pt1000)")
	celsiusFlag := flag.String("celsius", "", "temperature in °C to convert to ohms")
	ohmsFlag := flag.String("ohms", "", "resistance in Ω to convert to °C")
	guess := flag.Float64("guess", 25, "initial temperature estimate in °C for the solver")
	bar := flag.Bool("bar", false, "show the temperature on a terminal gradient strip")
	flag.Parse()

	sensor, err := sensorType(*sensorFlag)
	if err != nil {
		log.Fatal(err)
	}
	if (*celsiusFlag == "") == (*ohmsFlag == "") {
		log.Fatal("specify exactly one of -celsius or -ohms")
	}

	if *celsiusFlag != "" {
		celsius, err := strconv.ParseFloat(*celsiusFlag, 64)
		if err != nil {
			log.Fatal(err)
		}
		ohms, err := rtd.Resistance(sensor, celsius)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s at %.2f°C: %.4fΩ\n", sensor, celsius, ohms)
		return
	}

	ohms, err := strconv.ParseFloat(*ohmsFlag, 64)
	if err != nil {
		log.Fatal(err)
	}
	celsius, err := rtd.Temperature(sensor, ohms, *guess)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s at %.4fΩ: %.2f°C\n", sensor, ohms, celsius)

	if *bar {
		d, err := thermalbar.New(thermalbar.DefaultOpts())
		if err != nil {
			log.Fatal(err)
		}
		if err := d.Mark(physic.ZeroCelsius + physic.Temperature(celsius*float64(physic.Kelvin))); err != nil {
			log.Fatal(err)
		}
		if err := d.Halt(); err != nil {
			log.Fatal(err)
		}
	}
}
