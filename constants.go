// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rtd

// SensorType identifies a platinum RTD sensor family by its nominal
// resistance in ohms at 0°C.
type SensorType int

const (
	PT50   SensorType = 50
	PT100  SensorType = 100
	PT200  SensorType = 200
	PT500  SensorType = 500
	PT1000 SensorType = 1000
)

func (s SensorType) String() string {
	switch s {
	case PT50:
		return "PT50"
	case PT100:
		return "PT100"
	case PT200:
		return "PT200"
	case PT500:
		return "PT500"
	case PT1000:
		return "PT1000"
	default:
		return "unknown"
	}
}

// IsValid reports whether s is one of the five supported sensor families.
func (s SensorType) IsValid() bool {
	_, ok := bands[s]
	return ok
}

// Nominal returns the sensor's resistance at 0°C in ohms, or 0 for an
// unsupported sensor type.
func (s SensorType) Nominal() float64 {
	if !s.IsValid() {
		return 0
	}
	return float64(s)
}

// Callendar–Van Dusen coefficients per IEC 60751. CoefficientC applies only
// below 0°C.
const (
	CoefficientA = 3.908302087e-3
	CoefficientB = -5.775e-7
	CoefficientC = -4.18301e-12
)

// ConversionFailed is returned by the sentinel-style entry points when a
// conversion cannot be performed. It lies far outside any physically
// reachable temperature or resistance so callers can test for it with a
// plain comparison.
const ConversionFailed = -1.0e6

// Temperature domain of the Callendar–Van Dusen fit. A half degree of slack
// is accepted around the nominal -200..850°C span.
const (
	MinTemperature = -200.5
	MaxTemperature = 850.5
)

// band is the resistance interval a sensor can present between -200°C and
// +850°C. The limits bracket the true curve endpoints with a small margin.
type band struct {
	min, max float64
}

var bands = map[SensorType]band{
	PT50:   {9.2, 195.3},
	PT100:  {18.3, 390.6},
	PT200:  {36.5, 781.3},
	PT500:  {91.5, 1953.0},
	PT1000: {182.5, 3906.5},
}

// ResistanceBand returns the valid measured-resistance interval in ohms for
// the sensor, covering -200..850°C. ok is false for an unsupported sensor.
func ResistanceBand(s SensorType) (min, max float64, ok bool) {
	b, ok := bands[s]
	if !ok {
		return 0, 0, false
	}
	return b.min, b.max, true
}
