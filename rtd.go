// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rtd

import "math"

// Newton–Raphson iteration limits. The solver fails closed when the budget
// is exhausted.
const (
	maxIterations = 1000
	tolerance     = 1e-8
)

// resistanceAt evaluates the Callendar–Van Dusen equation for a sensor with
// nominal resistance r0 at temperature t in °C. Below 0°C the quartic
// correction term is added.
func resistanceAt(r0, t float64) float64 {
	t2 := t * t
	if t >= 0 {
		return r0 * (1 + CoefficientA*t + CoefficientB*t2)
	}
	t3 := t2 * t
	return r0 * (1 + CoefficientA*t + CoefficientB*t2 + CoefficientC*(t-100)*t3)
}

// slopeAt evaluates dR/dT of the same branch resistanceAt would take at t.
func slopeAt(r0, t float64) float64 {
	if t >= 0 {
		return r0 * (CoefficientA + 2*CoefficientB*t)
	}
	t2 := t * t
	t3 := t2 * t
	return r0 * (CoefficientA + 2*CoefficientB*t + CoefficientC*(4*t3-300*t2))
}

// Resistance converts a temperature in °C to the sensor's resistance in
// ohms. The temperature must lie within -200.5..850.5°C.
func Resistance(s SensorType, celsius float64) (float64, error) {
	if !s.IsValid() {
		return 0, ErrSensorType
	}
	if celsius < MinTemperature || celsius > MaxTemperature {
		return 0, ErrTemperatureRange
	}
	return resistanceAt(s.Nominal(), celsius), nil
}

// Temperature converts a measured resistance in ohms to a temperature in
// °C by solving the Callendar–Van Dusen equation with the Newton–Raphson
// method, starting from guess (in °C).
//
// The resistance must lie within the sensor's band for -200..850°C; see
// ResistanceBand. Convergence depends on the quality of the initial guess:
// a guess close to the expected temperature converges in a handful of
// iterations, while a wildly wrong one can exhaust the iteration budget and
// return ErrNoConvergence.
//
// The equation is piecewise around 0°C, and the branch is chosen by the
// sign of the current estimate on every iteration. An estimate crossing
// zero switches formulas mid-solve; that mirrors the physical curve and is
// intentional.
func Temperature(s SensorType, ohms, guess float64) (float64, error) {
	b, ok := bands[s]
	if !ok {
		return 0, ErrSensorType
	}
	if ohms < b.min || ohms > b.max {
		return 0, ErrResistanceRange
	}

	r0 := s.Nominal()
	t := guess
	for i := 0; i < maxIterations; i++ {
		next := t - (resistanceAt(r0, t)-ohms)/slopeAt(r0, t)
		if math.Abs(next-t) < tolerance {
			return next, nil
		}
		t = next
	}
	return 0, ErrNoConvergence
}

// CalculateResistance is the sentinel-style variant of Resistance for
// callers holding to the original embedded contract: it reports any failure
// as ConversionFailed instead of an error.
func CalculateResistance(s SensorType, celsius float64) float64 {
	r, err := Resistance(s, celsius)
	if err != nil {
		return ConversionFailed
	}
	return r
}

// CalculateTemperature is the sentinel-style variant of Temperature.
func CalculateTemperature(s SensorType, ohms, guess float64) float64 {
	t, err := Temperature(s, ohms, guess)
	if err != nil {
		return ConversionFailed
	}
	return t
}
