// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rtd

import "periph.io/x/conn/v3/physic"

// ResistanceAt is the physic-typed variant of Resistance, for callers working
// in periph.io units.
func ResistanceAt(s SensorType, t physic.Temperature) (physic.ElectricResistance, error) {
	ohms, err := Resistance(s, t.Celsius())
	if err != nil {
		return 0, err
	}
	return physic.ElectricResistance(ohms * float64(physic.Ohm)), nil
}

// TemperatureAt is the physic-typed variant of Temperature. The initial
// guess is derived from the linearized curve T ≈ (R/R0 - 1)/A, which is
// within a few degrees of the true root everywhere in the sensor's band and
// converges in a handful of iterations.
func TemperatureAt(s SensorType, r physic.ElectricResistance) (physic.Temperature, error) {
	if !s.IsValid() {
		return 0, ErrSensorType
	}
	ohms := float64(r) / float64(physic.Ohm)
	guess := (ohms/s.Nominal() - 1) / CoefficientA
	celsius, err := Temperature(s, ohms, guess)
	if err != nil {
		return 0, err
	}
	return physic.ZeroCelsius + physic.Temperature(celsius*float64(physic.Kelvin)), nil
}
