// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rtd

import "errors"

var (
	// ErrSensorType indicates a sensor type outside the five supported
	// nominal resistances.
	ErrSensorType = errors.New("rtd: unsupported sensor type")
	// ErrTemperatureRange indicates a temperature outside -200.5..850.5°C.
	ErrTemperatureRange = errors.New("rtd: temperature out of range")
	// ErrResistanceRange indicates a resistance outside the sensor's
	// reachable band for -200..850°C.
	ErrResistanceRange = errors.New("rtd: resistance out of range")
	// ErrNoConvergence indicates the Newton–Raphson iteration exhausted its
	// budget without settling.
	ErrNoConvergence = errors.New("rtd: iteration did not converge")
)
