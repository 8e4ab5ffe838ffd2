// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rtd converts between temperature and resistance for platinum RTD
// sensors (PT50, PT100, PT200, PT500, PT1000) using the Callendar–Van Dusen
// equation, per IEC 60751.
//
// Range: -200°C - 850°C
//
// Resistance from temperature is a closed-form evaluation; temperature from
// resistance solves the same equation with the Newton–Raphson method. Both
// directions are pure and safe for concurrent use.
//
// Two API styles are provided: error-returning functions (Resistance,
// Temperature, and the physic-typed ResistanceAt, TemperatureAt) and
// sentinel-returning compatibility functions (CalculateResistance,
// CalculateTemperature) that report failure as the ConversionFailed value,
// matching the original embedded-C contract.
package rtd
