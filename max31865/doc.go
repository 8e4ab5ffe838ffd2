// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package max31865 controls a MAX31865 RTD-to-digital converter over SPI.
//
// The amplifier reports the ratio of the element resistance to an on-board
// reference resistor through a 15-bit ADC. The driver converts that ratio to
// ohms and solves the Callendar–Van Dusen equation for the temperature, so
// readings track the IEC 60751 curve over the full -200°C to +850°C span
// instead of a short-range polynomial fit.
//
// The max31865.Dev type implements the physic.SenseEnv interface.
//
// Datasheet: https://datasheets.maximintegrated.com/en/ds/MAX31865.pdf
package max31865
