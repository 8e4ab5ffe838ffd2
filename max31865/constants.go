// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max31865

// Wires is the RTD element lead count. Three-wire elements use a dedicated
// configuration bit; two- and four-wire share a setting.
type Wires int

const (
	Wire2 Wires = 2
	Wire3 Wires = 3
	Wire4 Wires = 4
)

// Register addresses. Reads use the address as-is, writes set the MSB.
const (
	configReg uint8 = iota
	rtdMsbReg
	rtdLsbReg
	hFaultMsbReg
	hFaultLsbReg
	lFaultMsbReg
	lFaultLsbReg
	faultStatReg
)

// Configuration register bit positions.
const (
	configBit50Hz       = 0 // 50Hz mains filter; 60Hz when clear
	configBitFaultClear = 1
	configBitWire3      = 4
	configBitOneShot    = 5
	configBitAutoMode   = 6
	configBitBias       = 7
)

// Fault status register bits.
const (
	faultHighThresh uint8 = 0x80
	faultLowThresh  uint8 = 0x40
	faultRefInLow   uint8 = 0x20
	faultRefInHigh  uint8 = 0x10
	faultRtdInLow   uint8 = 0x08
	faultOvUv       uint8 = 0x04
)
