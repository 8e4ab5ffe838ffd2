// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max31865

import (
	"errors"
	"fmt"
	"sync"
	"time"

	rtd "github.com/AmirhoseinAskari/platinum-rtd-lib"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Opts holds the configuration for the amplifier and the attached element.
type Opts struct {
	// RefResistor is the value of the board's reference resistor in ohms.
	// Breakout boards pair it to the element: typically 430Ω for a PT100
	// and 4300Ω for a PT1000.
	RefResistor float64
	// Sensor is the platinum element wired to the amplifier.
	Sensor rtd.SensorType
	// Wires is the element lead count, 3 by default on most breakouts.
	Wires Wires
	// Filter50Hz filters 50Hz mains noise instead of the default 60Hz.
	Filter50Hz bool
	// ContinuousMode leaves the bias voltage on between readings. This
	// removes the settling delay from every Sense call at the cost of a
	// little self-heating.
	ContinuousMode bool
}

// DefaultOpts is the configuration for an Adafruit PT100 breakout.
func DefaultOpts() *Opts {
	return &Opts{RefResistor: 430.0, Sensor: rtd.PT100, Wires: Wire3}
}

// AdafruitPT1000 is the configuration for an Adafruit PT1000 breakout.
func AdafruitPT1000() *Opts {
	return &Opts{RefResistor: 4300.0, Sensor: rtd.PT1000, Wires: Wire3}
}

// New opens the amplifier on the provided SPI port and applies opts. Passing
// nil opts selects DefaultOpts.
func New(p spi.Port, opts *Opts) (*Dev, error) {
	c, err := p.Connect(5*physic.MegaHertz, spi.Mode3, 8)
	if err != nil {
		return nil, fmt.Errorf("max31865: %v", err)
	}
	if opts == nil {
		opts = DefaultOpts()
	}
	if !opts.Sensor.IsValid() {
		return nil, fmt.Errorf("max31865: unsupported sensor type %d", opts.Sensor)
	}
	if opts.RefResistor <= 0 {
		return nil, errors.New("max31865: reference resistor value required")
	}

	d := &Dev{
		c:    c,
		opts: *opts,
		name: p.String(),
	}
	switch {
	case opts.Filter50Hz && opts.ContinuousMode:
		d.measDelay = 21 * time.Millisecond
	case opts.ContinuousMode:
		d.measDelay = 18 * time.Millisecond
	case opts.Filter50Hz:
		d.measDelay = 66 * time.Millisecond
	default:
		d.measDelay = 55 * time.Millisecond
	}

	if opts.Filter50Hz {
		d.config |= 1 << configBit50Hz
	}
	if opts.Wires == Wire3 {
		d.config |= 1 << configBitWire3
	}
	if opts.ContinuousMode {
		d.config |= 1<<configBitBias | 1<<configBitAutoMode
	}

	// Apply the configuration and clear any stale fault in one write.
	if err := d.writeReg(configReg, d.config|1<<configBitFaultClear); err != nil {
		return nil, err
	}
	// Open the fault thresholds to the full ADC span; the conversion layer
	// does the real range checking.
	if err := d.SetThreshold(0x0000, 0xFFFF); err != nil {
		return nil, err
	}
	return d, nil
}

// Dev is a handle to a MAX31865 RTD amplifier on an SPI bus.
type Dev struct {
	c         conn.Conn
	opts      Opts
	config    byte
	measDelay time.Duration
	name      string

	mu   sync.Mutex
	stop chan struct{}
	wg   sync.WaitGroup
}

func (d *Dev) String() string {
	return fmt.Sprintf("max31865{%s, %s}", d.opts.Sensor, d.name)
}

// Sense reads the RTD element once and writes the temperature to e.
// Implements physic.SenseEnv.
func (d *Dev) Sense(e *physic.Env) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return d.wrap(errors.New("already sensing continuously"))
	}
	return d.sense(e)
}

// SenseContinuous returns a channel of measurements at the requested
// interval. Call Halt to stop sensing and close the channel. Implements
// physic.SenseEnv.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < d.measDelay {
		interval = d.measDelay
	}
	d.mu.Lock()
	if stop := d.stop; stop != nil {
		d.stop = nil
		d.mu.Unlock()
		close(stop)
		d.wg.Wait()
		d.mu.Lock()
	}
	defer d.mu.Unlock()

	sensing := make(chan physic.Env)
	d.stop = make(chan struct{})
	d.wg.Add(1)
	go func(stop chan struct{}) {
		defer d.wg.Done()
		defer close(sensing)
		d.sensingContinuous(interval, sensing, stop)
	}(d.stop)
	return sensing, nil
}

// Precision reports the nominal temperature step of the 15-bit ADC.
// Actual resolution varies with the RTD's nonlinearity. Implements
// physic.SenseEnv.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = physic.Kelvin / 32
}

// Halt stops a SenseContinuous operation. Implements conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	stop := d.stop
	d.stop = nil
	// The mutex cannot be held across the Wait: the sensing goroutine
	// takes it for each reading.
	d.mu.Unlock()
	if stop == nil {
		return nil
	}
	close(stop)
	d.wg.Wait()
	return nil
}

// Resistance reads the element once and returns its resistance.
func (d *Dev) Resistance() (physic.ElectricResistance, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ohms, err := d.readResistance()
	if err != nil {
		return 0, err
	}
	return physic.ElectricResistance(ohms * float64(physic.Ohm)), nil
}

// SetThreshold sets the ADC fault threshold registers. The values are raw
// 16-bit register contents, not ohms.
func (d *Dev) SetThreshold(lower, upper uint16) error {
	if err := d.writeReg(hFaultMsbReg, byte(upper>>8)); err != nil {
		return err
	}
	if err := d.writeReg(hFaultLsbReg, byte(upper&0xFF)); err != nil {
		return err
	}
	if err := d.writeReg(lFaultMsbReg, byte(lower>>8)); err != nil {
		return err
	}
	return d.writeReg(lFaultLsbReg, byte(lower&0xFF))
}

func (d *Dev) sense(e *physic.Env) error {
	ohms, err := d.readResistance()
	if err != nil {
		return err
	}
	t, err := rtd.TemperatureAt(d.opts.Sensor, physic.ElectricResistance(ohms*float64(physic.Ohm)))
	if err != nil {
		return d.wrap(err)
	}
	e.Temperature = t
	return nil
}

func (d *Dev) readResistance() (float64, error) {
	if !d.opts.ContinuousMode {
		// Enable the bias voltage and let it settle, then trigger a
		// one-shot conversion.
		if err := d.writeReg(configReg, d.config|1<<configBitBias); err != nil {
			return 0, err
		}
		time.Sleep(10 * time.Millisecond)
		if err := d.writeReg(configReg, d.config|1<<configBitBias|1<<configBitOneShot); err != nil {
			return 0, err
		}
		time.Sleep(d.measDelay)
	}

	var buf [2]byte
	if err := d.readReg(rtdMsbReg, buf[:]); err != nil {
		return 0, err
	}

	if !d.opts.ContinuousMode {
		// Drop the bias current again to limit self-heating.
		if err := d.writeReg(configReg, d.config); err != nil {
			return 0, err
		}
	}

	raw := uint16(buf[0])<<8 | uint16(buf[1])
	if raw&1 != 0 {
		return 0, d.fault()
	}
	count := raw >> 1
	return float64(count) * d.opts.RefResistor / 32768, nil
}

// fault reads the fault status register, clears it and returns a
// description of the first fault bit set.
func (d *Dev) fault() error {
	var b [1]byte
	if err := d.readReg(faultStatReg, b[:]); err != nil {
		return err
	}
	if err := d.writeReg(configReg, d.config|1<<configBitFaultClear); err != nil {
		return err
	}
	switch {
	case b[0]&faultHighThresh != 0:
		return d.wrap(errors.New("rtd resistance above high threshold"))
	case b[0]&faultLowThresh != 0:
		return d.wrap(errors.New("rtd resistance below low threshold"))
	case b[0]&faultRefInLow != 0 || b[0]&faultRefInHigh != 0:
		return d.wrap(errors.New("refin fault, check reference resistor wiring"))
	case b[0]&faultRtdInLow != 0:
		return d.wrap(errors.New("rtdin fault, check element wiring"))
	case b[0]&faultOvUv != 0:
		return d.wrap(errors.New("over/under voltage fault"))
	}
	return d.wrap(fmt.Errorf("unknown fault (%#02x)", b[0]))
}

func (d *Dev) sensingContinuous(interval time.Duration, sensing chan<- physic.Env, stop <-chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		e := physic.Env{}
		d.mu.Lock()
		err := d.sense(&e)
		d.mu.Unlock()
		if err != nil {
			return
		}
		select {
		case sensing <- e:
		case <-stop:
			return
		}
		select {
		case <-t.C:
		case <-stop:
			return
		}
	}
}

func (d *Dev) readReg(reg uint8, b []byte) error {
	w := make([]byte, len(b)+1)
	r := make([]byte, len(w))
	w[0] = reg & 0x7F
	if err := d.c.Tx(w, r); err != nil {
		return d.wrap(err)
	}
	copy(b, r[1:])
	return nil
}

func (d *Dev) writeReg(reg uint8, val byte) error {
	if err := d.c.Tx([]byte{reg | 0x80, val}, nil); err != nil {
		return d.wrap(err)
	}
	return nil
}

func (d *Dev) wrap(err error) error {
	return fmt.Errorf("max31865: %v", err)
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
