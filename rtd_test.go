// Copyright 2025 The Platinum RTD Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rtd

import (
	"errors"
	"math"
	"testing"
)

var sensors = []SensorType{PT50, PT100, PT200, PT500, PT1000}

func TestResistanceAtZero(t *testing.T) {
	// At 0°C every polynomial term vanishes, so the result must be the
	// nominal resistance exactly, not merely close to it.
	for _, s := range sensors {
		r, err := Resistance(s, 0)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if r != s.Nominal() {
			t.Errorf("%s at 0°C: got %v, want exactly %v", s, r, s.Nominal())
		}
	}
}

func TestResistanceKnownPoints(t *testing.T) {
	tests := []struct {
		sensor  SensorType
		celsius float64
		ohms    float64
	}{
		{PT100, 25, 109.73466146749999},
		{PT100, -40, 84.27064367504}, // quartic branch
		{PT100, 850, 390.481302395},  // top of range
		{PT100, -200, 18.52003586},   // bottom of range
		{PT500, 438, 1300.523202053}, // quadratic branch, forward of the example program
		{PT1000, 100, 1385.0552087},
	}
	for _, tt := range tests {
		r, err := Resistance(tt.sensor, tt.celsius)
		if err != nil {
			t.Fatalf("%s at %g°C: %v", tt.sensor, tt.celsius, err)
		}
		if math.Abs(r-tt.ohms) > 1e-6 {
			t.Errorf("%s at %g°C: got %v, want %v", tt.sensor, tt.celsius, r, tt.ohms)
		}
	}
}

func TestResistanceRange(t *testing.T) {
	// The half-degree tolerance band is inclusive.
	for _, celsius := range []float64{-200.5, -200, 850, 850.5} {
		if _, err := Resistance(PT100, celsius); err != nil {
			t.Errorf("%g°C should be accepted: %v", celsius, err)
		}
	}
	for _, celsius := range []float64{-200.6, 850.6, -1000, 1e6} {
		if _, err := Resistance(PT100, celsius); !errors.Is(err, ErrTemperatureRange) {
			t.Errorf("%g°C: got %v, want ErrTemperatureRange", celsius, err)
		}
	}
}

func TestResistanceSensorType(t *testing.T) {
	for _, s := range []SensorType{0, 999, -100, 101} {
		if _, err := Resistance(s, 25); !errors.Is(err, ErrSensorType) {
			t.Errorf("sensor %d: got %v, want ErrSensorType", s, err)
		}
		if r := CalculateResistance(s, 25); r != ConversionFailed {
			t.Errorf("sensor %d: got %v, want ConversionFailed", s, r)
		}
	}
}

func TestTemperatureRoundTrip(t *testing.T) {
	// Forward then inverse conversion must recover the temperature across
	// the whole range, for every sensor family. The same-point initial
	// guess makes convergence immediate.
	for _, s := range sensors {
		for celsius := -200.0; celsius <= 850.0; celsius += 1.0 {
			ohms, err := Resistance(s, celsius)
			if err != nil {
				t.Fatalf("%s at %g°C: %v", s, celsius, err)
			}
			back, err := Temperature(s, ohms, celsius)
			if err != nil {
				t.Fatalf("%s at %g°C (%g Ω): %v", s, celsius, ohms, err)
			}
			if math.Abs(back-celsius) > 1e-6 {
				t.Fatalf("%s: %g°C -> %g Ω -> %g°C", s, celsius, ohms, back)
			}
		}
	}
}

func TestTemperatureBand(t *testing.T) {
	for _, ohms := range []float64{18.0, 391.0, 0, -5, 1e6} {
		if _, err := Temperature(PT100, ohms, 0); !errors.Is(err, ErrResistanceRange) {
			t.Errorf("%g Ω: got %v, want ErrResistanceRange", ohms, err)
		}
		if v := CalculateTemperature(PT100, ohms, 0); v != ConversionFailed {
			t.Errorf("%g Ω: got %v, want ConversionFailed", ohms, v)
		}
	}

	// The band floor sits slightly below the true -200°C resistance, so
	// the solved temperature lands just past -200.
	got, err := Temperature(PT100, 18.3, -195)
	if err != nil {
		t.Fatal(err)
	}
	if got < -200.6 || got > -200.4 {
		t.Errorf("18.3 Ω: got %g°C, want about -200.5°C", got)
	}
}

func TestTemperatureSensorType(t *testing.T) {
	if _, err := Temperature(SensorType(999), 100, 0); !errors.Is(err, ErrSensorType) {
		t.Errorf("got %v, want ErrSensorType", err)
	}
	if v := CalculateTemperature(SensorType(999), 100, 0); v != ConversionFailed {
		t.Errorf("got %v, want ConversionFailed", v)
	}
}

func TestTemperatureInverseOfExample(t *testing.T) {
	// Inverse of the original example program: 268.5 Ω on a PT100 with a
	// 25°C starting guess.
	got, err := Temperature(PT100, 268.5, 25)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-462.7789440157915) > 1e-6 {
		t.Errorf("got %g°C, want 462.778944°C", got)
	}
}

func TestTemperatureBranchFlip(t *testing.T) {
	// A positive starting guess for a sub-zero root forces the estimate to
	// cross 0°C mid-iteration, switching to the quartic branch. The solver
	// must still land on the right root.
	ohms, err := Resistance(PT100, -5)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Temperature(PT100, ohms, 20)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-(-5)) > 1e-6 {
		t.Errorf("got %g°C, want -5°C", got)
	}
}

func TestTemperatureFarGuessTerminates(t *testing.T) {
	// A guess thousands of degrees off must terminate. Newton settles on
	// the nonphysical upper root of the quadratic here rather than
	// diverging; the result is out of range but the call returns.
	got, err := Temperature(PT100, 18.5, 10000)
	if err != nil {
		t.Fatalf("expected termination with a value, got %v", err)
	}
	t.Logf("far guess settled at %g°C", got)
}

func TestTemperatureNoConvergence(t *testing.T) {
	// A NaN guess never satisfies the tolerance test, so the solver must
	// burn its full iteration budget and fail closed.
	if _, err := Temperature(PT100, 100, math.NaN()); !errors.Is(err, ErrNoConvergence) {
		t.Errorf("got %v, want ErrNoConvergence", err)
	}
	if v := CalculateTemperature(PT100, 100, math.NaN()); v != ConversionFailed {
		t.Errorf("got %v, want ConversionFailed", v)
	}
}

func TestResistanceBand(t *testing.T) {
	min, max, ok := ResistanceBand(PT100)
	if !ok || min != 18.3 || max != 390.6 {
		t.Errorf("PT100 band: got %g..%g (%t), want 18.3..390.6", min, max, ok)
	}
	if _, _, ok := ResistanceBand(SensorType(42)); ok {
		t.Error("sensor 42 should have no band")
	}
}

func TestSensorTypeString(t *testing.T) {
	tests := []struct {
		sensor SensorType
		want   string
	}{
		{PT50, "PT50"},
		{PT100, "PT100"},
		{PT200, "PT200"},
		{PT500, "PT500"},
		{PT1000, "PT1000"},
		{SensorType(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.sensor.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
