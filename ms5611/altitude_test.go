// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ms5611

import (
	"math"
	"testing"
)

func TestAltitudeAtSeaLevel(t *testing.T) {
	for _, p := range []float64{90000, DefaultSeaLevelPressure, 104000} {
		if a := Altitude(p, p); math.Abs(a) > 1e-9 {
			t.Errorf("Altitude(%g, %g) = %g, want 0", p, p, a)
		}
	}
}

func TestAltitude(t *testing.T) {
	// 100009 Pa is the compensated pressure of the datasheet worked example.
	if a := Altitude(100009, DefaultSeaLevelPressure); math.Abs(a-110.14371948) > 1e-6 {
		t.Errorf("Altitude(100009, %g) = %g, want 110.14371948", float64(DefaultSeaLevelPressure), a)
	}
}

func TestSeaLevelRoundTrip(t *testing.T) {
	for _, p0 := range []float64{98000, DefaultSeaLevelPressure, 103000} {
		for _, p := range []float64{85000, 95000, 100500} {
			alt := Altitude(p, p0)
			if got := SeaLevel(p, alt); math.Abs(got-p0) > p0*1e-6 {
				t.Errorf("SeaLevel(%g, Altitude(%g, %g)) = %g, want %g", p, p, p0, got, p0)
			}
		}
	}
}
