// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ms5611

import (
	"math"
)

// DefaultSeaLevelPressure is the standard atmosphere reference pressure in
// Pascal.
const DefaultSeaLevelPressure = 101325.

// Altitude converts a pressure in Pascal to an altitude in metres above sea
// level using the barometric formula. seaLevelPressure is the reference
// pressure at sea level; pass DefaultSeaLevelPressure when the local value
// is not known.
func Altitude(pressure, seaLevelPressure float64) float64 {
	return 44330 * (1 - math.Pow(pressure/seaLevelPressure, 0.1902949))
}

// SeaLevel computes the equivalent sea level pressure in Pascal from a
// pressure in Pascal measured at a known altitude in metres.
func SeaLevel(pressure, altitude float64) float64 {
	return pressure / math.Pow(1-altitude/44330, 5.255)
}
