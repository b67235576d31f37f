// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ms5611 controls a TE Connectivity MS5611-01BA03 barometric
// pressure and temperature sensor over I²C.
//
// The sensor stores six factory calibration words in its PROM. They are read
// once at start up and used to linearize every raw sample, including the
// optional second order correction for operation below 20°C. Package level
// helpers convert between pressure and altitude via the barometric formula.
//
// The ms5611.Dev type implements the physic.SenseEnv interface. Humidity in
// the physic.Env result is never set since the device does not measure it.
//
// Datasheet
//
//	https://www.te.com/usa-en/product-CAT-BLPS0036.html
package ms5611
