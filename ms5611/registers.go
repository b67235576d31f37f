// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ms5611

import (
	"time"
)

// DefaultAddress is the 7 bit I²C address of the MS5611 with the CSB pin
// pulled low. Boards strapping CSB high respond on 0x76 instead.
const DefaultAddress uint16 = 0x77

// Device commands. The two conversion commands take the oversampling code
// added to the base value.
const (
	cmdADCRead   byte = 0x00
	cmdReset     byte = 0x1E
	cmdConvertD1 byte = 0x40 // pressure conversion
	cmdConvertD2 byte = 0x50 // temperature conversion
	promBase     byte = 0xA2 // first of six 16 bit calibration words
)

// Oversampling selects the conversion resolution. Higher ratios are less
// noisy but take longer to convert.
type Oversampling uint8

const (
	OS256 Oversampling = iota
	OS512
	OS1024
	OS2048
	OS4096
)

// Each oversampling ratio pairs a conversion command code with the settling
// time the ADC needs before its result register is valid.
type osrSetting struct {
	code  byte
	delay time.Duration
}

var osrSettings = [...]osrSetting{
	OS256:  {0x00, 1 * time.Millisecond},
	OS512:  {0x02, 2 * time.Millisecond},
	OS1024: {0x04, 3 * time.Millisecond},
	OS2048: {0x06, 5 * time.Millisecond},
	OS4096: {0x08, 10 * time.Millisecond},
}

func (o Oversampling) String() string {
	switch o {
	case OS256:
		return "256x"
	case OS512:
		return "512x"
	case OS1024:
		return "1024x"
	case OS2048:
		return "2048x"
	case OS4096:
		return "4096x"
	default:
		return "unknown"
	}
}
