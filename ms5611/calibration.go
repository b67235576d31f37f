// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ms5611

// calibration holds the six factory programmed PROM words. The field names
// follow the datasheet.
type calibration struct {
	sensT1   uint16 // C1: pressure sensitivity
	offT1    uint16 // C2: pressure offset
	tcs      uint16 // C3: temperature coefficient of pressure sensitivity
	tco      uint16 // C4: temperature coefficient of pressure offset
	tRef     uint16 // C5: reference temperature
	tempSens uint16 // C6: temperature coefficient of the temperature
}

// newCalibration maps the PROM words, in read order, onto their datasheet
// roles.
func newCalibration(w [6]uint16) calibration {
	return calibration{
		sensT1:   w[0],
		offT1:    w[1],
		tcs:      w[2],
		tco:      w[3],
		tRef:     w[4],
		tempSens: w[5],
	}
}

// dT is the difference between a raw temperature sample and the calibration
// reference temperature. All compensation is expressed in terms of it.
func (c *calibration) dT(d2 uint32) int64 {
	return int64(d2) - int64(c.tRef)*256
}

// temperature returns the calibrated temperature in hundredths of a degree
// Celsius; 2007 means 20.07°C. With secondOrder set the datasheet non
// linear correction is subtracted below 20°C.
func (c *calibration) temperature(d2 uint32, secondOrder bool) int32 {
	dT := c.dT(d2)
	temp := 2000 + dT*int64(c.tempSens)/8388608
	if secondOrder && temp < 2000 {
		temp -= dT * dT / (1 << 31)
	}
	return int32(temp)
}

// pressure returns the temperature compensated pressure in Pascal. With
// secondOrder set the datasheet non linear offset and sensitivity
// corrections are applied below 20°C, with an additional term below -15°C.
func (c *calibration) pressure(d1, d2 uint32, secondOrder bool) int32 {
	dT := c.dT(d2)
	off := int64(c.offT1)*65536 + int64(c.tco)*dT/128
	sens := int64(c.sensT1)*32768 + int64(c.tcs)*dT/256
	if secondOrder {
		temp := 2000 + dT*int64(c.tempSens)/8388608
		var off2, sens2 int64
		if temp < 2000 {
			sq := (temp - 2000) * (temp - 2000)
			off2 = 5 * sq / 2
			sens2 = 5 * sq / 4
			if temp < -1500 {
				sq = (temp + 1500) * (temp + 1500)
				off2 += 7 * sq
				sens2 += 11 * sq / 2
			}
		}
		off -= off2
		sens -= sens2
	}
	return int32((int64(d1)*sens/2097152 - off) / 32768)
}
