// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ms5611

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Opts holds the configuration options for the device.
type Opts struct {
	// Oversampling selects the conversion resolution used for both pressure
	// and temperature measurements. An out of range value falls back to the
	// default.
	Oversampling Oversampling
}

// DefaultOpts holds the default configuration options: 2048x oversampling,
// the "high resolution" setting of the reference design.
var DefaultOpts = Opts{Oversampling: OS2048}

// Dev represents an MS5611 sensor.
type Dev struct {
	d    *i2c.Dev
	mu   sync.Mutex
	os   Oversampling
	cal  calibration
	stop chan struct{}
	wg   sync.WaitGroup
}

// NewI2C returns a driver for an MS5611 on the specified bus and address.
// The device is reset and the six factory calibration words are read from
// its PROM. Opts can be nil.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{d: &i2c.Dev{Bus: b, Addr: addr}, os: DefaultOpts.Oversampling}
	d.SetOversampling(opts.Oversampling)
	if err := d.Reset(); err != nil {
		return nil, err
	}
	if err := d.LoadCalibration(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reset sends the reset command and waits for the device to reload its PROM.
// The datasheet specifies a 2.8ms reload time.
func (d *Dev) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.d.Tx([]byte{cmdReset}, nil); err != nil {
		return fmt.Errorf("ms5611: reset: %w", err)
	}
	time.Sleep(3 * time.Millisecond)
	return nil
}

// LoadCalibration reads the six calibration words from the PROM, replacing
// any previously loaded set. NewI2C calls it once; calling it again forces a
// reload.
func (d *Dev) LoadCalibration() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var words [6]uint16
	for i := range words {
		w, err := d.readReg16(promBase + byte(2*i))
		if err != nil {
			return fmt.Errorf("ms5611: calibration: %w", err)
		}
		words[i] = w
	}
	d.cal = newCalibration(words)
	return nil
}

// Oversampling returns the current oversampling ratio.
func (d *Dev) Oversampling() Oversampling {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.os
}

// SetOversampling selects the conversion resolution for subsequent
// measurements. An out of range value leaves the current setting in effect.
func (d *Dev) SetOversampling(os Oversampling) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(os) >= len(osrSettings) {
		return
	}
	d.os = os
}

// ReadRawTemperature triggers a temperature conversion (D2) and returns the
// raw 24 bit sample.
//
// The raw and calibrated read methods never fail: a bus fault reads as 0.
// Use Sense for an error checked measurement.
func (d *Dev) ReadRawTemperature() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, _ := d.convert(cmdConvertD2)
	return v
}

// ReadRawPressure triggers a pressure conversion (D1) and returns the raw
// 24 bit sample. A bus fault reads as 0.
func (d *Dev) ReadRawPressure() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, _ := d.convert(cmdConvertD1)
	return v
}

// ReadTemperature performs a temperature measurement and returns degrees
// Celsius. With secondOrder set the datasheet low temperature correction is
// applied below 20°C. A bus fault or unloaded calibration yields a nonsense
// value rather than an error.
func (d *Dev) ReadTemperature(secondOrder bool) float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d2, _ := d.convert(cmdConvertD2)
	return float64(d.cal.temperature(d2, secondOrder)) / 100
}

// ReadPressure performs a pressure measurement and returns Pascal. It runs
// two conversions, pressure then temperature, since compensation needs both
// samples. With secondOrder set the datasheet low temperature corrections
// are applied. A bus fault or unloaded calibration yields a nonsense value
// rather than an error.
func (d *Dev) ReadPressure(secondOrder bool) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d1, _ := d.convert(cmdConvertD1)
	d2, _ := d.convert(cmdConvertD2)
	return d.cal.pressure(d1, d2, secondOrder)
}

// Sense reads pressure and temperature from the device and writes the values
// to env. Second order compensation is always applied. Humidity is left at 0.
// Implements physic.SenseEnv.
func (d *Dev) Sense(env *physic.Env) error {
	env.Temperature = 0
	env.Pressure = 0
	env.Humidity = 0
	d.mu.Lock()
	defer d.mu.Unlock()
	d1, err := d.convert(cmdConvertD1)
	if err != nil {
		return fmt.Errorf("ms5611: %w", err)
	}
	d2, err := d.convert(cmdConvertD2)
	if err != nil {
		return fmt.Errorf("ms5611: %w", err)
	}
	t := d.cal.temperature(d2, true)
	env.Temperature = physic.ZeroCelsius + physic.Temperature(t)*10*physic.MilliKelvin
	env.Pressure = physic.Pressure(d.cal.pressure(d1, d2, true)) * physic.Pascal
	return nil
}

// SenseContinuous continuously reads from the device and writes the values
// to the returned channel. Implements physic.SenseEnv. To terminate the
// continuous read, call Halt().
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil, errors.New("ms5611: SenseContinuous already running")
	}
	d.stop = make(chan struct{})
	d.wg.Add(1)
	sensing := make(chan physic.Env, 16)
	go func(stop chan struct{}) {
		defer d.wg.Done()
		defer close(sensing)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				var e physic.Env
				if err := d.Sense(&e); err == nil {
					sensing <- e
				}
			}
		}
	}(d.stop)
	return sensing, nil
}

// Resolution RMS figures from the datasheet, indexed by oversampling ratio.
var pressurePrecision = [...]physic.Pressure{
	OS256:  6500 * physic.MilliPascal,
	OS512:  4200 * physic.MilliPascal,
	OS1024: 2700 * physic.MilliPascal,
	OS2048: 1800 * physic.MilliPascal,
	OS4096: 1200 * physic.MilliPascal,
}

var temperaturePrecision = [...]physic.Temperature{
	OS256:  12 * physic.MilliKelvin,
	OS512:  8 * physic.MilliKelvin,
	OS1024: 5 * physic.MilliKelvin,
	OS2048: 3 * physic.MilliKelvin,
	OS4096: 2 * physic.MilliKelvin,
}

// Precision returns the device resolution at the current oversampling ratio.
// Implements physic.SenseEnv.
func (d *Dev) Precision(env *physic.Env) {
	d.mu.Lock()
	defer d.mu.Unlock()
	env.Temperature = temperaturePrecision[d.os]
	env.Pressure = pressurePrecision[d.os]
	env.Humidity = 0
}

// Halt stops a continuous read started by SenseContinuous. Implements
// conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	if d.stop == nil {
		d.mu.Unlock()
		return nil
	}
	close(d.stop)
	d.stop = nil
	d.mu.Unlock()
	d.wg.Wait()
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ms5611: %s", d.d.String())
}

// convert triggers an ADC conversion, waits out the oversampling dependent
// settling time and reads back the 24 bit result.
//
// It must be called with d.mu held.
func (d *Dev) convert(base byte) (uint32, error) {
	s := osrSettings[d.os]
	if err := d.d.Tx([]byte{base + s.code}, nil); err != nil {
		return 0, err
	}
	time.Sleep(s.delay)
	return d.readReg24(cmdADCRead)
}

// readReg16 reads a big endian 16 bit register.
func (d *Dev) readReg16(reg byte) (uint16, error) {
	var buf [2]byte
	if err := d.d.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// readReg24 reads a big endian 24 bit register. Exactly three bytes are
// requested from the device.
func (d *Dev) readReg24(reg byte) (uint32, error) {
	var buf [3]byte
	if err := d.d.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2]), nil
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
