// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package sensor

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ava-labs/libevm/common"
)

var ErrUnexpectedShape = errors.New("reading does not have the expected shape")

// Reading is the decoded result of one sensor contract call
type Reading struct {
	Contract common.Address
	Method   string
	Arg      int64
	// values decoded per the abi outputs, in declaration order
	Outputs []interface{}
}

// Measurement is a single temperature sample as stored by the contract.
// Temperatures are kept in hundredths of a degree celsius
type Measurement struct {
	Temperature int32
	Timestamp   time.Time
}

func (m Measurement) Celsius() float64 {
	return float64(m.Temperature) / 100
}

// Int returns the reading as an integer, for contracts declaring a
// single integer output
func (r Reading) Int() (*big.Int, error) {
	if len(r.Outputs) != 1 {
		return nil, fmt.Errorf("%w: expected 1 output, got %d", ErrUnexpectedShape, len(r.Outputs))
	}
	n, ok := toBigInt(r.Outputs[0])
	if !ok {
		return nil, fmt.Errorf("%w: output of type %T is not an integer", ErrUnexpectedShape, r.Outputs[0])
	}
	return n, nil
}

// Temperatures zips the (int32[] temperatures, uint256[] timestamps) outputs
// of the sensor contract into measurements
func (r Reading) Temperatures() ([]Measurement, error) {
	if len(r.Outputs) != 2 {
		return nil, fmt.Errorf("%w: expected 2 outputs, got %d", ErrUnexpectedShape, len(r.Outputs))
	}
	temps, ok := r.Outputs[0].([]int32)
	if !ok {
		return nil, fmt.Errorf("%w: temperatures of type %T", ErrUnexpectedShape, r.Outputs[0])
	}
	timestamps, ok := r.Outputs[1].([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: timestamps of type %T", ErrUnexpectedShape, r.Outputs[1])
	}
	if len(temps) != len(timestamps) {
		return nil, fmt.Errorf(
			"%w: %d temperatures but %d timestamps",
			ErrUnexpectedShape,
			len(temps),
			len(timestamps),
		)
	}
	measurements := make([]Measurement, len(temps))
	for i := range temps {
		if !timestamps[i].IsInt64() {
			return nil, fmt.Errorf("%w: timestamp %s out of range", ErrUnexpectedShape, timestamps[i])
		}
		measurements[i] = Measurement{
			Temperature: temps[i],
			Timestamp:   time.Unix(timestamps[i].Int64(), 0).UTC(),
		}
	}
	return measurements, nil
}

func toBigInt(v interface{}) (*big.Int, bool) {
	switch n := v.(type) {
	case *big.Int:
		return new(big.Int).Set(n), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	}
	return nil, false
}
