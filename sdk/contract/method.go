// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/ava-labs/libevm/accounts/abi"
)

var (
	ErrDecode           = errors.New("failure decoding contract call output")
	ErrUnknownMethod    = errors.New("method not found in abi")
	ErrNotReadOnly      = errors.New("method is not read only")
	ErrUnsupportedInput = errors.New("method input is not an integer")
	ErrArgCountMismatch = errors.New("wrong number of method arguments")
	ErrArgOutOfRange    = errors.New("argument out of range for abi type")
)

// DecodeError indicates the bytes returned by a call do not match the
// outputs declared for [Method]
type DecodeError struct {
	Method string
	Output []byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: method %s, %d bytes: %s", ErrDecode, e.Method, len(e.Output), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (*DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// Method is a read only contract method whose inputs are all integers,
// validated against the ABI once, when created
type Method struct {
	abi    abi.ABI
	method abi.Method
}

// NewMethod looks up [name] in [parsedABI] and checks it can be called
// with a local eth_call and integer arguments
func NewMethod(parsedABI *abi.ABI, name string) (*Method, error) {
	if parsedABI == nil {
		return nil, fmt.Errorf("%w: %s (nil abi)", ErrUnknownMethod, name)
	}
	method, ok := parsedABI.Methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, name)
	}
	if !method.IsConstant() {
		return nil, fmt.Errorf("%w: %s has state mutability %q", ErrNotReadOnly, name, method.StateMutability)
	}
	for i, input := range method.Inputs {
		if input.Type.T != abi.IntTy && input.Type.T != abi.UintTy {
			return nil, fmt.Errorf("%w: %s input %d has type %s", ErrUnsupportedInput, name, i, input.Type.String())
		}
	}
	return &Method{
		abi:    *parsedABI,
		method: method,
	}, nil
}

func (m *Method) Name() string {
	return m.method.Name
}

// Sig returns the canonical signature, eg read(uint32)
func (m *Method) Sig() string {
	return m.method.Sig
}

func (m *Method) NumOutputs() int {
	return len(m.method.Outputs)
}

// Pack encodes a call to the method, converting each argument into the
// exact go type the abi codec expects for the declared input
func (m *Method) Pack(args ...int64) ([]byte, error) {
	if len(args) != len(m.method.Inputs) {
		return nil, fmt.Errorf(
			"%w: %s expects %d, got %d",
			ErrArgCountMismatch,
			m.method.Name,
			len(m.method.Inputs),
			len(args),
		)
	}
	params := make([]interface{}, len(args))
	for i, arg := range args {
		param, err := convertIntArg(m.method.Inputs[i].Type, arg)
		if err != nil {
			return nil, fmt.Errorf("%s input %d: %w", m.method.Name, i, err)
		}
		params[i] = param
	}
	return m.abi.Pack(m.method.Name, params...)
}

// Unpack decodes [output] according to the method outputs
func (m *Method) Unpack(output []byte) ([]interface{}, error) {
	values, err := m.abi.Unpack(m.method.Name, output)
	if err != nil {
		return nil, &DecodeError{
			Method: m.method.Sig,
			Output: output,
			Err:    err,
		}
	}
	return values, nil
}

func convertIntArg(t abi.Type, arg int64) (interface{}, error) {
	if t.T == abi.UintTy && arg < 0 {
		return nil, fmt.Errorf("%w: %d for %s", ErrArgOutOfRange, arg, t.String())
	}
	n := big.NewInt(arg)
	bits := n.BitLen()
	if t.T == abi.IntTy && arg < 0 {
		// two's complement needs one more bit than the magnitude, except for the minimum
		bits = new(big.Int).Add(n, big.NewInt(1)).BitLen()
	}
	if t.T == abi.IntTy {
		bits++
	}
	if bits > t.Size {
		return nil, fmt.Errorf("%w: %d for %s", ErrArgOutOfRange, arg, t.String())
	}
	goType := t.GetType()
	if goType == reflect.TypeOf(&big.Int{}) {
		return n, nil
	}
	return reflect.ValueOf(arg).Convert(goType).Interface(), nil
}
