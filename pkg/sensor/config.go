// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package sensor

import (
	"errors"
	"fmt"

	"github.com/ava-labs/libevm/common"

	"github.com/ava-labs/sensor-cli/sdk/evm"
)

var (
	ErrInvalidEndpoint = errors.New("invalid rpc endpoint")
	ErrInvalidAddress  = errors.New("invalid address")
)

// Config is the identity a [Reader] is bound to. It is fixed when the
// reader is created and never changes afterwards
type Config struct {
	// json-rpc url, eg https://sepolia.infura.io/v3/<api-key>
	Endpoint string
	// address of the deployed sensor contract
	ContractAddress common.Address
	// logical sender of the local call
	CallerAddress common.Address
	// contract method to call, must be read only
	Method string
	// integer argument passed to [Method]
	Arg int64
}

// ParseAddress accepts 0x prefixed (or bare) 40 hexa digit addresses
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("%w: empty", ErrInvalidEndpoint)
	}
	hasScheme, err := evm.HasScheme(c.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidEndpoint, c.Endpoint, err)
	}
	if !hasScheme {
		return fmt.Errorf("%w: %s has no scheme", ErrInvalidEndpoint, c.Endpoint)
	}
	if c.ContractAddress == (common.Address{}) {
		return fmt.Errorf("%w: contract address is not set", ErrInvalidAddress)
	}
	if c.Method == "" {
		return fmt.Errorf("method name is not set")
	}
	return nil
}
