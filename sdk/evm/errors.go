// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"errors"
	"fmt"

	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/common/hexutil"
	"github.com/ava-labs/libevm/rpc"
)

var (
	ErrTransport    = errors.New("failure reaching rpc endpoint")
	ErrContractCall = errors.New("contract call failed")
	ErrNoCode       = errors.New("no contract code at address")
)

// TransportError indicates the endpoint could not be reached, or it answered
// with something that is not a valid json-rpc response
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrTransport, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (*TransportError) Is(target error) bool {
	return target == ErrTransport
}

// ContractCallError indicates the node executed the call and reported a
// failure: a revert, or no contract deployed at [Address]
type ContractCallError struct {
	URL     string
	Address common.Address
	// json-rpc error code, zero if the failure was detected locally
	Code   int
	Reason string
	Err    error
}

func (e *ContractCallError) Error() string {
	msg := fmt.Sprintf("%s at %s on %s", ErrContractCall, e.Address.Hex(), e.URL)
	if e.Reason != "" {
		msg += fmt.Sprintf(" (reason=%q)", e.Reason)
	}
	return msg + ": " + e.Err.Error()
}

func (e *ContractCallError) Unwrap() error {
	return e.Err
}

func (*ContractCallError) Is(target error) bool {
	return target == ErrContractCall
}

// NoCodeError builds the error returned when [address] holds no contract
func NoCodeError(rpcURL string, address common.Address) error {
	return &ContractCallError{
		URL:     rpcURL,
		Address: address,
		Err:     ErrNoCode,
	}
}

// ClassifyCallError maps an eth_call failure into the error taxonomy:
// any error object returned by the node is a [ContractCallError],
// everything else (dial, http, json framing, context) is a [TransportError]
func ClassifyCallError(rpcURL string, address common.Address, err error) error {
	if err == nil {
		return nil
	}
	var (
		transportErr *TransportError
		callErr      *ContractCallError
		rpcErr       rpc.Error
	)
	if errors.As(err, &transportErr) || errors.As(err, &callErr) {
		return err
	}
	if errors.As(err, &rpcErr) {
		return &ContractCallError{
			URL:     rpcURL,
			Address: address,
			Code:    rpcErr.ErrorCode(),
			Reason:  RevertReason(err),
			Err:     err,
		}
	}
	return &TransportError{
		URL: rpcURL,
		Err: err,
	}
}

// RevertReason extracts the Error(string) message attached to a node error,
// if any
func RevertReason(err error) string {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return ""
	}
	data, ok := dataErr.ErrorData().(string)
	if !ok {
		return ""
	}
	bs, decodeErr := hexutil.Decode(data)
	if decodeErr != nil {
		return ""
	}
	reason, unpackErr := abi.UnpackRevert(bs)
	if unpackErr != nil {
		return ""
	}
	return reason
}
