// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package sensor

import (
	"context"
	_ "embed"
	"fmt"
	"math/big"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common"
	"go.uber.org/zap"

	"github.com/ava-labs/sensor-cli/sdk/contract"
	"github.com/ava-labs/sensor-cli/sdk/evm"
)

//go:generate mockgen -destination=mocks/contract_caller.go -package=mocks . ContractCaller

//go:embed erc20_sensor_abi.json
var SensorABI []byte

// ContractCaller is the transport used by [Reader]: one handle per read
type ContractCaller interface {
	CallContract(ctx context.Context, from common.Address, to common.Address, data []byte) ([]byte, error)
	CodeAt(ctx context.Context, address common.Address) ([]byte, error)
	Close()
}

// Dialer opens a [ContractCaller] bound to [endpoint]
type Dialer func(ctx context.Context, endpoint string) (ContractCaller, error)

// DialEVM is the default [Dialer], backed by an ethclient
func DialEVM(ctx context.Context, endpoint string) (ContractCaller, error) {
	client, err := evm.GetClient(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return client, nil
}

type Option func(*Reader)

func WithDialer(dialer Dialer) Option {
	return func(r *Reader) {
		r.dial = dialer
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(r *Reader) {
		r.recorder = recorder
	}
}

func WithLogger(log logging.Logger) Option {
	return func(r *Reader) {
		r.log = log
	}
}

// Reader performs read only calls on a sensor contract. It holds no
// mutable state, so it can be shared among goroutines
type Reader struct {
	cfg      Config
	method   *contract.Method
	dial     Dialer
	recorder Recorder
	log      logging.Logger
}

// NewReader binds [cfg] to [parsedABI]. The configured method is validated
// here, once, so later reads only pack and unpack
func NewReader(cfg Config, parsedABI *abi.ABI, opts ...Option) (*Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	method, err := contract.NewMethod(parsedABI, cfg.Method)
	if err != nil {
		return nil, err
	}
	if _, err := method.Pack(cfg.Arg); err != nil {
		return nil, err
	}
	r := &Reader{
		cfg:      cfg,
		method:   method,
		dial:     DialEVM,
		recorder: NopRecorder{},
		log:      logging.NoLog{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NewSensorReader binds [cfg] to the embedded sensor contract abi
func NewSensorReader(cfg Config, opts ...Option) (*Reader, error) {
	parsedABI, err := contract.LoadABI(SensorABI)
	if err != nil {
		return nil, err
	}
	return NewReader(cfg, parsedABI, opts...)
}

func (r *Reader) Config() Config {
	return r.cfg
}

// ReadSensor calls the configured method once, with the configured argument,
// as a local eth_call from the caller address. The decoded reading is
// handed to the recorder before being returned.
//
// Failures are one of [evm.TransportError], [evm.ContractCallError] or
// [contract.DecodeError], and are never recorded
func (r *Reader) ReadSensor(ctx context.Context) (Reading, error) {
	reading, err := r.read(ctx)
	if err != nil {
		r.log.Warn("sensor read failed",
			zap.String("endpoint", r.cfg.Endpoint),
			zap.Stringer("contract", r.cfg.ContractAddress),
			zap.String("method", r.method.Sig()),
			zap.Int64("arg", r.cfg.Arg),
			zap.Error(err),
		)
		return Reading{}, err
	}
	r.recorder.RecordReading(reading)
	return reading, nil
}

// ReadInt reads the sensor and returns its single integer output
func (r *Reader) ReadInt(ctx context.Context) (*big.Int, error) {
	reading, err := r.ReadSensor(ctx)
	if err != nil {
		return nil, err
	}
	return reading.Int()
}

func (r *Reader) read(ctx context.Context) (Reading, error) {
	data, err := r.method.Pack(r.cfg.Arg)
	if err != nil {
		return Reading{}, err
	}
	client, err := r.dial(ctx, r.cfg.Endpoint)
	if err != nil {
		return Reading{}, evm.ClassifyCallError(r.cfg.Endpoint, r.cfg.ContractAddress, err)
	}
	defer client.Close()
	out, err := client.CallContract(ctx, r.cfg.CallerAddress, r.cfg.ContractAddress, data)
	if err != nil {
		return Reading{}, evm.ClassifyCallError(r.cfg.Endpoint, r.cfg.ContractAddress, err)
	}
	if len(out) == 0 && r.method.NumOutputs() > 0 {
		// an eth_call on an address without code succeeds with empty output
		code, err := client.CodeAt(ctx, r.cfg.ContractAddress)
		if err != nil {
			return Reading{}, evm.ClassifyCallError(r.cfg.Endpoint, r.cfg.ContractAddress, err)
		}
		if len(code) == 0 {
			return Reading{}, fmt.Errorf(
				"reading %s: %w",
				r.method.Sig(),
				evm.NoCodeError(r.cfg.Endpoint, r.cfg.ContractAddress),
			)
		}
	}
	outputs, err := r.method.Unpack(out)
	if err != nil {
		return Reading{}, err
	}
	return Reading{
		Contract: r.cfg.ContractAddress,
		Method:   r.method.Name(),
		Arg:      r.cfg.Arg,
		Outputs:  outputs,
	}, nil
}
