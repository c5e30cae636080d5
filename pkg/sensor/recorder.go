// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package sensor

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

// Recorder receives every successful reading. Implementations must not
// block the read and must swallow their own failures
type Recorder interface {
	RecordReading(Reading)
}

type NopRecorder struct{}

func (NopRecorder) RecordReading(Reading) {}

// LogRecorder emits one info line per reading
type LogRecorder struct {
	Log logging.Logger
}

func NewLogRecorder(log logging.Logger) LogRecorder {
	return LogRecorder{Log: log}
}

func (l LogRecorder) RecordReading(reading Reading) {
	l.Log.Info("data read",
		zap.Stringer("contract", reading.Contract),
		zap.String("method", reading.Method),
		zap.Int64("arg", reading.Arg),
		zap.String("outputs", fmt.Sprintf("%v", reading.Outputs)),
	)
}

// MultiRecorder fans a reading out to every recorder, in order
type MultiRecorder []Recorder

func (m MultiRecorder) RecordReading(reading Reading) {
	for _, r := range m {
		r.RecordReading(reading)
	}
}
