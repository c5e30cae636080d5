// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/sensor-cli/pkg/config"
)

func NewTestApp(t *testing.T) *Sensor {
	tempDir := t.TempDir()
	return &Sensor{
		baseDir: tempDir,
		Log:     logging.NoLog{},
		Conf:    config.New(),
	}
}
