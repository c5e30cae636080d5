// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package sensorcmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/sensor-cli/pkg/application"
	"github.com/ava-labs/sensor-cli/pkg/cobrautils"
	"github.com/ava-labs/sensor-cli/pkg/sensor"
	"github.com/ava-labs/sensor-cli/pkg/ux"
)

// sensor test
func NewTestCmd(injectedApp *application.Sensor) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Print the fixed probe value, without any network access",
		RunE: func(*cobra.Command, []string) error {
			ux.Logger.PrintToUser("%d", sensor.Test())
			return nil
		},
		Args: cobrautils.ExactArgs(0),
	}
	app = injectedApp
	return cmd
}
