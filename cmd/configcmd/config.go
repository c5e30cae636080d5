// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/sensor-cli/pkg/application"
	"github.com/ava-labs/sensor-cli/pkg/cobrautils"
)

var app *application.Sensor

func NewCmd(injectedApp *application.Sensor) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or modify the configuration of Sensor CLI",
		Long:  `Show or modify the configuration of Sensor CLI, stored at ~/.sensor-cli/config.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cobrautils.CommandSuiteUsage(cmd, args)
		},
	}
	app = injectedApp
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newSetCmd())
	return cmd
}
