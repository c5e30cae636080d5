// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ava-labs/sensor-cli/pkg/cobrautils"
	"github.com/ava-labs/sensor-cli/pkg/config"
	"github.com/ava-labs/sensor-cli/pkg/ux"
)

// sensor config show
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long:  "Show the effective value of every setting, with secrets masked",
		RunE:  show,
		Args:  cobrautils.ExactArgs(0),
	}
}

func show(_ *cobra.Command, _ []string) error {
	configPath := app.Conf.GetConfigPath()
	if configPath == "" {
		configPath = "none"
	}
	t := ux.KeyValueTable(fmt.Sprintf("config file: %s", configPath), config.Keys, app.Conf.Settings())
	ux.Logger.PrintToUser("%s", t.Render())
	return nil
}

// sensor config set
func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Persist a setting into the config file",
		RunE:  set,
		Args:  cobrautils.ExactArgs(2),
	}
}

func set(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if !slices.Contains(config.Keys, key) {
		return fmt.Errorf("unknown config key %q, expected one of %v", key, config.Keys)
	}
	if err := app.Conf.SetConfigValue(key, value); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("%s saved into %s", key, app.Conf.GetConfigPath())
	return nil
}
