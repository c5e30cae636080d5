// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"

	"github.com/ava-labs/sensor-cli/cmd/configcmd"
	"github.com/ava-labs/sensor-cli/cmd/sensorcmd"
	"github.com/ava-labs/sensor-cli/pkg/application"
	"github.com/ava-labs/sensor-cli/pkg/cobrautils"
	"github.com/ava-labs/sensor-cli/pkg/config"
	"github.com/ava-labs/sensor-cli/pkg/constants"
	"github.com/ava-labs/sensor-cli/pkg/ux"
)

var (
	app *application.Sensor

	logLevel string

	Version = ""
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "sensor",
		Long: `Sensor CLI reads the data stored by a sensor contract through a
read-only eth_call to an EVM json-rpc endpoint.

Settings are taken, in decreasing priority, from flags, SENSOR_* environment
variables (also loaded from ~/.sensor-cli/.env), ~/.sensor-cli/config.json
and defaults. To get started provide an endpoint or a provider api key:

  SENSOR_API_KEY=<key> sensor read`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}
	cobrautils.ConfigureRootCmd(rootCmd)

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")

	// add sub commands
	rootCmd.AddCommand(sensorcmd.NewReadCmd(app))
	rootCmd.AddCommand(sensorcmd.NewTestCmd(app))
	rootCmd.AddCommand(sensorcmd.NewBalanceCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))
	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}
	cf := config.New()
	app.Setup(baseDir, log, cf)
	cf.LoadEnvFile(log, app.GetEnvPath())
	cf.SetConfig(log, app.GetConfigPath())
	if err := cf.BindFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed binding flags: %w", err)
	}
	return nil
}

func setupEnv() (string, error) {
	// Set base dir
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	// Create base dir if it doesn't exist
	err = os.MkdirAll(baseDir, constants.WriteReadUserOnlyDirPerms)
	if err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (logging.Logger, error) {
	var err error

	config := logging.Config{}
	config.LogLevel = logging.Info
	config.DisplayLevel, err = logging.ToLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level configured: %s", logLevel)
	}
	config.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(config.Directory, constants.WriteReadUserOnlyDirPerms); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// some logging config params
	config.LogFormat = logging.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	factory := logging.NewFactory(config)
	log, err := factory.Make(constants.LogName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	cobrautils.HandleErrors(err)
}
