// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cobrautils

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/sensor-cli/pkg/ux"
)

type UsageError struct {
	cmd *cobra.Command
	err error
}

func (e UsageError) Error() string {
	return fmt.Sprintf("Usage error: %s", e.err)
}

func (e UsageError) Unwrap() error {
	return e.err
}

func NewUsageError(cmd *cobra.Command, err error) UsageError {
	return UsageError{
		cmd: cmd,
		err: err,
	}
}

func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		err := cobra.ExactArgs(n)(cmd, args)
		if err != nil {
			err = NewUsageError(cmd, err)
		}
		return err
	}
}

// ExitCode is 2 for usage errors and 1 for any other failure
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.As(err, &UsageError{}):
		return 2
	default:
		return 1
	}
}

func HandleErrors(err error) {
	if err == nil {
		return
	}
	var usageErr UsageError
	if errors.As(err, &usageErr) {
		usageErr.cmd.Println(usageErr.cmd.UsageString())
		usageErr.cmd.Println(usageErr)
	} else {
		ux.Logger.PrintToUser("Error: %s", err)
	}
	os.Exit(ExitCode(err))
}

func CommandSuiteUsage(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return NewUsageError(
			cmd,
			fmt.Errorf("invalid subcommand %q", strings.Join(args, " ")),
		)
	}
	err := cmd.Help()
	if err != nil {
		fmt.Println(err)
	}
	return nil
}

func ConfigureRootCmd(cmd *cobra.Command) {
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return NewUsageError(cmd, err)
	})
}
