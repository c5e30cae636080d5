// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package sensorcmd

import (
	"context"

	"github.com/ava-labs/libevm/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ava-labs/sensor-cli/pkg/application"
	"github.com/ava-labs/sensor-cli/pkg/constants"
	"github.com/ava-labs/sensor-cli/pkg/sensor"
	"github.com/ava-labs/sensor-cli/pkg/ux"
)

// sensor balance
func NewBalanceCmd(injectedApp *application.Sensor) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [address...]",
		Short: "Show the native balance of addresses",
		Long: `Shows the latest native token balance of the given addresses. With no
address, the balance of the configured caller address is shown.`,
		RunE: balance,
	}
	app = injectedApp
	addEndpointFlags(cmd)
	cmd.Flags().String(constants.ConfigCallerAddressKey, constants.DefaultCallerAddress, "address shown when none is given")
	return cmd
}

func balance(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{app.Conf.GetConfigStringValue(constants.ConfigCallerAddressKey)}
	}
	addresses := make([]common.Address, 0, len(args))
	for _, arg := range args {
		address, err := sensor.ParseAddress(arg)
		if err != nil {
			return err
		}
		addresses = append(addresses, address)
	}
	endpoint, err := app.Conf.Endpoint()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), app.Conf.Timeout())
	defer cancel()
	balances, err := sensor.DialBalances(ctx, endpoint, addresses)
	if err != nil {
		describeFailure(err)
		return err
	}
	t := ux.DefaultTable("balances", table.Row{"Address", "Gwei"})
	for _, b := range balances {
		t.AppendRow(table.Row{b.Address.Hex(), ux.FormatBigWithThousandSeparator(b.Gwei())})
	}
	ux.Logger.PrintToUser("%s", t.Render())
	return nil
}
