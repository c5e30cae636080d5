// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package sensorcmd

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ava-labs/sensor-cli/pkg/application"
	"github.com/ava-labs/sensor-cli/pkg/cobrautils"
	"github.com/ava-labs/sensor-cli/pkg/constants"
	"github.com/ava-labs/sensor-cli/pkg/sensor"
	"github.com/ava-labs/sensor-cli/pkg/ux"
)

// sensor read
func NewReadCmd(injectedApp *application.Sensor) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read the data stored by the sensor contract",
		Long: `Calls the configured view method of the sensor contract once, through
eth_call from the configured caller address, and prints the decoded result.

By default read(10) of the sensor contract abi is called. --method accepts
either a method name of the abi (embedded, or given by --abi-file) or an inline
description like "read(uint256)->(uint256)".`,
		RunE: read,
		Args: cobrautils.ExactArgs(0),
	}
	app = injectedApp
	addEndpointFlags(cmd)
	cmd.Flags().String(constants.ConfigContractAddressKey, constants.DefaultContractAddress, "sensor contract address")
	cmd.Flags().String(constants.ConfigCallerAddressKey, constants.DefaultCallerAddress, "address the call is made from")
	cmd.Flags().String(constants.ConfigMethodKey, constants.DefaultMethod, "view method to call")
	cmd.Flags().Int64(constants.ConfigMethodArgKey, constants.DefaultMethodArg, "integer argument of the method")
	cmd.Flags().String(constants.ConfigABIFileKey, "", "json abi of the contract, instead of the embedded one")
	cmd.Flags().String(constants.ConfigMQTTBrokerKey, "", "also publish the reading to this mqtt broker, eg tcp://localhost:1883")
	cmd.Flags().String(constants.ConfigMQTTTopicKey, constants.DefaultMQTTTopic, "mqtt topic readings are published to")
	return cmd
}

func read(_ *cobra.Command, _ []string) error {
	reader, release, err := app.NewReader()
	if err != nil {
		return err
	}
	defer release()
	cfg := reader.Config()
	ux.Logger.PrintToUser(logging.Yellow.Wrap("RPC Endpoint: %s"), app.Conf.MaskedEndpoint())
	ux.Logger.PrintToUser("Calling %s(%d) on %s from %s", cfg.Method, cfg.Arg, cfg.ContractAddress.Hex(), cfg.CallerAddress.Hex())

	ctx, cancel := context.WithTimeout(context.Background(), app.Conf.Timeout())
	defer cancel()
	reading, err := reader.ReadSensor(ctx)
	if err != nil {
		describeFailure(err)
		return err
	}
	printReading(reading)
	return nil
}

func printReading(reading sensor.Reading) {
	if measurements, err := reading.Temperatures(); err == nil {
		t := ux.DefaultTable(
			fmt.Sprintf("%d measurements", len(measurements)),
			table.Row{"#", "Timestamp", "Temperature"},
		)
		for i, m := range measurements {
			t.AppendRow(table.Row{i, m.Timestamp.Format("2006-01-02 15:04:05 MST"), ux.FormatCelsius(m.Temperature)})
		}
		ux.Logger.PrintToUser("%s", t.Render())
		return
	}
	if n, err := reading.Int(); err == nil {
		ux.Logger.GreenCheckmarkToUser("%s(%d) = %s", reading.Method, reading.Arg, n)
		return
	}
	t := ux.DefaultTable(reading.Method, table.Row{"Output", "Value"})
	for i, output := range reading.Outputs {
		t.AppendRow(table.Row{i, fmt.Sprintf("%v", output)})
	}
	ux.Logger.PrintToUser("%s", t.Render())
}
