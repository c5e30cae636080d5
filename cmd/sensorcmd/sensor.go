// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package sensorcmd

import (
	"errors"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"

	"github.com/ava-labs/sensor-cli/pkg/application"
	"github.com/ava-labs/sensor-cli/pkg/constants"
	"github.com/ava-labs/sensor-cli/pkg/ux"
	"github.com/ava-labs/sensor-cli/sdk/contract"
	"github.com/ava-labs/sensor-cli/sdk/evm"
)

var app *application.Sensor

// flags shared by the commands reaching the rpc endpoint. They are bound
// to the config keys of the same name, so they are only read through app.Conf
func addEndpointFlags(cmd *cobra.Command) {
	cmd.Flags().String(constants.ConfigEndpointKey, "", "rpc endpoint, instead of the provider one")
	cmd.Flags().String(constants.ConfigNetworkKey, constants.DefaultNetwork, "provider network, used to build the endpoint")
	cmd.Flags().String(constants.ConfigAPIKeyKey, "", "provider api key, used to build the endpoint")
	cmd.Flags().Duration(constants.ConfigTimeoutKey, constants.RequestTimeout, "timeout of the whole operation")
}

// describeFailure tells the user which kind of failure happened, before
// the error itself is printed
func describeFailure(err error) {
	var (
		transportErr *evm.TransportError
		callErr      *evm.ContractCallError
		decodeErr    *contract.DecodeError
	)
	switch {
	case errors.As(err, &transportErr):
		ux.Logger.RedXToUser("could not reach %s", transportErr.URL)
	case errors.As(err, &callErr):
		if errors.Is(err, evm.ErrNoCode) {
			ux.Logger.RedXToUser("no contract deployed at %s", callErr.Address.Hex())
		} else if callErr.Reason != "" {
			ux.Logger.RedXToUser("call reverted: %s", logging.Red.Wrap(callErr.Reason))
		} else {
			ux.Logger.RedXToUser("call failed at %s", callErr.Address.Hex())
		}
	case errors.As(err, &decodeErr):
		ux.Logger.RedXToUser("could not decode the result of %s", decodeErr.Method)
	}
}
