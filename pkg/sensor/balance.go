// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package sensor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ava-labs/libevm/common"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/sensor-cli/sdk/evm"
)

var gwei = big.NewInt(1_000_000_000)

type Balance struct {
	Address common.Address
	Wei     *big.Int
}

// Gwei truncates the balance to whole gwei
func (b Balance) Gwei() *big.Int {
	return new(big.Int).Quo(b.Wei, gwei)
}

//go:generate mockgen -destination=mocks/balance_fetcher.go -package=mocks . BalanceFetcher

// BalanceFetcher is the transport used by [Balances]
type BalanceFetcher interface {
	GetAddressBalance(ctx context.Context, address common.Address) (*big.Int, error)
}

// Balances gets the latest balance of every address, concurrently. Results
// keep the order of [addresses]. The first failure cancels the others
func Balances(ctx context.Context, fetcher BalanceFetcher, addresses []common.Address) ([]Balance, error) {
	balances := make([]Balance, len(addresses))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, address := range addresses {
		eg.Go(func() error {
			wei, err := fetcher.GetAddressBalance(egCtx, address)
			if err != nil {
				return fmt.Errorf("balance of %s: %w", address.Hex(), err)
			}
			balances[i] = Balance{
				Address: address,
				Wei:     wei,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return balances, nil
}

// DialBalances connects to [endpoint] and gets the balances of [addresses]
func DialBalances(ctx context.Context, endpoint string, addresses []common.Address) ([]Balance, error) {
	client, err := evm.GetClient(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer client.Close()
	return Balances(ctx, client, addresses)
}
