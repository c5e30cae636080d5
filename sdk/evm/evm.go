// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"context"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	ethereum "github.com/ava-labs/libevm"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/ethclient"
)

// used to mock the connection function
var ethclientDialContext = ethclient.DialContext

// wraps over ethclient for the read only calls used by the SDK. features:
// - validates the url has a scheme (http/https/ws/wss)
// - reports the rpc url on failures
// - classifies failures into transport and contract call errors
//
// no call is retried: every method maps to exactly one rpc request
type Client struct {
	EthClient *ethclient.Client
	URL       string
}

// indicates if the given rpc url has schema or not
func HasScheme(rpcURL string) (bool, error) {
	if parsedURL, err := url.Parse(rpcURL); err != nil {
		if !strings.Contains(err.Error(), "first path segment in URL cannot contain colon") {
			return false, err
		}
		return false, nil
	} else {
		return strings.Contains(rpcURL, "://") && parsedURL.Scheme != "", nil
	}
}

// connects an evm client to the given [rpcURL]
// for http endpoints no request is made until the first call
func GetClient(ctx context.Context, rpcURL string) (Client, error) {
	client := Client{
		URL: rpcURL,
	}
	hasScheme, err := HasScheme(rpcURL)
	if err != nil {
		return client, &TransportError{
			URL: rpcURL,
			Err: fmt.Errorf("failure determining the scheme of url: %w", err),
		}
	}
	if !hasScheme {
		return client, &TransportError{
			URL: rpcURL,
			Err: fmt.Errorf("url has no scheme"),
		}
	}
	client.EthClient, err = ethclientDialContext(ctx, rpcURL)
	if err != nil {
		return client, &TransportError{
			URL: rpcURL,
			Err: fmt.Errorf("failure connecting: %w", err),
		}
	}
	return client, nil
}

// closes underlying ethclient connection
func (client Client) Close() {
	if client.EthClient != nil {
		client.EthClient.Close()
	}
}

// executes a local, non broadcasted, call of [data] on [to] from [from],
// at the latest block
func (client Client) CallContract(
	ctx context.Context,
	from common.Address,
	to common.Address,
	data []byte,
) ([]byte, error) {
	out, err := client.EthClient.CallContract(ctx, ethereum.CallMsg{
		From: from,
		To:   &to,
		Data: data,
	}, nil)
	if err != nil {
		return nil, ClassifyCallError(client.URL, to, err)
	}
	return out, nil
}

// returns the contract bytecode at [contractAddress]
func (client Client) CodeAt(
	ctx context.Context,
	contractAddress common.Address,
) ([]byte, error) {
	code, err := client.EthClient.CodeAt(ctx, contractAddress, nil)
	if err != nil {
		return nil, &TransportError{
			URL: client.URL,
			Err: fmt.Errorf("failure obtaining code at address %s: %w", contractAddress.Hex(), err),
		}
	}
	return code, nil
}

// indicates wether a contract is deployed on [contractAddress]
func (client Client) ContractAlreadyDeployed(
	ctx context.Context,
	contractAddress common.Address,
) (bool, error) {
	if bs, err := client.CodeAt(ctx, contractAddress); err != nil {
		return false, err
	} else {
		return len(bs) != 0, nil
	}
}

// returns the balance for [address] at the latest block
func (client Client) GetAddressBalance(
	ctx context.Context,
	address common.Address,
) (*big.Int, error) {
	balance, err := client.EthClient.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, &TransportError{
			URL: client.URL,
			Err: fmt.Errorf("failure obtaining balance for %s: %w", address.Hex(), err),
		}
	}
	return balance, nil
}
