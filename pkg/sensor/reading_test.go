// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package sensor

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ava-labs/libevm/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/sensor-cli/pkg/sensor/mocks"
)

func TestReadingInt(t *testing.T) {
	tests := []struct {
		name     string
		outputs  []interface{}
		expected *big.Int
		errors   bool
	}{
		{
			name:     "big int",
			outputs:  []interface{}{big.NewInt(2150)},
			expected: big.NewInt(2150),
		},
		{
			name:     "int32",
			outputs:  []interface{}{int32(-300)},
			expected: big.NewInt(-300),
		},
		{
			name:     "uint64",
			outputs:  []interface{}{uint64(1 << 40)},
			expected: big.NewInt(1 << 40),
		},
		{
			name:    "not an integer",
			outputs: []interface{}{"21.5"},
			errors:  true,
		},
		{
			name:    "two outputs",
			outputs: []interface{}{int32(1), int32(2)},
			errors:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Reading{Outputs: tt.outputs}.Int()
			if tt.errors {
				require.ErrorIs(t, err, ErrUnexpectedShape)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 0, tt.expected.Cmp(n))
		})
	}
}

func TestReadingTemperaturesShape(t *testing.T) {
	_, err := Reading{Outputs: []interface{}{[]int32{1}}}.Temperatures()
	require.ErrorIs(t, err, ErrUnexpectedShape)

	_, err = Reading{Outputs: []interface{}{[]int32{1, 2}, []*big.Int{big.NewInt(1)}}}.Temperatures()
	require.ErrorIs(t, err, ErrUnexpectedShape)

	_, err = Reading{Outputs: []interface{}{[]uint32{1}, []*big.Int{big.NewInt(1)}}}.Temperatures()
	require.ErrorIs(t, err, ErrUnexpectedShape)

	measurements, err := Reading{Outputs: []interface{}{[]int32{}, []*big.Int{}}}.Temperatures()
	require.NoError(t, err)
	require.Empty(t, measurements)
}

func TestBalances(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockBalanceFetcher(ctrl)
	other := common.HexToAddress("0x8db97C7cEcE249c2b98bDC0226Cc4C2A57BF52FC")
	fetcher.EXPECT().GetAddressBalance(gomock.Any(), testCaller).Return(big.NewInt(1_500_000_000), nil)
	fetcher.EXPECT().GetAddressBalance(gomock.Any(), other).Return(big.NewInt(999), nil)

	balances, err := Balances(context.Background(), fetcher, []common.Address{testCaller, other})
	require.NoError(t, err)
	require.Len(t, balances, 2)
	require.Equal(t, testCaller, balances[0].Address)
	require.Equal(t, other, balances[1].Address)
	require.Equal(t, big.NewInt(1), balances[0].Gwei())
	require.Equal(t, 0, big.NewInt(0).Cmp(balances[1].Gwei()))
}

func TestBalancesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockBalanceFetcher(ctrl)
	refused := errors.New("refused")
	fetcher.EXPECT().GetAddressBalance(gomock.Any(), testCaller).Return(nil, refused)
	fetcher.EXPECT().GetAddressBalance(gomock.Any(), testContract).Return(big.NewInt(1), nil).MaxTimes(1)

	_, err := Balances(context.Background(), fetcher, []common.Address{testCaller, testContract})
	require.ErrorIs(t, err, refused)
}
