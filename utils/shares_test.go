// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, Polymarket ALM. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package utils_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymarket-alm-ai/halo-contract/utils"
)

func TestConversionsAtUnevenPrice(t *testing.T) {
	// 100 shares against a value of 157: one share is worth 1.57.
	totalValue, totalShares := math.NewInt(157), math.NewInt(100)

	// Deposit floors the shares minted.
	shares, err := utils.SharesForDeposit(math.NewInt(10), totalValue, totalShares)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(6), shares) // 10*100/157 = 6.37

	// Mint ceils the assets collected.
	assets, err := utils.AssetsForMint(math.NewInt(10), totalValue, totalShares)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(16), assets) // 10*157/100 = 15.7

	// Withdraw ceils the shares burned.
	shares, err = utils.SharesForWithdraw(math.NewInt(10), totalValue, totalShares)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(7), shares) // 10*100/157 = 6.37

	// Redeem floors the assets paid.
	assets, err = utils.AssetsForRedeem(math.NewInt(10), totalValue, totalShares)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(15), assets) // 10*157/100 = 15.7
}

func TestConversionsAtZeroSupply(t *testing.T) {
	// With no shares outstanding every conversion is 1:1, whatever the
	// reported value says.
	for _, totalValue := range []int64{0, 42} {
		shares, err := utils.SharesForDeposit(math.NewInt(9), math.NewInt(totalValue), math.ZeroInt())
		require.NoError(t, err)
		assert.Equal(t, math.NewInt(9), shares)

		assets, err := utils.AssetsForRedeem(math.NewInt(9), math.NewInt(totalValue), math.ZeroInt())
		require.NoError(t, err)
		assert.Equal(t, math.NewInt(9), assets)
	}
}

func TestConversionsExactDivision(t *testing.T) {
	// When the division is exact, floor and ceil agree.
	totalValue, totalShares := math.NewInt(200), math.NewInt(100)

	floor, err := utils.SharesForDeposit(math.NewInt(10), totalValue, totalShares)
	require.NoError(t, err)
	ceil, err := utils.SharesForWithdraw(math.NewInt(10), totalValue, totalShares)
	require.NoError(t, err)
	assert.Equal(t, floor, ceil)
	assert.Equal(t, math.NewInt(5), floor)
}

func TestConversionRejectsWipedValue(t *testing.T) {
	// A zero reported value with shares outstanding has no defined price.
	_, err := utils.SharesForDeposit(math.NewInt(10), math.ZeroInt(), math.NewInt(100))
	require.Error(t, err)

	_, err = utils.AssetsForRedeem(math.NewInt(10), math.ZeroInt(), math.NewInt(100))
	require.Error(t, err)
}

func TestConversionRejectsInvalidInputs(t *testing.T) {
	_, err := utils.SharesForDeposit(math.Int{}, math.NewInt(1), math.NewInt(1))
	require.Error(t, err)

	_, err = utils.AssetsForMint(math.NewInt(-1), math.NewInt(1), math.NewInt(1))
	require.Error(t, err)
}
