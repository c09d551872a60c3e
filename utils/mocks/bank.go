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

package mocks

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polymarket-alm-ai/halo-contract/types"
	"github.com/polymarket-alm-ai/halo-contract/utils"
)

var _ types.BankKeeper = &BankKeeper{}

// SendRestrictionFn mirrors the bank module's send restriction hook. Tests
// use it to run arbitrary code in the middle of a transfer, which is how the
// re-entrancy guard is exercised.
type SendRestrictionFn func(ctx context.Context, from, to sdk.AccAddress, amount sdk.Coins) (sdk.AccAddress, error)

type BankKeeper struct {
	Balances    map[string]sdk.Coins
	Restriction SendRestrictionFn
}

func (k *BankKeeper) GetBalance(_ context.Context, address sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, k.Balances[encodeAddress(address)].AmountOf(denom))
}

func (k *BankKeeper) GetAllBalances(_ context.Context, address sdk.AccAddress) sdk.Coins {
	return k.Balances[encodeAddress(address)]
}

func (k *BankKeeper) SendCoins(ctx context.Context, from, to sdk.AccAddress, amount sdk.Coins) error {
	if k.Restriction != nil {
		var err error
		to, err = k.Restriction(ctx, from, to, amount)
		if err != nil {
			return err
		}
	}

	fromKey, toKey := encodeAddress(from), encodeAddress(to)
	balance, negative := k.Balances[fromKey].SafeSub(amount...)
	if negative {
		return fmt.Errorf("spendable balance %s is smaller than %s", k.Balances[fromKey], amount)
	}

	k.Balances[fromKey] = balance
	k.Balances[toKey] = k.Balances[toKey].Add(amount...)

	return nil
}

// Fund credits an address directly, bypassing the restriction hook.
func (k *BankKeeper) Fund(address sdk.AccAddress, amount sdk.Coins) {
	key := encodeAddress(address)
	k.Balances[key] = k.Balances[key].Add(amount...)
}

func encodeAddress(address sdk.AccAddress) string {
	encoded, _ := sdk.Bech32ifyAddressBytes(utils.Bech32Prefix, address)
	return encoded
}
