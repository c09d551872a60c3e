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

package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/polymarket-alm-ai/halo-contract/types"
)

// InitGenesis seeds the vault. The total share supply is derived from the
// per-owner balances rather than stored in genesis, so the two can never
// disagree.
func (k *Keeper) InitGenesis(ctx context.Context, genesis types.GenesisState) error {
	if err := genesis.Validate(); err != nil {
		return sdkerrors.Wrap(types.ErrInvalidArgument, err.Error())
	}

	if genesis.Administrator != "" {
		if err := k.Administrator.Set(ctx, genesis.Administrator); err != nil {
			return sdkerrors.Wrap(err, "unable to persist administrator")
		}
	}
	if genesis.Operator != "" {
		if err := k.Operator.Set(ctx, genesis.Operator); err != nil {
			return sdkerrors.Wrap(err, "unable to persist operator")
		}
	}
	if genesis.Valuer != "" {
		if err := k.Valuer.Set(ctx, genesis.Valuer); err != nil {
			return sdkerrors.Wrap(err, "unable to persist valuer")
		}
	}

	if err := k.DepositsEnabled.Set(ctx, genesis.DepositsEnabled); err != nil {
		return sdkerrors.Wrap(err, "unable to persist deposits switch")
	}
	if err := k.WithdrawalsEnabled.Set(ctx, genesis.WithdrawalsEnabled); err != nil {
		return sdkerrors.Wrap(err, "unable to persist withdrawals switch")
	}
	if err := k.MinDeposit.Set(ctx, genesis.MinDeposit); err != nil {
		return sdkerrors.Wrap(err, "unable to persist minimum deposit")
	}
	if err := k.MaxValuationAge.Set(ctx, genesis.MaxValuationAge); err != nil {
		return sdkerrors.Wrap(err, "unable to persist staleness window")
	}

	total := math.ZeroInt()
	for owner, shares := range genesis.OwnerShares {
		bz, err := k.address.StringToBytes(owner)
		if err != nil {
			return sdkerrors.Wrapf(types.ErrInvalidArgument, "invalid owner address %s", owner)
		}
		if err := k.SetOwnerShares(ctx, bz, shares); err != nil {
			return sdkerrors.Wrapf(err, "unable to persist shares for %s", owner)
		}
		total = total.Add(shares)
	}
	if err := k.TotalShares.Set(ctx, total); err != nil {
		return sdkerrors.Wrap(err, "unable to persist total share supply")
	}

	return nil
}

// ExportGenesis reads the portable subset of vault state. Valuation history,
// outbound intents, and allowances are operational state and do not survive a
// chain export; the new chain starts behind a fresh valuation report.
func (k *Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	administrator, err := k.GetAdministrator(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read administrator")
	}
	operator, err := k.GetOperator(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read operator")
	}
	valuer, err := k.GetValuer(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read valuer")
	}
	depositsEnabled, err := k.GetDepositsEnabled(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read deposits switch")
	}
	withdrawalsEnabled, err := k.GetWithdrawalsEnabled(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read withdrawals switch")
	}
	minDeposit, err := k.GetMinDeposit(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read minimum deposit")
	}
	maxAge, err := k.GetMaxValuationAge(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read staleness window")
	}

	ownerShares := make(map[string]math.Int)
	err = k.IterateOwnerShares(ctx, func(owner []byte, shares math.Int) (bool, error) {
		address, err := k.address.BytesToString(owner)
		if err != nil {
			return true, err
		}
		ownerShares[address] = shares
		return false, nil
	})
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to iterate owner shares")
	}

	return &types.GenesisState{
		Administrator:      administrator,
		Operator:           operator,
		Valuer:             valuer,
		DepositsEnabled:    depositsEnabled,
		WithdrawalsEnabled: withdrawalsEnabled,
		MinDeposit:         minDeposit,
		MaxValuationAge:    maxAge,
		OwnerShares:        ownerShares,
	}, nil
}
