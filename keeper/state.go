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
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/polymarket-alm-ai/halo-contract/types"
)

// State accessors follow a single convention: a missing entry reads as its
// zero value, every other storage failure propagates.

func (k *Keeper) GetAdministrator(ctx context.Context) (string, error) {
	return k.getString(ctx, k.Administrator)
}

func (k *Keeper) GetPendingAdministrator(ctx context.Context) (string, error) {
	return k.getString(ctx, k.PendingAdministrator)
}

func (k *Keeper) GetOperator(ctx context.Context) (string, error) {
	return k.getString(ctx, k.Operator)
}

func (k *Keeper) GetValuer(ctx context.Context) (string, error) {
	return k.getString(ctx, k.Valuer)
}

// RoleHolder resolves the current holder of a role. An unset role has no
// holder and therefore authorizes nobody.
func (k *Keeper) RoleHolder(ctx context.Context, role types.Role) (string, error) {
	switch role {
	case types.RoleAdministrator:
		return k.GetAdministrator(ctx)
	case types.RoleOperator:
		return k.GetOperator(ctx)
	case types.RoleValuer:
		return k.GetValuer(ctx)
	default:
		return "", sdkerrors.Wrapf(types.ErrInvalidRequest, "unknown role %d", role)
	}
}

func (k *Keeper) GetTotalShares(ctx context.Context) (math.Int, error) {
	return k.getInt(ctx, k.TotalShares)
}

func (k *Keeper) GetOwnerShares(ctx context.Context, owner []byte) (math.Int, error) {
	shares, err := k.OwnerShares.Get(ctx, owner)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return shares, nil
}

// SetOwnerShares writes an owner's balance, removing the entry entirely when
// it reaches zero so iteration only ever visits live holders.
func (k *Keeper) SetOwnerShares(ctx context.Context, owner []byte, shares math.Int) error {
	if shares.IsZero() {
		err := k.OwnerShares.Remove(ctx, owner)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}

	return k.OwnerShares.Set(ctx, owner, shares)
}

// IterateOwnerShares visits every live share holder. The callback returns
// true to stop early.
func (k *Keeper) IterateOwnerShares(ctx context.Context, fn func(owner []byte, shares math.Int) (bool, error)) error {
	return k.OwnerShares.Walk(ctx, nil, fn)
}

func (k *Keeper) GetReportedTotalValue(ctx context.Context) (math.Int, error) {
	return k.getInt(ctx, k.ReportedTotalValue)
}

func (k *Keeper) GetLastValuationTime(ctx context.Context) (int64, error) {
	return k.getInt64(ctx, k.LastValuationTime)
}

func (k *Keeper) GetMaxValuationAge(ctx context.Context) (int64, error) {
	return k.getInt64(ctx, k.MaxValuationAge)
}

func (k *Keeper) GetValuationReportCount(ctx context.Context) (uint64, error) {
	count, err := k.ValuationReportCount.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return count, nil
}

func (k *Keeper) GetDepositsEnabled(ctx context.Context) (bool, error) {
	return k.getBool(ctx, k.DepositsEnabled)
}

func (k *Keeper) GetWithdrawalsEnabled(ctx context.Context) (bool, error) {
	return k.getBool(ctx, k.WithdrawalsEnabled)
}

func (k *Keeper) GetMinDeposit(ctx context.Context) (math.Int, error) {
	return k.getInt(ctx, k.MinDeposit)
}

func (k *Keeper) GetTotalMovedOut(ctx context.Context) (math.Int, error) {
	return k.getInt(ctx, k.TotalMovedOut)
}

// AddTotalMovedOut increments the cumulative outbound counter. The counter is
// informational and monotone; it is never reconciled against the on-hand
// balance.
func (k *Keeper) AddTotalMovedOut(ctx context.Context, amount math.Int) (math.Int, error) {
	total, err := k.GetTotalMovedOut(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	total, err = total.SafeAdd(amount)
	if err != nil {
		return math.ZeroInt(), err
	}

	return total, k.TotalMovedOut.Set(ctx, total)
}

// NextOutboundID allocates the next outbound intent identifier.
func (k *Keeper) NextOutboundID(ctx context.Context) (uint64, error) {
	id, err := k.OutboundNextID.Get(ctx)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			return 0, err
		}
		id = 0
	}

	return id, k.OutboundNextID.Set(ctx, id+1)
}

func (k *Keeper) GetOutboundIntent(ctx context.Context, id uint64) (types.OutboundIntent, bool, error) {
	intent, err := k.OutboundIntents.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.OutboundIntent{}, false, nil
		}
		return types.OutboundIntent{}, false, err
	}

	return intent, true, nil
}

func (k *Keeper) SetOutboundIntent(ctx context.Context, id uint64, intent types.OutboundIntent) error {
	return k.OutboundIntents.Set(ctx, id, intent)
}

// IterateOutboundIntents visits recorded intents in id order.
func (k *Keeper) IterateOutboundIntents(ctx context.Context, fn func(id uint64, intent types.OutboundIntent) (bool, error)) error {
	return k.OutboundIntents.Walk(ctx, nil, fn)
}

func (k *Keeper) GetSpenderAllowance(ctx context.Context, denom, spender string) (math.Int, error) {
	allowance, err := k.SpenderAllowances.Get(ctx, collections.Join(denom, spender))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return allowance, nil
}

func (k *Keeper) SetSpenderAllowance(ctx context.Context, denom, spender string, allowance math.Int) error {
	key := collections.Join(denom, spender)
	if allowance.IsZero() {
		err := k.SpenderAllowances.Remove(ctx, key)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}

	return k.SpenderAllowances.Set(ctx, key, allowance)
}

func (k *Keeper) getString(ctx context.Context, item collections.Item[string]) (string, error) {
	value, err := item.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	return value, nil
}

func (k *Keeper) getBool(ctx context.Context, item collections.Item[bool]) (bool, error) {
	value, err := item.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return value, nil
}

func (k *Keeper) getInt64(ctx context.Context, item collections.Item[int64]) (int64, error) {
	value, err := item.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return value, nil
}

func (k *Keeper) getInt(ctx context.Context, item collections.Item[math.Int]) (math.Int, error) {
	value, err := item.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return value, nil
}
