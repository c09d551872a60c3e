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

	"github.com/polymarket-alm-ai/halo-contract/types"
)

// Staleness levels. Only "stale" blocks operations; the earlier levels exist
// so off-chain tooling can react before the gate closes.
const (
	StalenessLevelFresh    = "fresh"
	StalenessLevelWarning  = "warning"
	StalenessLevelCritical = "critical"
	StalenessLevelStale    = "stale"
)

// ValuationAge returns the seconds elapsed since the last valuation report.
// The boolean is false when no report has ever occurred.
func (k *Keeper) ValuationAge(ctx context.Context) (int64, bool, error) {
	count, err := k.GetValuationReportCount(ctx)
	if err != nil {
		return 0, false, err
	}
	if count == 0 {
		return 0, false, nil
	}

	last, err := k.GetLastValuationTime(ctx)
	if err != nil {
		return 0, false, err
	}

	now := k.header.GetHeaderInfo(ctx).Time.Unix()
	return now - last, true, nil
}

// IsFresh reports whether the last valuation is inside the configured
// freshness window. It is unconditionally false before the first report.
func (k *Keeper) IsFresh(ctx context.Context) (bool, error) {
	age, reported, err := k.ValuationAge(ctx)
	if err != nil {
		return false, err
	}
	if !reported {
		return false, nil
	}

	maxAge, err := k.GetMaxValuationAge(ctx)
	if err != nil {
		return false, err
	}

	return age <= maxAge, nil
}

// requireFreshValuation is the precondition every ledger mutation evaluates.
// It forces the valuer to actively participate before any capital movement.
func (k *Keeper) requireFreshValuation(ctx context.Context) error {
	fresh, err := k.IsFresh(ctx)
	if err != nil {
		return err
	}
	if !fresh {
		age, reported, err := k.ValuationAge(ctx)
		if err != nil {
			return err
		}
		if !reported {
			return sdkerrors.Wrap(types.ErrStaleValuation, "no valuation has been reported")
		}
		return sdkerrors.Wrapf(types.ErrStaleValuation, "last report is %d seconds old", age)
	}

	return nil
}

// StalenessLevel grades the age of the last report against the freshness
// window: fresh below half the window, warning up to nine tenths, critical up
// to the window itself, stale beyond it or before any report.
func (k *Keeper) StalenessLevel(ctx context.Context) (string, error) {
	age, reported, err := k.ValuationAge(ctx)
	if err != nil {
		return "", err
	}
	if !reported {
		return StalenessLevelStale, nil
	}

	maxAge, err := k.GetMaxValuationAge(ctx)
	if err != nil {
		return "", err
	}

	switch {
	case age > maxAge:
		return StalenessLevelStale, nil
	case age*10 > maxAge*9:
		return StalenessLevelCritical, nil
	case age*2 > maxAge:
		return StalenessLevelWarning, nil
	default:
		return StalenessLevelFresh, nil
	}
}
