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
	"time"

	sdkerrors "cosmossdk.io/errors"

	"github.com/polymarket-alm-ai/halo-contract/types"
	"github.com/polymarket-alm-ai/halo-contract/utils"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

func (q queryServer) VaultInfo(ctx context.Context, req *types.QueryVaultInfo) (*types.QueryVaultInfoResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	totalShares, err := q.GetTotalShares(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read total share supply")
	}
	totalValue, err := q.GetReportedTotalValue(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read reported total value")
	}
	lastValuation, err := q.GetLastValuationTime(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read valuation time")
	}
	maxAge, err := q.GetMaxValuationAge(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read staleness window")
	}
	totalMovedOut, err := q.GetTotalMovedOut(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read total moved out")
	}
	depositsEnabled, err := q.GetDepositsEnabled(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read deposits switch")
	}
	withdrawalsEnabled, err := q.GetWithdrawalsEnabled(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read withdrawals switch")
	}
	minDeposit, err := q.GetMinDeposit(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read minimum deposit")
	}

	return &types.QueryVaultInfoResponse{
		Denom:              q.denom,
		TotalShares:        totalShares,
		ReportedTotalValue: totalValue,
		LastValuationTime:  time.Unix(lastValuation, 0).UTC(),
		MaxValuationAge:    maxAge,
		OnHandBalance:      q.OnHandBalance(ctx),
		TotalMovedOut:      totalMovedOut,
		DepositsEnabled:    depositsEnabled,
		WithdrawalsEnabled: withdrawalsEnabled,
		MinDeposit:         minDeposit,
	}, nil
}

func (q queryServer) OwnerShares(ctx context.Context, req *types.QueryOwnerShares) (*types.QueryOwnerSharesResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	owner, err := q.decodeAddress(req.Owner)
	if err != nil {
		return nil, err
	}

	shares, err := q.GetOwnerShares(ctx, owner)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read owner shares")
	}

	return &types.QueryOwnerSharesResponse{Shares: shares}, nil
}

// PricePerShare reports the raw conversion fraction. When no shares exist the
// denominator is zero and callers should treat the rate as 1:1.
func (q queryServer) PricePerShare(ctx context.Context, req *types.QueryPricePerShare) (*types.QueryPricePerShareResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	totalShares, err := q.GetTotalShares(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read total share supply")
	}
	totalValue, err := q.GetReportedTotalValue(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read reported total value")
	}

	return &types.QueryPricePerShareResponse{
		ValueNumerator:   totalValue,
		ShareDenominator: totalShares,
	}, nil
}

// ConvertToShares previews a deposit without the switches, the freshness
// gate, or the minimum deposit floor. The preview uses the same flooring as
// Deposit itself.
func (q queryServer) ConvertToShares(ctx context.Context, req *types.QueryConvertToShares) (*types.QueryConvertToSharesResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}
	if req.Assets.IsNil() || req.Assets.IsNegative() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "asset amount cannot be negative")
	}

	totalShares, err := q.GetTotalShares(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read total share supply")
	}
	totalValue, err := q.GetReportedTotalValue(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read reported total value")
	}

	shares, err := utils.SharesForDeposit(req.Assets, totalValue, totalShares)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, err.Error())
	}

	return &types.QueryConvertToSharesResponse{Shares: shares}, nil
}

// ConvertToAssets previews a redemption, flooring like Redeem itself.
func (q queryServer) ConvertToAssets(ctx context.Context, req *types.QueryConvertToAssets) (*types.QueryConvertToAssetsResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}
	if req.Shares.IsNil() || req.Shares.IsNegative() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "share amount cannot be negative")
	}

	totalShares, err := q.GetTotalShares(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read total share supply")
	}
	totalValue, err := q.GetReportedTotalValue(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read reported total value")
	}

	assets, err := utils.AssetsForRedeem(req.Shares, totalValue, totalShares)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, err.Error())
	}

	return &types.QueryConvertToAssetsResponse{Assets: assets}, nil
}

func (q queryServer) Roles(ctx context.Context, req *types.QueryRoles) (*types.QueryRolesResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	administrator, err := q.GetAdministrator(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read administrator")
	}
	pending, err := q.GetPendingAdministrator(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read pending administrator")
	}
	operator, err := q.GetOperator(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read operator")
	}
	valuer, err := q.GetValuer(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read valuer")
	}

	return &types.QueryRolesResponse{
		Administrator:        administrator,
		PendingAdministrator: pending,
		Operator:             operator,
		Valuer:               valuer,
	}, nil
}

func (q queryServer) Allowance(ctx context.Context, req *types.QueryAllowance) (*types.QueryAllowanceResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}
	if req.Denom == "" {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "denom cannot be empty")
	}

	allowance, err := q.GetSpenderAllowance(ctx, req.Denom, req.Spender)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read spender allowance")
	}

	return &types.QueryAllowanceResponse{Allowance: allowance}, nil
}

func (q queryServer) OutboundIntent(ctx context.Context, req *types.QueryOutboundIntent) (*types.QueryOutboundIntentResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	intent, found, err := q.GetOutboundIntent(ctx, req.Id)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read outbound intent")
	}
	if !found {
		return nil, sdkerrors.Wrapf(types.ErrInvalidArgument, "no outbound intent with id %d", req.Id)
	}

	return &types.QueryOutboundIntentResponse{Intent: intent}, nil
}

func (q queryServer) OutboundIntents(ctx context.Context, req *types.QueryOutboundIntents) (*types.QueryOutboundIntentsResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	var intents []types.OutboundIntent
	err := q.IterateOutboundIntents(ctx, func(_ uint64, intent types.OutboundIntent) (bool, error) {
		intents = append(intents, intent)
		return false, nil
	})
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to iterate outbound intents")
	}

	return &types.QueryOutboundIntentsResponse{Intents: intents}, nil
}

func (q queryServer) ValuationStatus(ctx context.Context, req *types.QueryValuationStatus) (*types.QueryValuationStatusResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	level, err := q.StalenessLevel(ctx)
	if err != nil {
		return nil, err
	}
	age, _, err := q.ValuationAge(ctx)
	if err != nil {
		return nil, err
	}
	fresh, err := q.IsFresh(ctx)
	if err != nil {
		return nil, err
	}
	lastValuation, err := q.GetLastValuationTime(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read valuation time")
	}
	maxAge, err := q.GetMaxValuationAge(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read staleness window")
	}

	return &types.QueryValuationStatusResponse{
		Level:             level,
		Fresh:             fresh,
		AgeSeconds:        age,
		LastValuationTime: time.Unix(lastValuation, 0).UTC(),
		MaxValuationAge:   maxAge,
	}, nil
}
