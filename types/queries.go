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

package types

import (
	"context"
	"time"

	"cosmossdk.io/math"
)

// QueryServer is the read-only surface of the vault.
type QueryServer interface {
	VaultInfo(ctx context.Context, req *QueryVaultInfo) (*QueryVaultInfoResponse, error)
	OwnerShares(ctx context.Context, req *QueryOwnerShares) (*QueryOwnerSharesResponse, error)
	PricePerShare(ctx context.Context, req *QueryPricePerShare) (*QueryPricePerShareResponse, error)
	ConvertToShares(ctx context.Context, req *QueryConvertToShares) (*QueryConvertToSharesResponse, error)
	ConvertToAssets(ctx context.Context, req *QueryConvertToAssets) (*QueryConvertToAssetsResponse, error)
	Roles(ctx context.Context, req *QueryRoles) (*QueryRolesResponse, error)
	Allowance(ctx context.Context, req *QueryAllowance) (*QueryAllowanceResponse, error)
	OutboundIntent(ctx context.Context, req *QueryOutboundIntent) (*QueryOutboundIntentResponse, error)
	OutboundIntents(ctx context.Context, req *QueryOutboundIntents) (*QueryOutboundIntentsResponse, error)
	ValuationStatus(ctx context.Context, req *QueryValuationStatus) (*QueryValuationStatusResponse, error)
}

type QueryVaultInfo struct{}

type QueryVaultInfoResponse struct {
	Denom              string
	TotalShares        math.Int
	ReportedTotalValue math.Int
	LastValuationTime  time.Time
	MaxValuationAge    int64
	OnHandBalance      math.Int
	TotalMovedOut      math.Int
	DepositsEnabled    bool
	WithdrawalsEnabled bool
	MinDeposit         math.Int
}

type QueryOwnerShares struct {
	Owner string
}

type QueryOwnerSharesResponse struct {
	Shares math.Int
}

type QueryPricePerShare struct{}

// QueryPricePerShareResponse carries the conversion rate as a fraction so
// callers are not exposed to intermediate rounding.
type QueryPricePerShareResponse struct {
	ValueNumerator   math.Int
	ShareDenominator math.Int
}

type QueryConvertToShares struct {
	Assets math.Int
}

type QueryConvertToSharesResponse struct {
	Shares math.Int
}

type QueryConvertToAssets struct {
	Shares math.Int
}

type QueryConvertToAssetsResponse struct {
	Assets math.Int
}

type QueryRoles struct{}

type QueryRolesResponse struct {
	Administrator        string
	PendingAdministrator string
	Operator             string
	Valuer               string
}

type QueryAllowance struct {
	Denom   string
	Spender string
}

type QueryAllowanceResponse struct {
	Allowance math.Int
}

type QueryOutboundIntent struct {
	Id uint64
}

type QueryOutboundIntentResponse struct {
	Intent OutboundIntent
}

type QueryOutboundIntents struct{}

type QueryOutboundIntentsResponse struct {
	Intents []OutboundIntent
}

type QueryValuationStatus struct{}

type QueryValuationStatusResponse struct {
	Level             string
	Fresh             bool
	AgeSeconds        int64
	LastValuationTime time.Time
	MaxValuationAge   int64
}
