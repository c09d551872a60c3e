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

// ReportValue records a new aggregate valuation of all assets under
// management, on hand and off ledger. The report is accepted as given, with
// no bounds checking against the previous value; the valuer key is fully
// trusted for pricing. Reporting restarts the staleness clock.
func (m msgServer) ReportValue(ctx context.Context, msg *types.MsgReportValue) (*types.MsgReportValueResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.TotalValue.IsNil() || msg.TotalValue.IsNegative() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "reported value cannot be negative")
	}

	if err := m.requireCapability(ctx, msg.Valuer, types.CapabilityReportValue); err != nil {
		return nil, err
	}

	previous, err := m.GetReportedTotalValue(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read reported total value")
	}

	if err := m.ReportedTotalValue.Set(ctx, msg.TotalValue); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to persist reported total value")
	}

	headerInfo := m.header.GetHeaderInfo(ctx)
	if err := m.LastValuationTime.Set(ctx, headerInfo.Time.Unix()); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to persist valuation time")
	}

	count, err := m.GetValuationReportCount(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read valuation report count")
	}
	if err := m.ValuationReportCount.Set(ctx, count+1); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to persist valuation report count")
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventValueReported{
		Valuer:        msg.Valuer,
		PreviousValue: previous,
		NewValue:      msg.TotalValue,
		Timestamp:     headerInfo.Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit value reported event")
	}

	return &types.MsgReportValueResponse{PreviousValue: previous}, nil
}
