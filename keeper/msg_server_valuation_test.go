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

package keeper_test

import (
	"errors"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymarket-alm-ai/halo-contract/keeper"
	"github.com/polymarket-alm-ai/halo-contract/types"
	"github.com/polymarket-alm-ai/halo-contract/utils"
)

func TestReportValueAuthorization(t *testing.T) {
	vault := setupVault(t)
	bob := utils.TestAccount()

	// ACT & ASSERT: Neither a stranger nor the administrator may report.
	for _, caller := range []string{bob.Address, vault.admin.Address, vault.operator.Address} {
		_, err := vault.server.ReportValue(vault.Ctx, &types.MsgReportValue{
			Valuer:     caller,
			TotalValue: math.NewInt(100*ONE),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrUnauthorized))
	}

	// ACT & ASSERT: The valuer may.
	resp, err := vault.server.ReportValue(vault.Ctx, &types.MsgReportValue{
		Valuer:     vault.valuer.Address,
		TotalValue: math.NewInt(100*ONE),
	})
	require.NoError(t, err)
	assert.Equal(t, math.ZeroInt(), resp.PreviousValue)
}

func TestReportValueAcceptedWithoutBounds(t *testing.T) {
	vault := setupVault(t)
	vault.reportValue(t, 100*ONE)

	// ACT: Report a hundredfold jump and then a collapse to zero. Both are
	// legal; the valuer key is fully trusted for pricing.
	resp, err := vault.server.ReportValue(vault.Ctx, &types.MsgReportValue{
		Valuer:     vault.valuer.Address,
		TotalValue: math.NewInt(10_000*ONE),
	})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100*ONE), resp.PreviousValue)

	vault.reportValue(t, 0)

	count, err := vault.Keeper.GetValuationReportCount(vault.Ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)

	// ASSERT: A negative report is the one thing rejected.
	_, err = vault.server.ReportValue(vault.Ctx, &types.MsgReportValue{
		Valuer:     vault.valuer.Address,
		TotalValue: math.NewInt(-1),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))
}

func TestStalenessBoundary(t *testing.T) {
	vault := setupVault(t)
	bob := utils.TestAccount()

	vault.fund(bob, 100*ONE)
	vault.reportValue(t, 0)
	reportedAt := vault.Header.HeaderInfo.Time

	// ACT & ASSERT: At exactly the window edge the report still counts.
	vault.Header.HeaderInfo.Time = reportedAt.Add(3600 * time.Second)
	_, err := vault.server.Deposit(vault.Ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		Amount:    math.NewInt(10*ONE),
	})
	require.NoError(t, err)

	// ACT & ASSERT: One second past the edge the gate closes.
	vault.Header.HeaderInfo.Time = reportedAt.Add(3601 * time.Second)
	_, err = vault.server.Deposit(vault.Ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		Amount:    math.NewInt(10*ONE),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrStaleValuation))

	// ACT & ASSERT: A fresh report reopens the gate.
	vault.reportValue(t, 10*ONE)
	_, err = vault.server.Deposit(vault.Ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		Amount:    math.NewInt(10*ONE),
	})
	require.NoError(t, err)
}

func TestStalenessLevels(t *testing.T) {
	vault := setupVault(t)

	// ASSERT: Stale before any report exists.
	level, err := vault.Keeper.StalenessLevel(vault.Ctx)
	require.NoError(t, err)
	assert.Equal(t, keeper.StalenessLevelStale, level)

	vault.reportValue(t, 0)
	reportedAt := vault.Header.HeaderInfo.Time

	cases := []struct {
		age   time.Duration
		level string
	}{
		{0, keeper.StalenessLevelFresh},
		{1800 * time.Second, keeper.StalenessLevelFresh},
		{1801 * time.Second, keeper.StalenessLevelWarning},
		{3240 * time.Second, keeper.StalenessLevelWarning},
		{3241 * time.Second, keeper.StalenessLevelCritical},
		{3600 * time.Second, keeper.StalenessLevelCritical},
		{3601 * time.Second, keeper.StalenessLevelStale},
	}
	for _, tc := range cases {
		vault.Header.HeaderInfo.Time = reportedAt.Add(tc.age)
		level, err := vault.Keeper.StalenessLevel(vault.Ctx)
		require.NoError(t, err)
		assert.Equal(t, tc.level, level, "age %s", tc.age)
	}
}

func TestBeginBlockerEmitsAgingAdvisory(t *testing.T) {
	vault := setupVault(t)

	// ARRANGE: No report yet. The advisory stays silent to avoid noise at
	// genesis.
	vault.Keeper.BeginBlocker(vault.Ctx)
	assert.Empty(t, agingEvents(vault))

	vault.reportValue(t, 0)
	reportedAt := vault.Header.HeaderInfo.Time

	// ACT: A fresh report emits nothing.
	vault.Keeper.BeginBlocker(vault.Ctx)
	assert.Empty(t, agingEvents(vault))

	// ACT: Past the warning threshold the advisory fires each block.
	vault.Header.HeaderInfo.Time = reportedAt.Add(2000 * time.Second)
	vault.Keeper.BeginBlocker(vault.Ctx)

	events := agingEvents(vault)
	require.Len(t, events, 1)
	assert.Equal(t, keeper.StalenessLevelWarning, events[0].Level)
	assert.Equal(t, int64(2000), events[0].AgeSeconds)
}

func agingEvents(vault testVault) []*types.EventValuationAging {
	var out []*types.EventValuationAging
	for _, event := range vault.Events.Events {
		if aging, ok := event.(*types.EventValuationAging); ok {
			out = append(out, aging)
		}
	}
	return out
}
