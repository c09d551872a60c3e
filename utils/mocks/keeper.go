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
	"testing"
	"time"

	"cosmossdk.io/collections/colltest"
	"cosmossdk.io/core/header"
	"cosmossdk.io/log"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polymarket-alm-ai/halo-contract/keeper"
	"github.com/polymarket-alm-ai/halo-contract/utils"
)

// Denom is the deposit asset used by every test vault.
const Denom = "uusdc"

// Env bundles a fully wired test vault with handles to every mock behind it.
type Env struct {
	Keeper     *keeper.Keeper
	Bank       *BankKeeper
	Header     *HeaderService
	Events     *EventService
	Settlement *SettlementClient
	Executor   *CallExecutor
	Ctx        context.Context
}

// HaloKeeper builds a vault keeper backed by an in-memory store and mock
// services. The clock starts at a fixed time so staleness tests are
// deterministic.
func HaloKeeper(t *testing.T) Env {
	t.Helper()

	store, ctx := colltest.MockStore()

	bank := &BankKeeper{Balances: make(map[string]sdk.Coins)}
	headerService := &HeaderService{HeaderInfo: header.Info{
		Height: 1,
		Time:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
	events := &EventService{}
	settlement := &SettlementClient{}
	executor := &CallExecutor{}

	k := keeper.NewKeeper(
		Denom,
		store,
		log.NewNopLogger(),
		headerService,
		events,
		addresscodec.NewBech32Codec(utils.Bech32Prefix),
		bank,
		settlement,
		executor,
	)

	return Env{
		Keeper:     k,
		Bank:       bank,
		Header:     headerService,
		Events:     events,
		Settlement: settlement,
		Executor:   executor,
		Ctx:        ctx,
	}
}
