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
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polymarket-alm-ai/halo-contract/types"
)

type Keeper struct {
	denom string

	store store.KVStoreService

	logger  log.Logger
	header  header.Service
	event   event.Service
	address address.Codec

	bank       types.BankKeeper
	settlement types.SettlementClient
	executor   types.CallExecutor

	Administrator        collections.Item[string]
	PendingAdministrator collections.Item[string]
	Operator             collections.Item[string]
	Valuer               collections.Item[string]

	TotalShares collections.Item[math.Int]
	OwnerShares collections.Map[[]byte, math.Int]

	ReportedTotalValue   collections.Item[math.Int]
	LastValuationTime    collections.Item[int64]
	MaxValuationAge      collections.Item[int64]
	ValuationReportCount collections.Item[uint64]

	DepositsEnabled    collections.Item[bool]
	WithdrawalsEnabled collections.Item[bool]
	MinDeposit         collections.Item[math.Int]

	TotalMovedOut     collections.Item[math.Int]
	OutboundIntents   collections.Map[uint64, types.OutboundIntent]
	OutboundNextID    collections.Item[uint64]
	SpenderAllowances collections.Map[collections.Pair[string, string], math.Int]

	// Locked is the call-scoped exclusive guard. It is an explicit state item
	// rather than implicit runtime behavior so tests can assert acquisition
	// and release directly.
	Locked collections.Item[bool]
}

func NewKeeper(
	denom string,
	store store.KVStoreService,
	logger log.Logger,
	header header.Service,
	event event.Service,
	address address.Codec,
	bank types.BankKeeper,
	settlement types.SettlementClient,
	executor types.CallExecutor,
) *Keeper {
	builder := collections.NewSchemaBuilder(store)

	keeper := &Keeper{
		denom: denom,
		store: store,

		logger:  logger.With("module", types.ModuleName),
		header:  header,
		event:   event,
		address: address,

		bank:       bank,
		settlement: settlement,
		executor:   executor,

		Administrator:        collections.NewItem(builder, types.AdministratorKey, "administrator", collections.StringValue),
		PendingAdministrator: collections.NewItem(builder, types.PendingAdministratorKey, "pending_administrator", collections.StringValue),
		Operator:             collections.NewItem(builder, types.OperatorKey, "operator", collections.StringValue),
		Valuer:               collections.NewItem(builder, types.ValuerKey, "valuer", collections.StringValue),

		TotalShares: collections.NewItem(builder, types.TotalSharesKey, "total_shares", sdk.IntValue),
		OwnerShares: collections.NewMap(builder, types.OwnerSharePrefix, "owner_shares", collections.BytesKey, sdk.IntValue),

		ReportedTotalValue:   collections.NewItem(builder, types.ReportedTotalValueKey, "reported_total_value", sdk.IntValue),
		LastValuationTime:    collections.NewItem(builder, types.LastValuationTimeKey, "last_valuation_time", collections.Int64Value),
		MaxValuationAge:      collections.NewItem(builder, types.MaxValuationAgeKey, "max_valuation_age", collections.Int64Value),
		ValuationReportCount: collections.NewItem(builder, types.ValuationReportCountKey, "valuation_report_count", collections.Uint64Value),

		DepositsEnabled:    collections.NewItem(builder, types.DepositsEnabledKey, "deposits_enabled", collections.BoolValue),
		WithdrawalsEnabled: collections.NewItem(builder, types.WithdrawalsEnabledKey, "withdrawals_enabled", collections.BoolValue),
		MinDeposit:         collections.NewItem(builder, types.MinDepositKey, "min_deposit", sdk.IntValue),

		TotalMovedOut:     collections.NewItem(builder, types.TotalMovedOutKey, "total_moved_out", sdk.IntValue),
		OutboundIntents:   collections.NewMap(builder, types.OutboundIntentPrefix, "outbound_intents", collections.Uint64Key, types.OutboundIntentValue{}),
		OutboundNextID:    collections.NewItem(builder, types.OutboundNextIDKey, "outbound_next_id", collections.Uint64Value),
		SpenderAllowances: collections.NewMap(builder, types.SpenderAllowancePrefix, "spender_allowances", collections.PairKeyCodec(collections.StringKey, collections.StringKey), sdk.IntValue),

		Locked: collections.NewItem(builder, types.LockedKey, "locked", collections.BoolValue),
	}

	_, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return keeper
}

// SetBankKeeper overwrites the bank keeper used in this module.
func (k *Keeper) SetBankKeeper(bank types.BankKeeper) {
	k.bank = bank
}

// SetSettlementClient overwrites the settlement entry point adapter.
func (k *Keeper) SetSettlementClient(settlement types.SettlementClient) {
	k.settlement = settlement
}

// SetCallExecutor overwrites the external call executor.
func (k *Keeper) SetCallExecutor(executor types.CallExecutor) {
	k.executor = executor
}

// GetDenom is a utility that returns the configured deposit asset denom.
func (k *Keeper) GetDenom() string {
	return k.denom
}

// OnHandBalance returns the deposit asset physically custodied by the vault
// right now. It is always read live from the bank ledger and is the hard
// ceiling for any immediate redemption or outbound transfer, regardless of
// the reported total value.
func (k *Keeper) OnHandBalance(ctx context.Context) math.Int {
	return k.bank.GetBalance(ctx, types.ModuleAddress, k.denom).Amount
}

// acquireLock takes the exclusive call guard. A second acquisition while the
// guard is held means an external call re-entered the vault mid-operation.
func (k *Keeper) acquireLock(ctx context.Context) error {
	locked, err := k.IsLocked(ctx)
	if err != nil {
		return err
	}
	if locked {
		return types.ErrReentrancy
	}

	return k.Locked.Set(ctx, true)
}

// releaseLock drops the guard. It runs on every exit path.
func (k *Keeper) releaseLock(ctx context.Context) {
	if err := k.Locked.Set(ctx, false); err != nil {
		k.logger.Error("unable to release call guard", "err", err)
	}
}

// IsLocked reports whether a guarded operation is currently mid-flight.
func (k *Keeper) IsLocked(ctx context.Context) (bool, error) {
	locked, err := k.Locked.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return locked, nil
}
