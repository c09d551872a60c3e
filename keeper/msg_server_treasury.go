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
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polymarket-alm-ai/halo-contract/types"
)

// Treasury operations move custody off ledger. They are gated by role, not by
// the valuation clock or the deposit and withdrawal switches: a vault with a
// stale report must still be able to reposition or recover funds.

// InitiateOutboundTransfer hands an opaque settlement instruction to the
// settlement client and records the movement. The correlation id returned is
// derived locally for audit purposes; it is not a settlement confirmation and
// no acknowledgement is ever awaited.
func (m msgServer) InitiateOutboundTransfer(ctx context.Context, msg *types.MsgInitiateOutboundTransfer) (*types.MsgInitiateOutboundTransferResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "transfer amount must be positive")
	}
	if len(msg.Payload) == 0 {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "settlement payload cannot be empty")
	}
	if msg.Fee.Amount.IsNil() || !msg.Fee.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "fee budget must be positive")
	}

	if err := m.requireCapability(ctx, msg.Signer, types.CapabilityTreasury); err != nil {
		return nil, err
	}

	if err := m.acquireLock(ctx); err != nil {
		return nil, err
	}
	defer m.releaseLock(ctx)

	onHand := m.OnHandBalance(ctx)
	if msg.Amount.GT(onHand) {
		return nil, sdkerrors.Wrapf(types.ErrInsufficientOnHand, "requested %s, on hand %s", msg.Amount.String(), onHand.String())
	}

	id, err := m.NextOutboundID(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to allocate outbound sequence")
	}

	headerInfo := m.header.GetHeaderInfo(ctx)
	correlationId := deriveCorrelationId(msg.Signer, msg.Amount, headerInfo.Time.Unix(), id)

	if err := m.SetOutboundIntent(ctx, id, types.OutboundIntent{
		Id:            id,
		CorrelationId: correlationId,
		Initiator:     msg.Signer,
		Amount:        msg.Amount,
		Fee:           msg.Fee,
		Timestamp:     headerInfo.Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to persist outbound intent")
	}

	totalMovedOut, err := m.AddTotalMovedOut(ctx, msg.Amount)
	if err != nil {
		return nil, err
	}

	if err := m.settlement.Dispatch(ctx, msg.Payload, msg.Fee); err != nil {
		return nil, sdkerrors.Wrapf(types.ErrExternalCallFailed, "settlement dispatch failed: %s", err)
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventOutboundTransferInitiated{
		CorrelationId: hex.EncodeToString(correlationId),
		Initiator:     msg.Signer,
		Amount:        msg.Amount,
		Fee:           msg.Fee,
		TotalMovedOut: totalMovedOut,
		Timestamp:     headerInfo.Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit outbound transfer event")
	}

	return &types.MsgInitiateOutboundTransferResponse{
		CorrelationId: hex.EncodeToString(correlationId),
		TotalMovedOut: totalMovedOut,
	}, nil
}

// WithdrawToOperator pays vault funds directly to a recipient named by the
// caller. The recipient is mandatory; there is no default.
func (m msgServer) WithdrawToOperator(ctx context.Context, msg *types.MsgWithdrawToOperator) (*types.MsgWithdrawToOperatorResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "withdrawal amount must be positive")
	}
	if msg.Recipient == "" {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "recipient cannot be empty")
	}

	if err := m.requireCapability(ctx, msg.Signer, types.CapabilityTreasury); err != nil {
		return nil, err
	}

	recipient, err := m.decodeAddress(msg.Recipient)
	if err != nil {
		return nil, err
	}

	if err := m.acquireLock(ctx); err != nil {
		return nil, err
	}
	defer m.releaseLock(ctx)

	onHand := m.OnHandBalance(ctx)
	if msg.Amount.GT(onHand) {
		return nil, sdkerrors.Wrapf(types.ErrInsufficientOnHand, "requested %s, on hand %s", msg.Amount.String(), onHand.String())
	}

	coin := sdk.NewCoin(m.denom, msg.Amount)
	if err := m.bank.SendCoins(ctx, types.ModuleAddress, recipient, sdk.NewCoins(coin)); err != nil {
		return nil, sdkerrors.Wrapf(types.ErrExternalCallFailed, "unable to transfer treasury funds: %s", err)
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventOperatorWithdrawal{
		Initiator: msg.Signer,
		Recipient: msg.Recipient,
		Amount:    msg.Amount,
		Timestamp: m.header.GetHeaderInfo(ctx).Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit operator withdrawal event")
	}

	return &types.MsgWithdrawToOperatorResponse{}, nil
}

// ExecuteExternalCall forwards an opaque payload to an arbitrary target via
// the call executor, optionally attaching vault funds. The payload is not
// inspected; the role gate is the only defense.
func (m msgServer) ExecuteExternalCall(ctx context.Context, msg *types.MsgExecuteExternalCall) (*types.MsgExecuteExternalCallResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Target == "" {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "call target cannot be empty")
	}

	if err := m.requireCapability(ctx, msg.Signer, types.CapabilityTreasury); err != nil {
		return nil, err
	}

	value := msg.Value
	if value.Amount.IsNil() {
		value = sdk.NewCoin(m.denom, math.ZeroInt())
	}

	if err := m.acquireLock(ctx); err != nil {
		return nil, err
	}
	defer m.releaseLock(ctx)

	if value.Amount.IsPositive() {
		available := m.bank.GetBalance(ctx, types.ModuleAddress, value.Denom).Amount
		if value.Amount.GT(available) {
			return nil, sdkerrors.Wrapf(types.ErrInsufficientOnHand, "call value %s, on hand %s%s", value.String(), available.String(), value.Denom)
		}
	}

	if err := m.executor.Execute(ctx, msg.Target, msg.Payload, value); err != nil {
		return nil, sdkerrors.Wrapf(types.ErrExternalCallFailed, "external call to %s failed: %s", msg.Target, err)
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventExternalCallExecuted{
		Initiator:   msg.Signer,
		Target:      msg.Target,
		PayloadSize: int64(len(msg.Payload)),
		Value:       value,
		Timestamp:   m.header.GetHeaderInfo(ctx).Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit external call event")
	}

	return &types.MsgExecuteExternalCallResponse{}, nil
}

// ApproveSpender sets (not adds to) a spender's allowance over vault holdings
// of a denom. A zero amount revokes.
func (m msgServer) ApproveSpender(ctx context.Context, msg *types.MsgApproveSpender) (*types.MsgApproveSpenderResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Denom == "" {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "denom cannot be empty")
	}
	if msg.Amount.IsNil() || msg.Amount.IsNegative() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "allowance cannot be negative")
	}
	if _, err := m.decodeAddress(msg.Spender); err != nil {
		return nil, err
	}

	if err := m.requireCapability(ctx, msg.Signer, types.CapabilityTreasury); err != nil {
		return nil, err
	}

	if err := m.SetSpenderAllowance(ctx, msg.Denom, msg.Spender, msg.Amount); err != nil {
		return nil, err
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventSpenderApproved{
		Granter:   msg.Signer,
		Spender:   msg.Spender,
		Denom:     msg.Denom,
		Amount:    msg.Amount,
		Timestamp: m.header.GetHeaderInfo(ctx).Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit spender approved event")
	}

	return &types.MsgApproveSpenderResponse{}, nil
}

// SpendAllowance draws on a previously granted allowance. The caller needs no
// role; the allowance itself is the authorization.
func (m msgServer) SpendAllowance(ctx context.Context, msg *types.MsgSpendAllowance) (*types.MsgSpendAllowanceResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Denom == "" {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "denom cannot be empty")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "spend amount must be positive")
	}

	recipientAddress := msg.Recipient
	if recipientAddress == "" {
		recipientAddress = msg.Spender
	}
	recipient, err := m.decodeAddress(recipientAddress)
	if err != nil {
		return nil, err
	}

	if err := m.acquireLock(ctx); err != nil {
		return nil, err
	}
	defer m.releaseLock(ctx)

	allowance, err := m.GetSpenderAllowance(ctx, msg.Denom, msg.Spender)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read spender allowance")
	}
	if msg.Amount.GT(allowance) {
		return nil, sdkerrors.Wrapf(types.ErrUnauthorized, "spend of %s%s exceeds allowance %s%s", msg.Amount.String(), msg.Denom, allowance.String(), msg.Denom)
	}

	available := m.bank.GetBalance(ctx, types.ModuleAddress, msg.Denom).Amount
	if msg.Amount.GT(available) {
		return nil, sdkerrors.Wrapf(types.ErrInsufficientOnHand, "requested %s%s, on hand %s%s", msg.Amount.String(), msg.Denom, available.String(), msg.Denom)
	}

	remaining := allowance.Sub(msg.Amount)
	if err := m.SetSpenderAllowance(ctx, msg.Denom, msg.Spender, remaining); err != nil {
		return nil, err
	}

	coin := sdk.NewCoin(msg.Denom, msg.Amount)
	if err := m.bank.SendCoins(ctx, types.ModuleAddress, recipient, sdk.NewCoins(coin)); err != nil {
		return nil, sdkerrors.Wrapf(types.ErrExternalCallFailed, "unable to transfer allowance spend: %s", err)
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventAllowanceSpent{
		Spender:   msg.Spender,
		Recipient: recipientAddress,
		Denom:     msg.Denom,
		Amount:    msg.Amount,
		Remaining: remaining,
		Timestamp: m.header.GetHeaderInfo(ctx).Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit allowance spent event")
	}

	return &types.MsgSpendAllowanceResponse{RemainingAllowance: remaining}, nil
}

// deriveCorrelationId hashes the initiating party, amount, block time, and
// per-vault sequence into a stable 32 byte token. Two transfers in the same
// block by the same caller still differ by sequence.
func deriveCorrelationId(initiator string, amount math.Int, timestamp int64, sequence uint64) []byte {
	hasher := sha256.New()
	hasher.Write([]byte(initiator))

	amountBytes := make([]byte, 32)
	amount.BigInt().FillBytes(amountBytes)
	hasher.Write(amountBytes)

	var scratch [8]byte
	binary.BigEndian.PutUint64(scratch[:], uint64(timestamp))
	hasher.Write(scratch[:])
	binary.BigEndian.PutUint64(scratch[:], sequence)
	hasher.Write(scratch[:])

	return hasher.Sum(nil)
}
