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

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polymarket-alm-ai/halo-contract/types"
)

// SetOperator replaces the operator. An empty address clears the role, after
// which no caller can exercise operator powers until a new one is assigned.
func (m msgServer) SetOperator(ctx context.Context, msg *types.MsgSetOperator) (*types.MsgSetOperatorResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if err := m.requireCapability(ctx, msg.Administrator, types.CapabilityAdminister); err != nil {
		return nil, err
	}
	return &types.MsgSetOperatorResponse{}, m.assignRole(ctx, types.RoleOperator, m.Operator, msg.Operator)
}

// SetValuer replaces the valuer. An empty address clears the role, which
// freezes valuation reporting but leaves the existing report and its clock
// untouched.
func (m msgServer) SetValuer(ctx context.Context, msg *types.MsgSetValuer) (*types.MsgSetValuerResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if err := m.requireCapability(ctx, msg.Administrator, types.CapabilityAdminister); err != nil {
		return nil, err
	}
	return &types.MsgSetValuerResponse{}, m.assignRole(ctx, types.RoleValuer, m.Valuer, msg.Valuer)
}

// TransferAdministrator begins the two step handover. The current
// administrator keeps full control until the named successor accepts, so a
// typo in the successor address is recoverable by starting over.
func (m msgServer) TransferAdministrator(ctx context.Context, msg *types.MsgTransferAdministrator) (*types.MsgTransferAdministratorResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if err := m.requireCapability(ctx, msg.Administrator, types.CapabilityAdminister); err != nil {
		return nil, err
	}
	if _, err := m.decodeAddress(msg.NewAdministrator); err != nil {
		return nil, err
	}

	if err := m.PendingAdministrator.Set(ctx, msg.NewAdministrator); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to persist pending administrator")
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventAdministratorTransferStarted{
		Administrator:        msg.Administrator,
		PendingAdministrator: msg.NewAdministrator,
		Timestamp:            m.header.GetHeaderInfo(ctx).Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit transfer started event")
	}

	return &types.MsgTransferAdministratorResponse{}, nil
}

// AcceptAdministrator completes the handover started by
// TransferAdministrator. Only the named successor may accept.
func (m msgServer) AcceptAdministrator(ctx context.Context, msg *types.MsgAcceptAdministrator) (*types.MsgAcceptAdministratorResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	pending, err := m.GetPendingAdministrator(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read pending administrator")
	}
	if pending == "" || msg.Claimer != pending {
		return nil, sdkerrors.Wrap(types.ErrUnauthorized, "caller is not the pending administrator")
	}

	previous, err := m.GetAdministrator(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read administrator")
	}

	if err := m.Administrator.Set(ctx, msg.Claimer); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to persist administrator")
	}
	if err := m.PendingAdministrator.Remove(ctx); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to clear pending administrator")
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventRoleUpdated{
		Role:           types.RoleAdministrator.String(),
		PreviousHolder: previous,
		NewHolder:      msg.Claimer,
		Timestamp:      m.header.GetHeaderInfo(ctx).Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit role updated event")
	}

	return &types.MsgAcceptAdministratorResponse{}, nil
}

// SetDepositsEnabled flips the deposit switch. The withdrawal switch is not
// touched; the two are independent so redemptions can stay open while inflows
// are paused.
func (m msgServer) SetDepositsEnabled(ctx context.Context, msg *types.MsgSetDepositsEnabled) (*types.MsgSetDepositsEnabledResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if err := m.requireCapability(ctx, msg.Administrator, types.CapabilityAdminister); err != nil {
		return nil, err
	}

	if err := m.DepositsEnabled.Set(ctx, msg.Enabled); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to persist deposits switch")
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventDepositsToggled{
		Enabled:   msg.Enabled,
		Timestamp: m.header.GetHeaderInfo(ctx).Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit deposits toggled event")
	}

	return &types.MsgSetDepositsEnabledResponse{}, nil
}

// SetWithdrawalsEnabled flips the withdrawal switch.
func (m msgServer) SetWithdrawalsEnabled(ctx context.Context, msg *types.MsgSetWithdrawalsEnabled) (*types.MsgSetWithdrawalsEnabledResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if err := m.requireCapability(ctx, msg.Administrator, types.CapabilityAdminister); err != nil {
		return nil, err
	}

	if err := m.WithdrawalsEnabled.Set(ctx, msg.Enabled); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to persist withdrawals switch")
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventWithdrawalsToggled{
		Enabled:   msg.Enabled,
		Timestamp: m.header.GetHeaderInfo(ctx).Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit withdrawals toggled event")
	}

	return &types.MsgSetWithdrawalsEnabledResponse{}, nil
}

// SetMinDeposit updates the minimum deposit size. Zero disables the floor.
func (m msgServer) SetMinDeposit(ctx context.Context, msg *types.MsgSetMinDeposit) (*types.MsgSetMinDepositResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.MinDeposit.IsNil() || msg.MinDeposit.IsNegative() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "minimum deposit cannot be negative")
	}
	if err := m.requireCapability(ctx, msg.Administrator, types.CapabilityAdminister); err != nil {
		return nil, err
	}

	previous, err := m.GetMinDeposit(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read minimum deposit")
	}
	if err := m.MinDeposit.Set(ctx, msg.MinDeposit); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to persist minimum deposit")
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventMinDepositUpdated{
		PreviousMinDeposit: previous,
		NewMinDeposit:      msg.MinDeposit,
		Timestamp:          m.header.GetHeaderInfo(ctx).Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit minimum deposit event")
	}

	return &types.MsgSetMinDepositResponse{}, nil
}

// SetMaxValuationAge updates the staleness window in seconds. It applies
// immediately: shrinking the window can flip an operating vault straight into
// the stale state.
func (m msgServer) SetMaxValuationAge(ctx context.Context, msg *types.MsgSetMaxValuationAge) (*types.MsgSetMaxValuationAgeResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.MaxValuationAge <= 0 {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "staleness window must be positive")
	}
	if err := m.requireCapability(ctx, msg.Administrator, types.CapabilityAdminister); err != nil {
		return nil, err
	}

	previous, err := m.GetMaxValuationAge(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read staleness window")
	}
	if err := m.MaxValuationAge.Set(ctx, msg.MaxValuationAge); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to persist staleness window")
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventMaxValuationAgeUpdated{
		PreviousMaxAge: previous,
		NewMaxAge:      msg.MaxValuationAge,
		Timestamp:      m.header.GetHeaderInfo(ctx).Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit staleness window event")
	}

	return &types.MsgSetMaxValuationAgeResponse{}, nil
}

// Sweep moves any denom held by the vault to a recipient. It is an emergency
// recovery path: it ignores the switches, the valuation clock, and the share
// ledger. A nil or zero amount sweeps the full balance of the denom.
func (m msgServer) Sweep(ctx context.Context, msg *types.MsgSweep) (*types.MsgSweepResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Denom == "" {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "denom cannot be empty")
	}
	if !msg.Amount.IsNil() && msg.Amount.IsNegative() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "sweep amount cannot be negative")
	}
	if err := m.requireCapability(ctx, msg.Administrator, types.CapabilityAdminister); err != nil {
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

	available := m.bank.GetBalance(ctx, types.ModuleAddress, msg.Denom).Amount
	amount := msg.Amount
	if amount.IsNil() || amount.IsZero() {
		amount = available
	}
	if !amount.IsPositive() {
		return nil, sdkerrors.Wrapf(types.ErrInvalidArgument, "nothing to sweep for denom %s", msg.Denom)
	}
	if amount.GT(available) {
		return nil, sdkerrors.Wrapf(types.ErrInsufficientOnHand, "requested %s%s, on hand %s%s", amount.String(), msg.Denom, available.String(), msg.Denom)
	}

	coin := sdk.NewCoin(msg.Denom, amount)
	if err := m.bank.SendCoins(ctx, types.ModuleAddress, recipient, sdk.NewCoins(coin)); err != nil {
		return nil, sdkerrors.Wrapf(types.ErrExternalCallFailed, "unable to sweep funds: %s", err)
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventSwept{
		Administrator: msg.Administrator,
		Denom:         msg.Denom,
		Recipient:     msg.Recipient,
		Amount:        amount,
		Timestamp:     m.header.GetHeaderInfo(ctx).Time,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit sweep event")
	}

	return &types.MsgSweepResponse{}, nil
}

// assignRole writes a role item and emits the role change. An empty holder
// removes the item entirely.
func (m msgServer) assignRole(ctx context.Context, role types.Role, item collections.Item[string], holder string) error {
	if holder != "" {
		if _, err := m.decodeAddress(holder); err != nil {
			return err
		}
	}

	previous, err := m.RoleHolder(ctx, role)
	if err != nil {
		return err
	}

	if holder == "" {
		if err := item.Remove(ctx); err != nil {
			return sdkerrors.Wrapf(err, "unable to clear %s", role.String())
		}
	} else {
		if err := item.Set(ctx, holder); err != nil {
			return sdkerrors.Wrapf(err, "unable to persist %s", role.String())
		}
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventRoleUpdated{
		Role:           role.String(),
		PreviousHolder: previous,
		NewHolder:      holder,
		Timestamp:      m.header.GetHeaderInfo(ctx).Time,
	}); err != nil {
		return sdkerrors.Wrap(err, "unable to emit role updated event")
	}

	return nil
}
