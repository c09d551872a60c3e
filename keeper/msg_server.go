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
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polymarket-alm-ai/halo-contract/types"
	"github.com/polymarket-alm-ai/halo-contract/utils"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// Deposit converts an asset amount into shares at the reported price,
// flooring the shares minted. The derived share quantity must be positive: a
// deposit small enough to floor to zero shares is rejected rather than
// silently charged for nothing.
func (m msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "deposit amount must be positive")
	}

	depositor, err := m.decodeAddress(msg.Depositor)
	if err != nil {
		return nil, err
	}
	receiverAddress := msg.Receiver
	if receiverAddress == "" {
		receiverAddress = msg.Depositor
	}
	receiver, err := m.decodeAddress(receiverAddress)
	if err != nil {
		return nil, err
	}

	if err := m.acquireLock(ctx); err != nil {
		return nil, err
	}
	defer m.releaseLock(ctx)

	enabled, err := m.GetDepositsEnabled(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read deposits switch")
	}
	if !enabled {
		return nil, sdkerrors.Wrap(types.ErrFeatureDisabled, "deposits are disabled")
	}

	if err := m.requireFreshValuation(ctx); err != nil {
		return nil, err
	}

	minDeposit, err := m.GetMinDeposit(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read minimum deposit")
	}
	if minDeposit.IsPositive() && msg.Amount.LT(minDeposit) {
		return nil, sdkerrors.Wrapf(types.ErrInvalidArgument, "deposit below minimum of %s", minDeposit.String())
	}

	totalShares, err := m.GetTotalShares(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read total share supply")
	}
	totalValue, err := m.GetReportedTotalValue(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read reported total value")
	}

	shares, err := utils.SharesForDeposit(msg.Amount, totalValue, totalShares)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, err.Error())
	}
	if shares.IsZero() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "deposit would mint zero shares")
	}

	coin := sdk.NewCoin(m.denom, msg.Amount)
	if err := m.bank.SendCoins(ctx, depositor, types.ModuleAddress, sdk.NewCoins(coin)); err != nil {
		return nil, sdkerrors.Wrapf(types.ErrExternalCallFailed, "unable to transfer deposit into custody: %s", err)
	}

	newTotal, err := m.mintShares(ctx, receiver, shares)
	if err != nil {
		return nil, err
	}

	timestamp := m.header.GetHeaderInfo(ctx).Time
	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventDeposit{
		Depositor: msg.Depositor,
		Receiver:  receiverAddress,
		Amount:    msg.Amount,
		Timestamp: timestamp,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit deposit event")
	}
	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventSharesMinted{
		Receiver:    receiverAddress,
		Assets:      msg.Amount,
		Shares:      shares,
		TotalShares: newTotal,
		Timestamp:   timestamp,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit shares minted event")
	}

	return &types.MsgDepositResponse{SharesMinted: shares}, nil
}

// Mint issues an exact share quantity, ceiling the assets collected so the
// ledger never under-collects for the shares it issues.
func (m msgServer) Mint(ctx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "share amount must be positive")
	}

	depositor, err := m.decodeAddress(msg.Depositor)
	if err != nil {
		return nil, err
	}
	receiverAddress := msg.Receiver
	if receiverAddress == "" {
		receiverAddress = msg.Depositor
	}
	receiver, err := m.decodeAddress(receiverAddress)
	if err != nil {
		return nil, err
	}

	if err := m.acquireLock(ctx); err != nil {
		return nil, err
	}
	defer m.releaseLock(ctx)

	enabled, err := m.GetDepositsEnabled(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read deposits switch")
	}
	if !enabled {
		return nil, sdkerrors.Wrap(types.ErrFeatureDisabled, "deposits are disabled")
	}

	if err := m.requireFreshValuation(ctx); err != nil {
		return nil, err
	}

	totalShares, err := m.GetTotalShares(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read total share supply")
	}
	totalValue, err := m.GetReportedTotalValue(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read reported total value")
	}

	assets, err := utils.AssetsForMint(msg.Shares, totalValue, totalShares)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, err.Error())
	}
	if assets.IsZero() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "mint would collect zero assets")
	}

	minDeposit, err := m.GetMinDeposit(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read minimum deposit")
	}
	if minDeposit.IsPositive() && assets.LT(minDeposit) {
		return nil, sdkerrors.Wrapf(types.ErrInvalidArgument, "mint collects %s, below minimum of %s", assets.String(), minDeposit.String())
	}

	coin := sdk.NewCoin(m.denom, assets)
	if err := m.bank.SendCoins(ctx, depositor, types.ModuleAddress, sdk.NewCoins(coin)); err != nil {
		return nil, sdkerrors.Wrapf(types.ErrExternalCallFailed, "unable to transfer deposit into custody: %s", err)
	}

	newTotal, err := m.mintShares(ctx, receiver, msg.Shares)
	if err != nil {
		return nil, err
	}

	timestamp := m.header.GetHeaderInfo(ctx).Time
	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventDeposit{
		Depositor: msg.Depositor,
		Receiver:  receiverAddress,
		Amount:    assets,
		Timestamp: timestamp,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit deposit event")
	}
	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventSharesMinted{
		Receiver:    receiverAddress,
		Assets:      assets,
		Shares:      msg.Shares,
		TotalShares: newTotal,
		Timestamp:   timestamp,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit shares minted event")
	}

	return &types.MsgMintResponse{AssetsCollected: assets}, nil
}

// Withdraw releases an exact asset amount, ceiling the shares burned. The
// request is capped by the on-hand balance: the ledger cannot promise funds
// that are not physically present, no matter what the reported value implies.
func (m msgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Assets.IsNil() || !msg.Assets.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "asset amount must be positive")
	}

	owner, receiverAddress, err := m.resolveRedemptionParties(msg.Signer, msg.Receiver, msg.Owner)
	if err != nil {
		return nil, err
	}
	receiver, err := m.decodeAddress(receiverAddress)
	if err != nil {
		return nil, err
	}

	if err := m.acquireLock(ctx); err != nil {
		return nil, err
	}
	defer m.releaseLock(ctx)

	enabled, err := m.GetWithdrawalsEnabled(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read withdrawals switch")
	}
	if !enabled {
		return nil, sdkerrors.Wrap(types.ErrFeatureDisabled, "withdrawals are disabled")
	}

	if err := m.requireFreshValuation(ctx); err != nil {
		return nil, err
	}

	onHand := m.OnHandBalance(ctx)
	if msg.Assets.GT(onHand) {
		return nil, sdkerrors.Wrapf(types.ErrInsufficientOnHand, "requested %s, on hand %s", msg.Assets.String(), onHand.String())
	}

	totalShares, err := m.GetTotalShares(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read total share supply")
	}
	totalValue, err := m.GetReportedTotalValue(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read reported total value")
	}

	shares, err := utils.SharesForWithdraw(msg.Assets, totalValue, totalShares)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, err.Error())
	}

	newTotal, err := m.burnShares(ctx, owner, shares)
	if err != nil {
		return nil, err
	}

	coin := sdk.NewCoin(m.denom, msg.Assets)
	if err := m.bank.SendCoins(ctx, types.ModuleAddress, receiver, sdk.NewCoins(coin)); err != nil {
		return nil, sdkerrors.Wrapf(types.ErrExternalCallFailed, "unable to transfer withdrawal proceeds: %s", err)
	}

	timestamp := m.header.GetHeaderInfo(ctx).Time
	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventWithdraw{
		Signer:    msg.Signer,
		Owner:     msg.Signer,
		Receiver:  receiverAddress,
		Amount:    msg.Assets,
		Timestamp: timestamp,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit withdraw event")
	}
	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventSharesBurned{
		Owner:       msg.Signer,
		Receiver:    receiverAddress,
		Assets:      msg.Assets,
		Shares:      shares,
		TotalShares: newTotal,
		Timestamp:   timestamp,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit shares burned event")
	}

	return &types.MsgWithdrawResponse{SharesBurned: shares}, nil
}

// Redeem burns an exact share quantity, flooring the assets paid out, again
// capped by the on-hand balance.
func (m msgServer) Redeem(ctx context.Context, msg *types.MsgRedeem) (*types.MsgRedeemResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "share amount must be positive")
	}

	owner, receiverAddress, err := m.resolveRedemptionParties(msg.Signer, msg.Receiver, msg.Owner)
	if err != nil {
		return nil, err
	}
	receiver, err := m.decodeAddress(receiverAddress)
	if err != nil {
		return nil, err
	}

	if err := m.acquireLock(ctx); err != nil {
		return nil, err
	}
	defer m.releaseLock(ctx)

	enabled, err := m.GetWithdrawalsEnabled(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read withdrawals switch")
	}
	if !enabled {
		return nil, sdkerrors.Wrap(types.ErrFeatureDisabled, "withdrawals are disabled")
	}

	if err := m.requireFreshValuation(ctx); err != nil {
		return nil, err
	}

	totalShares, err := m.GetTotalShares(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read total share supply")
	}
	totalValue, err := m.GetReportedTotalValue(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to read reported total value")
	}

	assets, err := utils.AssetsForRedeem(msg.Shares, totalValue, totalShares)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, err.Error())
	}
	if assets.IsZero() {
		return nil, sdkerrors.Wrap(types.ErrInvalidArgument, "redemption would release zero assets")
	}

	onHand := m.OnHandBalance(ctx)
	if assets.GT(onHand) {
		return nil, sdkerrors.Wrapf(types.ErrInsufficientOnHand, "requested %s, on hand %s", assets.String(), onHand.String())
	}

	newTotal, err := m.burnShares(ctx, owner, msg.Shares)
	if err != nil {
		return nil, err
	}

	coin := sdk.NewCoin(m.denom, assets)
	if err := m.bank.SendCoins(ctx, types.ModuleAddress, receiver, sdk.NewCoins(coin)); err != nil {
		return nil, sdkerrors.Wrapf(types.ErrExternalCallFailed, "unable to transfer redemption proceeds: %s", err)
	}

	timestamp := m.header.GetHeaderInfo(ctx).Time
	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventWithdraw{
		Signer:    msg.Signer,
		Owner:     msg.Signer,
		Receiver:  receiverAddress,
		Amount:    assets,
		Timestamp: timestamp,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit withdraw event")
	}
	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventSharesBurned{
		Owner:       msg.Signer,
		Receiver:    receiverAddress,
		Assets:      assets,
		Shares:      msg.Shares,
		TotalShares: newTotal,
		Timestamp:   timestamp,
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to emit shares burned event")
	}

	return &types.MsgRedeemResponse{AssetsPaid: assets}, nil
}

// resolveRedemptionParties applies the defaulting rules shared by Withdraw
// and Redeem. Burning a third party's shares is not supported: the owner, if
// given, must be the signer.
func (m msgServer) resolveRedemptionParties(signer, receiver, owner string) (ownerBytes sdk.AccAddress, receiverAddress string, err error) {
	if owner != "" && owner != signer {
		return nil, "", sdkerrors.Wrap(types.ErrUnauthorized, "cannot burn shares held by another owner")
	}

	ownerBytes, err = m.decodeAddress(signer)
	if err != nil {
		return nil, "", err
	}

	receiverAddress = receiver
	if receiverAddress == "" {
		receiverAddress = signer
	}

	return ownerBytes, receiverAddress, nil
}

// mintShares credits a receiver and grows the total supply, returning the new
// total.
func (k *Keeper) mintShares(ctx context.Context, receiver []byte, shares math.Int) (math.Int, error) {
	balance, err := k.GetOwnerShares(ctx, receiver)
	if err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to read receiver shares")
	}
	balance, err = balance.SafeAdd(shares)
	if err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to update receiver shares")
	}
	if err := k.SetOwnerShares(ctx, receiver, balance); err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to persist receiver shares")
	}

	total, err := k.GetTotalShares(ctx)
	if err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to read total share supply")
	}
	total, err = total.SafeAdd(shares)
	if err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to update total share supply")
	}
	if err := k.TotalShares.Set(ctx, total); err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to persist total share supply")
	}

	return total, nil
}

// burnShares debits an owner and shrinks the total supply, returning the new
// total.
func (k *Keeper) burnShares(ctx context.Context, owner []byte, shares math.Int) (math.Int, error) {
	balance, err := k.GetOwnerShares(ctx, owner)
	if err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to read owner shares")
	}
	if balance.LT(shares) {
		return math.ZeroInt(), sdkerrors.Wrapf(types.ErrInsufficientShares, "owner holds %s, needs %s", balance.String(), shares.String())
	}
	if err := k.SetOwnerShares(ctx, owner, balance.Sub(shares)); err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to persist owner shares")
	}

	total, err := k.GetTotalShares(ctx)
	if err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to read total share supply")
	}
	total, err = total.SafeSub(shares)
	if err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to update total share supply")
	}
	if err := k.TotalShares.Set(ctx, total); err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to persist total share supply")
	}

	return total, nil
}
