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
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymarket-alm-ai/halo-contract/types"
	"github.com/polymarket-alm-ai/halo-contract/utils"
)

func TestSetOperatorAuthorization(t *testing.T) {
	vault := setupVault(t)
	replacement := utils.TestAccount()

	// ACT & ASSERT: The operator cannot appoint their own successor.
	_, err := vault.server.SetOperator(vault.Ctx, &types.MsgSetOperator{
		Administrator: vault.operator.Address,
		Operator:      replacement.Address,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnauthorized))

	// ACT: The administrator can.
	_, err = vault.server.SetOperator(vault.Ctx, &types.MsgSetOperator{
		Administrator: vault.admin.Address,
		Operator:      replacement.Address,
	})
	require.NoError(t, err)

	operator, err := vault.Keeper.GetOperator(vault.Ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement.Address, operator)

	// ASSERT: The old operator lost treasury power, the new one has it.
	vault.fundVault(10*ONE)
	_, err = vault.server.WithdrawToOperator(vault.Ctx, &types.MsgWithdrawToOperator{
		Signer:    vault.operator.Address,
		Amount:    math.NewInt(1*ONE),
		Recipient: vault.operator.Address,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnauthorized))

	_, err = vault.server.WithdrawToOperator(vault.Ctx, &types.MsgWithdrawToOperator{
		Signer:    replacement.Address,
		Amount:    math.NewInt(1*ONE),
		Recipient: replacement.Address,
	})
	require.NoError(t, err)
}

func TestClearedRoleMatchesNobody(t *testing.T) {
	vault := setupVault(t)
	vault.fundVault(10*ONE)

	// ARRANGE: Clear the operator role entirely.
	_, err := vault.server.SetOperator(vault.Ctx, &types.MsgSetOperator{
		Administrator: vault.admin.Address,
		Operator:      "",
	})
	require.NoError(t, err)

	// ASSERT: An empty caller string does not match the empty role holder.
	_, err = vault.server.WithdrawToOperator(vault.Ctx, &types.MsgWithdrawToOperator{
		Signer:    "",
		Amount:    math.NewInt(1*ONE),
		Recipient: vault.admin.Address,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnauthorized))

	// ASSERT: The administrator retains treasury power regardless.
	_, err = vault.server.WithdrawToOperator(vault.Ctx, &types.MsgWithdrawToOperator{
		Signer:    vault.admin.Address,
		Amount:    math.NewInt(1*ONE),
		Recipient: vault.admin.Address,
	})
	require.NoError(t, err)
}

func TestAdministratorHandover(t *testing.T) {
	vault := setupVault(t)
	successor, stranger := utils.TestAccount(), utils.TestAccount()

	// ACT: Start the handover.
	_, err := vault.server.TransferAdministrator(vault.Ctx, &types.MsgTransferAdministrator{
		Administrator:    vault.admin.Address,
		NewAdministrator: successor.Address,
	})
	require.NoError(t, err)

	// ASSERT: The incumbent still governs while the transfer is pending.
	_, err = vault.server.SetDepositsEnabled(vault.Ctx, &types.MsgSetDepositsEnabled{
		Administrator: vault.admin.Address,
		Enabled:       false,
	})
	require.NoError(t, err)

	// ASSERT: Only the named successor can accept.
	_, err = vault.server.AcceptAdministrator(vault.Ctx, &types.MsgAcceptAdministrator{
		Claimer: stranger.Address,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnauthorized))

	_, err = vault.server.AcceptAdministrator(vault.Ctx, &types.MsgAcceptAdministrator{
		Claimer: successor.Address,
	})
	require.NoError(t, err)

	// ASSERT: Power moved. The old administrator is a stranger now.
	_, err = vault.server.SetDepositsEnabled(vault.Ctx, &types.MsgSetDepositsEnabled{
		Administrator: vault.admin.Address,
		Enabled:       true,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnauthorized))

	_, err = vault.server.SetDepositsEnabled(vault.Ctx, &types.MsgSetDepositsEnabled{
		Administrator: successor.Address,
		Enabled:       true,
	})
	require.NoError(t, err)

	// ASSERT: Accepting twice fails; the pending slot was consumed.
	_, err = vault.server.AcceptAdministrator(vault.Ctx, &types.MsgAcceptAdministrator{
		Claimer: successor.Address,
	})
	require.Error(t, err)
}

func TestSwitchesAreIndependent(t *testing.T) {
	vault := setupVault(t)
	bob := utils.TestAccount()

	// ARRANGE: Bob enters the vault, then deposits get disabled.
	vault.fund(bob, 100*ONE)
	vault.reportValue(t, 0)
	_, err := vault.server.Deposit(vault.Ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		Amount:    math.NewInt(50*ONE),
	})
	require.NoError(t, err)

	_, err = vault.server.SetDepositsEnabled(vault.Ctx, &types.MsgSetDepositsEnabled{
		Administrator: vault.admin.Address,
		Enabled:       false,
	})
	require.NoError(t, err)

	// ASSERT: Deposits are blocked.
	_, err = vault.server.Deposit(vault.Ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		Amount:    math.NewInt(10*ONE),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrFeatureDisabled))

	// ASSERT: Withdrawals still flow.
	_, err = vault.server.Withdraw(vault.Ctx, &types.MsgWithdraw{
		Signer: bob.Address,
		Assets: math.NewInt(10*ONE),
	})
	require.NoError(t, err)
}

func TestSetMaxValuationAgeAppliesImmediately(t *testing.T) {
	vault := setupVault(t)
	bob := utils.TestAccount()

	vault.fund(bob, 100*ONE)
	vault.reportValue(t, 0)
	vault.Header.HeaderInfo.Time = vault.Header.HeaderInfo.Time.Add(600 * time.Second)

	// ARRANGE: A ten minute old report is fine under the default hour window.
	_, err := vault.server.Deposit(vault.Ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		Amount:    math.NewInt(10*ONE),
	})
	require.NoError(t, err)

	// ACT: Shrink the window below the current age.
	_, err = vault.server.SetMaxValuationAge(vault.Ctx, &types.MsgSetMaxValuationAge{
		Administrator:   vault.admin.Address,
		MaxValuationAge: 300,
	})
	require.NoError(t, err)

	// ASSERT: The same report is now stale.
	_, err = vault.server.Deposit(vault.Ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		Amount:    math.NewInt(10*ONE),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrStaleValuation))
}

func TestSweepBypassesGates(t *testing.T) {
	vault := setupVault(t)
	recipient := utils.TestAccount()

	// ARRANGE: A stray denom sits in the vault, the withdrawal switch is off,
	// and no valuation was ever reported.
	vault.Bank.Fund(types.ModuleAddress, sdk.NewCoins(sdk.NewCoin("stray", math.NewInt(7*ONE))))
	_, err := vault.server.SetWithdrawalsEnabled(vault.Ctx, &types.MsgSetWithdrawalsEnabled{
		Administrator: vault.admin.Address,
		Enabled:       false,
	})
	require.NoError(t, err)

	// ACT & ASSERT: The operator cannot sweep.
	_, err = vault.server.Sweep(vault.Ctx, &types.MsgSweep{
		Administrator: vault.operator.Address,
		Denom:         "stray",
		Recipient:     recipient.Address,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnauthorized))

	// ACT: The administrator sweeps the full balance by leaving the amount
	// unset.
	_, err = vault.server.Sweep(vault.Ctx, &types.MsgSweep{
		Administrator: vault.admin.Address,
		Denom:         "stray",
		Recipient:     recipient.Address,
	})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(7*ONE), vault.Bank.GetBalance(vault.Ctx, recipient.Bytes, "stray").Amount)

	// ACT & ASSERT: Sweeping an empty denom reports nothing to sweep.
	_, err = vault.server.Sweep(vault.Ctx, &types.MsgSweep{
		Administrator: vault.admin.Address,
		Denom:         "stray",
		Recipient:     recipient.Address,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))
}
