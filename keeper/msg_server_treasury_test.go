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
	"context"
	"errors"
	"fmt"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymarket-alm-ai/halo-contract/types"
	"github.com/polymarket-alm-ai/halo-contract/utils"
	"github.com/polymarket-alm-ai/halo-contract/utils/mocks"
)

func TestInitiateOutboundTransfer(t *testing.T) {
	vault := setupVault(t)
	bob := utils.TestAccount()
	vault.fundVault(100*ONE)

	fee := sdk.NewCoin(mocks.Denom, math.NewInt(1000))

	// ACT & ASSERT: A stranger and the valuer are both refused.
	for _, caller := range []string{bob.Address, vault.valuer.Address} {
		_, err := vault.server.InitiateOutboundTransfer(vault.Ctx, &types.MsgInitiateOutboundTransfer{
			Signer:  caller,
			Amount:  math.NewInt(10*ONE),
			Payload: []byte("route"),
			Fee:     fee,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrUnauthorized))
	}

	// ACT: The operator moves 10 out.
	first, err := vault.server.InitiateOutboundTransfer(vault.Ctx, &types.MsgInitiateOutboundTransfer{
		Signer:  vault.operator.Address,
		Amount:  math.NewInt(10*ONE),
		Payload: []byte("route"),
		Fee:     fee,
	})
	require.NoError(t, err)
	assert.Len(t, first.CorrelationId, 64)
	assert.Equal(t, math.NewInt(10*ONE), first.TotalMovedOut)

	// ACT: The administrator, who outranks the operator, moves 5 more in the
	// same block with the same payload.
	second, err := vault.server.InitiateOutboundTransfer(vault.Ctx, &types.MsgInitiateOutboundTransfer{
		Signer:  vault.admin.Address,
		Amount:  math.NewInt(5*ONE),
		Payload: []byte("route"),
		Fee:     fee,
	})
	require.NoError(t, err)

	// ASSERT: Correlation ids differ, the moved-out counter accumulates, and
	// both dispatches reached the settlement client.
	assert.NotEqual(t, first.CorrelationId, second.CorrelationId)
	assert.Equal(t, math.NewInt(15*ONE), second.TotalMovedOut)
	assert.Len(t, vault.Settlement.Dispatches, 2)

	// ASSERT: Both intents were recorded with their correlation ids.
	var ids []string
	require.NoError(t, vault.Keeper.IterateOutboundIntents(vault.Ctx, func(_ uint64, intent types.OutboundIntent) (bool, error) {
		ids = append(ids, fmt.Sprintf("%x", intent.CorrelationId))
		return false, nil
	}))
	assert.ElementsMatch(t, []string{first.CorrelationId, second.CorrelationId}, ids)
}

func TestInitiateOutboundTransferInsufficientOnHand(t *testing.T) {
	vault := setupVault(t)
	vault.fundVault(10*ONE)

	_, err := vault.server.InitiateOutboundTransfer(vault.Ctx, &types.MsgInitiateOutboundTransfer{
		Signer:  vault.operator.Address,
		Amount:  math.NewInt(11*ONE),
		Payload: []byte("route"),
		Fee:     sdk.NewCoin(mocks.Denom, math.NewInt(1000)),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInsufficientOnHand))
	assert.Empty(t, vault.Settlement.Dispatches)
}

func TestInitiateOutboundTransferRequiresFeeBudget(t *testing.T) {
	vault := setupVault(t)
	vault.fundVault(10*ONE)

	// ACT & ASSERT: An unset fee and an explicit zero fee are both refused
	// before anything reaches the settlement client.
	for _, fee := range []sdk.Coin{{}, sdk.NewCoin(mocks.Denom, math.ZeroInt())} {
		_, err := vault.server.InitiateOutboundTransfer(vault.Ctx, &types.MsgInitiateOutboundTransfer{
			Signer:  vault.operator.Address,
			Amount:  math.NewInt(1*ONE),
			Payload: []byte("route"),
			Fee:     fee,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrInvalidArgument))
	}
	assert.Empty(t, vault.Settlement.Dispatches)
	movedOut, err := vault.Keeper.GetTotalMovedOut(vault.Ctx)
	require.NoError(t, err)
	assert.Equal(t, math.ZeroInt(), movedOut)

	// ASSERT: The same transfer with a positive fee goes through.
	_, err = vault.server.InitiateOutboundTransfer(vault.Ctx, &types.MsgInitiateOutboundTransfer{
		Signer:  vault.operator.Address,
		Amount:  math.NewInt(1*ONE),
		Payload: []byte("route"),
		Fee:     sdk.NewCoin(mocks.Denom, math.NewInt(1)),
	})
	require.NoError(t, err)
	assert.Len(t, vault.Settlement.Dispatches, 1)
}

func TestInitiateOutboundTransferDispatchFailure(t *testing.T) {
	vault := setupVault(t)
	vault.fundVault(10*ONE)

	vault.Settlement.Hook = func(_ context.Context, _ []byte, _ sdk.Coin) error {
		return errors.New("bridge offline")
	}

	_, err := vault.server.InitiateOutboundTransfer(vault.Ctx, &types.MsgInitiateOutboundTransfer{
		Signer:  vault.operator.Address,
		Amount:  math.NewInt(1*ONE),
		Payload: []byte("route"),
		Fee:     sdk.NewCoin(mocks.Denom, math.NewInt(1000)),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrExternalCallFailed))
}

func TestWithdrawToOperator(t *testing.T) {
	vault := setupVault(t)
	vault.fundVault(100*ONE)

	// ACT & ASSERT: The valuer has no treasury power.
	_, err := vault.server.WithdrawToOperator(vault.Ctx, &types.MsgWithdrawToOperator{
		Signer:    vault.valuer.Address,
		Amount:    math.NewInt(10*ONE),
		Recipient: vault.valuer.Address,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnauthorized))

	// ACT & ASSERT: Omitting the recipient is refused outright.
	_, err = vault.server.WithdrawToOperator(vault.Ctx, &types.MsgWithdrawToOperator{
		Signer: vault.operator.Address,
		Amount: math.NewInt(10*ONE),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))
	assert.Equal(t, math.NewInt(100*ONE), vault.Keeper.OnHandBalance(vault.Ctx))

	// ACT: The operator withdraws to their own wallet.
	_, err = vault.server.WithdrawToOperator(vault.Ctx, &types.MsgWithdrawToOperator{
		Signer:    vault.operator.Address,
		Amount:    math.NewInt(10*ONE),
		Recipient: vault.operator.Address,
	})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(10*ONE), vault.balanceOf(vault.operator))
	assert.Equal(t, math.NewInt(90*ONE), vault.Keeper.OnHandBalance(vault.Ctx))

	// ACT & ASSERT: Treasury withdrawals ignore the withdrawal switch; that
	// switch protects share redemptions, not operations.
	_, err = vault.server.SetWithdrawalsEnabled(vault.Ctx, &types.MsgSetWithdrawalsEnabled{
		Administrator: vault.admin.Address,
		Enabled:       false,
	})
	require.NoError(t, err)
	_, err = vault.server.WithdrawToOperator(vault.Ctx, &types.MsgWithdrawToOperator{
		Signer:    vault.operator.Address,
		Amount:    math.NewInt(5*ONE),
		Recipient: vault.operator.Address,
	})
	require.NoError(t, err)
}

func TestExecuteExternalCall(t *testing.T) {
	vault := setupVault(t)
	vault.fundVault(10*ONE)

	// ACT: Forward a payload with 1 attached.
	_, err := vault.server.ExecuteExternalCall(vault.Ctx, &types.MsgExecuteExternalCall{
		Signer:  vault.operator.Address,
		Target:  "venue-a",
		Payload: []byte{0xde, 0xad},
		Value:   sdk.NewCoin(mocks.Denom, math.NewInt(1*ONE)),
	})
	require.NoError(t, err)
	require.Len(t, vault.Executor.Calls, 1)
	assert.Equal(t, "venue-a", vault.Executor.Calls[0].Target)
	assert.Equal(t, []byte{0xde, 0xad}, vault.Executor.Calls[0].Payload)

	// ACT & ASSERT: A value above the on-hand balance is refused before the
	// executor ever sees the call.
	_, err = vault.server.ExecuteExternalCall(vault.Ctx, &types.MsgExecuteExternalCall{
		Signer: vault.operator.Address,
		Target: "venue-a",
		Value:  sdk.NewCoin(mocks.Denom, math.NewInt(11*ONE)),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInsufficientOnHand))
	assert.Len(t, vault.Executor.Calls, 1)

	// ACT & ASSERT: Executor failures surface as external call errors.
	vault.Executor.Hook = func(_ context.Context, _ string, _ []byte, _ sdk.Coin) error {
		return errors.New("reverted")
	}
	_, err = vault.server.ExecuteExternalCall(vault.Ctx, &types.MsgExecuteExternalCall{
		Signer: vault.operator.Address,
		Target: "venue-a",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrExternalCallFailed))
}

func TestAllowanceLifecycle(t *testing.T) {
	vault := setupVault(t)
	spender := utils.TestAccount()
	vault.fundVault(100*ONE)

	// ARRANGE: The operator grants the spender 20.
	_, err := vault.server.ApproveSpender(vault.Ctx, &types.MsgApproveSpender{
		Signer:  vault.operator.Address,
		Denom:   mocks.Denom,
		Spender: spender.Address,
		Amount:  math.NewInt(20*ONE),
	})
	require.NoError(t, err)

	// ACT: The spender draws 15 with no role at all.
	resp, err := vault.server.SpendAllowance(vault.Ctx, &types.MsgSpendAllowance{
		Spender: spender.Address,
		Denom:   mocks.Denom,
		Amount:  math.NewInt(15*ONE),
	})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(5*ONE), resp.RemainingAllowance)
	assert.Equal(t, math.NewInt(15*ONE), vault.balanceOf(spender))

	// ACT & ASSERT: Drawing past the remainder fails.
	_, err = vault.server.SpendAllowance(vault.Ctx, &types.MsgSpendAllowance{
		Spender: spender.Address,
		Denom:   mocks.Denom,
		Amount:  math.NewInt(6*ONE),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnauthorized))

	// ACT: A fresh approval replaces rather than adds.
	_, err = vault.server.ApproveSpender(vault.Ctx, &types.MsgApproveSpender{
		Signer:  vault.operator.Address,
		Denom:   mocks.Denom,
		Spender: spender.Address,
		Amount:  math.NewInt(2*ONE),
	})
	require.NoError(t, err)

	allowance, err := vault.Keeper.GetSpenderAllowance(vault.Ctx, mocks.Denom, spender.Address)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(2*ONE), allowance)

	// ACT & ASSERT: A zero approval revokes.
	_, err = vault.server.ApproveSpender(vault.Ctx, &types.MsgApproveSpender{
		Signer:  vault.operator.Address,
		Denom:   mocks.Denom,
		Spender: spender.Address,
		Amount:  math.ZeroInt(),
	})
	require.NoError(t, err)
	_, err = vault.server.SpendAllowance(vault.Ctx, &types.MsgSpendAllowance{
		Spender: spender.Address,
		Denom:   mocks.Denom,
		Amount:  math.NewInt(1),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnauthorized))
}
