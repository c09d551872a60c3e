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

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the full state-mutating surface of the vault. Every method is
// terminal for its operation: it either fully applies or returns an error
// with nothing applied.
type MsgServer interface {
	// Share ledger.
	Deposit(ctx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
	Mint(ctx context.Context, msg *MsgMint) (*MsgMintResponse, error)
	Withdraw(ctx context.Context, msg *MsgWithdraw) (*MsgWithdrawResponse, error)
	Redeem(ctx context.Context, msg *MsgRedeem) (*MsgRedeemResponse, error)

	// Valuation.
	ReportValue(ctx context.Context, msg *MsgReportValue) (*MsgReportValueResponse, error)

	// Treasury.
	InitiateOutboundTransfer(ctx context.Context, msg *MsgInitiateOutboundTransfer) (*MsgInitiateOutboundTransferResponse, error)
	WithdrawToOperator(ctx context.Context, msg *MsgWithdrawToOperator) (*MsgWithdrawToOperatorResponse, error)
	ExecuteExternalCall(ctx context.Context, msg *MsgExecuteExternalCall) (*MsgExecuteExternalCallResponse, error)
	ApproveSpender(ctx context.Context, msg *MsgApproveSpender) (*MsgApproveSpenderResponse, error)
	SpendAllowance(ctx context.Context, msg *MsgSpendAllowance) (*MsgSpendAllowanceResponse, error)

	// Administration.
	SetOperator(ctx context.Context, msg *MsgSetOperator) (*MsgSetOperatorResponse, error)
	SetValuer(ctx context.Context, msg *MsgSetValuer) (*MsgSetValuerResponse, error)
	TransferAdministrator(ctx context.Context, msg *MsgTransferAdministrator) (*MsgTransferAdministratorResponse, error)
	AcceptAdministrator(ctx context.Context, msg *MsgAcceptAdministrator) (*MsgAcceptAdministratorResponse, error)
	SetDepositsEnabled(ctx context.Context, msg *MsgSetDepositsEnabled) (*MsgSetDepositsEnabledResponse, error)
	SetWithdrawalsEnabled(ctx context.Context, msg *MsgSetWithdrawalsEnabled) (*MsgSetWithdrawalsEnabledResponse, error)
	SetMinDeposit(ctx context.Context, msg *MsgSetMinDeposit) (*MsgSetMinDepositResponse, error)
	SetMaxValuationAge(ctx context.Context, msg *MsgSetMaxValuationAge) (*MsgSetMaxValuationAgeResponse, error)
	Sweep(ctx context.Context, msg *MsgSweep) (*MsgSweepResponse, error)
}

type MsgDeposit struct {
	Depositor string
	Amount    math.Int
	// Receiver is credited with the minted shares. Defaults to the depositor
	// when empty.
	Receiver string
}

type MsgDepositResponse struct {
	SharesMinted math.Int
}

type MsgMint struct {
	Depositor string
	Shares    math.Int
	Receiver  string
}

type MsgMintResponse struct {
	AssetsCollected math.Int
}

type MsgWithdraw struct {
	Signer string
	Assets math.Int
	// Receiver is paid the withdrawn assets. Defaults to the signer when
	// empty.
	Receiver string
	// Owner is the share holder whose balance is burned. Defaults to the
	// signer; third-party owners are not supported.
	Owner string
}

type MsgWithdrawResponse struct {
	SharesBurned math.Int
}

type MsgRedeem struct {
	Signer   string
	Shares   math.Int
	Receiver string
	Owner    string
}

type MsgRedeemResponse struct {
	AssetsPaid math.Int
}

type MsgReportValue struct {
	Valuer string
	// TotalValue is the aggregate value of all assets under management, on
	// hand and off ledger, denominated in the deposit asset's smallest unit.
	// It is accepted as reported, without bounds checking.
	TotalValue math.Int
}

type MsgReportValueResponse struct {
	PreviousValue math.Int
}

type MsgInitiateOutboundTransfer struct {
	Signer string
	Amount math.Int
	// Payload is the opaque settlement instruction obtained from the quote
	// provider. The vault forwards it without inspection.
	Payload []byte
	Fee     sdk.Coin
}

type MsgInitiateOutboundTransferResponse struct {
	// CorrelationId is a locally derived tracking token for audit
	// correlation. It is not a settlement confirmation.
	CorrelationId string
	TotalMovedOut math.Int
}

type MsgWithdrawToOperator struct {
	Signer    string
	Amount    math.Int
	Recipient string
}

type MsgWithdrawToOperatorResponse struct{}

type MsgExecuteExternalCall struct {
	Signer  string
	Target  string
	Payload []byte
	Value   sdk.Coin
}

type MsgExecuteExternalCallResponse struct{}

type MsgApproveSpender struct {
	Signer  string
	Denom   string
	Spender string
	Amount  math.Int
}

type MsgApproveSpenderResponse struct{}

type MsgSpendAllowance struct {
	Spender   string
	Denom     string
	Recipient string
	Amount    math.Int
}

type MsgSpendAllowanceResponse struct {
	RemainingAllowance math.Int
}

type MsgSetOperator struct {
	Administrator string
	Operator      string
}

type MsgSetOperatorResponse struct{}

type MsgSetValuer struct {
	Administrator string
	Valuer        string
}

type MsgSetValuerResponse struct{}

type MsgTransferAdministrator struct {
	Administrator    string
	NewAdministrator string
}

type MsgTransferAdministratorResponse struct{}

type MsgAcceptAdministrator struct {
	Claimer string
}

type MsgAcceptAdministratorResponse struct{}

type MsgSetDepositsEnabled struct {
	Administrator string
	Enabled       bool
}

type MsgSetDepositsEnabledResponse struct{}

type MsgSetWithdrawalsEnabled struct {
	Administrator string
	Enabled       bool
}

type MsgSetWithdrawalsEnabledResponse struct{}

type MsgSetMinDeposit struct {
	Administrator string
	MinDeposit    math.Int
}

type MsgSetMinDepositResponse struct{}

type MsgSetMaxValuationAge struct {
	Administrator string
	// MaxValuationAge is expressed in seconds.
	MaxValuationAge int64
}

type MsgSetMaxValuationAgeResponse struct{}

type MsgSweep struct {
	Administrator string
	Denom         string
	Recipient     string
	Amount        math.Int
}

type MsgSweepResponse struct{}
