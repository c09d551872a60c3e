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

import authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

const ModuleName = "halo"

// ModuleAddress is the custody account that physically holds the deposit
// asset. The on-hand balance is always read live from the bank ledger at this
// address, never mirrored into module state.
var ModuleAddress = authtypes.NewModuleAddress(ModuleName)

var (
	AdministratorKey        = []byte("halo/administrator")
	PendingAdministratorKey = []byte("halo/pending_administrator")
	OperatorKey             = []byte("halo/operator")
	ValuerKey               = []byte("halo/valuer")

	TotalSharesKey   = []byte("halo/total_shares")
	OwnerSharePrefix = []byte("halo/owner_shares/")

	ReportedTotalValueKey   = []byte("halo/reported_total_value")
	LastValuationTimeKey    = []byte("halo/last_valuation_time")
	MaxValuationAgeKey      = []byte("halo/max_valuation_age")
	ValuationReportCountKey = []byte("halo/valuation_report_count")

	DepositsEnabledKey    = []byte("halo/deposits_enabled")
	WithdrawalsEnabledKey = []byte("halo/withdrawals_enabled")
	MinDepositKey         = []byte("halo/min_deposit")

	TotalMovedOutKey       = []byte("halo/total_moved_out")
	OutboundIntentPrefix   = []byte("halo/outbound_intents/")
	OutboundNextIDKey      = []byte("halo/outbound_next_id")
	SpenderAllowancePrefix = []byte("halo/spender_allowances/")

	LockedKey = []byte("halo/locked")
)
