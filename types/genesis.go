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
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState seeds the vault at chain start. Owner shares are keyed by
// bech32 address.
type GenesisState struct {
	Administrator      string              `json:"administrator"`
	Operator           string              `json:"operator"`
	Valuer             string              `json:"valuer"`
	DepositsEnabled    bool                `json:"deposits_enabled"`
	WithdrawalsEnabled bool                `json:"withdrawals_enabled"`
	MinDeposit         math.Int            `json:"min_deposit"`
	MaxValuationAge    int64               `json:"max_valuation_age"`
	OwnerShares        map[string]math.Int `json:"owner_shares,omitempty"`
}

// DefaultGenesisState returns a configuration with both switches open, no
// dust floor and a one hour freshness window. Role holders must still be set
// before the vault is usable.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		DepositsEnabled:    true,
		WithdrawalsEnabled: true,
		MinDeposit:         math.ZeroInt(),
		MaxValuationAge:    3600,
	}
}

func (gs GenesisState) Validate() error {
	if gs.Administrator == "" {
		return fmt.Errorf("administrator must be set")
	}
	if gs.MaxValuationAge <= 0 {
		return fmt.Errorf("max valuation age must be positive")
	}
	if gs.MinDeposit.IsNil() || gs.MinDeposit.IsNegative() {
		return fmt.Errorf("min deposit must be non-negative")
	}
	for owner, shares := range gs.OwnerShares {
		if shares.IsNil() || !shares.IsPositive() {
			return fmt.Errorf("owner %s has non-positive share balance", owner)
		}
	}
	return nil
}
