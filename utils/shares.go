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

package utils

import (
	"fmt"

	"cosmossdk.io/math"
)

// Share conversion helpers. All four conversions price shares off the single
// reported total value, never off the on-hand balance, and all four round in
// the ledger's favor:
//
//   - SharesForDeposit and AssetsForRedeem floor the derived quantity paid
//     out by the ledger.
//   - AssetsForMint and SharesForWithdraw ceil the quantity the caller must
//     surrender.
//
// When the share supply is zero every conversion is 1:1.

// SharesForDeposit returns floor(amount * totalShares / totalValue).
func SharesForDeposit(amount, totalValue, totalShares math.Int) (math.Int, error) {
	if err := validateConversion(amount, totalValue, totalShares); err != nil {
		return math.Int{}, err
	}
	if totalShares.IsZero() {
		return amount, nil
	}
	return amount.Mul(totalShares).Quo(totalValue), nil
}

// AssetsForMint returns ceil(shares * totalValue / totalShares), the amount
// the depositor must pay in to receive exactly the requested shares.
func AssetsForMint(shares, totalValue, totalShares math.Int) (math.Int, error) {
	if err := validateConversion(shares, totalValue, totalShares); err != nil {
		return math.Int{}, err
	}
	if totalShares.IsZero() {
		return shares, nil
	}
	return ceilDiv(shares.Mul(totalValue), totalShares), nil
}

// SharesForWithdraw returns ceil(assets * totalShares / totalValue), the
// share balance burned to release exactly the requested assets.
func SharesForWithdraw(assets, totalValue, totalShares math.Int) (math.Int, error) {
	if err := validateConversion(assets, totalValue, totalShares); err != nil {
		return math.Int{}, err
	}
	if totalShares.IsZero() {
		return assets, nil
	}
	return ceilDiv(assets.Mul(totalShares), totalValue), nil
}

// AssetsForRedeem returns floor(shares * totalValue / totalShares).
func AssetsForRedeem(shares, totalValue, totalShares math.Int) (math.Int, error) {
	if err := validateConversion(shares, totalValue, totalShares); err != nil {
		return math.Int{}, err
	}
	if totalShares.IsZero() {
		return shares, nil
	}
	return shares.Mul(totalValue).Quo(totalShares), nil
}

func validateConversion(amount, totalValue, totalShares math.Int) error {
	if amount.IsNil() || totalValue.IsNil() || totalShares.IsNil() {
		return fmt.Errorf("invalid conversion input: nil value")
	}
	if amount.IsNegative() || totalValue.IsNegative() || totalShares.IsNegative() {
		return fmt.Errorf("invalid conversion input: negative value")
	}
	if totalShares.IsPositive() && totalValue.IsZero() {
		return fmt.Errorf("reported total value is zero with %s shares outstanding", totalShares.String())
	}
	return nil
}

func ceilDiv(numerator, denominator math.Int) math.Int {
	quotient := numerator.Quo(denominator)
	if !numerator.Mod(denominator).IsZero() {
		quotient = quotient.AddRaw(1)
	}
	return quotient
}
