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

import "cosmossdk.io/errors"

// Authorization failures are deliberately a distinct error from business-rule
// failures so that operator tooling can tell "you're not allowed" apart from
// "the request is invalid".
var (
	ErrInvalidRequest     = errors.Register(ModuleName, 2, "invalid request")
	ErrUnauthorized       = errors.Register(ModuleName, 3, "caller lacks the required role")
	ErrInvalidArgument    = errors.Register(ModuleName, 4, "invalid argument")
	ErrFeatureDisabled    = errors.Register(ModuleName, 5, "feature is disabled")
	ErrStaleValuation     = errors.Register(ModuleName, 6, "reported total value is stale")
	ErrInsufficientOnHand = errors.Register(ModuleName, 7, "amount exceeds on-hand balance")
	ErrInsufficientShares = errors.Register(ModuleName, 8, "insufficient share balance")
	ErrExternalCallFailed = errors.Register(ModuleName, 9, "external call failed")
	ErrReentrancy         = errors.Register(ModuleName, 10, "reentrant call detected")
)
