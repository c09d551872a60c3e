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
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polymarket-alm-ai/halo-contract/types"
)

// requireCapability authorizes a caller against the permission table: the
// operation names the capability it needs, and the caller must currently hold
// a role granting it. Unset roles grant nothing.
func (k *Keeper) requireCapability(ctx context.Context, caller string, capability types.Capability) error {
	for _, role := range types.RolesGranting(capability) {
		holder, err := k.RoleHolder(ctx, role)
		if err != nil {
			return err
		}
		if holder != "" && holder == caller {
			return nil
		}
	}

	return sdkerrors.Wrapf(types.ErrUnauthorized, "%s is not authorized for capability %s", caller, capability)
}

// decodeAddress converts a caller-supplied bech32 address into account bytes,
// rejecting malformed input as an argument error rather than an auth error.
func (k *Keeper) decodeAddress(address string) (sdk.AccAddress, error) {
	bz, err := k.address.StringToBytes(address)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidArgument, "invalid address: %s", address)
	}

	return bz, nil
}
