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

	"github.com/polymarket-alm-ai/halo-contract/types"
)

// BeginBlocker surfaces an aging valuation before the freshness gate closes.
// It never blocks block processing: failures are logged and swallowed.
func (k *Keeper) BeginBlocker(ctx context.Context) {
	age, reported, err := k.ValuationAge(ctx)
	if err != nil {
		k.logger.Error("unable to compute valuation age", "err", err)
		return
	}
	if !reported {
		return
	}

	level, err := k.StalenessLevel(ctx)
	if err != nil {
		k.logger.Error("unable to grade valuation staleness", "err", err)
		return
	}
	if level == StalenessLevelFresh {
		return
	}

	if err := k.event.EventManager(ctx).Emit(ctx, &types.EventValuationAging{
		Level:      level,
		AgeSeconds: age,
		Timestamp:  k.header.GetHeaderInfo(ctx).Time,
	}); err != nil {
		k.logger.Error("unable to emit valuation aging event", "err", err)
	}
}
