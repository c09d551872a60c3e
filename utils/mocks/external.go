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

package mocks

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/polymarket-alm-ai/halo-contract/types"
)

var (
	_ types.SettlementClient = &SettlementClient{}
	_ types.CallExecutor     = &CallExecutor{}
)

type Dispatch struct {
	Payload []byte
	Fee     sdk.Coin
}

// SettlementClient records dispatched settlement instructions. An optional
// Hook runs before the dispatch is recorded and may return an error or call
// back into the vault.
type SettlementClient struct {
	Dispatches []Dispatch
	Hook       func(ctx context.Context, payload []byte, fee sdk.Coin) error
}

func (c *SettlementClient) Dispatch(ctx context.Context, payload []byte, fee sdk.Coin) error {
	if c.Hook != nil {
		if err := c.Hook(ctx, payload, fee); err != nil {
			return err
		}
	}

	c.Dispatches = append(c.Dispatches, Dispatch{Payload: payload, Fee: fee})
	return nil
}

type Call struct {
	Target  string
	Payload []byte
	Value   sdk.Coin
}

// CallExecutor records forwarded external calls, with the same optional Hook
// as SettlementClient.
type CallExecutor struct {
	Calls []Call
	Hook  func(ctx context.Context, target string, payload []byte, value sdk.Coin) error
}

func (e *CallExecutor) Execute(ctx context.Context, target string, payload []byte, value sdk.Coin) error {
	if e.Hook != nil {
		if err := e.Hook(ctx, target, payload, value); err != nil {
			return err
		}
	}

	e.Calls = append(e.Calls, Call{Target: target, Payload: payload, Value: value})
	return nil
}
