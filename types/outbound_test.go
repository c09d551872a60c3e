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

package types_test

import (
	"bytes"
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymarket-alm-ai/halo-contract/types"
	"github.com/polymarket-alm-ai/halo-contract/utils"
)

func TestOutboundIntentCodec(t *testing.T) {
	codec := types.OutboundIntentValue{}
	account := utils.TestAccount()

	intent := types.OutboundIntent{
		Id:            7,
		CorrelationId: bytes.Repeat([]byte{0xab}, 32),
		Initiator:     account.Address,
		Amount:        math.NewInt(123_456_789),
		Fee:           sdk.NewCoin("uatom", math.NewInt(250)),
		Timestamp:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	bz, err := codec.Encode(intent)
	require.NoError(t, err)

	decoded, err := codec.Decode(bz)
	require.NoError(t, err)
	assert.True(t, intent.Timestamp.Equal(decoded.Timestamp))
	decoded.Timestamp = intent.Timestamp
	assert.Equal(t, intent, decoded)
}

func TestOutboundIntentCodecRejectsBadRecords(t *testing.T) {
	codec := types.OutboundIntentValue{}

	// A correlation id of the wrong size never encodes.
	_, err := codec.Encode(types.OutboundIntent{
		CorrelationId: []byte{0x01},
		Amount:        math.NewInt(1),
		Fee:           sdk.NewCoin("uatom", math.NewInt(0)),
	})
	require.Error(t, err)

	// Truncated records never decode.
	_, err = codec.Decode([]byte{0x00, 0x01})
	require.Error(t, err)
}
