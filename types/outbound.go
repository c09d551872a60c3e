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
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	correlationIdSize = 32
	intSize           = 32
	timestampSize     = 8
)

// OutboundIntent is the locally recorded half of an outbound settlement. It
// proves the operator initiated a transfer; it says nothing about whether the
// downstream bridge or venue ever completed it. Reconciliation happens only
// through subsequent valuation reports.
type OutboundIntent struct {
	Id            uint64
	CorrelationId []byte
	Initiator     string
	Amount        math.Int
	Fee           sdk.Coin
	Timestamp     time.Time
}

var _ collcodec.ValueCodec[OutboundIntent] = OutboundIntentValue{}

// OutboundIntentValue encodes intents into a fixed-layout big-endian record,
// with length-prefixed strings for the variable fields. Numeric values use
// 32-byte big-endian encoding.
type OutboundIntentValue struct{}

func (OutboundIntentValue) Encode(value OutboundIntent) ([]byte, error) {
	if len(value.CorrelationId) != correlationIdSize {
		return nil, fmt.Errorf("invalid correlation id size: expected %d, got %d", correlationIdSize, len(value.CorrelationId))
	}
	if value.Amount.IsNil() || value.Amount.IsNegative() {
		return nil, fmt.Errorf("invalid intent amount")
	}

	bz := make([]byte, 0, 8+correlationIdSize+2+len(value.Initiator)+intSize+2+len(value.Fee.Denom)+intSize+timestampSize)
	bz = binary.BigEndian.AppendUint64(bz, value.Id)
	bz = append(bz, value.CorrelationId...)
	bz = appendLengthPrefixed(bz, value.Initiator)
	bz = appendBigEndianInt(bz, value.Amount)
	bz = appendLengthPrefixed(bz, value.Fee.Denom)
	bz = appendBigEndianInt(bz, value.Fee.Amount)
	bz = binary.BigEndian.AppendUint64(bz, uint64(value.Timestamp.Unix()))

	return bz, nil
}

func (OutboundIntentValue) Decode(bz []byte) (OutboundIntent, error) {
	var intent OutboundIntent

	if len(bz) < 8+correlationIdSize {
		return intent, fmt.Errorf("truncated outbound intent record: %d bytes", len(bz))
	}

	intent.Id = binary.BigEndian.Uint64(bz[:8])
	bz = bz[8:]
	intent.CorrelationId = append([]byte(nil), bz[:correlationIdSize]...)
	bz = bz[correlationIdSize:]

	initiator, bz, err := cutLengthPrefixed(bz)
	if err != nil {
		return intent, err
	}
	intent.Initiator = initiator

	amount, bz, err := cutBigEndianInt(bz)
	if err != nil {
		return intent, err
	}
	intent.Amount = amount

	feeDenom, bz, err := cutLengthPrefixed(bz)
	if err != nil {
		return intent, err
	}
	feeAmount, bz, err := cutBigEndianInt(bz)
	if err != nil {
		return intent, err
	}
	intent.Fee = sdk.Coin{Denom: feeDenom, Amount: feeAmount}

	if len(bz) != timestampSize {
		return intent, fmt.Errorf("truncated outbound intent timestamp")
	}
	intent.Timestamp = time.Unix(int64(binary.BigEndian.Uint64(bz)), 0).UTC()

	return intent, nil
}

func (v OutboundIntentValue) EncodeJSON(value OutboundIntent) ([]byte, error) {
	return json.Marshal(value)
}

func (v OutboundIntentValue) DecodeJSON(bz []byte) (OutboundIntent, error) {
	var intent OutboundIntent
	err := json.Unmarshal(bz, &intent)
	return intent, err
}

func (OutboundIntentValue) Stringify(value OutboundIntent) string {
	return fmt.Sprintf("%+v", value)
}

func (OutboundIntentValue) ValueType() string {
	return "halo.OutboundIntent"
}

func appendLengthPrefixed(bz []byte, s string) []byte {
	bz = binary.BigEndian.AppendUint16(bz, uint16(len(s)))
	return append(bz, s...)
}

func cutLengthPrefixed(bz []byte) (string, []byte, error) {
	if len(bz) < 2 {
		return "", nil, fmt.Errorf("truncated length prefix")
	}
	n := int(binary.BigEndian.Uint16(bz[:2]))
	bz = bz[2:]
	if len(bz) < n {
		return "", nil, fmt.Errorf("truncated string field: want %d bytes, have %d", n, len(bz))
	}
	return string(bz[:n]), bz[n:], nil
}

func appendBigEndianInt(bz []byte, value math.Int) []byte {
	buf := make([]byte, intSize)
	value.BigInt().FillBytes(buf)
	return append(bz, buf...)
}

func cutBigEndianInt(bz []byte) (math.Int, []byte, error) {
	if len(bz) < intSize {
		return math.Int{}, nil, fmt.Errorf("truncated integer field")
	}
	value := math.NewIntFromBigInt(new(big.Int).SetBytes(bz[:intSize]))
	return value, bz[intSize:], nil
}
