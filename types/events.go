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
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Every state-mutating operation emits one or more of the events below. The
// set is sufficient to reconstruct the full history of the vault without
// reading module state directly.

// EventDeposit is the generic deposit record; the matched amount/shares pair
// is carried by EventSharesMinted.
type EventDeposit struct {
	Depositor string
	Receiver  string
	Amount    math.Int
	Timestamp time.Time
}

type EventSharesMinted struct {
	Receiver    string
	Assets      math.Int
	Shares      math.Int
	TotalShares math.Int
	Timestamp   time.Time
}

// EventWithdraw is the generic withdrawal record; the matched amount/shares
// pair is carried by EventSharesBurned.
type EventWithdraw struct {
	Signer    string
	Owner     string
	Receiver  string
	Amount    math.Int
	Timestamp time.Time
}

type EventSharesBurned struct {
	Owner       string
	Receiver    string
	Assets      math.Int
	Shares      math.Int
	TotalShares math.Int
	Timestamp   time.Time
}

type EventValueReported struct {
	Valuer        string
	PreviousValue math.Int
	NewValue      math.Int
	Timestamp     time.Time
}

type EventOutboundTransferInitiated struct {
	CorrelationId string
	Initiator     string
	Amount        math.Int
	Fee           sdk.Coin
	TotalMovedOut math.Int
	Timestamp     time.Time
}

type EventOperatorWithdrawal struct {
	Initiator string
	Recipient string
	Amount    math.Int
	Timestamp time.Time
}

type EventExternalCallExecuted struct {
	Initiator   string
	Target      string
	PayloadSize int64
	Value       sdk.Coin
	Timestamp   time.Time
}

type EventSpenderApproved struct {
	Granter   string
	Spender   string
	Denom     string
	Amount    math.Int
	Timestamp time.Time
}

type EventAllowanceSpent struct {
	Spender   string
	Recipient string
	Denom     string
	Amount    math.Int
	Remaining math.Int
	Timestamp time.Time
}

type EventRoleUpdated struct {
	Role           string
	PreviousHolder string
	NewHolder      string
	Timestamp      time.Time
}

type EventAdministratorTransferStarted struct {
	Administrator        string
	PendingAdministrator string
	Timestamp            time.Time
}

type EventDepositsToggled struct {
	Enabled   bool
	Timestamp time.Time
}

type EventWithdrawalsToggled struct {
	Enabled   bool
	Timestamp time.Time
}

type EventMinDepositUpdated struct {
	PreviousMinDeposit math.Int
	NewMinDeposit      math.Int
	Timestamp          time.Time
}

type EventMaxValuationAgeUpdated struct {
	PreviousMaxAge int64
	NewMaxAge      int64
	Timestamp      time.Time
}

type EventSwept struct {
	Administrator string
	Denom         string
	Recipient     string
	Amount        math.Int
	Timestamp     time.Time
}

// EventValuationAging is emitted from BeginBlock when the last report has
// aged past the warning threshold. It is advisory; the binary freshness gate
// is what actually blocks operations.
type EventValuationAging struct {
	Level      string
	AgeSeconds int64
	Timestamp  time.Time
}

// The event service transports events as protobuf-shaped messages; the
// methods below satisfy that contract for the hand-written types above.

func (e *EventDeposit) Reset()         { *e = EventDeposit{} }
func (e *EventDeposit) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventDeposit) ProtoMessage()    {}

func (e *EventSharesMinted) Reset()         { *e = EventSharesMinted{} }
func (e *EventSharesMinted) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventSharesMinted) ProtoMessage()    {}

func (e *EventWithdraw) Reset()         { *e = EventWithdraw{} }
func (e *EventWithdraw) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventWithdraw) ProtoMessage()    {}

func (e *EventSharesBurned) Reset()         { *e = EventSharesBurned{} }
func (e *EventSharesBurned) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventSharesBurned) ProtoMessage()    {}

func (e *EventValueReported) Reset()         { *e = EventValueReported{} }
func (e *EventValueReported) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventValueReported) ProtoMessage()    {}

func (e *EventOutboundTransferInitiated) Reset()         { *e = EventOutboundTransferInitiated{} }
func (e *EventOutboundTransferInitiated) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventOutboundTransferInitiated) ProtoMessage()    {}

func (e *EventOperatorWithdrawal) Reset()         { *e = EventOperatorWithdrawal{} }
func (e *EventOperatorWithdrawal) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventOperatorWithdrawal) ProtoMessage()    {}

func (e *EventExternalCallExecuted) Reset()         { *e = EventExternalCallExecuted{} }
func (e *EventExternalCallExecuted) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventExternalCallExecuted) ProtoMessage()    {}

func (e *EventSpenderApproved) Reset()         { *e = EventSpenderApproved{} }
func (e *EventSpenderApproved) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventSpenderApproved) ProtoMessage()    {}

func (e *EventAllowanceSpent) Reset()         { *e = EventAllowanceSpent{} }
func (e *EventAllowanceSpent) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventAllowanceSpent) ProtoMessage()    {}

func (e *EventRoleUpdated) Reset()         { *e = EventRoleUpdated{} }
func (e *EventRoleUpdated) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventRoleUpdated) ProtoMessage()    {}

func (e *EventAdministratorTransferStarted) Reset()         { *e = EventAdministratorTransferStarted{} }
func (e *EventAdministratorTransferStarted) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventAdministratorTransferStarted) ProtoMessage()    {}

func (e *EventDepositsToggled) Reset()         { *e = EventDepositsToggled{} }
func (e *EventDepositsToggled) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventDepositsToggled) ProtoMessage()    {}

func (e *EventWithdrawalsToggled) Reset()         { *e = EventWithdrawalsToggled{} }
func (e *EventWithdrawalsToggled) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventWithdrawalsToggled) ProtoMessage()    {}

func (e *EventMinDepositUpdated) Reset()         { *e = EventMinDepositUpdated{} }
func (e *EventMinDepositUpdated) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventMinDepositUpdated) ProtoMessage()    {}

func (e *EventMaxValuationAgeUpdated) Reset()         { *e = EventMaxValuationAgeUpdated{} }
func (e *EventMaxValuationAgeUpdated) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventMaxValuationAgeUpdated) ProtoMessage()    {}

func (e *EventSwept) Reset()         { *e = EventSwept{} }
func (e *EventSwept) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventSwept) ProtoMessage()    {}

func (e *EventValuationAging) Reset()         { *e = EventValuationAging{} }
func (e *EventValuationAging) String() string { return fmt.Sprintf("%+v", *e) }
func (*EventValuationAging) ProtoMessage()    {}
