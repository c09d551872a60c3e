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

// Role identifies one of the three non-overlapping capability holders of the
// vault. Roles are dynamic identities stored in state, not static wiring.
type Role int32

const (
	RoleAdministrator Role = iota + 1
	RoleOperator
	RoleValuer
)

func (r Role) String() string {
	switch r {
	case RoleAdministrator:
		return "administrator"
	case RoleOperator:
		return "operator"
	case RoleValuer:
		return "valuer"
	default:
		return "unknown"
	}
}

// Capability is a single permission an operation requires. Authorization is
// expressed as an explicit permission table (capability -> granting roles)
// rather than role checks scattered across call sites.
type Capability int32

const (
	// CapabilityAdminister covers role changes, switch toggles, parameter
	// updates and emergency sweeps.
	CapabilityAdminister Capability = iota + 1
	// CapabilityTreasury covers moving custodied funds out of the vault:
	// outbound settlement, operator withdrawals, external calls and
	// allowance grants.
	CapabilityTreasury
	// CapabilityReportValue covers valuation reports.
	CapabilityReportValue
)

// capabilityGrants maps each capability to the roles that hold it. The
// administrator is a strict superset of the operator for treasury purposes,
// never the other way around, and the valuer holds nothing else.
var capabilityGrants = map[Capability][]Role{
	CapabilityAdminister:  {RoleAdministrator},
	CapabilityTreasury:    {RoleOperator, RoleAdministrator},
	CapabilityReportValue: {RoleValuer},
}

func (c Capability) String() string {
	switch c {
	case CapabilityAdminister:
		return "administer"
	case CapabilityTreasury:
		return "treasury"
	case CapabilityReportValue:
		return "report_value"
	default:
		return "unknown"
	}
}

// RolesGranting returns the roles that hold the given capability.
func RolesGranting(capability Capability) []Role {
	return capabilityGrants[capability]
}
