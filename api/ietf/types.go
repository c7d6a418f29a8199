// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package ietf

// IANA interface type identities commonly used as [Interface] type.
const (
	TypeEthernetCsmacd   = "iana-if-type:ethernetCsmacd"
	TypeSoftwareLoopback = "iana-if-type:softwareLoopback"
	TypeIEEE8023adLag    = "iana-if-type:ieee8023adLag"
	TypeL2VLAN           = "iana-if-type:l2vlan"
	TypeTunnel           = "iana-if-type:tunnel"
)

// LinkUpDownTrapEnable controls whether linkUp/linkDown SNMP notifications
// are generated for an interface.
type LinkUpDownTrapEnable string

const (
	TrapEnabled  LinkUpDownTrapEnable = "enabled"
	TrapDisabled LinkUpDownTrapEnable = "disabled"
)

// AdminStatus is the desired state of an interface.
type AdminStatus string

const (
	AdminStatusUp      AdminStatus = "up"
	AdminStatusDown    AdminStatus = "down"
	AdminStatusTesting AdminStatus = "testing"
)

// OperStatus is the current operational state of an interface.
type OperStatus string

const (
	OperStatusUp             OperStatus = "up"
	OperStatusDown           OperStatus = "down"
	OperStatusTesting        OperStatus = "testing"
	OperStatusUnknown        OperStatus = "unknown"
	OperStatusDormant        OperStatus = "dormant"
	OperStatusNotPresent     OperStatus = "not-present"
	OperStatusLowerLayerDown OperStatus = "lower-layer-down"
)

// AddressOrigin is the origin of an IPv4 or IPv6 address.
type AddressOrigin string

const (
	OriginOther     AddressOrigin = "other"
	OriginStatic    AddressOrigin = "static"
	OriginDHCP      AddressOrigin = "dhcp"
	OriginLinkLayer AddressOrigin = "link-layer"
	OriginRandom    AddressOrigin = "random"
)

// NeighborOrigin is the origin of a neighbor entry.
type NeighborOrigin string

const (
	NeighborOriginOther   NeighborOrigin = "other"
	NeighborOriginStatic  NeighborOrigin = "static"
	NeighborOriginDynamic NeighborOrigin = "dynamic"
)

// AddressStatus is the status of an IPv6 address (RFC 4862).
type AddressStatus string

const (
	AddressStatusPreferred    AddressStatus = "preferred"
	AddressStatusDeprecated   AddressStatus = "deprecated"
	AddressStatusInvalid      AddressStatus = "invalid"
	AddressStatusInaccessible AddressStatus = "inaccessible"
	AddressStatusUnknown      AddressStatus = "unknown"
	AddressStatusTentative    AddressStatus = "tentative"
	AddressStatusDuplicate    AddressStatus = "duplicate"
	AddressStatusOptimistic   AddressStatus = "optimistic"
)

// NeighborState is the Neighbor Unreachability Detection state of an IPv6
// neighbor (RFC 4861).
type NeighborState string

const (
	NeighborStateIncomplete NeighborState = "incomplete"
	NeighborStateReachable  NeighborState = "reachable"
	NeighborStateStale      NeighborState = "stale"
	NeighborStateDelay      NeighborState = "delay"
	NeighborStateProbe      NeighborState = "probe"
)

// The operational state tree declares its own enumerations. Their members
// are identical to those of the configuration tree.

type StateAdminStatus string

const (
	StateAdminStatusUp      StateAdminStatus = "up"
	StateAdminStatusDown    StateAdminStatus = "down"
	StateAdminStatusTesting StateAdminStatus = "testing"
)

type StateOperStatus string

const (
	StateOperStatusUp             StateOperStatus = "up"
	StateOperStatusDown           StateOperStatus = "down"
	StateOperStatusTesting        StateOperStatus = "testing"
	StateOperStatusUnknown        StateOperStatus = "unknown"
	StateOperStatusDormant        StateOperStatus = "dormant"
	StateOperStatusNotPresent     StateOperStatus = "not-present"
	StateOperStatusLowerLayerDown StateOperStatus = "lower-layer-down"
)

type StateAddressStatus string

const (
	StateAddressStatusPreferred    StateAddressStatus = "preferred"
	StateAddressStatusDeprecated   StateAddressStatus = "deprecated"
	StateAddressStatusInvalid      StateAddressStatus = "invalid"
	StateAddressStatusInaccessible StateAddressStatus = "inaccessible"
	StateAddressStatusUnknown      StateAddressStatus = "unknown"
	StateAddressStatusTentative    StateAddressStatus = "tentative"
	StateAddressStatusDuplicate    StateAddressStatus = "duplicate"
	StateAddressStatusOptimistic   StateAddressStatus = "optimistic"
)

type StateNeighborState string

const (
	StateNeighborStateIncomplete StateNeighborState = "incomplete"
	StateNeighborStateReachable  StateNeighborState = "reachable"
	StateNeighborStateStale      StateNeighborState = "stale"
	StateNeighborStateDelay      StateNeighborState = "delay"
	StateNeighborStateProbe      StateNeighborState = "probe"
)
