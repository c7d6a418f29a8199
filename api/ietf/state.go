// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package ietf

import "github.com/ironcore-dev/ietf-interfaces/internal/yang"

var (
	_ yang.Configurable  = (*InterfacesState)(nil)
	_ yang.Configurable  = (*InterfaceState)(nil)
	_ yang.Keyed[string] = (*InterfaceState)(nil)
)

// InterfacesState is the read-only operational state of all interfaces.
type InterfacesState struct {
	Interface []*InterfaceState `yang:"ietf-interfaces:interface,key=name" validate:"dive"`
}

func (i *InterfacesState) XPath() string {
	return "ietf-interfaces:interfaces-state"
}

func (i *InterfacesState) Validate() error {
	return yang.Validate(i)
}

// Lookup returns the interface state with the given name, or nil.
func (i *InterfacesState) Lookup(name string) *InterfaceState {
	for _, intf := range i.Interface {
		if intf != nil && intf.Name == name {
			return intf
		}
	}
	return nil
}

// InterfaceState is the operational state of a single interface.
type InterfaceState struct {
	Name          string           `yang:"ietf-interfaces:name" validate:"required"`
	Type          string           `yang:"ietf-interfaces:type" validate:"required"`
	AdminStatus   StateAdminStatus `yang:"ietf-interfaces:admin-status" validate:"required,oneof=up down testing"`
	OperStatus    StateOperStatus  `yang:"ietf-interfaces:oper-status" validate:"required,oneof=up down testing unknown dormant not-present lower-layer-down"`
	LastChange    *string          `yang:"ietf-interfaces:last-change" validate:"omitnil,date-and-time"`
	IfIndex       int32            `yang:"ietf-interfaces:if-index" validate:"min=1"`
	PhysAddress   *string          `yang:"ietf-interfaces:phys-address" validate:"omitnil,phys-address"`
	HigherLayerIf []string         `yang:"ietf-interfaces:higher-layer-if,default=[]"`
	LowerLayerIf  []string         `yang:"ietf-interfaces:lower-layer-if,default=[]"`
	Speed         *uint64          `yang:"ietf-interfaces:speed"`
	Statistics    *StatisticsState `yang:"ietf-interfaces:statistics"`
	IPv4          *IPv4State       `yang:"ietf-ip:ipv4"`
	IPv6          *IPv6State       `yang:"ietf-ip:ipv6"`
}

func (i *InterfaceState) Key() string {
	return i.Name
}

func (i *InterfaceState) XPath() string {
	return "ietf-interfaces:interfaces-state/interface[name=" + i.Name + "]"
}

func (i *InterfaceState) Validate() error {
	return yang.Validate(i)
}

type StatisticsState struct {
	DiscontinuityTime string  `yang:"ietf-interfaces:discontinuity-time" validate:"required,date-and-time"`
	InOctets          *uint64 `yang:"ietf-interfaces:in-octets"`
	InUnicastPkts     *uint64 `yang:"ietf-interfaces:in-unicast-pkts"`
	InBroadcastPkts   *uint64 `yang:"ietf-interfaces:in-broadcast-pkts"`
	InMulticastPkts   *uint64 `yang:"ietf-interfaces:in-multicast-pkts"`
	InDiscards        *uint32 `yang:"ietf-interfaces:in-discards"`
	InErrors          *uint32 `yang:"ietf-interfaces:in-errors"`
	InUnknownProtos   *uint32 `yang:"ietf-interfaces:in-unknown-protos"`
	OutOctets         *uint64 `yang:"ietf-interfaces:out-octets"`
	OutUnicastPkts    *uint64 `yang:"ietf-interfaces:out-unicast-pkts"`
	OutBroadcastPkts  *uint64 `yang:"ietf-interfaces:out-broadcast-pkts"`
	OutMulticastPkts  *uint64 `yang:"ietf-interfaces:out-multicast-pkts"`
	OutDiscards       *uint32 `yang:"ietf-interfaces:out-discards"`
	OutErrors         *uint32 `yang:"ietf-interfaces:out-errors"`
}

type IPv4State struct {
	Forwarding *bool                `yang:"ietf-ip:forwarding"`
	MTU        *uint16              `yang:"ietf-ip:mtu" validate:"omitnil,min=68"`
	Address    []*IPv4AddressState  `yang:"ietf-ip:address,key=ip" validate:"dive"`
	Neighbor   []*IPv4NeighborState `yang:"ietf-ip:neighbor,key=ip" validate:"dive"`
}

// IPv4AddressState is an IPv4 address in use by an interface. Unlike in the
// configuration tree, Subnet is optional.
type IPv4AddressState struct {
	IP     string         `yang:"ietf-ip:ip" validate:"required,ipv4-address"`
	Subnet Subnet         `yang:"ietf-ip:subnet"`
	Origin *AddressOrigin `yang:"ietf-ip:origin" validate:"omitnil,oneof=other static dhcp link-layer random"`
}

type IPv4NeighborState struct {
	IP               string          `yang:"ietf-ip:ip" validate:"required,ipv4-address"`
	LinkLayerAddress *string         `yang:"ietf-ip:link-layer-address" validate:"omitnil,phys-address"`
	Origin           *NeighborOrigin `yang:"ietf-ip:origin" validate:"omitnil,oneof=other static dynamic"`
}

type IPv6State struct {
	Forwarding *bool                `yang:"ietf-ip:forwarding,default=false"`
	MTU        *uint32              `yang:"ietf-ip:mtu" validate:"omitnil,min=1280"`
	Address    []*IPv6AddressState  `yang:"ietf-ip:address,key=ip" validate:"dive"`
	Neighbor   []*IPv6NeighborState `yang:"ietf-ip:neighbor,key=ip" validate:"dive"`
}

type IPv6AddressState struct {
	IP           string              `yang:"ietf-ip:ip" validate:"required,ipv6-address"`
	PrefixLength uint8               `yang:"ietf-ip:prefix-length" validate:"max=128"`
	Origin       *AddressOrigin      `yang:"ietf-ip:origin" validate:"omitnil,oneof=other static dhcp link-layer random"`
	Status       *StateAddressStatus `yang:"ietf-ip:status" validate:"omitnil,oneof=preferred deprecated invalid inaccessible unknown tentative duplicate optimistic"`
}

type IPv6NeighborState struct {
	IP               string              `yang:"ietf-ip:ip" validate:"required,ipv6-address"`
	LinkLayerAddress *string             `yang:"ietf-ip:link-layer-address" validate:"omitnil,phys-address"`
	Origin           *NeighborOrigin     `yang:"ietf-ip:origin" validate:"omitnil,oneof=other static dynamic"`
	IsRouter         *yang.Empty         `yang:"ietf-ip:is-router"`
	State            *StateNeighborState `yang:"ietf-ip:state" validate:"omitnil,oneof=incomplete reachable stale delay probe"`
}
