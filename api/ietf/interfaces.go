// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package ietf contains the data model of the YANG modules ietf-interfaces
// (RFC 8343) and ietf-ip (RFC 8344).
//
// The configuration tree ([Interfaces]) and the operational state tree
// ([InterfacesState]) are declared as two independent type hierarchies, as
// their optionality and defaults differ. Optional leafs are pointers, where
// nil means absent; YANG lists are slices of pointers.
//
// Records are plain structs. Call Validate after assembling a record and do
// not use or modify it afterwards if validation fails; [Marshal] and
// [Unmarshal] validate the whole tree.
package ietf

import "github.com/ironcore-dev/ietf-interfaces/internal/yang"

var (
	_ yang.Configurable  = (*Interfaces)(nil)
	_ yang.Configurable  = (*Interface)(nil)
	_ yang.Keyed[string] = (*Interface)(nil)
)

// Model is the root of an ietf-interfaces document.
type Model struct {
	Interfaces      *Interfaces      `yang:"ietf-interfaces:interfaces"`
	InterfacesState *InterfacesState `yang:"ietf-interfaces:interfaces-state"`
}

func (m *Model) Validate() error {
	return yang.Validate(m)
}

// Interfaces is the interface configuration container.
type Interfaces struct {
	Interface []*Interface `yang:"ietf-interfaces:interface,key=name" validate:"dive"`
}

func (i *Interfaces) XPath() string {
	return "ietf-interfaces:interfaces"
}

func (i *Interfaces) Validate() error {
	return yang.Validate(i)
}

// Lookup returns the interface with the given name, or nil.
func (i *Interfaces) Lookup(name string) *Interface {
	for _, intf := range i.Interface {
		if intf != nil && intf.Name == name {
			return intf
		}
	}
	return nil
}

// Interface is the configuration of a single network interface.
type Interface struct {
	// Name is the name of the interface. The syntax is implementation specific.
	Name        string  `yang:"ietf-interfaces:name" validate:"required"`
	Description *string `yang:"ietf-interfaces:description"`
	// Type is an identity derived from "interface-type", usually one of the
	// identities defined in iana-if-type, e.g. [TypeEthernetCsmacd].
	Type                 string                `yang:"ietf-interfaces:type" validate:"required"`
	Enabled              *bool                 `yang:"ietf-interfaces:enabled,default=true"`
	LinkUpDownTrapEnable *LinkUpDownTrapEnable `yang:"ietf-interfaces:link-up-down-trap-enable" validate:"omitnil,oneof=enabled disabled"`
	AdminStatus          AdminStatus           `yang:"ietf-interfaces:admin-status" validate:"required,oneof=up down testing"`
	OperStatus           OperStatus            `yang:"ietf-interfaces:oper-status" validate:"required,oneof=up down testing unknown dormant not-present lower-layer-down"`
	LastChange           *string               `yang:"ietf-interfaces:last-change" validate:"omitnil,date-and-time"`
	IfIndex              int32                 `yang:"ietf-interfaces:if-index" validate:"min=1"`
	PhysAddress          *string               `yang:"ietf-interfaces:phys-address" validate:"omitnil,phys-address"`
	// HigherLayerIf and LowerLayerIf reference other interfaces by name.
	// The referenced interfaces are not required to exist.
	HigherLayerIf []string `yang:"ietf-interfaces:higher-layer-if,default=[]"`
	LowerLayerIf  []string `yang:"ietf-interfaces:lower-layer-if,default=[]"`
	// Speed is the estimated bandwidth in bits per second.
	Speed      *uint64     `yang:"ietf-interfaces:speed"`
	Statistics *Statistics `yang:"ietf-interfaces:statistics"`
	IPv4       *IPv4       `yang:"ietf-ip:ipv4"`
	IPv6       *IPv6       `yang:"ietf-ip:ipv6"`
}

func (i *Interface) Key() string {
	return i.Name
}

func (i *Interface) XPath() string {
	return "ietf-interfaces:interfaces/interface[name=" + i.Name + "]"
}

func (i *Interface) Validate() error {
	return yang.Validate(i)
}

// Statistics holds the interface counters. All counters are relative to
// DiscontinuityTime.
type Statistics struct {
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

func (s *Statistics) Validate() error {
	return yang.Validate(s)
}
