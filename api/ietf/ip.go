// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package ietf

import "github.com/ironcore-dev/ietf-interfaces/internal/yang"

var (
	_ yang.Keyed[string] = (*IPv4Address)(nil)
	_ yang.Keyed[string] = (*IPv4Neighbor)(nil)
	_ yang.Keyed[string] = (*IPv6Address)(nil)
	_ yang.Keyed[string] = (*IPv6Neighbor)(nil)
)

// IPv4 holds the IPv4 configuration of an interface.
type IPv4 struct {
	Enabled    *bool `yang:"ietf-ip:enabled,default=true"`
	Forwarding *bool `yang:"ietf-ip:forwarding,default=false"`
	// MTU is the size of the largest IPv4 packet in octets. If absent, the
	// system determines the MTU.
	MTU      *uint16         `yang:"ietf-ip:mtu" validate:"omitnil,min=68"`
	Address  []*IPv4Address  `yang:"ietf-ip:address,key=ip" validate:"dive"`
	Neighbor []*IPv4Neighbor `yang:"ietf-ip:neighbor,key=ip" validate:"dive"`
}

func (v *IPv4) Validate() error {
	return yang.Validate(v)
}

// IPv4Address is a configured IPv4 address of an interface.
type IPv4Address struct {
	IP     string         `yang:"ietf-ip:ip" validate:"required,ipv4-address"`
	Subnet Subnet         `yang:"ietf-ip:subnet" validate:"required"`
	Origin *AddressOrigin `yang:"ietf-ip:origin" validate:"omitnil,oneof=other static dhcp link-layer random"`
}

func (a *IPv4Address) Key() string {
	return a.IP
}

func (a *IPv4Address) Validate() error {
	return yang.Validate(a)
}

// Subnet is the YANG choice "subnet" of an IPv4 address. It is either a
// [PrefixLength] or a [Netmask].
type Subnet interface {
	isSubnet()
}

// PrefixLength is the length of the subnet prefix.
type PrefixLength struct {
	Length uint8 `yang:"ietf-ip:prefix-length" validate:"max=32"`
}

func (PrefixLength) isSubnet() {}

// Netmask is the subnet specified as a dotted-quad netmask.
type Netmask struct {
	Mask string `yang:"ietf-ip:netmask" validate:"required,netmask"`
}

func (Netmask) isSubnet() {}

// IPv4Neighbor is a static ARP entry.
type IPv4Neighbor struct {
	IP               string          `yang:"ietf-ip:ip" validate:"required,ipv4-address"`
	LinkLayerAddress string          `yang:"ietf-ip:link-layer-address" validate:"phys-address"`
	Origin           *NeighborOrigin `yang:"ietf-ip:origin" validate:"omitnil,oneof=other static dynamic"`
}

func (n *IPv4Neighbor) Key() string {
	return n.IP
}

func (n *IPv4Neighbor) Validate() error {
	return yang.Validate(n)
}

// IPv6 holds the IPv6 configuration of an interface.
type IPv6 struct {
	Enabled    *bool           `yang:"ietf-ip:enabled,default=true"`
	Forwarding *bool           `yang:"ietf-ip:forwarding,default=false"`
	MTU        *uint32         `yang:"ietf-ip:mtu" validate:"omitnil,min=1280"`
	Address    []*IPv6Address  `yang:"ietf-ip:address,key=ip" validate:"dive"`
	Neighbor   []*IPv6Neighbor `yang:"ietf-ip:neighbor,key=ip" validate:"dive"`
	// DupAddrDetectTransmits is the number of consecutive Neighbor
	// Solicitation messages sent while performing Duplicate Address
	// Detection. A value of zero disables it.
	DupAddrDetectTransmits *uint32   `yang:"ietf-ip:dup-addr-detect-transmits,default=1"`
	Autoconf               *Autoconf `yang:"ietf-ip:autoconf"`
}

func (v *IPv6) Validate() error {
	return yang.Validate(v)
}

// Autoconf holds the parameters of IPv6 stateless address autoconfiguration.
type Autoconf struct {
	CreateGlobalAddresses    *bool `yang:"ietf-ip:create-global-addresses,default=true"`
	CreateTemporaryAddresses *bool `yang:"ietf-ip:create-temporary-addresses,default=false"`
	// Lifetimes are in seconds.
	TemporaryValidLifetime     *uint32 `yang:"ietf-ip:temporary-valid-lifetime,default=604800"`
	TemporaryPreferredLifetime *uint32 `yang:"ietf-ip:temporary-preferred-lifetime,default=86400"`
}

// IPv6Address is a configured IPv6 address of an interface.
type IPv6Address struct {
	IP           string         `yang:"ietf-ip:ip" validate:"required,ipv6-address"`
	PrefixLength uint8          `yang:"ietf-ip:prefix-length" validate:"max=128"`
	Origin       *AddressOrigin `yang:"ietf-ip:origin" validate:"omitnil,oneof=other static dhcp link-layer random"`
	Status       *AddressStatus `yang:"ietf-ip:status" validate:"omitnil,oneof=preferred deprecated invalid inaccessible unknown tentative duplicate optimistic"`
}

func (a *IPv6Address) Key() string {
	return a.IP
}

func (a *IPv6Address) Validate() error {
	return yang.Validate(a)
}

// IPv6Neighbor is a static neighbor cache entry. LinkLayerAddress is
// required unless State is [NeighborStateIncomplete].
type IPv6Neighbor struct {
	IP               string          `yang:"ietf-ip:ip" validate:"required,ipv6-address"`
	LinkLayerAddress *string         `yang:"ietf-ip:link-layer-address" validate:"omitnil,phys-address"`
	Origin           *NeighborOrigin `yang:"ietf-ip:origin" validate:"omitnil,oneof=other static dynamic"`
	// IsRouter is present if the neighbor is a router.
	IsRouter *yang.Empty    `yang:"ietf-ip:is-router"`
	State    *NeighborState `yang:"ietf-ip:state" validate:"omitnil,oneof=incomplete reachable stale delay probe"`
}

func (n *IPv6Neighbor) Key() string {
	return n.IP
}

func (n *IPv6Neighbor) Validate() error {
	return yang.Validate(n)
}
