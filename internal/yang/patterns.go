// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package yang

import "regexp"

// Patterns of the string types defined in ietf-yang-types (RFC 6991) and
// ietf-inet-types, as used by ietf-interfaces and ietf-ip.
var (
	dateAndTimeRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[\+\-]\d{2}:\d{2})$`)
	ipv4AddressRE = regexp.MustCompile(`^(([0-9]|[1-9][0-9]|1[0-9][0-9]|2[0-4][0-9]|25[0-5])\.){3}([0-9]|[1-9][0-9]|1[0-9][0-9]|2[0-4][0-9]|25[0-5])(%[\d\w]+)?$`)
	netmaskRE     = regexp.MustCompile(`^(([0-9]|[1-9][0-9]|1[0-9][0-9]|2[0-4][0-9]|25[0-5])\.){3}([0-9]|[1-9][0-9]|1[0-9][0-9]|2[0-4][0-9]|25[0-5])$`)
	physAddressRE = regexp.MustCompile(`^([0-9a-fA-F]{2}(:[0-9a-fA-F]{2})*)?$`)

	// ipv6-address is constrained by two patterns which must both match.
	// The first one checks the character syntax, the second one the number
	// of groups and the use of "::".
	ipv6AddressRE = regexp.MustCompile(`^((:|[0-9a-fA-F]{0,4}):)([0-9a-fA-F]{0,4}:){0,5}((([0-9a-fA-F]{0,4}:)?(:|[0-9a-fA-F]{0,4}))|(((25[0-5]|2[0-4][0-9]|[01]?[0-9]?[0-9])\.){3}(25[0-5]|2[0-4][0-9]|[01]?[0-9]?[0-9])))(%[\d\w]+)?$`)
	ipv6GroupsRE  = regexp.MustCompile(`^(?:(([^:]+:){6}(([^:]+:[^:]+)|(.*\..*)))|((([^:]+:)*[^:]+)?::(([^:]+:)*[^:]+)?)(%.+)?$)`)
)

// IsDateAndTime reports whether s is a valid yang:date-and-time value.
func IsDateAndTime(s string) bool {
	return dateAndTimeRE.MatchString(s)
}

// IsIPv4Address reports whether s is a valid inet:ipv4-address value,
// including an optional zone index.
func IsIPv4Address(s string) bool {
	return ipv4AddressRE.MatchString(s)
}

// IsIPv6Address reports whether s is a valid inet:ipv6-address value,
// including an optional zone index.
func IsIPv6Address(s string) bool {
	return ipv6AddressRE.MatchString(s) && ipv6GroupsRE.MatchString(s)
}

// IsNetmask reports whether s is a valid dotted-quad netmask (yang:dotted-quad).
func IsNetmask(s string) bool {
	return netmaskRE.MatchString(s)
}

// IsPhysAddress reports whether s is a valid yang:phys-address value.
// The empty string is valid.
func IsPhysAddress(s string) bool {
	return physAddressRE.MatchString(s)
}
