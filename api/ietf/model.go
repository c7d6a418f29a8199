// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package ietf

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/ironcore-dev/ietf-interfaces/internal/yang"
)

type (
	// ValidationError is returned for every record that violates a constraint
	// of the data model. It lists the path of each offending data node.
	ValidationError = yang.ValidationError
	// Empty is the value of a presence-only leaf such as is-router.
	Empty = yang.Empty
	// MarshalOption configures [Marshal].
	MarshalOption = yang.MarshalOption
)

// ErrInvalid is matched by every [ValidationError] through [errors.Is].
var ErrInvalid = yang.ErrInvalid

var (
	// Compact omits all leafs equal to their default value.
	Compact = yang.Compact
	// WithIndent formats the JSON document.
	WithIndent = yang.WithIndent
	// WithLogger sets the logger used during encoding.
	WithLogger = yang.WithLogger
	// Present returns a value for a presence-only leaf.
	Present = yang.Present
)

func init() {
	yang.RegisterChoice[Subnet](PrefixLength{}, Netmask{})
	yang.RegisterStructValidation(yang.ValidateKeys,
		Interfaces{}, IPv4{}, IPv6{},
		InterfacesState{}, IPv4State{}, IPv6State{},
	)
	yang.RegisterStructValidation(validateIPv6Neighbor, IPv6Neighbor{})
}

func validateIPv6Neighbor(sl validator.StructLevel) {
	n := sl.Current().Interface().(IPv6Neighbor)
	if n.LinkLayerAddress == nil && (n.State == nil || *n.State != NeighborStateIncomplete) {
		sl.ReportError(nil, "link-layer-address", "LinkLayerAddress", "required", "required unless state is incomplete")
	}
}

// Validate validates any record of this package, e.g. an [*IPv4Address].
func Validate(v any) error {
	return yang.Validate(v)
}

// Marshal validates m and encodes it as a JSON document with YANG-qualified
// member names in schema order.
func Marshal(m *Model, opts ...MarshalOption) ([]byte, error) {
	if m == nil {
		return nil, errors.New("ietf: failed to marshal nil model")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return yang.Marshal(m, opts...)
}

// Unmarshal decodes and validates a JSON document.
func Unmarshal(b []byte) (*Model, error) {
	m := new(Model)
	if err := yang.Unmarshal(b, m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// MarshalJSON implements the json.Marshaler interface. It returns the
// compact encoding of the model, as used for RESTCONF PATCH payloads.
func (m *Model) MarshalJSON() ([]byte, error) {
	return Marshal(m, Compact())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Model) UnmarshalJSON(b []byte) error {
	got, err := Unmarshal(b)
	if err != nil {
		return err
	}
	*m = *got
	return nil
}
