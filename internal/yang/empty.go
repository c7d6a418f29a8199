// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package yang

import "reflect"

// Empty represents the YANG built-in type "empty". A leaf of this type has no
// value; only its presence is meaningful. Use *Empty for optional leafs, where
// nil means absent.
//
// In JSON the leaf is encoded as [null].
type Empty struct{}

// Present returns a pointer to an [Empty] value.
func Present() *Empty {
	return &Empty{}
}

var emptyType = reflect.TypeFor[Empty]()
