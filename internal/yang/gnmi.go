// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package yang

import (
	"fmt"
	"strings"

	gpb "github.com/openconfig/gnmi/proto/gnmi"
	"github.com/openconfig/ygot/ygot"
)

// Configurable represents a data node with a YANG path.
type Configurable interface {
	// XPath returns the YANG path for this data node.
	// It may include an origin prefix (e.g., "ietf-interfaces:interfaces/interface[name=eth1]").
	XPath() string
}

// Keyed represents a YANG list entry that can provide its key value.
type Keyed[K comparable] interface {
	// Key returns the key value for this list entry.
	Key() K
}

// StringToStructuredPath converts a string xpath to a structured path.
//
// It is a wrapper around [ygot.StringToStructuredPath] that additionally supports
// origin prefixes, such as "ietf-interfaces:interfaces/interface[name=eth1]".
func StringToStructuredPath(xpath string) (*gpb.Path, error) {
	var model string
	if idx := strings.Index(xpath, ":"); idx > 0 && !strings.ContainsAny(xpath[:idx], "/[") {
		model = xpath[:idx]
		xpath = xpath[idx+1:]
	}
	path, err := ygot.StringToStructuredPath(xpath)
	if err != nil {
		return nil, fmt.Errorf("yang: failed to convert xpath '%s' to path: %w", xpath, err)
	}
	path.Origin = model
	return path, nil
}

// Encode wraps the JSON payload b into a [gpb.TypedValue] of the given encoding.
// Only [gpb.Encoding_JSON] and [gpb.Encoding_JSON_IETF] are supported.
func Encode(b []byte, encoding gpb.Encoding) *gpb.TypedValue {
	switch encoding {
	case gpb.Encoding_JSON:
		return &gpb.TypedValue{
			Value: &gpb.TypedValue_JsonVal{
				JsonVal: b,
			},
		}
	case gpb.Encoding_JSON_IETF:
		return &gpb.TypedValue{
			Value: &gpb.TypedValue_JsonIetfVal{
				JsonIetfVal: b,
			},
		}
	default:
		panic("yang: unsupported encoding")
	}
}
