// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"errors"
	"fmt"

	gpb "github.com/openconfig/gnmi/proto/gnmi"

	"github.com/ironcore-dev/ietf-interfaces/api/ietf"
	"github.com/ironcore-dev/ietf-interfaces/internal/yang"
)

// SetRequest renders the interface configuration of m as a gNMI SetRequest
// with one update per interface. By default the updates are merged into the
// existing configuration; use [WithReplace] to replace each interface.
func SetRequest(m *ietf.Model, opts ...Option) (*gpb.SetRequest, error) {
	o := newOptions(opts)
	if m == nil {
		return nil, errors.New("payload: model must not be nil")
	}
	if m.InterfacesState != nil {
		return nil, ErrReadOnly
	}
	switch o.encoding {
	case gpb.Encoding_JSON, gpb.Encoding_JSON_IETF:
	default:
		return nil, fmt.Errorf("payload: unsupported encoding %s", o.encoding)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	r := new(gpb.SetRequest)
	if m.Interfaces == nil {
		return r, nil
	}
	for _, intf := range m.Interfaces.Interface {
		path, err := yang.StringToStructuredPath(intf.XPath())
		if err != nil {
			return nil, err
		}
		b, err := yang.Marshal(intf, o.marshalOptions()...)
		if err != nil {
			return nil, err
		}
		o.logger.V(1).Info("Updating", "path", intf.XPath(), "payload", string(b), "replace", o.replace)
		u := &gpb.Update{
			Path: path,
			Val:  yang.Encode(b, o.encoding),
		}
		if o.replace {
			r.Replace = append(r.Replace, u)
			continue
		}
		r.Update = append(r.Update, u)
	}
	return r, nil
}
