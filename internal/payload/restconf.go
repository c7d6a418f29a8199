// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ironcore-dev/ietf-interfaces/api/ietf"
	"github.com/ironcore-dev/ietf-interfaces/internal/yang"
)

// MediaType is the RESTCONF media type of JSON encoded YANG data.
const MediaType = "application/yang-data+json"

// DataRoot is the RESTCONF datastore resource.
const DataRoot = "/restconf/data"

// ErrReadOnly is returned when a payload for the operational state tree is
// requested. The state tree cannot be written.
var ErrReadOnly = errors.New("payload: interfaces-state is read-only")

// Request is a RESTCONF request that has not been sent.
type Request struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

func (r *Request) String() string {
	return r.Method + " " + r.Path
}

// HTTPRequest returns the request as an [http.Request] against the server
// at baseURL, e.g. "https://192.0.2.10".
func (r *Request) HTTPRequest(ctx context.Context, baseURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method, strings.TrimSuffix(baseURL, "/")+r.Path, bytes.NewReader(r.Body))
	if err != nil {
		return nil, fmt.Errorf("payload: failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", r.ContentType)
	req.Header.Set("Accept", MediaType)
	return req, nil
}

// RESTCONF renders the interface configuration of m as a single request
// with the given method. PATCH merges into and PUT replaces the
// "ietf-interfaces:interfaces" container; POST creates it.
//
// A model without configuration yields no requests.
func RESTCONF(m *ietf.Model, method string, opts ...Option) ([]*Request, error) {
	o := newOptions(opts)
	if err := check(m, method); err != nil {
		return nil, err
	}
	if m.Interfaces == nil {
		return nil, nil
	}
	b, err := ietf.Marshal(&ietf.Model{Interfaces: m.Interfaces}, o.marshalOptions()...)
	if err != nil {
		return nil, err
	}
	path := DataRoot + "/" + m.Interfaces.XPath()
	if method == http.MethodPost {
		path = DataRoot
	}
	r := &Request{Method: method, Path: path, ContentType: MediaType, Body: b}
	o.logger.V(1).Info("Rendered request", "method", r.Method, "path", r.Path, "payload", string(b))
	return []*Request{r}, nil
}

// InterfaceRequests renders one request per interface of m. PATCH and PUT
// target the list entry, e.g.
// "/restconf/data/ietf-interfaces:interfaces/interface=eth1%2F1", while POST
// targets the parent container. The key is percent-encoded as required by
// RFC 8040.
func InterfaceRequests(m *ietf.Model, method string, opts ...Option) ([]*Request, error) {
	o := newOptions(opts)
	if err := check(m, method); err != nil {
		return nil, err
	}
	if m.Interfaces == nil {
		return nil, nil
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	parent := DataRoot + "/" + m.Interfaces.XPath()
	reqs := make([]*Request, 0, len(m.Interfaces.Interface))
	for _, intf := range m.Interfaces.Interface {
		// The body of a list entry resource is the list with a single entry.
		b, err := yang.Marshal(&ietf.Interfaces{Interface: []*ietf.Interface{intf}}, o.marshalOptions()...)
		if err != nil {
			return nil, err
		}
		path := parent
		if method != http.MethodPost {
			path += "/interface=" + url.PathEscape(intf.Key())
		}
		r := &Request{Method: method, Path: path, ContentType: MediaType, Body: b}
		o.logger.V(1).Info("Rendered request", "method", r.Method, "path", r.Path, "payload", string(b))
		reqs = append(reqs, r)
	}
	return reqs, nil
}

func check(m *ietf.Model, method string) error {
	if m == nil {
		return errors.New("payload: model must not be nil")
	}
	if m.InterfacesState != nil {
		return ErrReadOnly
	}
	switch method {
	case http.MethodPatch, http.MethodPut, http.MethodPost:
		return nil
	default:
		return fmt.Errorf("payload: unsupported method %q", method)
	}
}
