// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package payload renders an [ietf.Model] into transport-ready payloads:
// RESTCONF requests (RFC 8040) and gNMI SetRequest messages. It never
// contacts a device.
package payload

import (
	"log/slog"

	"github.com/go-logr/logr"
	gpb "github.com/openconfig/gnmi/proto/gnmi"

	"github.com/ironcore-dev/ietf-interfaces/api/ietf"
)

// Option configures the rendering of payloads.
type Option func(*options)

type options struct {
	logger   logr.Logger
	compact  bool
	replace  bool
	encoding gpb.Encoding
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:   logr.FromSlogHandler(slog.Default().Handler()),
		compact:  true,
		encoding: gpb.Encoding_JSON_IETF,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) marshalOptions() []ietf.MarshalOption {
	opts := []ietf.MarshalOption{ietf.WithLogger(o.logger)}
	if o.compact {
		opts = append(opts, ietf.Compact())
	}
	return opts
}

// WithLogger sets a custom logger.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCompact controls whether leafs equal to their default are omitted
// from the payload. Payloads are compact by default.
func WithCompact(compact bool) Option {
	return func(o *options) {
		o.compact = compact
	}
}

// WithReplace makes [SetRequest] replace each interface instead of merging
// the payload into the existing configuration.
func WithReplace() Option {
	return func(o *options) {
		o.replace = true
	}
}

// WithEncoding sets the encoding of gNMI values. Only [gpb.Encoding_JSON]
// and [gpb.Encoding_JSON_IETF] are supported. Defaults to JSON_IETF.
func WithEncoding(encoding gpb.Encoding) Option {
	return func(o *options) {
		o.encoding = encoding
	}
}
