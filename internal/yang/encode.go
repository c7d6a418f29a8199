// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package yang

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"

	"github.com/go-logr/logr"
)

// MarshalOption configures [Marshal].
type MarshalOption func(*encoder)

// Compact omits all leafs that are equal to their schema default, whether
// they were set explicitly or not. Without this option, unset leafs that
// have a default are emitted with their default value.
func Compact() MarshalOption {
	return func(e *encoder) {
		e.compact = true
	}
}

// WithIndent formats the output like [json.MarshalIndent].
func WithIndent(prefix, indent string) MarshalOption {
	return func(e *encoder) {
		e.prefix = prefix
		e.indent = indent
	}
}

// WithLogger sets the logger used by [Marshal].
func WithLogger(logger logr.Logger) MarshalOption {
	return func(e *encoder) {
		e.logger = logger
	}
}

type encoder struct {
	compact bool
	prefix  string
	indent  string
	logger  logr.Logger
	buf     bytes.Buffer
}

// Marshal encodes v, a pointer to a struct with yang tags, as JSON. Members
// are emitted in declaration order using their module-qualified names.
// Absent optional nodes are omitted; null is never emitted.
//
// Marshal does not validate v, see [Validate].
func Marshal(v any, opts ...MarshalOption) ([]byte, error) {
	e := &encoder{logger: logr.FromSlogHandler(slog.Default().Handler())}
	for _, opt := range opts {
		opt(e)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, errors.New("yang: failed to marshal nil value")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("yang: failed to marshal %T: not a struct", v)
	}
	if err := e.encodeStruct(rv); err != nil {
		return nil, err
	}
	b := e.buf.Bytes()
	if e.prefix != "" || e.indent != "" {
		var out bytes.Buffer
		if err := json.Indent(&out, b, e.prefix, e.indent); err != nil {
			return nil, fmt.Errorf("yang: failed to indent payload: %w", err)
		}
		b = out.Bytes()
	}
	e.logger.V(1).Info("Encoded payload", "type", rv.Type().String(), "compact", e.compact, "size", len(b))
	return b, nil
}

func (e *encoder) encodeStruct(rv reflect.Value) error {
	s, err := schemaFor(rv.Type())
	if err != nil {
		return err
	}
	e.buf.WriteByte('{')
	first := true
	for i := range s.Fields {
		f := &s.Fields[i]
		fv, ok := e.value(f, rv.Field(f.Index))
		if !ok {
			continue
		}
		if !first {
			e.buf.WriteByte(',')
		}
		first = false
		e.writeString(f.Alias())
		e.buf.WriteByte(':')
		if err := e.encodeValue(fv); err != nil {
			return err
		}
	}
	e.buf.WriteByte('}')
	return nil
}

// value resolves the value to emit for field f. It returns false if the
// member has to be omitted.
func (e *encoder) value(f *Field, fv reflect.Value) (reflect.Value, bool) {
	switch fv.Kind() {
	case reflect.Pointer:
		if fv.IsNil() {
			if def, ok := f.Default(); ok && !e.compact {
				return def, true
			}
			return reflect.Value{}, false
		}
		if def, ok := f.Default(); ok && e.compact && fv.Elem().Equal(def) {
			return reflect.Value{}, false
		}
		return fv.Elem(), true
	case reflect.Interface:
		if fv.IsNil() {
			return reflect.Value{}, false
		}
		return fv.Elem(), true
	case reflect.Slice:
		if fv.Len() == 0 {
			return fv, f.emptyDefault && !e.compact
		}
		return fv, true
	default:
		return fv, true
	}
}

func (e *encoder) encodeValue(v reflect.Value) error {
	if v.Type() == emptyType {
		e.buf.WriteString("[null]")
		return nil
	}
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return fmt.Errorf("yang: failed to marshal nil %s", v.Type())
		}
		return e.encodeValue(v.Elem())
	case reflect.Struct:
		return e.encodeStruct(v)
	case reflect.Slice:
		e.buf.WriteByte('[')
		for i := range v.Len() {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if err := e.encodeValue(v.Index(i)); err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')
	case reflect.String:
		e.writeString(v.String())
	case reflect.Bool:
		e.buf.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		e.buf.WriteString(strconv.FormatUint(v.Uint(), 10))
	default:
		panic(fmt.Sprintf("yang: unsupported type %s", v.Type()))
	}
	return nil
}

func (e *encoder) writeString(s string) {
	enc := json.NewEncoder(&e.buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	// Encode terminates each value with a newline.
	e.buf.Truncate(e.buf.Len() - 1)
}
