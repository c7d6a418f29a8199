// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package yang provides the generic machinery to validate, encode and decode
// Go structs that mirror YANG data nodes.
//
// Each exported struct field carries a "yang" tag naming the module-qualified
// data node it represents, optionally followed by comma-separated options:
//
//	Enabled *bool    `yang:"ietf-interfaces:enabled,default=true"`
//	Address []*Addr  `yang:"ietf-ip:address,key=ip"`
//
// The tags of a struct type form its schema: the ordered list of member
// names used on the wire, the defaults that may be omitted in compact
// encodings and the keys of YANG lists.
package yang

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// Field describes a single struct field mapped to a YANG data node.
type Field struct {
	// Index is the index of the field in its struct.
	Index int
	// Name is the Go name of the field.
	Name string
	// Module is the name of the YANG module defining the data node.
	Module string
	// Node is the local name of the data node.
	Node string
	// Key is the name of the key leaf, if the field is a YANG list.
	Key string
	// Type is the Go type of the field.
	Type reflect.Type

	// def holds the parsed default literal, if any.
	def reflect.Value
	// emptyDefault is set for leaf-lists declared with "default=[]".
	emptyDefault bool
}

// Alias returns the module-qualified member name of the field, e.g. "ietf-ip:mtu".
func (f *Field) Alias() string {
	return f.Module + ":" + f.Node
}

// HasDefault reports whether the field declares a default value.
func (f *Field) HasDefault() bool {
	return f.def.IsValid() || f.emptyDefault
}

// Default returns the default value of the field. For pointer fields the
// returned value has the pointed-to type. The second return value is false
// if the field has no scalar default.
func (f *Field) Default() (reflect.Value, bool) {
	return f.def, f.def.IsValid()
}

// Mandatory reports whether the field must be present in a decoded document.
// This is true for all scalar fields that are not pointers.
func (f *Field) Mandatory() bool {
	switch f.Type.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Interface:
		return false
	}
	return f.Type != emptyType
}

// Schema is the ordered list of YANG data nodes of a struct type.
type Schema struct {
	Type   reflect.Type
	Fields []Field

	names map[string]int
}

// Lookup returns the field with the given member name. The name may be
// either module-qualified or the bare node name.
func (s *Schema) Lookup(name string) (*Field, bool) {
	i, ok := s.names[name]
	if !ok {
		return nil, false
	}
	return &s.Fields[i], true
}

// Node returns the field with the given Go field name.
func (s *Schema) Node(goName string) (*Field, bool) {
	for i := range s.Fields {
		if s.Fields[i].Name == goName {
			return &s.Fields[i], true
		}
	}
	return nil, false
}

var schemas sync.Map // map[reflect.Type]*Schema

// SchemaOf returns the schema of the struct type of v. The value may be a
// struct, a pointer to a struct or a [reflect.Type] of either.
func SchemaOf(v any) (*Schema, error) {
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	if t == nil {
		return nil, errors.New("yang: schema of nil value")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return schemaFor(t)
}

func schemaFor(t reflect.Type) (*Schema, error) {
	if s, ok := schemas.Load(t); ok {
		return s.(*Schema), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("yang: %s is not a struct", t)
	}
	s := &Schema{Type: t, names: make(map[string]int)}
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, ok := sf.Tag.Lookup("yang")
		if !ok || tag == "" {
			return nil, fmt.Errorf("yang: field %s.%s has no yang tag", t.Name(), sf.Name)
		}
		f, err := parseField(sf, tag)
		if err != nil {
			return nil, fmt.Errorf("yang: field %s.%s: %w", t.Name(), sf.Name, err)
		}
		f.Index = i
		if _, dup := s.names[f.Alias()]; dup {
			return nil, fmt.Errorf("yang: field %s.%s: duplicate node %q", t.Name(), sf.Name, f.Alias())
		}
		s.names[f.Alias()] = len(s.Fields)
		s.names[f.Node] = len(s.Fields)
		s.Fields = append(s.Fields, f)
	}
	actual, _ := schemas.LoadOrStore(t, s)
	return actual.(*Schema), nil
}

func parseField(sf reflect.StructField, tag string) (Field, error) {
	name, opts, _ := strings.Cut(tag, ",")
	module, node, ok := strings.Cut(name, ":")
	if !ok || module == "" || node == "" {
		return Field{}, fmt.Errorf("node name %q is not module-qualified", name)
	}
	f := Field{Name: sf.Name, Module: module, Node: node, Type: sf.Type}
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "" {
			continue
		}
		k, v, _ := strings.Cut(opt, "=")
		switch k {
		case "default":
			if err := f.parseDefault(v); err != nil {
				return Field{}, err
			}
		case "key":
			if sf.Type.Kind() != reflect.Slice {
				return Field{}, errors.New("key option on a non-list node")
			}
			f.Key = v
		default:
			return Field{}, fmt.Errorf("unknown tag option %q", k)
		}
	}
	return f, nil
}

func (f *Field) parseDefault(lit string) error {
	t := f.Type
	if t.Kind() == reflect.Slice {
		if lit != "[]" {
			return fmt.Errorf("invalid default %q for leaf-list", lit)
		}
		f.emptyDefault = true
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		v.SetString(lit)
	case reflect.Bool:
		b, err := strconv.ParseBool(lit)
		if err != nil {
			return fmt.Errorf("invalid default %q: %w", lit, err)
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(lit, 10, t.Bits())
		if err != nil {
			return fmt.Errorf("invalid default %q: %w", lit, err)
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(lit, 10, t.Bits())
		if err != nil {
			return fmt.Errorf("invalid default %q: %w", lit, err)
		}
		v.SetUint(n)
	default:
		return fmt.Errorf("default not supported for %s", t)
	}
	f.def = v
	return nil
}

// nodeName returns the local YANG node name of a struct field, or the empty
// string if the field has no yang tag.
func nodeName(sf reflect.StructField) string {
	tag := sf.Tag.Get("yang")
	name, _, _ := strings.Cut(tag, ",")
	_, node, _ := strings.Cut(name, ":")
	return node
}
