// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package yang

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSchemaOf(t *testing.T) {
	s, err := SchemaOf(&testRoot{})
	if err != nil {
		t.Fatalf("SchemaOf() error = %v", err)
	}

	var aliases []string
	for _, f := range s.Fields {
		aliases = append(aliases, f.Alias())
	}
	want := []string{
		"test:name",
		"test:enabled",
		"test:mode",
		"test:count",
		"test:big",
		"test:index",
		"test:refs",
		"test:flag",
		"other:choice",
		"test:entry",
		"other:child",
	}
	if diff := cmp.Diff(want, aliases); diff != "" {
		t.Errorf("SchemaOf() aliases mismatch (-want +got):\n%s", diff)
	}

	f, ok := s.Lookup("enabled")
	if !ok {
		t.Fatal("Lookup(enabled) not found")
	}
	if def, ok := f.Default(); !ok || !def.Bool() {
		t.Errorf("Default() = %v, %v, want true", def, ok)
	}
	if f.Mandatory() {
		t.Error("Mandatory() = true for optional leaf")
	}

	if _, ok := s.Lookup("other:choice"); !ok {
		t.Error("Lookup(other:choice) not found")
	}
	if _, ok := s.Lookup("test:choice"); ok {
		t.Error("Lookup(test:choice) found node of another module")
	}

	f, _ = s.Node("Refs")
	if !f.HasDefault() {
		t.Error("HasDefault() = false for leaf-list with default")
	}
	if _, ok := f.Default(); ok {
		t.Error("Default() ok for leaf-list")
	}

	f, _ = s.Node("Index")
	if !f.Mandatory() {
		t.Error("Mandatory() = false for non-pointer leaf")
	}
	f, _ = s.Node("Entries")
	if f.Key != "id" {
		t.Errorf("Key = %q, want %q", f.Key, "id")
	}

	again, err := SchemaOf(reflect.TypeFor[testRoot]())
	if err != nil {
		t.Fatalf("SchemaOf() error = %v", err)
	}
	if again != s {
		t.Error("SchemaOf() did not return the cached schema")
	}
}

func TestSchemaOf_Invalid(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{
			name: "Nil",
			v:    nil,
		},
		{
			name: "Not a struct",
			v:    42,
		},
		{
			name: "Missing tag",
			v: struct {
				Name string
			}{},
		},
		{
			name: "Unqualified",
			v: struct {
				Name string `yang:"name"`
			}{},
		},
		{
			name: "Bad default",
			v: struct {
				MTU *uint16 `yang:"test:mtu,default=70000"`
			}{},
		},
		{
			name: "Bad leaf-list default",
			v: struct {
				Refs []string `yang:"test:refs,default=eth0"`
			}{},
		},
		{
			name: "Key on leaf",
			v: struct {
				Name string `yang:"test:name,key=name"`
			}{},
		},
		{
			name: "Unknown option",
			v: struct {
				Name string `yang:"test:name,config=false"`
			}{},
		},
		{
			name: "Duplicate node",
			v: struct {
				A string `yang:"test:name"`
				B string `yang:"test:name"`
			}{},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := SchemaOf(test.v); err == nil {
				t.Error("SchemaOf() expected error, got nil")
			}
		})
	}
}
