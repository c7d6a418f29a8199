// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package ietf

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

type TestCase struct {
	name string
	val  *Model
	opts []MarshalOption
}

var tests []TestCase

func Register(name string, val *Model, opts ...MarshalOption) {
	tests = append(tests, TestCase{
		name: name,
		val:  val,
		opts: opts,
	})
}

func Test_Payload(t *testing.T) {
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := Marshal(test.val, test.opts...)
			if err != nil {
				t.Errorf("Marshal() error = %v", err)
				return
			}

			file := "testdata/" + test.name + ".json"
			data, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("os.ReadFile(%q) error = %v", file, err)
			}

			var buf bytes.Buffer
			if err := json.Compact(&buf, data); err != nil {
				t.Errorf("json.Compact() error = %v", err)
				return
			}

			if want := buf.Bytes(); !bytes.Equal(want, b) {
				t.Errorf("payload mismatch:\nwant: %s\ngot:  %s", want, b)
			}

			m, err := Unmarshal(buf.Bytes())
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			again, err := Marshal(m, test.opts...)
			if err != nil {
				t.Fatalf("Marshal() after Unmarshal() error = %v", err)
			}
			if !bytes.Equal(again, b) {
				t.Errorf("round trip mismatch:\nwant: %s\ngot:  %s", b, again)
			}
		})
	}
}
