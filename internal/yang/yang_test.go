// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package yang

// Test fixtures shared by the tests of this package.

type testChoice interface {
	isTestChoice()
}

type caseA struct {
	A uint8 `yang:"test:a" validate:"max=32"`
}

func (caseA) isTestChoice() {}

type caseB struct {
	B string `yang:"test:b" validate:"netmask"`
}

func (caseB) isTestChoice() {}

type testRoot struct {
	Name    string       `yang:"test:name" validate:"required"`
	Enabled *bool        `yang:"test:enabled,default=true"`
	Mode    *string      `yang:"test:mode,default=auto" validate:"omitnil,oneof=auto manual"`
	Count   *uint16      `yang:"test:count" validate:"omitnil,min=68"`
	Big     *uint64      `yang:"test:big"`
	Index   int32        `yang:"test:index" validate:"min=1"`
	Refs    []string     `yang:"test:refs,default=[]"`
	Flag    *Empty       `yang:"test:flag"`
	Choice  testChoice   `yang:"other:choice"`
	Entries []*testEntry `yang:"test:entry,key=id" validate:"dive"`
	Child   *testChild   `yang:"other:child"`
}

type testEntry struct {
	ID    string  `yang:"test:id" validate:"required,ipv4-address"`
	Value *uint32 `yang:"test:value,default=1"`
}

type testChild struct {
	At *string `yang:"other:at" validate:"omitnil,date-and-time"`
}

func init() {
	RegisterChoice[testChoice](caseA{}, caseB{})
	RegisterStructValidation(ValidateKeys, testRoot{})
}
