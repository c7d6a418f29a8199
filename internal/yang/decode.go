// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package yang

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

var (
	choicesMu sync.RWMutex
	choices   = map[reflect.Type][]reflect.Type{}
)

// RegisterChoice registers the cases of a YANG choice. A choice is modelled
// as an interface type I implemented by one struct type per case. When
// decoding, a case is selected if the JSON object contains a member of that
// case and no member of any other case.
func RegisterChoice[I any](cases ...I) {
	it := reflect.TypeFor[I]()
	if it.Kind() != reflect.Interface {
		panic(fmt.Sprintf("yang: choice type %s is not an interface", it))
	}
	choicesMu.Lock()
	defer choicesMu.Unlock()
	for _, c := range cases {
		ct := reflect.TypeOf(c)
		if ct == nil || ct.Kind() != reflect.Struct {
			panic(fmt.Sprintf("yang: case %T of choice %s is not a struct", c, it))
		}
		choices[it] = append(choices[it], ct)
	}
}

func choiceCases(it reflect.Type) []reflect.Type {
	choicesMu.RLock()
	defer choicesMu.RUnlock()
	return choices[it]
}

// Unmarshal decodes the JSON document b into v, which must be a non-nil
// pointer to a struct with yang tags. Member names may be module-qualified
// ("ietf-ip:mtu") or bare ("mtu"). Integers are accepted as JSON numbers or
// as decimal strings.
//
// Structural problems such as unknown members, mismatching JSON types or
// integers out of range of their Go type are reported as a [ValidationError].
// Unmarshal does not run [Validate].
func Unmarshal(b []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("yang: failed to unmarshal into %T: not a non-nil pointer", v)
	}
	if rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("yang: failed to unmarshal into %T: not a struct", v)
	}
	if !gjson.ValidBytes(b) {
		return errors.New("yang: failed to unmarshal: malformed JSON document")
	}
	d := &decoder{}
	d.decodeStruct(nil, gjson.ParseBytes(b), rv.Elem())
	if d.err != nil {
		return d.err
	}
	return newValidationError(d.errs)
}

type decoder struct {
	errs field.ErrorList
	err  error
}

func (d *decoder) decodeStruct(path *field.Path, res gjson.Result, rv reflect.Value) {
	if !res.IsObject() {
		d.errs = append(d.errs, field.TypeInvalid(path, res.Raw, "must be an object"))
		return
	}
	s, err := schemaFor(rv.Type())
	if err != nil {
		d.err = err
		return
	}
	seen := make([]bool, len(s.Fields))
	res.ForEach(func(key, val gjson.Result) bool {
		name := key.String()
		i, ok := s.names[name]
		if !ok {
			d.errs = append(d.errs, field.Forbidden(path.Child(name), "unknown data node"))
			return true
		}
		f := &s.Fields[i]
		if seen[i] {
			d.errs = append(d.errs, field.Duplicate(path.Child(f.Node), name))
			return true
		}
		seen[i] = true
		d.decodeValue(path.Child(f.Node), val, rv.Field(f.Index))
		return d.err == nil
	})
	for i := range s.Fields {
		if !seen[i] && s.Fields[i].Mandatory() {
			d.errs = append(d.errs, field.Required(path.Child(s.Fields[i].Node), ""))
		}
	}
}

func (d *decoder) decodeValue(path *field.Path, res gjson.Result, v reflect.Value) {
	t := v.Type()
	if t == emptyType {
		if isEmptyValue(res) {
			return
		}
		d.errs = append(d.errs, field.TypeInvalid(path, res.Raw, "must be [null]"))
		return
	}
	switch t.Kind() {
	case reflect.Pointer:
		nv := reflect.New(t.Elem())
		n := len(d.errs)
		d.decodeValue(path, res, nv.Elem())
		if len(d.errs) == n {
			v.Set(nv)
		}
	case reflect.Interface:
		d.decodeChoice(path, res, v)
	case reflect.Struct:
		d.decodeStruct(path, res, v)
	case reflect.Slice:
		if !res.IsArray() {
			d.errs = append(d.errs, field.TypeInvalid(path, res.Raw, "must be an array"))
			return
		}
		elems := res.Array()
		sl := reflect.MakeSlice(t, len(elems), len(elems))
		for i, elem := range elems {
			d.decodeValue(path.Index(i), elem, sl.Index(i))
		}
		v.Set(sl)
	case reflect.String:
		if res.Type != gjson.String {
			d.errs = append(d.errs, field.TypeInvalid(path, res.Raw, "must be a string"))
			return
		}
		v.SetString(res.Str)
	case reflect.Bool:
		if res.Type != gjson.True && res.Type != gjson.False {
			d.errs = append(d.errs, field.TypeInvalid(path, res.Raw, "must be a boolean"))
			return
		}
		v.SetBool(res.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s, ok := integer(res)
		if !ok {
			d.errs = append(d.errs, field.TypeInvalid(path, res.Raw, "must be an integer"))
			return
		}
		n, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			d.errs = append(d.errs, field.Invalid(path, s, rangeDetail(t)))
			return
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s, ok := integer(res)
		if !ok {
			d.errs = append(d.errs, field.TypeInvalid(path, res.Raw, "must be an integer"))
			return
		}
		n, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			d.errs = append(d.errs, field.Invalid(path, s, rangeDetail(t)))
			return
		}
		v.SetUint(n)
	default:
		d.err = fmt.Errorf("yang: unsupported type %s at %s", t, path)
	}
}

func (d *decoder) decodeChoice(path *field.Path, res gjson.Result, v reflect.Value) {
	if !res.IsObject() {
		d.errs = append(d.errs, field.TypeInvalid(path, res.Raw, "must be an object"))
		return
	}
	cases := choiceCases(v.Type())
	if len(cases) == 0 {
		d.err = fmt.Errorf("yang: no cases registered for choice %s at %s", v.Type(), path)
		return
	}
	var (
		match reflect.Type
		n     int
		names []string
	)
	for _, ct := range cases {
		s, err := schemaFor(ct)
		if err != nil {
			d.err = err
			return
		}
		for _, f := range s.Fields {
			names = append(names, f.Node)
		}
		if hasMember(res, s) {
			match = ct
			n++
		}
	}
	if n != 1 {
		d.errs = append(d.errs, field.Invalid(path, res.Raw, "must contain exactly one of: "+strings.Join(names, ", ")))
		return
	}
	cv := reflect.New(match).Elem()
	d.decodeStruct(path, res, cv)
	v.Set(cv)
}

// hasMember reports whether the object res has a member of schema s.
func hasMember(res gjson.Result, s *Schema) bool {
	found := false
	res.ForEach(func(key, _ gjson.Result) bool {
		_, found = s.Lookup(key.String())
		return !found
	})
	return found
}

// isEmptyValue reports whether res encodes a value of the YANG "empty" type.
// RFC 7951 specifies [null]; an empty object is accepted as well.
func isEmptyValue(res gjson.Result) bool {
	if res.IsArray() {
		elems := res.Array()
		return len(elems) == 1 && elems[0].Type == gjson.Null
	}
	return res.IsObject() && len(res.Map()) == 0
}

// integer returns the decimal representation of an integer encoded either
// as a JSON number or as a JSON string.
func integer(res gjson.Result) (string, bool) {
	switch res.Type {
	case gjson.Number:
		return res.Raw, true
	case gjson.String:
		return res.Str, true
	default:
		return "", false
	}
}

func rangeDetail(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("must be an integer between 0 and %d", uint64(1)<<t.Bits()-1)
	default:
		limit := int64(1) << (t.Bits() - 1)
		return fmt.Sprintf("must be an integer between %d and %d", -limit, limit-1)
	}
}
