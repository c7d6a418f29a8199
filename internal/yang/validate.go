// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package yang

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Validation tags for the YANG string types, usable in "validate" struct tags
// next to the built-in tags of [validator.Validate].
const (
	TagDateAndTime = "date-and-time"
	TagIPv4Address = "ipv4-address"
	TagIPv6Address = "ipv6-address"
	TagNetmask     = "netmask"
	TagPhysAddress = "phys-address"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors with the YANG node names instead of the Go field names.
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		if node := nodeName(sf); node != "" {
			return node
		}
		return sf.Name
	})
	for tag, fn := range map[string]func(string) bool{
		TagDateAndTime: IsDateAndTime,
		TagIPv4Address: IsIPv4Address,
		TagIPv6Address: IsIPv6Address,
		TagNetmask:     IsNetmask,
		TagPhysAddress: IsPhysAddress,
	} {
		if err := v.RegisterValidation(tag, pattern(fn)); err != nil {
			panic(fmt.Sprintf("yang: failed to register validation %q: %v", tag, err))
		}
	}
	return v
}

func pattern(match func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return false
		}
		return match(f.String())
	}
}

// RegisterStructValidation registers a struct level validation function for
// the types of the given values. Only one function can be registered per
// type; use [ValidateKeys] from within fn to keep list key checks.
func RegisterStructValidation(fn validator.StructLevelFunc, types ...any) {
	validate.RegisterStructValidation(fn, types...)
}

// Validate checks v, a pointer to a struct, against its "validate" struct
// tags and the registered struct level validations. Violations are reported
// as a [ValidationError].
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("yang: failed to validate %T: %w", v, err)
	}
	errs := make(field.ErrorList, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, toFieldError(fe))
	}
	return newValidationError(errs)
}

func toFieldError(fe validator.FieldError) *field.Error {
	p := parsePath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return field.Required(p, fe.Param())
	case "oneof":
		return field.NotSupported(p, fe.Value(), strings.Fields(fe.Param()))
	case "min", "gte":
		return field.Invalid(p, fe.Value(), "must be greater than or equal to "+fe.Param())
	case "max", "lte":
		return field.Invalid(p, fe.Value(), "must be less than or equal to "+fe.Param())
	case "unique":
		return field.Duplicate(p, fe.Value())
	case TagDateAndTime, TagIPv4Address, TagIPv6Address, TagNetmask, TagPhysAddress:
		return field.Invalid(p, fe.Value(), "must be a valid "+fe.Tag())
	default:
		return field.Invalid(p, fe.Value(), fmt.Sprintf("failed on the %q constraint", fe.Tag()))
	}
}

// ValidateKeys checks all YANG lists of the current struct for missing
// entries and duplicate keys. The key leaf of a list is declared with the
// "key" option of its yang tag.
func ValidateKeys(sl validator.StructLevel) {
	cur := sl.Current()
	s, err := schemaFor(cur.Type())
	if err != nil {
		panic(err)
	}
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Key == "" {
			continue
		}
		list := cur.Field(f.Index)
		seen := make(map[any]struct{}, list.Len())
		for j := range list.Len() {
			entry := reflect.Indirect(list.Index(j))
			name := fmt.Sprintf("%s[%d]", f.Node, j)
			if !entry.IsValid() {
				sl.ReportError(nil, name, name, "required", "")
				continue
			}
			es, err := schemaFor(entry.Type())
			if err != nil {
				panic(err)
			}
			kf, ok := es.Lookup(f.Key)
			if !ok {
				panic(fmt.Sprintf("yang: key %q of list %s not found in %s", f.Key, f.Alias(), entry.Type()))
			}
			key := reflect.Indirect(entry.Field(kf.Index))
			if !key.IsValid() {
				continue
			}
			if _, dup := seen[key.Interface()]; dup {
				sl.ReportError(key.Interface(), name+"."+kf.Node, name+"."+kf.Name, "unique", "")
				continue
			}
			seen[key.Interface()] = struct{}{}
		}
	}
}
