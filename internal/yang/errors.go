// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package yang

import (
	"errors"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ErrInvalid is matched by every [ValidationError] through [errors.Is].
var ErrInvalid = errors.New("yang: invalid data")

// ValidationError is returned when a value does not satisfy the constraints
// of its YANG schema. Each entry of Errors carries the path of the offending
// data node (e.g. "interfaces.interface[0].if-index") and the violated
// constraint.
type ValidationError struct {
	Errors field.ErrorList
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return ErrInvalid.Error()
	}
	return "yang: validation failed: " + e.Errors.ToAggregate().Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Paths returns the field paths of all errors, in order.
func (e *ValidationError) Paths() []string {
	paths := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		paths = append(paths, err.Field)
	}
	return paths
}

// newValidationError returns nil if errs is empty.
func newValidationError(errs field.ErrorList) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}

// parsePath converts a validator namespace into a field path. The first
// element of the namespace is the name of the validated struct type and
// is dropped, e.g. "Model.interfaces.interface[0].name" becomes
// "interfaces.interface[0].name".
func parsePath(ns string) *field.Path {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return field.NewPath(ns)
	}
	var p *field.Path
	for elem := range strings.SplitSeq(rest, ".") {
		name, idx, _ := strings.Cut(elem, "[")
		if name != "" {
			p = p.Child(name)
		}
		for idx != "" {
			var i string
			i, idx, _ = strings.Cut(idx, "]")
			idx = strings.TrimPrefix(idx, "[")
			if n, err := strconv.Atoi(i); err == nil {
				p = p.Index(n)
			} else {
				p = p.Key(i)
			}
		}
	}
	return p
}
