//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of plp.
//
// plp is licensed under the latest version of the EUPL // (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2024-present Detlef Stern
//-----------------------------------------------------------------------------

// Package plp provides the runtime value model and lexical environment for
// the PLP interpreter: a tagged universe of atoms and compound structures,
// plus the environment chain that binds symbols to values.
package plp

import (
	"fmt"
	"io"
)

// Object is the value all PLP forms evaluate to. Every concrete kind in the
// tagged universe (Integer, Float, Boolean, String, Symbol, Keyword, Nil,
// List, Vector, HashMap, Closure, Builtin) implements it.
type Object interface {
	fmt.Stringer

	// IsNil reports whether the concrete object is the Nil value.
	IsNil() bool

	// IsTrue reports whether the object counts as truthy: everything except
	// Nil and Boolean(false).
	IsTrue() bool

	// IsEqual compares two objects for structural equality.
	IsEqual(Object) bool

	// Print writes the readable representation to w.
	Print(w io.Writer) (int, error)
}

// TypeName returns the tag name used by the `type` builtin and by
// diagnostics, e.g. "Integer", "List", "Lambda" (for a Closure).
func TypeName(obj Object) string {
	switch obj.(type) {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case Boolean:
		return "Boolean"
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	case Keyword:
		return "Keyword"
	case NilValue:
		return "Nil"
	case List:
		return "List"
	case Vector:
		return "Vector"
	case *HashMap:
		return "HashMap"
	case *Closure:
		return "Lambda"
	case *Builtin:
		return "Builtin"
	default:
		return fmt.Sprintf("%T", obj)
	}
}

// IsTruthy reports whether obj is truthy. Only Nil and Boolean(false) are
// falsy; zero, the empty string, and empty collections are all truthy.
func IsTruthy(obj Object) bool {
	if obj == nil {
		return false
	}
	return obj.IsTrue()
}
