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

package builtins

import "plp.sh/plp"

// isList reports whether every argument is a List; false for zero
// arguments.
func isList(args []plp.Object) (plp.Object, error) {
	if len(args) == 0 {
		return plp.MakeBoolean(false), nil
	}
	for _, a := range args {
		if _, ok := plp.GetList(a); !ok {
			return plp.MakeBoolean(false), nil
		}
	}
	return plp.MakeBoolean(true), nil
}

// isEmpty reports whether a single sequence or HashMap argument has no
// elements; any other kind returns false rather than a type error.
func isEmpty(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("empty?", args, 1, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case plp.List:
		return plp.MakeBoolean(len(v) == 0), nil
	case plp.Vector:
		return plp.MakeBoolean(len(v) == 0), nil
	case *plp.HashMap:
		return plp.MakeBoolean(v.Len() == 0), nil
	default:
		return plp.MakeBoolean(false), nil
	}
}

func simplePredicate(name string, check func(plp.Object) bool) BuiltinFunc {
	return func(args []plp.Object) (plp.Object, error) {
		if err := CheckArgs(name, args, 1, 1); err != nil {
			return nil, err
		}
		return plp.MakeBoolean(check(args[0])), nil
	}
}

func isSymbol(obj plp.Object) bool  { _, ok := plp.GetSymbol(obj); return ok }
func isNilObj(obj plp.Object) bool  { return obj.IsNil() }
func isString(obj plp.Object) bool  { _, ok := plp.GetString(obj); return ok }
func isNumber(obj plp.Object) bool  { _, _, ok := numberValue(obj); return ok }
func isInt(obj plp.Object) bool     { _, ok := plp.GetInteger(obj); return ok }
func isFloat(obj plp.Object) bool   { _, ok := plp.GetFloat(obj); return ok }
func isFn(obj plp.Object) bool      { return plp.IsCallable(obj) }
func isHashMapObj(obj plp.Object) bool {
	_, ok := plp.GetHashMap(obj)
	return ok
}
func isSeq(obj plp.Object) bool {
	if _, ok := plp.GetList(obj); ok {
		return true
	}
	_, ok := plp.GetVector(obj)
	return ok
}

func isTrueObj(obj plp.Object) bool {
	b, ok := plp.GetBoolean(obj)
	return ok && bool(b)
}

func isFalseObj(obj plp.Object) bool {
	b, ok := plp.GetBoolean(obj)
	return ok && !bool(b)
}

func typeOf(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("type", args, 1, 1); err != nil {
		return nil, err
	}
	return plp.MakeString(plp.TypeName(args[0])), nil
}
