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

import (
	"plp.sh/plp"
	"plp.sh/plp/perr"
)

// CheckArgs validates an argument count against an inclusive range,
// returning a *perr.Error (Kind ArgumentCount) on a mismatch.
func CheckArgs(name string, args []plp.Object, minArgs, maxArgs int) error {
	n := len(args)
	switch {
	case minArgs == maxArgs && n != minArgs:
		return perr.ArgCount("'%s' expects exactly %d argument(s) (got %d)", name, minArgs, n)
	case maxArgs < 0 && n < minArgs:
		return perr.ArgCount("'%s' expects at least %d argument(s) (got %d)", name, minArgs, n)
	case maxArgs >= 0 && (n < minArgs || n > maxArgs):
		return perr.ArgCount("'%s' expects between %d and %d argument(s) (got %d)", name, minArgs, maxArgs, n)
	}
	return nil
}

func getObject(args []plp.Object, pos int) (plp.Object, error) {
	if pos >= len(args) {
		return nil, perr.ArgCount("expected at least %d argument(s), got %d", pos+1, len(args))
	}
	return args[pos], nil
}

// GetString returns args[pos] as a plp.String.
func GetString(name string, args []plp.Object, pos int) (plp.String, error) {
	obj, err := getObject(args, pos)
	if err != nil {
		return plp.String{}, err
	}
	if s, ok := plp.GetString(obj); ok {
		return s, nil
	}
	return plp.String{}, perr.Typef("'%s' expects argument %d to be a String, got %s", name, pos+1, plp.TypeName(obj))
}

// GetInteger returns args[pos] as a plp.Integer.
func GetInteger(name string, args []plp.Object, pos int) (plp.Integer, error) {
	obj, err := getObject(args, pos)
	if err != nil {
		return 0, err
	}
	if i, ok := plp.GetInteger(obj); ok {
		return i, nil
	}
	return 0, perr.Typef("'%s' expects argument %d to be an Integer, got %s", name, pos+1, plp.TypeName(obj))
}

// GetSequence returns args[pos] as the underlying []plp.Object of a List
// or Vector.
func GetSequence(name string, args []plp.Object, pos int) ([]plp.Object, error) {
	obj, err := getObject(args, pos)
	if err != nil {
		return nil, err
	}
	if l, ok := plp.GetList(obj); ok {
		return []plp.Object(l), nil
	}
	if v, ok := plp.GetVector(obj); ok {
		return []plp.Object(v), nil
	}
	return nil, perr.Typef("'%s' expects argument %d to be a sequence, got %s", name, pos+1, plp.TypeName(obj))
}

// GetHashMap returns args[pos] as a *plp.HashMap.
func GetHashMap(name string, args []plp.Object, pos int) (*plp.HashMap, error) {
	obj, err := getObject(args, pos)
	if err != nil {
		return nil, err
	}
	if hm, ok := plp.GetHashMap(obj); ok {
		return hm, nil
	}
	return nil, perr.Typef("'%s' expects argument %d to be a HashMap, got %s", name, pos+1, plp.TypeName(obj))
}

// numberValue returns the argument's numeric value as a float64 plus
// whether it was an Integer (so callers can preserve Integer results).
func numberValue(obj plp.Object) (value float64, isInt bool, ok bool) {
	switch n := obj.(type) {
	case plp.Integer:
		return float64(n), true, true
	case plp.Float:
		return float64(n), false, true
	default:
		return 0, false, false
	}
}

// GetNumber returns args[pos]'s numeric value and whether it is an Integer.
func GetNumber(name string, args []plp.Object, pos int) (value float64, isInt bool, err error) {
	obj, err := getObject(args, pos)
	if err != nil {
		return 0, false, err
	}
	v, isInt, ok := numberValue(obj)
	if !ok {
		return 0, false, perr.Typef("'%s' expects argument %d to be a Number, got %s", name, pos+1, plp.TypeName(obj))
	}
	return v, isInt, nil
}

func allNumbers(args []plp.Object) bool {
	for _, a := range args {
		if _, _, ok := numberValue(a); !ok {
			return false
		}
	}
	return true
}

func allStrings(args []plp.Object) bool {
	for _, a := range args {
		if _, ok := plp.GetString(a); !ok {
			return false
		}
	}
	return true
}
