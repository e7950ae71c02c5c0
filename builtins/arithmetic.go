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

// sumNumbers combines args as Numbers, yielding Integer only when every
// argument was an Integer.
func sumNumbers(args []plp.Object) plp.Object {
	total := 0.0
	allInt := true
	for _, a := range args {
		v, isInt, _ := numberValue(a)
		total += v
		allInt = allInt && isInt
	}
	if allInt {
		return plp.Integer(total)
	}
	return plp.Float(total)
}

func concatStrings(args []plp.Object) plp.Object {
	var sb []byte
	for _, a := range args {
		s, _ := plp.GetString(a)
		sb = append(sb, s.GetValue()...)
	}
	return plp.MakeString(string(sb))
}

// plus implements `+`: sums Numbers (Integer result only when
// every argument is an Integer) or concatenates Strings; mixed kinds fail.
func plus(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("+", args, 1, -1); err != nil {
		return nil, err
	}
	if allNumbers(args) {
		return sumNumbers(args), nil
	}
	if allStrings(args) {
		return concatStrings(args), nil
	}
	return nil, perr.Typef("can't perform operation '+' on different types")
}

// minus implements `-`: exactly two Numbers, Integer result only when both
// arguments are Integer.
func minus(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("-", args, 2, 2); err != nil {
		return nil, err
	}
	a, aInt, err := GetNumber("-", args, 0)
	if err != nil {
		return nil, err
	}
	b, bInt, err := GetNumber("-", args, 1)
	if err != nil {
		return nil, err
	}
	if aInt && bInt {
		return plp.Integer(a - b), nil
	}
	return plp.Float(a - b), nil
}

// times implements `*`: the product of any number of Numbers, or a String
// repeated N times when given exactly (Integer, String).
func times(args []plp.Object) (plp.Object, error) {
	if len(args) == 2 {
		if n, ok := plp.GetInteger(args[0]); ok {
			if s, ok := plp.GetString(args[1]); ok {
				return repeatString(n, s), nil
			}
		}
	}
	if allNumbers(args) {
		return productNumbers(args), nil
	}
	return nil, perr.Typef("can't perform operation '*' on different types")
}

func repeatString(n plp.Integer, s plp.String) plp.Object {
	if n <= 0 {
		return plp.MakeString("")
	}
	out := make([]byte, 0, int(n)*len(s.GetValue()))
	for i := plp.Integer(0); i < n; i++ {
		out = append(out, s.GetValue()...)
	}
	return plp.MakeString(string(out))
}

func productNumbers(args []plp.Object) plp.Object {
	total := 1.0
	allInt := true
	for _, a := range args {
		v, isInt, _ := numberValue(a)
		total *= v
		allInt = allInt && isInt
	}
	if allInt {
		return plp.Integer(total)
	}
	return plp.Float(total)
}

// divide implements `/`: exactly two Numbers, always a Float, fails on a
// zero divisor.
func divide(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("/", args, 2, 2); err != nil {
		return nil, err
	}
	a, _, err := GetNumber("/", args, 0)
	if err != nil {
		return nil, err
	}
	b, _, err := GetNumber("/", args, 1)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, perr.Mathf("you sadly can't divide by zero")
	}
	return plp.Float(a / b), nil
}

// modulo implements `%`: two Integers, with the remainder taking the
// divisor's sign. Go's `%` follows the dividend's sign, so a nonzero
// remainder whose sign differs from the divisor's is shifted by the
// divisor.
func modulo(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("%", args, 2, 2); err != nil {
		return nil, err
	}
	a, err := GetInteger("%", args, 0)
	if err != nil {
		return nil, err
	}
	b, err := GetInteger("%", args, 1)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, perr.Mathf("you sadly can't divide by zero")
	}
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r, nil
}
