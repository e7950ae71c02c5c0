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

// equals implements `=`: structural equality, delegated entirely to
// Object.IsEqual.
func equals(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("=", args, 2, 2); err != nil {
		return nil, err
	}
	return plp.MakeBoolean(args[0].IsEqual(args[1])), nil
}

func lessThan(args []plp.Object) (plp.Object, error) {
	return compareNumbers("<", args, func(a, b float64) bool { return a < b })
}

func lessOrEqual(args []plp.Object) (plp.Object, error) {
	return compareNumbers("<=", args, func(a, b float64) bool { return a <= b })
}

func greaterThan(args []plp.Object) (plp.Object, error) {
	return compareNumbers(">", args, func(a, b float64) bool { return a > b })
}

func greaterOrEqual(args []plp.Object) (plp.Object, error) {
	return compareNumbers(">=", args, func(a, b float64) bool { return a >= b })
}

func compareNumbers(name string, args []plp.Object, cmp func(a, b float64) bool) (plp.Object, error) {
	if err := CheckArgs(name, args, 2, 2); err != nil {
		return nil, err
	}
	a, _, err := GetNumber(name, args, 0)
	if err != nil {
		return nil, err
	}
	b, _, err := GetNumber(name, args, 1)
	if err != nil {
		return nil, err
	}
	return plp.MakeBoolean(cmp(a, b)), nil
}
