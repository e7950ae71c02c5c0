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
	"fmt"
	"strings"

	"plp.sh/plp"
	"plp.sh/plp/printer"
)

// prStr joins the readable rendering of its arguments with single spaces.
func prStr(args []plp.Object) (plp.Object, error) {
	return plp.MakeString(printer.FormatSequence(args, " ", true)), nil
}

// strFn joins the unreadable rendering of its arguments without a
// separator.
func strFn(args []plp.Object) (plp.Object, error) {
	return plp.MakeString(printer.FormatSequence(args, "", false)), nil
}

// makeOutputFns builds `prn` and `println`, both of which print to out and
// return Nil; prn prints readably, println unreadably.
func makeOutputFns(out outputWriter) (prn, println BuiltinFunc) {
	prn = func(args []plp.Object) (plp.Object, error) {
		fmt.Fprintln(out, printer.FormatSequence(args, " ", true))
		return plp.Nil(), nil
	}
	println = func(args []plp.Object) (plp.Object, error) {
		fmt.Fprintln(out, printer.FormatSequence(args, " ", false))
		return plp.Nil(), nil
	}
	return prn, println
}

// splitString splits s on sep into a List of Strings; an empty separator
// splits into single-character strings.
func splitString(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("split", args, 2, 2); err != nil {
		return nil, err
	}
	sep, err := GetString("split", args, 0)
	if err != nil {
		return nil, err
	}
	s, err := GetString("split", args, 1)
	if err != nil {
		return nil, err
	}
	var parts []string
	if sep.GetValue() == "" {
		for _, r := range s.GetValue() {
			parts = append(parts, string(r))
		}
	} else {
		parts = strings.Split(s.GetValue(), sep.GetValue())
	}
	out := make(plp.List, len(parts))
	for i, p := range parts {
		out[i] = plp.MakeString(p)
	}
	return out, nil
}

// joinSeq concatenates the unreadable rendering of a sequence's items with
// sep.
func joinSeq(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("join", args, 2, 2); err != nil {
		return nil, err
	}
	sep, err := GetString("join", args, 0)
	if err != nil {
		return nil, err
	}
	seq, err := GetSequence("join", args, 1)
	if err != nil {
		return nil, err
	}
	return plp.MakeString(printer.FormatSequence(seq, sep.GetValue(), false)), nil
}
