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

// hashMapFn constructs a HashMap from alternating keys/values, the
// function form of the `{...}` reader syntax.
func hashMapFn(args []plp.Object) (plp.Object, error) {
	hm, err := plp.NewHashMap(args)
	if err != nil {
		return nil, err
	}
	return hm, nil
}

// assoc returns a new HashMap merging hm with the given key/value pairs;
// the map passed in is left unmodified.
func assoc(args []plp.Object) (plp.Object, error) {
	if len(args) == 0 {
		return nil, perr.ArgCount("'assoc' expects at least 1 argument (got 0)")
	}
	if len(args)%2 != 1 {
		return nil, perr.Syntaxf("'assoc' expects an even number of key/value arguments after the hashmap")
	}
	hm, err := GetHashMap("assoc", args, 0)
	if err != nil {
		return nil, err
	}
	out := hm.Clone()
	for i := 1; i+1 < len(args); i += 2 {
		if err := out.Update(args[i], args[i+1]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// dissoc returns a new HashMap with the given keys removed; missing keys
// are ignored.
func dissoc(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("dissoc", args, 1, -1); err != nil {
		return nil, err
	}
	hm, err := GetHashMap("dissoc", args, 0)
	if err != nil {
		return nil, err
	}
	out := hm.Clone()
	for _, key := range args[1:] {
		out.Remove(key)
	}
	return out, nil
}

func getFromHashMap(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("get", args, 2, 2); err != nil {
		return nil, err
	}
	hm, err := GetHashMap("get", args, 1)
	if err != nil {
		return nil, err
	}
	val, ok := hm.Get(args[0])
	if !ok {
		return plp.Nil(), nil
	}
	return val, nil
}

func containsKey(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("contains?", args, 2, 2); err != nil {
		return nil, err
	}
	hm, err := GetHashMap("contains?", args, 1)
	if err != nil {
		return nil, err
	}
	return plp.MakeBoolean(hm.Contains(args[0])), nil
}

func hashMapKeys(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("keys", args, 1, 1); err != nil {
		return nil, err
	}
	hm, err := GetHashMap("keys", args, 0)
	if err != nil {
		return nil, err
	}
	out := plp.List(hm.Keys())
	return out, nil
}

func hashMapVals(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("vals", args, 1, 1); err != nil {
		return nil, err
	}
	hm, err := GetHashMap("vals", args, 0)
	if err != nil {
		return nil, err
	}
	out := plp.List(hm.Vals())
	return out, nil
}
