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

func toList(args []plp.Object) (plp.Object, error) {
	out := make(plp.List, len(args))
	copy(out, args)
	return out, nil
}

func toVector(args []plp.Object) (plp.Object, error) {
	out := make(plp.Vector, len(args))
	copy(out, args)
	return out, nil
}

// count returns the length of a List or Vector, and 0 for anything else.
func count(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("count", args, 1, 1); err != nil {
		return nil, err
	}
	if seq, err := GetSequence("count", args, 0); err == nil {
		return plp.Integer(len(seq)), nil
	}
	return plp.Integer(0), nil
}

func first(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("first", args, 1, 1); err != nil {
		return nil, err
	}
	seq, err := GetSequence("first", args, 0)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return plp.Nil(), nil
	}
	return seq[0], nil
}

func last(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("last", args, 1, 1); err != nil {
		return nil, err
	}
	seq, err := GetSequence("last", args, 0)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return plp.Nil(), nil
	}
	return seq[len(seq)-1], nil
}

// nth implements (Integer, Sequence) indexing with negative indices
// counting from the end.
func nth(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("nth", args, 2, 2); err != nil {
		return nil, err
	}
	idx, err := GetInteger("nth", args, 0)
	if err != nil {
		return nil, err
	}
	seq, err := GetSequence("nth", args, 1)
	if err != nil {
		return nil, err
	}
	n := plp.Integer(len(seq))
	if idx >= n || n+idx < 0 {
		return nil, perr.New("can't access sequence at position %d (out of bounds)", idx)
	}
	if idx >= 0 {
		return seq[idx], nil
	}
	return seq[n+idx], nil
}

func prepend(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("prepend", args, 2, 2); err != nil {
		return nil, err
	}
	seq, err := GetSequence("prepend", args, 1)
	if err != nil {
		return nil, err
	}
	out := make(plp.List, 0, len(seq)+1)
	out = append(out, args[0])
	out = append(out, seq...)
	return out, nil
}

func appendFn(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("append", args, 2, 2); err != nil {
		return nil, err
	}
	seq, err := GetSequence("append", args, 1)
	if err != nil {
		return nil, err
	}
	out := make(plp.List, 0, len(seq)+1)
	out = append(out, seq...)
	out = append(out, args[0])
	return out, nil
}

func concat(args []plp.Object) (plp.Object, error) {
	out := plp.List{}
	for i := range args {
		seq, err := GetSequence("concat", args, i)
		if err != nil {
			return nil, err
		}
		out = append(out, seq...)
	}
	return out, nil
}

func vec(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("vec", args, 1, 1); err != nil {
		return nil, err
	}
	seq, err := GetSequence("vec", args, 0)
	if err != nil {
		return nil, err
	}
	out := make(plp.Vector, len(seq))
	copy(out, seq)
	return out, nil
}

// take returns the first N items (clamped to sequence bounds) as a List,
// matching Python slice semantics for out-of-range and negative N.
func take(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("take", args, 2, 2); err != nil {
		return nil, err
	}
	n, err := GetInteger("take", args, 0)
	if err != nil {
		return nil, err
	}
	seq, err := GetSequence("take", args, 1)
	if err != nil {
		return nil, err
	}
	end := pySliceIndex(n, len(seq))
	out := make(plp.List, end)
	copy(out, seq[:end])
	return out, nil
}

// pySliceIndex clamps a Python-style slice endpoint (possibly negative,
// possibly past the end) into [0, n].
func pySliceIndex(idx plp.Integer, n int) int {
	i := int(idx)
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	return i
}

// splice returns the items in [s, e) as a List, where a non-positive e
// counts back from the end. A resolved end equal to the sequence length
// is rejected along with the other out-of-bounds shapes, so there is no
// "slice to end" form.
func splice(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("splice", args, 3, 3); err != nil {
		return nil, err
	}
	s, err := GetInteger("splice", args, 0)
	if err != nil {
		return nil, err
	}
	e, err := GetInteger("splice", args, 1)
	if err != nil {
		return nil, err
	}
	seq, err := GetSequence("splice", args, 2)
	if err != nil {
		return nil, err
	}
	n := plp.Integer(len(seq))
	endResolved := e
	if e <= 0 {
		endResolved = n + e
	}
	if s > endResolved || s < 0 || (endResolved >= n && endResolved != 0) {
		return nil, perr.Syntaxf("can't splice given sequence (out of bounds)")
	}
	out := make(plp.List, endResolved-s)
	copy(out, seq[s:endResolved])
	return out, nil
}
