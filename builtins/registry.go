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

// Package builtins installs the fixed mapping of names to host-implemented
// operations into a root plp.Environment, then augments it by evaluating
// the bootstrap prelude. Builtins are grouped one file per concern:
// arithmetic, comparison, sequence, hashmap, strings, predicates, misc.
package builtins

import (
	_ "embed"
	"io"
	"strings"

	"plp.sh/plp"
	"plp.sh/plp/eval"
	"plp.sh/plp/reader"
)

// BuiltinFunc is a convenience alias for the evaluated-argument host
// function signature every registered name implements.
type BuiltinFunc = plp.BuiltinFn

type outputWriter = io.Writer

//go:embed prelude.plp
var preludeSource string

type entry struct {
	name     string
	minArity int
	maxArity int
	fn       BuiltinFunc
}

func fixedArity(name string, n int, fn BuiltinFunc) entry {
	return entry{name: name, minArity: n, maxArity: n, fn: fn}
}

func variadic(name string, min int, fn BuiltinFunc) entry {
	return entry{name: name, minArity: min, maxArity: -1, fn: fn}
}

// entries lists every builtin with its arity and implementation. Arity
// bounds not already baked into an individual function's own CheckArgs
// call are double-checked here before the function ever runs.
func entries(out outputWriter, rootEnv *plp.Environment) []entry {
	prn, printlnFn := makeOutputFns(out)
	return []entry{
		variadic("+", 1, plus),
		fixedArity("-", 2, minus),
		variadic("*", 0, times),
		fixedArity("/", 2, divide),
		fixedArity("%", 2, modulo),
		fixedArity("=", 2, equals),
		fixedArity("<", 2, lessThan),
		fixedArity("<=", 2, lessOrEqual),
		fixedArity(">", 2, greaterThan),
		fixedArity(">=", 2, greaterOrEqual),

		variadic("list", 0, toList),
		variadic("vector", 0, toVector),
		fixedArity("count", 1, count),
		fixedArity("first", 1, first),
		fixedArity("last", 1, last),
		fixedArity("nth", 2, nth),
		fixedArity("prepend", 2, prepend),
		fixedArity("append", 2, appendFn),
		variadic("concat", 0, concat),
		fixedArity("vec", 1, vec),
		fixedArity("take", 2, take),
		fixedArity("splice", 3, splice),

		variadic("pr-str", 0, prStr),
		variadic("str", 0, strFn),
		variadic("prn", 0, prn),
		variadic("println", 0, printlnFn),
		fixedArity("split", 2, splitString),
		fixedArity("join", 2, joinSeq),

		variadic("hash-map", 0, hashMapFn),
		variadic("assoc", 1, assoc),
		variadic("dissoc", 1, dissoc),
		fixedArity("get", 2, getFromHashMap),
		fixedArity("contains?", 2, containsKey),
		fixedArity("keys", 1, hashMapKeys),
		fixedArity("vals", 1, hashMapVals),

		variadic("list?", 0, isList),
		fixedArity("empty?", 1, isEmpty),
		fixedArity("symbol?", 1, simplePredicate("symbol?", isSymbol)),
		fixedArity("nil?", 1, simplePredicate("nil?", isNilObj)),
		fixedArity("string?", 1, simplePredicate("string?", isString)),
		fixedArity("number?", 1, simplePredicate("number?", isNumber)),
		fixedArity("int?", 1, simplePredicate("int?", isInt)),
		fixedArity("float?", 1, simplePredicate("float?", isFloat)),
		fixedArity("true?", 1, simplePredicate("true?", isTrueObj)),
		fixedArity("false?", 1, simplePredicate("false?", isFalseObj)),
		fixedArity("fn?", 1, simplePredicate("fn?", isFn)),
		fixedArity("hash-map?", 1, simplePredicate("hash-map?", isHashMapObj)),
		fixedArity("seq?", 1, simplePredicate("seq?", isSeq)),
		fixedArity("type", 1, typeOf),

		fixedArity("range", 2, createRange), // overridden below for the 3-arg form
		fixedArity("floor", 1, floorFn),
		fixedArity("time", 0, timeNow),
		fixedArity("slurp", 1, slurp),
		fixedArity("read-string", 1, readString),
		fixedArity("eval", 1, makeEval(rootEnv)),
	}
}

func makeEval(rootEnv *plp.Environment) BuiltinFunc {
	return func(args []plp.Object) (plp.Object, error) {
		if err := CheckArgs("eval", args, 1, 1); err != nil {
			return nil, err
		}
		return eval.Eval(args[0], rootEnv)
	}
}

// NewRootEnvironment builds a root environment preloaded with every
// builtin and the evaluated bootstrap prelude. Output from
// `prn`/`println` is written to out.
func NewRootEnvironment(out outputWriter) (*plp.Environment, error) {
	root := plp.NewRootEnvironment()
	for _, e := range entries(out, root) {
		root.Bind(plp.Symbol(e.name), &plp.Builtin{
			Name:     e.name,
			MinArity: e.minArity,
			MaxArity: e.maxArity,
			Fn:       e.fn,
		})
	}
	// `range` additionally accepts an optional third (step) argument;
	// rebind with the wider arity the single-entry table above can't express.
	root.Bind("range", &plp.Builtin{Name: "range", MinArity: 2, MaxArity: 3, Fn: createRange})

	if err := loadPrelude(root); err != nil {
		return nil, err
	}
	return root, nil
}

// loadPrelude evaluates each top-level form in prelude.plp in order. Each
// bootstrap form is a single self-contained `define` on its own line, so
// forms are read one at a time rather than all at once.
func loadPrelude(root *plp.Environment) error {
	for _, line := range strings.Split(preludeSource, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";;") {
			continue
		}
		form, err := reader.ReadString(trimmed)
		if err != nil {
			return err
		}
		if _, err := eval.Eval(form, root); err != nil {
			return err
		}
	}
	return nil
}
