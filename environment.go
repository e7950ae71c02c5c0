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

package plp

import "fmt"

// Environment is a lexical scope: a flat symbol table plus a link to the
// enclosing scope. Lookup walks outward to the root; writes always land
// in the innermost frame.
type Environment struct {
	vars   map[Symbol]Object
	parent *Environment
}

// NewRootEnvironment creates an environment with no parent, intended to
// hold the builtin registry and the evaluated prelude.
func NewRootEnvironment() *Environment {
	return &Environment{vars: make(map[Symbol]Object)}
}

// NewChildEnvironment creates a scope nested inside parent, e.g. for a
// `let*` body or a closure invocation.
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{vars: make(map[Symbol]Object), parent: parent}
}

// Bind introduces or rebinds sym in this environment's own frame (not an
// ancestor's), as `define` and `let*` do.
func (e *Environment) Bind(sym Symbol, val Object) {
	e.vars[sym] = val
}

// Lookup searches this frame and then each ancestor in turn, returning
// (value, true) on success.
func (e *Environment) Lookup(sym Symbol) (Object, bool) {
	for env := e; env != nil; env = env.parent {
		if val, ok := env.vars[sym]; ok {
			return val, true
		}
	}
	return nil, false
}

// LookupOwn searches this frame only, never an ancestor's.
func (e *Environment) LookupOwn(sym Symbol) (Object, bool) {
	val, ok := e.vars[sym]
	return val, ok
}

// Parent returns the enclosing environment, or nil at the root.
func (e *Environment) Parent() *Environment { return e.parent }

// OwnKeys returns the symbols bound directly in this frame, not an
// ancestor's. Used by `while` to find which loop-local bindings shadow a
// name the enclosing environment already held.
func (e *Environment) OwnKeys() []Symbol {
	keys := make([]Symbol, 0, len(e.vars))
	for k := range e.vars {
		keys = append(keys, k)
	}
	return keys
}

// Extend creates a child environment binding params positionally to args.
// len(args) must equal len(params) exactly. Used when invoking a
// *Closure.
func Extend(parent *Environment, params []Symbol, args []Object) (*Environment, error) {
	if len(args) != len(params) {
		return nil, fmt.Errorf("expected %d argument(s), got %d", len(params), len(args))
	}
	child := NewChildEnvironment(parent)
	for i, p := range params {
		child.Bind(p, args[i])
	}
	return child, nil
}
