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

// Package builtins_test exercises the registry's host-implemented
// operations directly, looking each one up in a freshly built root
// environment and invoking it with already-evaluated arguments.
package builtins_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plp.sh/plp"
	"plp.sh/plp/builtins"
	"plp.sh/plp/perr"
)

func rootEnv(t *testing.T) *plp.Environment {
	t.Helper()
	env, err := builtins.NewRootEnvironment(&strings.Builder{})
	require.NoError(t, err)
	return env
}

func call(t *testing.T, env *plp.Environment, name string, args ...plp.Object) (plp.Object, error) {
	t.Helper()
	v, ok := env.Lookup(plp.Symbol(name))
	require.True(t, ok, "builtin %q must be registered", name)
	b, ok := plp.GetBuiltin(v)
	require.True(t, ok, "%q must be a Builtin", name)
	require.True(t, b.CheckArity(len(args)), "%q arity check for %d args", name, len(args))
	return b.Fn(args)
}

func TestPreludeIsLoaded(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	for _, name := range []string{"not", "load-file", "time-ms", "length", "**", "//"} {
		_, ok := env.Lookup(plp.Symbol(name))
		assert.Truef(t, ok, "bootstrap definition %q must exist after NewRootEnvironment", name)
	}
}

func TestCountOnNonSequenceReturnsZero(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	got, err := call(t, env, "count", plp.Integer(5))
	require.NoError(t, err)
	assert.Equal(t, plp.Integer(0), got)
}

func TestFirstLastOnEmptySequence(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	first, err := call(t, env, "first", plp.List{})
	require.NoError(t, err)
	assert.True(t, first.IsNil())

	last, err := call(t, env, "last", plp.Vector{})
	require.NoError(t, err)
	assert.True(t, last.IsNil())
}

func TestConcatOverMultipleSequences(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	got, err := call(t, env, "concat",
		plp.List{plp.Integer(1)},
		plp.Vector{plp.Integer(2), plp.Integer(3)},
		plp.List{},
	)
	require.NoError(t, err)
	want := plp.List{plp.Integer(1), plp.Integer(2), plp.Integer(3)}
	assert.True(t, got.IsEqual(want))
}

func TestVecCoercesList(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	got, err := call(t, env, "vec", plp.List{plp.Integer(1), plp.Integer(2)})
	require.NoError(t, err)
	_, isVector := plp.GetVector(got)
	assert.True(t, isVector)
}

func TestTakeClampsToLength(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	got, err := call(t, env, "take", plp.Integer(10), plp.List{plp.Integer(1), plp.Integer(2)})
	require.NoError(t, err)
	assert.True(t, got.IsEqual(plp.List{plp.Integer(1), plp.Integer(2)}))
}

func TestSpliceRejectsEndEqualToLength(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	// splice rejects a resolved end equal to the sequence length, so
	// there is no "slice to end" form.
	seq := plp.List{plp.Integer(1), plp.Integer(2), plp.Integer(3)}
	_, err := call(t, env, "splice", plp.Integer(0), plp.Integer(3), seq)
	assert.Error(t, err)

	got, err := call(t, env, "splice", plp.Integer(0), plp.Integer(2), seq)
	require.NoError(t, err)
	assert.True(t, got.IsEqual(plp.List{plp.Integer(1), plp.Integer(2)}))
}

func TestHashMapAssocDissocGetContains(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	hm, err := call(t, env, "hash-map", plp.MakeString("x"), plp.Integer(1))
	require.NoError(t, err)

	withY, err := call(t, env, "assoc", hm, plp.MakeString("y"), plp.Integer(2))
	require.NoError(t, err)

	got, err := call(t, env, "get", plp.MakeString("y"), withY)
	require.NoError(t, err)
	assert.True(t, got.IsEqual(plp.Integer(2)))

	has, err := call(t, env, "contains?", plp.MakeString("y"), hm)
	require.NoError(t, err)
	assert.Equal(t, plp.MakeBoolean(false), has)

	without, err := call(t, env, "dissoc", withY, plp.MakeString("x"))
	require.NoError(t, err)
	has, err = call(t, env, "contains?", plp.MakeString("x"), without)
	require.NoError(t, err)
	assert.Equal(t, plp.MakeBoolean(false), has)
}

func TestSplitEmptySeparatorSplitsIntoCharacters(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	got, err := call(t, env, "split", plp.MakeString(""), plp.MakeString("abc"))
	require.NoError(t, err)
	want := plp.List{plp.MakeString("a"), plp.MakeString("b"), plp.MakeString("c")}
	assert.True(t, got.IsEqual(want))
}

func TestJoinUsesUnreadableRendering(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	got, err := call(t, env, "join", plp.MakeString(","), plp.List{plp.MakeString("a"), plp.MakeString("b")})
	require.NoError(t, err)
	assert.Equal(t, plp.MakeString("a,b"), got)
}

func TestPrStrVsStr(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	readably, err := call(t, env, "pr-str", plp.MakeString("a"), plp.MakeString("b"))
	require.NoError(t, err)
	assert.Equal(t, plp.MakeString(`"a" "b"`), readably)

	unreadably, err := call(t, env, "str", plp.MakeString("a"), plp.MakeString("b"))
	require.NoError(t, err)
	assert.Equal(t, plp.MakeString("ab"), unreadably)
}

func TestTypePredicates(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	tests := []struct {
		name string
		arg  plp.Object
		obj  string
	}{
		{"int?", plp.Integer(1), "int?"},
		{"float?", plp.Float(1), "float?"},
		{"string?", plp.MakeString("x"), "string?"},
		{"symbol?", plp.Symbol("x"), "symbol?"},
		{"nil?", plp.Nil(), "nil?"},
	}
	for _, tc := range tests {
		got, err := call(t, env, tc.name, tc.arg)
		require.NoError(t, err)
		assert.Equal(t, plp.MakeBoolean(true), got, "%s(%v)", tc.name, tc.arg)
	}
}

func TestTypeBuiltinReturnsTagName(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	got, err := call(t, env, "type", plp.Integer(1))
	require.NoError(t, err)
	assert.Equal(t, plp.MakeString("Integer"), got)
}

func TestRangeWithStep(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	root, ok := env.Lookup("range")
	require.True(t, ok)
	b, ok := plp.GetBuiltin(root)
	require.True(t, ok)

	got, err := b.Fn([]plp.Object{plp.Integer(0), plp.Integer(10), plp.Integer(3)})
	require.NoError(t, err)
	want := plp.List{plp.Integer(0), plp.Integer(3), plp.Integer(6), plp.Integer(9)}
	assert.True(t, got.IsEqual(want))
}

func TestDivisionByZeroIsMathError(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	_, err := call(t, env, "/", plp.Integer(1), plp.Integer(0))
	require.Error(t, err)
	pe, ok := perr.As(err)
	require.True(t, ok, "division by zero must return a *perr.Error")
	assert.Equal(t, perr.Math, pe.Kind)
}

func TestModuloSignConvention(t *testing.T) {
	t.Parallel()
	env := rootEnv(t)

	got, err := call(t, env, "%", plp.Integer(-7), plp.Integer(3))
	require.NoError(t, err)
	assert.Equal(t, plp.Integer(2), got)
}
