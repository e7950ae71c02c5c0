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

package plp_test

import (
	"testing"

	"plp.sh/plp"
)

func TestNewHashMapRejectsDuplicateKeys(t *testing.T) {
	t.Parallel()

	// Duplicate keys (same tag and same payload) are rejected at
	// construction.
	_, err := plp.NewHashMap([]plp.Object{
		plp.MakeString("x"), plp.Integer(1),
		plp.MakeString("x"), plp.Integer(2),
	})
	if err == nil {
		t.Fatal("NewHashMap with duplicate keys should fail")
	}
}

func TestNewHashMapRejectsOddLength(t *testing.T) {
	t.Parallel()

	_, err := plp.NewHashMap([]plp.Object{plp.MakeString("x")})
	if err == nil {
		t.Fatal("NewHashMap with an odd number of items should fail")
	}
}

func TestHashMapKeyTagAndPayload(t *testing.T) {
	t.Parallel()

	// Integer 1 and Float 1.0 are distinct keys even though they are
	// numerically equal.
	hm, err := plp.NewHashMap([]plp.Object{
		plp.Integer(1), plp.MakeString("int-one"),
		plp.Float(1.0), plp.MakeString("float-one"),
	})
	if err != nil {
		t.Fatalf("NewHashMap: %v", err)
	}
	if hm.Len() != 2 {
		t.Fatalf("expected 2 distinct keys, got %d", hm.Len())
	}
	v, ok := hm.Get(plp.Integer(1))
	if !ok || !v.IsEqual(plp.MakeString("int-one")) {
		t.Errorf("Get(Integer(1)) = %v, %v, want int-one, true", v, ok)
	}
	v, ok = hm.Get(plp.Float(1.0))
	if !ok || !v.IsEqual(plp.MakeString("float-one")) {
		t.Errorf("Get(Float(1.0)) = %v, %v, want float-one, true", v, ok)
	}
}

func TestHashMapUpdateAndCloneIndependence(t *testing.T) {
	t.Parallel()

	hm, err := plp.NewHashMap([]plp.Object{plp.MakeString("x"), plp.Integer(1)})
	if err != nil {
		t.Fatalf("NewHashMap: %v", err)
	}
	clone := hm.Clone()
	if err := clone.Update(plp.MakeString("y"), plp.Integer(2)); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if hm.Contains(plp.MakeString("y")) {
		t.Error("mutating a clone must not affect the map it was cloned from")
	}
	if !clone.Contains(plp.MakeString("y")) {
		t.Error("clone must contain the newly updated key")
	}
}

func TestHashMapRemoveMissingKeyIsNoop(t *testing.T) {
	t.Parallel()

	hm, err := plp.NewHashMap([]plp.Object{plp.MakeString("x"), plp.Integer(1)})
	if err != nil {
		t.Fatalf("NewHashMap: %v", err)
	}
	hm.Remove(plp.MakeString("missing"))
	if hm.Len() != 1 {
		t.Errorf("Remove of a missing key should be a no-op, got len %d", hm.Len())
	}
}

func TestHashMapKeysValsInsertionOrder(t *testing.T) {
	t.Parallel()

	hm, err := plp.NewHashMap([]plp.Object{
		plp.MakeString("b"), plp.Integer(2),
		plp.MakeString("a"), plp.Integer(1),
	})
	if err != nil {
		t.Fatalf("NewHashMap: %v", err)
	}
	keys := hm.Keys()
	if len(keys) != 2 || !keys[0].IsEqual(plp.MakeString("b")) || !keys[1].IsEqual(plp.MakeString("a")) {
		t.Errorf("Keys() = %v, want insertion order [b a]", keys)
	}
}

func TestHashMapString(t *testing.T) {
	t.Parallel()

	hm, err := plp.NewHashMap([]plp.Object{plp.MakeString("x"), plp.Integer(1)})
	if err != nil {
		t.Fatalf("NewHashMap: %v", err)
	}
	if got := hm.String(); got != `{"x" 1}` {
		t.Errorf("HashMap.String() = %q, want {\"x\" 1}", got)
	}
}

func TestIsAtomKey(t *testing.T) {
	t.Parallel()

	admissible := []plp.Object{plp.Integer(1), plp.Float(1), plp.MakeString("s"), plp.Keyword("k")}
	for _, a := range admissible {
		if !plp.IsAtomKey(a) {
			t.Errorf("IsAtomKey(%v) = false, want true", a)
		}
	}
	inadmissible := []plp.Object{plp.Symbol("s"), plp.Nil(), plp.List{}}
	for _, a := range inadmissible {
		if plp.IsAtomKey(a) {
			t.Errorf("IsAtomKey(%v) = true, want false", a)
		}
	}
}
