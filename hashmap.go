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

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HashMap is a finite mapping from an atom key (Integer, Float, String,
// or Keyword) to an Object. Insertion order is preserved for iteration,
// `keys`, `vals`, and printing.
type HashMap struct {
	entries []hashEntry
	index   map[mapKey]int
}

type hashEntry struct {
	key Object
	val Object
}

// mapKey is the (tag, payload) identity used for key comparison: two keys
// collide only when both tag and payload match, so Integer 1 and Float
// 1.0 are distinct keys.
type mapKey struct {
	tag     string
	payload string
}

// IsAtomKey reports whether obj is an admissible HashMap key kind.
func IsAtomKey(obj Object) bool {
	switch obj.(type) {
	case Integer, Float, String, Keyword:
		return true
	default:
		return false
	}
}

func keyOf(obj Object) (mapKey, error) {
	switch v := obj.(type) {
	case Integer:
		return mapKey{"Integer", strconv.FormatInt(int64(v), 10)}, nil
	case Float:
		return mapKey{"Float", strconv.FormatFloat(float64(v), 'g', -1, 64)}, nil
	case String:
		return mapKey{"String", v.GetValue()}, nil
	case Keyword:
		return mapKey{"Keyword", string(v)}, nil
	default:
		return mapKey{}, fmt.Errorf("can't have key of type '%s' in a hashmap", TypeName(obj))
	}
}

// NewHashMap builds a HashMap from a flat, alternating key/value slice.
// It rejects an odd-length slice, a key of an inadmissible kind, and
// duplicate keys.
func NewHashMap(items []Object) (*HashMap, error) {
	if len(items)%2 != 0 {
		return nil, fmt.Errorf("can't initialize hashmap with empty value")
	}
	hm := &HashMap{index: make(map[mapKey]int, len(items)/2)}
	for i := 0; i < len(items); i += 2 {
		if err := hm.set(items[i], items[i+1]); err != nil {
			return nil, err
		}
	}
	return hm, nil
}

func (hm *HashMap) set(key, val Object) error {
	mk, err := keyOf(key)
	if err != nil {
		return err
	}
	if idx, found := hm.index[mk]; found {
		hm.entries[idx].val = val
		return fmt.Errorf("can't initialize hashmap with two or more same keys: '%s'", key)
	}
	hm.index[mk] = len(hm.entries)
	hm.entries = append(hm.entries, hashEntry{key: key, val: val})
	return nil
}

// Update rebinds key to val in place, or appends it if absent. Used by the
// evaluator to fill in a freshly read hashmap literal's evaluated values.
func (hm *HashMap) Update(key, val Object) error {
	mk, err := keyOf(key)
	if err != nil {
		return err
	}
	if idx, found := hm.index[mk]; found {
		hm.entries[idx].val = val
		return nil
	}
	hm.index[mk] = len(hm.entries)
	hm.entries = append(hm.entries, hashEntry{key: key, val: val})
	return nil
}

// Clone returns a deep-enough copy: a HashMap whose entries can be updated
// without the receiver being observed to change through other bindings.
func (hm *HashMap) Clone() *HashMap {
	clone := &HashMap{
		entries: make([]hashEntry, len(hm.entries)),
		index:   make(map[mapKey]int, len(hm.index)),
	}
	copy(clone.entries, hm.entries)
	for k, v := range hm.index {
		clone.index[k] = v
	}
	return clone
}

// Get returns the value bound to key, or (Nil, false) if absent.
func (hm *HashMap) Get(key Object) (Object, bool) {
	mk, err := keyOf(key)
	if err != nil {
		return Nil(), false
	}
	idx, found := hm.index[mk]
	if !found {
		return Nil(), false
	}
	return hm.entries[idx].val, true
}

// Contains reports whether key is bound.
func (hm *HashMap) Contains(key Object) bool {
	_, found := hm.Get(key)
	return found
}

// Remove deletes key if present; a missing key is a no-op (matches
// `dissoc`'s documented leniency).
func (hm *HashMap) Remove(key Object) {
	mk, err := keyOf(key)
	if err != nil {
		return
	}
	idx, found := hm.index[mk]
	if !found {
		return
	}
	hm.entries = append(hm.entries[:idx], hm.entries[idx+1:]...)
	delete(hm.index, mk)
	for k, i := range hm.index {
		if i > idx {
			hm.index[k] = i - 1
		}
	}
}

// Len returns the number of bindings.
func (hm *HashMap) Len() int { return len(hm.entries) }

// Keys returns the bound keys in insertion order.
func (hm *HashMap) Keys() []Object {
	out := make([]Object, len(hm.entries))
	for i, e := range hm.entries {
		out[i] = e.key
	}
	return out
}

// Vals returns the bound values in insertion order.
func (hm *HashMap) Vals() []Object {
	out := make([]Object, len(hm.entries))
	for i, e := range hm.entries {
		out[i] = e.val
	}
	return out
}

// Each calls fn for every (key, value) pair in insertion order.
func (hm *HashMap) Each(fn func(key, val Object) error) error {
	for _, e := range hm.entries {
		if err := fn(e.key, e.val); err != nil {
			return err
		}
	}
	return nil
}

func (hm *HashMap) IsNil() bool  { return false }
func (hm *HashMap) IsTrue() bool { return true }

func (hm *HashMap) IsEqual(other Object) bool {
	ohm, ok := other.(*HashMap)
	if !ok || len(hm.entries) != len(ohm.entries) {
		return false
	}
	for _, e := range hm.entries {
		ov, found := ohm.Get(e.key)
		if !found || !e.val.IsEqual(ov) {
			return false
		}
	}
	return true
}

func (hm *HashMap) String() string { return hm.formatString(true) }

func (hm *HashMap) formatString(readably bool) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range hm.entries {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if readably {
			sb.WriteString(e.key.String())
			sb.WriteByte(' ')
			sb.WriteString(e.val.String())
		} else {
			sb.WriteString(formatUnreadable(e.key))
			sb.WriteByte(' ')
			sb.WriteString(formatUnreadable(e.val))
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

func (hm *HashMap) Print(w io.Writer) (int, error) { return io.WriteString(w, hm.String()) }

// GetHashMap returns the object as a *HashMap, if possible.
func GetHashMap(obj Object) (*HashMap, bool) {
	hm, ok := obj.(*HashMap)
	return hm, ok
}
