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
	"io"
	"strings"
)

// List is a round-parenthesized ordered sequence of Objects. It is
// slice-backed like Vector rather than built from cons cells: the
// language exposes no cons/car/cdr and no dotted pairs, only
// whole-sequence operations, so there is no pair structure to represent.
type List []Object

func (l List) IsNil() bool  { return false }
func (l List) IsTrue() bool { return true }

func (l List) IsEqual(other Object) bool {
	return sequenceEqual(l, other)
}

func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	writeSequence(&sb, l, " ", true)
	sb.WriteByte(')')
	return sb.String()
}

func (l List) Print(w io.Writer) (int, error) { return io.WriteString(w, l.String()) }

// GetList returns the object as a List, if possible.
func GetList(obj Object) (List, bool) {
	l, ok := obj.(List)
	return l, ok
}

// sequenceEqual compares across both sequence kinds: a List and a Vector
// are equal when their lengths match and items are pairwise equal,
// regardless of which of the two concrete kinds either side is.
func sequenceEqual(items []Object, other Object) bool {
	var otherItems []Object
	switch o := other.(type) {
	case List:
		otherItems = []Object(o)
	case Vector:
		otherItems = []Object(o)
	default:
		return false
	}
	if len(items) != len(otherItems) {
		return false
	}
	for i, item := range items {
		if !item.IsEqual(otherItems[i]) {
			return false
		}
	}
	return true
}

// writeSequence writes each item's readable or unreadable representation,
// separated by sep, to sb.
func writeSequence(sb *strings.Builder, items []Object, sep string, readably bool) {
	for i, item := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		if readably {
			sb.WriteString(item.String())
		} else {
			sb.WriteString(formatUnreadable(item))
		}
	}
}

// Unreadable renders obj the way `str`/`println`/`join` do: like
// obj.String(), but a String value contributes its raw text instead of a
// quoted, escaped literal, recursively through Lists/Vectors/HashMaps.
func Unreadable(obj Object) string { return formatUnreadable(obj) }

// formatUnreadable renders an item the way `str`/`println`/`join` do: like
// String(), but a String value contributes its raw text instead of a
// quoted, escaped literal.
func formatUnreadable(obj Object) string {
	if s, ok := GetString(obj); ok {
		return s.GetValue()
	}
	switch v := obj.(type) {
	case List:
		var sb strings.Builder
		sb.WriteByte('(')
		writeSequence(&sb, v, " ", false)
		sb.WriteByte(')')
		return sb.String()
	case Vector:
		var sb strings.Builder
		sb.WriteByte('[')
		writeSequence(&sb, v, " ", false)
		sb.WriteByte(']')
		return sb.String()
	case *HashMap:
		return v.formatString(false)
	default:
		return obj.String()
	}
}
