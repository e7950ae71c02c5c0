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

import "io"

// Boolean represents a true/false value. It is a distinct tag from Nil:
// only Boolean(false) and Nil are falsy.
type Boolean bool

// MakeBoolean wraps a Go bool as a Boolean object.
func MakeBoolean(b bool) Boolean { return Boolean(b) }

func (b Boolean) IsNil() bool  { return false }
func (b Boolean) IsTrue() bool { return bool(b) }

func (b Boolean) IsEqual(other Object) bool {
	ob, ok := other.(Boolean)
	return ok && b == ob
}

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Boolean) Print(w io.Writer) (int, error) { return io.WriteString(w, b.String()) }

// GetBoolean returns the object as a Boolean, if possible.
func GetBoolean(obj Object) (Boolean, bool) {
	b, ok := obj.(Boolean)
	return b, ok
}
