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

// Keyword is a self-evaluating identifier, written `:name` in source and
// stored without the leading colon. Distinct tag from Symbol and from
// String, and one of the few kinds admissible as a HashMap key.
type Keyword string

func (kw Keyword) IsNil() bool  { return false }
func (kw Keyword) IsTrue() bool { return true }

func (kw Keyword) IsEqual(other Object) bool {
	okw, ok := other.(Keyword)
	return ok && kw == okw
}

func (kw Keyword) String() string { return ":" + string(kw) }

func (kw Keyword) Print(w io.Writer) (int, error) { return io.WriteString(w, kw.String()) }

// GetKeyword returns the object as a Keyword, if possible.
func GetKeyword(obj Object) (Keyword, bool) {
	kw, ok := obj.(Keyword)
	return kw, ok
}
