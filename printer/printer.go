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

// Package printer is a pure, total formatting function from plp.Object to
// text, parameterized by a `readably` flag. Every value has a rendering;
// the readable form round-trips through the reader where syntactically
// representable.
package printer

import (
	"strings"

	"plp.sh/plp"
)

// Format renders obj readably (quoted strings, `pr-str` style) or
// unreadably (raw strings, `str`/`println` style).
func Format(obj plp.Object, readably bool) string {
	if readably {
		return obj.String()
	}
	return plp.Unreadable(obj)
}

// FormatSequence renders each item per Format, joined by sep.
func FormatSequence(items []plp.Object, sep string, readably bool) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = Format(item, readably)
	}
	return strings.Join(parts, sep)
}
