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

package printer_test

import (
	"testing"

	"plp.sh/plp"
	"plp.sh/plp/printer"
)

func TestFormatReadableVsUnreadable(t *testing.T) {
	t.Parallel()

	s := plp.MakeString("hi")
	if got := printer.Format(s, true); got != `"hi"` {
		t.Errorf("Format(readably) = %q, want \"hi\"", got)
	}
	if got := printer.Format(s, false); got != "hi" {
		t.Errorf("Format(unreadably) = %q, want hi", got)
	}
}

func TestFormatScalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		obj  plp.Object
		want string
	}{
		{plp.Integer(3), "3"},
		{plp.Float(3), "3.0"},
		{plp.MakeBoolean(true), "true"},
		{plp.Nil(), "nil"},
		{plp.Keyword("k"), ":k"},
		{plp.Symbol("s"), "s"},
	}
	for _, tc := range tests {
		if got := printer.Format(tc.obj, true); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.obj, got, tc.want)
		}
	}
}

func TestFormatClosureAndBuiltinAreOpaque(t *testing.T) {
	t.Parallel()

	if got := printer.Format(&plp.Closure{}, true); got != "#<lambda>" {
		t.Errorf("Format(closure) = %q, want #<lambda>", got)
	}
	if got := printer.Format(&plp.Builtin{Name: "foo"}, true); got != "#<function 'foo'>" {
		t.Errorf("Format(builtin) = %q, want #<function 'foo'>", got)
	}
}

func TestFormatSequence(t *testing.T) {
	t.Parallel()

	items := []plp.Object{plp.MakeString("a"), plp.MakeString("b")}
	if got := printer.FormatSequence(items, ",", true); got != `"a","b"` {
		t.Errorf("FormatSequence(readably) = %q, want \"a\",\"b\"", got)
	}
	if got := printer.FormatSequence(items, "", false); got != "ab" {
		t.Errorf("FormatSequence(unreadably) = %q, want ab", got)
	}
}
