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

package perr_test

import (
	"testing"

	"plp.sh/plp/perr"
)

func TestErrorFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *perr.Error
		want string
	}{
		{"generic", perr.New("boom"), "error: boom"},
		{"type", perr.Typef("bad type"), "type error: bad type"},
		{"undefined", perr.Undefined("x"), "undefined symbol: 'x' not found"},
		{"argcount", perr.ArgCount("wrong count"), "argument count error: wrong count"},
		{"syntax", perr.Syntaxf("bad form"), "syntax error: bad form"},
		{"math", perr.Mathf("div by zero"), "math error: div by zero"},
		{"unmatched", perr.Unmatchedf("open paren"), "unmatched: open paren"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAs(t *testing.T) {
	t.Parallel()

	pe, ok := perr.As(perr.Typef("x"))
	if !ok || pe.Kind != perr.Type {
		t.Errorf("As(perr.Typef) = %v, %v, want Type kind", pe, ok)
	}

	if _, ok := perr.As(nil); ok {
		t.Error("As(non-*Error) should report false")
	}
}
