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

func TestFloatString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   plp.Float
		want string
	}{
		{plp.Float(1), "1.0"},
		{plp.Float(1.5), "1.5"},
		{plp.Float(-2), "-2.0"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Float(%v).String() = %q, want %q", float64(tc.in), got, tc.want)
		}
	}
}

func TestFloatEquality(t *testing.T) {
	t.Parallel()

	if !plp.Float(1.5).IsEqual(plp.Float(1.5)) {
		t.Error("Float(1.5) must equal Float(1.5)")
	}
	if plp.Float(1.5).IsEqual(plp.Integer(1)) {
		t.Error("Float must never equal Integer")
	}
}
