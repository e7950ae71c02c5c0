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

package builtins

import (
	"math"
	"os"
	"path/filepath"
	"time"

	"plp.sh/plp"
	"plp.sh/plp/perr"
	"plp.sh/plp/reader"
)

// ProgramRoot is the directory file paths given to `slurp` and the CLI's
// positional file arguments are resolved against: the parent directory of
// the directory holding the interpreter binary.
var ProgramRoot = "."

// SetProgramRoot overrides the resolved program root, e.g. from a `-root`
// CLI flag or for test isolation.
func SetProgramRoot(root string) { ProgramRoot = root }

// ResolveProgramRoot computes the default program root: the parent of the
// directory containing the running executable.
func ResolveProgramRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(filepath.Dir(exe))
}

// ResolvePath joins a relative path against ProgramRoot; absolute paths
// pass through untouched. The CLI uses the same resolution for its
// positional file arguments that `slurp` uses internally.
func ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ProgramRoot, path)
}

// slurp reads a file's full contents as a String, relative to ProgramRoot.
func slurp(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("slurp", args, 1, 1); err != nil {
		return nil, err
	}
	path, err := GetString("slurp", args, 0)
	if err != nil {
		return nil, err
	}
	data, ioErr := os.ReadFile(ResolvePath(path.GetValue()))
	if ioErr != nil {
		return nil, perr.New("%s", ioErr)
	}
	return plp.MakeString(string(data)), nil
}

func readString(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("read-string", args, 1, 1); err != nil {
		return nil, err
	}
	s, err := GetString("read-string", args, 0)
	if err != nil {
		return nil, err
	}
	return reader.ReadString(s.GetValue())
}

// createRange returns a List of Integers over [s, e) with an optional
// step, defaulting to 1.
func createRange(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("range", args, 2, 3); err != nil {
		return nil, err
	}
	start, err := GetInteger("range", args, 0)
	if err != nil {
		return nil, err
	}
	end, err := GetInteger("range", args, 1)
	if err != nil {
		return nil, err
	}
	step := plp.Integer(1)
	if len(args) == 3 {
		step, err = GetInteger("range", args, 2)
		if err != nil {
			return nil, err
		}
	}
	var out plp.List
	if step > 0 {
		for i := start; i < end; i += step {
			out = append(out, i)
		}
	} else if step < 0 {
		for i := start; i > end; i += step {
			out = append(out, i)
		}
	}
	if out == nil {
		out = plp.List{}
	}
	return out, nil
}

func floorFn(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("floor", args, 1, 1); err != nil {
		return nil, err
	}
	v, _, err := GetNumber("floor", args, 0)
	if err != nil {
		return nil, err
	}
	return plp.Integer(math.Floor(v)), nil
}

// timeNow returns nanoseconds since the Unix epoch as an Integer.
func timeNow(args []plp.Object) (plp.Object, error) {
	if err := CheckArgs("time", args, 0, 0); err != nil {
		return nil, err
	}
	return plp.Integer(time.Now().UnixNano()), nil
}
