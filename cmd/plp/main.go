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

// Command plp is the interpreter's command-line entry point: no
// positional arguments starts the interactive prompt, one or more start
// a batch run loading each file in order.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"plp.sh/plp"
	"plp.sh/plp/builtins"
	"plp.sh/plp/eval"
	"plp.sh/plp/internal/repl"
	"plp.sh/plp/perr"
)

var (
	traceFlag bool
	rootFlag  string
)

func main() {
	cmd := &cobra.Command{
		Use:           "plp [file...]",
		Short:         "PLP, a small Lisp-family interpreter",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "print each loaded form before it is evaluated")
	cmd.PersistentFlags().StringVar(&rootFlag, "root", "", "override the resolved program root")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if rootFlag != "" {
		builtins.SetProgramRoot(rootFlag)
	} else {
		builtins.SetProgramRoot(builtins.ResolveProgramRoot())
	}

	root, err := builtins.NewRootEnvironment(os.Stdout)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return repl.Run(root, os.Stdout)
	}
	return runFiles(root, args)
}

// runFiles pre-checks that every file exists, then loads each in order
// via `(load-file "<path>")`, exiting 1 on the first failure.
func runFiles(root *plp.Environment, paths []string) error {
	var missing []string
	for _, p := range paths {
		if _, err := os.Stat(builtins.ResolvePath(p)); err != nil {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintln(os.Stderr, color.RedString("missing file(s):"), missing)
		os.Exit(1)
	}

	for _, p := range paths {
		form := plp.List{plp.Symbol("load-file"), plp.MakeString(p)}
		if traceFlag {
			fmt.Fprintln(os.Stdout, ";trace", form)
		}
		if _, err := eval.Eval(form, root); err != nil {
			printBatchError(err)
			os.Exit(1)
		}
	}
	return nil
}

func printBatchError(err error) {
	if pe, ok := perr.As(err); ok {
		fmt.Fprintln(os.Stderr, color.RedString("[%s]:", pe.Kind), pe.Message)
		return
	}
	fmt.Fprintln(os.Stderr, color.RedString("[error]:"), err)
}
