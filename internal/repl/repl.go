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

// Package repl implements the interactive line-oriented prompt: read one
// form, evaluate it against a shared root environment, print its value or
// a colored one-line error, repeat. An error terminates the current form
// only; the loop continues until EOF.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"plp.sh/plp"
	"plp.sh/plp/eval"
	"plp.sh/plp/perr"
	"plp.sh/plp/printer"
	"plp.sh/plp/reader"
)

const prompt = "plp> "

// historyLimit bounds the number of lines kept in ~/.plp-history.
const historyLimit = 1000

var errKind = color.New(color.FgRed, color.Bold)

// Run drives the interactive prompt until EOF, evaluating each form read
// against root and printing results to out. An interrupt discards the
// current line and shows the prompt again.
func Run(root *plp.Environment, out io.Writer) error {
	historyFile := historyPath()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		HistoryLimit:    historyLimit,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if line == "" {
			continue
		}

		form, err := reader.ReadString(line)
		if err != nil {
			printError(out, err)
			continue
		}
		value, err := eval.Eval(form, root)
		if err != nil {
			printError(out, err)
			continue
		}
		fmt.Fprintln(out, printer.Format(value, true))
	}
}

// historyPath returns ~/.plp-history, or "" if the home directory can't
// be resolved (readline then keeps history in memory only).
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".plp-history")
}

// printError renders a single colored `[kind]: message` line.
func printError(out io.Writer, err error) {
	if pe, ok := perr.As(err); ok {
		fmt.Fprintln(out, errKind.Sprintf("[%s]:", pe.Kind), pe.Message)
		return
	}
	fmt.Fprintln(out, errKind.Sprint("[error]:"), err)
}
