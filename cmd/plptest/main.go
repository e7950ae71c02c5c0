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

// Command plptest runs the `.plptest` files under a tests directory and
// prints a colored pass/fail summary: banner lines in yellow, passed in
// green, failed in red.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"plp.sh/plp/builtins"
	"plp.sh/plp/testharness"
)

const testsDirectory = "tests"

var showFailed bool

func main() {
	cmd := &cobra.Command{
		Use:           "plptest [file]",
		Short:         "run PLP .plptest files and report pass/fail",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().BoolVar(&showFailed, "show-failed", false, "print details for every failed test")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	builtins.SetProgramRoot(builtins.ResolveProgramRoot())
	root, err := builtins.NewRootEnvironment(os.Stdout)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		result, err := testharness.RunFile(root, args[0], func(text string) {
			fmt.Println(color.YellowString(text))
		})
		if err != nil {
			return err
		}
		report([]testharness.FileResult{result})
		return nil
	}

	if _, err := os.Stat(testsDirectory); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("[path error]:"), fmt.Sprintf("tests' directory %q doesn't exist", testsDirectory))
		return nil
	}

	results, err := testharness.RunDirectory(root, testsDirectory, func(file, text string) {
		fmt.Println(color.YellowString(text))
	})
	if err != nil {
		return err
	}
	report(results)
	return nil
}

func report(results []testharness.FileResult) {
	var totalPassed, totalFailed int
	for _, r := range results {
		fmt.Printf("\nRunning tests in %s...\n", color.BlueString(r.Path))
		for _, c := range r.Cases {
			printCase(c)
		}
		fmt.Printf("\nSummary for %s: %d passed, %d failed.\n", color.BlueString(r.Path), r.Passed, r.Failed)
		totalPassed += r.Passed
		totalFailed += r.Failed
	}

	if totalFailed == 0 {
		fmt.Println(color.GreenString("\nAll tests passed! Total tests: %d", totalPassed))
		return
	}
	fmt.Println(color.RedString("\nSome tests failed. Total passed: %d, Total failed: %d", totalPassed, totalFailed))
	if showFailed {
		fmt.Println(color.RedString("\nSummary of failed tests:"))
		for _, r := range results {
			for _, c := range r.Cases {
				if c.Outcome == testharness.Failed {
					fmt.Println(color.RedString("Test failed for code: %s\n  Output: %s\n  Expected: %s\n", c.Code, c.Result, c.Expected))
				}
			}
		}
	}
}

func printCase(c testharness.Case) {
	switch c.Outcome {
	case testharness.Passed:
		fmt.Println(color.GreenString("[passed]  %s -> %s", c.Code, c.Result))
	case testharness.Failed:
		fmt.Println(color.RedString("[failed]  %s -> %s (expected: %s)", c.Code, c.Result, c.Expected))
	case testharness.Executed:
		fmt.Println(color.GreenString("[executed]  %s -> %s", c.Code, c.Result))
	}
}
