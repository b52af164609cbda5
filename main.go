// Copyright 2024 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/erenjanje/pc/rpn"
)

var (
	interactive bool
	expression  string
)

var rootCmd = &cobra.Command{
	Use:          "pc [filename]",
	Short:        "A postfix calculator",
	Version:      "0.0.1",
	Args:         cobra.MaximumNArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"read and evaluate lines until end of input")
	rootCmd.Flags().StringVarP(&expression, "string", "s", "",
		"evaluate a single expression and exit")
}

func run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch {
	case interactive:
		return interact(out)
	case cmd.Flags().Changed("string"):
		return rpn.EvalExpression(expression, out)
	case len(args) == 1:
		return runFile(args[0], out)
	}
	return interact(out)
}

func interact(out io.Writer) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return rpn.Session(rpn.NewReaderSource(os.Stdin), out)
	}
	src := rpn.NewTermSource()
	defer src.Close()
	return rpn.Session(src, out)
}

func runFile(name string, out io.Writer) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return rpn.Session(rpn.NewReaderSource(f), out)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
