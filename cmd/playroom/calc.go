package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leminhai2007/term-playroom/internal/platform/tui"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Open the calculator",
	Long: `Open the interactive expression calculator.

Supports + - * / % ^ with parentheses and unary minus.

Examples:
  playroom calc`,
	Run: runCalc,
}

func runCalc(_ *cobra.Command, _ []string) {
	width, height := termSize()

	if err := tui.RunCalculator(width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
