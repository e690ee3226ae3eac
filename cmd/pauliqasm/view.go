package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pauliqasm/view"
)

var viewCmd = &cobra.Command{
	Use:   "view <input file>",
	Short: "Compile an ansatz description and browse the circuit interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
	// The viewer owns the terminal, so compilation logs stay silent here.
	qasm, err := compileFile(cmd, args[0], zap.NewNop())
	if err != nil {
		return err
	}
	return view.Run(qasm)
}
