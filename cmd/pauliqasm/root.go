package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pauliqasm"
)

var (
	outPath     string
	qasmVersion int
	multiplier  float64
	workers     int
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "pauliqasm",
	Short: "Compile Pauli-exponential ansatz descriptions to OpenQASM",
	Long: `pauliqasm compiles a textual description of a sum of multi-qubit
Pauli-exponential terms, as used to specify variational circuit ansätze, into
an OpenQASM program. Each input line holds one term:

    <basis string> <coefficient> <parameter>

e.g. "IXIZ 0.5 1". A parameter of 0 marks the term as independent; terms
sharing a nonzero parameter share the symbolic rotation angle $[k] in the
generated program.`,
	SilenceUsage: true,
}

var compileCmd = &cobra.Command{
	Use:   "compile <input file>",
	Short: "Compile an ansatz description file to OpenQASM",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&qasmVersion, "qasm-version", 2, "OpenQASM dialect for register declarations (2 or 3)")
	rootCmd.PersistentFlags().Float64VarP(&multiplier, "multiplier", "m", 0.5, "angle scale factor applied to every rotation")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "j", 0, "max terms compiled concurrently (0 = number of CPUs)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	compileCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the program to this file instead of stdout")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(viewCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)
	defer func() { _ = logger.Sync() }()

	qasm, err := compileFile(cmd, args[0], logger)
	if err != nil {
		return err
	}

	if outPath == "" {
		fmt.Print(qasm)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(qasm), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", outPath)
	}
	logger.Info("program written", zap.String("path", outPath))
	return nil
}

// compileFile runs the full load-and-compile path shared by compile and view.
func compileFile(cmd *cobra.Command, path string, logger *zap.Logger) (string, error) {
	lines, err := readLines(path)
	if err != nil {
		return "", err
	}

	terms, err := pauliqasm.LoadTerms(lines)
	if err != nil {
		return "", errors.Wrapf(err, "load %s", path)
	}

	opts := pauliqasm.Options{
		Version: qasmVersion,
		Workers: workers,
		Logger:  logger,
	}
	if cmd.Flags().Changed("multiplier") {
		opts.Multiplier = &multiplier
	}

	qasm, err := pauliqasm.Compile(cmd.Context(), terms, opts)
	if err != nil {
		return "", errors.Wrapf(err, "compile %s", path)
	}
	return qasm, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return lines, nil
}

// newLogger builds a stderr logger; warnings only unless --verbose.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
