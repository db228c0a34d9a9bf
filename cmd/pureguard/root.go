package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// app holds state shared by all subcommands.
type app struct {
	logger  *zap.Logger
	verbose bool
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{logger: zap.NewNop()}
	if logger, err := newLogger(false); err == nil {
		a.logger = logger
	}

	root := &cobra.Command{
		Use:           "pureguard",
		Short:         "Classify loosely typed values",
		Long:          `pureguard checks whether values are canonical mathematical numbers, joins class names and lists the keys of YAML or JSON documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.logger = logger
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newNumberCmd(a),
		newClassNamesCmd(a),
		newKeysCmd(a),
	)
	return root, a
}

// newLogger logs warnings and errors as JSON, or everything in the
// console format when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}

// Output formats accepted by --output.
const (
	outputText = "text"
	outputYAML = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputText, outputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want %s or %s)", format, outputText, outputYAML)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
