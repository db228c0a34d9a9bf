package main

import (
	"bufio"
	"fmt"

	"github.com/Pure-Company/pureguard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type numberOptions struct {
	stdin  bool
	yaml   bool
	strict bool
	output string
}

// classification is one row of `pureguard number` output.
type classification struct {
	Input        string `yaml:"input"`
	Kind         string `yaml:"kind"`
	Mathematical bool   `yaml:"mathematical"`
}

func newNumberCmd(a *app) *cobra.Command {
	opts := &numberOptions{}
	cmd := &cobra.Command{
		Use:   "number [value...]",
		Short: "Report whether values are mathematical numbers",
		Long: `Classifies each value as a mathematical number or not.

Values are text by default. With --yaml each value is decoded as a YAML
scalar first, so 1.5 is a native float (rejected) and '1.5' is text
(accepted).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNumber(cmd, opts, args)
		},
	}
	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "read one value per line from stdin")
	cmd.Flags().BoolVar(&opts.yaml, "yaml", false, "decode each value as a YAML scalar")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when any value is not a mathematical number")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "output format: text or yaml")
	return cmd
}

func (a *app) runNumber(cmd *cobra.Command, opts *numberOptions, args []string) error {
	if err := validateOutput(opts.output); err != nil {
		return err
	}

	inputs := args
	if opts.stdin {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	results := make([]classification, 0, len(inputs))
	rejected := 0
	for _, raw := range inputs {
		var value any = raw
		if opts.yaml {
			var decoded any
			if err := yaml.Unmarshal([]byte(raw), &decoded); err != nil {
				return fmt.Errorf("decode %q: %w", raw, err)
			}
			value = decoded
		}

		ok := pureguard.IsMathematicalNumber(value)
		if !ok {
			rejected++
		}
		a.logger.Debug("classified",
			zap.String("input", raw),
			zap.Any("value", value),
			zap.Bool("mathematical", ok))

		results = append(results, classification{Input: raw, Kind: kindOf(value), Mathematical: ok})
	}

	out := cmd.OutOrStdout()
	if opts.output == outputYAML {
		if err := writeYAML(out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			fmt.Fprintf(out, "%q\t%s\t%t\n", r.Input, r.Kind, r.Mathematical)
		}
	}

	if opts.strict && rejected > 0 {
		return fmt.Errorf("%d of %d values rejected: %w", rejected, len(results), pureguard.ErrNotNumber)
	}
	return nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "text"
	case int, int64, uint64:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	case []any:
		return "sequence"
	case map[string]any:
		return "mapping"
	}
	return fmt.Sprintf("%T", v)
}
