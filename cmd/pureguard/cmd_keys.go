package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Pure-Company/pureguard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type keysOptions struct {
	numbers bool
	output  string
}

// keyEntry is one row of `pureguard keys` output. Mathematical is only set
// for leaf values when --numbers is given.
type keyEntry struct {
	Key          string `yaml:"key"`
	Mathematical *bool  `yaml:"mathematical,omitempty"`
}

func newKeysCmd(a *app) *cobra.Command {
	opts := &keysOptions{}
	cmd := &cobra.Command{
		Use:   "keys FILE",
		Short: "List the dotted keys of a YAML or JSON document",
		Long: `Lists every dotted key path of a YAML or JSON document. Use - to read from stdin.

With --numbers, leaf values are classified as mathematical numbers. A key
that itself contains a dot cannot be resolved from its path, so its value
is listed without a classification.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runKeys(cmd, opts, args[0])
		},
	}
	cmd.Flags().BoolVar(&opts.numbers, "numbers", false, "classify leaf values as mathematical numbers")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "output format: text or yaml")
	return cmd
}

func (a *app) runKeys(cmd *cobra.Command, opts *keysOptions, path string) error {
	if err := validateOutput(opts.output); err != nil {
		return err
	}

	data, err := readDocument(cmd, path)
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	a.logger.Debug("document loaded", zap.String("path", path), zap.Int("bytes", len(data)))

	keys := pureguard.DeepKeys(doc)
	entries := make([]keyEntry, 0, len(keys))
	for _, key := range keys {
		entry := keyEntry{Key: key}
		if opts.numbers {
			if v, ok := pureguard.Lookup(doc, key); ok && isLeaf(v) {
				m := pureguard.IsMathematicalNumber(v)
				entry.Mathematical = &m
			}
		}
		entries = append(entries, entry)
	}

	out := cmd.OutOrStdout()
	if opts.output == outputYAML {
		return writeYAML(out, entries)
	}
	for _, e := range entries {
		if e.Mathematical == nil {
			fmt.Fprintln(out, e.Key)
			continue
		}
		fmt.Fprintf(out, "%s\t%t\n", e.Key, *e.Mathematical)
	}
	return nil
}

func readDocument(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func isLeaf(v any) bool {
	switch v.(type) {
	case map[string]any, map[any]any, []any:
		return false
	}
	return true
}
