// Command pureguard classifies values from the command line, stdin or
// YAML/JSON documents using the pureguard guards.
//
// Usage:
//
//	pureguard number 1 01 -0.2 Infinity
//	pureguard number --yaml 1.5 "'1.5'"
//	pureguard classnames btn "" btn-primary
//	pureguard keys --numbers config.yaml
package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	root, a := newRootCmd()
	if err := root.Execute(); err != nil {
		a.logger.Error("command failed", zap.Error(err))
		_ = a.logger.Sync()
		os.Exit(1)
	}
}
