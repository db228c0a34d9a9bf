package main

import (
	"fmt"

	"github.com/Pure-Company/pureguard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newClassNamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "classnames [name...]",
		Aliases: []string{"cns"},
		Short:   "Join class names, dropping blank ones",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			joined := pureguard.ClassNames(args...)
			a.logger.Debug("joined class names", zap.Strings("names", args), zap.String("result", joined))
			fmt.Fprintln(cmd.OutOrStdout(), joined)
			return nil
		},
	}
}
