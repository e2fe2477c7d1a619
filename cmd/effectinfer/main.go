// Command effectinfer is the command-line driver around the effect
// inference core: it parses an irtext fixture, runs the inferrer over
// it, and prints one line per expression id describing either the
// scheme it inferred or the error it hit. It is a thin, optional
// collaborator around the core packages — nothing under internal/ir,
// internal/effect, internal/subst, internal/unify, or internal/infer
// imports anything in cmd/.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specterlang/effectcore/internal/config"
)

var configPath string

func main() {
	root := rootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "effectinfer",
		Short:         "Hindley-Milner-style effect inference over the irtext fixture notation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to effectinfer.yaml (default: ./effectinfer.yaml if present)")

	cmd.AddCommand(inferCmd())
	cmd.AddCommand(cacheCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the effectinfer version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Version)
			return nil
		},
	}
}
