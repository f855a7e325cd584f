// Package cmd contains the commands of the merkletree binary.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version of the merkletree binary.
const Version = "0.2.0"

const appName = "merkletree"

// NewRootCommand constructs the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Interactive binary Merkle tree.",
		Long: `An interactive binary Merkle tree.

Build a tree from elements, add leaves, generate inclusion proofs
and verify them against the root from a REPL.`,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "",
		"Config file for the REPL (defaults to ./config.toml when present)")

	rootCmd.AddCommand(
		newInitCommand(),
		newRunCommand(),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs the root command and exits on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}
