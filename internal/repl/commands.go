package repl

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	merkle "github.com/estensen/merkletree"
	"github.com/estensen/merkletree/internal/prooffile"
)

// newCommand builds the command tree for one REPL line.
// It is rebuilt per line so no flag value leaks into the next command.
func (s *Session) newCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "tree",
		Short:         "Merkle tree commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(s.out)
	root.SetErr(s.out)

	root.AddCommand(
		s.buildCommand(),
		s.addCommand(),
		s.proofCommand(),
		s.verifyCommand(),
		s.showCommand(),
		s.rootCommand(),
	)
	return root
}

func (s *Session) buildCommand() *cobra.Command {
	var hashed bool
	cmd := &cobra.Command{
		Use:   "build <elements...>",
		Short: "Builds a tree with the provided elements.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := merkle.Build(args, hashed, s.conf.TreeOptions()...)
			if err != nil {
				return err
			}
			s.tree = tree

			s.logger.Debug("Tree built", zap.Int("elements", len(args)), zap.Int("depth", tree.Depth()))
			fmt.Fprintf(s.out, "Tree built with elements %v\n", args)
			return nil
		},
	}
	cmd.Flags().BoolVar(&hashed, "hashed", false, "Elements are already hex-encoded hashes")
	return cmd
}

func (s *Session) addCommand() *cobra.Command {
	var hashed bool
	cmd := &cobra.Command{
		Use:   "add <element>",
		Short: "Adds an element to the tree.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			element := args[0]
			if err := s.tree.Add(element, hashed); err != nil {
				return err
			}

			if hashed {
				fmt.Fprintf(s.out, "Hash '%s' added to the tree\n", element)
			} else {
				fmt.Fprintf(s.out, "Element '%s' hashed and added to the tree\n", element)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hashed, "hashed", false, "Element is already a hex-encoded hash")
	return cmd
}

func (s *Session) proofCommand() *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "proof <hash>",
		Short: "Generates a proof for a given hash.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proof, err := s.tree.GenProof(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(s.out, "Generated proof:")
			for _, p := range proof {
				fmt.Fprintf(s.out, "  %s - %s\n", p.Hash, p.Side)
			}

			if save == "" {
				return nil
			}
			path := s.proofPath(save)
			if err := prooffile.WriteFile(path, proof); err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Proof saved to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "Write the proof to this file")
	return cmd
}

// proofPath resolves a relative proof file name against the proof directory.
func (s *Session) proofPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.conf.ProofDir, name)
}

func (s *Session) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <hash> <proof-file>",
		Short: "Verifies a proof for a given hash.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			proof, err := prooffile.ParseFile(s.proofPath(args[1]))
			if err != nil {
				return err
			}

			ok, err := s.tree.Verify(args[0], proof)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(s.out, "Verification successful. Correct proof for the given element.")
			} else {
				fmt.Fprintln(s.out, "Verification failed. Incorrect proof or element.")
			}
			return nil
		},
	}
}

func (s *Session) showCommand() *cobra.Command {
	var ascii bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Shows the tree structure.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ascii {
				fmt.Fprint(s.out, s.tree.StringifyTree())
				return nil
			}
			fmt.Fprintln(s.out, s.tree)
			return nil
		},
	}
	cmd.Flags().BoolVar(&ascii, "ascii", false, "Draw the tree with box characters")
	return cmd
}

func (s *Session) rootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Prints the root hash.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := s.tree.Root()
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, root)
			return nil
		},
	}
}
