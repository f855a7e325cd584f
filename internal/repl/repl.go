// Package repl implements the interactive command loop
// that owns a single Merkle tree.
package repl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	merkle "github.com/estensen/merkletree"
	"github.com/estensen/merkletree/internal/config"
)

const Help = "- build [--hashed] <elements...>:\n" +
	"	Build a new tree from the elements, replacing the current one.\n" +
	"- add [--hashed] <element>:\n" +
	"	Hash an element and add it to the tree.\n" +
	"- proof [--save <file>] <hash>:\n" +
	"	Generate the inclusion proof of a leaf hash.\n" +
	"- verify <hash> <proof-file>:\n" +
	"	Verify a proof file (one <hash>;<left|right> per line) against the root.\n" +
	"- show [--ascii]:\n" +
	"	Print the tree, root level first.\n" +
	"- root:\n" +
	"	Print the root hash.\n" +
	"- help:\n" +
	"	Display this message.\n" +
	"- exit, quit, q:\n" +
	"	Close the REPL."

// Session holds the tree mutated by the commands of one REPL.
type Session struct {
	tree   *merkle.Tree
	conf   *config.Config
	logger *zap.Logger
	out    io.Writer
}

// NewSession returns a session with an empty tree.
// Command results are written to out.
func NewSession(conf *config.Config, logger *zap.Logger, out io.Writer) *Session {
	return &Session{
		tree:   merkle.NewEmpty(conf.TreeOptions()...),
		conf:   conf,
		logger: logger,
		out:    out,
	}
}

// Tree returns the current tree.
func (s *Session) Tree() *merkle.Tree {
	return s.tree
}

type readResult struct {
	line string
	err  error
}

// Run executes lines from r until exit, end of input or ctx is done.
// A read blocked when ctx is done is abandoned; its goroutine exits
// once the reader returns.
func (s *Session) Run(ctx context.Context, r LineReader) error {
	// Buffered so an abandoned read never blocks on send.
	results := make(chan readResult, 1)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// The next line is only requested once the previous command
		// finished, so prompts never interleave with command output.
		go func() {
			line, err := r.ReadLine()
			results <- readResult{line: line, err: err}
		}()

		var res readResult
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res = <-results:
		}

		if res.err == io.EOF {
			fmt.Fprintln(s.out)
			return nil
		}
		if res.err != nil {
			return errors.Wrap(res.err, "failed to read command")
		}

		if s.Execute(res.line) {
			return nil
		}
	}
}

// Execute runs a single command line and reports whether the session
// should end. A failing command is reported on the output and does not
// end the session.
func (s *Session) Execute(line string) (exit bool) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}

	switch args[0] {
	case "exit", "quit", "q":
		return true
	case "help":
		fmt.Fprintln(s.out, Help)
		return false
	}

	s.logger.Debug("Executing command", zap.String("command", args[0]), zap.Strings("args", args[1:]))

	cmd := s.newCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		s.logger.Warn("Command failed", zap.String("command", args[0]), zap.Error(err))
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return false
}
