package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/estensen/merkletree/internal/config"
	"github.com/estensen/merkletree/internal/logger"
	"github.com/estensen/merkletree/internal/repl"
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the " + appName + " REPL.",
		Long: `Run gives you a REPL holding one Merkle tree. It supports:
` + repl.Help,
		Args: cobra.NoArgs,
		RunE: run,
	}
	cmd.Flags().BoolP("debug", "d", false, "Turn on debug logging")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	conf, defaulted, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		conf.Debug = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		l, err := newLogger(conf, defaulted, nil)
		if err != nil {
			return err
		}
		defer l.Sync()

		session := repl.NewSession(conf, l, os.Stdout)
		return session.Run(ctx, repl.NewScannerReader(os.Stdin, os.Stdout, conf.Prompt))
	}

	state, err := terminal.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "failed to put terminal into raw mode")
	}
	defer terminal.Restore(fd, state)

	term := terminal.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, conf.Prompt)

	// Raw mode needs the terminal's CRLF translation for log lines too.
	l, err := newLogger(conf, defaulted, term)
	if err != nil {
		return err
	}
	defer l.Sync()

	session := repl.NewSession(conf, l, term)
	return session.Run(ctx, term)
}

func newLogger(conf *config.Config, defaulted bool, out io.Writer) (*zap.Logger, error) {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: conf.Debug, Output: out})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}
	if defaulted {
		l.Warn("No config file found, using defaults", zap.String("path", config.DefaultPath))
	}
	return l, nil
}

// loadConfig reads the config given by --config, falling back to the
// defaults when no flag is given and config.toml does not exist.
func loadConfig(cmd *cobra.Command) (conf *config.Config, defaulted bool, err error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		conf, err = config.Load(path)
		return conf, false, err
	}

	conf, err = config.Load(config.DefaultPath)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), true, nil
	}
	return conf, false, err
}
