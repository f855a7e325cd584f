package repl

import (
	"bufio"
	"fmt"
	"io"
)

// LineReader reads one command line at a time.
// It returns io.EOF once the input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// ScannerReader is a LineReader over a plain stream. It prints the
// prompt before every read, for input that is not a terminal.
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

var _ LineReader = (*ScannerReader)(nil)

func NewScannerReader(in io.Reader, out io.Writer, prompt string) *ScannerReader {
	return &ScannerReader{
		scanner: bufio.NewScanner(in),
		out:     out,
		prompt:  prompt,
	}
}

func (r *ScannerReader) ReadLine() (string, error) {
	fmt.Fprint(r.out, r.prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
