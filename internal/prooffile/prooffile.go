// Package prooffile reads and writes inclusion proofs as text,
// one "<hex-hash>;<left|right>" element per line.
package prooffile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	merkle "github.com/estensen/merkletree"
)

const separator = ";"

// Parse reads proof elements from r. Only trailing blank lines are
// allowed; any malformed line stops parsing with a *merkle.ParsingError.
func Parse(r io.Reader) ([]merkle.ProofElement, error) {
	var proof []merkle.ProofElement

	scanner := bufio.NewScanner(r)
	lineNo, blankLine := 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if blankLine == 0 {
				blankLine = lineNo
			}
			continue
		}
		if blankLine != 0 {
			return nil, &merkle.ParsingError{Line: blankLine, Message: "blank line before the end of the proof"}
		}

		elem, err := parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		proof = append(proof, elem)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read proof")
	}

	return proof, nil
}

func parseLine(line string, lineNo int) (merkle.ProofElement, error) {
	parts := strings.Split(line, separator)
	if len(parts) != 2 {
		return merkle.ProofElement{}, &merkle.ParsingError{
			Line:    lineNo,
			Message: fmt.Sprintf("expected <hash>%s<left|right>, got %q", separator, line),
		}
	}

	hash := strings.TrimSpace(parts[0])
	if hash == "" {
		return merkle.ProofElement{}, &merkle.ParsingError{
			Line:    lineNo,
			Message: fmt.Sprintf("missing hash in %q", line),
		}
	}

	side, err := merkle.ParseSide(parts[1])
	if err != nil {
		var perr *merkle.ParsingError
		if errors.As(err, &perr) {
			perr.Line = lineNo
			return merkle.ProofElement{}, perr
		}
		return merkle.ProofElement{}, errors.Wrapf(err, "line %d", lineNo)
	}

	return merkle.ProofElement{Hash: hash, Side: side}, nil
}

// ParseFile opens path and parses its proof elements.
func ParseFile(path string) ([]merkle.ProofElement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open proof file %s", path)
	}
	defer f.Close()

	return Parse(f)
}

// Write writes proof to w in the format read by Parse.
func Write(w io.Writer, proof []merkle.ProofElement) error {
	bw := bufio.NewWriter(w)
	for _, p := range proof {
		if _, err := bw.WriteString(p.String() + "\n"); err != nil {
			return errors.Wrap(err, "failed to write proof")
		}
	}
	return errors.Wrap(bw.Flush(), "failed to write proof")
}

// WriteFile writes proof to path, replacing any existing file.
func WriteFile(path string, proof []merkle.ProofElement) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create proof file %s", path)
	}
	if err := Write(f, proof); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "failed to close proof file %s", path)
}
