package merkle

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyTree        = errors.New("merkle tree is empty")
	ErrDuplicateElement = errors.New("element is already in the merkle tree")
)

// NotFoundError is returned when a proof is requested for a hash
// that is not one of the tree's leaves.
type NotFoundError struct {
	Hash string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("'%s' wasn't found in merkle tree", e.Hash)
}

// ParsingError reports a malformed line of a proof file.
type ParsingError struct {
	Line    int
	Message string
}

func (e *ParsingError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid proof element on line %d: %s", e.Line, e.Message)
	}
	return "invalid proof element: " + e.Message
}
