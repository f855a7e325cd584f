package merkle

import (
	"fmt"
	"strings"
)

// Side tells on which side a sibling hash is concatenated
// when recomputing its parent.
type Side int

const (
	Left Side = iota
	Right
)

// sideOf returns the side occupied by the node at index in its level.
func sideOf(index int) Side {
	if index%2 == 0 {
		return Left
	}
	return Right
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide parses "left" or "right", ignoring case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Left, &ParsingError{Message: fmt.Sprintf("side must be left or right, got %q", s)}
}
