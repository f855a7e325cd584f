package merkle

import (
	"fmt"
	"strings"
)

// String lists the levels root first, one hash per line,
// with a blank line between levels.
func (t *Tree) String() string {
	if t.IsEmpty() {
		return "Empty tree"
	}

	levels := make([]string, 0, len(t.levels))
	for i := len(t.levels) - 1; i >= 0; i-- {
		levels = append(levels, strings.Join(t.levels[i], "\n"))
	}
	return strings.Join(levels, "\n\n")
}

// StringifyTree creates an ASCII representation of the
// Merkle tree that can be printed.
func (t *Tree) StringifyTree() string {
	if t.IsEmpty() {
		return "Empty tree\n"
	}
	return t.stringifyNode(len(t.levels)-1, 0, "", false)
}

func (t *Tree) stringifyNode(level, index int, prefix string, isLeft bool) string {
	var result strings.Builder

	hash := t.levels[level][index]
	if len(prefix) > 0 {
		if isLeft {
			result.WriteString(fmt.Sprintf("%s├── %s\n", prefix, hash))
		} else {
			result.WriteString(fmt.Sprintf("%s└── %s\n", prefix, hash))
		}
	} else {
		result.WriteString(hash + "\n")
	}

	if level == 0 {
		return result.String()
	}

	newPrefix := prefix
	if isLeft {
		newPrefix += "│   "
	} else {
		newPrefix += "    "
	}

	result.WriteString(t.stringifyNode(level-1, 2*index, newPrefix, true))
	result.WriteString(t.stringifyNode(level-1, 2*index+1, newPrefix, false))

	return result.String()
}
