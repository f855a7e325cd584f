package merkle

import (
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelThreshold is the level width from which parent hashes
// are computed concurrently.
const DefaultParallelThreshold = 1024

// parallelChunk is the number of parent hashes computed per goroutine.
const parallelChunk = 256

// Tree is a binary Merkle tree stored level by level.
// levels[0] holds the leaf hashes and the last level holds only the root.
// A level with an odd number of nodes gets its last node duplicated,
// and the duplicate is stored, so every level below the root has even length.
type Tree struct {
	levels [][]string

	parallelThreshold int
}

// Option configures a Tree.
type Option func(*Tree)

// WithParallelThreshold sets the minimum level width for which parent
// hashes are computed concurrently. Zero or less disables concurrency.
func WithParallelThreshold(n int) Option {
	return func(t *Tree) {
		t.parallelThreshold = n
	}
}

// NewEmpty returns a tree without any leaves.
func NewEmpty(opts ...Option) *Tree {
	t := &Tree{parallelThreshold: DefaultParallelThreshold}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Build creates a tree from elements. Unless alreadyHashed is set every
// element is hashed to form a leaf; otherwise elements are used as leaf
// hashes directly. Repeated elements are rejected with ErrDuplicateElement.
func Build(elements []string, alreadyHashed bool, opts ...Option) (*Tree, error) {
	t := NewEmpty(opts...)
	levels, err := t.build(elements, alreadyHashed)
	if err != nil {
		return nil, err
	}
	t.levels = levels
	return t, nil
}

func (t *Tree) build(elements []string, alreadyHashed bool) ([][]string, error) {
	if len(elements) == 0 {
		return nil, ErrEmptyTree
	}

	seen := make(map[string]struct{}, len(elements))
	for _, e := range elements {
		if _, ok := seen[e]; ok {
			return nil, ErrDuplicateElement
		}
		seen[e] = struct{}{}
	}

	// One spare slot for the padding duplicate.
	level := make([]string, len(elements), len(elements)+1)
	for i, e := range elements {
		if alreadyHashed {
			level[i] = e
		} else {
			level[i] = Hash(e)
		}
	}

	var levels [][]string
	for {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		levels = append(levels, level)

		parents := t.upperLevel(level)
		if len(parents) == 1 {
			return append(levels, parents), nil
		}
		level = parents
	}
}

// upperLevel hashes consecutive pairs of an even-length level.
func (t *Tree) upperLevel(level []string) []string {
	parents := make([]string, len(level)/2, len(level)/2+1)

	if t.parallelThreshold <= 0 || len(level) < t.parallelThreshold {
		for i := range parents {
			parents[i] = hashPair(level[2*i], level[2*i+1])
		}
		return parents
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < len(parents); start += parallelChunk {
		start := start
		end := min(start+parallelChunk, len(parents))
		g.Go(func() error {
			for i := start; i < end; i++ {
				parents[i] = hashPair(level[2*i], level[2*i+1])
			}
			return nil
		})
	}
	// Workers never fail.
	_ = g.Wait()

	return parents
}

// Add inserts a new leaf and rebuilds the tree.
// If the last leaf is the padding duplicate of an odd leaf count,
// the new leaf takes its place, so the result equals a Build
// over the full set of leaves.
func (t *Tree) Add(element string, alreadyHashed bool) error {
	leaf := element
	if !alreadyHashed {
		leaf = Hash(element)
	}
	if t.HasLeaf(leaf) {
		return ErrDuplicateElement
	}

	leaves := t.Leaves()
	if n := len(leaves); n >= 2 && leaves[n-1] == leaves[n-2] {
		leaves = leaves[:n-1]
	}
	leaves = append(leaves, leaf)

	levels, err := t.build(leaves, true)
	if err != nil {
		return err
	}
	t.levels = levels
	return nil
}

// IsEmpty reports whether the tree has no leaves.
func (t *Tree) IsEmpty() bool {
	return len(t.levels) == 0 || len(t.levels[0]) == 0
}

// Root returns the root hash.
func (t *Tree) Root() (string, error) {
	if t.IsEmpty() {
		return "", ErrEmptyTree
	}
	return t.levels[len(t.levels)-1][0], nil
}

// Leaves returns a copy of the leaf level, padding included.
func (t *Tree) Leaves() []string {
	if t.IsEmpty() {
		return nil
	}
	return slices.Clone(t.levels[0])
}

// Levels returns a copy of every level, leaves first.
func (t *Tree) Levels() [][]string {
	levels := make([][]string, len(t.levels))
	for i, level := range t.levels {
		levels[i] = slices.Clone(level)
	}
	return levels
}

// Depth returns the number of levels above the leaves,
// which is also the length of every proof.
func (t *Tree) Depth() int {
	if t.IsEmpty() {
		return 0
	}
	return len(t.levels) - 1
}

func (t *Tree) HasLeaf(hash string) bool {
	return t.leafIndex(hash) >= 0
}

func (t *Tree) leafIndex(hash string) int {
	if t.IsEmpty() {
		return -1
	}
	return slices.Index(t.levels[0], hash)
}
