package merkle

// ProofElement is one step of an inclusion proof: a sibling hash and
// the side it is concatenated on when climbing towards the root.
type ProofElement struct {
	Hash string
	Side Side
}

// String renders the element as a proof file line.
func (p ProofElement) String() string {
	return p.Hash + ";" + p.Side.String()
}

// GenProof generates the inclusion proof for a leaf hash,
// ordered from the leaf's sibling up to the root's children.
func (t *Tree) GenProof(hash string) ([]ProofElement, error) {
	if t.IsEmpty() {
		return nil, ErrEmptyTree
	}

	index := t.leafIndex(hash)
	if index < 0 {
		return nil, &NotFoundError{Hash: hash}
	}

	proof := make([]ProofElement, 0, len(t.levels)-1)
	for _, level := range t.levels[:len(t.levels)-1] {
		partner := index + 1
		if index%2 != 0 {
			partner = index - 1
		}
		proof = append(proof, ProofElement{
			Hash: level[partner],
			Side: sideOf(partner),
		})

		// Move up the tree
		index /= 2
	}

	return proof, nil
}

// Verify reports whether proof connects hash to the tree's root.
// The hash does not need to be a current leaf of the tree.
func (t *Tree) Verify(hash string, proof []ProofElement) (bool, error) {
	root, err := t.Root()
	if err != nil {
		return false, err
	}
	return VerifyProof(root, hash, proof), nil
}

// VerifyProof folds proof over hash and compares the result to root.
func VerifyProof(root, hash string, proof []ProofElement) bool {
	current := hash
	for _, p := range proof {
		current = combineHashes(p, current)
	}
	return current == root
}

// combineHashes computes the parent of current and its sibling p.
func combineHashes(p ProofElement, current string) string {
	if p.Side == Left {
		return hashPair(p.Hash, current)
	}
	return hashPair(current, p.Hash)
}
