package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenProofKnownTree(t *testing.T) {
	t.Parallel()

	tree, err := Build([]string{"a", "b", "c", "d"}, false)
	require.NoError(t, err)

	proof, err := tree.GenProof("2e7d2c03a9507ae265ecf5b5356885a53393a2029d241394997265a1a25aefc6")
	require.NoError(t, err)
	assert.Equal(t, []ProofElement{
		{Hash: "18ac3e7343f016890c510e93f935261169d9e3f565436429830faf0934f4f8e4", Side: Right},
		{Hash: "62af5c3cb8da3e4f25061e829ebeea5c7513c54949115b1acc225930a90154da", Side: Left},
	}, proof)

	proof, err = tree.GenProof(Hash("a"))
	require.NoError(t, err)
	assert.Equal(t, []ProofElement{
		{Hash: Hash("b"), Side: Right},
		{Hash: Hash(Hash("c") + Hash("d")), Side: Right},
	}, proof)
}

func TestGenProofNotFound(t *testing.T) {
	t.Parallel()

	tree, err := Build([]string{"a", "b"}, false)
	require.NoError(t, err)

	_, err = tree.GenProof(Hash("z"))
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, Hash("z"), nf.Hash)

	// Internal nodes are not leaves.
	root, err := tree.Root()
	require.NoError(t, err)
	_, err = tree.GenProof(root)
	assert.ErrorAs(t, err, &nf)
}

func TestProofRoundTrip(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 40; n++ {
		tree, err := Build(elements(n), false)
		require.NoError(t, err)

		for _, leaf := range tree.Leaves() {
			proof, err := tree.GenProof(leaf)
			require.NoError(t, err)
			assert.Len(t, proof, tree.Depth())

			ok, err := tree.Verify(leaf, proof)
			require.NoError(t, err)
			assert.True(t, ok, "n=%d leaf=%s", n, leaf)
		}
	}
}

func TestVerifyTamperedProof(t *testing.T) {
	t.Parallel()

	tree, err := Build(elements(11), false)
	require.NoError(t, err)

	leaf := Hash("element-4")
	proof, err := tree.GenProof(leaf)
	require.NoError(t, err)

	for i := range proof {
		for pos := 0; pos < len(proof[i].Hash); pos += 7 {
			tampered := append([]ProofElement(nil), proof...)
			b := []byte(tampered[i].Hash)
			if b[pos] == '0' {
				b[pos] = '1'
			} else {
				b[pos] = '0'
			}
			tampered[i].Hash = string(b)

			ok, err := tree.Verify(leaf, tampered)
			require.NoError(t, err)
			assert.False(t, ok, "element=%d pos=%d", i, pos)
		}

		flipped := append([]ProofElement(nil), proof...)
		flipped[i].Side = 1 - flipped[i].Side
		ok, err := tree.Verify(leaf, flipped)
		require.NoError(t, err)
		assert.False(t, ok, "side flip element=%d", i)
	}
}

func TestVerifyWrongLeaf(t *testing.T) {
	t.Parallel()

	tree, err := Build([]string{"a", "b", "c", "d"}, false)
	require.NoError(t, err)

	proof, err := tree.GenProof(Hash("a"))
	require.NoError(t, err)

	ok, err := tree.Verify(Hash("b"), proof)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = tree.Verify(Hash("a"), proof[:1])
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyIsIdempotent(t *testing.T) {
	t.Parallel()

	tree, err := Build([]string{"a", "b", "c"}, false)
	require.NoError(t, err)

	proof, err := tree.GenProof(Hash("c"))
	require.NoError(t, err)
	before := tree.Levels()

	for i := 0; i < 3; i++ {
		ok, err := tree.Verify(Hash("c"), proof)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, before, tree.Levels())
}

func TestVerifyProofWithoutTree(t *testing.T) {
	t.Parallel()

	tree, err := Build([]string{"a", "b", "c", "d"}, false)
	require.NoError(t, err)
	proof, err := tree.GenProof(Hash("d"))
	require.NoError(t, err)

	assert.True(t, VerifyProof(rootABCD, Hash("d"), proof))
	assert.False(t, VerifyProof(rootABCDEFGH, Hash("d"), proof))
}

func TestProofElementString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc;left", ProofElement{Hash: "abc", Side: Left}.String())
	assert.Equal(t, "abc;right", ProofElement{Hash: "abc", Side: Right}.String())
}
