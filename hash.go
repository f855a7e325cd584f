package merkle

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

var hashPool = sync.Pool{
	New: func() interface{} {
		return sha256.New()
	},
}

func getHash() hash.Hash {
	return hashPool.Get().(hash.Hash)
}

func putHash(h hash.Hash) {
	h.Reset()
	hashPool.Put(h)
}

// Hash returns the lowercase hex encoding of SHA-256 over value.
//
// Leaves and internal nodes are hashed the same way, internal nodes
// over the plain concatenation of their children's hex digests.
// Nothing separates the two domains, so a raw element equal to
// the concatenation of two digests hashes like an internal node.
func Hash(value string) string {
	h := getHash()
	h.Write([]byte(value))
	sum := h.Sum(nil)
	putHash(h)
	return hex.EncodeToString(sum)
}

func hashPair(left, right string) string {
	h := getHash()
	h.Write([]byte(left))
	h.Write([]byte(right))
	sum := h.Sum(nil)
	putHash(h)
	return hex.EncodeToString(sum)
}
