package smt

import (
	"bytes"
	"crypto/sha256"
	"testing"
)

func hashFn(in []byte) []byte {
	sum := sha256.Sum256(in)
	return sum[:]
}

func key(b byte) []byte {
	k := make([]byte, 32)
	k[0] = b
	k[31] = b
	return k
}

func TestProveVerifyRoundTrip(t *testing.T) {
	keys := [][]byte{key(1), key(2), key(3), key(42)}
	tree := New(hashFn, 32, keys)
	root := tree.Root()

	for _, k := range keys {
		path := tree.Prove(k)
		if !Verify(hashFn, 32, root, k, path) {
			t.Fatalf("inclusion proof for key %v failed to verify", k)
		}
	}
}

func TestVerifyRejectsWrongRoot(t *testing.T) {
	keys := [][]byte{key(1), key(2)}
	tree := New(hashFn, 32, keys)
	path := tree.Prove(key(1))

	badRoot := make([]byte, 32)
	copy(badRoot, tree.Root())
	badRoot[0] ^= 0xFF

	if Verify(hashFn, 32, badRoot, key(1), path) {
		t.Fatal("verify accepted a proof against the wrong root")
	}
}

func TestVerifyRejectsTamperedPath(t *testing.T) {
	keys := [][]byte{key(1), key(2), key(3)}
	tree := New(hashFn, 32, keys)
	root := tree.Root()
	path := tree.Prove(key(2))
	path.Siblings[0] = append([]byte(nil), path.Siblings[0]...)
	path.Siblings[0][0] ^= 0xFF

	if Verify(hashFn, 32, root, key(2), path) {
		t.Fatal("verify accepted a tampered path")
	}
}

func TestDeterministicRoot(t *testing.T) {
	keys := [][]byte{key(5), key(9), key(1)}
	reordered := [][]byte{key(1), key(9), key(5)}

	r1 := New(hashFn, 32, keys).Root()
	r2 := New(hashFn, 32, reordered).Root()
	if !bytes.Equal(r1, r2) {
		t.Fatal("root depends on insertion order")
	}
}

func TestEmptyTreeIsDefaultDigest(t *testing.T) {
	tree := New(hashFn, 32, nil)
	expected := computeDefaultDigests(hashFn, 8*32)[8*32]
	if !bytes.Equal(tree.Root(), expected) {
		t.Fatal("empty tree root is not the top default digest")
	}
}
