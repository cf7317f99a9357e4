package hashwires

import "github.com/novifinancial/hashwires/internal/smt"

// Proof is the output of Secret.Prove: one partial seed per digit
// position plus an opaque sparse-Merkle-tree inclusion path for the
// chosen partition member's plug. The threshold is deliberately not
// part of this struct -- it is supplied out of band to
// Commitment.Verify.
type Proof struct {
	partialSeeds [][]byte
	smtPath      []byte
}

// K returns the number of partial seeds (one per digit position).
func (p *Proof) K() uint32 { return uint32(len(p.partialSeeds)) }

// MarshalBinary renders p as:
// k (2, BE) || partial_seeds (k*L) || smt_path_len (2, BE) || smt_path.
func (p *Proof) MarshalBinary(l uint32) ([]byte, Error) {
	k := len(p.partialSeeds)
	for _, seed := range p.partialSeeds {
		if uint32(len(seed)) != l {
			return nil, newError(MalformedProof, "partial seed has wrong length")
		}
	}
	if k > 0xFFFF || len(p.smtPath) > 0xFFFF {
		return nil, newError(MalformedProof, "proof too large to encode")
	}
	out := make([]byte, 2+k*int(l)+2+len(p.smtPath))
	encodeUint64Into(uint64(k), out[0:2])
	off := 2
	for _, seed := range p.partialSeeds {
		copy(out[off:off+int(l)], seed)
		off += int(l)
	}
	encodeUint64Into(uint64(len(p.smtPath)), out[off:off+2])
	off += 2
	copy(out[off:], p.smtPath)
	return out, nil
}

// UnmarshalProof parses the wire format produced by MarshalBinary,
// rejecting anything whose digit count doesn't match expectedK: k must
// equal the expected n / log2(b) for the companion commitment, else
// MalformedProof.
func UnmarshalProof(data []byte, expectedK uint32, l uint32) (*Proof, Error) {
	if len(data) < 2 {
		return nil, newError(MalformedProof, "proof too short")
	}
	k := uint32(beUint16(data[0:2]))
	if k != expectedK {
		return nil, newError(MalformedProof, "proof has %d digit positions, expected %d", k, expectedK)
	}
	need := 2 + int(k)*int(l) + 2
	if len(data) < need {
		return nil, newError(MalformedProof, "proof truncated")
	}
	seeds := make([][]byte, k)
	off := 2
	for i := uint32(0); i < k; i++ {
		seed := make([]byte, l)
		copy(seed, data[off:off+int(l)])
		seeds[i] = seed
		off += int(l)
	}
	pathLen := int(beUint16(data[off : off+2]))
	off += 2
	if len(data) != off+pathLen {
		return nil, newError(MalformedProof, "smt path length mismatch")
	}
	path := make([]byte, pathLen)
	copy(path, data[off:])
	return &Proof{partialSeeds: seeds, smtPath: path}, nil
}

func beUint16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

// marshalPath flattens a sparse Merkle path into the opaque byte blob
// the wire format treats as the smt_path field: each sibling digest,
// in order, concatenated.
func marshalPath(path *smt.Path) []byte {
	if len(path.Siblings) == 0 {
		return nil
	}
	l := len(path.Siblings[0])
	out := make([]byte, len(path.Siblings)*l)
	for i, sib := range path.Siblings {
		copy(out[i*l:(i+1)*l], sib)
	}
	return out
}

// unmarshalPath is marshalPath's inverse, needing only the hash
// output length l to recover the sibling boundaries.
func unmarshalPath(raw []byte, l int) (*smt.Path, Error) {
	if l == 0 || len(raw)%l != 0 {
		return nil, newError(MalformedProof, "smt path is not a multiple of the hash size")
	}
	n := len(raw) / l
	siblings := make([][]byte, n)
	for i := 0; i < n; i++ {
		sib := make([]byte, l)
		copy(sib, raw[i*l:(i+1)*l])
		siblings[i] = sib
	}
	return &smt.Path{Siblings: siblings}, nil
}
