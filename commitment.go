package hashwires

import "github.com/novifinancial/hashwires/internal/smt"

// Commitment is the issuer-published binding to a secret value: a
// sparse-Merkle-tree root over every partition member's plug, plus
// the public parameters the tree was built under.
type Commitment struct {
	root   []byte
	params Params
}

// Params returns the parameters this commitment was built under.
func (c *Commitment) Params() Params { return c.params }

// Root returns the raw sparse-Merkle-tree root bytes.
func (c *Commitment) Root() []byte { return c.root }

// MarshalBinary renders c as:
// root_bytes(L) || base_tag(1) || max_bits(2, BE).
func (c *Commitment) MarshalBinary() ([]byte, Error) {
	tag, err := c.params.baseTagByte()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(c.root)+3)
	copy(out, c.root)
	out[len(c.root)] = tag
	encodeUint64Into(uint64(c.params.MaxBits), out[len(c.root)+1:])
	return out, nil
}

// UnmarshalCommitment parses the wire format produced by
// MarshalBinary, given the expected hash output length l.
func UnmarshalCommitment(data []byte, l uint32) (*Commitment, Error) {
	if len(data) != int(l)+3 {
		return nil, newError(MalformedCommitment, "commitment has wrong length")
	}
	base, ok := tagToBase[data[l]]
	if !ok {
		return nil, newError(UnsupportedBase, "unknown base tag %d", data[l])
	}
	maxBits := uint16(beUint16(data[l+1 : l+3]))
	params := Params{Base: base, MaxBits: maxBits}
	if err := params.validate(); err != nil {
		return nil, err
	}
	root := make([]byte, l)
	copy(root, data[:l])
	return &Commitment{root: root, params: params}, nil
}

// Verify checks proof against c for threshold t. It never learns
// which partition member the prover used -- only that
// some committed plug equals the candidate plug recomputed from the
// proof and t's digits.
func (c *Commitment) Verify(ctx *Context, proof *Proof, t *bigNum) Error {
	if ctx.p != c.params {
		return newError(MalformedProof, "proof's parameters do not match commitment")
	}
	if !ctx.checkFitsInK(t) {
		return newError(ThresholdTooLarge, "threshold does not fit in %d bits", ctx.p.MaxBits)
	}
	if proof.K() != ctx.k {
		return newError(MalformedProof, "proof has %d digit positions, expected %d", proof.K(), ctx.k)
	}

	pad := ctx.newScratchPad()
	tDigits := digits(t, uint32(ctx.p.LogBase()), ctx.k)

	tips := make([][]byte, ctx.k)
	for i := uint32(0); i < ctx.k; i++ {
		tips[i] = ctx.advanceChain(pad, proof.partialSeeds[i], tDigits[i])
	}
	candidatePlug := ctx.plug(pad, tips, ctx.plugMasks(pad))

	path, err := unmarshalPath(proof.smtPath, int(ctx.L))
	if err != nil {
		return err
	}
	if len(path.Siblings) != 8*int(ctx.L) {
		return newError(MalformedProof, "smt path has wrong depth")
	}

	if !smt.Verify(ctx.smtHash(), int(ctx.L), c.root, candidatePlug, path) {
		return newError(VerificationFailed, "sparse Merkle tree inclusion check failed")
	}
	return nil
}
