package hashwires

import "github.com/novifinancial/hashwires/internal/smt"

// Secret holds the issuer-side master seed and the committed value.
// It is immutable once built and owns its own copy of the seed.
type Secret struct {
	seed [32]byte
	v    *bigNum
}

// Gen builds a Secret from a 32-byte master seed and a non-negative
// value. The seed is cloned; no hashing happens yet.
func Gen(seed []byte, v *bigNum) (*Secret, Error) {
	if len(seed) != 32 {
		return nil, newError(InvalidSeedLength, "master seed must be 32 bytes, got %d", len(seed))
	}
	s := &Secret{v: new(bigNum).Set(v)}
	copy(s.seed[:], seed)
	return s, nil
}

// GenFromInt64 is a convenience over Gen for callers with a plain
// signed value, surfacing InvalidValue for negative inputs -- bigNum
// itself is always non-negative, so that check has to happen before
// the conversion.
func GenFromInt64(seed []byte, v int64) (*Secret, Error) {
	if v < 0 {
		return nil, newError(InvalidValue, "value must be non-negative, got %d", v)
	}
	return Gen(seed, bigNumFromUint64(uint64(v)))
}

// Zeroize overwrites the master seed with zeros as a best-effort
// scrub. After calling it, the Secret must not be used again.
func (s *Secret) Zeroize() {
	for i := range s.seed {
		s.seed[i] = 0
	}
}

// smtHash adapts Context's hash into the smt package's HashFunc shape,
// reusing one scratch pad for every call the resulting closure makes.
func (ctx *Context) smtHash() smt.HashFunc {
	pad := ctx.newScratchPad()
	return func(in []byte) []byte { return ctx.hash(pad, in) }
}

// buildTree derives every partition member's plug and inserts them
// all into a fresh sparse Merkle tree, returning the tree together
// with the plug that corresponds to each member (same order as
// members), so callers that need a specific member's path don't have
// to recompute plugs a second time.
func (ctx *Context) buildTree(pad *scratchPad, seed []byte, members []partitionMember) (*smt.Tree, [][]byte) {
	positionSeeds := ctx.derivePositionSeeds(pad, seed)
	masks := ctx.plugMasks(pad)
	plugs := make([][]byte, len(members))
	for i, m := range members {
		tips := ctx.chainTipsForMember(pad, positionSeeds, m.digits)
		plugs[i] = ctx.plug(pad, tips, masks)
	}
	tree := smt.New(ctx.smtHash(), int(ctx.L), plugs)
	return tree, plugs
}

// Commit computes S(v,b), the plug of every partition member, and the
// sparse Merkle tree over those plugs.
func (s *Secret) Commit(ctx *Context) (*Commitment, Error) {
	if err := ctx.checkValueFits(s.v); err != nil {
		return nil, err
	}
	pad := ctx.newScratchPad()
	members := buildPartitionMembers(s.v, ctx.p.LogBase(), ctx.k)
	tree, _ := ctx.buildTree(pad, s.seed[:], members)
	root := make([]byte, ctx.L)
	copy(root, tree.Root())
	return &Commitment{root: root, params: ctx.p}, nil
}

// checkValueFits validates v < b^k (ValueExceedsMaxBits), the one
// check Commit and Prove share verbatim.
func (ctx *Context) checkValueFits(v *bigNum) Error {
	if !ctx.checkFitsInK(v) {
		return newError(ValueExceedsMaxBits, "value does not fit in %d bits", ctx.p.MaxBits)
	}
	return nil
}

// Prove computes a Proof that v >= t without revealing v.
func (s *Secret) Prove(ctx *Context, t *bigNum) (*Proof, Error) {
	if err := ctx.checkValueFits(s.v); err != nil {
		return nil, err
	}
	if gtBigNum(t, s.v) {
		return nil, newError(ThresholdExceedsValue, "threshold exceeds committed value")
	}
	if !ctx.checkFitsInK(t) {
		return nil, newError(ThresholdTooLarge, "threshold does not fit in %d bits", ctx.p.MaxBits)
	}

	pad := ctx.newScratchPad()
	members := buildPartitionMembers(s.v, ctx.p.LogBase(), ctx.k)
	tDigits := digits(t, uint32(ctx.p.LogBase()), ctx.k)

	chosen, ok := selectMember(members, tDigits, t)
	if !ok {
		return nil, newError(VerificationFailed, "no partition member dominates threshold")
	}

	tree, plugs := ctx.buildTree(pad, s.seed[:], members)
	var chosenPlug []byte
	for i, m := range members {
		if m.value.Eq(chosen.value) {
			chosenPlug = plugs[i]
			break
		}
	}
	path := tree.Prove(chosenPlug)

	positionSeeds := ctx.derivePositionSeeds(pad, s.seed[:])
	partialSeeds := make([][]byte, ctx.k)
	for i := uint32(0); i < ctx.k; i++ {
		steps := chosen.digits[i] - tDigits[i] // >= 0 by selectMember's dominance check
		partialSeeds[i] = ctx.advanceChain(pad, positionSeeds[i], steps)
	}

	return &Proof{partialSeeds: partialSeeds, smtPath: marshalPath(path)}, nil
}
