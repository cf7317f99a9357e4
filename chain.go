package hashwires

import "github.com/templexxx/xor"

// derivePositionSeed computes sigma_i, the starting point of position
// i's hash chain, from the 32-byte master seed. The derivation hashes
// a single domain-tagged message per position and nothing else, so it
// is independent of any other position and of the chosen base beyond
// k's effect on how many positions exist.
func (ctx *Context) derivePositionSeed(pad *scratchPad, seed []byte, position uint32) []byte {
	msg := make([]byte, 1+4+len(seed))
	msg[0] = domainPositionSeed
	encodeUint64Into(uint64(position), msg[1:5])
	copy(msg[5:], seed)
	return ctx.hash(pad, msg)
}

// advanceChain applies the chain-step hash function `steps` times to
// cur, returning a new slice. The step function hashes only a domain
// tag plus the current value — no position index or step counter
// enters the hash — which is what makes the chain resumable: hashing
// forward from any intermediate value n more times always lands on
// the same point a direct computation of n+previous-steps would,
// regardless of how many steps produced that intermediate value. That
// property is what lets a verifier complete a partial seed using only
// the threshold's digit, without knowing the prover's starting offset.
func (ctx *Context) advanceChain(pad *scratchPad, cur []byte, steps uint16) []byte {
	orig := steps
	if ctx.cache != nil {
		if v, ok := ctx.cache.get(cur, orig); ok {
			return v
		}
	}
	out := make([]byte, ctx.L)
	copy(out, cur)
	msg := make([]byte, 1+ctx.L)
	msg[0] = domainChainStep
	for ; steps > 0; steps-- {
		copy(msg[1:], out)
		ctx.hashInto(pad, msg, out)
	}
	if ctx.cache != nil {
		ctx.cache.put(cur, orig, out)
	}
	return out
}

// plugMask derives a public, position-dependent byte string used to
// harden the plug combination step against malleability. It is a
// purely internal strengthening that changes no wire-visible value's
// meaning. It depends only on the position index and the public
// Params, so a verifier -- who never has the master seed -- can always
// reproduce it. Callers thread in the call-scoped pad rather than
// letting this allocate its own, per §5's scoped-scratch discipline.
func (ctx *Context) plugMask(pad *scratchPad, position uint32) []byte {
	msg := make([]byte, 4+2+2)
	encodeUint64Into(uint64(position), msg[0:4])
	encodeUint64Into(uint64(ctx.p.Base), msg[4:6])
	encodeUint64Into(uint64(ctx.p.MaxBits), msg[6:8])
	return ctx.hash(pad, msg)
}

// plugMasks computes the k position masks once, for callers (buildTree,
// Verify) that otherwise re-derive the same masks for every member or
// every position, despite the masks depending only on (position,
// Params) and not on the member or the seed.
func (ctx *Context) plugMasks(pad *scratchPad) [][]byte {
	masks := make([][]byte, ctx.k)
	for i := uint32(0); i < ctx.k; i++ {
		masks[i] = ctx.plugMask(pad, i)
	}
	return masks
}

// plug computes P(m) for a member whose per-position chain tips are
// chainTips (h_0 .. h_{k-1}, concatenated in position order): each tip
// is XOR-masked with its position's public mask (masks, precomputed
// once per commit/prove/verify call by plugMasks), then the whole
// concatenation is hashed once more under the plug domain tag.
func (ctx *Context) plug(pad *scratchPad, chainTips [][]byte, masks [][]byte) []byte {
	buf := make([]byte, 1+len(chainTips)*int(ctx.L))
	buf[0] = domainPlug
	for i, tip := range chainTips {
		dst := buf[1+i*int(ctx.L) : 1+(i+1)*int(ctx.L)]
		xor.BytesSameLen(dst, tip, masks[i])
	}
	return ctx.hash(pad, buf)
}

// chainTipsForMember advances every position seed by the member's
// corresponding digit, producing h_0..h_{k-1}.
func (ctx *Context) chainTipsForMember(pad *scratchPad, positionSeeds [][]byte, memberDigits []uint16) [][]byte {
	tips := make([][]byte, len(positionSeeds))
	for i, sigma := range positionSeeds {
		tips[i] = ctx.advanceChain(pad, sigma, memberDigits[i])
	}
	return tips
}

// derivePositionSeeds derives sigma_0..sigma_{k-1} for a master seed.
func (ctx *Context) derivePositionSeeds(pad *scratchPad, seed []byte) [][]byte {
	out := make([][]byte, ctx.k)
	for i := uint32(0); i < ctx.k; i++ {
		out[i] = ctx.derivePositionSeed(pad, seed, i)
	}
	return out
}
