package hashwires

import "testing"

func testContext(t *testing.T, base, maxBits uint16) *Context {
	ctx, err := NewContext(SHA2, 32, Params{Base: base, MaxBits: maxBits})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx
}

// TestChainResumability checks the property the correctness of the
// whole scheme depends on: advancing a chain by a+b steps equals
// advancing it by a steps then by b more.
func TestChainResumability(t *testing.T) {
	ctx := testContext(t, 16, 32)
	pad := ctx.newScratchPad()
	seed := ctx.derivePositionSeed(pad, make([]byte, 32), 0)

	direct := ctx.advanceChain(pad, seed, 9)
	partial := ctx.advanceChain(pad, seed, 4)
	resumed := ctx.advanceChain(pad, partial, 5)

	if string(direct) != string(resumed) {
		t.Fatalf("H^9(seed) != H^5(H^4(seed))")
	}
}

func TestChainZeroStepsIsIdentity(t *testing.T) {
	ctx := testContext(t, 16, 32)
	pad := ctx.newScratchPad()
	seed := ctx.derivePositionSeed(pad, make([]byte, 32), 0)
	out := ctx.advanceChain(pad, seed, 0)
	if string(out) != string(seed) {
		t.Fatal("advanceChain with 0 steps must return the seed unchanged")
	}
}

func TestPositionSeedsAreIndependent(t *testing.T) {
	ctx := testContext(t, 16, 32)
	pad := ctx.newScratchPad()
	seed := make([]byte, 32)
	s0 := ctx.derivePositionSeed(pad, seed, 0)
	s1 := ctx.derivePositionSeed(pad, seed, 1)
	if string(s0) == string(s1) {
		t.Fatal("position seeds 0 and 1 must differ")
	}
}

func TestPlugMaskIsPublic(t *testing.T) {
	ctx1 := testContext(t, 16, 32)
	ctx2 := testContext(t, 16, 32)
	pad1 := ctx1.newScratchPad()
	pad2 := ctx2.newScratchPad()
	// Two independently built contexts over the same public params
	// must derive identical masks with no access to any seed.
	if string(ctx1.plugMask(pad1, 3)) != string(ctx2.plugMask(pad2, 3)) {
		t.Fatal("plugMask must be a pure function of (position, params)")
	}
}

func TestPlugDiffersFromDirectHash(t *testing.T) {
	ctx := testContext(t, 16, 32)
	pad := ctx.newScratchPad()
	seeds := ctx.derivePositionSeeds(pad, make([]byte, 32))
	tips := ctx.chainTipsForMember(pad, seeds, make([]uint16, ctx.k))
	plug := ctx.plug(pad, tips, ctx.plugMasks(pad))
	if len(plug) != int(ctx.L) {
		t.Fatalf("plug length = %d, want %d", len(plug), ctx.L)
	}
	var concat []byte
	for _, tip := range tips {
		concat = append(concat, tip...)
	}
	if string(plug) == string(ctx.hash(pad, concat)) {
		t.Fatal("plug must differ from a plain hash of the concatenated tips")
	}
}
