package hashwires

import (
	"bytes"
	"testing"
)

func fixedSeed(b byte) []byte {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = b
	}
	return seed
}

type scenario struct {
	name        string
	base        uint16
	maxBits     uint16
	value       uint64
	threshold   uint64
	wantOK      bool
	wantErrKind Kind
}

// TestScenarios covers five concrete end-to-end gen/commit/prove/verify
// cases (a base-10 variant is out of this module's supported
// power-of-two base set and is not included).
func TestScenarios(t *testing.T) {
	cases := []scenario{
		{"b4n4v3t2", 4, 4, 3, 2, true, 0},
		{"b16n32DEADtoDEA0", 16, 32, 0xDEAD, 0xDEA0, true, 0},
		{"b256n64twoPow63", 256, 64, 1 << 63, 1 << 63, true, 0},
		{"b16n32DEADtoDEAE", 16, 32, 0xDEAD, 0xDEAE, false, ThresholdExceedsValue},
		{"b2n8v181t128", 2, 8, 181, 128, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx, err := NewContext(SHA2, 32, Params{Base: c.base, MaxBits: c.maxBits})
			if err != nil {
				t.Fatalf("NewContext: %v", err)
			}
			secret, serr := Gen(fixedSeed(0x42), bigNumFromUint64(c.value))
			if serr != nil {
				t.Fatalf("Gen: %v", serr)
			}
			commitment, cerr := secret.Commit(ctx)
			if cerr != nil {
				t.Fatalf("Commit: %v", cerr)
			}
			threshold := bigNumFromUint64(c.threshold)
			proof, perr := secret.Prove(ctx, threshold)
			if !c.wantOK {
				if perr == nil {
					t.Fatal("expected Prove to fail")
				}
				if perr.Kind() != c.wantErrKind {
					t.Fatalf("Prove error kind = %v, want %v", perr.Kind(), c.wantErrKind)
				}
				return
			}
			if perr != nil {
				t.Fatalf("Prove: %v", perr)
			}
			if verr := commitment.Verify(ctx, proof, threshold); verr != nil {
				t.Fatalf("Verify: %v", verr)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	ctx, _ := NewContext(SHA2, 32, Params{Base: 16, MaxBits: 32})
	seed := fixedSeed(0x11)
	v := bigNumFromUint64(0xABCD)
	t_ := bigNumFromUint64(0xAB00)

	s1, _ := Gen(seed, v)
	s2, _ := Gen(seed, v)

	c1, _ := s1.Commit(ctx)
	c2, _ := s2.Commit(ctx)
	if !bytes.Equal(c1.Root(), c2.Root()) {
		t.Fatal("Commit is not deterministic")
	}

	p1, _ := s1.Prove(ctx, t_)
	p2, _ := s2.Prove(ctx, t_)
	b1, _ := p1.MarshalBinary(ctx.L)
	b2, _ := p2.MarshalBinary(ctx.L)
	if !bytes.Equal(b1, b2) {
		t.Fatal("Prove is not deterministic")
	}
}

func TestSerializationRoundTrip(t *testing.T) {
	ctx, _ := NewContext(SHA2, 32, Params{Base: 16, MaxBits: 32})
	secret, _ := Gen(fixedSeed(0x07), bigNumFromUint64(0xDEAD))
	commitment, _ := secret.Commit(ctx)
	proof, _ := secret.Prove(ctx, bigNumFromUint64(0xDEA0))

	cBytes, cerr := commitment.MarshalBinary()
	if cerr != nil {
		t.Fatalf("Commitment.MarshalBinary: %v", cerr)
	}
	c2, c2err := UnmarshalCommitment(cBytes, ctx.L)
	if c2err != nil {
		t.Fatalf("UnmarshalCommitment: %v", c2err)
	}
	if !bytes.Equal(c2.Root(), commitment.Root()) || c2.Params() != commitment.Params() {
		t.Fatal("commitment round-trip mismatch")
	}

	pBytes, perr := proof.MarshalBinary(ctx.L)
	if perr != nil {
		t.Fatalf("Proof.MarshalBinary: %v", perr)
	}
	p2, p2err := UnmarshalProof(pBytes, ctx.K(), ctx.L)
	if p2err != nil {
		t.Fatalf("UnmarshalProof: %v", p2err)
	}
	if verr := c2.Verify(ctx, p2, bigNumFromUint64(0xDEA0)); verr != nil {
		t.Fatalf("Verify after round-trip: %v", verr)
	}
}

func TestRejectsForgedProof(t *testing.T) {
	ctx, _ := NewContext(SHA2, 32, Params{Base: 16, MaxBits: 32})
	secret, _ := Gen(fixedSeed(0x07), bigNumFromUint64(0xDEAD))
	commitment, _ := secret.Commit(ctx)
	threshold := bigNumFromUint64(0xDEA0)
	proof, _ := secret.Prove(ctx, threshold)

	pBytes, _ := proof.MarshalBinary(ctx.L)
	pBytes[2] ^= 0xFF // flip a byte inside the first partial seed
	tampered, terr := UnmarshalProof(pBytes, ctx.K(), ctx.L)
	if terr != nil {
		t.Fatalf("UnmarshalProof: %v", terr)
	}
	if verr := commitment.Verify(ctx, tampered, threshold); verr == nil {
		t.Fatal("Verify accepted a tampered proof")
	}
}

func TestThresholdExceedsValue(t *testing.T) {
	ctx, _ := NewContext(SHA2, 32, Params{Base: 16, MaxBits: 32})
	secret, _ := Gen(fixedSeed(0x01), bigNumFromUint64(10))
	_, err := secret.Prove(ctx, bigNumFromUint64(11))
	if err == nil || err.Kind() != ThresholdExceedsValue {
		t.Fatalf("expected ThresholdExceedsValue, got %v", err)
	}
}

func TestValueExceedsMaxBits(t *testing.T) {
	ctx, _ := NewContext(SHA2, 32, Params{Base: 16, MaxBits: 8})
	secret, _ := Gen(fixedSeed(0x01), bigNumFromUint64(256)) // needs 9 bits
	_, err := secret.Commit(ctx)
	if err == nil || err.Kind() != ValueExceedsMaxBits {
		t.Fatalf("expected ValueExceedsMaxBits, got %v", err)
	}
}

func TestInvalidSeedLength(t *testing.T) {
	_, err := Gen(make([]byte, 16), bigNumFromUint64(1))
	if err == nil || err.Kind() != InvalidSeedLength {
		t.Fatalf("expected InvalidSeedLength, got %v", err)
	}
}

func TestBoundaryValues(t *testing.T) {
	ctx, _ := NewContext(SHA2, 32, Params{Base: 2, MaxBits: 8})
	// v = b^k - 1 = 255, t = 0 and t = v.
	secret, _ := Gen(fixedSeed(0x03), bigNumFromUint64(255))
	commitment, _ := secret.Commit(ctx)
	for _, th := range []uint64{0, 255, 254} {
		proof, err := secret.Prove(ctx, bigNumFromUint64(th))
		if err != nil {
			t.Fatalf("Prove(t=%d): %v", th, err)
		}
		if verr := commitment.Verify(ctx, proof, bigNumFromUint64(th)); verr != nil {
			t.Fatalf("Verify(t=%d): %v", th, verr)
		}
	}
}
