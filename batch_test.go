package hashwires

import "testing"

func TestVerifyBatchAllGood(t *testing.T) {
	ctx, _ := NewContext(SHA2, 32, Params{Base: 16, MaxBits: 32})
	var items []BatchItem
	for i, v := range []uint64{0xDEAD, 0xBEEF, 0x1234} {
		secret, _ := Gen(fixedSeed(byte(i+1)), bigNumFromUint64(v))
		commitment, _ := secret.Commit(ctx)
		threshold := bigNumFromUint64(v - 1)
		proof, err := secret.Prove(ctx, threshold)
		if err != nil {
			t.Fatalf("Prove: %v", err)
		}
		items = append(items, BatchItem{Commitment: commitment, Proof: proof, Threshold: threshold})
	}
	if err := VerifyBatch(ctx, items); err != nil {
		t.Fatalf("VerifyBatch: %v", err)
	}
}

func TestVerifyBatchReportsEachFailure(t *testing.T) {
	ctx, _ := NewContext(SHA2, 32, Params{Base: 16, MaxBits: 32})
	secret, _ := Gen(fixedSeed(0x09), bigNumFromUint64(0xDEAD))
	commitment, _ := secret.Commit(ctx)
	goodThreshold := bigNumFromUint64(0xDEA0)
	goodProof, _ := secret.Prove(ctx, goodThreshold)

	badThreshold := bigNumFromUint64(0xDEA0)
	badProofBytes, _ := goodProof.MarshalBinary(ctx.L)
	badProofBytes[2] ^= 0xFF
	badProof, err := UnmarshalProof(badProofBytes, ctx.K(), ctx.L)
	if err != nil {
		t.Fatalf("UnmarshalProof: %v", err)
	}

	items := []BatchItem{
		{Commitment: commitment, Proof: goodProof, Threshold: goodThreshold},
		{Commitment: commitment, Proof: badProof, Threshold: badThreshold},
	}

	verr := VerifyBatch(ctx, items)
	if verr == nil {
		t.Fatal("expected VerifyBatch to report the tampered proof")
	}
}
