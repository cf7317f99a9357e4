package hashwires

import "github.com/hashicorp/go-multierror"

// BatchItem is one (commitment, proof, threshold) triple to verify as
// part of a batch.
type BatchItem struct {
	Commitment *Commitment
	Proof      *Proof
	Threshold  *bigNum
}

// VerifyBatch verifies every item against ctx, continuing past
// individual failures and aggregating them instead of stopping at the
// first one -- useful for a verifier auditing a large set of
// credentials where a single bad proof shouldn't hide problems with
// the rest of the batch.
func VerifyBatch(ctx *Context, items []BatchItem) Error {
	var result *multierror.Error
	for i, item := range items {
		if err := item.Commitment.Verify(ctx, item.Proof, item.Threshold); err != nil {
			result = multierror.Append(result, wrapError(err.Kind(), err, "batch item %d", i))
		}
	}
	if result == nil {
		return nil
	}
	return wrapError(VerificationFailed, result.ErrorOrNil(), "%d of %d batch items failed", len(result.Errors), len(items))
}
