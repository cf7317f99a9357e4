package hashwires

import "github.com/holiman/uint256"

// partitionMember is one element of S(v,b): a value together with its
// pre-computed digit vector, kept together so downstream chain/plug
// code never has to re-derive digits from the raw integer.
type partitionMember struct {
	value  *bigNum
	digits []uint16 // LSD-first, length k
}

// minimumDominatingPartition computes S(v,b): the smallest set of
// base-b numerals whose digit vectors (LSD-first, padded to k digits)
// dominate every integer in [0, v].
//
// logBase must be log2(b) for one of the supported powers-of-two
// bases, and k the padded digit width, so that e = b^s can be formed
// as a left shift by s*logBase bits.
func minimumDominatingPartition(v *bigNum, logBase uint16, k uint32) []*bigNum {
	members := []*bigNum{new(uint256.Int).Set(v)}
	seen := map[[32]byte]bool{bytes32(v): true}

	vPlusOne := new(uint256.Int).AddUint64(v, 1)

	for s := uint32(1); s < k; s++ {
		bits := uint(s) * uint(logBase)
		// e = b^s = 1 << bits; guard against e > v (no more scales).
		if bits >= 256 {
			break
		}
		e := new(uint256.Int).Lsh(uint256.NewInt(1), bits)
		if e.Cmp(v) > 0 {
			break
		}

		// Skip scales where (v+1) mod e == 0: the low block is
		// already maximal and would just re-derive v.
		mod := new(uint256.Int).Mod(vPlusOne, e)
		if mod.IsZero() {
			continue
		}

		// p = floor(v/e)*e - 1, computed via shifts since e is a
		// power of two: zero the low `bits` bits of v, then subtract 1.
		high := new(uint256.Int).Rsh(v, bits)
		high.Lsh(high, bits)
		if high.IsZero() {
			// floor(v/e) == 0 would underflow on -1; no valid p here.
			continue
		}
		p := new(uint256.Int).SubUint64(high, 1)

		key := bytes32(p)
		if !seen[key] {
			seen[key] = true
			members = append(members, p)
		}
	}

	sortBigNums(members)
	return members
}

// buildPartitionMembers runs the MDP and attaches each member's digit
// vector, the shape chain.go and proof.go both consume.
func buildPartitionMembers(v *bigNum, logBase uint16, k uint32) []partitionMember {
	raw := minimumDominatingPartition(v, logBase, k)
	out := make([]partitionMember, len(raw))
	for i, m := range raw {
		out[i] = partitionMember{value: m, digits: digits(m, uint32(logBase), k)}
	}
	return out
}

// selectMember picks the member a Prove call reveals: the
// smallest m in members with m >= t and digit-wise dominance of t's
// digits, breaking ties (there should be none once m >= v is excluded
// by t <= v, but the rule is defined lexicographically regardless) by
// picking the lexicographically smallest qualifying member. Members
// must already be sorted ascending by value, which also happens to be
// the dominance-respecting tie-break order for this construction.
func selectMember(members []partitionMember, tDigits []uint16, t *bigNum) (partitionMember, bool) {
	for _, m := range members {
		if ltBigNum(m.value, t) {
			continue
		}
		if dominates(m.digits, tDigits) {
			return m, true
		}
	}
	return partitionMember{}, false
}

func bytes32(v *bigNum) [32]byte {
	return v.Bytes32()
}

func sortBigNums(xs []*bigNum) {
	// Insertion sort: partition sets are tiny (<= 256 elements,
	// typically far fewer), so this avoids pulling in sort.Slice's
	// interface-comparison overhead for a handful of entries.
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1].Cmp(xs[j]) > 0; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
