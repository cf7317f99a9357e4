package hashwires

import "github.com/holiman/uint256"

// bigNum is the arbitrary-precision non-negative integer type used
// for values, partition members and scales. A fixed-width 256-bit
// unsigned integer suffices since the module caps bit widths at 256.
type bigNum = uint256.Int

func bigNumFromUint64(x uint64) *bigNum {
	return new(uint256.Int).SetUint64(x)
}

// digits returns v's base-b digits, LSD first, padded (with leading
// zero digits, i.e. at the high end of the slice) to exactly k
// entries. Base must be a power of two already validated by
// Params.validate (2, 4, 16 or 256), so digit extraction is a shift
// and mask rather than a division.
func digits(v *bigNum, logBase, k uint32) []uint16 {
	out := make([]uint16, k)
	mask := uint64((1 << logBase) - 1)
	tmp := new(uint256.Int).Set(v)
	shiftAmt := uint(logBase)
	for i := uint32(0); i < k; i++ {
		out[i] = uint16(tmp.Uint64() & mask)
		tmp.Rsh(tmp, shiftAmt)
	}
	return out
}

// dominates reports whether a's digit vector is component-wise >= b's,
// i.e. a digit-dominates b.
func dominates(a, b []uint16) bool {
	for i := range a {
		if a[i] < b[i] {
			return false
		}
	}
	return true
}

func ltBigNum(a, b *bigNum) bool { return a.Cmp(b) < 0 }
func gtBigNum(a, b *bigNum) bool { return a.Cmp(b) > 0 }
