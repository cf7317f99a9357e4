package hashwires

import "encoding/binary"

// Domain-separation tags. Each layer of the construction hashes a
// distinct one-byte prefix so that a position seed can never be
// confused with a chain link or a plug, even if an attacker controls
// the master seed. See DESIGN.md's "Open Question decisions" for why
// these particular values were picked.
const (
	domainPositionSeed = 0x01
	domainChainStep    = 0x02
	domainPlug         = 0x03
)

// encodeUint64Into writes x into out in big endian, using all of out's
// length (zero-padded on the left).
func encodeUint64Into(x uint64, out []byte) {
	if len(out)%8 == 0 {
		binary.BigEndian.PutUint64(out[len(out)-8:], x)
		for i := 0; i < len(out)-8; i += 8 {
			binary.BigEndian.PutUint64(out[i:i+8], 0)
		}
		return
	}
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = byte(x)
		x >>= 8
	}
}

// encodeUint64 is encodeUint64Into but allocating its own buffer.
func encodeUint64(x uint64, outLen int) []byte {
	ret := make([]byte, outLen)
	encodeUint64Into(x, ret)
	return ret
}
