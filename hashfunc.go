//go:generate enumer -type HashFunc

package hashwires

// Hash function selection for the core: a capability set of
// {new, update, finalize} plus a fixed output size L. This module
// needs no RFC-fixed instance registry, just the three constructions
// below.

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/sha3"
)

// HashFunc names the collision-resistant hash construction used to
// build position seeds, hash chains and plugs.
type HashFunc uint8

const (
	// SHA2 uses SHA-256 for L<=32 and SHA-512 for L=64.
	SHA2 HashFunc = iota

	// SHAKE uses SHAKE-128 for L<=32 and SHAKE-256 for L=64.
	SHAKE

	// SHAKE256 always uses SHAKE-256, regardless of L.
	SHAKE256
)

// supportedHashLengths are the output sizes (in bytes) this module
// knows how to drive for each HashFunc. Only L's consistency within a
// single call is strictly required; we fix a small supported set of
// 16, 32 and 64 bytes rather than accept an arbitrary length.
var supportedHashLengths = map[uint32]bool{16: true, 32: true, 64: true}

// scratchPad holds hash state reused across the calls that make up a
// single commit/prove/verify invocation, released when that call
// returns.
type scratchPad struct {
	shake sha3.ShakeHash
}

func (ctx *Context) newScratchPad() *scratchPad {
	pad := &scratchPad{}
	switch ctx.Func {
	case SHAKE:
		if ctx.L <= 32 {
			pad.shake = sha3.NewShake128()
		} else {
			pad.shake = sha3.NewShake256()
		}
	case SHAKE256:
		pad.shake = sha3.NewShake256()
	}
	return pad
}

// hashInto computes H(in) and writes it to out, which must be
// ctx.L bytes long.
func (ctx *Context) hashInto(pad *scratchPad, in, out []byte) {
	if ctx.Func == SHA2 {
		switch ctx.L {
		case 16:
			ret := sha256.Sum256(in)
			copy(out, ret[:16])
		case 32:
			ret := sha256.Sum256(in)
			copy(out, ret[:])
		case 64:
			ret := sha512.Sum512(in)
			copy(out, ret[:])
		}
		return
	}
	pad.shake.Reset()
	pad.shake.Write(in)
	_, _ = pad.shake.Read(out[:ctx.L])
}

// hash is a convenience allocating its own output buffer.
func (ctx *Context) hash(pad *scratchPad, in []byte) []byte {
	out := make([]byte, ctx.L)
	ctx.hashInto(pad, in, out)
	return out
}
