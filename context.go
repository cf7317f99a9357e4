package hashwires

// Context bundles the hash construction and the public parameters
// that a Secret/Commitment/Proof are built against.
type Context struct {
	Func  HashFunc
	L     uint32 // hash output length in bytes
	p     Params
	k     uint32 // number of base-p.Base digits; == p.K()
	cache *chainCache
}

// WithCache returns a copy of ctx that memoizes advanceChain results
// across the calls it's used in, worthwhile when the same Context
// drives many Prove calls against the same Secret.
func (ctx *Context) WithCache() *Context {
	cp := *ctx
	cp.cache = newChainCache()
	return &cp
}

// NewContext validates (hf, l, params) and builds a Context.
func NewContext(hf HashFunc, l uint32, params Params) (*Context, Error) {
	if !supportedHashLengths[l] {
		return nil, newError(InvalidBitWidth, "unsupported hash output length %d", l)
	}
	if !hf.IsAHashFunc() {
		return nil, newError(UnsupportedBase, "unknown hash function %d", hf)
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &Context{Func: hf, L: l, p: params, k: params.K()}, nil
}

// Params returns the parameters this Context was built for.
func (ctx *Context) Params() Params { return ctx.p }

// K returns the number of digit positions (a cached Params.K()).
func (ctx *Context) K() uint32 { return ctx.k }

// checkFitsInK reports whether v fits within the Context's bit width,
// i.e. v < p.Base^k. Used for both the ValueExceedsMaxBits and
// ThresholdTooLarge checks, which share this exact bound.
func (ctx *Context) checkFitsInK(v *bigNum) bool {
	return v.BitLen() <= int(ctx.p.MaxBits)
}
