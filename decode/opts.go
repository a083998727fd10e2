package decode

// DefaultMaxDepth bounds Objc/VlLs nesting. The grammar has no depth
// field, so the limit only guards against malformed input.
const DefaultMaxDepth = 128

type decodeOpts struct {
	maxDepth int
}

type Option func(*decodeOpts)

func MaxDepth(n int) Option {
	return func(o *decodeOpts) { o.maxDepth = n }
}
