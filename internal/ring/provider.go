package ring

// Provider generates the items that conceptually precede and follow a given
// item. Implementations must be pure and total: the controller may call
// Before/After any number of times, in any order, and assumes no side
// effects. Consistency (After(Before(x)) == x) is an implementer
// obligation, not something the controller checks at runtime.
type Provider[T any] interface {
	Before(item T) T
	After(item T) T
}

// Funcs adapts a pair of functions into a Provider.
func Funcs[T any](before, after func(T) T) Provider[T] {
	return funcProvider[T]{before: before, after: after}
}

type funcProvider[T any] struct {
	before func(T) T
	after  func(T) T
}

func (p funcProvider[T]) Before(item T) T { return p.before(item) }
func (p funcProvider[T]) After(item T) T  { return p.after(item) }

const defaultCacheSize = 256

// Cached wraps a provider with a memoizing lookup table so repeated
// neighbor generation does not re-run the underlying provider. Generation
// stays synchronous; the cache sits in front of the Provider interface, not
// inside the controller. When the table fills up it is dropped wholesale,
// since entries are cheap to regenerate. size <= 0 selects a default.
func Cached[T comparable](p Provider[T], size int) Provider[T] {
	if size <= 0 {
		size = defaultCacheSize
	}
	return &cachedProvider[T]{
		inner:  p,
		max:    size,
		before: make(map[T]T, size),
		after:  make(map[T]T, size),
	}
}

type cachedProvider[T comparable] struct {
	inner  Provider[T]
	max    int
	before map[T]T
	after  map[T]T
}

func (c *cachedProvider[T]) Before(item T) T {
	if v, ok := c.before[item]; ok {
		return v
	}
	v := c.inner.Before(item)
	if len(c.before) >= c.max {
		c.before = make(map[T]T, c.max)
	}
	c.before[item] = v
	return v
}

func (c *cachedProvider[T]) After(item T) T {
	if v, ok := c.after[item]; ok {
		return v
	}
	v := c.inner.After(item)
	if len(c.after) >= c.max {
		c.after = make(map[T]T, c.max)
	}
	c.after[item] = v
	return v
}
