package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuncsAdaptsFunctions(t *testing.T) {
	p := Funcs(
		func(s string) string { return "before-" + s },
		func(s string) string { return "after-" + s },
	)

	assert.Equal(t, "before-x", p.Before("x"))
	assert.Equal(t, "after-x", p.After("x"))
}

func TestCachedServesRepeatsWithoutReinvoking(t *testing.T) {
	calls := 0
	p := Cached(Funcs(
		func(i int) int { calls++; return i - 1 },
		func(i int) int { calls++; return i + 1 },
	), 16)

	assert.Equal(t, 4, p.After(3))
	assert.Equal(t, 4, p.After(3))
	assert.Equal(t, 2, p.Before(3))
	assert.Equal(t, 2, p.Before(3))
	assert.Equal(t, 2, calls, "one call per distinct lookup")
}

func TestCachedDropsTableWhenFull(t *testing.T) {
	calls := 0
	p := Cached(Funcs(
		func(i int) int { return i - 1 },
		func(i int) int { calls++; return i + 1 },
	), 2)

	p.After(1)
	p.After(2)
	p.After(3) // table full: dropped, then repopulated with this entry
	assert.Equal(t, 3, calls)

	p.After(3)
	assert.Equal(t, 3, calls)

	p.After(1) // was dropped, regenerated
	assert.Equal(t, 4, calls)
}

func TestCachedDefaultsSize(t *testing.T) {
	p := Cached[int](intProvider(), 0)
	assert.Equal(t, 1, p.After(0))
	assert.Equal(t, -1, p.Before(0))
}
