package strpool_test

import (
	"sync"
	"testing"

	"github.com/adobe-type-tools/orc/strpool"
	"github.com/adobe-type-tools/orc/test"
)

func TestIdentityForEqualBytes(t *testing.T) {
	p := strpool.NewPool()

	a := p.Empool("::example::foo")
	b := p.Empool("::example::foo")

	test.Equate(t, a, b)
	test.Equate(t, a.String(), "::example::foo")
}

func TestDistinctForUnequalBytes(t *testing.T) {
	p := strpool.NewPool()

	a := p.Empool("::example::foo")
	b := p.Empool("::example::bar")

	test.ExpectInequality(t, a, b)
}

func TestEmptyStringIsNilHandle(t *testing.T) {
	p := strpool.NewPool()

	h := p.Empool("")
	test.Equate(t, h.Empty(), true)
	test.Equate(t, h, strpool.Handle{})
}

func TestLenAndHash(t *testing.T) {
	p := strpool.NewPool()

	h := p.Empool("abcde")
	test.Equate(t, h.Len(), uint32(5))
	test.ExpectInequality(t, h.Hash(), uint64(0))
}

func TestConcurrentEmpool(t *testing.T) {
	p := strpool.NewPool()

	const n = 200
	handles := make([]strpool.Handle, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = p.Empool("shared-symbol")
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		test.Equate(t, handles[i], handles[0])
	}

	count, _ := p.Stats()
	test.Equate(t, count, uint64(1))
}
