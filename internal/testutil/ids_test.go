package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedIDGenerator_ReturnsInOrder(t *testing.T) {
	gen := NewFixedIDGenerator("a", "b", "c")

	assert.Equal(t, "a", gen.Generate())
	assert.Equal(t, "b", gen.Generate())
	assert.Equal(t, 1, gen.Remaining())
	assert.Equal(t, "c", gen.Generate())
	assert.Equal(t, 0, gen.Remaining())
}

func TestFixedIDGenerator_PanicsWhenExhausted(t *testing.T) {
	gen := NewFixedIDGenerator("only")
	gen.Generate()

	assert.PanicsWithValue(t, "FixedIDGenerator: exhausted after 1 ids", func() {
		gen.Generate()
	})
}

func TestFixedIDGenerator_ThreadSafe(t *testing.T) {
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = string(rune('A' + i%26))
	}
	gen := NewFixedIDGenerator(ids...)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				gen.Generate()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, gen.Remaining())
}
