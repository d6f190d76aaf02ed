package keylock

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameKeySerializes(t *testing.T) {
	l := New(0)
	counter := 0
	var wg sync.WaitGroup

	for range 100 {
		wg.Go(func() {
			_ = l.Do("978-0-9995906-0-9", func() error {
				counter++
				return nil
			})
		})
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestDoReturnsError(t *testing.T) {
	l := New(4)
	boom := errors.New("boom")

	assert.ErrorIs(t, l.Do("k", func() error { return boom }), boom)

	// Lock released after error.
	l.Lock("k")
	l.Unlock("k")
}

func TestShardDistribution(t *testing.T) {
	l := New(32)
	assert.Equal(t, 0, l.shardFor(""))
	assert.Equal(t, l.shardFor("isbn-1"), l.shardFor("isbn-1"))

	shards := make(map[int]bool)
	for _, key := range []string{"isbn-1", "isbn-2", "isbn-3", "isbn-4", "isbn-5", "isbn-6", "isbn-7", "isbn-8"} {
		shards[l.shardFor(key)] = true
	}
	assert.GreaterOrEqual(t, len(shards), 3)
}
