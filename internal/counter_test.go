package internal

import (
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
)

func TestBoardCheckCounter(t *testing.T) {
	var c BoardCheckCounter
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Record(i%5 == 0)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Checks())
	assert.Equal(t, 10, c.Empty())
}
