package internal

import (
	"sync"
)

// BoardCheckCounter counts station board checks across all workers.
type BoardCheckCounter struct {
	checks int
	empty  int
	mu     sync.Mutex
}

// Record counts one check; empty marks a board that came back with no departures.
func (c *BoardCheckCounter) Record(empty bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks++
	if empty {
		c.empty++
	}
}

func (c *BoardCheckCounter) Checks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checks
}

func (c *BoardCheckCounter) Empty() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.empty
}
