package market

import "sort"

// counter accumulates occurrence counts in one pass while remembering
// the order keys first appeared, so ties can be broken deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) get(key string) int {
	return c.counts[key]
}

func (c *counter) len() int {
	return len(c.order)
}

type keyCount struct {
	key   string
	count int
}

// byCountDesc returns entries sorted by descending count; equal counts
// keep first-appearance order.
func (c *counter) byCountDesc() []keyCount {
	out := make([]keyCount, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, keyCount{key: key, count: c.counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].count > out[j].count
	})
	return out
}
