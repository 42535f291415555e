package telemetry

import (
	"fmt"
	"io"
	"sync"
)

// PassCollector accumulates counters across one or more rewrite passes.
type PassCollector struct {
	mu     sync.Mutex
	visits int
	edits  int
	shift  int
}

// NewPassCollector creates a new pass collector.
func NewPassCollector() *PassCollector {
	return &PassCollector{}
}

// NodeVisited records one visited node.
func (c *PassCollector) NodeVisited() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visits++
}

// EditApplied records one applied edit.
func (c *PassCollector) EditApplied() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.edits++
}

// LineShift records the net line correction of a completed pass.
func (c *PassCollector) LineShift(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shift += delta
}

// Visits returns the number of nodes visited.
func (c *PassCollector) Visits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visits
}

// Edits returns the number of edits applied.
func (c *PassCollector) Edits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.edits
}

// Shift returns the accumulated net line shift.
func (c *PassCollector) Shift() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shift
}

// Report writes the collected counters to the writer.
func (c *PassCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(w, "nodes visited:  %d\n", c.visits)
	fmt.Fprintf(w, "edits applied:  %d\n", c.edits)
	fmt.Fprintf(w, "net line shift: %+d\n", c.shift)
}
