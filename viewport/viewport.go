// Package viewport classifies a display as narrow or wide and tracks resizes.
package viewport

import (
	"sync"
	"time"

	"github.com/ganeshkumartk/tamilseasons/debounce"
)

// Breakpoint is the browser width in css pixels below which the compact layout is used
const Breakpoint = 768

// ResizeDelay is how long a resize burst must be quiet before the classification updates
const ResizeDelay = 100 * time.Millisecond

// IsNarrow reports if width is below breakpoint. A width of 0 means unknown and is wide.
func IsNarrow(width, breakpoint int) bool {
	return width > 0 && width < breakpoint
}

// Viewport is a single classification of a display
type Viewport struct {
	Width  int // 0 when unknown
	Narrow bool
}

func New(width, breakpoint int) Viewport {
	return Viewport{Width: width, Narrow: IsNarrow(width, breakpoint)}
}

// Classifier holds the narrow/wide state of one display session.
//
// Resize events are debounced by Delay; only the last width in a burst is
// classified. OnChange is called (from a timer goroutine) when the
// classification flips and never after Close.
type Classifier struct {
	Breakpoint int
	OnChange   func(Viewport)

	mu        sync.Mutex
	current   Viewport
	debouncer *debounce.Debouncer
}

// NewClassifier returns a Classifier initialized with width
func NewClassifier(width, breakpoint int, delay time.Duration, onChange func(Viewport)) *Classifier {
	return &Classifier{
		Breakpoint: breakpoint,
		OnChange:   onChange,
		current:    New(width, breakpoint),
		debouncer:  debounce.New(delay),
	}
}

// Viewport returns the current classification
func (c *Classifier) Viewport() Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Classifier) Narrow() bool {
	return c.Viewport().Narrow
}

// Resize records a new width
func (c *Classifier) Resize(width int) {
	c.debouncer.Trigger(func() { c.apply(width) })
}

func (c *Classifier) apply(width int) {
	c.mu.Lock()
	prev := c.current
	c.current = New(width, c.Breakpoint)
	next := c.current
	c.mu.Unlock()
	if prev.Narrow != next.Narrow && c.OnChange != nil {
		c.OnChange(next)
	}
}

// Close cancels any pending resize
func (c *Classifier) Close() {
	c.debouncer.Stop()
}
