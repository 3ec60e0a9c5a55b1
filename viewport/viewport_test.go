package viewport

import (
	"fmt"
	"testing"
	"time"
)

func TestIsNarrow(t *testing.T) {
	type testCase struct {
		width int
		want  bool
	}
	tests := []testCase{
		{0, false},
		{320, true},
		{767, true},
		{768, false},
		{1440, false},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d", tc.width), func(t *testing.T) {
			if got := IsNarrow(tc.width, Breakpoint); got != tc.want {
				t.Errorf("IsNarrow(%d) = %v, want %v", tc.width, got, tc.want)
			}
		})
	}
}

func TestClassifierDebouncesBurst(t *testing.T) {
	changes := make(chan Viewport, 10)
	c := NewClassifier(1024, Breakpoint, 20*time.Millisecond, func(v Viewport) { changes <- v })
	defer c.Close()

	if c.Narrow() {
		t.Fatal("1024 should start wide")
	}
	for _, w := range []int{900, 700, 600, 500} {
		c.Resize(w)
	}
	if c.Narrow() {
		t.Error("classification changed before the burst settled")
	}
	select {
	case v := <-changes:
		if !v.Narrow || v.Width != 500 {
			t.Errorf("got %#v, want narrow 500", v)
		}
	case <-time.After(time.Second):
		t.Fatal("no change reported")
	}
	if !c.Narrow() {
		t.Error("expected narrow after burst")
	}
	select {
	case v := <-changes:
		t.Errorf("unexpected second change %#v", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestClassifierNoChangeWithinClass(t *testing.T) {
	changes := make(chan Viewport, 10)
	c := NewClassifier(1024, Breakpoint, 5*time.Millisecond, func(v Viewport) { changes <- v })
	defer c.Close()
	c.Resize(1280)
	time.Sleep(40 * time.Millisecond)
	select {
	case v := <-changes:
		t.Errorf("unexpected change %#v", v)
	default:
	}
	if got := c.Viewport().Width; got != 1280 {
		t.Errorf("Width = %d, want 1280", got)
	}
}

func TestClassifierClose(t *testing.T) {
	changes := make(chan Viewport, 10)
	c := NewClassifier(1024, Breakpoint, 20*time.Millisecond, func(v Viewport) { changes <- v })
	c.Resize(400)
	c.Close()
	c.Resize(300)
	time.Sleep(60 * time.Millisecond)
	select {
	case v := <-changes:
		t.Errorf("change %#v reported after Close", v)
	default:
	}
	if c.Narrow() {
		t.Error("state updated after Close")
	}
}
