// ABOUTME: Tests for the virtual clock: ordering, nested scheduling, Stop semantics
// ABOUTME: Also checks the real clock fires and can be stopped

package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFake_FiresInDeadlineOrder(t *testing.T) {
	t.Parallel()

	c := NewFake(epoch)
	var order []string
	c.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(200*time.Millisecond, func() { order = append(order, "c") })

	c.Advance(199 * time.Millisecond)
	if len(order) != 1 || order[0] != "a" {
		t.Fatalf("after 199ms order = %v; want [a]", order)
	}

	c.Advance(time.Millisecond)
	if got := len(order); got != 3 || order[1] != "b" || order[2] != "c" {
		t.Errorf("after 200ms order = %v; want [a b c]", order)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d; want 0", c.Pending())
	}
}

func TestFake_NowDuringCallback(t *testing.T) {
	t.Parallel()

	c := NewFake(epoch)
	var seen time.Time
	c.AfterFunc(150*time.Millisecond, func() { seen = c.Now() })
	c.Advance(time.Second)

	if want := epoch.Add(150 * time.Millisecond); !seen.Equal(want) {
		t.Errorf("Now() in callback = %v; want %v", seen, want)
	}
	if want := epoch.Add(time.Second); !c.Now().Equal(want) {
		t.Errorf("Now() after Advance = %v; want %v", c.Now(), want)
	}
}

func TestFake_NestedScheduleWithinWindow(t *testing.T) {
	t.Parallel()

	c := NewFake(epoch)
	var fired []time.Duration
	c.AfterFunc(150*time.Millisecond, func() {
		fired = append(fired, c.Now().Sub(epoch))
		c.AfterFunc(150*time.Millisecond, func() {
			fired = append(fired, c.Now().Sub(epoch))
		})
	})

	c.Advance(300 * time.Millisecond)
	if len(fired) != 2 || fired[0] != 150*time.Millisecond || fired[1] != 300*time.Millisecond {
		t.Errorf("fired = %v; want [150ms 300ms]", fired)
	}
}

func TestFake_NestedScheduleBeyondWindow(t *testing.T) {
	t.Parallel()

	c := NewFake(epoch)
	var count int
	c.AfterFunc(150*time.Millisecond, func() {
		count++
		c.AfterFunc(150*time.Millisecond, func() { count++ })
	})

	c.Advance(200 * time.Millisecond)
	if count != 1 {
		t.Fatalf("count = %d; want 1", count)
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d; want 1", c.Pending())
	}
	c.Advance(100 * time.Millisecond)
	if count != 2 {
		t.Errorf("count = %d; want 2", count)
	}
}

func TestFake_Stop(t *testing.T) {
	t.Parallel()

	c := NewFake(epoch)
	called := false
	tm := c.AfterFunc(time.Second, func() { called = true })

	if !tm.Stop() {
		t.Error("first Stop() = false; want true")
	}
	if tm.Stop() {
		t.Error("second Stop() = true; want false")
	}
	c.Advance(2 * time.Second)
	if called {
		t.Error("stopped timer fired")
	}
}

func TestReal_AfterFunc(t *testing.T) {
	t.Parallel()

	var fired atomic.Bool
	done := make(chan struct{})
	Real{}.AfterFunc(time.Millisecond, func() {
		fired.Store(true)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("real timer did not fire")
	}
	if !fired.Load() {
		t.Error("callback did not run")
	}
}
