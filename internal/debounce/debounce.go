// Package debounce coalesces bursts of calls into a single trailing-edge
// invocation. Each wrapper owns one pending slot: a call inside the window
// cancels the pending invocation and reschedules with its own arguments, so
// only the last call of a burst executes.
package debounce

import (
	"sync"
	"time"

	bep "github.com/bep/debounce"
)

// DefaultWindow is used when a wrapper is created with a non-positive window.
const DefaultWindow = 400 * time.Millisecond

// New returns a trailing-edge debounced runner for zero-argument functions.
func New(window time.Duration) func(func()) {
	if window <= 0 {
		window = DefaultWindow
	}
	return bep.New(window)
}

// Func wraps fn so that only the last call within the window executes, with
// that call's argument.
func Func[T any](window time.Duration, fn func(T)) func(T) {
	run := New(window)
	var mu sync.Mutex
	var last T
	return func(v T) {
		mu.Lock()
		last = v
		mu.Unlock()
		run(func() {
			mu.Lock()
			arg := last
			mu.Unlock()
			fn(arg)
		})
	}
}

// Func2 is Func for two-argument functions.
func Func2[A, B any](window time.Duration, fn func(A, B)) func(A, B) {
	type pair struct {
		a A
		b B
	}
	inner := Func(window, func(p pair) { fn(p.a, p.b) })
	return func(a A, b B) { inner(pair{a: a, b: b}) }
}
