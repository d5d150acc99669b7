// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lift_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/lift"
)

func TestOf(t *testing.T) {
	f := lift.Of(func(x int) int { return x + 1 })
	if got := f(41); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestConst(t *testing.T) {
	f := lift.Const[string](7)
	if got := f("anything"); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if got := f(""); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestIdent(t *testing.T) {
	f := lift.Ident[string]()
	if got := f("hello"); got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestFnAtMatchesCall(t *testing.T) {
	f := lift.Fn[int, int](func(x int) int { return x * x })
	if f.At(9) != f(9) {
		t.Fatalf("At(9) = %d, call = %d", f.At(9), f(9))
	}
}

func TestFnReinvocation(t *testing.T) {
	// Invocation does not consume the function.
	f := lift.Fn[int, int](func(x int) int { return x + 1 })
	for i := range 100 {
		if got := f(i); got != i+1 {
			t.Fatalf("f(%d) = %d, want %d", i, got, i+1)
		}
	}
}

func TestFnSharing(t *testing.T) {
	// Duplicating an Fn shares the underlying closure: both copies agree at
	// every argument, and invoking one does not disturb the other.
	base := 10
	f := lift.Fn[int, int](func(x int) int { return x + base })
	g := f

	if f(5) != g(5) {
		t.Fatalf("copies disagree: %d != %d", f(5), g(5))
	}

	for range 50 {
		_ = g(1)
	}
	if got := f(5); got != 15 {
		t.Fatalf("original changed after duplicate use: got %d, want 15", got)
	}
}

func TestFnConcurrentInvocation(t *testing.T) {
	// A shared Fn with immutable captured state is safe to invoke from
	// concurrent goroutines.
	f := lift.Fn[int, int](func(x int) int { return x * 3 })

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 1000 {
				if got := f(i); got != i*3 {
					t.Errorf("goroutine %d: f(%d) = %d, want %d", g, i, got, i*3)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestFnAsStructField(t *testing.T) {
	// The same Fn value embedded in multiple structs evaluates identically
	// from each.
	f := lift.Const[float64](2.0)
	p := PointFn[float64]{Point: Point[lift.Fn[float64, float64]]{X: f, Y: f, Z: f}}
	q := PointFn[float64]{Point: Point[lift.Fn[float64, float64]]{X: f, Y: f, Z: f}}

	if lift.At(p, 1) != lift.At(q, 1) {
		t.Fatalf("shared field evaluated differently: %+v vs %+v", lift.At(p, 1), lift.At(q, 1))
	}
}
