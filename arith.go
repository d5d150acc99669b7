// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lift

// Pointwise arithmetic on numeric leaves.
// These are the leaf-level building blocks for lifted consumer operators:
// a dot product over two function-valued points is Sum of Mul per field.

// Number constrains to the built-in numeric types and their derived types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Add returns the pointwise sum of two functions.
// Add(f, g).At(t) == f(t) + g(t).
func Add[T any, N Number](f, g Fn[T, N]) Fn[T, N] {
	return func(t T) N {
		return f(t) + g(t)
	}
}

// Sub returns the pointwise difference of two functions.
func Sub[T any, N Number](f, g Fn[T, N]) Fn[T, N] {
	return func(t T) N {
		return f(t) - g(t)
	}
}

// Mul returns the pointwise product of two functions.
func Mul[T any, N Number](f, g Fn[T, N]) Fn[T, N] {
	return func(t T) N {
		return f(t) * g(t)
	}
}

// Neg returns the pointwise negation of a function.
func Neg[T any, N Number](f Fn[T, N]) Fn[T, N] {
	return func(t T) N {
		return -f(t)
	}
}

// Scale returns the function scaled by a constant factor.
// Scale(f, s).At(t) == f(t) * s.
func Scale[T any, N Number](f Fn[T, N], s N) Fn[T, N] {
	return func(t T) N {
		return f(t) * s
	}
}

// Sum returns the pointwise sum of any number of functions.
// With no arguments it is the constant zero function.
func Sum[T any, N Number](fns ...Fn[T, N]) Fn[T, N] {
	return func(t T) N {
		var acc N
		for _, fn := range fns {
			acc += fn(t)
		}
		return acc
	}
}

// Sample evaluates f at n uniformly spaced arguments across [0, 1],
// endpoints included. Returns nil for n <= 0 and the single value f(0)
// for n == 1.
func Sample[A any](f Fn[float64, A], n int) []A {
	if n <= 0 {
		return nil
	}
	out := make([]A, n)
	if n == 1 {
		out[0] = f(0)
		return out
	}
	// Divide per step rather than multiplying by a precomputed 1/(n-1):
	// i/(n-1) is exactly 1 at the last index, a rounded step is not.
	den := float64(n - 1)
	for i := range out {
		out[i] = f(float64(i) / den)
	}
	return out
}
