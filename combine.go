// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lift

// Pointwise combinators over the function representation.
//
// Consumer operators on function-valued forms are built from these: an
// operator over two forms combines corresponding fields into new functions
// that, when invoked, invoke both sides with the same argument and combine
// the plain results. All combinators preserve the pointwise law:
// combining then evaluating equals evaluating then combining.

// Map applies a pure transformation to the result of a function.
// Map(f, g).At(t) == g(f(t)).
func Map[T, A, B any](f Fn[T, A], g func(A) B) Fn[T, B] {
	return func(t T) B {
		return g(f(t))
	}
}

// Contramap adapts the argument of a function.
// Contramap(f, g).At(s) == f(g(s)). This is how a form over one argument
// type is reused over another, e.g. indexing animation data by time.
func Contramap[S, T, A any](f Fn[T, A], g func(S) T) Fn[S, A] {
	return func(s S) A {
		return f(g(s))
	}
}

// Zip combines two functions of one shared argument with a binary combiner.
// Zip(f, g, with).At(t) == with(f(t), g(t)).
func Zip[T, A, B, C any](f Fn[T, A], g Fn[T, B], with func(A, B) C) Fn[T, C] {
	return func(t T) C {
		return with(f(t), g(t))
	}
}

// Zip3 combines three functions of one shared argument.
func Zip3[T, A, B, C, D any](f Fn[T, A], g Fn[T, B], h Fn[T, C], with func(A, B, C) D) Fn[T, D] {
	return func(t T) D {
		return with(f(t), g(t), h(t))
	}
}

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Both runs two functions on the same argument and pairs the results.
// Both(f, g).At(t) == Pair{f(t), g(t)}.
func Both[T, A, B any](f Fn[T, A], g Fn[T, B]) Fn[T, Pair[A, B]] {
	return func(t T) Pair[A, B] {
		return Pair[A, B]{Fst: f(t), Snd: g(t)}
	}
}

// Pipe chains same-type transformations left to right into one function.
// Pipe(f, g, h).At(t) == h(g(f(t))). With no arguments it is the identity.
func Pipe[A any](fns ...func(A) A) Fn[A, A] {
	if len(fns) == 0 {
		return identity[A]
	}
	return func(a A) A {
		for _, fn := range fns {
			a = fn(a)
		}
		return a
	}
}
