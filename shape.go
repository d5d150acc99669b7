// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lift

// Defunctionalized leaf forms.
//
// Closure-based [Fn] values allocate at construction. The forms below carry
// explicit data instead of captured variables (Reynolds 1972), satisfy [Fun]
// directly, and are free to construct and invoke. [Close] bridges any form
// back into a closure when a consumer field requires an Fn.

// ConstForm is a function-valued form that yields a fixed plain value for
// every argument. The struct-backed equivalent of [Const].
type ConstForm[T, A any] struct {
	Over[T, A]
	Value A
}

// At returns the fixed value, ignoring the argument.
func (c ConstForm[T, A]) At(T) A { return c.Value }

// ConstOver creates a ConstForm holding the given value.
// The argument type is not inferrable and is given explicitly:
// ConstOver[float64](v).
func ConstOver[T, A any](a A) ConstForm[T, A] {
	return ConstForm[T, A]{Value: a}
}

// MapForm is a function-valued form that evaluates an inner form and
// transforms the plain result. The struct-backed equivalent of [Map].
//
// Type parameters:
//   - F: the inner form type
//   - T: the argument type
//   - A: the inner form's plain type
//   - B: the transformed plain type
type MapForm[F Fun[F, T, A], T, A, B any] struct {
	Over[T, B]

	// From is the inner form to evaluate.
	From F

	// With is the transformation applied to the inner plain result.
	With func(A) B
}

// At evaluates the inner form and applies the transformation.
func (m MapForm[F, T, A, B]) At(t T) B {
	return m.With(m.From.At(t))
}

// MapOver creates a MapForm over an inner form. All type arguments are
// inferred from the operands.
func MapOver[F Fun[F, T, A], T, A, B any](f F, with func(A) B) MapForm[F, T, A, B] {
	return MapForm[F, T, A, B]{From: f, With: with}
}

// ZipForm is a function-valued form that evaluates two inner forms at the
// same argument and combines the plain results. The struct-backed
// equivalent of [Zip].
type ZipForm[F Fun[F, T, A], G Fun[G, T, B], T, A, B, C any] struct {
	Over[T, C]

	// Fst and Snd are the inner forms, both evaluated at the argument.
	Fst F
	Snd G

	// With combines the two plain results.
	With func(A, B) C
}

// At evaluates both inner forms at the argument and combines the results.
func (z ZipForm[F, G, T, A, B, C]) At(t T) C {
	return z.With(z.Fst.At(t), z.Snd.At(t))
}

// ZipOver creates a ZipForm over two inner forms. All type arguments are
// inferred from the operands.
func ZipOver[F Fun[F, T, A], G Fun[G, T, B], T, A, B, C any](f F, g G, with func(A, B) C) ZipForm[F, G, T, A, B, C] {
	return ZipForm[F, G, T, A, B, C]{Fst: f, Snd: g, With: with}
}

// Close bridges a function-valued form into the closure-based function
// representation, for consumer fields declared as [Fn].
// Close(f).At(t) == f.At(t) for every argument.
func Close[F Fun[F, T, A], T, A any](f F) Fn[T, A] {
	return func(t T) A {
		return f.At(t)
	}
}
