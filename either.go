// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lift

// Either carries consumer-side partiality.
// The protocol itself is total: evaluating a form never fails. A field
// function that can fail for some arguments declares it in the field value
// type, as Fn[T, Either[E, A]], and the failure flows through [At] like any
// other plain value.

// Either is the sum of a failure of type E (Left) and a plain value of type
// A (Right). A field of type Fn[T, Either[E, A]] is a field function that
// can fail; the zero Either is Left with a zero failure value.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left wraps a failure value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right wraps a plain value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight reports whether the Either holds a plain value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft reports whether the Either holds a failure.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the plain value and true, or the zero A and false on a
// failure.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the failure value and true, or the zero E and false on a
// plain value.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither folds the Either into a single result, applying onLeft to a
// failure or onRight to a plain value.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither transforms the plain value, passing a failure through untouched.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither chains a partial step after a successful one; a failure in
// either step wins.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// ZipEither combines two partial functions of one shared argument into a
// partial function of both results, failing with the first Left encountered.
// This is the lifted form of a consumer operator whose fields can fail.
func ZipEither[T, E, A, B, C any](f Fn[T, Either[E, A]], g Fn[T, Either[E, B]], with func(A, B) C) Fn[T, Either[E, C]] {
	return func(t T) Either[E, C] {
		return FlatMapEither(f(t), func(a A) Either[E, C] {
			return MapEither(g(t), func(b B) C {
				return with(a, b)
			})
		})
	}
}
