// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lift

// Unit is a type alias for the empty struct to make it a bit less noisy to
// communicate the informationless type. Fn[Unit, A] is a thunk.
type Unit = struct{}

// Fun is the F-bounded constraint for function-valued forms.
// A type F satisfying Fun[F, T, A] is the function-valued form of the plain
// type A over argument type T: evaluating it at a T yields an A.
//
// The self-referencing constraint gives the compiler knowledge of the
// concrete form type at compile time, so [At] monomorphizes to a direct
// call with no interface dispatch.
//
// The association from a form to its (argument, plain) pair is declared by
// the phantom methods FormArg and FormValue, normally supplied by embedding
// [Over]. A method set admits at most one such pair, so conflicting
// associations for the same pair are duplicate-method build errors.
//
// Example:
//
//	type PointFn[T any] struct {
//		lift.Over[T, Point[float64]]
//		Point[lift.Fn[T, float64]]
//	}
type Fun[F Fun[F, T, A], T, A any] interface {
	At(t T) A
	FormArg() T   // phantom type marker for the argument
	FormValue() A // phantom type marker for the plain form
}

// Over is an embeddable zero-size marker declaring that a composite form is
// function-valued over argument type T and evaluates to plain type A.
// Embed Over[T, A] in a form struct to satisfy [Fun]'s phantom methods
// without writing them manually.
//
// The marker is what keeps a plain instantiation of a field-carrier struct
// (which embeds nothing) structurally distinct from its function-valued
// wrapper: only the wrapper carries the marker and the At method, so the two
// resolution paths can never overlap.
type Over[T, A any] struct{}

// FormArg implements the phantom argument-type marker for [Fun].
func (Over[T, A]) FormArg() T { panic("phantom") }

// FormValue implements the phantom plain-type marker for [Fun].
func (Over[T, A]) FormValue() A { panic("phantom") }

// At evaluates a function-valued form at the given argument, producing an
// owned plain-form value.
//
// For composite forms this walks the fields: each Fn leaf is called and each
// nested composite form is evaluated recursively, all with the same argument,
// and the results are assembled into a fresh plain instance. The argument is
// therefore supplied once but consumed by every field, and must be freely
// copyable. Fields are independent; no invocation order is guaranteed.
//
// At introduces no failure of its own; evaluation is total over the
// declared argument type. Partial field functions carry their failure in the
// field value type (see [Either]).
func At[F Fun[F, T, A], T, A any](f F, t T) A {
	return f.At(t)
}

// Eval evaluates a form at the given argument and passes the plain result to
// a final transformation. Eval(f, t, k) is k(At(f, t)); it exists so call
// sites that immediately project the plain form avoid naming its type.
func Eval[F Fun[F, T, A], T, A, R any](f F, t T, k func(A) R) R {
	return k(f.At(t))
}
