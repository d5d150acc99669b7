// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lift provides a compile-time protocol for using one composite type
// definition both as plain data and as a family of functions of an argument.
//
// A composite value type (a point, a color, a transform) often needs a
// "procedural" twin whose fields are computed from some argument: an angle,
// a time, an animation state. Writing that twin as a second struct duplicates
// the field list and severs it from the original's operators. lift removes the
// duplication: the consumer declares the struct once, generic over its leaf
// field type, and the same declaration serves both roles.
//
// # Design Philosophy
//
// lift provides:
//   - Minimal but complete interfaces for function-valued forms and their
//     pointwise evaluation
//   - F-bounded polymorphism for compile-time dispatch and devirtualization
//   - No runtime machinery: resolution failures are compile errors, and
//     evaluation is a plain monomorphized call chain
//
// # F-Bounded Architecture
//
// The package uses Go 1.26 F-bounded polymorphism (type T[P T[P]]) as a core
// architectural principle. The central constraint is:
//
//   - [Fun]: type Fun[F Fun[F, T, A], T, A any]. A function-valued form
//     knows its own concrete type, its argument type T, and the plain type A
//     it evaluates to
//
// The phantom methods FormArg and FormValue (supplied by embedding [Over])
// drive type inference at call sites and make the form → (argument, plain)
// relation functional: a type's method set admits at most one FormArg/
// FormValue pair, so a base type cannot carry two conflicting associations
// for the same argument type. Conflicts are duplicate-method build errors,
// never runtime conditions.
//
// # The Field-Carrier Convention
//
// A consumer declares its base type generic over the leaf field type:
//
//	type Point[F any] struct{ X, Y, Z F }
//
// Point[float64] is the plain form. Point[lift.Fn[T, float64]] is the
// function-valued form over argument type T. One field list, both roles.
// The function-valued form is completed by a named wrapper that embeds the
// [Over] marker and supplies the evaluation method:
//
//	type PointFn[T any] struct {
//		lift.Over[T, Point[float64]]
//		Point[lift.Fn[T, float64]]
//	}
//
//	func (p PointFn[T]) At(t T) Point[float64] {
//		return Point[float64]{X: p.X(t), Y: p.Y(t), Z: p.Z(t)}
//	}
//
// PointFn[T] now satisfies Fun[PointFn[T], T, Point[float64]] for every
// argument type T, with no change to the field declarations. A plain
// Point[float64] has neither the marker nor an At method, so plain and
// function-valued instantiations can never collide in resolution.
//
// # Uniform Invocation
//
//   - [At]: evaluate any [Fun] at an argument, producing the plain form
//   - [Eval]: evaluate, then pass the plain form to a final transformation
//
// Composite forms implement At field by field: a direct call for [Fn] leaves,
// a nested At for fields that are themselves composite forms. Fields are
// independent: no invocation order is guaranteed, and field functions are
// expected to be pure; none of the laws below hold for effectful fields.
//
// # Function Representation
//
// [Fn] is the leaf form: a defined func type, so every Go function literal
// converts to it directly.
//
//   - [Fn]: type Fn[T, A any] func(T) A
//   - [Of], [Const], [Ident]: constructors
//   - [Fn.At]: method form of invocation, making Fn the base case of [Fun]
//
// Copying an Fn copies a reference to the same underlying closure: duplication
// is cheap, both copies observe the same captured state, and invocation from
// concurrent goroutines is safe as long as that state is not mutated.
//
// # Pointwise Combinators
//
// Operators over function-valued forms are built by combining per-field
// functions into new functions that share one argument:
//
//   - [Map], [Contramap]: transform the result / the argument
//   - [Zip], [Zip3], [Both]: combine functions of one shared argument
//   - [Pipe]: chain same-type transformations
//   - [Add], [Sub], [Mul], [Neg], [Scale], [Sum]: pointwise arithmetic on
//     numeric leaves
//   - [Sample]: evaluate an Fn over uniform steps of the unit interval
//
// The pointwise law these preserve: combining two forms and evaluating at a
// equals evaluating both at a and combining the plain results.
//
// # Defunctionalized Forms
//
// Closure-based [Fn] values allocate at construction. For hot paths the
// package also provides struct-backed forms carrying explicit data
// (Reynolds-style defunctionalization, as in the frame representation of
// continuation libraries):
//
//   - [ConstForm]: a fixed plain value, ignoring the argument
//   - [MapForm]: a form plus a result transformation
//   - [ZipForm]: two forms plus a binary combiner
//   - [ConstOver], [MapOver], [ZipOver]: inference-friendly constructors
//   - [Close]: bridge any [Fun] back into a closure-based [Fn]
//
// # Partiality
//
// The protocol itself is total: evaluating a form at any argument of its
// declared argument type yields a plain value. A consumer whose field
// functions can fail carries that in the field value type, typically
// [Either]:
//
//   - [Left], [Right]: constructors
//   - [Either.IsLeft], [Either.IsRight], [Either.GetLeft], [Either.GetRight]
//   - [MatchEither], [MapEither], [FlatMapEither]
//
// # Compile-Time Failures
//
// All protocol misuse is rejected at build time:
//
//   - Missing association: a type without an At method and the [Over] marker
//     does not satisfy [Fun], so [At] will not accept it
//   - Ambiguous association: a second At/FormArg/FormValue set on the same
//     type is a duplicate method declaration
//   - Unsupported argument type: evaluating a form at an argument outside
//     its declared argument type is an ordinary type mismatch
//
// # Example
//
//	type Color[F any] struct{ R, G, B F }
//
//	type ColorFn[T any] struct {
//		lift.Over[T, Color[float64]]
//		Color[lift.Fn[T, float64]]
//	}
//
//	func (c ColorFn[T]) At(t T) Color[float64] {
//		return Color[float64]{R: c.R(t), G: c.G(t), B: c.B(t)}
//	}
//
//	fade := ColorFn[float64]{Color: Color[lift.Fn[float64, float64]]{
//		R: func(t float64) float64 { return 1 - t },
//		G: lift.Const[float64](0.5),
//		B: lift.Ident[float64](),
//	}}
//	mid := lift.At(fade, 0.5)
//	// mid == Color[float64]{R: 0.5, G: 0.5, B: 0.5}
package lift
