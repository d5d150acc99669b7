// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lift

// Fn is the function representation: the leaf function-valued form used
// wherever a field's plain value type is not itself expanded into a nested
// composite form.
//
// Fn[T, A] computes a value of type A from an argument of type T. As a
// defined func type, any function literal of the right signature converts to
// it directly. An Fn value is a reference to its underlying closure: copying
// it shares the captured state rather than deep-copying it, it may be invoked
// any number of times, and concurrent invocation is safe provided the
// captured state is not mutated.
type Fn[T, A any] func(T) A

// Of converts a function to an Fn. It exists for call sites where the
// conversion clarifies intent; direct conversion is equivalent.
func Of[T, A any](f func(T) A) Fn[T, A] {
	return f
}

// Const returns a function that yields a for every argument.
// Construction allocates one closure; see [ConstForm] for the
// allocation-free struct-backed equivalent.
func Const[T, A any](a A) Fn[T, A] {
	return func(T) A { return a }
}

// identity returns its argument unchanged.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func identity[T any](t T) T { return t }

// Ident returns the identity function as an Fn.
func Ident[T any]() Fn[T, T] {
	return identity[T]
}

// At invokes the function with the given argument.
// This is the base case of the [Fun] protocol: composite forms terminate
// their field-by-field evaluation at Fn leaves.
func (f Fn[T, A]) At(t T) A { return f(t) }

// FormArg implements the phantom argument-type marker for [Fun].
func (Fn[T, A]) FormArg() T { panic("phantom") }

// FormValue implements the phantom plain-type marker for [Fun].
func (Fn[T, A]) FormValue() A { panic("phantom") }
