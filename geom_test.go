// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lift_test

import (
	"code.hybscloud.com/lift"
)

// Consumer types shared by the tests. Point follows the field-carrier
// convention: one declaration serves both the plain form Point[float64] and
// the function-valued form Point[lift.Fn[T, float64]].

// Point is a 3-component vector generic over its field type.
type Point[F any] struct {
	X, Y, Z F
}

// PointFn is the function-valued form of Point over argument type T.
type PointFn[T any] struct {
	lift.Over[T, Point[float64]]
	Point[lift.Fn[T, float64]]
}

// At evaluates every field at the same argument and assembles the plain form.
func (p PointFn[T]) At(t T) Point[float64] {
	return Point[float64]{X: p.X(t), Y: p.Y(t), Z: p.Z(t)}
}

// Segment nests the protocol: its fields are themselves composites.
type Segment[P any] struct {
	From, To P
}

// SegmentFn is the function-valued form of Segment over argument type T.
type SegmentFn[T any] struct {
	lift.Over[T, Segment[Point[float64]]]
	Segment[PointFn[T]]
}

// At recurses into the nested composite forms.
func (s SegmentFn[T]) At(t T) Segment[Point[float64]] {
	return Segment[Point[float64]]{From: s.From.At(t), To: s.To.At(t)}
}

// Anim is a second argument type: animation data plus a time component.
type Anim struct {
	Amp  float64
	Time float64
}

// Plain operators over Point[float64].

func addPoints(p, q Point[float64]) Point[float64] {
	return Point[float64]{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

func dotPoints(p, q Point[float64]) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Lifted operators over PointFn[T]: the same semantics, combined pointwise.

func addPointsFn[T any](p, q PointFn[T]) PointFn[T] {
	return PointFn[T]{Point: Point[lift.Fn[T, float64]]{
		X: lift.Add(p.X, q.X),
		Y: lift.Add(p.Y, q.Y),
		Z: lift.Add(p.Z, q.Z),
	}}
}

func dotPointsFn[T any](p, q PointFn[T]) lift.Fn[T, float64] {
	return lift.Sum(
		lift.Mul(p.X, q.X),
		lift.Mul(p.Y, q.Y),
		lift.Mul(p.Z, q.Z),
	)
}

// constPoint builds the function-valued form whose fields ignore the
// argument and return the fields of a fixed plain point.
func constPoint[T any](p Point[float64]) PointFn[T] {
	return PointFn[T]{Point: Point[lift.Fn[T, float64]]{
		X: lift.Const[T](p.X),
		Y: lift.Const[T](p.Y),
		Z: lift.Const[T](p.Z),
	}}
}

// linearPoint builds a function-valued point whose fields are affine in the
// argument: field(t) = base + slope*t.
func linearPoint(base, slope Point[float64]) PointFn[float64] {
	field := func(b, s float64) lift.Fn[float64, float64] {
		return func(t float64) float64 { return b + s*t }
	}
	return PointFn[float64]{Point: Point[lift.Fn[float64, float64]]{
		X: field(base.X, slope.X),
		Y: field(base.Y, slope.Y),
		Z: field(base.Z, slope.Z),
	}}
}
