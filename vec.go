package aabbgrid

// Package aabbgrid is a uniform grid broad phase for 2D axis aligned bounding boxes.

import "math"

// Vec2 is a 2D vector. The coordinates are 32 or 64-bit floats.
type Vec2[TFloat float32 | float64] struct {
	X TFloat
	Y TFloat
}

func V2[TFloat float32 | float64](x, y TFloat) Vec2[TFloat] {
	return Vec2[TFloat]{X: x, Y: y}
}

func (v Vec2[TFloat]) Add(other Vec2[TFloat]) Vec2[TFloat] {
	return Vec2[TFloat]{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec2[TFloat]) Sub(other Vec2[TFloat]) Vec2[TFloat] {
	return Vec2[TFloat]{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vec2[TFloat]) Scale(s TFloat) Vec2[TFloat] {
	return Vec2[TFloat]{X: v.X * s, Y: v.Y * s}
}

func (v Vec2[TFloat]) Div(s TFloat) Vec2[TFloat] {
	return Vec2[TFloat]{X: v.X / s, Y: v.Y / s}
}

func (v Vec2[TFloat]) Dot(other Vec2[TFloat]) TFloat {
	return v.X*other.X + v.Y*other.Y
}

// LengthSquared avoids the square root when only comparing distances
func (v Vec2[TFloat]) LengthSquared() TFloat {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2[TFloat]) Length() TFloat {
	return TFloat(math.Sqrt(float64(v.LengthSquared())))
}

// Aabb is an axis aligned bounding box.
// Min must not exceed Max on either axis. The grid does not check this.
type Aabb[TFloat float32 | float64] struct {
	Min Vec2[TFloat]
	Max Vec2[TFloat]
}

// FromCircle returns the box enclosing a circle
func FromCircle[TFloat float32 | float64](center Vec2[TFloat], radius TFloat) Aabb[TFloat] {
	r := Vec2[TFloat]{X: radius, Y: radius}
	return Aabb[TFloat]{
		Min: center.Sub(r),
		Max: center.Add(r),
	}
}

// EmptyAabb returns an inverted box, which is the identity for Extend
func EmptyAabb[TFloat float32 | float64]() Aabb[TFloat] {
	inf := TFloat(math.Inf(1))
	return Aabb[TFloat]{
		Min: Vec2[TFloat]{X: inf, Y: inf},
		Max: Vec2[TFloat]{X: -inf, Y: -inf},
	}
}

// Extend returns the smallest box containing both a and b
func (a Aabb[TFloat]) Extend(b Aabb[TFloat]) Aabb[TFloat] {
	return Aabb[TFloat]{
		Min: Vec2[TFloat]{X: min(a.Min.X, b.Min.X), Y: min(a.Min.Y, b.Min.Y)},
		Max: Vec2[TFloat]{X: max(a.Max.X, b.Max.X), Y: max(a.Max.Y, b.Max.Y)},
	}
}

// Overlaps is true if the boxes intersect. Touching edges count as overlapping.
func (a Aabb[TFloat]) Overlaps(b Aabb[TFloat]) bool {
	return b.Max.X >= a.Min.X && b.Min.X <= a.Max.X && b.Max.Y >= a.Min.Y && b.Min.Y <= a.Max.Y
}

// IsEmpty is true for an inverted box, such as the one returned by EmptyAabb
func (a Aabb[TFloat]) IsEmpty() bool {
	return a.Min.X > a.Max.X || a.Min.Y > a.Max.Y
}
