// Package circle is the circle-vs-circle narrow phase used with an aabbgrid broad phase.
package circle

import (
	aabbgrid "github.com/bmharper/aabbgrid-go"
)

type Circle[TFloat float32 | float64] struct {
	Center aabbgrid.Vec2[TFloat]
	Radius TFloat
}

// Aabb returns the bounding box of the circle
func (c Circle[TFloat]) Aabb() aabbgrid.Aabb[TFloat] {
	return aabbgrid.FromCircle(c.Center, c.Radius)
}

// Overlap tests two circles, and if they overlap returns the vector that separates them.
// The vector points from a to b along the line between the centers, and its length is the
// penetration depth. Coincident centers separate along +Y.
func Overlap[TFloat float32 | float64](a, b Circle[TFloat]) (aabbgrid.Vec2[TFloat], bool) {
	d := b.Center.Sub(a.Center)
	d2 := d.Dot(d)
	r := a.Radius + b.Radius
	if d2 >= r*r {
		return aabbgrid.Vec2[TFloat]{}, false
	}

	l := d.Length()
	n := aabbgrid.V2[TFloat](0, 1)
	if l != 0 {
		n = d.Scale(1 / l)
	}
	return n.Scale(r - l), true
}

// Resolve pushes a and b apart by the full separation vector if they overlap.
// a moves against the vector and b along it.
func Resolve[TFloat float32 | float64](a, b *Circle[TFloat]) bool {
	n, ok := Overlap(*a, *b)
	if !ok {
		return false
	}
	a.Center = a.Center.Sub(n)
	b.Center = b.Center.Add(n)
	return true
}
