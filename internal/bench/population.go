package bench

import (
	"math"

	aabbgrid "github.com/bmharper/aabbgrid-go"
	"github.com/bmharper/aabbgrid-go/circle"
)

type Circle = circle.Circle[float32]

// Lattice returns a square lattice of identical circles centered on the origin.
// The side is 2*ceil(sqrt(minEntities)/2), so at least minEntities circles are made.
// Circles are ordered x-major, and neighbours are spacing units apart.
func Lattice(minEntities int, radius, spacing float32) []Circle {
	if minEntities <= 0 {
		return nil
	}
	bounds := int(math.Ceil(math.Sqrt(float64(minEntities)) / 2))
	entities := make([]Circle, 0, 4*bounds*bounds)
	for x := -bounds; x < bounds; x++ {
		for y := -bounds; y < bounds; y++ {
			p := aabbgrid.V2(float32(x), float32(y)).Scale(spacing)
			entities = append(entities, Circle{Center: p, Radius: radius})
		}
	}
	return entities
}
