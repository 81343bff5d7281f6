package circle

import (
	"testing"

	aabbgrid "github.com/bmharper/aabbgrid-go"
	"github.com/stretchr/testify/require"
)

func c32(x, y, r float32) Circle[float32] {
	return Circle[float32]{Center: aabbgrid.V2(x, y), Radius: r}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Circle[float32]
		overlap bool
		n       aabbgrid.Vec2[float32]
	}{
		{"apart", c32(0, 0, 5), c32(15, 0, 5), false, aabbgrid.Vec2[float32]{}},
		{"touching", c32(0, 0, 5), c32(10, 0, 5), false, aabbgrid.Vec2[float32]{}},
		{"overlapping_x", c32(0, 0, 5), c32(8, 0, 5), true, aabbgrid.V2[float32](2, 0)},
		{"overlapping_neg_y", c32(0, 0, 5), c32(0, -8, 5), true, aabbgrid.V2[float32](0, -2)},
		{"diagonal", c32(0, 0, 3), c32(3, 4, 3), true, aabbgrid.V2[float32](0.6, 0.8)},
		{"same_center", c32(2, 2, 3), c32(2, 2, 1), true, aabbgrid.V2[float32](0, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := Overlap(tt.a, tt.b)
			require.Equal(t, tt.overlap, ok)
			require.InDelta(t, tt.n.X, n.X, 1e-5)
			require.InDelta(t, tt.n.Y, n.Y, 1e-5)
		})
	}
}

func TestOverlapMagnitude(t *testing.T) {
	// distance 8 against a radius sum of 10
	n, ok := Overlap(c32(0, 0, 5), c32(8, 0, 5))
	require.True(t, ok)
	require.Equal(t, float32(2), n.Length())
	require.Greater(t, n.X, float32(0))
}

func TestResolve(t *testing.T) {
	a := Circle[float64]{Center: aabbgrid.V2(0.0, 0.0), Radius: 5}
	b := Circle[float64]{Center: aabbgrid.V2(8.0, 0.0), Radius: 5}
	require.True(t, Resolve(&a, &b))
	require.Equal(t, aabbgrid.V2(-2.0, 0.0), a.Center)
	require.Equal(t, aabbgrid.V2(10.0, 0.0), b.Center)

	// now 12 apart, no longer overlapping
	require.False(t, Resolve(&a, &b))
	require.Equal(t, aabbgrid.V2(-2.0, 0.0), a.Center)
}

func TestAabb(t *testing.T) {
	box := c32(8, 0, 5).Aabb()
	require.Equal(t, aabbgrid.V2[float32](3, -5), box.Min)
	require.Equal(t, aabbgrid.V2[float32](13, 5), box.Max)
}
