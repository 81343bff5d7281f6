package aabbgrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec2(t *testing.T) {
	a := V2(3.0, 7.0)
	b := V2(1.0, 2.0)
	require.Equal(t, V2(4.0, 9.0), a.Add(b))
	// each component subtracts its own axis
	require.Equal(t, V2(2.0, 5.0), a.Sub(b))
	require.Equal(t, V2(-2.0, -5.0), b.Sub(a))
	require.Equal(t, V2(6.0, 14.0), a.Scale(2))
	require.Equal(t, V2(1.5, 3.5), a.Div(2))
	require.Equal(t, 17.0, a.Dot(b))
	require.Equal(t, 25.0, V2(3.0, 4.0).LengthSquared())
	require.Equal(t, 5.0, V2(3.0, 4.0).Length())
	require.Equal(t, float32(5), V2[float32](-3, -4).Length())
}

func TestFromCircle(t *testing.T) {
	b := FromCircle(V2[float32](8, 0), 5)
	require.Equal(t, V2[float32](3, -5), b.Min)
	require.Equal(t, V2[float32](13, 5), b.Max)
}

func TestAabbOverlaps(t *testing.T) {
	a := Aabb[float64]{Min: V2(0.0, 0.0), Max: V2(10.0, 10.0)}
	require.True(t, a.Overlaps(Aabb[float64]{Min: V2(5.0, 5.0), Max: V2(15.0, 15.0)}))
	require.True(t, a.Overlaps(Aabb[float64]{Min: V2(10.0, 0.0), Max: V2(20.0, 10.0)}), "touching")
	require.True(t, a.Overlaps(Aabb[float64]{Min: V2(2.0, 2.0), Max: V2(3.0, 3.0)}), "contained")
	require.False(t, a.Overlaps(Aabb[float64]{Min: V2(11.0, 0.0), Max: V2(20.0, 10.0)}))
	require.False(t, a.Overlaps(Aabb[float64]{Min: V2(0.0, -5.0), Max: V2(10.0, -1.0)}))
}

func TestEmptyAabbExtend(t *testing.T) {
	bounds := EmptyAabb[float32]()
	require.True(t, bounds.IsEmpty())

	bounds = bounds.Extend(FromCircle(V2[float32](0, 0), 1))
	bounds = bounds.Extend(FromCircle(V2[float32](10, -4), 2))
	require.False(t, bounds.IsEmpty())
	require.Equal(t, V2[float32](-1, -6), bounds.Min)
	require.Equal(t, V2[float32](12, 1), bounds.Max)
}
