package aabbgrid

import "math"

// CellCoord is the integer address of a grid cell, floor(position / cellSize) on each axis
type CellCoord struct {
	X int32
	Y int32
}

// PackCell combines a cell coordinate into a single map key.
// X occupies the high 32 bits and Y the low 32 bits. Both are stored as their raw
// bit pattern, so negative coordinates never collide with a differently signed pair.
func PackCell(c CellCoord) uint64 {
	return uint64(uint32(c.X))<<32 | uint64(uint32(c.Y))
}

// UnpackCell is the inverse of PackCell
func UnpackCell(key uint64) CellCoord {
	return CellCoord{
		X: int32(uint32(key >> 32)),
		Y: int32(uint32(key)),
	}
}

func cellAxis[TFloat float32 | float64](v, cellSize TFloat) int32 {
	return int32(math.Floor(float64(v) / float64(cellSize)))
}

// CellOf returns the cell containing the given position
func CellOf[TFloat float32 | float64](pos Vec2[TFloat], cellSize TFloat) CellCoord {
	return CellCoord{
		X: cellAxis(pos.X, cellSize),
		Y: cellAxis(pos.Y, cellSize),
	}
}

// CellRange returns the inclusive range of cells covered by box.
// Both corners are used, so a box that crosses cell boundaries covers every cell it touches.
func CellRange[TFloat float32 | float64](box Aabb[TFloat], cellSize TFloat) (lo, hi CellCoord) {
	return CellOf(box.Min, cellSize), CellOf(box.Max, cellSize)
}
