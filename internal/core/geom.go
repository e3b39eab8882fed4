// Package core provides fundamental types and utilities for the vision-snake
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Point is an immutable 2D coordinate in playfield pixel units.
// Sub-pixel precision is preserved until rendering.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the point translated by the vector v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Len returns the magnitude of p treated as a vector.
func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// StepToward returns a new position moved from `from` toward `to` by at
// most maxStep. When the target is closer than maxStep the target itself
// is returned, so the head never overshoots.
func StepToward(from, to Point, maxStep float64) Point {
	if maxStep <= 0 {
		return from
	}
	d := Dist(from, to)
	if d <= maxStep {
		return to
	}
	scale := maxStep / d
	return Point{
		X: from.X + (to.X-from.X)*scale,
		Y: from.Y + (to.Y-from.Y)*scale,
	}
}

// ClampPoint restricts a point to the rectangle [0,w) x [0,h).
// Out-of-bounds fingertip coordinates are clamped before use so negative
// or overflowing values never reach the engine or the renderer.
func ClampPoint(p Point, w, h float64) Point {
	return Point{
		X: ClampF(p.X, 0, w-1),
		Y: ClampF(p.Y, 0, h-1),
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
