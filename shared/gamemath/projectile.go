package gamemath

import "math"

// Normalize returns the unit vector of (x, y), or (0, 0) for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// VelocityToward returns a velocity of the given speed pointing from
// (fromX, fromY) to (toX, toY).
func VelocityToward(fromX, fromY, toX, toY, speed float64) (velX, velY float64) {
	dx, dy := Normalize(toX-fromX, toY-fromY)
	return dx * speed, dy * speed
}

// SurfaceAngle returns the rotation, in radians, that aligns a projectile's
// tip with a surface whose outward normal is (nx, ny).
func SurfaceAngle(nx, ny float64) float64 {
	return math.Atan2(ny, nx) - math.Pi
}
