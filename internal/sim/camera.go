package sim

import "math"

// Chase offsets in car-local space (heading 0 faces +Z).
const (
	camBack     = -12.0 // behind the rear bumper
	camHeight   = 6.0
	aheadDist   = 10.0 // lead point down the road
	aheadRise   = 2.0
	lookRise    = 1.5 // orientation aims just above the roof
	camLerpRate = 5.0 // position smoothing, 1/seconds
)

// ChaseCamera trails the car with exponential position smoothing. The lead
// point (Ahead*) is carried along unsmoothed each frame; orientation is
// recomputed from scratch by the render layer via LookTarget, so no
// look-direction state is kept here.
type ChaseCamera struct {
	X, Y, Z                float64
	AheadX, AheadY, AheadZ float64
}

// NewChaseCamera returns a camera already settled at its pose behind the car.
func NewChaseCamera(car *CarState) *ChaseCamera {
	c := &ChaseCamera{}
	tx, ty, tz := c.target(car)
	c.X, c.Y, c.Z = tx, ty, tz
	c.ahead(car)
	return c
}

func (c *ChaseCamera) target(car *CarState) (x, y, z float64) {
	sin, cos := math.Sincos(car.Heading)
	return car.X + camBack*sin, camHeight, car.Z + camBack*cos
}

func (c *ChaseCamera) ahead(car *CarState) {
	sin, cos := math.Sincos(car.Heading)
	c.AheadX = car.X + aheadDist*sin
	c.AheadY = aheadRise
	c.AheadZ = car.Z + aheadDist*cos
}

// Update moves the camera toward its pose behind the car. The per-frame lerp
// factor is camLerpRate·dt, capped at 1 so large steps land exactly on the
// target instead of overshooting.
func (c *ChaseCamera) Update(car *CarState, dt float64) {
	tx, ty, tz := c.target(car)
	c.ahead(car)

	t := camLerpRate * dt
	c.X = lerp(c.X, tx, t)
	c.Y = lerp(c.Y, ty, t)
	c.Z = lerp(c.Z, tz, t)
}

// LookTarget returns the point the camera faces: just above the car roof.
// Distinct from the Ahead lead point, which is tracked but does not drive
// orientation.
func (c *ChaseCamera) LookTarget(car *CarState) (x, y, z float64) {
	return car.X, lookRise, car.Z
}
