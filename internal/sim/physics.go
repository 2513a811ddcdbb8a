package sim

import "math"

// Fixed points of the drive model.
const (
	// MaxStep bounds a single integration step; a host stall longer than
	// this is clamped so one late frame cannot teleport the car.
	MaxStep = 0.1

	minTurnSpeed  = 0.5  // |speed| at or below this gives no steering
	fullTurnSpeed = 20.0 // |speed| at which steering reaches full authority
	wheelSpinRate = 0.5  // wheel radians accumulated per unit of travel
)

// Tuning holds the drive-model rates, units/second except TurnSpeed
// (radians/second at full authority).
type Tuning struct {
	MaxSpeed     float64
	Acceleration float64
	Braking      float64
	Friction     float64
	TurnSpeed    float64
}

// DefaultTuning returns the stock drive model.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:     80,
		Acceleration: 30,
		Braking:      40,
		Friction:     15,
		TurnSpeed:    2.0,
	}
}

// CarState is the integrated pose of the car: ground-plane position, yaw
// heading (0 faces +Z), signed speed, and the spin angle shared by all four
// wheels.
type CarState struct {
	X, Z      float64
	Heading   float64
	Speed     float64
	WheelSpin float64
}

// Step advances the car by dt seconds under the held controls.
func Step(s *CarState, in Input, tun Tuning, dt float64) {
	if dt > MaxStep {
		dt = MaxStep
	}
	if dt <= 0 {
		return
	}

	// Throttle. Forward wins when both directions are held.
	switch {
	case in.Forward:
		s.Speed += tun.Acceleration * dt
	case in.Backward:
		s.Speed -= tun.Acceleration * dt
	case !in.Brake:
		// Coasting: decay toward 0 without overshooting past it.
		if s.Speed > 0 {
			s.Speed = math.Max(0, s.Speed-tun.Friction*dt)
		} else if s.Speed < 0 {
			s.Speed = math.Min(0, s.Speed+tun.Friction*dt)
		}
	}

	// Brake applies after throttle at twice the braking rate, never past 0.
	if in.Brake {
		if s.Speed > 0 {
			s.Speed = math.Max(0, s.Speed-2*tun.Braking*dt)
		} else if s.Speed < 0 {
			s.Speed = math.Min(0, s.Speed+2*tun.Braking*dt)
		}
	}

	// Reverse is capped at a third of top speed.
	s.Speed = Clamp(s.Speed, -tun.MaxSpeed/3, tun.MaxSpeed)

	// Steering is gated at crawl speed and ramps linearly to full authority
	// at fullTurnSpeed. Turn sense follows travel direction, so reversing
	// mirrors the keys.
	if math.Abs(s.Speed) > minTurnSpeed {
		turn := tun.TurnSpeed * math.Min(1, math.Abs(s.Speed)/fullTurnSpeed) * dt
		if s.Speed < 0 {
			turn = -turn
		}
		if in.Left {
			s.Heading += turn
		}
		if in.Right {
			s.Heading -= turn
		}
	}

	sin, cos := math.Sincos(s.Heading)
	s.X += sin * s.Speed * dt
	s.Z += cos * s.Speed * dt

	s.WheelSpin += s.Speed * dt * wheelSpinRate
}

// DisplaySpeed returns the km/h-style readout: |speed|*3.6 rounded, never
// negative.
func (s *CarState) DisplaySpeed() int {
	return int(math.Round(math.Abs(s.Speed) * 3.6))
}
