package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_ForwardAcceleration(t *testing.T) {
	tun := DefaultTuning()
	s := CarState{}
	in := Input{Forward: true}

	// One second in MaxStep slices.
	for i := 0; i < 10; i++ {
		Step(&s, in, tun, 0.1)
	}

	assert.InDelta(t, 30.0, s.Speed, 1e-9)
	assert.Equal(t, 108, s.DisplaySpeed())
}

func TestStep_ForwardWinsWhenBothHeld(t *testing.T) {
	tun := DefaultTuning()
	s := CarState{}
	in := Input{Forward: true, Backward: true}

	Step(&s, in, tun, 0.1)

	assert.Greater(t, s.Speed, 0.0)
	assert.InDelta(t, tun.Acceleration*0.1, s.Speed, 1e-9)
}

func TestStep_FrictionDecay(t *testing.T) {
	tun := DefaultTuning()
	s := CarState{Speed: 10}

	Step(&s, Input{}, tun, 0.1)

	assert.InDelta(t, 10-tun.Friction*0.1, s.Speed, 1e-9)
}

func TestStep_FrictionNeverOvershootsZero(t *testing.T) {
	tun := DefaultTuning()

	s := CarState{Speed: 1.0}
	Step(&s, Input{}, tun, 0.1) // decay 1.5 > remaining speed
	assert.Equal(t, 0.0, s.Speed)

	s = CarState{Speed: -1.0}
	Step(&s, Input{}, tun, 0.1)
	assert.Equal(t, 0.0, s.Speed)
}

func TestStep_FrictionDecayInReverse(t *testing.T) {
	tun := DefaultTuning()
	s := CarState{Speed: -10}

	Step(&s, Input{}, tun, 0.1)

	assert.InDelta(t, -10+tun.Friction*0.1, s.Speed, 1e-9)
}

func TestStep_BrakeFromTopSpeed(t *testing.T) {
	tun := DefaultTuning()
	s := CarState{Speed: 80}
	in := Input{Brake: true}

	// Half a second of braking at 2x the braking rate.
	for i := 0; i < 5; i++ {
		Step(&s, in, tun, 0.1)
	}

	assert.InDelta(t, 40.0, s.Speed, 1e-9)
}

func TestStep_BrakeAppliesAfterThrottle(t *testing.T) {
	tun := DefaultTuning()
	s := CarState{Speed: 10}
	in := Input{Forward: true, Brake: true}

	Step(&s, in, tun, 0.1)

	// +3 from throttle, then -8 from brake.
	assert.InDelta(t, 5.0, s.Speed, 1e-9)
}

func TestStep_BrakeNeverReversesDirection(t *testing.T) {
	tun := DefaultTuning()
	s := CarState{Speed: 2}

	Step(&s, Input{Brake: true}, tun, 0.1)

	assert.Equal(t, 0.0, s.Speed)
}

func TestStep_SpeedClamp(t *testing.T) {
	tun := DefaultTuning()

	s := CarState{Speed: 79}
	Step(&s, Input{Forward: true}, tun, 0.1)
	assert.Equal(t, tun.MaxSpeed, s.Speed)

	s = CarState{Speed: -26}
	Step(&s, Input{Backward: true}, tun, 0.1)
	assert.InDelta(t, -tun.MaxSpeed/3, s.Speed, 1e-9)
}

func TestStep_ClampHoldsForAnyInput(t *testing.T) {
	tun := DefaultTuning()
	r := NewRand(42)

	for i := 0; i < 1000; i++ {
		s := CarState{
			Speed:   r.RangeF(-200, 200),
			Heading: r.RangeF(-6, 6),
		}
		in := Input{
			Forward:  r.Intn(2) == 1,
			Backward: r.Intn(2) == 1,
			Left:     r.Intn(2) == 1,
			Right:    r.Intn(2) == 1,
			Brake:    r.Intn(2) == 1,
		}
		Step(&s, in, tun, r.RangeF(0.001, 1.0))

		require.LessOrEqual(t, s.Speed, tun.MaxSpeed)
		require.GreaterOrEqual(t, s.Speed, -tun.MaxSpeed/3)
	}
}

func TestStep_NoSteeringAtCrawl(t *testing.T) {
	tun := DefaultTuning()
	tun.Friction = 0

	// The gate is strictly above 0.5.
	s := CarState{Speed: 0.5}
	Step(&s, Input{Left: true}, tun, 0.1)
	assert.Equal(t, 0.0, s.Heading)

	s = CarState{Speed: 0.5}
	Step(&s, Input{Right: true}, tun, 0.1)
	assert.Equal(t, 0.0, s.Heading)

	s = CarState{Speed: 0.6}
	Step(&s, Input{Left: true}, tun, 0.1)
	assert.Greater(t, s.Heading, 0.0)
}

func TestStep_TurnAuthorityRampsWithSpeed(t *testing.T) {
	tun := DefaultTuning()
	tun.Friction = 0

	half := CarState{Speed: 10} // half of the full-authority speed
	Step(&half, Input{Left: true}, tun, 0.1)
	assert.InDelta(t, tun.TurnSpeed*0.5*0.1, half.Heading, 1e-9)

	full := CarState{Speed: 40}
	Step(&full, Input{Left: true}, tun, 0.1)
	assert.InDelta(t, tun.TurnSpeed*0.1, full.Heading, 1e-9)
}

func TestStep_ReversingMirrorsSteering(t *testing.T) {
	tun := DefaultTuning()
	tun.Friction = 0

	s := CarState{Speed: -10}
	Step(&s, Input{Left: true}, tun, 0.1)
	assert.Less(t, s.Heading, 0.0)

	s = CarState{Speed: -10}
	Step(&s, Input{Right: true}, tun, 0.1)
	assert.Greater(t, s.Heading, 0.0)
}

func TestStep_PositionFollowsHeading(t *testing.T) {
	tun := DefaultTuning()
	tun.Friction = 0

	s := CarState{Speed: 10}
	Step(&s, Input{}, tun, 0.1)
	assert.InDelta(t, 0.0, s.X, 1e-9)
	assert.InDelta(t, 1.0, s.Z, 1e-9)

	s = CarState{Speed: 10, Heading: 1.5707963267948966}
	Step(&s, Input{}, tun, 0.1)
	assert.InDelta(t, 1.0, s.X, 1e-9)
	assert.InDelta(t, 0.0, s.Z, 1e-9)
}

func TestStep_WheelSpinAccumulates(t *testing.T) {
	tun := DefaultTuning()
	tun.Friction = 0

	s := CarState{Speed: 10}
	Step(&s, Input{}, tun, 0.1)
	Step(&s, Input{}, tun, 0.1)

	assert.InDelta(t, 1.0, s.WheelSpin, 1e-9)
}

func TestStep_DtClampBoundsIntegration(t *testing.T) {
	tun := DefaultTuning()

	s := CarState{}
	Step(&s, Input{Forward: true}, tun, 5.0)

	assert.InDelta(t, tun.Acceleration*MaxStep, s.Speed, 1e-9)
}

func TestStep_NonPositiveDtIsIgnored(t *testing.T) {
	tun := DefaultTuning()
	s := CarState{Speed: 10, X: 1, Z: 2}

	Step(&s, Input{Forward: true}, tun, 0)
	Step(&s, Input{Forward: true}, tun, -0.5)

	assert.Equal(t, CarState{Speed: 10, X: 1, Z: 2}, s)
}

func TestDisplaySpeed_AlwaysNonNegative(t *testing.T) {
	s := CarState{Speed: -20}
	assert.Equal(t, 72, s.DisplaySpeed())

	s = CarState{Speed: 0}
	assert.Equal(t, 0, s.DisplaySpeed())
}
