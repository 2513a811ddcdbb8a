package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"citydrive/internal/city"
)

// Car geometry, world units. Heading 0 points the nose along +Z.
const (
	bodyW, bodyH, bodyL    = 2.0, 0.8, 4.5
	cabinW, cabinH, cabinL = 1.8, 0.7, 2.2

	wheelRadius = 0.4
	wheelWidth  = 0.3
	hubRadius   = 0.18
	hubWidth    = 0.32
	track       = 1.1 // lateral wheel offset
	wheelBase   = 1.3 // longitudinal wheel offset
)

var carColors = struct {
	Body      city.RGB
	Cabin     city.RGB
	Glass     city.RGB
	Headlight city.RGB
	Taillight city.RGB
	Tire      city.RGB
	Hubcap    city.RGB
}{
	Body:      city.RGB{R: 190, G: 40, B: 40},
	Cabin:     city.RGB{R: 25, G: 30, B: 38},
	Glass:     city.RGB{R: 70, G: 100, B: 130},
	Headlight: city.RGB{R: 255, G: 240, B: 200},
	Taillight: city.RGB{R: 200, G: 30, B: 30},
	Tire:      city.RGB{R: 28, G: 28, B: 30},
	Hubcap:    city.RGB{R: 180, G: 180, B: 188},
}

// Part is one rigid piece of the car, placed relative to the car frame.
type Part struct {
	Mesh   Mesh
	Offset mgl32.Vec3
	Roll   float32 // fixed rotation about local Z; lays wheel cylinders onto their axle
	Spins  bool    // takes the shared wheel spin about local X
}

// Model returns the part's transform inside the car frame: offset, then spin
// about the axle, then the fixed roll.
func (p Part) Model(spin float32) mgl32.Mat4 {
	m := mgl32.Translate3D(p.Offset.X(), p.Offset.Y(), p.Offset.Z())
	if p.Spins {
		m = m.Mul4(mgl32.HomogRotate3DX(spin))
	}
	if p.Roll != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(p.Roll))
	}
	return m
}

// Car is the fixed part hierarchy. Wheels indexes the four spinning parts
// inside Parts; they all share one spin angle.
type Car struct {
	Parts  []Part
	Wheels [4]int
}

// mirror duplicates a part across the car's long axis: negate the lateral
// offset and, for rolled parts, flip the roll by pi.
func mirror(p Part) Part {
	p.Offset[0] = -p.Offset[0]
	if p.Roll != 0 {
		p.Roll += math.Pi
	}
	return p
}

// BuildCar assembles the box-geometry vehicle. No randomness; every call
// returns identical geometry.
func BuildCar() Car {
	body := Part{
		Mesh:   Box(bodyW, bodyH, bodyL, carColors.Body),
		Offset: mgl32.Vec3{0, 0.7, 0},
	}
	cabin := Part{
		Mesh:   Box(cabinW, cabinH, cabinL, carColors.Cabin),
		Offset: mgl32.Vec3{0, 1.35, -0.6},
	}

	// Glass panes sit just proud of the cabin's front and rear faces.
	windshield := Part{
		Mesh:   Box(1.6, 0.5, 0.04, carColors.Glass),
		Offset: mgl32.Vec3{0, 1.4, 0.52},
	}
	rearWindow := Part{
		Mesh:   Box(1.6, 0.5, 0.04, carColors.Glass),
		Offset: mgl32.Vec3{0, 1.4, -1.72},
	}

	headlight := Part{
		Mesh:   Box(0.3, 0.25, 0.12, carColors.Headlight),
		Offset: mgl32.Vec3{0.6, 0.7, bodyL/2 + 0.01},
	}
	taillight := Part{
		Mesh:   Box(0.3, 0.25, 0.12, carColors.Taillight),
		Offset: mgl32.Vec3{0.6, 0.7, -(bodyL/2 + 0.01)},
	}

	wheelMesh := Merge(
		Cylinder(wheelRadius, wheelWidth, 12, carColors.Tire),
		Cylinder(hubRadius, hubWidth, 8, carColors.Hubcap),
	)
	frontWheel := Part{
		Mesh:   wheelMesh,
		Offset: mgl32.Vec3{track, wheelRadius, wheelBase},
		Roll:   math.Pi / 2,
		Spins:  true,
	}
	rearWheel := frontWheel
	rearWheel.Offset = mgl32.Vec3{track, wheelRadius, -wheelBase}

	car := Car{
		Parts: []Part{
			body, cabin,
			windshield, rearWindow,
			headlight, mirror(headlight),
			taillight, mirror(taillight),
			frontWheel, mirror(frontWheel),
			rearWheel, mirror(rearWheel),
		},
	}
	car.Wheels = [4]int{8, 9, 10, 11}
	return car
}
