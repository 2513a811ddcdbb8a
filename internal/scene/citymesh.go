package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"citydrive/internal/city"
)

// Flat pieces are lifted in tiers so they never z-fight: ground, then road
// surfaces, then centerline stripes.
const (
	roadLift = 0.01
	markLift = 0.02
)

// BuildCity bakes a generated layout into one static mesh. Runs once at
// startup; the result is immutable.
func BuildCity(lay city.Layout) Mesh {
	var out []float32

	ground := PlaneXZ(lay.GroundSize, lay.GroundSize, city.Palette.Ground)
	out = Append(out, ground, mgl32.Ident4())

	for _, rd := range lay.Roads {
		out = Append(out, PlaneXZ(rd.Width, rd.Length, city.Palette.Road), stripModel(rd, roadLift))
	}
	for _, mk := range lay.Markings {
		out = Append(out, PlaneXZ(mk.Width, mk.Length, city.Palette.Marking), stripModel(mk, markLift))
	}

	pane := Quad(city.WindowPaneW, city.WindowPaneH, city.Palette.Window)
	for _, b := range lay.Buildings {
		box := Box(b.W, b.H, b.D, b.Color)
		out = Append(out, box, mgl32.Translate3D(b.X, b.H/2, b.Z))

		for _, w := range b.Windows {
			m := mgl32.Translate3D(w.X, w.Y, w.Z).Mul4(mgl32.HomogRotate3DY(w.Rotation))
			out = Append(out, pane, m)
		}
	}

	return Mesh{Verts: out}
}

// stripModel places a road strip: lift off the ground, then yaw. Rotation 0
// runs the length along +Z.
func stripModel(rd city.Road, lift float32) mgl32.Mat4 {
	return mgl32.Translate3D(rd.X, lift, rd.Z).Mul4(mgl32.HomogRotate3DY(rd.Rotation))
}
