package city

import (
	"math"

	"citydrive/internal/sim"
)

// Building envelope, world units.
const (
	minSide   = 15.0
	maxSide   = 35.0
	minHeight = 20.0
	maxHeight = 80.0
)

// MarkingWidth is the centerline stripe width.
const MarkingWidth = 0.5

// Window pane quad size, used by the mesh bake.
const (
	WindowPaneW = 1.4
	WindowPaneH = 1.8
)

// Pane lattice: first pane sits edgeStart units in from a face edge, the
// lattice stops edgeStop units short of the far edge and the roof line.
// Panes float winInset off the wall so they never z-fight the facade.
const (
	edgeStart = 3.0
	edgeStop  = 2.0
	winStepX  = 4.0
	winInset  = 0.06
)

// Params controls the street grid. All lengths are world units.
type Params struct {
	GridRadius    int
	BlockSize     float64
	RoadWidth     float64
	RoadLength    float64
	WindowSpacing float64
}

// DefaultParams returns the stock 7x7 grid.
func DefaultParams() Params {
	return Params{
		GridRadius:    3,
		BlockSize:     80,
		RoadWidth:     15,
		RoadLength:    600,
		WindowSpacing: 4,
	}
}

// Road is one flat strip on the ground plane, centered at (X,Z). Rotation 0
// runs the length along +Z; the cross streets carry pi/2.
type Road struct {
	X, Z     float32
	Width    float32
	Length   float32
	Rotation float32
}

// Window is one decorative pane, centered at (X,Y,Z), facing the yaw given
// by Rotation (0 faces +Z).
type Window struct {
	X, Y, Z  float32
	Rotation float32
}

// Building is an axis-aligned box footprint with its pane lattice.
// (X,Z) is the footprint center; the box spans [0,H] vertically.
type Building struct {
	X, Z    float32
	W, D, H float32
	Color   RGB
	Windows []Window
}

// Layout is everything Generate emits. Immutable after creation; the render
// layer bakes it into static vertex buffers once.
type Layout struct {
	Roads      []Road
	Markings   []Road
	Buildings  []Building
	GroundSize float32
}

// Generate builds the street grid and skyline for the given seed. Identical
// inputs produce identical layouts: every cell draws from its own
// hash-derived stream, so no cell's randomness depends on iteration order.
func Generate(p Params, seed uint64) Layout {
	lay := Layout{}
	r := p.GridRadius
	n := 2*r + 1

	lay.Roads = make([]Road, 0, 2*n)
	lay.Markings = make([]Road, 0, 2*n)
	for i := -r; i <= r; i++ {
		at := float32(float64(i) * p.BlockSize)
		ns := Road{X: at, Width: float32(p.RoadWidth), Length: float32(p.RoadLength)}
		ew := Road{Z: at, Width: float32(p.RoadWidth), Length: float32(p.RoadLength), Rotation: math.Pi / 2}
		lay.Roads = append(lay.Roads, ns, ew)

		// Centerline stripe shares the road transform, only thinner.
		ns.Width = MarkingWidth
		ew.Width = MarkingWidth
		lay.Markings = append(lay.Markings, ns, ew)
	}

	for i := -r; i <= r; i++ {
		for j := -r; j <= r; j++ {
			if i == 0 && j == 0 {
				continue
			}
			cr := sim.NewRand(sim.Hash2D(seed^0xB10C5EEDFACADE01, i, j))
			cx := (float64(i) + 0.5) * p.BlockSize
			cz := (float64(j) + 0.5) * p.BlockSize

			count := 1 + int(cr.Float64()*2)
			for k := 0; k < count; k++ {
				lay.Buildings = append(lay.Buildings, makeBuilding(p, cr, cx, cz))
			}
		}
	}

	lay.GroundSize = float32(2 * p.RoadLength)
	return lay
}

func makeBuilding(p Params, cr *sim.Rand, cx, cz float64) Building {
	w := cr.RangeF(minSide, maxSide)
	d := cr.RangeF(minSide, maxSide)
	h := cr.RangeF(minHeight, maxHeight)

	// Jitter within the cell interior, keeping the footprint clear of the
	// bounding roads.
	offset := p.BlockSize/2 - p.RoadWidth
	jx := cr.RangeF(-(offset - w/2), offset-w/2)
	jz := cr.RangeF(-(offset - d/2), offset-d/2)

	b := Building{
		X:     float32(cx + jx),
		Z:     float32(cz + jz),
		W:     float32(w),
		D:     float32(d),
		H:     float32(h),
		Color: Palette.Buildings[cr.Intn(len(Palette.Buildings))],
	}
	b.Windows = panes(p, b)
	return b
}

// panes lays the window lattice over all four wall faces. Opposite faces
// mirror each other: negate the lateral coordinate and flip the yaw by pi.
func panes(p Params, b Building) []Window {
	var out []Window
	w := float64(b.W)
	d := float64(b.D)
	h := float64(b.H)

	for y := edgeStart; y <= h-edgeStop; y += p.WindowSpacing {
		fy := float32(y)

		// +Z / -Z faces span the building width.
		for u := edgeStart; u <= w-edgeStop; u += winStepX {
			lx := float32(u - w/2)
			fz := float32(d/2 + winInset)
			out = append(out,
				Window{X: b.X + lx, Y: fy, Z: b.Z + fz},
				Window{X: b.X - lx, Y: fy, Z: b.Z - fz, Rotation: math.Pi},
			)
		}

		// +X / -X faces span the depth.
		for u := edgeStart; u <= d-edgeStop; u += winStepX {
			lz := float32(u - d/2)
			fx := float32(w/2 + winInset)
			out = append(out,
				Window{X: b.X + fx, Y: fy, Z: b.Z + lz, Rotation: math.Pi / 2},
				Window{X: b.X - fx, Y: fy, Z: b.Z - lz, Rotation: -math.Pi / 2},
			)
		}
	}
	return out
}
