package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"citydrive/internal/city"
)

// Stride is floats per vertex: position xyz, normal xyz, colour rgb.
const Stride = 9

// Mesh is an interleaved triangle soup ready for one VBO upload.
type Mesh struct {
	Verts []float32
}

func (m Mesh) VertexCount() int { return len(m.Verts) / Stride }

func vertex(dst []float32, px, py, pz, nx, ny, nz, r, g, b float32) []float32 {
	return append(dst, px, py, pz, nx, ny, nz, r, g, b)
}

// quadFace emits two triangles for the quad a-b-c-d (counter-clockwise seen
// from the normal side).
func quadFace(dst []float32, a, b, c, d, n mgl32.Vec3, r, g, bl float32) []float32 {
	dst = vertex(dst, a.X(), a.Y(), a.Z(), n.X(), n.Y(), n.Z(), r, g, bl)
	dst = vertex(dst, b.X(), b.Y(), b.Z(), n.X(), n.Y(), n.Z(), r, g, bl)
	dst = vertex(dst, c.X(), c.Y(), c.Z(), n.X(), n.Y(), n.Z(), r, g, bl)
	dst = vertex(dst, a.X(), a.Y(), a.Z(), n.X(), n.Y(), n.Z(), r, g, bl)
	dst = vertex(dst, c.X(), c.Y(), c.Z(), n.X(), n.Y(), n.Z(), r, g, bl)
	dst = vertex(dst, d.X(), d.Y(), d.Z(), n.X(), n.Y(), n.Z(), r, g, bl)
	return dst
}

// Box returns an axis-aligned w*h*d box centered at the origin.
func Box(w, h, d float32, c city.RGB) Mesh {
	r, g, b := c.Vec3()
	x, y, z := w/2, h/2, d/2

	var v []float32
	// +Z
	v = quadFace(v,
		mgl32.Vec3{-x, -y, z}, mgl32.Vec3{x, -y, z}, mgl32.Vec3{x, y, z}, mgl32.Vec3{-x, y, z},
		mgl32.Vec3{0, 0, 1}, r, g, b)
	// -Z
	v = quadFace(v,
		mgl32.Vec3{x, -y, -z}, mgl32.Vec3{-x, -y, -z}, mgl32.Vec3{-x, y, -z}, mgl32.Vec3{x, y, -z},
		mgl32.Vec3{0, 0, -1}, r, g, b)
	// +X
	v = quadFace(v,
		mgl32.Vec3{x, -y, z}, mgl32.Vec3{x, -y, -z}, mgl32.Vec3{x, y, -z}, mgl32.Vec3{x, y, z},
		mgl32.Vec3{1, 0, 0}, r, g, b)
	// -X
	v = quadFace(v,
		mgl32.Vec3{-x, -y, -z}, mgl32.Vec3{-x, -y, z}, mgl32.Vec3{-x, y, z}, mgl32.Vec3{-x, y, -z},
		mgl32.Vec3{-1, 0, 0}, r, g, b)
	// +Y
	v = quadFace(v,
		mgl32.Vec3{-x, y, z}, mgl32.Vec3{x, y, z}, mgl32.Vec3{x, y, -z}, mgl32.Vec3{-x, y, -z},
		mgl32.Vec3{0, 1, 0}, r, g, b)
	// -Y
	v = quadFace(v,
		mgl32.Vec3{-x, -y, -z}, mgl32.Vec3{x, -y, -z}, mgl32.Vec3{x, -y, z}, mgl32.Vec3{-x, -y, z},
		mgl32.Vec3{0, -1, 0}, r, g, b)

	return Mesh{Verts: v}
}

// Cylinder returns a cylinder along the Y axis: radius, total height, and
// side count. Both caps are closed.
func Cylinder(radius, height float32, segments int, c city.RGB) Mesh {
	r, g, b := c.Vec3()
	y := height / 2

	var v []float32
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segments)
		a1 := 2 * math.Pi * float64(i+1) / float64(segments)
		x0, z0 := float32(math.Cos(a0)), float32(math.Sin(a0))
		x1, z1 := float32(math.Cos(a1)), float32(math.Sin(a1))

		p00 := mgl32.Vec3{radius * x0, -y, radius * z0}
		p01 := mgl32.Vec3{radius * x0, y, radius * z0}
		p10 := mgl32.Vec3{radius * x1, -y, radius * z1}
		p11 := mgl32.Vec3{radius * x1, y, radius * z1}

		// Side: flat-shaded facet normal.
		n := mgl32.Vec3{x0 + x1, 0, z0 + z1}.Normalize()
		v = quadFace(v, p00, p10, p11, p01, n, r, g, b)

		// Caps.
		v = vertex(v, 0, y, 0, 0, 1, 0, r, g, b)
		v = vertex(v, p01.X(), p01.Y(), p01.Z(), 0, 1, 0, r, g, b)
		v = vertex(v, p11.X(), p11.Y(), p11.Z(), 0, 1, 0, r, g, b)

		v = vertex(v, 0, -y, 0, 0, -1, 0, r, g, b)
		v = vertex(v, p10.X(), p10.Y(), p10.Z(), 0, -1, 0, r, g, b)
		v = vertex(v, p00.X(), p00.Y(), p00.Z(), 0, -1, 0, r, g, b)
	}

	return Mesh{Verts: v}
}

// Quad returns a w*h rectangle centered at the origin, facing +Z.
func Quad(w, h float32, c city.RGB) Mesh {
	r, g, b := c.Vec3()
	x, y := w/2, h/2
	return Mesh{Verts: quadFace(nil,
		mgl32.Vec3{-x, -y, 0}, mgl32.Vec3{x, -y, 0}, mgl32.Vec3{x, y, 0}, mgl32.Vec3{-x, y, 0},
		mgl32.Vec3{0, 0, 1}, r, g, b)}
}

// PlaneXZ returns a flat w (along X) by l (along Z) rectangle on the ground
// plane, facing +Y.
func PlaneXZ(w, l float32, c city.RGB) Mesh {
	r, g, b := c.Vec3()
	x, z := w/2, l/2
	return Mesh{Verts: quadFace(nil,
		mgl32.Vec3{-x, 0, z}, mgl32.Vec3{x, 0, z}, mgl32.Vec3{x, 0, -z}, mgl32.Vec3{-x, 0, -z},
		mgl32.Vec3{0, 1, 0}, r, g, b)}
}

// Merge concatenates meshes into one.
func Merge(meshes ...Mesh) Mesh {
	var v []float32
	for _, m := range meshes {
		v = append(v, m.Verts...)
	}
	return Mesh{Verts: v}
}

// Append writes m's vertices into dst with the model transform applied.
// Normals take only the rotation part; transforms here are rigid, never
// scaled.
func Append(dst []float32, m Mesh, model mgl32.Mat4) []float32 {
	nrm := model.Mat3()
	for i := 0; i < len(m.Verts); i += Stride {
		p := mgl32.TransformCoordinate(mgl32.Vec3{m.Verts[i], m.Verts[i+1], m.Verts[i+2]}, model)
		n := nrm.Mul3x1(mgl32.Vec3{m.Verts[i+3], m.Verts[i+4], m.Verts[i+5]})
		dst = append(dst,
			p.X(), p.Y(), p.Z(),
			n.X(), n.Y(), n.Z(),
			m.Verts[i+6], m.Verts[i+7], m.Verts[i+8])
	}
	return dst
}
