package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"citydrive/internal/scene"
)

// Sun direction and ambient floor for the single directional light.
var sunDir = mgl32.Vec3{-0.45, -0.8, -0.35}.Normalize()

const sunAmbient = 0.35

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	prog uint32

	// Static city geometry, uploaded once.
	cityVAO   uint32
	cityVBO   uint32
	cityCount int32

	// Car geometry: all parts in one static VBO, drawn range by range with
	// a per-part model matrix.
	carVAO    uint32
	carVBO    uint32
	carParts  []scene.Part
	carRanges [][2]int32

	uProj     int32
	uView     int32
	uModel    int32
	uLightDir int32
	uAmbient  int32
}

func NewRenderer(cityMesh scene.Mesh, car scene.Car) (*Renderer, error) {
	prog, err := linkProgram(sceneVertSrc, sceneFragSrc)
	if err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}

	r := &Renderer{prog: prog}

	gl.UseProgram(prog)
	r.uProj = gl.GetUniformLocation(prog, gl.Str("uProj\x00"))
	r.uView = gl.GetUniformLocation(prog, gl.Str("uView\x00"))
	r.uModel = gl.GetUniformLocation(prog, gl.Str("uModel\x00"))
	r.uLightDir = gl.GetUniformLocation(prog, gl.Str("uLightDir\x00"))
	r.uAmbient = gl.GetUniformLocation(prog, gl.Str("uAmbient\x00"))
	gl.Uniform3f(r.uLightDir, sunDir.X(), sunDir.Y(), sunDir.Z())
	gl.Uniform1f(r.uAmbient, sunAmbient)

	r.cityVAO, r.cityVBO = uploadMesh(cityMesh.Verts)
	r.cityCount = int32(cityMesh.VertexCount())

	// Concatenate the car parts; remember each part's vertex range.
	var carVerts []float32
	for _, p := range car.Parts {
		first := int32(len(carVerts) / scene.Stride)
		carVerts = append(carVerts, p.Mesh.Verts...)
		r.carRanges = append(r.carRanges, [2]int32{first, int32(p.Mesh.VertexCount())})
	}
	r.carParts = car.Parts
	r.carVAO, r.carVBO = uploadMesh(carVerts)

	gl.BindVertexArray(0)
	return r, nil
}

// uploadMesh creates a VAO/VBO pair holding the interleaved vertices with
// the standard position/normal/colour layout.
func uploadMesh(verts []float32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	stride := int32(scene.Stride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, glOffset(6*4))
	return vao, vbo
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.cityVBO, r.carVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.cityVAO, r.carVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int, proj, view mgl32.Mat4) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
}

// DrawCity renders the static city bake under an identity model transform.
func (r *Renderer) DrawCity() {
	ident := mgl32.Ident4()
	gl.BindVertexArray(r.cityVAO)
	gl.UniformMatrix4fv(r.uModel, 1, false, &ident[0])
	gl.DrawArrays(gl.TRIANGLES, 0, r.cityCount)
}

// DrawCar renders every part under pose, spinning the wheel parts by spin.
func (r *Renderer) DrawCar(pose mgl32.Mat4, spin float32) {
	gl.BindVertexArray(r.carVAO)
	for i, p := range r.carParts {
		model := pose.Mul4(p.Model(spin))
		gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
		gl.DrawArrays(gl.TRIANGLES, r.carRanges[i][0], r.carRanges[i][1])
	}
}
