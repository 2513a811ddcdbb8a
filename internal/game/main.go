package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"citydrive/internal/city"
	"citydrive/internal/config"
	"citydrive/internal/scene"
	"citydrive/internal/sim"
)

// Run owns the window, the GL context, and the frame loop. It returns when
// the window closes. config.Load must have run first.
func Run(log zerolog.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info().
		Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Str("version", gl.GoStr(gl.GetString(gl.VERSION))).
		Msg("opengl ready")

	// World generation.
	seed := resolveSeed()
	layout := city.Generate(cityParams(), seed)
	cityMesh := scene.BuildCity(layout)
	car := scene.BuildCar()
	log.Info().
		Uint64("seed", seed).
		Int("roads", len(layout.Roads)).
		Int("buildings", len(layout.Buildings)).
		Int("vertices", cityMesh.VertexCount()).
		Msg("city baked")

	rend, err := NewRenderer(cityMesh, car)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	// GL state. Pane quads are two-sided, so no face culling.
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	skyR, skyG, skyB := city.Palette.Sky.Vec3()
	gl.ClearColor(skyR, skyG, skyB, 1.0)

	tun := tuning()
	state := sim.CarState{}
	input := &sim.Input{}
	cam := sim.NewChaseCamera(&state)

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		name := keyName(key)
		if name == "" {
			return
		}
		switch action {
		case glfw.Press:
			input.KeyDown(name)
		case glfw.Release:
			input.KeyUp(name)
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		log.Debug().Int("width", width).Int("height", height).Msg("framebuffer resized")
	})

	hud := newHUD(window, config.GetString("window.title"))
	fov := float32(config.GetFloat("camera.fov"))
	near := float32(config.GetFloat("camera.near"))
	far := float32(config.GetFloat("camera.far"))

	prevReset := false
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > sim.MaxStep {
			dt = sim.MaxStep
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		// R re-centers the car and settles the camera behind it.
		resetDown := window.GetKey(glfw.KeyR) == glfw.Press
		if resetDown && !prevReset {
			state = sim.CarState{}
			cam = sim.NewChaseCamera(&state)
			log.Info().Msg("car reset")
		}
		prevReset = resetDown

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		sim.Step(&state, *input, tun, dt)
		cam.Update(&state, dt)
		hud.Update(now, &state)

		proj := mgl32.Perspective(mgl32.DegToRad(fov), float32(fbW)/float32(fbH), near, far)
		lx, ly, lz := cam.LookTarget(&state)
		view := mgl32.LookAtV(
			mgl32.Vec3{float32(cam.X), float32(cam.Y), float32(cam.Z)},
			mgl32.Vec3{float32(lx), float32(ly), float32(lz)},
			mgl32.Vec3{0, 1, 0},
		)

		rend.BeginFrame(fbW, fbH, proj, view)
		rend.DrawCity()

		pose := mgl32.Translate3D(float32(state.X), 0, float32(state.Z)).
			Mul4(mgl32.HomogRotate3DY(float32(state.Heading)))
		rend.DrawCar(pose, float32(state.WheelSpin))

		window.SwapBuffers()
	}

	log.Info().Msg("shutting down")
	return nil
}

// resolveSeed picks the world seed: the CITYDRIVE_SEED environment variable
// wins, then the config value, then the clock.
func resolveSeed() uint64 {
	if s := os.Getenv("CITYDRIVE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return v
		}
	}
	if v := config.GetUint64("seed"); v != 0 {
		return v
	}
	return uint64(time.Now().UnixNano())
}

func cityParams() city.Params {
	return city.Params{
		GridRadius:    config.GetInt("city.gridRadius"),
		BlockSize:     config.GetFloat("city.blockSize"),
		RoadWidth:     config.GetFloat("city.roadWidth"),
		RoadLength:    config.GetFloat("city.roadLength"),
		WindowSpacing: config.GetFloat("city.windowSpacing"),
	}
}

func tuning() sim.Tuning {
	return sim.Tuning{
		MaxSpeed:     config.GetFloat("physics.maxSpeed"),
		Acceleration: config.GetFloat("physics.acceleration"),
		Braking:      config.GetFloat("physics.braking"),
		Friction:     config.GetFloat("physics.friction"),
		TurnSpeed:    config.GetFloat("physics.turnSpeed"),
	}
}
