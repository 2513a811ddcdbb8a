package game

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"citydrive/internal/sim"
)

// hudInterval throttles title updates; retitling every frame makes some
// window managers stutter.
const hudInterval = 0.1

// hud shows the speed readout in the window title.
type hud struct {
	window *glfw.Window
	title  string
	nextAt float64
	shown  int
}

func newHUD(window *glfw.Window, title string) *hud {
	return &hud{window: window, title: title, shown: -1}
}

func (h *hud) Update(now float64, car *sim.CarState) {
	if now < h.nextAt {
		return
	}
	v := car.DisplaySpeed()
	if v == h.shown {
		return
	}
	h.nextAt = now + hudInterval
	h.shown = v
	h.window.SetTitle(fmt.Sprintf("%s | %d km/h", h.title, v))
}
