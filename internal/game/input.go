package game

import "github.com/go-gl/glfw/v3.3/glfw"

// keyName translates a GLFW key to the textual identifier the input state
// binds. Unbound keys map to "".
func keyName(k glfw.Key) string {
	switch k {
	case glfw.KeyW:
		return "w"
	case glfw.KeyS:
		return "s"
	case glfw.KeyA:
		return "a"
	case glfw.KeyD:
		return "d"
	case glfw.KeyUp:
		return "ArrowUp"
	case glfw.KeyDown:
		return "ArrowDown"
	case glfw.KeyLeft:
		return "ArrowLeft"
	case glfw.KeyRight:
		return "ArrowRight"
	case glfw.KeySpace:
		return " "
	}
	return ""
}
