package city

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Vec3 returns the colour as 0..1 floats for vertex data.
func (c RGB) Vec3() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// Palette is the fixed colour set for the city. Buildings pick uniformly
// from the Buildings slice; everything else is a single named colour.
var Palette = struct {
	Sky       RGB
	Ground    RGB
	Road      RGB
	Marking   RGB
	Window    RGB
	Buildings []RGB
}{
	Sky:     RGB{R: 135, G: 184, B: 222},
	Ground:  RGB{R: 52, G: 64, B: 52},
	Road:    RGB{R: 45, G: 47, B: 52},
	Marking: RGB{R: 220, G: 210, B: 140},
	Window:  RGB{R: 255, G: 220, B: 130},
	Buildings: []RGB{
		{R: 136, G: 153, B: 170},
		{R: 153, G: 136, B: 119},
		{R: 119, G: 136, B: 153},
		{R: 170, G: 153, B: 136},
		{R: 138, G: 138, B: 146},
		{R: 110, G: 123, B: 139},
	},
}
