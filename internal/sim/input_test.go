package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_KeyBindings(t *testing.T) {
	cases := []struct {
		key  string
		get  func(in *Input) bool
		name string
	}{
		{"w", func(in *Input) bool { return in.Forward }, "forward letter"},
		{"W", func(in *Input) bool { return in.Forward }, "forward upper"},
		{"ArrowUp", func(in *Input) bool { return in.Forward }, "forward arrow"},
		{"s", func(in *Input) bool { return in.Backward }, "backward letter"},
		{"ArrowDown", func(in *Input) bool { return in.Backward }, "backward arrow"},
		{"a", func(in *Input) bool { return in.Left }, "left letter"},
		{"ArrowLeft", func(in *Input) bool { return in.Left }, "left arrow"},
		{"d", func(in *Input) bool { return in.Right }, "right letter"},
		{"ArrowRight", func(in *Input) bool { return in.Right }, "right arrow"},
		{" ", func(in *Input) bool { return in.Brake }, "brake space"},
		{"space", func(in *Input) bool { return in.Brake }, "brake name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var in Input
			in.KeyDown(tc.key)
			assert.True(t, tc.get(&in))

			in.KeyUp(tc.key)
			assert.False(t, tc.get(&in))
		})
	}
}

func TestInput_UnboundKeysIgnored(t *testing.T) {
	var in Input
	for _, key := range []string{"x", "Escape", "Shift", "", "1"} {
		in.KeyDown(key)
	}
	assert.Equal(t, Input{}, in)
}

func TestInput_HoldSurvivesOtherKeyRelease(t *testing.T) {
	var in Input
	in.KeyDown("w")
	in.KeyDown("a")
	in.KeyUp("a")

	assert.True(t, in.Forward)
	assert.False(t, in.Left)
}
