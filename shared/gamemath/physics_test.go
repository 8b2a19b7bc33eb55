package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.1, 0.5, 2))
	assert.Equal(t, 2.0, Clamp(3, 0.5, 2))
	assert.Equal(t, 1.0, Clamp(1, 0.5, 2))
}

func TestWrapX(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		want float64
	}{
		{"on_screen", 100, 100},
		{"partly_off", -200, -200},
		{"exactly_one_width_off", -256, -256},
		{"fully_off", -257, 1900},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, WrapX(c.x, 256, 1900))
		})
	}
}
