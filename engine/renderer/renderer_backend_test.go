package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMSAASampleCountValid(t *testing.T) {
	for _, c := range []MSAASampleCount{MSAAOff, MSAA4x, MSAA8x, MSAA16x} {
		assert.Truef(t, c.Valid(), "sample count %d", c)
	}
	for _, c := range []MSAASampleCount{0, 2, 3, 6, 32} {
		assert.Falsef(t, c.Valid(), "sample count %d", c)
	}
}
