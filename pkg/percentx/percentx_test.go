package percentx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChange(t *testing.T) {
	pct, ok := Change(1000, 1060)
	assert.True(t, ok)
	assert.InDelta(t, 6.0, pct, 1e-9)

	pct, ok = Change(100, 99)
	assert.True(t, ok)
	assert.InDelta(t, -1.0, pct, 1e-9)

	_, ok = Change(0, 100)
	assert.False(t, ok)
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "6.00%", Fixed(6, 2))
	assert.Equal(t, "-1.23%", Fixed(-1.234, 2))
}

func TestFromRate(t *testing.T) {
	assert.Equal(t, "0.0100%", FromRate(0.0001, 4))
	assert.Equal(t, "-0.0250%", FromRate(-0.00025, 4))
}
