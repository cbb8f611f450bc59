package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, -1.5, Mean([]float64{-3, 0}), 1e-9)
	assert.Equal(t, 0.0, Mean(nil))
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{5, 1, 9, 3})
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 9.0, max)

	min, max = MinMax([]float64{4.2})
	assert.Equal(t, 4.2, min)
	assert.Equal(t, 4.2, max)

	min, max = MinMax(nil)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 0.0, max)
}
