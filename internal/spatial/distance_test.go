package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	// Joshimath to Sankri, both in Uttarakhand
	d := DistanceKm(30.5555, 79.5641, 31.0760, 78.1862)
	assert.InDelta(t, 145, d, 5)

	// Same point
	assert.InDelta(t, 0, DistanceKm(30.74, 79.56, 30.74, 79.56), 1e-9)

	// Symmetric
	forward := DistanceKm(15.3, 74.2, 30.74, 79.56)
	backward := DistanceKm(30.74, 79.56, 15.3, 74.2)
	assert.InDelta(t, forward, backward, 1e-9)
}
