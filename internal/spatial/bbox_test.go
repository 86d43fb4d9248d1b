package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBBox(t *testing.T) {
	b, err := ParseBBox(" -0.5, 51.2 ,0.3,51.7")
	require.NoError(t, err)
	assert.Equal(t, BBox{MinLng: -0.5, MinLat: 51.2, MaxLng: 0.3, MaxLat: 51.7}, b)
	assert.Equal(t, "-0.5,51.2,0.3,51.7", b.String())
}

func TestParseBBoxRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"1,2,3",
		"1,2,3,4,5",
		"a,2,3,4",
		"1,,3,4",
		"NaN,1,2,3",
		"1,2,Inf,3",
	} {
		_, err := ParseBBox(in)
		assert.Error(t, err, in)
	}
}

func TestBBoxContains(t *testing.T) {
	b, err := ParseBBox("-1,-1,1,1")
	require.NoError(t, err)

	assert.True(t, b.Contains(0, 0))
	assert.True(t, b.Contains(1, -1))
	assert.False(t, b.Contains(10, 10))

	inverted := BBox{MinLng: 1, MinLat: 1, MaxLng: -1, MaxLat: -1}
	assert.False(t, inverted.Contains(0, 0))
}

func TestBounds(t *testing.T) {
	b := NewBounds()
	assert.False(t, b.Contains(0, 0))
	assert.Zero(t, b.HalfDiagonalMeters())

	b.Add(51.5012, -0.1234).Add(51.5038, -0.1211)
	assert.Equal(t, 51.5012, b.MinLat)
	assert.Equal(t, 51.5038, b.MaxLat)
	assert.Equal(t, -0.1234, b.MinLng)
	assert.Equal(t, -0.1211, b.MaxLng)
	assert.True(t, b.Contains(51.502, -0.122))
	assert.False(t, b.Contains(51.5, -0.12))

	// ~330m corner to corner
	assert.InDelta(t, 165, b.HalfDiagonalMeters(), 15)
}

func TestHaversineDistance(t *testing.T) {
	// London to Paris
	d := HaversineDistance(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 343_500, d, 2_000)
	assert.Zero(t, HaversineDistance(10, 10, 10, 10))
}
