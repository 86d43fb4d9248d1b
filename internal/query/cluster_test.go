package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClusterPrecision(t *testing.T) {
	cases := map[int]int{
		1: 1, 5: 1, 8: 1,
		9: 2, 10: 2, 12: 2,
		13: 3, 14: 3, 15: 3,
		16: 4, 19: 4, 20: 4,
	}
	for zoom, want := range cases {
		assert.Equal(t, want, ClusterPrecision(zoom), "zoom %d", zoom)
	}
}

func TestClusterDistance(t *testing.T) {
	assert.Equal(t, 50, ClusterDistance(5))
	assert.Equal(t, 40, ClusterDistance(10))
	assert.Equal(t, 30, ClusterDistance(14))
	assert.Equal(t, 20, ClusterDistance(18))
}

func TestClampZoom(t *testing.T) {
	assert.Equal(t, DefaultZoom, ClampZoom(0))
	assert.Equal(t, 1, ClampZoom(-4))
	assert.Equal(t, 20, ClampZoom(42))
	assert.Equal(t, 13, ClampZoom(13))
}

func TestClampPointLimit(t *testing.T) {
	assert.Equal(t, 5000, ClampPointLimit(0))
	assert.Equal(t, 1000, ClampPointLimit(10))
	assert.Equal(t, 10000, ClampPointLimit(50000))
	assert.Equal(t, 2500, ClampPointLimit(2500))
}

func TestUsePoints(t *testing.T) {
	assert.False(t, UsePoints(15))
	assert.True(t, UsePoints(16))
	assert.True(t, UsePoints(20))
}
