package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 66.7, Percentage(2, 3))
	assert.Equal(t, 100.0, Percentage(5, 5))
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 12.5, Percentage(1, 8))
}

func TestAveragePer(t *testing.T) {
	assert.Equal(t, int64(0), AveragePer(10, 0))
	assert.Equal(t, int64(3), AveragePer(10, 3)) // 3.33
	assert.Equal(t, int64(3), AveragePer(5, 2))  // 2.5 rounds up
	assert.Equal(t, int64(7), AveragePer(7, 1))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.2, RoundTo(1.24, 1))
	assert.Equal(t, 1.3, RoundTo(1.25, 1))
	assert.Equal(t, 2.0, RoundTo(1.96, 1))
	assert.Equal(t, 3.0, RoundTo(2.5, 0))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.InDelta(t, 100.0, Sum([]float64{33.3, 33.3, 33.3}), 0.5)
}
