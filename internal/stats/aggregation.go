// Package stats holds the small numeric helpers used by the analytics summary.
package stats

import "math"

// RoundTo rounds v to the given number of decimal places, halves away from zero
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// Percentage returns count as a share of total, rounded to one decimal place.
// A zero total yields 0.
func Percentage(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return RoundTo(float64(count)*100/float64(total), 1)
}

// AveragePer returns round(total / buckets), or 0 when there are no buckets
func AveragePer(total int64, buckets int) int64 {
	if buckets <= 0 {
		return 0
	}
	return int64(math.Round(float64(total) / float64(buckets)))
}

// Sum adds up values
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}
