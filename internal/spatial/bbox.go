package spatial

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BBox is a viewport in degrees, written as "minLng,minLat,maxLng,maxLat"
type BBox struct {
	MinLng float64
	MinLat float64
	MaxLng float64
	MaxLat float64
}

// ParseBBox parses "minLng,minLat,maxLng,maxLat". Every part must be a finite number.
func ParseBBox(s string) (BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BBox{}, fmt.Errorf("bbox needs 4 values, got %d", len(parts))
	}

	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BBox{}, fmt.Errorf("bbox value %d: %w", i, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return BBox{}, fmt.Errorf("bbox value %d is not finite", i)
		}
		vals[i] = v
	}

	return BBox{MinLng: vals[0], MinLat: vals[1], MaxLng: vals[2], MaxLat: vals[3]}, nil
}

// String formats the box the way ParseBBox reads it
func (b BBox) String() string {
	return strconv.FormatFloat(b.MinLng, 'f', -1, 64) + "," +
		strconv.FormatFloat(b.MinLat, 'f', -1, 64) + "," +
		strconv.FormatFloat(b.MaxLng, 'f', -1, 64) + "," +
		strconv.FormatFloat(b.MaxLat, 'f', -1, 64)
}

// Contains reports whether (lat, lng) lies inside the box, edges included.
// Matches the SQL BETWEEN predicate, so an inverted box contains nothing.
func (b BBox) Contains(lat, lng float64) bool {
	return lng >= b.MinLng && lng <= b.MaxLng && lat >= b.MinLat && lat <= b.MaxLat
}

// Bounds is the rectangle spanned by a set of coordinates
type Bounds struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
	empty          bool
}

// NewBounds starts an empty rectangle
func NewBounds() *Bounds {
	return &Bounds{empty: true}
}

// Add extends the rectangle to include (lat, lng)
func (b *Bounds) Add(lat, lng float64) *Bounds {
	if b.empty {
		b.MinLat, b.MaxLat, b.MinLng, b.MaxLng = lat, lat, lng, lng
		b.empty = false
		return b
	}
	b.MinLat = math.Min(b.MinLat, lat)
	b.MaxLat = math.Max(b.MaxLat, lat)
	b.MinLng = math.Min(b.MinLng, lng)
	b.MaxLng = math.Max(b.MaxLng, lng)
	return b
}

// Contains reports whether (lat, lng) is inside the rectangle
func (b *Bounds) Contains(lat, lng float64) bool {
	if b.empty {
		return false
	}
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// HalfDiagonalMeters is half the great-circle distance between opposite corners
func (b *Bounds) HalfDiagonalMeters() float64 {
	if b.empty {
		return 0
	}
	return HaversineDistance(b.MinLat, b.MinLng, b.MaxLat, b.MaxLng) / 2
}
