package query

// Map tuning
const (
	DefaultZoom = 10
	MinZoom     = 1
	MaxZoom     = 20

	// PointZoomThreshold is the zoom from which individual points are drawn instead of clusters
	PointZoomThreshold = 16

	// MaxClusters caps a cluster response to the densest cells
	MaxClusters = 1000

	DefaultPointLimit = 5000
	MinPointLimit     = 1000
	MaxPointLimit     = 10000
)

// ClampZoom keeps zoom within [MinZoom, MaxZoom]; 0 means unset
func ClampZoom(zoom int) int {
	switch {
	case zoom == 0:
		return DefaultZoom
	case zoom < MinZoom:
		return MinZoom
	case zoom > MaxZoom:
		return MaxZoom
	}
	return zoom
}

// ClampPointLimit keeps limit within [MinPointLimit, MaxPointLimit]; 0 means unset
func ClampPointLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultPointLimit
	case limit < MinPointLimit:
		return MinPointLimit
	case limit > MaxPointLimit:
		return MaxPointLimit
	}
	return limit
}

// ClusterPrecision is the number of decimal places coordinates are rounded to at zoom:
// 1 (~11km), 2 (~1.1km), 3 (~110m) or 4 (~11m).
func ClusterPrecision(zoom int) int {
	switch {
	case zoom <= 8:
		return 1
	case zoom <= 12:
		return 2
	case zoom <= 15:
		return 3
	}
	return 4
}

// ClusterDistance is the pixel distance a map client should use when merging the returned
// cells again. It shrinks as zoom grows, in step with ClusterPrecision.
func ClusterDistance(zoom int) int {
	switch {
	case zoom <= 8:
		return 50
	case zoom <= 12:
		return 40
	case zoom <= 15:
		return 30
	}
	return 20
}

// UsePoints reports whether zoom is close enough to render individual points
func UsePoints(zoom int) bool {
	return zoom >= PointZoomThreshold
}
