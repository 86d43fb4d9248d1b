package models

// SpatialKind tags the payload of a map query
type SpatialKind string

const (
	KindPoints   SpatialKind = "points"
	KindClusters SpatialKind = "clusters"
)

// SpatialResult is implemented only by *PointsResponse and *ClustersResponse.
//
//	switch r := res.(type) {
//	case *models.PointsResponse:
//	case *models.ClustersResponse:
//	}
type SpatialResult interface {
	Kind() SpatialKind
	spatialResult()
}

// ClusterCell is a rounded (lat, lng) bucket of located records
type ClusterCell struct {
	ClusterLat   float64 `json:"cluster_lat"`
	ClusterLng   float64 `json:"cluster_lng"`
	PointCount   int64   `json:"point_count"`
	BoundsMinLat float64 `json:"bounds_min_lat"`
	BoundsMaxLat float64 `json:"bounds_max_lat"`
	BoundsMinLng float64 `json:"bounds_min_lng"`
	BoundsMaxLng float64 `json:"bounds_max_lng"`
	RadiusMeters float64 `json:"radius_meters"`
}

// PointsMeta describes a point query
type PointsMeta struct {
	Returned     int    `json:"returned"`
	Limit        int    `json:"limit"`
	HasMore      bool   `json:"hasMore"`
	BBox         string `json:"bbox,omitempty"`
	QueryType    string `json:"queryType"`
	RequestToken string `json:"requestToken,omitempty"`
}

// PointsResponse carries individual located records
type PointsResponse struct {
	Type    SpatialKind        `json:"kind"`
	Data    []StopSearchRecord `json:"data"`
	Meta    PointsMeta         `json:"meta"`
	Filters map[string]string  `json:"filters"`
}

func (*PointsResponse) Kind() SpatialKind { return KindPoints }
func (*PointsResponse) spatialResult()    {}

// ClustersMeta describes a cluster query. TotalPoints counts every matching record;
// PointsRepresented only those inside the returned clusters.
type ClustersMeta struct {
	Zoom              int    `json:"zoom"`
	Precision         int    `json:"precision"`
	ClusterCount      int    `json:"clusterCount"`
	PointsRepresented int64  `json:"pointsRepresented"`
	TotalPoints       int64  `json:"totalPoints"`
	BBox              string `json:"bbox,omitempty"`
	QueryType         string `json:"queryType"`
	ClientDistance    int    `json:"clientDistance"`
	RequestToken      string `json:"requestToken,omitempty"`
}

// ClustersResponse carries aggregated cluster cells
type ClustersResponse struct {
	Type     SpatialKind       `json:"kind"`
	Clusters []ClusterCell     `json:"clusters"`
	Meta     ClustersMeta      `json:"meta"`
	Filters  map[string]string `json:"filters"`
}

func (*ClustersResponse) Kind() SpatialKind { return KindClusters }
func (*ClustersResponse) spatialResult()    {}
