package service

import (
	"context"
	"fmt"

	"github.com/jengzang/stopsearch-backend-go/internal/logging"
	"github.com/jengzang/stopsearch-backend-go/internal/models"
	"github.com/jengzang/stopsearch-backend-go/internal/query"
	"github.com/jengzang/stopsearch-backend-go/internal/repository"
	"github.com/jengzang/stopsearch-backend-go/internal/spatial"
)

// Reported in meta.queryType
const (
	QueryTypePoints   = "map-optimized"
	QueryTypeClusters = "cluster-optimized"
)

// MapService handles point and cluster queries for the map
type MapService struct {
	repo  *repository.StopSearchRepository
	cache *query.CountCache
}

// NewMapService creates a new map service
func NewMapService(repo *repository.StopSearchRepository, cache *query.CountCache) *MapService {
	if cache == nil {
		cache = query.NewCountCache(query.DefaultCountTTL, nil)
	}
	return &MapService{
		repo:  repo,
		cache: cache,
	}
}

// Points returns up to limit located records, most recent first. No total is counted.
func (s *MapService) Points(ctx context.Context, filters query.FilterSet, limit int, token string) (*models.PointsResponse, error) {
	limit = query.ClampPointLimit(limit)

	records, err := s.repo.Points(ctx, query.CompileSpatial(filters), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get points: %w", err)
	}

	bbox, _ := filters.Get(query.KeyBBox)
	return &models.PointsResponse{
		Type: models.KindPoints,
		Data: records,
		Meta: models.PointsMeta{
			Returned:     len(records),
			Limit:        limit,
			HasMore:      len(records) == limit,
			BBox:         bbox,
			QueryType:    QueryTypePoints,
			RequestToken: token,
		},
		Filters: filters.Echo(),
	}, nil
}

// Clusters aggregates matching records into cells sized for zoom
func (s *MapService) Clusters(ctx context.Context, filters query.FilterSet, zoom int, token string) (*models.ClustersResponse, error) {
	zoom = query.ClampZoom(zoom)
	precision := query.ClusterPrecision(zoom)
	pred := query.CompileSpatial(filters)

	cells, err := s.repo.Clusters(ctx, pred, precision, query.MaxClusters)
	if err != nil {
		return nil, fmt.Errorf("failed to get clusters: %w", err)
	}

	var represented int64
	for i := range cells {
		finishCell(&cells[i])
		represented += cells[i].PointCount
	}

	total, err := s.cache.GetOrCompute(ctx, query.CountKey(pred), func(ctx context.Context) (int64, error) {
		return s.repo.Count(ctx, pred)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count clustered points: %w", err)
	}

	logging.Ctx(ctx).Debug().
		Int("zoom", zoom).
		Int("clusters", len(cells)).
		Int64("represented", represented).
		Int64("total", total).
		Msg("Generated clusters")

	bbox, _ := filters.Get(query.KeyBBox)
	return &models.ClustersResponse{
		Type:     models.KindClusters,
		Clusters: cells,
		Meta: models.ClustersMeta{
			Zoom:              zoom,
			Precision:         precision,
			ClusterCount:      len(cells),
			PointsRepresented: represented,
			TotalPoints:       total,
			BBox:              bbox,
			QueryType:         QueryTypeClusters,
			ClientDistance:    query.ClusterDistance(zoom),
			RequestToken:      token,
		},
		Filters: filters.Echo(),
	}, nil
}

// MapView returns points when zoom is close enough to draw them individually, clusters otherwise
func (s *MapService) MapView(ctx context.Context, filters query.FilterSet, zoom, limit int, token string) (models.SpatialResult, error) {
	zoom = query.ClampZoom(zoom)
	if query.UsePoints(zoom) {
		points, err := s.Points(ctx, filters, limit, token)
		if err != nil {
			return nil, err
		}
		return points, nil
	}

	clusters, err := s.Clusters(ctx, filters, zoom, token)
	if err != nil {
		return nil, err
	}
	return clusters, nil
}

// finishCell widens the observed bounds to hold the rounded centroid and sets the radius
func finishCell(c *models.ClusterCell) {
	b := spatial.NewBounds().
		Add(c.BoundsMinLat, c.BoundsMinLng).
		Add(c.BoundsMaxLat, c.BoundsMaxLng).
		Add(c.ClusterLat, c.ClusterLng)

	c.BoundsMinLat, c.BoundsMaxLat = b.MinLat, b.MaxLat
	c.BoundsMinLng, c.BoundsMaxLng = b.MinLng, b.MaxLng
	c.RadiusMeters = b.HalfDiagonalMeters()
}
