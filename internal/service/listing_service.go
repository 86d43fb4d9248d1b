package service

import (
	"context"
	"fmt"

	"github.com/jengzang/stopsearch-backend-go/internal/models"
	"github.com/jengzang/stopsearch-backend-go/internal/query"
	"github.com/jengzang/stopsearch-backend-go/internal/repository"
)

// ListingService handles the paginated table listing
type ListingService struct {
	repo      *repository.StopSearchRepository
	paginator *query.Paginator
}

// NewListingService creates a new listing service. The count cache is shared with the map service.
func NewListingService(repo *repository.StopSearchRepository, cache *query.CountCache) *ListingService {
	return &ListingService{
		repo:      repo,
		paginator: query.NewPaginator(repo, cache),
	}
}

// List returns one page of records matching filters
func (s *ListingService) List(ctx context.Context, filters query.FilterSet, req query.PageRequest) (*models.ListingResponse, error) {
	req = req.Normalize()
	pred := query.CompileListing(filters)

	records, err := s.repo.List(ctx, pred, req.OrderBy(), req.FetchLimit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	page, err := s.paginator.Paginate(ctx, pred, req, len(records))
	if err != nil {
		return nil, err
	}

	return &models.ListingResponse{
		Data:       query.Trim(records, req.PageSize),
		Pagination: page,
		Filters:    filters.Echo(),
		Sort: models.SortEcho{
			Field:     req.SortField,
			Direction: req.SortDirection,
		},
	}, nil
}
