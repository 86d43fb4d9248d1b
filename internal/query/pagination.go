package query

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jengzang/stopsearch-backend-go/internal/models"
)

// Page size limits and sort defaults
const (
	MinPageSize          = 10
	MaxPageSize          = 500
	DefaultPageSize      = 100
	DefaultSortField     = "datetime"
	DefaultSortDirection = "desc"
)

// sortColumns is the sort allow-list: accepted names -> column
var sortColumns = map[string]string{
	"id":                        "id",
	"datetime":                  "datetime",
	"type":                      "type",
	"age_range":                 "age_range",
	"ageRange":                  "age_range",
	"gender":                    "gender",
	"self_defined_ethnicity":    "self_defined_ethnicity",
	"selfDefinedEthnicity":      "self_defined_ethnicity",
	"officer_defined_ethnicity": "officer_defined_ethnicity",
	"officerDefinedEthnicity":   "officer_defined_ethnicity",
	"legislation":               "legislation",
	"object_of_search":          "object_of_search",
	"objectOfSearch":            "object_of_search",
	"outcome":                   "outcome",
	"street_name":               "street_name",
	"streetName":                "street_name",
	"force":                     "force",
}

// PageRequest describes one listing page
type PageRequest struct {
	Page          int
	PageSize      int
	SortField     string
	SortDirection string
	SkipCount     bool
	IncludeCount  bool
}

// Normalize clamps page and size, and maps the sort onto the allow-list.
// Page is capped so Offset cannot overflow; the capped page is simply past the last row.
func (r PageRequest) Normalize() PageRequest {
	switch {
	case r.PageSize == 0:
		r.PageSize = DefaultPageSize
	case r.PageSize < MinPageSize:
		r.PageSize = MinPageSize
	case r.PageSize > MaxPageSize:
		r.PageSize = MaxPageSize
	}
	if maxPage := math.MaxInt/r.PageSize + 1; r.Page > maxPage {
		r.Page = maxPage
	}
	if r.Page < 1 {
		r.Page = 1
	}

	col, ok := sortColumns[strings.TrimSpace(r.SortField)]
	if !ok {
		col = DefaultSortField
	}
	r.SortField = col

	if strings.EqualFold(strings.TrimSpace(r.SortDirection), "asc") {
		r.SortDirection = "asc"
	} else {
		r.SortDirection = DefaultSortDirection
	}
	return r
}

// Offset is the number of rows before this page
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// FetchLimit over-fetches one row to detect a next page
func (r PageRequest) FetchLimit() int {
	return r.PageSize + 1
}

// OrderBy renders the ORDER BY clause. Call on a normalized request only.
func (r PageRequest) OrderBy() string {
	dir := strings.ToUpper(r.SortDirection)
	if r.SortField == "id" {
		return fmt.Sprintf(" ORDER BY id %s", dir)
	}
	return fmt.Sprintf(" ORDER BY %s %s, id %s", r.SortField, dir, dir)
}

// Counter counts the records matching a predicate
type Counter interface {
	Count(ctx context.Context, p Predicate) (int64, error)
}

// Paginator turns a fetched window into page metadata and decides when to count
type Paginator struct {
	counter Counter
	cache   *CountCache
}

// NewPaginator creates a paginator. A nil cache gets a default one.
func NewPaginator(counter Counter, cache *CountCache) *Paginator {
	if cache == nil {
		cache = NewCountCache(DefaultCountTTL, nil)
	}
	return &Paginator{counter: counter, cache: cache}
}

// Paginate builds the metadata for a normalized request after fetching `fetched` rows
// with FetchLimit. The total is counted on page 1 or when IncludeCount is set, reused from
// the cache on later pages, and left unknown when SkipCount is set.
func (p *Paginator) Paginate(ctx context.Context, pred Predicate, req PageRequest, fetched int) (models.Pagination, error) {
	page := models.Pagination{
		Page:        req.Page,
		PageSize:    req.PageSize,
		HasNext:     fetched > req.PageSize,
		HasPrevious: req.Page > 1,
		Returned:    min(fetched, req.PageSize),
	}

	if req.SkipCount {
		page.IsEstimate = true
		return page, nil
	}

	key := CountKey(pred)
	var (
		total int64
		known bool
	)
	if req.Page == 1 || req.IncludeCount {
		n, err := p.cache.GetOrCompute(ctx, key, func(ctx context.Context) (int64, error) {
			return p.counter.Count(ctx, pred)
		})
		if err != nil {
			return models.Pagination{}, fmt.Errorf("failed to count records: %w", err)
		}
		total, known = n, true
	} else {
		total, known = p.cache.Get(key)
	}

	if !known {
		page.IsEstimate = true
		return page, nil
	}

	totalPages := int(math.Ceil(float64(total) / float64(req.PageSize)))
	page.Total = &total
	page.TotalPages = &totalPages
	return page, nil
}

// Trim drops the over-fetched row
func Trim[T any](rows []T, pageSize int) []T {
	if len(rows) > pageSize {
		return rows[:pageSize]
	}
	return rows
}
