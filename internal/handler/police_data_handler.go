package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/stopsearch-backend-go/internal/logging"
	"github.com/jengzang/stopsearch-backend-go/internal/models"
	"github.com/jengzang/stopsearch-backend-go/internal/query"
	"github.com/jengzang/stopsearch-backend-go/internal/service"
	"github.com/jengzang/stopsearch-backend-go/internal/validation"
	"github.com/jengzang/stopsearch-backend-go/pkg/response"
	"github.com/jengzang/stopsearch-backend-go/pkg/viewsync"
)

// PoliceDataHandler handles HTTP requests for stop and search data
type PoliceDataHandler struct {
	listing   *service.ListingService
	maps      *service.MapService
	analytics *service.AnalyticsService
}

// NewPoliceDataHandler creates a new police data handler
func NewPoliceDataHandler(listing *service.ListingService, maps *service.MapService, analytics *service.AnalyticsService) *PoliceDataHandler {
	return &PoliceDataHandler{
		listing:   listing,
		maps:      maps,
		analytics: analytics,
	}
}

// List handles GET /api/v1/police-data
func (h *PoliceDataHandler) List(c *gin.Context) {
	var q models.ListingQuery
	bindQuery(c, &q)

	req := query.PageRequest{
		Page:          intParam(q.Page),
		PageSize:      intParam(q.PageSize),
		SortField:     q.SortField,
		SortDirection: q.SortDirection,
		SkipCount:     boolParam(q.SkipCount),
		IncludeCount:  boolParam(q.IncludeCount),
	}
	filters := query.FromLookup(c.Query, query.ListingKeys...)

	resp, err := h.listing.List(c.Request.Context(), filters, req)
	if err != nil {
		h.fail(c, "list", err)
		return
	}

	response.Success(c, resp)
}

// Map handles GET /api/v1/police-data/map
func (h *PoliceDataHandler) Map(c *gin.Context) {
	var q models.MapQuery
	bindQuery(c, &q)

	filters := query.FromLookup(c.Query, query.PointKeys...)

	resp, err := h.maps.Points(c.Request.Context(), filters, intParam(q.Limit), requestToken(q.RequestToken))
	if err != nil {
		h.fail(c, "map", err)
		return
	}

	response.Success(c, resp)
}

// Clusters handles GET /api/v1/police-data/clusters
func (h *PoliceDataHandler) Clusters(c *gin.Context) {
	var q models.ClusterQuery
	bindQuery(c, &q)

	filters := query.FromLookup(c.Query, query.ClusterKeys...)

	resp, err := h.maps.Clusters(c.Request.Context(), filters, intParam(q.Zoom), requestToken(q.RequestToken))
	if err != nil {
		h.fail(c, "clusters", err)
		return
	}

	response.Success(c, resp)
}

// MapView handles GET /api/v1/police-data/map-view
func (h *PoliceDataHandler) MapView(c *gin.Context) {
	var q models.MapViewQuery
	bindQuery(c, &q)

	filters := query.FromLookup(c.Query, query.PointKeys...)

	resp, err := h.maps.MapView(c.Request.Context(), filters, intParam(q.Zoom), intParam(q.Limit), requestToken(q.RequestToken))
	if err != nil {
		h.fail(c, "map-view", err)
		return
	}

	response.Success(c, resp)
}

// Analytics handles GET /api/v1/police-data/analytics
func (h *PoliceDataHandler) Analytics(c *gin.Context) {
	resp, err := h.analytics.Summary(c.Request.Context())
	if err != nil {
		h.fail(c, "analytics", err)
		return
	}

	response.Success(c, resp)
}

// fail logs err in full and answers with a generic 500
func (h *PoliceDataHandler) fail(c *gin.Context, route string, err error) {
	logging.Ctx(c.Request.Context()).Error().
		Err(err).
		Str("route", route).
		Msg("Request failed")

	if errors.Is(err, validation.ErrInvalidRecord) {
		response.InternalError(c, "Stored record failed validation")
		return
	}
	response.InternalError(c, "Failed to query stop and search records")
}

// bindQuery binds form fields. Every field is a string, so malformed values are
// defaulted later instead of rejected here.
func bindQuery(c *gin.Context, dst interface{}) {
	if err := c.ShouldBindQuery(dst); err != nil {
		logging.Ctx(c.Request.Context()).Warn().Err(err).Msg("Ignoring unreadable query parameters")
	}
}

// intParam parses s, returning 0 (unset) when it is not an integer
func intParam(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func boolParam(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

// requestToken normalizes a caller's version token; invalid tokens are not echoed
func requestToken(s string) string {
	tok, ok := viewsync.ParseToken(s)
	if !ok {
		return ""
	}
	return tok.String()
}
