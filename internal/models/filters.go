package models

// ListingQuery represents query parameters for the paginated table listing.
// Numeric fields are bound as strings so malformed values default instead of failing.
type ListingQuery struct {
	Page          string `form:"page"`
	PageSize      string `form:"pageSize"`
	SortField     string `form:"sortField"`
	SortDirection string `form:"sortDirection"`
	SkipCount     string `form:"skipCount"`
	IncludeCount  string `form:"includeCount"`
	RequestToken  string `form:"requestToken"`
}

// MapQuery represents query parameters for point retrieval
type MapQuery struct {
	Limit        string `form:"limit"`
	RequestToken string `form:"requestToken"`
}

// ClusterQuery represents query parameters for cluster aggregation
type ClusterQuery struct {
	Zoom         string `form:"zoom"`
	RequestToken string `form:"requestToken"`
}

// SortEcho is the sort actually applied to a listing
type SortEcho struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// MapViewQuery represents query parameters for the zoom-dependent map view
type MapViewQuery struct {
	Zoom         string `form:"zoom"`
	Limit        string `form:"limit"`
	RequestToken string `form:"requestToken"`
}
