package models

// Pagination describes a window over a filtered, sorted record set.
// Total and TotalPages are omitted when the count was not computed.
type Pagination struct {
	Page        int    `json:"page"`
	PageSize    int    `json:"pageSize"`
	Total       *int64 `json:"total,omitempty"`
	TotalPages  *int   `json:"totalPages,omitempty"`
	HasNext     bool   `json:"hasNext"`
	HasPrevious bool   `json:"hasPrevious"`
	Returned    int    `json:"returned"`
	IsEstimate  bool   `json:"isEstimate"`
}

// ListingResponse represents a paginated response of stop and search records
type ListingResponse struct {
	Data       []StopSearchRecord `json:"data"`
	Pagination Pagination         `json:"pagination"`
	Filters    map[string]string  `json:"filters"`
	Sort       SortEcho           `json:"sort"`
}
