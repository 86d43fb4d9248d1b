package models

// UnknownCategory labels NULL or blank category values
const UnknownCategory = "Unknown"

// MonthlyStats is the number of stops in one YYYY-MM bucket
type MonthlyStats struct {
	Month string `json:"month" validate:"required,datetime=2006-01"`
	Count int64  `json:"count" validate:"min=0"`
}

// CategoryStats is one category of a breakdown; Percentage is relative to all stops.
type CategoryStats struct {
	Category   string  `json:"category" validate:"required"`
	Count      int64   `json:"count" validate:"min=0"`
	Percentage float64 `json:"percentage" validate:"min=0,max=100"`
}

// TrendCell is one category within one month
type TrendCell struct {
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// EthnicityTrends maps month -> officer defined ethnicity -> share of that month
type EthnicityTrends map[string]map[string]TrendCell

// AnalyticsResponse is the dashboard summary
type AnalyticsResponse struct {
	MonthlyStats    []MonthlyStats  `json:"monthlyStats" validate:"dive"`
	GenderStats     []CategoryStats `json:"genderStats" validate:"dive"`
	AgeRangeStats   []CategoryStats `json:"ageRangeStats" validate:"dive"`
	OutcomeStats    []CategoryStats `json:"outcomeStats" validate:"max=10,dive"`
	SearchTypeStats []CategoryStats `json:"searchTypeStats" validate:"dive"`
	EthnicityTrends EthnicityTrends `json:"ethnicityTrends"`
	TotalStops      int64           `json:"totalStops" validate:"min=0"`
	AveragePerMonth int64           `json:"averagePerMonth" validate:"min=0"`
}
