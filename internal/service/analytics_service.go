package service

import (
	"context"
	"fmt"

	"github.com/jengzang/stopsearch-backend-go/internal/models"
	"github.com/jengzang/stopsearch-backend-go/internal/repository"
	"github.com/jengzang/stopsearch-backend-go/internal/stats"
	"github.com/jengzang/stopsearch-backend-go/internal/validation"
)

// OutcomeLimit caps the outcome breakdown to the most frequent outcomes
const OutcomeLimit = 10

// AnalyticsService builds the dashboard summary
type AnalyticsService struct {
	repo *repository.StopSearchRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo *repository.StopSearchRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Summary computes monthly counts, category breakdowns and ethnicity trends over every record.
// Category percentages are relative to the overall total.
func (s *AnalyticsService) Summary(ctx context.Context) (*models.AnalyticsResponse, error) {
	monthly, err := s.repo.MonthlyStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly stats: %w", err)
	}

	total, err := s.repo.TotalStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get total stops: %w", err)
	}

	resp := &models.AnalyticsResponse{
		MonthlyStats:    monthly,
		TotalStops:      total,
		AveragePerMonth: stats.AveragePer(total, len(monthly)),
	}

	breakdowns := []struct {
		column string
		limit  int
		dst    *[]models.CategoryStats
	}{
		{repository.ColumnGender, 0, &resp.GenderStats},
		{repository.ColumnAgeRange, 0, &resp.AgeRangeStats},
		{repository.ColumnOutcome, OutcomeLimit, &resp.OutcomeStats},
		{repository.ColumnType, 0, &resp.SearchTypeStats},
	}
	for _, b := range breakdowns {
		counts, err := s.repo.CategoryBreakdown(ctx, b.column, b.limit)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s breakdown: %w", b.column, err)
		}
		*b.dst = categoryStats(counts, total)
	}

	trends, err := s.repo.EthnicityTrends(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ethnicity trends: %w", err)
	}
	resp.EthnicityTrends = ethnicityTrends(trends)

	if err := validation.Struct(resp); err != nil {
		return nil, fmt.Errorf("analytics summary: %w", err)
	}
	return resp, nil
}

func categoryStats(counts []repository.CategoryCount, total int64) []models.CategoryStats {
	out := make([]models.CategoryStats, 0, len(counts))
	for _, c := range counts {
		out = append(out, models.CategoryStats{
			Category:   c.Category,
			Count:      c.Count,
			Percentage: stats.Percentage(c.Count, total),
		})
	}
	return out
}

// ethnicityTrends groups counts by month; each percentage is relative to its month
func ethnicityTrends(counts []repository.TrendCount) models.EthnicityTrends {
	monthTotals := make(map[string]int64)
	for _, c := range counts {
		monthTotals[c.Month] += c.Count
	}

	trends := make(models.EthnicityTrends, len(monthTotals))
	for _, c := range counts {
		month, ok := trends[c.Month]
		if !ok {
			month = make(map[string]models.TrendCell)
			trends[c.Month] = month
		}
		month[c.Ethnicity] = models.TrendCell{
			Count:      c.Count,
			Percentage: stats.Percentage(c.Count, monthTotals[c.Month]),
		}
	}
	return trends
}
