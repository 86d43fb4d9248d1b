package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/stopsearch-backend-go/internal/metrics"
	"github.com/jengzang/stopsearch-backend-go/internal/models"
	"github.com/jengzang/stopsearch-backend-go/internal/query"
	"github.com/jengzang/stopsearch-backend-go/internal/validation"
)

// Category columns that may be broken down by CategoryBreakdown
const (
	ColumnGender   = "gender"
	ColumnAgeRange = "age_range"
	ColumnOutcome  = "outcome"
	ColumnType     = "type"
)

var breakdownColumns = map[string]bool{
	ColumnGender:   true,
	ColumnAgeRange: true,
	ColumnOutcome:  true,
	ColumnType:     true,
}

// unknownExpr labels NULL or blank values of col
func unknownExpr(col string) string {
	return fmt.Sprintf("COALESCE(NULLIF(TRIM(%s), ''), '%s')", col, models.UnknownCategory)
}

// StopSearchRepository handles read-only queries against stop_search
type StopSearchRepository struct {
	db *sql.DB
}

// NewStopSearchRepository creates a new stop_search repository
func NewStopSearchRepository(db *sql.DB) *StopSearchRepository {
	return &StopSearchRepository{db: db}
}

// List retrieves one window of validated records
func (r *StopSearchRepository) List(ctx context.Context, pred query.Predicate, orderBy string, limit, offset int) (records []models.StopSearchRecord, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("list", start, err) }(time.Now())

	q := `SELECT ` + models.StopSearchColumns + ` FROM stop_search` + pred.Where() + orderBy + ` LIMIT ? OFFSET ?`
	args := append(append([]interface{}{}, pred.Args...), limit, offset)

	return r.queryRecords(ctx, q, args)
}

// Count returns the number of records matching pred
func (r *StopSearchRepository) Count(ctx context.Context, pred query.Predicate) (total int64, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("count", start, err) }(time.Now())

	q := `SELECT COUNT(*) FROM stop_search` + pred.Where()
	if err = r.db.QueryRowContext(ctx, q, pred.Args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return total, nil
}

// Points retrieves up to limit located records, most recent first
func (r *StopSearchRepository) Points(ctx context.Context, pred query.Predicate, limit int) (records []models.StopSearchRecord, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("points", start, err) }(time.Now())

	q := `SELECT ` + models.StopSearchColumns + ` FROM stop_search` + pred.Where() +
		` ORDER BY datetime DESC, id DESC LIMIT ?`
	args := append(append([]interface{}{}, pred.Args...), limit)

	return r.queryRecords(ctx, q, args)
}

// Clusters groups matching records by coordinates rounded to precision decimal places,
// densest first, keeping at most maxClusters cells.
func (r *StopSearchRepository) Clusters(ctx context.Context, pred query.Predicate, precision, maxClusters int) (cells []models.ClusterCell, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("clusters", start, err) }(time.Now())

	q := fmt.Sprintf(`SELECT
		ROUND(latitude, %[1]d) AS cluster_lat,
		ROUND(longitude, %[1]d) AS cluster_lng,
		COUNT(*) AS point_count,
		MIN(latitude) AS bounds_min_lat,
		MAX(latitude) AS bounds_max_lat,
		MIN(longitude) AS bounds_min_lng,
		MAX(longitude) AS bounds_max_lng
		FROM stop_search%[2]s
		GROUP BY cluster_lat, cluster_lng
		ORDER BY point_count DESC, cluster_lat ASC, cluster_lng ASC
		LIMIT ?`, precision, pred.Where())
	args := append(append([]interface{}{}, pred.Args...), maxClusters)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clusters: %w", err)
	}
	defer rows.Close()

	cells = []models.ClusterCell{}
	for rows.Next() {
		var c models.ClusterCell
		if err = rows.Scan(&c.ClusterLat, &c.ClusterLng, &c.PointCount,
			&c.BoundsMinLat, &c.BoundsMaxLat, &c.BoundsMinLng, &c.BoundsMaxLng); err != nil {
			return nil, fmt.Errorf("failed to scan cluster: %w", err)
		}
		cells = append(cells, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clusters: %w", err)
	}
	return cells, nil
}

// MonthlyStats counts records per YYYY-MM, oldest first. Datetimes SQLite cannot parse are skipped.
func (r *StopSearchRepository) MonthlyStats(ctx context.Context) (stats []models.MonthlyStats, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("monthly_stats", start, err) }(time.Now())

	q := `SELECT strftime('%Y-%m', datetime) AS month, COUNT(*) AS count
		FROM stop_search
		WHERE datetime IS NOT NULL
		GROUP BY month
		HAVING month IS NOT NULL
		ORDER BY month ASC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly stats: %w", err)
	}
	defer rows.Close()

	stats = []models.MonthlyStats{}
	for rows.Next() {
		var m models.MonthlyStats
		if err = rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly stats: %w", err)
		}
		stats = append(stats, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly stats: %w", err)
	}
	return stats, nil
}

// TotalStops counts every record
func (r *StopSearchRepository) TotalStops(ctx context.Context) (int64, error) {
	return r.Count(ctx, query.Predicate{})
}

// CategoryCount is a raw category tally
type CategoryCount struct {
	Category string
	Count    int64
}

// CategoryBreakdown counts records per value of column, largest first. NULL and blank values are
// merged under models.UnknownCategory. limit <= 0 returns every category.
func (r *StopSearchRepository) CategoryBreakdown(ctx context.Context, column string, limit int) (counts []CategoryCount, err error) {
	if !breakdownColumns[column] {
		return nil, fmt.Errorf("unsupported breakdown column %q", column)
	}
	defer func(start time.Time) { metrics.ObserveQuery("breakdown_"+column, start, err) }(time.Now())

	q := fmt.Sprintf(`SELECT %s AS category, COUNT(*) AS count
		FROM stop_search
		GROUP BY category
		ORDER BY count DESC, category ASC`, unknownExpr(column))
	var args []interface{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s breakdown: %w", column, err)
	}
	defer rows.Close()

	counts = []CategoryCount{}
	for rows.Next() {
		var c CategoryCount
		if err = rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan %s breakdown: %w", column, err)
		}
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s breakdown: %w", column, err)
	}
	return counts, nil
}

// TrendCount is the tally of one officer defined ethnicity in one month
type TrendCount struct {
	Month     string
	Ethnicity string
	Count     int64
}

// EthnicityTrends counts records per month and officer defined ethnicity
func (r *StopSearchRepository) EthnicityTrends(ctx context.Context) (counts []TrendCount, err error) {
	defer func(start time.Time) { metrics.ObserveQuery("ethnicity_trends", start, err) }(time.Now())

	q := fmt.Sprintf(`SELECT strftime('%%Y-%%m', datetime) AS month, %s AS ethnicity, COUNT(*) AS count
		FROM stop_search
		WHERE datetime IS NOT NULL
		GROUP BY month, ethnicity
		HAVING month IS NOT NULL
		ORDER BY month ASC, ethnicity ASC`, unknownExpr("officer_defined_ethnicity"))

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query ethnicity trends: %w", err)
	}
	defer rows.Close()

	counts = []TrendCount{}
	for rows.Next() {
		var c TrendCount
		if err = rows.Scan(&c.Month, &c.Ethnicity, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan ethnicity trends: %w", err)
		}
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ethnicity trends: %w", err)
	}
	return counts, nil
}

func (r *StopSearchRepository) queryRecords(ctx context.Context, q string, args []interface{}) ([]models.StopSearchRecord, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stop_search: %w", err)
	}
	defer rows.Close()

	var raw []models.StopSearchRow
	for rows.Next() {
		var row models.StopSearchRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, fmt.Errorf("failed to scan stop_search row: %w", err)
		}
		raw = append(raw, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stop_search rows: %w", err)
	}

	records, err := validation.Records(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to validate stop_search rows: %w", err)
	}
	return records, nil
}
