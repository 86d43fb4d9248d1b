package validation

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/stopsearch-backend-go/internal/models"
)

func validRow() models.StopSearchRow {
	return models.StopSearchRow{
		ID:         sql.NullInt64{Int64: 7, Valid: true},
		Datetime:   sql.NullString{String: "2024-03-01T12:00:00+00:00", Valid: true},
		Gender:     sql.NullString{String: "Male", Valid: true},
		Force:      sql.NullString{String: "metropolitan", Valid: true},
		SourceDate: sql.NullString{String: "2024-03", Valid: true},
		CreatedAt:  sql.NullString{String: "2024-04-01 00:00:00", Valid: true},
	}
}

func TestRecordCoercesTriStateBooleans(t *testing.T) {
	row := validRow()
	row.OutcomeLinkedToObjectOfSearch = sql.NullInt64{Int64: 1, Valid: true}
	row.RemovalOfMoreThanOuterClothing = sql.NullInt64{Int64: 0, Valid: true}
	row.Latitude = sql.NullFloat64{Float64: 51.5, Valid: true}
	row.Longitude = sql.NullFloat64{Float64: -0.12, Valid: true}

	rec, err := Record(row)
	require.NoError(t, err)

	require.NotNil(t, rec.OutcomeLinkedToObjectOfSearch)
	assert.True(t, *rec.OutcomeLinkedToObjectOfSearch)
	require.NotNil(t, rec.RemovalOfMoreThanOuterClothing)
	assert.False(t, *rec.RemovalOfMoreThanOuterClothing)
	assert.Nil(t, rec.InvolvedPerson)
	assert.Nil(t, rec.Operation)

	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, "Male", *rec.Gender)
	assert.Nil(t, rec.Type)
	assert.True(t, rec.HasLocation())
}

func TestRecordWithoutCoordinates(t *testing.T) {
	rec, err := Record(validRow())
	require.NoError(t, err)
	assert.False(t, rec.HasLocation())
}

func TestRecordRejectsMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.StopSearchRow)
	}{
		{"null id", func(r *models.StopSearchRow) { r.ID = sql.NullInt64{} }},
		{"null datetime", func(r *models.StopSearchRow) { r.Datetime = sql.NullString{} }},
		{"blank force", func(r *models.StopSearchRow) { r.Force = sql.NullString{String: "", Valid: true} }},
		{"null source_date", func(r *models.StopSearchRow) { r.SourceDate = sql.NullString{} }},
		{"null created_at", func(r *models.StopSearchRow) { r.CreatedAt = sql.NullString{} }},
		{"flag out of range", func(r *models.StopSearchRow) { r.InvolvedPerson = sql.NullInt64{Int64: 2, Valid: true} }},
		{"latitude out of range", func(r *models.StopSearchRow) { r.Latitude = sql.NullFloat64{Float64: 123, Valid: true} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(&row)

			_, err := Record(row)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

func TestRecordAcceptsZeroID(t *testing.T) {
	row := validRow()
	row.ID = sql.NullInt64{Int64: 0, Valid: true}

	rec, err := Record(row)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.ID)
}

func TestRecordsStopsAtFirstInvalidRow(t *testing.T) {
	bad := validRow()
	bad.ID = sql.NullInt64{Int64: 9, Valid: true}
	bad.CreatedAt = sql.NullString{}

	_, err := Records([]models.StopSearchRow{validRow(), bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.Contains(t, err.Error(), "record 9")
}

func TestStructValidatesAggregates(t *testing.T) {
	assert.NoError(t, Struct(models.MonthlyStats{Month: "2024-03", Count: 4}))
	assert.ErrorIs(t, Struct(models.MonthlyStats{Month: "2024-13", Count: 4}), ErrInvalidRecord)
	assert.ErrorIs(t, Struct(models.CategoryStats{Category: "Male", Count: 1, Percentage: 100.1}), ErrInvalidRecord)
}
