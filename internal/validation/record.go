package validation

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/stopsearch-backend-go/internal/models"
)

// Record checks a scanned row and converts it to its API form.
// Any integer id is accepted, zero included; only NULL is rejected.
func Record(row models.StopSearchRow) (models.StopSearchRecord, error) {
	if !row.ID.Valid {
		return models.StopSearchRecord{}, fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	if err := Struct(row); err != nil {
		return models.StopSearchRecord{}, fmt.Errorf("record %d: %w", row.ID.Int64, err)
	}

	return models.StopSearchRecord{
		ID:                             row.ID.Int64,
		Datetime:                       row.Datetime.String,
		Type:                           nullString(row.Type),
		AgeRange:                       nullString(row.AgeRange),
		Gender:                         nullString(row.Gender),
		SelfDefinedEthnicity:           nullString(row.SelfDefinedEthnicity),
		OfficerDefinedEthnicity:        nullString(row.OfficerDefinedEthnicity),
		Legislation:                    nullString(row.Legislation),
		ObjectOfSearch:                 nullString(row.ObjectOfSearch),
		Outcome:                        nullString(row.Outcome),
		OutcomeLinkedToObjectOfSearch:  nullBool(row.OutcomeLinkedToObjectOfSearch),
		RemovalOfMoreThanOuterClothing: nullBool(row.RemovalOfMoreThanOuterClothing),
		Latitude:                       nullFloat(row.Latitude),
		Longitude:                      nullFloat(row.Longitude),
		StreetID:                       nullInt(row.StreetID),
		StreetName:                     nullString(row.StreetName),
		InvolvedPerson:                 nullBool(row.InvolvedPerson),
		Operation:                      nullBool(row.Operation),
		OperationName:                  nullString(row.OperationName),
		Force:                          row.Force.String,
		SourceDate:                     row.SourceDate.String,
		CreatedAt:                      row.CreatedAt.String,
	}, nil
}

// Records validates rows in order and stops at the first bad one.
func Records(rows []models.StopSearchRow) ([]models.StopSearchRecord, error) {
	records := make([]models.StopSearchRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := Record(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}

// 0/1/NULL -> false/true/nil
func nullBool(v sql.NullInt64) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Int64 != 0
	return &b
}
