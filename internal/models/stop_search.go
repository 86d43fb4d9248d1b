package models

import "database/sql"

// StopSearchRow is a stop_search row exactly as scanned from storage. Validation tags describe
// the storage contract; NULL-able columns use sql.Null* and are unwrapped by the validator.
type StopSearchRow struct {
	ID                             sql.NullInt64
	Datetime                       sql.NullString `validate:"required"`
	Type                           sql.NullString
	AgeRange                       sql.NullString
	Gender                         sql.NullString
	SelfDefinedEthnicity           sql.NullString
	OfficerDefinedEthnicity        sql.NullString
	Legislation                    sql.NullString
	ObjectOfSearch                 sql.NullString
	Outcome                        sql.NullString
	OutcomeLinkedToObjectOfSearch  sql.NullInt64   `validate:"omitempty,min=0,max=1"`
	RemovalOfMoreThanOuterClothing sql.NullInt64   `validate:"omitempty,min=0,max=1"`
	Latitude                       sql.NullFloat64 `validate:"omitempty,latitude"`
	Longitude                      sql.NullFloat64 `validate:"omitempty,longitude"`
	StreetID                       sql.NullInt64
	StreetName                     sql.NullString
	InvolvedPerson                 sql.NullInt64 `validate:"omitempty,min=0,max=1"`
	Operation                      sql.NullInt64 `validate:"omitempty,min=0,max=1"`
	OperationName                  sql.NullString
	Force                          sql.NullString `validate:"required"`
	SourceDate                     sql.NullString `validate:"required"`
	CreatedAt                      sql.NullString `validate:"required"`
}

// ScanTargets returns pointers in StopSearchColumns order.
func (r *StopSearchRow) ScanTargets() []interface{} {
	return []interface{}{
		&r.ID, &r.Datetime, &r.Type, &r.AgeRange, &r.Gender, &r.SelfDefinedEthnicity,
		&r.OfficerDefinedEthnicity, &r.Legislation, &r.ObjectOfSearch, &r.Outcome,
		&r.OutcomeLinkedToObjectOfSearch, &r.RemovalOfMoreThanOuterClothing,
		&r.Latitude, &r.Longitude, &r.StreetID, &r.StreetName, &r.InvolvedPerson,
		&r.Operation, &r.OperationName, &r.Force, &r.SourceDate, &r.CreatedAt,
	}
}

// StopSearchColumns is the select list matching StopSearchRow.ScanTargets. created_at is declared
// TIMESTAMP, which the driver would parse into time.Time and reformat; the cast keeps the stored text.
const StopSearchColumns = `id, datetime, type, age_range, gender, self_defined_ethnicity,
		officer_defined_ethnicity, legislation, object_of_search, outcome,
		outcome_linked_to_object_of_search, removal_of_more_than_outer_clothing,
		latitude, longitude, street_id, street_name, involved_person,
		operation, operation_name, force, source_date, CAST(created_at AS TEXT) AS created_at`

// StopSearchRecord is a validated stop-and-search event
type StopSearchRecord struct {
	ID                             int64    `json:"id"`
	Datetime                       string   `json:"datetime"`
	Type                           *string  `json:"type"`
	AgeRange                       *string  `json:"age_range"`
	Gender                         *string  `json:"gender"`
	SelfDefinedEthnicity           *string  `json:"self_defined_ethnicity"`
	OfficerDefinedEthnicity        *string  `json:"officer_defined_ethnicity"`
	Legislation                    *string  `json:"legislation"`
	ObjectOfSearch                 *string  `json:"object_of_search"`
	Outcome                        *string  `json:"outcome"`
	OutcomeLinkedToObjectOfSearch  *bool    `json:"outcome_linked_to_object_of_search"`
	RemovalOfMoreThanOuterClothing *bool    `json:"removal_of_more_than_outer_clothing"`
	Latitude                       *float64 `json:"latitude"`
	Longitude                      *float64 `json:"longitude"`
	StreetID                       *int64   `json:"street_id"`
	StreetName                     *string  `json:"street_name"`
	InvolvedPerson                 *bool    `json:"involved_person"`
	Operation                      *bool    `json:"operation"`
	OperationName                  *string  `json:"operation_name"`
	Force                          string   `json:"force"`
	SourceDate                     string   `json:"source_date"`
	CreatedAt                      string   `json:"created_at"`
}

// HasLocation reports whether the record can be drawn on a map
func (r StopSearchRecord) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}
