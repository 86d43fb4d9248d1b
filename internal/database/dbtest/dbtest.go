// Package dbtest provides in-memory stop_search databases for tests.
package dbtest

import (
	"database/sql"
	"testing"

	"github.com/jengzang/stopsearch-backend-go/internal/database"

	_ "modernc.org/sqlite"
)

// Record is one stop_search row as inserted by fixtures. Nil pointers are stored as NULL.
type Record struct {
	ID                      int64
	Datetime                string
	Type                    *string
	AgeRange                *string
	Gender                  *string
	SelfDefinedEthnicity    *string
	OfficerDefinedEthnicity *string
	Legislation             *string
	ObjectOfSearch          *string
	Outcome                 *string
	OutcomeLinked           *int64
	RemovalOfClothing       *int64
	Latitude                *float64
	Longitude               *float64
	StreetID                *int64
	StreetName              *string
	InvolvedPerson          *int64
	Operation               *int64
	OperationName           *string
	Force                   string
	SourceDate              string
	CreatedAt               string
}

// New opens a writable in-memory database with the stop_search schema applied.
func New(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := database.ApplySchema(db); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

// Insert writes records verbatim.
func Insert(t testing.TB, db *sql.DB, records ...Record) {
	t.Helper()

	const stmt = `INSERT INTO stop_search (
		id, datetime, type, age_range, gender, self_defined_ethnicity, officer_defined_ethnicity,
		legislation, object_of_search, outcome, outcome_linked_to_object_of_search,
		removal_of_more_than_outer_clothing, latitude, longitude, street_id, street_name,
		involved_person, operation, operation_name, force, source_date, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, r := range records {
		var id interface{}
		if r.ID != 0 {
			id = r.ID
		}
		_, err := db.Exec(stmt,
			id, r.Datetime, r.Type, r.AgeRange, r.Gender, r.SelfDefinedEthnicity, r.OfficerDefinedEthnicity,
			r.Legislation, r.ObjectOfSearch, r.Outcome, r.OutcomeLinked,
			r.RemovalOfClothing, r.Latitude, r.Longitude, r.StreetID, r.StreetName,
			r.InvolvedPerson, r.Operation, r.OperationName, r.Force, r.SourceDate, r.CreatedAt,
		)
		if err != nil {
			t.Fatalf("insert record %d: %v", r.ID, err)
		}
	}
}

// Point returns a located record with the required columns filled in.
func Point(id int64, datetime string, lat, lng float64) Record {
	r := Unlocated(id, datetime)
	r.Latitude = Float(lat)
	r.Longitude = Float(lng)
	return r
}

// Unlocated returns a record without coordinates.
func Unlocated(id int64, datetime string) Record {
	return Record{
		ID:         id,
		Datetime:   datetime,
		Force:      "metropolitan",
		SourceDate: "2024-01",
		CreatedAt:  "2024-02-01 00:00:00",
	}
}

func Str(s string) *string     { return &s }
func Float(f float64) *float64 { return &f }
func Int(i int64) *int64       { return &i }
