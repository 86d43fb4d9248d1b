// Package query compiles request filters into SQL predicates and holds the paging,
// counting and clustering rules shared by the listing, point and cluster queries.
package query

import (
	"strings"

	"github.com/jengzang/stopsearch-backend-go/internal/logging"
	"github.com/jengzang/stopsearch-backend-go/internal/spatial"
)

// Filter keys as they appear in query strings
const (
	KeySearch                         = "search"
	KeyType                           = "type"
	KeyGender                         = "gender"
	KeyAgeRange                       = "ageRange"
	KeyOutcome                        = "outcome"
	KeyDateFrom                       = "dateFrom"
	KeyDateTo                         = "dateTo"
	KeyBBox                           = "bbox"
	KeySelfDefinedEthnicity           = "selfDefinedEthnicity"
	KeyOfficerDefinedEthnicity        = "officerDefinedEthnicity"
	KeyLegislation                    = "legislation"
	KeyObjectOfSearch                 = "objectOfSearch"
	KeyOutcomeLinkedToObjectOfSearch  = "outcomeLinkedToObjectOfSearch"
	KeyRemovalOfMoreThanOuterClothing = "removalOfMoreThanOuterClothing"
	KeyStreetName                     = "streetName"
	KeyInvolvedPerson                 = "involvedPerson"
	KeyOperation                      = "operation"
	KeyOperationName                  = "operationName"
	KeyForce                          = "force"
)

// Keys accepted by each endpoint
var (
	ListingKeys = []string{
		KeySearch, KeyType, KeyGender, KeyAgeRange, KeyOutcome, KeyDateFrom, KeyDateTo,
	}
	PointKeys = []string{
		KeyBBox, KeyType, KeyGender, KeyAgeRange, KeySelfDefinedEthnicity, KeyOfficerDefinedEthnicity,
		KeyLegislation, KeyObjectOfSearch, KeyOutcome, KeyOutcomeLinkedToObjectOfSearch,
		KeyRemovalOfMoreThanOuterClothing, KeyStreetName, KeyInvolvedPerson, KeyOperation,
		KeyOperationName, KeyForce, KeyDateFrom, KeyDateTo,
	}
	ClusterKeys = []string{
		KeyBBox, KeyType, KeyGender, KeyAgeRange, KeyOutcome, KeyDateFrom, KeyDateTo,
	}
)

// SearchColumns are matched by the free-text search
var SearchColumns = []string{
	"type", "age_range", "gender", "self_defined_ethnicity", "officer_defined_ethnicity",
	"legislation", "object_of_search", "outcome", "street_name",
}

// HasCoordinates restricts a query to records that can be placed on a map
const HasCoordinates = "latitude IS NOT NULL AND longitude IS NOT NULL"

// FilterSet maps filter keys to raw values. Blank values count as unset.
type FilterSet map[string]string

// FromLookup builds a FilterSet from the given keys, e.g. FromLookup(c.Query, ListingKeys...).
func FromLookup(get func(string) string, keys ...string) FilterSet {
	f := make(FilterSet, len(keys))
	for _, k := range keys {
		if v := strings.TrimSpace(get(k)); v != "" {
			f[k] = v
		}
	}
	return f
}

// Get returns the trimmed value for key and whether it is set
func (f FilterSet) Get(key string) (string, bool) {
	v := strings.TrimSpace(f[key])
	return v, v != ""
}

// Echo returns the set filters for inclusion in a response
func (f FilterSet) Echo() map[string]string {
	out := make(map[string]string, len(f))
	for k := range f {
		if v, ok := f.Get(k); ok {
			out[k] = v
		}
	}
	return out
}

// Predicate is an ordered list of SQL conditions with positional arguments
type Predicate struct {
	Conditions []string
	Args       []interface{}
}

func (p *Predicate) add(cond string, args ...interface{}) {
	p.Conditions = append(p.Conditions, cond)
	p.Args = append(p.Args, args...)
}

// Where renders the predicate as a WHERE clause, or "" when empty
func (p Predicate) Where() string {
	if len(p.Conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.Conditions, " AND ")
}

// CompileListing builds the table predicate: single-value equality per field plus free-text
// search. Coordinates are not required.
func CompileListing(f FilterSet) Predicate {
	var p Predicate

	if term, ok := f.Get(KeySearch); ok {
		pattern := "%" + term + "%"
		ors := make([]string, len(SearchColumns))
		args := make([]interface{}, len(SearchColumns))
		for i, col := range SearchColumns {
			ors[i] = col + " LIKE ? COLLATE NOCASE"
			args[i] = pattern
		}
		p.add("("+strings.Join(ors, " OR ")+")", args...)
	}

	equal(&p, f, KeyType, "type")
	equal(&p, f, KeyGender, "gender")
	equal(&p, f, KeyAgeRange, "age_range")
	equal(&p, f, KeyOutcome, "outcome")
	dateRange(&p, f)

	return p
}

// CompileSpatial builds the map predicate: coordinates required, optional bbox, comma-joined
// multi-select for type/gender/ageRange/outcome and per-field filters.
func CompileSpatial(f FilterSet) Predicate {
	var p Predicate
	p.add(HasCoordinates)

	if raw, ok := f.Get(KeyBBox); ok {
		if box, err := spatial.ParseBBox(raw); err != nil {
			logging.Warn().Str("bbox", raw).Err(err).Msg("Invalid bbox parameter, ignoring")
		} else {
			p.add("longitude BETWEEN ? AND ? AND latitude BETWEEN ? AND ?",
				box.MinLng, box.MaxLng, box.MinLat, box.MaxLat)
		}
	}

	oneOf(&p, f, KeyType, "type")
	oneOf(&p, f, KeyGender, "gender")
	oneOf(&p, f, KeyAgeRange, "age_range")
	oneOf(&p, f, KeyOutcome, "outcome")

	equal(&p, f, KeySelfDefinedEthnicity, "self_defined_ethnicity")
	equal(&p, f, KeyOfficerDefinedEthnicity, "officer_defined_ethnicity")
	equal(&p, f, KeyLegislation, "legislation")
	equal(&p, f, KeyObjectOfSearch, "object_of_search")
	flag(&p, f, KeyOutcomeLinkedToObjectOfSearch, "outcome_linked_to_object_of_search")
	flag(&p, f, KeyRemovalOfMoreThanOuterClothing, "removal_of_more_than_outer_clothing")
	contains(&p, f, KeyStreetName, "street_name")
	flag(&p, f, KeyInvolvedPerson, "involved_person")
	flag(&p, f, KeyOperation, "operation")
	contains(&p, f, KeyOperationName, "operation_name")
	equal(&p, f, KeyForce, "force")
	dateRange(&p, f)

	return p
}

// SplitValues splits a comma-joined multi-select value, dropping blank items
func SplitValues(v string) []string {
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func equal(p *Predicate, f FilterSet, key, column string) {
	if v, ok := f.Get(key); ok {
		p.add(column+" = ?", v)
	}
}

func contains(p *Predicate, f FilterSet, key, column string) {
	if v, ok := f.Get(key); ok {
		p.add(column+" LIKE ? COLLATE NOCASE", "%"+v+"%")
	}
}

func oneOf(p *Predicate, f FilterSet, key, column string) {
	v, ok := f.Get(key)
	if !ok {
		return
	}
	values := SplitValues(v)
	if len(values) == 0 {
		return
	}
	args := make([]interface{}, len(values))
	for i, s := range values {
		args[i] = s
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
	p.add(column+" IN ("+placeholders+")", args...)
}

// "true" -> 1, anything else -> 0
func flag(p *Predicate, f FilterSet, key, column string) {
	if v, ok := f.Get(key); ok {
		b := 0
		if v == "true" {
			b = 1
		}
		p.add(column+" = ?", b)
	}
}

func dateRange(p *Predicate, f FilterSet) {
	if v, ok := f.Get(KeyDateFrom); ok {
		p.add("datetime >= ?", v)
	}
	if v, ok := f.Get(KeyDateTo); ok {
		p.add("datetime <= ?", v)
	}
}
