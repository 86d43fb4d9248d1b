package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLookup(t *testing.T) {
	values := map[string]string{
		KeyType:   " Person search ",
		KeyGender: "   ",
		"other":   "x",
	}
	f := FromLookup(func(k string) string { return values[k] }, ListingKeys...)

	assert.Equal(t, FilterSet{KeyType: "Person search"}, f)
	assert.Equal(t, map[string]string{KeyType: "Person search"}, f.Echo())
}

func TestCompileListingEmpty(t *testing.T) {
	p := CompileListing(FilterSet{})
	assert.Empty(t, p.Conditions)
	assert.Empty(t, p.Args)
	assert.Equal(t, "", p.Where())
}

func TestCompileListingSearch(t *testing.T) {
	p := CompileListing(FilterSet{KeySearch: "drugs"})

	require.Len(t, p.Conditions, 1)
	assert.True(t, strings.HasPrefix(p.Conditions[0], "(type LIKE ? COLLATE NOCASE OR "))
	assert.Equal(t, len(SearchColumns), strings.Count(p.Conditions[0], "?"))
	require.Len(t, p.Args, len(SearchColumns))
	for _, a := range p.Args {
		assert.Equal(t, "%drugs%", a)
	}
}

func TestCompileListingEquality(t *testing.T) {
	p := CompileListing(FilterSet{
		KeyType:     "Person search",
		KeyGender:   "Male,Female",
		KeyAgeRange: "18-24",
		KeyOutcome:  "Arrest",
		KeyDateFrom: "2024-01-01",
		KeyDateTo:   "2024-01-31",
		KeyBBox:     "-1,-1,1,1",
	})

	assert.Equal(t, []string{
		"type = ?", "gender = ?", "age_range = ?", "outcome = ?",
		"datetime >= ?", "datetime <= ?",
	}, p.Conditions)
	assert.Equal(t, []interface{}{
		"Person search", "Male,Female", "18-24", "Arrest", "2024-01-01", "2024-01-31",
	}, p.Args)
	assert.Equal(t, " WHERE type = ? AND gender = ? AND age_range = ? AND outcome = ? AND datetime >= ? AND datetime <= ?", p.Where())
}

func TestCompileIsDeterministic(t *testing.T) {
	f := FilterSet{
		KeyBBox:       "-1,-1,1,1",
		KeyType:       "Person search,Vehicle search",
		KeyStreetName: "High",
		KeyOperation:  "true",
		KeyDateFrom:   "2024-01-01",
	}
	assert.Equal(t, CompileSpatial(f), CompileSpatial(f))
	assert.Equal(t, CompileListing(f), CompileListing(f))
}

func TestCompileSpatialRequiresCoordinates(t *testing.T) {
	p := CompileSpatial(FilterSet{})
	assert.Equal(t, []string{HasCoordinates}, p.Conditions)
	assert.Empty(t, p.Args)
}

func TestCompileSpatialBBox(t *testing.T) {
	p := CompileSpatial(FilterSet{KeyBBox: "-0.5,51.2,0.3,51.7"})

	require.Len(t, p.Conditions, 2)
	assert.Equal(t, "longitude BETWEEN ? AND ? AND latitude BETWEEN ? AND ?", p.Conditions[1])
	assert.Equal(t, []interface{}{-0.5, 0.3, 51.2, 51.7}, p.Args)
}

func TestCompileSpatialIgnoresMalformedBBox(t *testing.T) {
	for _, raw := range []string{"1,2,3", "a,b,c,d", "1,2,3,4,5"} {
		p := CompileSpatial(FilterSet{KeyBBox: raw})
		assert.Equal(t, []string{HasCoordinates}, p.Conditions, raw)
	}
}

func TestCompileSpatialMultiSelect(t *testing.T) {
	p := CompileSpatial(FilterSet{
		KeyType:    "Person search, Vehicle search",
		KeyOutcome: "Arrest",
		KeyGender:  " , ",
	})

	assert.Equal(t, []string{HasCoordinates, "type IN (?,?)", "outcome IN (?)"}, p.Conditions)
	assert.Equal(t, []interface{}{"Person search", "Vehicle search", "Arrest"}, p.Args)
}

func TestCompileSpatialFieldFilters(t *testing.T) {
	p := CompileSpatial(FilterSet{
		KeySelfDefinedEthnicity:           "White - English",
		KeyOfficerDefinedEthnicity:        "White",
		KeyLegislation:                    "Misuse of Drugs Act 1971 (section 23)",
		KeyObjectOfSearch:                 "Controlled drugs",
		KeyOutcomeLinkedToObjectOfSearch:  "true",
		KeyRemovalOfMoreThanOuterClothing: "false",
		KeyStreetName:                     "Station",
		KeyInvolvedPerson:                 "yes",
		KeyOperation:                      "true",
		KeyOperationName:                  "Trident",
		KeyForce:                          "metropolitan",
	})

	assert.Equal(t, []string{
		HasCoordinates,
		"self_defined_ethnicity = ?",
		"officer_defined_ethnicity = ?",
		"legislation = ?",
		"object_of_search = ?",
		"outcome_linked_to_object_of_search = ?",
		"removal_of_more_than_outer_clothing = ?",
		"street_name LIKE ? COLLATE NOCASE",
		"involved_person = ?",
		"operation = ?",
		"operation_name LIKE ? COLLATE NOCASE",
		"force = ?",
	}, p.Conditions)
	assert.Equal(t, []interface{}{
		"White - English", "White", "Misuse of Drugs Act 1971 (section 23)", "Controlled drugs",
		1, 0, "%Station%", 0, 1, "%Trident%", "metropolitan",
	}, p.Args)
}

func TestCompileSpatialIgnoresSearch(t *testing.T) {
	p := CompileSpatial(FilterSet{KeySearch: "drugs"})
	assert.Equal(t, []string{HasCoordinates}, p.Conditions)
}

func TestSplitValues(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitValues(" a, ,b,"))
	assert.Empty(t, SplitValues(" , "))
}
