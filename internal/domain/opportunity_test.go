package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarhunt-engine/internal/domain"
)

func TestStringList_ArrayShape(t *testing.T) {
	var l domain.StringList
	require.NoError(t, json.Unmarshal([]byte(`["Physics","Maths"]`), &l))
	assert.Equal(t, domain.StringList{"Physics", "Maths"}, l)
}

func TestStringList_CommaDelimitedShape(t *testing.T) {
	var l domain.StringList
	require.NoError(t, json.Unmarshal([]byte(`"Physics, Maths , ,Chemistry"`), &l))
	assert.Equal(t, domain.StringList{"Physics", "Maths", "Chemistry"}, l)
}

func TestStringList_Invalid(t *testing.T) {
	var l domain.StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &l))
}

func TestParseDate(t *testing.T) {
	got, ok := domain.ParseDate("2025-06-30")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), got)

	_, ok = domain.ParseDate("")
	assert.False(t, ok)
	_, ok = domain.ParseDate("soon")
	assert.False(t, ok)

	_, ok = domain.ParseDate("2025-06-30T12:00:00Z")
	assert.True(t, ok)
}

func TestPostedTime_Fallbacks(t *testing.T) {
	both := domain.Opportunity{PostedDate: "2025-01-01", Deadline: "2025-06-30"}
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), both.PostedTime())

	deadlineOnly := domain.Opportunity{Deadline: "2025-06-30"}
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), deadlineOnly.PostedTime())

	neither := domain.Opportunity{}
	assert.True(t, neither.PostedTime().IsZero())
}

func TestOpportunity_JSONShape(t *testing.T) {
	raw := `{
		"id": "opp-042",
		"title": "PhD in Glaciology",
		"university": "UiO",
		"subjects": "Glaciology, Climate Science",
		"requirements": ["MSc in geosciences"],
		"postedDate": "2025-01-15",
		"fullyFunded": true,
		"international": false
	}`
	var o domain.Opportunity
	require.NoError(t, json.Unmarshal([]byte(raw), &o))
	assert.Equal(t, "opp-042", o.ID)
	assert.Equal(t, domain.StringList{"Glaciology", "Climate Science"}, o.Subjects)
	assert.True(t, o.FullyFunded)
	assert.False(t, o.HasDeadline())
	assert.False(t, o.HasSupervisor())
}
