package dto

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty string", "", []string{}},
		{"json array", `["React","Node.js"]`, []string{"React", "Node.js"}},
		{"comma separated", "React, Node.js", []string{"React", "Node.js"}},
		{"comma with extra spaces", " Go ,  Postgres,Redis ", []string{"Go", "Postgres", "Redis"}},
		{"single value", "Go", []string{"Go"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStringList(tt.in))
		})
	}
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &l))
	assert.Equal(t, StringList{"a", "b"}, l)

	require.NoError(t, json.Unmarshal([]byte(`"React, Node.js"`), &l))
	assert.Equal(t, StringList{"React", "Node.js"}, l)

	assert.Error(t, json.Unmarshal([]byte(`42`), &l))
}

func TestOptionalInt_UnmarshalJSON(t *testing.T) {
	var o OptionalInt

	require.NoError(t, json.Unmarshal([]byte(`3`), &o))
	require.NotNil(t, o.Value)
	assert.Equal(t, 3, *o.Value)

	require.NoError(t, json.Unmarshal([]byte(`"4"`), &o))
	require.NotNil(t, o.Value)
	assert.Equal(t, 4, *o.Value)

	// Empty string clears the value
	require.NoError(t, json.Unmarshal([]byte(`""`), &o))
	assert.Nil(t, o.Value)

	require.NoError(t, json.Unmarshal([]byte(`null`), &o))
	assert.Nil(t, o.Value)

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &o))
}

func TestOptionalFloat_UnmarshalJSON(t *testing.T) {
	var o OptionalFloat

	require.NoError(t, json.Unmarshal([]byte(`8.5`), &o))
	require.NotNil(t, o.Value)
	assert.Equal(t, 8.5, *o.Value)

	require.NoError(t, json.Unmarshal([]byte(`""`), &o))
	assert.Nil(t, o.Value)
}

func TestOptionalDate_UnmarshalJSON(t *testing.T) {
	var o OptionalDate

	require.NoError(t, json.Unmarshal([]byte(`"2002-05-14"`), &o))
	require.NotNil(t, o.Value)
	assert.Equal(t, time.Date(2002, 5, 14, 0, 0, 0, 0, time.UTC), *o.Value)

	require.NoError(t, json.Unmarshal([]byte(`"2002-05-14T10:30:00Z"`), &o))
	require.NotNil(t, o.Value)

	require.NoError(t, json.Unmarshal([]byte(`""`), &o))
	assert.Nil(t, o.Value)

	assert.Error(t, json.Unmarshal([]byte(`"14/05/2002"`), &o))
}

func TestUpdateProfileRequest_UnmarshalJSON(t *testing.T) {
	body := `{
		"phone": "+91 9876543210",
		"year": "",
		"cgpa": "8.4",
		"skills": "React, Node.js",
		"unknownField": "ignored",
		"name": "attempted rename"
	}`

	var req UpdateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.NotNil(t, req.Phone)
	assert.Equal(t, "+91 9876543210", *req.Phone)

	// Key present with empty string: explicit clear
	require.NotNil(t, req.Year)
	assert.Nil(t, req.Year.Value)

	require.NotNil(t, req.CGPA)
	assert.Equal(t, 8.4, *req.CGPA.Value)

	require.NotNil(t, req.Skills)
	assert.Equal(t, StringList{"React", "Node.js"}, *req.Skills)

	// Absent keys stay nil
	assert.Nil(t, req.Semester)
	assert.Nil(t, req.Bio)
}

func TestUpdateProfileRequest_BindForm(t *testing.T) {
	form := url.Values{}
	form.Set("phone", "12345")
	form.Set("year", "3")
	form.Set("semester", "")
	form.Set("cgpa", "7.9")
	form.Set("skills", "Go, Docker")
	form.Set("dateOfBirth", "2001-11-30")

	var req UpdateProfileRequest
	require.NoError(t, req.BindForm(form))

	require.NotNil(t, req.Phone)
	assert.Equal(t, "12345", *req.Phone)
	require.NotNil(t, req.Year)
	assert.Equal(t, 3, *req.Year.Value)
	require.NotNil(t, req.Semester)
	assert.Nil(t, req.Semester.Value)
	require.NotNil(t, req.CGPA)
	assert.Equal(t, 7.9, *req.CGPA.Value)
	require.NotNil(t, req.Skills)
	assert.Equal(t, StringList{"Go", "Docker"}, *req.Skills)
	require.NotNil(t, req.DateOfBirth)
	assert.Equal(t, time.Date(2001, 11, 30, 0, 0, 0, 0, time.UTC), *req.DateOfBirth.Value)

	assert.Nil(t, req.Department)
}

func TestUpdateProfileRequest_BindFormBadNumber(t *testing.T) {
	form := url.Values{}
	form.Set("year", "not-a-number")

	var req UpdateProfileRequest
	assert.Error(t, req.BindForm(form))
}
