package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Stat
	}{
		{"integer", `{"experience_years": 3}`, "3"},
		{"string", `{"experience_years": "3+"}`, "3+"},
		{"zero", `{"experience_years": 0}`, ""},
		{"null", `{"experience_years": null}`, ""},
		{"absent", `{}`, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var a About
			require.NoError(t, json.Unmarshal([]byte(tc.in), &a))
			assert.Equal(t, tc.want, a.ExperienceYears)
		})
	}
}

func TestStat_UnmarshalJSON_RejectsObjects(t *testing.T) {
	var a About
	err := json.Unmarshal([]byte(`{"projects_count": {"n": 1}}`), &a)
	assert.Error(t, err)
}

func TestFormatMinutes(t *testing.T) {
	ten := 10.0
	half := 7.5

	assert.Equal(t, "", FormatMinutes(nil))
	assert.Equal(t, "10 min", FormatMinutes(&ten))
	assert.Equal(t, "7.5 min", FormatMinutes(&half))
}

func TestRecipe_MissingFieldsDecodeEmpty(t *testing.T) {
	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Dal"}`), &r))

	assert.Equal(t, "Dal", r.Name)
	assert.Empty(t, r.Ingredients)
	assert.Nil(t, r.PrepTime)
	assert.Nil(t, r.CookTime)
}
