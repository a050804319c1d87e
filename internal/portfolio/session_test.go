package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_ToggleTwiceClears(t *testing.T) {
	s := NewSession("")

	s = s.Toggle("Go")
	assert.Equal(t, "Go", s.Active())

	s = s.Toggle("Go")
	assert.Equal(t, "", s.Active())
}

func TestSession_ToggleOtherTagSwitches(t *testing.T) {
	s := NewSession("Go").Toggle("SQL")
	assert.Equal(t, "SQL", s.Active())
}

func TestSession_SelectNeverClears(t *testing.T) {
	s := NewSession("Go").Select("Go")
	assert.Equal(t, "Go", s.Active())
}

func TestSession_Clear(t *testing.T) {
	assert.Equal(t, "", NewSession("Go").Clear().Active())
}

func TestSession_IsValue(t *testing.T) {
	orig := NewSession("Go")
	_ = orig.Toggle("Go")
	assert.Equal(t, "Go", orig.Active())
}
