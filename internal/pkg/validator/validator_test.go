package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("budi@example.com"))
	assert.True(t, IsValidEmail("budi.santoso+hr@company.co.id"))
	assert.False(t, IsValidEmail("budi"))
	assert.False(t, IsValidEmail("budi@"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-04-10")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, 10, date.Day())

	_, ok = IsValidDate("10-04-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidNPWP(t *testing.T) {
	assert.True(t, IsValidNPWP("123456789012345"))
	assert.True(t, IsValidNPWP("1234567890123456"))
	assert.True(t, IsValidNPWP("12.345.678.9-012.345"))
	assert.False(t, IsValidNPWP("12345"))
	assert.False(t, IsValidNPWP("12345678901234a"))
}

func TestIsValidBPJSNumber(t *testing.T) {
	assert.True(t, IsValidBPJSNumber("1234567890123"))
	assert.False(t, IsValidBPJSNumber("123456789012"))
	assert.False(t, IsValidBPJSNumber("12345678901234"))
	assert.False(t, IsValidBPJSNumber("123456789012x"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"},
	}

	assert.Equal(t, "name: is required; date: must be a valid date (YYYY-MM-DD)", errs.Error())

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "is required", m["name"])
}
