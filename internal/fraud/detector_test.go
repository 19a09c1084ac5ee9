// internal/fraud/detector_test.go
package fraud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanValues_CleanPayload(t *testing.T) {
	suspicious, pattern := ScanValues([]string{
		"sba-biz-2026", "Alex Mercer", "alex@mercer.io", "Alex Mercer",
		"44 Harbor View Rd", "617-555-0142",
	})

	assert.False(t, suspicious)
	assert.Empty(t, pattern)
}

func TestScanValues_PlaceholderValues(t *testing.T) {
	cases := []struct {
		name   string
		values []string
	}{
		{"test marker", []string{"Alex Mercer", "test@example.com"}},
		{"demo marker", []string{"Demo Account", "alex@mercer.io"}},
		{"fake marker", []string{"Fake Name"}},
		{"john doe", []string{"John Doe"}},
		{"case-insensitive jane doe", []string{"JANE DOE"}},
		{"placeholder address", []string{"123 main st"}},
		{"placeholder phone", []string{"555-555-5555"}},
		{"keyboard mash", []string{"asdf"}},
		{"qwerty", []string{"QWERTY"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			suspicious, pattern := ScanValues(tc.values)
			assert.True(t, suspicious)
			assert.NotEmpty(t, pattern)
		})
	}
}

func TestScanValues_SequentialDigits(t *testing.T) {
	for _, seq := range []string{"123456789", "987654321", "000000000"} {
		suspicious, _ := ScanValues([]string{"Alex Mercer", seq})
		assert.True(t, suspicious, "sequence %s should be flagged", seq)
	}
}

func TestScanValues_MatchSpansJoinedValues(t *testing.T) {
	// The scan mirrors a joined-string check, so a pattern inside any single
	// value is caught regardless of position.
	suspicious, _ := ScanValues([]string{"a", "b", "my fake llc", "c"})
	assert.True(t, suspicious)
}

func TestCheckIdentity(t *testing.T) {
	assert.Nil(t, CheckIdentity("Alex Mercer", "617-555-0142", "44 Harbor View Rd"))

	err := CheckIdentity("John Doe", "617-555-0142", "44 Harbor View Rd")
	if assert.NotNil(t, err) {
		assert.Equal(t, "fullName", err.Field)
	}

	err = CheckIdentity("Alex Mercer", "555-555-5555", "44 Harbor View Rd")
	if assert.NotNil(t, err) {
		assert.Equal(t, "phone", err.Field)
	}

	err = CheckIdentity("Alex Mercer", "617-555-0142", "123 Main St")
	if assert.NotNil(t, err) {
		assert.Equal(t, "address", err.Field)
	}
}

func TestCheckBanking(t *testing.T) {
	assert.Nil(t, CheckBanking("522-48-1934", "211370545", "8830114672"))

	err := CheckBanking("123-45-6789", "211370545", "8830114672")
	if assert.NotNil(t, err) {
		assert.Equal(t, "ssn", err.Field)
	}

	err = CheckBanking("522-48-1934", "987654321", "8830114672")
	if assert.NotNil(t, err) {
		assert.Equal(t, "routingNumber", err.Field)
	}

	err = CheckBanking("522-48-1934", "211370545", "000000000")
	if assert.NotNil(t, err) {
		assert.Equal(t, "accountNumber", err.Field)
	}
}

func TestCheckBanking_EmptyFieldsPass(t *testing.T) {
	assert.Nil(t, CheckBanking("", "", ""))
}

func TestCheckBanking_StripsFormatting(t *testing.T) {
	// Dashes are removed before the sequential check runs.
	err := CheckBanking("123-45-6789", "", "")
	assert.NotNil(t, err)
}
