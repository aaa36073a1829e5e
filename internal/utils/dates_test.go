package utils_test

import (
	"testing"
	"time"

	"github.com/dukaanbook/dukaanbook_backend/internal/apperrors"
	"github.com/dukaanbook/dukaanbook_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrictDate_StartOfDay(t *testing.T) {
	got, err := utils.ParseStrictDate("2024-03-15", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseStrictDate_EndOfDay(t *testing.T) {
	got, err := utils.ParseStrictDate("2024-03-15", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 999000000, time.UTC), got)
}

func TestParseStrictDate_AcceptsTimestampPrefix(t *testing.T) {
	got, err := utils.ParseStrictDate("2024-03-15T10:30:00Z", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseStrictDate_Invalid(t *testing.T) {
	for _, input := range []string{"bad-date", "", "15-03-2024", "2024/03/15", "2024-13-40"} {
		_, err := utils.ParseStrictDate(input, false)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDate, "input %q", input)
	}
}

func TestValidateDateRange(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, utils.ValidateDateRange(&day1, &day2))
	assert.NoError(t, utils.ValidateDateRange(&day1, &day1))
	assert.NoError(t, utils.ValidateDateRange(nil, &day2))
	assert.NoError(t, utils.ValidateDateRange(&day1, nil))
	assert.NoError(t, utils.ValidateDateRange(nil, nil))
	assert.ErrorIs(t, utils.ValidateDateRange(&day2, &day1), apperrors.ErrInvalidRange)
}
