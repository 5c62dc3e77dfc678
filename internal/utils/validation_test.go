package utils

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLatitude(t *testing.T) {
	assert.NoError(t, ValidateLatitude(0))
	assert.NoError(t, ValidateLatitude(90))
	assert.NoError(t, ValidateLatitude(-90))
	assert.Error(t, ValidateLatitude(90.1))
	assert.Error(t, ValidateLatitude(-90.1))
}

func TestValidateLongitude(t *testing.T) {
	assert.NoError(t, ValidateLongitude(0))
	assert.NoError(t, ValidateLongitude(180))
	assert.NoError(t, ValidateLongitude(-180))
	assert.Error(t, ValidateLongitude(180.1))
	assert.Error(t, ValidateLongitude(-180.1))
}

func TestValidateCoordinateParams(t *testing.T) {
	fieldErrors := ValidateCoordinateParams("fromLat", "fromLon", 95, 13.4, nil)
	assert.Contains(t, fieldErrors, "fromLat")
	assert.NotContains(t, fieldErrors, "fromLon")

	fieldErrors = ValidateCoordinateParams("toLat", "toLon", 52.5, 13.4, nil)
	assert.Empty(t, fieldErrors)
}

func TestValidateRangeParams(t *testing.T) {
	fieldErrors := ValidateRangeParams("minPrice", "maxPrice", 10, 5, nil)
	assert.Contains(t, fieldErrors, "maxPrice")

	fieldErrors = ValidateRangeParams("minPrice", "maxPrice", -1, 5, nil)
	assert.Contains(t, fieldErrors, "minPrice")

	fieldErrors = ValidateRangeParams("minPrice", "maxPrice", 5, 10, nil)
	assert.Empty(t, fieldErrors)

	// Zero means unset, so a lone max is fine.
	fieldErrors = ValidateRangeParams("minTime", "maxTime", 0, 4, nil)
	assert.Empty(t, fieldErrors)
}

func TestParseFloatParam(t *testing.T) {
	params := url.Values{"lat": {"52.5"}, "bad": {"abc"}}

	v, fieldErrors := ParseFloatParam(params, "lat", nil)
	assert.Equal(t, 52.5, v)
	assert.Empty(t, fieldErrors)

	_, fieldErrors = ParseFloatParam(params, "bad", fieldErrors)
	assert.Contains(t, fieldErrors, "bad")

	v, fieldErrors = ParseFloatParam(params, "missing", fieldErrors)
	assert.Equal(t, 0.0, v)
	assert.NotContains(t, fieldErrors, "missing")
}

func TestParseIntParam(t *testing.T) {
	params := url.Values{"maxResults": {"3"}, "bad": {"x"}}

	n, fieldErrors := ParseIntParam(params, "maxResults", nil)
	assert.Equal(t, 3, n)
	assert.Empty(t, fieldErrors)

	_, fieldErrors = ParseIntParam(params, "bad", fieldErrors)
	assert.Contains(t, fieldErrors, "bad")
}

func TestRequireParam(t *testing.T) {
	params := url.Values{"present": {"1"}}

	fieldErrors := RequireParam(params, "present", nil)
	assert.Empty(t, fieldErrors)

	fieldErrors = RequireParam(params, "absent", fieldErrors)
	assert.Contains(t, fieldErrors, "absent")
}

func TestParseDateParam(t *testing.T) {
	params := url.Values{
		"date":  {"2026-08-31"},
		"epoch": {"1788134400000"},
		"bad":   {"31/08/2026"},
	}

	d, fieldErrors, ok := ParseDateParam(params, "date", nil)
	require.True(t, ok)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), d)

	d, _, ok = ParseDateParam(params, "epoch", nil)
	require.True(t, ok)
	assert.Equal(t, time.August, d.Month())
	assert.Equal(t, 2026, d.Year())

	_, fieldErrors, ok = ParseDateParam(params, "bad", nil)
	assert.False(t, ok)
	assert.Contains(t, fieldErrors, "bad")

	d, _, ok = ParseDateParam(params, "missing", nil)
	require.True(t, ok)
	assert.Equal(t, 0, d.Hour())
}
