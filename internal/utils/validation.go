package utils

import (
	"errors"
	"fmt"
)

// ValidateLatitude validates latitude values
func ValidateLatitude(lat float64) error {
	if lat < -90.0 || lat > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude validates longitude values
func ValidateLongitude(lon float64) error {
	if lon < -180.0 || lon > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateCoordinateParams validates one lat/lon pair, keying errors by the
// given parameter names.
func ValidateCoordinateParams(latKey, lonKey string, lat, lon float64, fieldErrors map[string][]string) map[string][]string {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	if err := ValidateLatitude(lat); err != nil {
		fieldErrors[latKey] = append(fieldErrors[latKey], err.Error())
	}
	if err := ValidateLongitude(lon); err != nil {
		fieldErrors[lonKey] = append(fieldErrors[lonKey], err.Error())
	}
	return fieldErrors
}

// ValidateRangeParams validates an optional [min,max] bound read from two
// query parameters. Negative values are rejected; a max below min is rejected
// when both are set.
func ValidateRangeParams(minKey, maxKey string, min, max float64, fieldErrors map[string][]string) map[string][]string {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	if min < 0 {
		fieldErrors[minKey] = append(fieldErrors[minKey], fmt.Sprintf("%q must be non-negative", minKey))
	}
	if max < 0 {
		fieldErrors[maxKey] = append(fieldErrors[maxKey], fmt.Sprintf("%q must be non-negative", maxKey))
	}
	if min > 0 && max > 0 && max < min {
		fieldErrors[maxKey] = append(fieldErrors[maxKey], fmt.Sprintf("%q must not be below %q", maxKey, minKey))
	}
	return fieldErrors
}
