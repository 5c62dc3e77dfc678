package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// If the key is not present or the value is invalid, it returns 0 and updates the fieldErrors map.
// - params: URL query parameters.
// - key: The key to look for in the query parameters.
// - fieldErrors: A map to collect validation errors for fields.
// Returns:
// - The parsed float64 value (or 0 if invalid).
// - The updated fieldErrors map containing any validation errors.
func ParseFloatParam(params url.Values, key string, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	}
	return f, fieldErrors
}

// ParseIntParam retrieves an int value from the provided URL query parameters,
// following the same conventions as ParseFloatParam.
func ParseIntParam(params url.Values, key string, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	}
	return n, fieldErrors
}

// RequireParam marks the key as missing in fieldErrors when the query holds no
// value for it.
func RequireParam(params url.Values, key string, fieldErrors map[string][]string) map[string][]string {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}
	if params.Get(key) == "" {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Missing required field %q.", key))
	}
	return fieldErrors
}

// ParseDateParam parses a date query parameter. It supports epoch timestamps
// in milliseconds and date strings in the format "YYYY-MM-DD"; an empty value
// defaults to today. The boolean reports whether parsing succeeded.
func ParseDateParam(params url.Values, key string, fieldErrors map[string][]string) (time.Time, map[string][]string, bool) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), fieldErrors, true
	}

	if epochMillis, err := strconv.ParseInt(val, 10, 64); err == nil {
		t := time.UnixMilli(epochMillis).UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), fieldErrors, true
	}

	if t, err := time.Parse("2006-01-02", val); err == nil {
		return t, fieldErrors, true
	}

	fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	return time.Time{}, fieldErrors, false
}
