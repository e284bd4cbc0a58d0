package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseInt64 converts string to int64, zero on failure
func ParseInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

// ------------- Optional query parameters -------------
//
// Absent or malformed values become nil so the filter builder can
// skip the criterion entirely.

func FloatParam(value string) *float64 {
	if value == "" {
		return nil
	}
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &result
}

func IntParam(value string) *int {
	if value == "" {
		return nil
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &result
}

func StringParam(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
