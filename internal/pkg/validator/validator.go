package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Date key validation: the "YYYY-MM-DD" calendar-day string used to group
// attendance records. The shape check alone would accept 2024-02-31, so the
// value is round-tripped through time.Parse as well.
var dateKeyRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

func IsValidDateKey(value string) bool {
	if !dateKeyRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// Month key validation: "YYYY-MM" prefix used for monthly histories.
var monthKeyRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}$`)

func IsValidMonthKey(value string) bool {
	if !monthKeyRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01", value)
	return err == nil
}

// Cutoff time validation: "HH:mm", 24-hour clock.
var cutoffRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

func IsValidCutoffTime(value string) bool {
	return cutoffRegex.MatchString(value)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
