package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDateKey(t *testing.T) {
	valid := []string{"2024-01-01", "1999-12-31", "2024-02-29"}
	invalid := []string{
		"2024-1-01",
		"2024-01-1",
		"2024/01/01",
		"2024-13-01",
		"2024-02-31", // shape matches, calendar does not
		"24-01-01",
		"",
	}
	for _, key := range valid {
		if !IsValidDateKey(key) {
			t.Errorf("IsValidDateKey(%q) = false, want true", key)
		}
	}
	for _, key := range invalid {
		if IsValidDateKey(key) {
			t.Errorf("IsValidDateKey(%q) = true, want false", key)
		}
	}
}

func TestIsValidMonthKey(t *testing.T) {
	valid := []string{"2024-01", "1999-12"}
	invalid := []string{"2024-13", "2024-1", "2024-01-01", "202401", ""}
	for _, key := range valid {
		if !IsValidMonthKey(key) {
			t.Errorf("IsValidMonthKey(%q) = false, want true", key)
		}
	}
	for _, key := range invalid {
		if IsValidMonthKey(key) {
			t.Errorf("IsValidMonthKey(%q) = true, want false", key)
		}
	}
}

func TestIsValidCutoffTime(t *testing.T) {
	valid := []string{"00:00", "08:00", "19:59", "23:59"}
	invalid := []string{"24:00", "08:60", "8:00", "08:0", "0800", "late", ""}
	for _, v := range valid {
		if !IsValidCutoffTime(v) {
			t.Errorf("IsValidCutoffTime(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if IsValidCutoffTime(v) {
			t.Errorf("IsValidCutoffTime(%q) = true, want false", v)
		}
	}
}
