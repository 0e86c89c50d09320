package utils

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "00:00:00"},
		{30 * time.Second, "00:00:30"},
		{90 * time.Second, "00:01:30"},
		{time.Hour + 2*time.Minute + 3*time.Second, "01:02:03"},
	}

	for _, test := range tests {
		result := FormatDuration(test.duration)
		if result != test.expected {
			t.Errorf("FormatDuration(%v) = %s, ожидалось %s", test.duration, result, test.expected)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "00:00.00"},
		{5.95, "00:05.95"},
		{65.5, "01:05.50"},
		{-1, "00:00.00"},
	}

	for _, test := range tests {
		result := FormatSeconds(test.seconds)
		if result != test.expected {
			t.Errorf("FormatSeconds(%f) = %s, ожидалось %s", test.seconds, result, test.expected)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"a very long string", 10, "a very ..."},
		{"abc", 2, "ab"},
	}

	for _, test := range tests {
		result := TruncateString(test.input, test.maxLen)
		if result != test.expected {
			t.Errorf("TruncateString(%q, %d) = %q, ожидалось %q",
				test.input, test.maxLen, result, test.expected)
		}
	}
}
