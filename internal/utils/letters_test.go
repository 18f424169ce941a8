package utils

import "testing"

func TestOnlyLetters(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"crane", "CRANE"},
		{"CRANE", "CRANE"},
		{"s,l,a,t,e", "SLATE"},
		{"a b c", "ABC"},
		{"42", ""},
		{"", ""},
		{"Gr-ape!", "GRAPE"},
	}
	for _, tt := range tests {
		if got := OnlyLetters(tt.input); got != tt.expected {
			t.Errorf("OnlyLetters(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsUpperWord(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"CRANE", true},
		{"crane", false},
		{"CRAN3", false},
		{"", false},
		{"CR AN", false},
	}
	for _, tt := range tests {
		if got := IsUpperWord(tt.input); got != tt.expected {
			t.Errorf("IsUpperWord(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
