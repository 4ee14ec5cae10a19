package middleware

import "testing"

func TestParseCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a@example.com", []string{"a@example.com"}},
		{"a@example.com, b@example.com", []string{"a@example.com", "b@example.com"}},
		{" , ,a@example.com, ", []string{"a@example.com"}},
	}

	for _, tc := range tests {
		got := parseCSV(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("parseCSV(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("parseCSV(%q)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

func TestContainsIgnoresEmptyValue(t *testing.T) {
	// An empty claim email must never match, even against odd config.
	if contains([]string{""}, "") {
		t.Error("empty value matched empty list entry")
	}
	if !contains([]string{"owner@example.com"}, "owner@example.com") {
		t.Error("exact match missed")
	}
	if contains([]string{"owner@example.com"}, "Owner@example.com") {
		t.Error("match should be case sensitive")
	}
}
