package engine

import "testing"

func TestFindDuplicateKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKey  string
		wantOK   bool
	}{
		{
			name:    "no duplicates",
			input:   `{"a": "x", "b": "y"}`,
			wantOK:  false,
		},
		{
			name:    "duplicate top-level key",
			input:   `{"a": "x", "a": "y"}`,
			wantKey: "a",
			wantOK:  true,
		},
		{
			name:    "same string value different keys is not a duplicate",
			input:   `{"a": "x", "b": "x"}`,
			wantOK:  false,
		},
		{
			name:    "duplicate nested inside a different object is fine",
			input:   `{"a": {"x": 1}, "b": {"x": 2}}`,
			wantOK:  false,
		},
		{
			name:    "duplicate inside a nested object is detected",
			input:   `{"outer": {"name": "a", "name": "b"}}`,
			wantKey: "name",
			wantOK:  true,
		},
		{
			name:    "duplicate inside array elements is detected per-object",
			input:   `[{"a": 1}, {"a": 1, "a": 2}]`,
			wantKey: "a",
			wantOK:  true,
		},
		{
			name:    "malformed json yields not found rather than panicking",
			input:   `{not json`,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := findDuplicateKey([]byte(tt.input))
			if ok != tt.wantOK {
				t.Fatalf("findDuplicateKey(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && key != tt.wantKey {
				t.Fatalf("findDuplicateKey(%q) key = %q, want %q", tt.input, key, tt.wantKey)
			}
		})
	}
}
