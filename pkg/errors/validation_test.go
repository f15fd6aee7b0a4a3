package errors

import (
	"strings"
	"testing"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{"valid simple", "centrifugal pump", false},
		{"valid with digits", "Ball Valve A1", false},
		{"valid unicode", "wärmetauscher", false},
		{"empty", "", true},
		{"too long", strings.Repeat("x", MaxLabelLength+1), true},
		{"max length ok", strings.Repeat("x", MaxLabelLength), false},
		{"control character", "pump\x01", true},
		{"null byte", "pump\x00valve", true},
		{"newline", "pump\nvalve", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.label)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidLabel) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidLabel)
			}
		})
	}
}

func TestValidateStoreKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid", "pid-default", false},
		{"valid with colon", "user:42", false},
		{"empty", "", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"traversal", "..secret", true},
		{"space", "a b", true},
		{"too long", strings.Repeat("k", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStoreKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStoreKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "heat exchanger", false},
		{"empty", "", true},
		{"too long", strings.Repeat("n", 257), true},
		{"control", "tank\x07", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
