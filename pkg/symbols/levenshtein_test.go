package symbols

import (
	"strings"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"valve", "value", 1},
		{"pump", "sump", 1},
		{"heat_exchanger", "heat_exchangr", 1},
		{"flask", "flash", 1},
		{"ab", "ba", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := Levenshtein(tt.a, tt.b); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLevenshteinSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"ball_valve", "valve"},
		{"", "separator"},
		{"compressor", "condenser"},
	}
	for _, p := range pairs {
		if d1, d2 := Levenshtein(p[0], p[1]), Levenshtein(p[1], p[0]); d1 != d2 {
			t.Errorf("Levenshtein(%q, %q) = %d but reversed = %d", p[0], p[1], d1, d2)
		}
	}
}

func TestLevenshteinIdentity(t *testing.T) {
	for _, s := range []string{"", "x", "valve", "heat_exchanger", "päd"} {
		if d := Levenshtein(s, s); d != 0 {
			t.Errorf("Levenshtein(%q, %q) = %d, want 0", s, s, d)
		}
	}
}

func TestLevenshteinInputCap(t *testing.T) {
	long := strings.Repeat("a", maxEditInput+1)

	// Over-long inputs short-circuit to the longest length.
	if got := Levenshtein(long, "a"); got != maxEditInput+1 {
		t.Errorf("capped distance = %d, want %d", got, maxEditInput+1)
	}

	// Even identical over-long inputs are treated as maximally dissimilar.
	if got := Levenshtein(long, long); got != maxEditInput+1 {
		t.Errorf("capped identical distance = %d, want %d", got, maxEditInput+1)
	}
}

func TestEditScore(t *testing.T) {
	if got := editScore("", ""); got != 1 {
		t.Errorf("editScore of two empty strings = %v, want 1", got)
	}
	if got := editScore("valve", "valve"); got != 1 {
		t.Errorf("editScore of identical strings = %v, want 1", got)
	}
	// distance 4, longest 5
	if got, want := editScore("valve", "v"), 1-4.0/5.0; got != want {
		t.Errorf("editScore = %v, want %v", got, want)
	}
}
