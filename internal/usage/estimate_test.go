package usage

import "testing"

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"a", 1},
		{"abcd", 1},
		{"abcde", 2},
		{"this is a short english sentence", 8},
	}

	for _, tt := range tests {
		if got := EstimateTokens(tt.content); got != tt.want {
			t.Errorf("EstimateTokens(%q) = %d, want %d", tt.content, got, tt.want)
		}
	}
}

func TestHashContent(t *testing.T) {
	if HashContent("") != "" {
		t.Errorf("HashContent(empty) should be empty")
	}

	a := HashContent("hello")
	b := HashContent("hello")
	c := HashContent("world")

	if a != b {
		t.Errorf("HashContent not deterministic: %s != %s", a, b)
	}
	if a == c {
		t.Errorf("HashContent collision between different inputs")
	}
	if len(a) != 64 {
		t.Errorf("HashContent length = %d, want 64 hex chars", len(a))
	}
}
