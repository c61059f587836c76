package routing

import (
	"errors"
	"testing"
)

func TestExtractRouteChoice(t *testing.T) {
	allowed := []string{"simple", "complex"}

	tests := []struct {
		name    string
		text    string
		want    string
		wantErr error
	}{
		{
			name: "plain choice",
			text: "<CHOICE>simple</CHOICE>",
			want: "simple",
		},
		{
			name: "choice with surrounding analysis",
			text: "<ANALYSIS>\nThis looks like a one-step task.\n</ANALYSIS>\n<CHOICE>\ncomplex\n</CHOICE>",
			want: "complex",
		},
		{
			name: "case-insensitive markers and value",
			text: "<choice>SIMPLE</choice>",
			want: "simple",
		},
		{
			name:    "no markers",
			text:    "no tags here",
			wantErr: ErrNoChoiceMarkers,
		},
		{
			name:    "out of allow-list",
			text:    "<CHOICE>bogus</CHOICE>",
			wantErr: ErrUnknownRoute,
		},
		{
			name:    "empty capture",
			text:    "<CHOICE></CHOICE>",
			wantErr: ErrUnknownRoute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractRouteChoice(tt.text, allowed)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ExtractRouteChoice() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractRouteChoice() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractRouteChoice() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractRouteChoice_ReturnsCanonicalSpelling(t *testing.T) {
	got, err := ExtractRouteChoice("<CHOICE>Simple</CHOICE>", []string{"simple", "complex"})
	if err != nil {
		t.Fatalf("ExtractRouteChoice() error = %v", err)
	}
	if got != "simple" {
		t.Errorf("ExtractRouteChoice() = %q, want allow-list spelling %q", got, "simple")
	}
}

func TestHasRouteMarkers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"both pairs", "<ANALYSIS>x</ANALYSIS><CHOICE>y</CHOICE>", true},
		{"multiline", "<analysis>\nlong\nreasoning\n</analysis>\n<choice>simple</choice>", true},
		{"choice only", "<CHOICE>simple</CHOICE>", false},
		{"analysis only", "<ANALYSIS>thinking</ANALYSIS>", false},
		{"neither", "plain text", false},
		{"unclosed choice", "<ANALYSIS>x</ANALYSIS><CHOICE>simple", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasRouteMarkers(tt.text); got != tt.want {
				t.Errorf("HasRouteMarkers(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
