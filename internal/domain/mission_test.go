package domain

import (
	"reflect"
	"testing"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple list",
			input: "audit interne, conformité, IFRS",
			want:  []string{"audit interne", "conformité", "IFRS"},
		},
		{
			name:  "extra whitespace and empty segments",
			input: " a, b ,,c, ",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "duplicates are kept in order",
			input: "excel, sap, excel",
			want:  []string{"excel", "sap", "excel"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "only separators",
			input: " , , ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseKeywords(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseKeywords(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseKeywordsStable(t *testing.T) {
	// Parsing the joined form of an already-parsed list gives the same list.
	first := ParseKeywords("a, b ,,c")
	second := ParseKeywords(JoinKeywords(first))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed a clean list: %v -> %v", first, second)
	}
}

func TestJoinKeywordsLossy(t *testing.T) {
	// An element containing a comma splits on the way back. That loss is
	// accepted; the test documents it.
	original := []string{"a,b"}
	parsed := ParseKeywords(JoinKeywords(original))
	want := []string{"a", "b"}
	if !reflect.DeepEqual(parsed, want) {
		t.Errorf("ParseKeywords(JoinKeywords(%v)) = %v, want %v", original, parsed, want)
	}
}
