package textfilter

import (
	"testing"
)

func TestProfanityFilter_FilterText(t *testing.T) {
	filter := NewProfanityFilter()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple replacement",
			input:    "What the hell do you want?",
			expected: "What the heck do you want?",
		},
		{
			name:     "multiple words",
			input:    "This is damn crap!",
			expected: "This is dang crud!",
		},
		{
			name:     "uppercase preserved",
			input:    "DAMN raiders!",
			expected: "DANG raiders!",
		},
		{
			name:     "title case preserved",
			input:    "Hell, I don't know.",
			expected: "Heck, I don't know.",
		},
		{
			name:     "mixed case pattern",
			input:    "HeLl yeah",
			expected: "HeCk yeah",
		},
		{
			name:     "word boundaries respected",
			input:    "A classical assessment of the shell casings",
			expected: "A classical assessment of the shell casings",
		},
		{
			name:     "longer word wins over its substring",
			input:    "That's bullshit and you know it.",
			expected: "That's baloney and you know it.",
		},
		{
			name:     "plural keeps suffix",
			input:    "Get out, you bastards!",
			expected: "Get out, you jerks!",
		},
		{
			name:     "clean line untouched",
			input:    "Welcome to Junktown, stranger.",
			expected: "Welcome to Junktown, stranger.",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := filter.FilterText(tt.input); result != tt.expected {
				t.Errorf("FilterText(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestProfanityFilter_NilPassesThrough(t *testing.T) {
	var filter *ProfanityFilter
	if got := filter.FilterText("damn it"); got != "damn it" {
		t.Errorf("nil filter changed text: %q", got)
	}
	if filter.ContainsProfanity("damn it") {
		t.Error("nil filter should never report profanity")
	}
}

func TestProfanityFilter_ContainsProfanity(t *testing.T) {
	filter := NewProfanityFilter()

	if !filter.ContainsProfanity("Go to hell") {
		t.Error("expected profanity to be detected")
	}
	if filter.ContainsProfanity("Hello there, shell collector") {
		t.Error("did not expect partial-word match")
	}
}

func TestShouldFilterContent(t *testing.T) {
	tests := []struct {
		rating string
		want   bool
	}{
		{"G", true},
		{"pg", true},
		{"PG13", true},
		{"PG-13", true},
		{" pg13 ", true},
		{"R", false},
		{"", false},
		{"NC17", false},
	}

	for _, tt := range tests {
		t.Run(tt.rating, func(t *testing.T) {
			if got := ShouldFilterContent(tt.rating); got != tt.want {
				t.Errorf("ShouldFilterContent(%q) = %v, want %v", tt.rating, got, tt.want)
			}
		})
	}
}

func TestForRating(t *testing.T) {
	if ForRating(RatingR) != nil {
		t.Error("R rating should not build a filter")
	}
	f := ForRating(RatingPG)
	if f == nil {
		t.Fatal("PG rating should build a filter")
	}
	if got := f.FilterText("Shit."); got != "Scrap." {
		t.Errorf("FilterText = %q", got)
	}
}
