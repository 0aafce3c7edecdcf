package textfilter

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Content ratings accepted by ForRating. Anything else means unfiltered.
const (
	RatingG    = "G"
	RatingPG   = "PG"
	RatingPG13 = "PG13"
	RatingR    = "R"
)

// replacements maps words NPCs are fond of to milder stand-ins.
var replacements = map[string]string{
	"fuck":         "frag",
	"fucking":      "fragging",
	"motherfucker": "mother-fragger",
	"shit":         "scrap",
	"bullshit":     "baloney",
	"damn":         "dang",
	"goddamn":      "gosh-dang",
	"hell":         "heck",
	"ass":          "butt",
	"asshole":      "jerk",
	"dumbass":      "dummy",
	"bitch":        "jerk",
	"bastard":      "jerk",
	"crap":         "crud",
	"piss":         "tick",
	"dick":         "jerk",
	"whore":        "[censored]",
	"slut":         "[censored]",
	"retard":       "[censored]",
}

// ProfanityFilter replaces profanity in NPC dialogue.
// A nil *ProfanityFilter passes text through unchanged.
type ProfanityFilter struct {
	words   []string
	regexes map[string]*regexp.Regexp
}

// NewProfanityFilter compiles one word-boundary pattern per listed word.
// Longer words are tried first so "bullshit" is not caught as "shit".
func NewProfanityFilter() *ProfanityFilter {
	pf := &ProfanityFilter{regexes: make(map[string]*regexp.Regexp, len(replacements))}
	for word := range replacements {
		pf.words = append(pf.words, word)
		pf.regexes[word] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `(s|es)?\b`)
	}
	sort.Slice(pf.words, func(i, j int) bool {
		if len(pf.words[i]) != len(pf.words[j]) {
			return len(pf.words[i]) > len(pf.words[j])
		}
		return pf.words[i] < pf.words[j]
	})
	return pf
}

// ForRating returns a filter for ratings that need one, or nil.
func ForRating(rating string) *ProfanityFilter {
	if !ShouldFilterContent(rating) {
		return nil
	}
	return NewProfanityFilter()
}

// FilterText replaces profanity, keeping the case pattern of each match.
func (pf *ProfanityFilter) FilterText(text string) string {
	if pf == nil || text == "" {
		return text
	}

	result := text
	for _, word := range pf.words {
		replacement := replacements[word]
		result = pf.regexes[word].ReplaceAllStringFunc(result, func(match string) string {
			suffix := match[len(word):]
			return preserveCase(match[:len(word)], replacement) + suffix
		})
	}
	return result
}

// ContainsProfanity reports whether any listed word appears in text.
func (pf *ProfanityFilter) ContainsProfanity(text string) bool {
	if pf == nil {
		return false
	}
	for _, word := range pf.words {
		if pf.regexes[word].MatchString(text) {
			return true
		}
	}
	return false
}

// ShouldFilterContent reports whether rating calls for filtering.
func ShouldFilterContent(rating string) bool {
	switch strings.ToUpper(strings.TrimSpace(rating)) {
	case RatingG, RatingPG, RatingPG13, "PG-13":
		return true
	default:
		return false
	}
}

// preserveCase applies the case pattern of original to replacement.
func preserveCase(original, replacement string) string {
	if original == "" {
		return replacement
	}
	if strings.ToUpper(original) == original {
		return strings.ToUpper(replacement)
	}
	if strings.ToLower(original) == original {
		return strings.ToLower(replacement)
	}

	titleCaser := cases.Title(language.English)
	if titleCaser.String(strings.ToLower(original)) == original {
		return titleCaser.String(replacement)
	}

	// Mixed case: copy the pattern rune by rune, lowercase past the end.
	orig := []rune(original)
	out := make([]rune, 0, len(replacement))
	for _, r := range replacement {
		if len(out) < len(orig) && unicode.IsUpper(orig[len(out)]) {
			out = append(out, unicode.ToUpper(r))
		} else {
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}
