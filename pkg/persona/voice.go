package persona

import (
	"log/slog"
	"os"
	"strings"
)

const (
	DefaultName  = "Wanderer"
	DefaultVoice = "sarcastic, witty, audacious rogue with main-character energy"
)

// VoiceSections are joined, in this order, to describe how the persona talks.
var VoiceSections = []string{"Personality", "Values", "Dialogue Style"}

// NameAndVoice returns the persona name (the "# " title) and a voice
// description built from VoiceSections. Missing parts fall back to
// DefaultName and DefaultVoice.
func NameAndVoice(text string) (string, string) {
	doc := Parse(text)

	name := doc.Title()
	if name == "" {
		name = DefaultName
	}

	var parts []string
	for _, sectionName := range VoiceSections {
		s, ok := doc.Find(sectionName)
		if !ok {
			continue
		}
		if body := doc.Body(s); body != "" {
			parts = append(parts, body)
		}
	}

	voice := DefaultVoice
	if len(parts) > 0 {
		voice = strings.Join(parts, " | ")
	}
	return name, voice
}

// LoadNameAndVoice reads the persona file at path. It never fails: an
// unreadable file yields the defaults.
func LoadNameAndVoice(path string) (string, string) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("Using default persona", "path", path, "error", err)
		return DefaultName, DefaultVoice
	}
	return NameAndVoice(string(data))
}
