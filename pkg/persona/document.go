// Package persona reads and edits a persona document: a markdown file with
// a "# Name" title and "## Section" blocks, partly maintained by hand.
package persona

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// EvolutionLog is the section new evolution entries are added to.
	EvolutionLog = "Evolution Log"

	sectionPrefix = "## "
	titlePrefix   = "# "
)

// ErrSectionNotFound is returned when no heading matches the requested section.
var ErrSectionNotFound = errors.New("section not found")

// Section locates one "## Name" block. Offsets index the source text:
// Start is the heading line, BodyStart the line after it, and End the start
// of the next "## " heading (or the end of the text).
type Section struct {
	Name      string
	Start     int
	BodyStart int
	End       int
}

// Document is a persona text with its sections indexed by a single scan.
type Document struct {
	text     string
	title    string
	sections []Section
}

// Parse scans text once, recording the title and every section heading.
func Parse(text string) *Document {
	doc := &Document{text: text}

	open := -1
	for pos := 0; pos < len(text); {
		lineEnd := strings.IndexByte(text[pos:], '\n')
		next := len(text)
		if lineEnd >= 0 {
			next = pos + lineEnd + 1
		}
		line := strings.TrimRight(text[pos:next], "\r\n")

		switch {
		case strings.HasPrefix(line, sectionPrefix):
			if open >= 0 {
				doc.sections[open].End = pos
			}
			doc.sections = append(doc.sections, Section{
				Name:      strings.TrimSpace(line[len(sectionPrefix):]),
				Start:     pos,
				BodyStart: next,
				End:       len(text),
			})
			open = len(doc.sections) - 1
		case doc.title == "" && strings.HasPrefix(line, titlePrefix):
			doc.title = strings.TrimSpace(line[len(titlePrefix):])
		}
		pos = next
	}
	return doc
}

// Title returns the first "# " heading, or "".
func (d *Document) Title() string {
	return d.title
}

// Sections returns the indexed sections in document order.
func (d *Document) Sections() []Section {
	return d.sections
}

// String returns the document text.
func (d *Document) String() string {
	return d.text
}

// Find returns the first section whose heading is exactly name.
func (d *Document) Find(name string) (Section, bool) {
	for _, s := range d.sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Body returns the trimmed content of a section, without its heading.
func (d *Document) Body(s Section) string {
	return strings.TrimSpace(d.text[s.BodyStart:s.End])
}

// Block returns the trimmed heading and content of a section.
func (d *Document) Block(s Section) string {
	return strings.TrimSpace(d.text[s.Start:s.End])
}

// ExtractSection returns the trimmed body of the section named name.
func ExtractSection(text, name string) (string, error) {
	doc := Parse(text)
	s, ok := doc.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrSectionNotFound, name)
	}
	return doc.Body(s), nil
}

// AppendEvolution adds entry to the Evolution Log section and returns the new
// text. The section is created at the end when missing. Otherwise the entry
// goes after the section's last non-blank line, so anything following it is
// kept byte for byte. Every call adds exactly one entry.
func AppendEvolution(text, entry string) string {
	entry = strings.TrimRight(entry, "\r\n")

	doc := Parse(text)
	s, ok := doc.Find(EvolutionLog)
	if !ok {
		return strings.TrimRight(text, " \t\r\n") + "\n\n" + sectionPrefix + EvolutionLog + "\n\n" + entry + "\n"
	}

	if s.End == len(text) {
		return strings.TrimRight(text, " \t\r\n") + "\n" + entry + "\n"
	}

	at := insertionPoint(text, s)
	return text[:at] + entry + "\n" + text[at:]
}

// insertionPoint is the offset just past the last non-blank line of s,
// which is the heading line itself for an empty section.
func insertionPoint(text string, s Section) int {
	body := text[s.BodyStart:s.End]
	trimmed := strings.TrimRight(body, " \t\r\n")
	if trimmed == "" {
		return s.BodyStart
	}
	at := s.BodyStart + len(trimmed)
	if nl := strings.IndexByte(text[at:s.End], '\n'); nl >= 0 {
		return at + nl + 1
	}
	return s.End
}
