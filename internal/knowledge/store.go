// Package knowledge holds the static support document and the line search over it.
package knowledge

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Section markers recognized by the prompt router. A marker matches a line that
// starts with it, case-insensitively.
const (
	SectionMythsAndFacts = "myths and facts"
	SectionHowToTalk     = "how to talk"
)

var sectionMarkers = []string{SectionMythsAndFacts, SectionHowToTalk}

// ErrDocumentMissing is returned by Load when the knowledge file does not exist.
var ErrDocumentMissing = errors.New("knowledge document not found")

// Store keeps the knowledge document in memory. It is read-only after construction.
type Store struct {
	text  string
	lines []string
}

// New builds a Store from text already in memory.
func New(text string) *Store {
	return &Store{
		text:  text,
		lines: splitLines(text),
	}
}

// Load reads the knowledge document from path.
func Load(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentMissing, path)
		}
		return nil, fmt.Errorf("reading knowledge document %s: %w", path, err)
	}
	return New(string(b)), nil
}

// Text returns the whole document. A nil Store has empty content.
func (s *Store) Text() string {
	if s == nil {
		return ""
	}
	return s.text
}

// Lines returns the document lines in order.
func (s *Store) Lines() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Section returns the heading line matching marker and every line after it up to
// the next heading. ok is false when no heading matches.
func (s *Store) Section(marker string) (section string, ok bool) {
	if s == nil {
		return "", false
	}
	return extractSection(s.lines, marker)
}

// SectionOf is Section over a raw document, for callers that only hold text.
func SectionOf(document, marker string) (string, bool) {
	return extractSection(splitLines(document), marker)
}

func extractSection(lines []string, marker string) (string, bool) {
	marker = strings.ToLower(marker)

	start := -1
	for i, line := range lines {
		if startsWithMarker(line, marker) {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	end := len(lines)
	for j := start + 1; j < len(lines); j++ {
		if isHeading(lines[j]) {
			end = j
			break
		}
	}

	return strings.TrimRight(strings.Join(lines[start:end], "\n"), "\n"), true
}

// isHeading reports whether a line opens a new section: a markdown heading,
// a line starting with a known section name, or a title written entirely in
// capitals. Capitalized lines ending like a sentence stay body text.
func isHeading(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	if strings.HasPrefix(t, "#") {
		return true
	}

	for _, m := range sectionMarkers {
		if startsWithMarker(t, m) {
			return true
		}
	}

	lower := strings.ToLower(t)
	if strings.ToUpper(t) != t || lower == t {
		return false
	}
	return !strings.ContainsAny(t[len(t)-1:], ".!?")
}

// startsWithMarker matches marker at the start of the line, ignoring case and
// any leading markdown "#".
func startsWithMarker(line, marker string) bool {
	lower := strings.TrimLeft(strings.ToLower(strings.TrimSpace(line)), "# ")
	return strings.HasPrefix(lower, strings.ToLower(marker))
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	// a trailing newline does not start another line
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
