package extract

import (
	"regexp"
	"strings"

	"term_harvester/internal/domain"
	"term_harvester/internal/lexicon"
)

// minHintLength skips Estonian hints too short to match reliably.
const minHintLength = 3

type curatedEntry struct {
	term lexicon.ReferenceTerm
	en   *regexp.Regexp
	et   []*regexp.Regexp
}

// CuratedMatcher finds curated lexicon terms in document abstracts and
// subjects. English forms are searched in English abstracts and subjects,
// Estonian hints in Estonian abstracts.
type CuratedMatcher struct {
	entries map[string]curatedEntry
}

// NewCuratedMatcher compiles word-boundary patterns for every lexicon term.
func NewCuratedMatcher(terms []lexicon.ReferenceTerm) *CuratedMatcher {
	entries := make(map[string]curatedEntry, len(terms))
	for _, term := range terms {
		entry := curatedEntry{
			term: term,
			en:   boundaryPattern(term.EN),
		}
		for _, hint := range term.ET {
			if len([]rune(hint)) >= minHintLength {
				entry.et = append(entry.et, boundaryPattern(hint))
			}
		}
		entries[strings.ToLower(term.EN)] = entry
	}
	return &CuratedMatcher{entries: entries}
}

// boundaryPattern builds a case-insensitive whole-word pattern. Plain \b is
// ASCII-only in RE2, so the boundary is spelled out with letter classes to
// keep Estonian diacritics inside words.
func boundaryPattern(term string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(term)
	return regexp.MustCompile(`(?i)(?:^|[^\p{L}\d])` + escaped + `(?:$|[^\p{L}\d])`)
}

// Match returns the lexicon keys (lowercased English forms) found in one
// document. Each key appears at most once per document.
func (m *CuratedMatcher) Match(doc *domain.DocumentRecord) map[string]struct{} {
	found := make(map[string]struct{})
	subjects := strings.Join(doc.Subjects, "\n")

	for key, entry := range m.entries {
		if doc.AbstractEN != "" && entry.en.MatchString(doc.AbstractEN) {
			found[key] = struct{}{}
			continue
		}
		if subjects != "" && entry.en.MatchString(subjects) {
			found[key] = struct{}{}
			continue
		}
		if doc.AbstractET != "" {
			for _, pattern := range entry.et {
				if pattern.MatchString(doc.AbstractET) {
					found[key] = struct{}{}
					break
				}
			}
		}
	}

	return found
}

// Term returns the lexicon entry behind a matched key.
func (m *CuratedMatcher) Term(key string) (lexicon.ReferenceTerm, bool) {
	entry, ok := m.entries[key]
	return entry.term, ok
}
