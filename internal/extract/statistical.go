package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"
)

// stopwordsEN are words too generic to anchor a statistically discovered
// phrase on their own.
var stopwordsEN = toSet([]string{
	"the", "a", "an", "this", "that", "these", "those", "is", "are", "was",
	"were", "be", "been", "being", "have", "has", "had", "do", "does", "did",
	"will", "would", "could", "should", "may", "might", "can", "shall",
	"of", "in", "to", "for", "with", "on", "at", "from", "by", "about",
	"as", "into", "through", "during", "before", "after", "above", "below",
	"between", "under", "over", "then", "than", "but", "and", "or", "not",
	"no", "nor", "so", "too", "very", "just", "also", "more", "most", "much",
	"many", "such", "own", "same", "other", "each", "every", "both", "few",
	"all", "any", "some", "which", "who", "whom", "what", "where", "when",
	"how", "why", "it", "its", "we", "our", "they", "their", "them",
	"he", "she", "his", "her", "him", "i", "me", "my", "you", "your",
	"one", "two", "three", "first", "second", "third", "new", "used",
	"based", "using", "use", "different", "well", "however",
	"proposed", "paper", "work", "study", "results", "approach", "method",
	"research", "thesis", "chapter", "section", "figure", "table",
	"present", "show", "provide", "main", "order", "case", "number",
	"given", "part", "found", "made", "several", "important",
})

// genericPhrases are noun phrases that occur in almost every abstract and
// carry no terminology value.
var genericPhrases = toSet([]string{
	"this thesis", "this work", "this paper", "this study", "this research",
	"the results", "the method", "the approach", "the system", "the model",
	"the data", "the process", "the problem", "the author", "the user",
	"previous work", "related work", "future work", "main goal",
	"master thesis", "bachelor thesis", "doctoral thesis",
})

var leadingDeterminers = toSet([]string{"the", "a", "an", "this", "that", "these", "those"})

// estonianWord tokenizes Estonian text for n-gram extraction.
var estonianWord = regexp.MustCompile(`[a-zõäöüšž]+`)

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// englishPhrases extracts candidate noun phrases of two to four words from
// an English abstract. Phrases are runs of adjectives and nouns ending in a
// noun, per the part-of-speech tags.
func englishPhrases(text string) (map[string]struct{}, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tag abstract: %w", err)
	}

	found := make(map[string]struct{})
	var run []prose.Token

	flush := func() {
		defer func() { run = nil }()

		// Trim trailing adjectives so the phrase ends in a noun.
		end := len(run)
		for end > 0 && !strings.HasPrefix(run[end-1].Tag, "NN") {
			end--
		}
		words := make([]string, 0, end)
		for _, tok := range run[:end] {
			words = append(words, strings.ToLower(tok.Text))
		}
		if phrase, ok := filterPhrase(words); ok {
			found[phrase] = struct{}{}
		}
	}

	for _, tok := range doc.Tokens() {
		if strings.HasPrefix(tok.Tag, "NN") || strings.HasPrefix(tok.Tag, "JJ") {
			run = append(run, tok)
			continue
		}
		flush()
	}
	flush()

	return found, nil
}

// filterPhrase applies the shared phrase filters: length bounds, generic
// phrase exclusion and the requirement of at least one content word.
func filterPhrase(words []string) (string, bool) {
	if len(words) > 0 {
		if _, det := leadingDeterminers[words[0]]; det {
			words = words[1:]
		}
	}
	if len(words) < 2 || len(words) > 4 {
		return "", false
	}

	phrase := strings.Join(words, " ")
	if _, generic := genericPhrases[phrase]; generic {
		return "", false
	}

	content := false
	for _, w := range words {
		if _, stop := stopwordsEN[w]; !stop {
			content = true
			break
		}
	}
	if !content {
		return "", false
	}

	return phrase, true
}

// estonianPhrases extracts two and three word n-grams from an Estonian
// abstract. There is no reliable Estonian tagger, so frequency filtering
// downstream does the heavy lifting.
func estonianPhrases(text string) map[string]struct{} {
	words := estonianWord.FindAllString(strings.ToLower(text), -1)

	found := make(map[string]struct{})
	for _, n := range []int{2, 3} {
	gram:
		for i := 0; i+n <= len(words); i++ {
			for _, w := range words[i : i+n] {
				if len([]rune(w)) < 3 {
					continue gram
				}
			}
			found[strings.Join(words[i:i+n], " ")] = struct{}{}
		}
	}
	return found
}
