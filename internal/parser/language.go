package parser

import "strings"

// LanguageDetector guesses the language of a text when the metadata carries
// no usable xml:lang attribute.
type LanguageDetector interface {
	Detect(text string) string
}

// DefaultDiacriticThreshold is the share of Estonian diacritic characters
// above which a text is considered Estonian.
const DefaultDiacriticThreshold = 0.005

const estonianDiacritics = "õäöüÕÄÖÜ"

// DiacriticDetector separates Estonian from English by counting the density
// of the Estonian diacritic letters. Thesis abstracts are long enough for
// this to be reliable, and it stays correct for mixed-language metadata
// where a library-level language field would not.
type DiacriticDetector struct {
	Threshold float64
}

// NewDiacriticDetector creates a detector with the default threshold.
func NewDiacriticDetector() DiacriticDetector {
	return DiacriticDetector{Threshold: DefaultDiacriticThreshold}
}

// Detect returns "et" or "en".
func (d DiacriticDetector) Detect(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return "en"
	}

	count := 0
	for _, r := range runes {
		if strings.ContainsRune(estonianDiacritics, r) {
			count++
		}
	}

	if float64(count)/float64(len(runes)) > d.Threshold {
		return "et"
	}
	return "en"
}
