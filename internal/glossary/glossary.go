// Package glossary reads the published terminology glossary so candidate
// reports can separate genuinely new terms from already covered ones.
package glossary

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// entry mirrors one glossary record. Only the English forms matter here;
// translations and notes stay opaque.
type entry struct {
	EN  string `yaml:"en"`
	Alt struct {
		EN []string `yaml:"en"`
	} `yaml:"alt"`
}

// Glossary is the set of English terms the published glossary already
// covers, including alternative spellings.
type Glossary struct {
	terms map[string]struct{}
}

// Load reads a glossary YAML file. A missing file is an empty glossary, not
// an error, so a fresh deployment works before any terms are published.
func Load(path string) (*Glossary, error) {
	g := &Glossary{terms: make(map[string]struct{})}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return g, nil
		}
		return nil, fmt.Errorf("read glossary: %w", err)
	}

	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse glossary: %w", err)
	}

	for _, e := range entries {
		g.add(e.EN)
		for _, alt := range e.Alt.EN {
			g.add(alt)
		}
	}

	return g, nil
}

func (g *Glossary) add(term string) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term != "" {
		g.terms[term] = struct{}{}
	}
}

// Contains reports whether the glossary already covers a term. Matching is
// case-insensitive.
func (g *Glossary) Contains(term string) bool {
	_, ok := g.terms[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// Len returns the number of known English forms.
func (g *Glossary) Len() int {
	return len(g.terms)
}
