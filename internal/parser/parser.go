package parser

import (
	"log/slog"
	"strings"

	"term_harvester/internal/domain"
	"term_harvester/internal/oai"
)

// MinAbstractLength filters out placeholder descriptions. Anything shorter
// carries too little text to extract terminology from.
const MinAbstractLength = 50

// thesisTypeKeywords identify thesis records among the mixed material some
// repositories expose.
var thesisTypeKeywords = []string{"thesis", "lõputöö", "magistri", "bakalaure", "doktori"}

// Parser maps raw protocol records to domain documents.
type Parser struct {
	detector LanguageDetector
	logger   *slog.Logger
}

func New(detector LanguageDetector, logger *slog.Logger) *Parser {
	return &Parser{
		detector: detector,
		logger:   logger,
	}
}

// Parse converts one raw record. The second return value is false when the
// record is unusable: deleted, missing its identifier or title, or carrying
// no abstract long enough to analyze. Unusable records are dropped with a
// log line, never treated as errors.
func (p *Parser) Parse(rec oai.Record, endpoint string) (*domain.DocumentRecord, bool) {
	if rec.Header.Deleted() {
		return nil, false
	}

	if rec.Header.Identifier == "" {
		p.logger.Warn("dropping record without identifier", "endpoint", endpoint)
		return nil, false
	}

	dc := rec.Metadata.DC

	titles := fieldValues(dc.Titles)
	if len(titles) == 0 {
		p.logger.Warn("dropping record without title",
			"endpoint", endpoint,
			"identifier", rec.Header.Identifier,
		)
		return nil, false
	}

	doc := &domain.DocumentRecord{
		Identifier: rec.Header.Identifier,
		Titles:     titles,
		Subjects:   splitSubjects(dc.Subjects),
		Endpoint:   endpoint,
	}

	for _, desc := range dc.Descriptions {
		text := strings.TrimSpace(desc.Value)
		if len(text) < MinAbstractLength {
			continue
		}
		switch p.language(desc, text) {
		case "et":
			if doc.AbstractET == "" {
				doc.AbstractET = text
			}
		default:
			if doc.AbstractEN == "" {
				doc.AbstractEN = text
			}
		}
	}

	if doc.AbstractEN == "" && doc.AbstractET == "" {
		p.logger.Debug("dropping record without usable abstract",
			"endpoint", endpoint,
			"identifier", rec.Header.Identifier,
		)
		return nil, false
	}

	if len(dc.Dates) > 0 {
		doc.Date = strings.TrimSpace(dc.Dates[0].Value)
	}
	doc.DocType = pickDocType(dc.Types)
	doc.URL = pickURL(dc.Identifiers)

	return doc, true
}

// language resolves the abstract language from the xml:lang attribute when
// present, falling back to the detector.
func (p *Parser) language(field oai.Field, text string) string {
	lang := strings.ToLower(strings.TrimSpace(field.Lang))
	switch {
	case strings.HasPrefix(lang, "et"):
		return "et"
	case strings.HasPrefix(lang, "en"):
		return "en"
	default:
		return p.detector.Detect(text)
	}
}

func fieldValues(fields []oai.Field) []string {
	var out []string
	for _, f := range fields {
		if v := strings.TrimSpace(f.Value); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// splitSubjects flattens subject fields, splitting the comma and semicolon
// separated lists some repositories pack into a single element.
func splitSubjects(fields []oai.Field) []string {
	var out []string
	for _, f := range fields {
		for _, part := range strings.FieldsFunc(f.Value, func(r rune) bool {
			return r == ',' || r == ';'
		}) {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func pickDocType(types []oai.Field) string {
	for _, f := range types {
		value := strings.ToLower(strings.TrimSpace(f.Value))
		for _, kw := range thesisTypeKeywords {
			if strings.Contains(value, kw) {
				return strings.TrimSpace(f.Value)
			}
		}
	}
	if len(types) > 0 {
		return strings.TrimSpace(types[0].Value)
	}
	return ""
}

func pickURL(identifiers []oai.Field) string {
	for _, f := range identifiers {
		value := strings.TrimSpace(f.Value)
		if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
			return value
		}
	}
	return ""
}
