package domain

// DocumentRecord is one harvested thesis. Records live only for the duration
// of a pipeline run; the pipeline never persists full metadata or text.
type DocumentRecord struct {
	Identifier string
	Titles     []string
	AbstractEN string
	AbstractET string
	Subjects   []string
	Date       string
	DocType    string
	URL        string
	Endpoint   string
}

// Title returns the primary title, or a placeholder when none was harvested.
func (d DocumentRecord) Title() string {
	if len(d.Titles) > 0 {
		return d.Titles[0]
	}
	return "(untitled)"
}

// Ref builds the light provenance reference kept in candidate reports.
func (d DocumentRecord) Ref() DocumentRef {
	return DocumentRef{
		Title:    d.Title(),
		URL:      d.URL,
		Endpoint: d.Endpoint,
	}
}

// DocumentRef is the provenance sample attached to a candidate term.
type DocumentRef struct {
	Title    string `yaml:"title" json:"title"`
	URL      string `yaml:"url" json:"url"`
	Endpoint string `yaml:"endpoint" json:"endpoint"`
}
