package oai

import "encoding/xml"

// response is the envelope every OAI-PMH reply shares. Decoding enforces the
// root element name and namespace; the verb payloads are optional and the
// caller checks that the one it asked for is present.
type response struct {
	XMLName     xml.Name     `xml:"http://www.openarchives.org/OAI/2.0/ OAI-PMH"`
	Error       *oaiError    `xml:"error"`
	ListSets    *listSets    `xml:"ListSets"`
	ListRecords *listRecords `xml:"ListRecords"`
}

type oaiError struct {
	Code    string `xml:"code,attr"`
	Message string `xml:",chardata"`
}

type listSets struct {
	Sets            []Set  `xml:"set"`
	ResumptionToken string `xml:"resumptionToken"`
}

// Set is one repository collection advertised by ListSets.
type Set struct {
	Spec string `xml:"setSpec"`
	Name string `xml:"setName"`
}

type listRecords struct {
	Records         []Record `xml:"record"`
	ResumptionToken string   `xml:"resumptionToken"`
}

// Record is one raw harvested record before any domain mapping.
type Record struct {
	Header   Header   `xml:"header"`
	Metadata Metadata `xml:"metadata"`
}

type Header struct {
	Status     string   `xml:"status,attr"`
	Identifier string   `xml:"identifier"`
	Datestamp  string   `xml:"datestamp"`
	Sets       []string `xml:"setSpec"`
}

// Deleted reports whether the repository flagged this record as removed.
// Deleted records carry a header but no metadata.
func (h Header) Deleted() bool {
	return h.Status == "deleted"
}

type Metadata struct {
	DC DublinCore `xml:"dc"`
}

// DublinCore holds the oai_dc fields the pipeline cares about. Element names
// are matched without a namespace so that repositories using either the plain
// or the qualified Dublin Core prefix decode identically.
type DublinCore struct {
	Titles       []Field `xml:"title"`
	Creators     []Field `xml:"creator"`
	Subjects     []Field `xml:"subject"`
	Descriptions []Field `xml:"description"`
	Dates        []Field `xml:"date"`
	Types        []Field `xml:"type"`
	Identifiers  []Field `xml:"identifier"`
	Languages    []Field `xml:"language"`
}

// Field is one Dublin Core element with its optional xml:lang attribute.
type Field struct {
	Lang  string `xml:"lang,attr"`
	Value string `xml:",chardata"`
}
