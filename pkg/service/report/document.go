package report

import "go.keploy.io/protodiff/pkg/difftree"

// document is the structured form of a section used by the yaml and json formats.
type document struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Before   string     `json:"before" yaml:"before"`
	After    string     `json:"after" yaml:"after"`
	Items    []item     `json:"items,omitempty" yaml:"items,omitempty"`
	Sections []document `json:"sections,omitempty" yaml:"sections,omitempty"`
}

type item struct {
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`
}

func toDocument(s *difftree.Section) document {
	doc := document{
		Kind:   s.Kind().String(),
		Before: s.Before(),
		After:  s.After(),
	}
	for _, it := range s.Items() {
		doc.Items = append(doc.Items, item{
			Kind:   it.Kind.String(),
			Text:   it.Kind.Text(),
			Before: it.Before,
			After:  it.After,
		})
	}
	for _, sub := range s.Subsections() {
		doc.Sections = append(doc.Sections, toDocument(sub))
	}
	return doc
}
