// Package difftree holds the hierarchical report built while comparing two
// schemas: sections scope a comparison between two entities and carry the
// findings (items) and nested comparisons (subsections) that belong to it.
package difftree

import (
	"fmt"
	"io"
	"strings"
)

// Item is a single finding. The meaning of Before and After depends on Kind.
type Item struct {
	Kind   ItemKind
	Before string
	After  string
}

// Message renders the item as "<text>: <before> -> <after>".
func (i Item) Message() string {
	return fmt.Sprintf("%s: %s -> %s", i.Kind.Text(), i.Before, i.After)
}

// Section is a node of the report. Subsections are held by pointer so a handle
// returned from AddSubsection stays valid while siblings keep being appended.
type Section struct {
	kind        SectionKind
	before      string
	after       string
	items       []Item
	subsections []*Section
}

func NewRoot() *Section {
	return NewSection(Root, "", "")
}

func NewSection(kind SectionKind, before, after string) *Section {
	return &Section{
		kind:   kind,
		before: before,
		after:  after,
	}
}

func (s *Section) Kind() SectionKind { return s.kind }
func (s *Section) Before() string    { return s.before }
func (s *Section) After() string     { return s.after }

// Items returns the section's findings in append order.
func (s *Section) Items() []Item {
	return s.items
}

// Subsections returns the nested sections in append order.
func (s *Section) Subsections() []*Section {
	return s.subsections
}

// AddSubsection appends a new child section and returns it for further population.
func (s *Section) AddSubsection(kind SectionKind, before, after string) *Section {
	sub := NewSection(kind, before, after)
	s.subsections = append(s.subsections, sub)
	return sub
}

// Attach appends a section that was built on its own. The section must not be
// attached anywhere else.
func (s *Section) Attach(sub *Section) {
	if sub == nil {
		return
	}
	s.subsections = append(s.subsections, sub)
}

func (s *Section) AddItem(kind ItemKind, before, after string) {
	s.items = append(s.items, Item{Kind: kind, Before: before, After: after})
}

func (s *Section) IsEmpty() bool {
	return len(s.items) == 0 && len(s.subsections) == 0
}

// Trim removes, bottom up, every subsection left without findings. The
// receiver itself is never removed, so an empty root survives.
func (s *Section) Trim() {
	kept := s.subsections[:0]
	for _, sub := range s.subsections {
		sub.Trim()
		if !sub.IsEmpty() {
			kept = append(kept, sub)
		}
	}
	for i := len(kept); i < len(s.subsections); i++ {
		s.subsections[i] = nil
	}
	s.subsections = kept
}

// Walk visits the section and its descendants depth first. fn receives the
// depth of each section, starting at 0.
func (s *Section) Walk(fn func(sec *Section, depth int)) {
	s.walk(fn, 0)
}

func (s *Section) walk(fn func(*Section, int), depth int) {
	fn(s, depth)
	for _, sub := range s.subsections {
		sub.walk(fn, depth+1)
	}
}

// CountItems returns the number of findings per kind in the whole subtree.
func (s *Section) CountItems() map[ItemKind]int {
	counts := make(map[ItemKind]int)
	s.Walk(func(sec *Section, _ int) {
		for _, it := range sec.items {
			counts[it.Kind]++
		}
	})
	return counts
}

// Header is the one-line description printed for the section.
func (s *Section) Header() string {
	switch s.kind {
	case Root:
		return "/"
	case MessageComparison:
		return fmt.Sprintf("Comparing messages: %s -> %s", s.before, s.after)
	case FieldComparison:
		return fmt.Sprintf("Comparing message fields: %s -> %s", s.before, s.after)
	case EnumComparison:
		return fmt.Sprintf("Comparing enums: %s -> %s", s.before, s.after)
	case EnumValueComparison:
		return fmt.Sprintf("Comparing enum values: %s -> %s", s.before, s.after)
	default:
		return "?"
	}
}

// Render prints the tree without decoration.
func (s *Section) Render(w io.Writer) error {
	return Printer{}.Print(w, s)
}

// Printer renders a section tree, two spaces of indentation per level. The
// optional decorators wrap each header or item line, e.g. to add colors.
type Printer struct {
	DecorateHeader func(sec *Section, line string) string
	DecorateItem   func(item Item, line string) string
}

func (p Printer) Print(w io.Writer, s *Section) error {
	return p.print(w, s, 0)
}

func (p Printer) print(w io.Writer, s *Section, level int) error {
	header := s.Header()
	if p.DecorateHeader != nil {
		header = p.DecorateHeader(s, header)
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", indent(level), header); err != nil {
		return err
	}

	level++
	for _, it := range s.items {
		line := it.Message()
		if p.DecorateItem != nil {
			line = p.DecorateItem(it, line)
		}
		if _, err := fmt.Fprintf(w, "%s* %s\n", indent(level), line); err != nil {
			return err
		}
	}

	for _, sub := range s.subsections {
		if err := p.print(w, sub, level); err != nil {
			return err
		}
	}
	return nil
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}
