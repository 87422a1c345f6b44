package difftree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSubsection_HandleSurvivesSiblingAppends(t *testing.T) {
	root := NewRoot()

	first := root.AddSubsection(MessageComparison, "a.A", "b.A")
	for i := 0; i < 100; i++ {
		root.AddSubsection(MessageComparison, "x", "y")
	}
	first.AddItem(FieldRemoved, "y", "")

	require.Len(t, root.Subsections(), 101)
	assert.Same(t, first, root.Subsections()[0])
	assert.Equal(t, []Item{{Kind: FieldRemoved, Before: "y", After: ""}}, root.Subsections()[0].Items())
}

func TestIsEmpty(t *testing.T) {
	s := NewSection(FieldComparison, "a", "b")
	assert.True(t, s.IsEmpty())

	s.AddItem(FieldLabelChanged, "", "")
	assert.False(t, s.IsEmpty())

	other := NewSection(FieldComparison, "a", "b")
	other.AddSubsection(EnumComparison, "E", "E")
	assert.False(t, other.IsEmpty())
}

func TestTrim(t *testing.T) {
	root := NewRoot()
	msg := root.AddSubsection(MessageComparison, "p.M", "p.M")
	msg.AddSubsection(FieldComparison, "p.M.a", "p.M.a")
	changed := msg.AddSubsection(FieldComparison, "p.M.b", "p.M.b")
	changed.AddItem(FieldIDChanged, "2", "3")
	nested := msg.AddSubsection(FieldComparison, "p.M.c", "p.M.c")
	nested.AddSubsection(EnumComparison, "p.E", "p.E").AddSubsection(EnumValueComparison, "X", "X")
	root.AddSubsection(EnumComparison, "p.F", "p.F")

	root.Trim()

	require.Len(t, root.Subsections(), 1)
	require.Len(t, msg.Subsections(), 1)
	assert.Same(t, changed, msg.Subsections()[0])
}

func TestTrim_KeepsEmptyRoot(t *testing.T) {
	root := NewRoot()
	root.AddSubsection(MessageComparison, "a", "a")
	root.Trim()

	assert.True(t, root.IsEmpty())

	var buf bytes.Buffer
	require.NoError(t, root.Render(&buf))
	assert.Equal(t, "/\n", buf.String())
}

func TestTrim_Idempotent(t *testing.T) {
	build := func() *Section {
		root := NewRoot()
		msg := root.AddSubsection(MessageComparison, "p.M", "p.M")
		msg.AddItem(FieldAdded, "", "z")
		msg.AddSubsection(FieldComparison, "p.M.x", "p.M.x")
		e := root.AddSubsection(EnumComparison, "p.E", "p.E")
		e.AddSubsection(EnumValueComparison, "A", "A").AddItem(EnumValueIDChanged, "1", "2")
		e.AddSubsection(EnumValueComparison, "B", "B")
		return root
	}

	once := build()
	once.Trim()
	var first bytes.Buffer
	require.NoError(t, once.Render(&first))

	once.Trim()
	var second bytes.Buffer
	require.NoError(t, once.Render(&second))

	assert.Equal(t, first.String(), second.String())
}

func TestRender(t *testing.T) {
	root := NewRoot()
	root.AddItem(MessageAdded, "", "pkg.New")
	msg := root.AddSubsection(MessageComparison, "pkg.Point", "pkg.Point")
	msg.AddItem(FieldRemoved, "y", "")
	msg.AddItem(FieldAdded, "", "z")
	field := msg.AddSubsection(FieldComparison, "pkg.Point.x", "pkg.Point.x")
	field.AddItem(FieldIDChanged, "1", "4")

	var buf bytes.Buffer
	require.NoError(t, root.Render(&buf))

	expected := "/\n" +
		"  * Message added:  -> pkg.New\n" +
		"  Comparing messages: pkg.Point -> pkg.Point\n" +
		"    * Field removed: y -> \n" +
		"    * Field added:  -> z\n" +
		"    Comparing message fields: pkg.Point.x -> pkg.Point.x\n" +
		"      * ID changed: 1 -> 4\n"
	assert.Equal(t, expected, buf.String())
}

func TestPrinter_Decorators(t *testing.T) {
	root := NewRoot()
	root.AddItem(NameMissing, "pkg.X", "pkg.X")

	p := Printer{
		DecorateHeader: func(_ *Section, line string) string { return "[" + line + "]" },
		DecorateItem:   func(it Item, line string) string { return it.Kind.String() + "|" + line },
	}
	var buf bytes.Buffer
	require.NoError(t, p.Print(&buf, root))

	assert.Equal(t, "[/]\n  * name_missing|Name missing: pkg.X -> pkg.X\n", buf.String())
}

func TestCountItems(t *testing.T) {
	root := NewRoot()
	root.AddItem(MessageRemoved, "p.A", "")
	m := root.AddSubsection(MessageComparison, "p.B", "p.B")
	m.AddItem(FieldAdded, "", "a")
	m.AddItem(FieldAdded, "", "b")

	counts := root.CountItems()
	assert.Equal(t, 1, counts[MessageRemoved])
	assert.Equal(t, 2, counts[FieldAdded])
	assert.Zero(t, counts[FieldRemoved])
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "Value ID changed", EnumValueIDChanged.Text())
	assert.Equal(t, "field_default_value_changed", FieldDefaultValueChanged.String())
	assert.Equal(t, "?", ItemKind(99).Text())
	assert.Equal(t, "enum_value_comparison", EnumValueComparison.String())
	assert.Len(t, ItemKinds, len(itemKindNames))
}
