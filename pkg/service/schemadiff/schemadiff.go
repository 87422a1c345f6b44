package schemadiff

import (
	"math"
	"strconv"

	"go.keploy.io/protodiff/pkg/difftree"
	"go.keploy.io/protodiff/pkg/models"
	"go.uber.org/zap"
)

type Comparator struct {
	logger *zap.Logger
	opts   Options
}

func New(logger *zap.Logger, opts Options) *Comparator {
	return &Comparator{
		logger: logger,
		opts:   opts,
	}
}

// CompareSchemas matches the top-level messages, then the top-level enums, of
// both entry files by declared name and returns a fresh root section.
func (c *Comparator) CompareSchemas(a, b Schema) *difftree.Section {
	c.logger.Debug("comparing schemas",
		zap.Int("messages_before", len(a.Messages())), zap.Int("messages_after", len(b.Messages())),
		zap.Int("enums_before", len(a.Enums())), zap.Int("enums_after", len(b.Enums())))

	root := difftree.NewRoot()
	run := c.newRun()

	for _, msgA := range a.Messages() {
		msgB := messageByName(b.Messages(), msgA.Name)
		if msgB == nil {
			root.AddItem(difftree.MessageRemoved, msgA.FullName, "")
			continue
		}
		root.Attach(run.compareMessage(msgA, msgB))
	}
	for _, msgB := range b.Messages() {
		if messageByName(a.Messages(), msgB.Name) == nil {
			root.AddItem(difftree.MessageAdded, "", msgB.FullName)
		}
	}

	for _, enumA := range a.Enums() {
		enumB := enumByName(b.Enums(), enumA.Name)
		if enumB == nil {
			root.AddItem(difftree.EnumRemoved, enumA.FullName, "")
			continue
		}
		root.Attach(run.compareEnum(enumA, enumB))
	}
	for _, enumB := range b.Enums() {
		if enumByName(a.Enums(), enumB.Name) == nil {
			root.AddItem(difftree.EnumAdded, "", enumB.FullName)
		}
	}

	return root
}

// CompareNamedType looks name up as a message in both schemas, then as an
// enum. A name that does not resolve on both sides is reported, not returned
// as an error.
func (c *Comparator) CompareNamedType(a, b Schema, name string) *difftree.Section {
	c.logger.Debug("comparing named type", zap.String("name", name))

	root := difftree.NewRoot()
	run := c.newRun()

	if msgA, msgB := a.FindMessage(name), b.FindMessage(name); msgA != nil && msgB != nil {
		root.Attach(run.compareMessage(msgA, msgB))
		return root
	}
	if enumA, enumB := a.FindEnum(name), b.FindEnum(name); enumA != nil && enumB != nil {
		root.Attach(run.compareEnum(enumA, enumB))
		return root
	}

	c.logger.Debug("type not found in both schemas", zap.String("name", name))
	root.AddItem(difftree.NameMissing, name, name)
	return root
}

func (c *Comparator) CompareMessage(a, b *models.Message) *difftree.Section {
	return c.newRun().compareMessage(a, b)
}

func (c *Comparator) CompareField(a, b *models.Field) *difftree.Section {
	return c.newRun().compareField(a, b)
}

func (c *Comparator) CompareEnum(a, b *models.Enum) *difftree.Section {
	return c.newRun().compareEnum(a, b)
}

func (c *Comparator) newRun() *run {
	return &run{
		logger:         c.logger,
		legacyDefaults: c.opts.LegacyDefaults,
		onPath:         make(map[messagePair]bool),
	}
}

type messagePair struct {
	before string
	after  string
}

// run carries the state of one comparison: the message pairs currently being
// compared on the call path. A pair met again below itself is not descended
// into, which keeps recursive schemas finite.
type run struct {
	logger         *zap.Logger
	legacyDefaults bool
	onPath         map[messagePair]bool
}

func (r *run) compareMessage(a, b *models.Message) *difftree.Section {
	section := difftree.NewSection(difftree.MessageComparison, a.FullName, b.FullName)

	key := messagePair{before: a.FullName, after: b.FullName}
	r.onPath[key] = true
	defer delete(r.onPath, key)

	for _, fieldA := range a.Fields {
		fieldB := b.Field(fieldA.Name)
		if fieldB == nil {
			section.AddItem(difftree.FieldRemoved, fieldA.Name, "")
			continue
		}
		section.Attach(r.compareField(fieldA, fieldB))
	}

	for _, fieldB := range b.Fields {
		if a.Field(fieldB.Name) == nil {
			section.AddItem(difftree.FieldAdded, "", fieldB.Name)
		}
	}

	return section
}

func (r *run) compareField(a, b *models.Field) *difftree.Section {
	section := difftree.NewSection(difftree.FieldComparison, a.FullName, b.FullName)

	if a.Name != b.Name {
		section.AddItem(difftree.FieldNameChanged, a.Name, b.Name)
	}

	if a.Number != b.Number {
		section.AddItem(difftree.FieldIDChanged, strconv.Itoa(int(a.Number)), strconv.Itoa(int(b.Number)))
	}

	if a.Label != b.Label {
		section.AddItem(difftree.FieldLabelChanged, "", "")
	}

	switch {
	case a.Kind != b.Kind:
		section.AddItem(difftree.FieldTypeChanged, string(a.Kind), string(b.Kind))
	case a.Enum != nil && b.Enum != nil:
		if ta, tb := a.Type(), b.Type(); ta != tb {
			section.AddItem(difftree.FieldTypeChanged, ta.FullName, tb.FullName)
		}
		section.Attach(r.compareEnum(a.Enum, b.Enum))
	case a.Message != nil && b.Message != nil:
		if ta, tb := a.Type(), b.Type(); ta != tb {
			section.AddItem(difftree.FieldTypeChanged, ta.FullName, tb.FullName)
		}
		if r.onPath[messagePair{before: a.Message.FullName, after: b.Message.FullName}] {
			r.logger.Debug("not descending into recursive message reference",
				zap.String("field", a.FullName), zap.String("type", a.Message.FullName))
			break
		}
		section.Attach(r.compareMessage(a.Message, b.Message))
	}

	if a.Kind.Representation() == b.Kind.Representation() && !r.sameDefault(a, b) {
		section.AddItem(difftree.FieldDefaultValueChanged, a.Default.String(), b.Default.String())
	}

	return section
}

// sameDefault compares the declared defaults of two fields sharing a value
// representation. Declaring a default on one side only counts as a change.
func (r *run) sameDefault(a, b *models.Field) bool {
	if (a.Default == nil) != (b.Default == nil) {
		return false
	}
	if a.Default == nil {
		return true
	}

	va, vb := a.Default.Value, b.Default.Value
	if r.legacyDefaults {
		switch va.(type) {
		case uint32, float64, bool, string, models.EnumValue:
			vb = va
		}
	}

	switch x := va.(type) {
	case models.EnumValue:
		y, ok := vb.(models.EnumValue)
		return ok && x.Number == y.Number
	case float32:
		y, ok := vb.(float32)
		return ok && (x == y || math.IsNaN(float64(x)) && math.IsNaN(float64(y)))
	case float64:
		y, ok := vb.(float64)
		return ok && (x == y || math.IsNaN(x) && math.IsNaN(y))
	case int32, int64, uint32, uint64, bool, string:
		return va == vb
	default:
		return false
	}
}

func (r *run) compareEnum(a, b *models.Enum) *difftree.Section {
	section := difftree.NewSection(difftree.EnumComparison, a.FullName, b.FullName)

	for _, valueA := range a.Values {
		valueB, ok := b.Value(valueA.Name)
		if !ok {
			section.AddItem(difftree.EnumValueRemoved, valueA.Name, "")
			continue
		}
		if valueA.Number != valueB.Number {
			sub := section.AddSubsection(difftree.EnumValueComparison, valueA.Name, valueB.Name)
			sub.AddItem(difftree.EnumValueIDChanged,
				strconv.Itoa(int(valueA.Number)), strconv.Itoa(int(valueB.Number)))
		}
	}

	for _, valueB := range b.Values {
		if _, ok := a.Value(valueB.Name); !ok {
			section.AddItem(difftree.EnumValueAdded, "", valueB.Name)
		}
	}

	return section
}

func messageByName(msgs []*models.Message, name string) *models.Message {
	for _, m := range msgs {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func enumByName(enums []*models.Enum, name string) *models.Enum {
	for _, e := range enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}
