package protoschema

import (
	"strings"

	"go.keploy.io/protodiff/pkg/models"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Schema is the snapshot of one compiled entry file. Messages and enums of
// the entry file and of everything it imports, nested types included, are
// converted once and shared, so a recursive reference resolves to the same
// *models.Message.
type Schema struct {
	Path string

	messages []*models.Message
	enums    []*models.Enum

	messagesByName map[string]*models.Message
	enumsByName    map[string]*models.Enum
}

func (s *Schema) Messages() []*models.Message {
	return s.messages
}

func (s *Schema) Enums() []*models.Enum {
	return s.enums
}

// FindMessage looks a message up by its fully-qualified name. A leading dot
// is accepted.
func (s *Schema) FindMessage(fullName string) *models.Message {
	return s.messagesByName[strings.TrimPrefix(fullName, ".")]
}

func (s *Schema) FindEnum(fullName string) *models.Enum {
	return s.enumsByName[strings.TrimPrefix(fullName, ".")]
}

func newSchema(fd protoreflect.FileDescriptor) *Schema {
	s := &Schema{
		Path:           fd.Path(),
		messagesByName: make(map[string]*models.Message),
		enumsByName:    make(map[string]*models.Enum),
	}

	seen := make(map[string]bool)
	var index func(f protoreflect.FileDescriptor)
	index = func(f protoreflect.FileDescriptor) {
		if seen[f.Path()] {
			return
		}
		seen[f.Path()] = true
		s.indexMessages(f.Messages())
		s.indexEnums(f.Enums())
		imports := f.Imports()
		for i := 0; i < imports.Len(); i++ {
			if imp := imports.Get(i).FileDescriptor; imp != nil {
				index(imp)
			}
		}
	}
	index(fd)

	msgs := fd.Messages()
	for i := 0; i < msgs.Len(); i++ {
		s.messages = append(s.messages, s.message(msgs.Get(i)))
	}
	enums := fd.Enums()
	for i := 0; i < enums.Len(); i++ {
		s.enums = append(s.enums, s.enum(enums.Get(i)))
	}
	return s
}

func (s *Schema) indexMessages(msgs protoreflect.MessageDescriptors) {
	for i := 0; i < msgs.Len(); i++ {
		md := msgs.Get(i)
		s.message(md)
		s.indexMessages(md.Messages())
		s.indexEnums(md.Enums())
	}
}

func (s *Schema) indexEnums(enums protoreflect.EnumDescriptors) {
	for i := 0; i < enums.Len(); i++ {
		s.enum(enums.Get(i))
	}
}

// message converts md, reusing the snapshot when it was already converted.
// The snapshot is registered before its fields are filled in.
func (s *Schema) message(md protoreflect.MessageDescriptor) *models.Message {
	name := string(md.FullName())
	if m, ok := s.messagesByName[name]; ok {
		return m
	}
	m := &models.Message{
		Name:     string(md.Name()),
		FullName: name,
	}
	s.messagesByName[name] = m

	fields := md.Fields()
	for i := 0; i < fields.Len(); i++ {
		m.Fields = append(m.Fields, s.field(fields.Get(i)))
	}
	return m
}

func (s *Schema) enum(ed protoreflect.EnumDescriptor) *models.Enum {
	name := string(ed.FullName())
	if e, ok := s.enumsByName[name]; ok {
		return e
	}
	e := &models.Enum{
		Name:     string(ed.Name()),
		FullName: name,
	}
	values := ed.Values()
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		e.Values = append(e.Values, models.EnumValue{Name: string(v.Name()), Number: int32(v.Number())})
	}
	s.enumsByName[name] = e
	return e
}

func (s *Schema) field(fd protoreflect.FieldDescriptor) *models.Field {
	f := &models.Field{
		Name:     string(fd.Name()),
		FullName: string(fd.FullName()),
		Number:   int32(fd.Number()),
		Label:    label(fd.Cardinality()),
		Kind:     models.Kind(fd.Kind().String()),
	}
	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		f.Message = s.message(fd.Message())
	case protoreflect.EnumKind:
		f.Enum = s.enum(fd.Enum())
	}
	if fd.HasDefault() {
		f.Default = defaultOf(fd)
	}
	return f
}

func label(c protoreflect.Cardinality) models.Label {
	switch c {
	case protoreflect.Required:
		return models.LabelRequired
	case protoreflect.Repeated:
		return models.LabelRepeated
	default:
		return models.LabelOptional
	}
}

func defaultOf(fd protoreflect.FieldDescriptor) *models.Default {
	if fd.Kind() == protoreflect.EnumKind {
		ev := fd.DefaultEnumValue()
		if ev == nil {
			return nil
		}
		return &models.Default{Value: models.EnumValue{Name: string(ev.Name()), Number: int32(ev.Number())}}
	}
	switch v := fd.Default().Interface().(type) {
	case []byte:
		return &models.Default{Value: string(v)}
	case int32, int64, uint32, uint64, float32, float64, bool, string:
		return &models.Default{Value: v}
	default:
		return nil
	}
}
