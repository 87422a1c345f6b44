package models

import (
	"fmt"
	"strconv"
)

type Label string
type Kind string
type Category string
type Representation string

const (
	LabelOptional Label = "optional"
	LabelRequired Label = "required"
	LabelRepeated Label = "repeated"
)

// Declared field kinds, named the way they are written in .proto sources.
const (
	KindDouble   Kind = "double"
	KindFloat    Kind = "float"
	KindInt32    Kind = "int32"
	KindInt64    Kind = "int64"
	KindUint32   Kind = "uint32"
	KindUint64   Kind = "uint64"
	KindSint32   Kind = "sint32"
	KindSint64   Kind = "sint64"
	KindFixed32  Kind = "fixed32"
	KindFixed64  Kind = "fixed64"
	KindSfixed32 Kind = "sfixed32"
	KindSfixed64 Kind = "sfixed64"
	KindBool     Kind = "bool"
	KindString   Kind = "string"
	KindBytes    Kind = "bytes"
	KindMessage  Kind = "message"
	KindGroup    Kind = "group"
	KindEnum     Kind = "enum"
)

const (
	CategoryScalar  Category = "scalar"
	CategoryMessage Category = "message"
	CategoryEnum    Category = "enum"
)

// Value representations shared by several declared kinds (sint32 and
// sfixed32 are both stored as int32, bytes is stored as string, ...).
const (
	ReprInt32   Representation = "int32"
	ReprInt64   Representation = "int64"
	ReprUint32  Representation = "uint32"
	ReprUint64  Representation = "uint64"
	ReprFloat   Representation = "float"
	ReprDouble  Representation = "double"
	ReprBool    Representation = "bool"
	ReprString  Representation = "string"
	ReprEnum    Representation = "enum"
	ReprMessage Representation = "message"
)

// Category reports whether the kind refers to a message, an enum or a scalar.
func (k Kind) Category() Category {
	switch k {
	case KindMessage, KindGroup:
		return CategoryMessage
	case KindEnum:
		return CategoryEnum
	default:
		return CategoryScalar
	}
}

// Representation maps a declared kind to the representation its values are stored in.
func (k Kind) Representation() Representation {
	switch k {
	case KindInt32, KindSint32, KindSfixed32:
		return ReprInt32
	case KindInt64, KindSint64, KindSfixed64:
		return ReprInt64
	case KindUint32, KindFixed32:
		return ReprUint32
	case KindUint64, KindFixed64:
		return ReprUint64
	case KindFloat:
		return ReprFloat
	case KindDouble:
		return ReprDouble
	case KindBool:
		return ReprBool
	case KindString, KindBytes:
		return ReprString
	case KindEnum:
		return ReprEnum
	default:
		return ReprMessage
	}
}

type TypeRef struct {
	FullName string   `json:"fullName" yaml:"fullName"`
	Category Category `json:"category" yaml:"category"`
}

type Message struct {
	Name     string
	FullName string
	Fields   []*Field
}

// Field looks a field up by its declared name.
func (m *Message) Field(name string) *Field {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (m *Message) Ref() TypeRef {
	return TypeRef{FullName: m.FullName, Category: CategoryMessage}
}

type Enum struct {
	Name     string
	FullName string
	Values   []EnumValue
}

type EnumValue struct {
	Name   string `json:"name" yaml:"name"`
	Number int32  `json:"number" yaml:"number"`
}

// Value looks a value up by name.
func (e *Enum) Value(name string) (EnumValue, bool) {
	for _, v := range e.Values {
		if v.Name == name {
			return v, true
		}
	}
	return EnumValue{}, false
}

func (e *Enum) Ref() TypeRef {
	return TypeRef{FullName: e.FullName, Category: CategoryEnum}
}

// Field is a member of a message. Message is set only for message and group
// kinds, Enum only for the enum kind.
type Field struct {
	Name     string
	FullName string
	Number   int32
	Label    Label
	Kind     Kind
	Message  *Message
	Enum     *Enum
	Default  *Default
}

// Type returns the reference to the field's type. Scalars, and references
// whose target was not resolved, are referenced by their kind name.
func (f *Field) Type() TypeRef {
	switch f.Kind.Category() {
	case CategoryMessage:
		if f.Message != nil {
			return f.Message.Ref()
		}
	case CategoryEnum:
		if f.Enum != nil {
			return f.Enum.Ref()
		}
	}
	return TypeRef{FullName: string(f.Kind), Category: CategoryScalar}
}

// Default holds an explicitly declared default value. Value is one of int32,
// int64, uint32, uint64, float32, float64, bool, string or EnumValue.
type Default struct {
	Value interface{}
}

func (d *Default) String() string {
	if d == nil {
		return ""
	}
	switch v := d.Value.(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case EnumValue:
		return v.Name
	default:
		return fmt.Sprint(v)
	}
}
