package difftree

type SectionKind int

const (
	Root SectionKind = iota
	MessageComparison
	FieldComparison
	EnumComparison
	EnumValueComparison
)

var sectionKindNames = map[SectionKind]string{
	Root:                "root",
	MessageComparison:   "message_comparison",
	FieldComparison:     "field_comparison",
	EnumComparison:      "enum_comparison",
	EnumValueComparison: "enum_value_comparison",
}

func (k SectionKind) String() string {
	if s, ok := sectionKindNames[k]; ok {
		return s
	}
	return "unknown"
}

type ItemKind int

const (
	EnumValueIDChanged ItemKind = iota
	EnumValueAdded
	EnumValueRemoved
	FieldNameChanged
	FieldIDChanged
	FieldLabelChanged
	FieldTypeChanged
	FieldDefaultValueChanged
	FieldAdded
	FieldRemoved
	MessageAdded
	MessageRemoved
	EnumAdded
	EnumRemoved
	NameMissing
)

// ItemKinds lists every item kind in declaration order.
var ItemKinds = []ItemKind{
	EnumValueIDChanged,
	EnumValueAdded,
	EnumValueRemoved,
	FieldNameChanged,
	FieldIDChanged,
	FieldLabelChanged,
	FieldTypeChanged,
	FieldDefaultValueChanged,
	FieldAdded,
	FieldRemoved,
	MessageAdded,
	MessageRemoved,
	EnumAdded,
	EnumRemoved,
	NameMissing,
}

var itemKindNames = map[ItemKind]string{
	EnumValueIDChanged:       "enum_value_id_changed",
	EnumValueAdded:           "enum_value_added",
	EnumValueRemoved:         "enum_value_removed",
	FieldNameChanged:         "field_name_changed",
	FieldIDChanged:           "field_id_changed",
	FieldLabelChanged:        "field_label_changed",
	FieldTypeChanged:         "field_type_changed",
	FieldDefaultValueChanged: "field_default_value_changed",
	FieldAdded:               "field_added",
	FieldRemoved:             "field_removed",
	MessageAdded:             "message_added",
	MessageRemoved:           "message_removed",
	EnumAdded:                "enum_added",
	EnumRemoved:              "enum_removed",
	NameMissing:              "name_missing",
}

var itemKindText = map[ItemKind]string{
	EnumValueIDChanged:       "Value ID changed",
	EnumValueAdded:           "Value added",
	EnumValueRemoved:         "Value removed",
	FieldNameChanged:         "Name changed",
	FieldIDChanged:           "ID changed",
	FieldLabelChanged:        "Label changed",
	FieldTypeChanged:         "Type changed",
	FieldDefaultValueChanged: "Default value changed",
	FieldAdded:               "Field added",
	FieldRemoved:             "Field removed",
	MessageAdded:             "Message added",
	MessageRemoved:           "Message removed",
	EnumAdded:                "Enum added",
	EnumRemoved:              "Enum removed",
	NameMissing:              "Name missing",
}

func (k ItemKind) String() string {
	if s, ok := itemKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Text is the human readable label used when rendering an item.
func (k ItemKind) Text() string {
	if s, ok := itemKindText[k]; ok {
		return s
	}
	return "?"
}
