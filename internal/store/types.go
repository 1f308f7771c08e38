package store

import (
	"strings"
)

// FieldType is the closed set of field type tags a record type's metadata
// may carry. Layout tags describe form structure only and never map to a
// stored column.
type FieldType string

const (
	TypeData             FieldType = "Data"
	TypeSmallText        FieldType = "Small Text"
	TypeLongText         FieldType = "Long Text"
	TypeText             FieldType = "Text"
	TypeInt              FieldType = "Int"
	TypeFloat            FieldType = "Float"
	TypeCurrency         FieldType = "Currency"
	TypePercent          FieldType = "Percent"
	TypeCheck            FieldType = "Check"
	TypeDate             FieldType = "Date"
	TypeDatetime         FieldType = "Datetime"
	TypeTime             FieldType = "Time"
	TypeSelect           FieldType = "Select"
	TypeLink             FieldType = "Link"
	TypeTable            FieldType = "Table"
	TypeTableMultiSelect FieldType = "Table MultiSelect"
	TypeSectionBreak     FieldType = "Section Break"
	TypeColumnBreak      FieldType = "Column Break"
	TypeTabBreak         FieldType = "Tab Break"
	TypeHTML             FieldType = "HTML"
	TypeButton           FieldType = "Button"
	TypeImage            FieldType = "Image"
)

// Value formats used for date-ish field values throughout the store.
const (
	DateFormat     = "2006-01-02"
	DatetimeFormat = "2006-01-02 15:04:05"
)

// IsLayout reports whether the type describes form layout rather than data.
func (t FieldType) IsLayout() bool {
	switch t {
	case TypeSectionBreak, TypeColumnBreak, TypeTabBreak, TypeHTML, TypeButton, TypeImage:
		return true
	}
	return false
}

// IsChildRef reports whether the type references rows in a child table.
func (t FieldType) IsChildRef() bool {
	return t == TypeTable || t == TypeTableMultiSelect
}

// HasColumn reports whether a field of this type is backed by a physical
// column on the record type's table.
func (t FieldType) HasColumn() bool {
	return !t.IsLayout() && !t.IsChildRef()
}

// FieldDef describes one field of a record type.
type FieldDef struct {
	Fieldname string
	Fieldtype FieldType
	Label     string
	Reqd      bool
	ReadOnly  bool
	// Options carries newline-separated choices for Select fields, or the
	// target record type name for Link and Table fields.
	Options string
}

// SelectOptions parses the Options string of a Select field into its
// individual choices, dropping blank lines.
func (f FieldDef) SelectOptions() []string {
	var opts []string
	for _, o := range strings.Split(f.Options, "\n") {
		o = strings.TrimSpace(o)
		if o != "" {
			opts = append(opts, o)
		}
	}
	return opts
}

// LinkTarget returns the record type a Link or Table field points at.
func (f FieldDef) LinkTarget() string {
	return strings.TrimSpace(f.Options)
}

// Meta is the immutable metadata of one record type.
type Meta struct {
	Name   string
	Module string
	// Naming selects how Insert assigns identities: "field:<fieldname>"
	// copies a field value, "hash:<PREFIX>" generates PREFIX-xxxxxxxx.
	// An explicitly preset name always wins.
	Naming       string
	IsChildTable bool
	IsSingle     bool
	Fields       []FieldDef
}

// NamingField returns the fieldname a "field:" naming rule copies, or "".
func (m *Meta) NamingField() string {
	if strings.HasPrefix(m.Naming, "field:") {
		return strings.TrimPrefix(m.Naming, "field:")
	}
	return ""
}

// Field returns the named field's definition.
func (m *Meta) Field(name string) (FieldDef, bool) {
	for _, f := range m.Fields {
		if f.Fieldname == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// HasField reports whether the record type defines the named field.
func (m *Meta) HasField(name string) bool {
	_, ok := m.Field(name)
	return ok
}

// DataFields returns the fields backed by physical columns, in order.
func (m *Meta) DataFields() []FieldDef {
	var out []FieldDef
	for _, f := range m.Fields {
		if f.Fieldtype.HasColumn() {
			out = append(out, f)
		}
	}
	return out
}

// ChildFields returns the child-table fields, in order.
func (m *Meta) ChildFields() []FieldDef {
	var out []FieldDef
	for _, f := range m.Fields {
		if f.Fieldtype == TypeTable {
			out = append(out, f)
		}
	}
	return out
}

// TableName maps a record type name to its physical table name, e.g.
// "Sales Order Item" -> "tab_sales_order_item".
func TableName(recordType string) string {
	s := strings.ToLower(recordType)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return "tab_" + s
}

// Record is one record instance, in memory before Insert and persisted
// afterwards. Child rows live under Children keyed by the parent's
// child-table fieldname.
type Record struct {
	Type      string
	Name      string
	Docstatus int
	Fields    map[string]any
	Children  map[string][]*Record
}

// NewRecord builds an in-memory draft of the given type. The fields map may
// be nil.
func NewRecord(recordType string, fields map[string]any) *Record {
	if fields == nil {
		fields = make(map[string]any)
	}
	r := &Record{Type: recordType, Fields: make(map[string]any)}
	for k, v := range fields {
		if k == "name" {
			if s, ok := v.(string); ok {
				r.Name = s
			}
			continue
		}
		r.Fields[k] = v
	}
	return r
}

// Get returns the value of a field, or nil when unset.
func (r *Record) Get(field string) any {
	if field == "name" {
		return r.Name
	}
	return r.Fields[field]
}

// GetString returns the field value as a string, or "" when unset or not a
// string.
func (r *Record) GetString(field string) string {
	v := r.Get(field)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// Set assigns a field value on the in-memory record.
func (r *Record) Set(field string, value any) {
	if field == "name" {
		if s, ok := value.(string); ok {
			r.Name = s
		}
		return
	}
	r.Fields[field] = value
}

// IsSet reports whether the field holds a non-empty value. Zero numbers and
// false are considered set; only nil and "" count as empty.
func (r *Record) IsSet(field string) bool {
	v := r.Get(field)
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

// Append adds a child row under the named child-table field and returns it.
func (r *Record) Append(childField string, fields map[string]any) *Record {
	if r.Children == nil {
		r.Children = make(map[string][]*Record)
	}
	row := NewRecord("", fields)
	r.Children[childField] = append(r.Children[childField], row)
	return row
}

// Rows returns the child rows of the named child-table field.
func (r *Record) Rows(childField string) []*Record {
	if r.Children == nil {
		return nil
	}
	return r.Children[childField]
}
