package store

import (
	"fmt"
	"sort"
)

// MemStore is an in-memory Store used by tests and dry runs. It mirrors the
// SQL store's semantics: per-type tables, child rows flattened into their
// own type's table, hash or field naming, and a rollback journal covering
// writes since the last Commit.
type MemStore struct {
	metas   map[string]*Meta
	tables  map[string]map[string]*Record
	missing map[string]bool
	journal []journalEntry

	// Logged collects LogError calls for assertions.
	Logged []LoggedError

	// FailInsert, when set, is consulted before every insert; a non-nil
	// error simulates a store-side validation failure.
	FailInsert func(rec *Record) error

	// PermissionPolicy mirrors SQLStore's; consulted unless bypassed.
	PermissionPolicy func(action, recordType string) bool
}

// LoggedError is one recorded LogError call.
type LoggedError struct {
	Title   string
	Message string
}

type journalEntry struct {
	action     string // "insert" | "submit"
	recordType string
	name       string
}

// NewMemStore builds an empty in-memory store with the given record types
// registered and all their tables materialized.
func NewMemStore(metas []*Meta) *MemStore {
	s := &MemStore{
		metas:   make(map[string]*Meta),
		tables:  make(map[string]map[string]*Record),
		missing: make(map[string]bool),
	}
	for _, m := range metas {
		s.metas[m.Name] = m
		if !m.IsSingle {
			s.tables[m.Name] = make(map[string]*Record)
		}
	}
	return s
}

// DropTable simulates a record type whose physical table was never created.
func (s *MemStore) DropTable(recordType string) {
	s.missing[recordType] = true
	delete(s.tables, recordType)
}

func (s *MemStore) table(recordType string) (map[string]*Record, error) {
	if s.missing[recordType] {
		return nil, fmt.Errorf("%w: %s", ErrTableMissing, TableName(recordType))
	}
	t, ok := s.tables[recordType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableMissing, TableName(recordType))
	}
	return t, nil
}

func (s *MemStore) GetMeta(recordType string) (*Meta, error) {
	m, ok := s.metas[recordType]
	if !ok {
		return nil, fmt.Errorf("unknown record type: %s", recordType)
	}
	return m, nil
}

func (s *MemStore) RecordTypes(modules []string) ([]*Meta, error) {
	var out []*Meta
	for _, m := range s.metas {
		if len(modules) > 0 && !contains(modules, m.Module) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Module != out[j].Module {
			return out[i].Module < out[j].Module
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *MemStore) List(recordType string, opt ListOptions) ([]*Record, error) {
	t, err := s.table(recordType)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)

	var recs []*Record
	for _, name := range names {
		stored := t[name]
		if !matches(stored, opt.Filters) {
			continue
		}
		rec := &Record{Type: recordType, Name: stored.Name, Docstatus: stored.Docstatus, Fields: make(map[string]any)}
		fields := opt.Fields
		if len(fields) == 0 {
			fields = []string{"name"}
		}
		for _, f := range fields {
			if f != "name" {
				rec.Fields[f] = stored.Fields[f]
			}
		}
		recs = append(recs, rec)
		if opt.Limit > 0 && len(recs) >= opt.Limit {
			break
		}
	}
	return recs, nil
}

func matches(rec *Record, filters Filters) bool {
	for k, want := range filters {
		got := rec.Get(k)
		if fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
			return false
		}
	}
	return true
}

func (s *MemStore) Count(recordType string, filters Filters) (int, error) {
	t, err := s.table(recordType)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, rec := range t {
		if matches(rec, filters) {
			n++
		}
	}
	return n, nil
}

func (s *MemStore) TableExists(recordType string) (bool, error) {
	if s.missing[recordType] {
		return false, nil
	}
	_, ok := s.tables[recordType]
	return ok, nil
}

func (s *MemStore) Exists(recordType, name string) (bool, error) {
	t, err := s.table(recordType)
	if err != nil {
		return false, err
	}
	_, ok := t[name]
	return ok, nil
}

func (s *MemStore) GetValue(recordType, name, field string) (any, error) {
	t, err := s.table(recordType)
	if err != nil {
		return nil, err
	}
	rec, ok := t[name]
	if !ok {
		return nil, nil
	}
	return rec.Get(field), nil
}

func (s *MemStore) NewDraft(recordType string, fields map[string]any) *Record {
	return NewRecord(recordType, fields)
}

func (s *MemStore) Insert(rec *Record, ignorePermissions bool) error {
	meta, err := s.GetMeta(rec.Type)
	if err != nil {
		return err
	}
	if meta.IsSingle {
		return fmt.Errorf("cannot insert into single record type %s", rec.Type)
	}
	if !ignorePermissions && s.PermissionPolicy != nil && !s.PermissionPolicy("create", rec.Type) {
		return fmt.Errorf("not permitted to create %s", rec.Type)
	}
	if s.FailInsert != nil {
		if err := s.FailInsert(rec); err != nil {
			return err
		}
	}
	t, err := s.table(rec.Type)
	if err != nil {
		return err
	}

	for _, f := range meta.Fields {
		if !f.Reqd || f.Fieldname == meta.NamingField() {
			continue
		}
		if f.Fieldtype == TypeTable {
			if len(rec.Rows(f.Fieldname)) == 0 {
				return fmt.Errorf("%s: required child table %s is empty", rec.Type, f.Fieldname)
			}
			continue
		}
		if f.Fieldtype.HasColumn() && !rec.IsSet(f.Fieldname) {
			return fmt.Errorf("%s: missing value for required field %s", rec.Type, f.Fieldname)
		}
	}

	if rec.Name == "" {
		if f := meta.NamingField(); f != "" {
			name := rec.GetString(f)
			if name == "" {
				return fmt.Errorf("%s: naming field %s is empty", rec.Type, f)
			}
			if _, taken := t[name]; taken {
				name = name + "-" + shortID()
			}
			rec.Name = name
		} else {
			rec.Name = hashName(meta)
		}
	}

	t[rec.Name] = storedCopy(rec)
	s.journal = append(s.journal, journalEntry{"insert", rec.Type, rec.Name})

	for _, cf := range meta.ChildFields() {
		childType := cf.LinkTarget()
		childMeta, err := s.GetMeta(childType)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", rec.Type, cf.Fieldname, err)
		}
		ct, err := s.table(childType)
		if err != nil {
			return err
		}
		for i, row := range rec.Rows(cf.Fieldname) {
			row.Type = childType
			if row.Name == "" {
				row.Name = hashName(childMeta)
			}
			stored := storedCopy(row)
			stored.Fields["parent"] = rec.Name
			stored.Fields["parent_field"] = cf.Fieldname
			stored.Fields["idx"] = i + 1
			ct[row.Name] = stored
			s.journal = append(s.journal, journalEntry{"insert", childType, row.Name})
		}
	}
	return nil
}

func storedCopy(rec *Record) *Record {
	cp := &Record{Type: rec.Type, Name: rec.Name, Docstatus: rec.Docstatus, Fields: make(map[string]any, len(rec.Fields))}
	for k, v := range rec.Fields {
		cp.Fields[k] = v
	}
	return cp
}

func (s *MemStore) Submit(rec *Record) error {
	if rec.Name == "" {
		return fmt.Errorf("cannot submit unsaved %s record", rec.Type)
	}
	meta, err := s.GetMeta(rec.Type)
	if err != nil {
		return err
	}
	t, err := s.table(rec.Type)
	if err != nil {
		return err
	}
	stored, ok := t[rec.Name]
	if !ok {
		return fmt.Errorf("cannot submit missing %s %s", rec.Type, rec.Name)
	}
	stored.Docstatus = 1
	rec.Docstatus = 1
	s.journal = append(s.journal, journalEntry{"submit", rec.Type, rec.Name})

	for _, cf := range meta.ChildFields() {
		childType := cf.LinkTarget()
		ct, err := s.table(childType)
		if err != nil {
			return err
		}
		for _, row := range rec.Rows(cf.Fieldname) {
			if st, ok := ct[row.Name]; ok {
				st.Docstatus = 1
				s.journal = append(s.journal, journalEntry{"submit", childType, row.Name})
			}
			row.Docstatus = 1
		}
	}
	return nil
}

func (s *MemStore) Commit() error {
	s.journal = nil
	return nil
}

// Rollback undoes every write since the last Commit.
func (s *MemStore) Rollback() {
	for i := len(s.journal) - 1; i >= 0; i-- {
		e := s.journal[i]
		t, ok := s.tables[e.recordType]
		if !ok {
			continue
		}
		switch e.action {
		case "insert":
			delete(t, e.name)
		case "submit":
			if rec, ok := t[e.name]; ok {
				rec.Docstatus = 0
			}
		}
	}
	s.journal = nil
}

func (s *MemStore) LogError(title, message string) {
	s.Logged = append(s.Logged, LoggedError{Title: title, Message: message})
}

func (s *MemStore) Close() error { return nil }

// SubmittedNames returns the identities of submitted records of a type, for
// test assertions.
func (s *MemStore) SubmittedNames(recordType string) []string {
	t, ok := s.tables[recordType]
	if !ok {
		return nil
	}
	var names []string
	for name, rec := range t {
		if rec.Docstatus == 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ChildRows returns the stored child rows of one parent record ordered by idx.
func (s *MemStore) ChildRows(childType, parent, parentField string) []*Record {
	t, ok := s.tables[childType]
	if !ok {
		return nil
	}
	var rows []*Record
	for _, rec := range t {
		if rec.GetString("parent") == parent && rec.GetString("parent_field") == parentField {
			rows = append(rows, rec)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		a, _ := rows[i].Fields["idx"].(int)
		b, _ := rows[j].Fields["idx"].(int)
		return a < b
	})
	return rows
}

var _ Store = (*MemStore)(nil)
var _ Store = (*SQLStore)(nil)
