package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// SQLStore is the SQL-backed record store. One physical table per record
// type (tab_<name>), metadata in record_types/record_fields, failures in
// error_logs. Writes accumulate in a lazily begun transaction until Commit
// or Rollback; reads see uncommitted writes.
type SQLStore struct {
	db       *sql.DB
	provider string
	qb       squirrel.StatementBuilderType
	tx       *sql.Tx
	metas    map[string]*Meta

	// PermissionPolicy, when set, is consulted by Insert unless the caller
	// bypasses permissions. Demo runs bypass it everywhere.
	PermissionPolicy func(action, recordType string) bool
}

// DriverName maps a config provider to its database/sql driver name. The
// driver itself must be linked in by the caller.
func DriverName(provider string) (string, error) {
	switch provider {
	case "postgresql", "postgres":
		return "pgx", nil
	case "mysql":
		return "mysql", nil
	case "sqlite", "sqlite3":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database provider: %s", provider)
	}
}

// Open connects to the store and creates the system tables if needed.
func Open(provider, url string) (*SQLStore, error) {
	driver, err := DriverName(provider)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if driver == "sqlite3" {
		// An in-memory SQLite database exists per connection; the pool
		// must not fan out.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	if provider == "postgresql" || provider == "postgres" {
		qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}

	s := &SQLStore{
		db:       db,
		provider: provider,
		qb:       qb,
		metas:    make(map[string]*Meta),
	}
	if err := s.createSystemTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close commits any pending transaction and closes the connection.
func (s *SQLStore) Close() error {
	if err := s.Commit(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}

// runner is the common query surface of *sql.DB and *sql.Tx.
type runner interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// h returns the active transaction, or the bare connection when none is
// open. Read queries go through it so they see uncommitted writes.
func (s *SQLStore) h() runner {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *SQLStore) begin() (runner, error) {
	if s.tx == nil {
		tx, err := s.db.Begin()
		if err != nil {
			return nil, fmt.Errorf("failed to begin transaction: %w", err)
		}
		s.tx = tx
	}
	return s.tx, nil
}

// Commit flushes the pending transaction, if any.
func (s *SQLStore) Commit() error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback aborts the pending transaction, if any.
func (s *SQLStore) Rollback() {
	if s.tx == nil {
		return
	}
	tx := s.tx
	s.tx = nil
	_ = tx.Rollback()
}

// RegisterTypes syncs record-type metadata into the metadata tables.
// Already-registered types are left untouched; metadata is immutable for
// the duration of a run.
func (s *SQLStore) RegisterTypes(metas []*Meta) error {
	for _, m := range metas {
		var exists int
		query := s.qb.Select("COUNT(*)").From("record_types").Where(squirrel.Eq{"name": m.Name})
		q, args, err := query.ToSql()
		if err != nil {
			return err
		}
		if err := s.db.QueryRow(q, args...).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check record type %s: %w", m.Name, err)
		}
		s.metas[m.Name] = m
		if exists > 0 {
			continue
		}

		ins := s.qb.Insert("record_types").
			Columns("name", "module", "naming", "is_child_table", "is_single").
			Values(m.Name, m.Module, m.Naming, m.IsChildTable, m.IsSingle)
		q, args, err = ins.ToSql()
		if err != nil {
			return err
		}
		if _, err := s.db.Exec(q, args...); err != nil {
			return fmt.Errorf("failed to register record type %s: %w", m.Name, err)
		}

		for i, f := range m.Fields {
			ins := s.qb.Insert("record_fields").
				Columns("parent", "idx", "fieldname", "fieldtype", "label", "reqd", "read_only", "options").
				Values(m.Name, i, f.Fieldname, string(f.Fieldtype), f.Label, f.Reqd, f.ReadOnly, f.Options)
			q, args, err := ins.ToSql()
			if err != nil {
				return err
			}
			if _, err := s.db.Exec(q, args...); err != nil {
				return fmt.Errorf("failed to register field %s.%s: %w", m.Name, f.Fieldname, err)
			}
		}
	}
	return nil
}

// RecordTypes lists all registered record types ordered by module then name.
func (s *SQLStore) RecordTypes(modules []string) ([]*Meta, error) {
	query := s.qb.Select("name", "module", "naming", "is_child_table", "is_single").
		From("record_types").OrderBy("module ASC", "name ASC")
	if len(modules) > 0 {
		query = query.Where(squirrel.Eq{"module": modules})
	}
	q, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.h().Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list record types: %w", err)
	}
	defer rows.Close()

	var metas []*Meta
	for rows.Next() {
		var m Meta
		if err := rows.Scan(&m.Name, &m.Module, &m.Naming, &m.IsChildTable, &m.IsSingle); err != nil {
			return nil, err
		}
		metas = append(metas, &m)
	}
	return metas, rows.Err()
}

// GetMeta returns the record type's metadata, cached after first load.
func (s *SQLStore) GetMeta(recordType string) (*Meta, error) {
	if m, ok := s.metas[recordType]; ok {
		return m, nil
	}

	query := s.qb.Select("name", "module", "naming", "is_child_table", "is_single").
		From("record_types").Where(squirrel.Eq{"name": recordType})
	q, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	var m Meta
	if err := s.h().QueryRow(q, args...).Scan(&m.Name, &m.Module, &m.Naming, &m.IsChildTable, &m.IsSingle); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("unknown record type: %s", recordType)
		}
		return nil, fmt.Errorf("failed to load metadata for %s: %w", recordType, err)
	}

	fq := s.qb.Select("fieldname", "fieldtype", "label", "reqd", "read_only", "options").
		From("record_fields").Where(squirrel.Eq{"parent": recordType}).OrderBy("idx ASC")
	q, args, err = fq.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.h().Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load fields for %s: %w", recordType, err)
	}
	defer rows.Close()
	for rows.Next() {
		var f FieldDef
		var ft string
		if err := rows.Scan(&f.Fieldname, &ft, &f.Label, &f.Reqd, &f.ReadOnly, &f.Options); err != nil {
			return nil, err
		}
		f.Fieldtype = FieldType(ft)
		m.Fields = append(m.Fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.metas[recordType] = &m
	return &m, nil
}

// List returns records matching the options. Only the requested fields plus
// the identity are populated.
func (s *SQLStore) List(recordType string, opt ListOptions) ([]*Record, error) {
	fields := opt.Fields
	if len(fields) == 0 {
		fields = []string{"name"}
	} else if !contains(fields, "name") {
		fields = append([]string{"name"}, fields...)
	}

	query := s.qb.Select(fields...).From(TableName(recordType))
	if len(opt.Filters) > 0 {
		query = query.Where(squirrel.Eq(opt.Filters))
	}
	if opt.OrderBy != "" {
		query = query.OrderBy(opt.OrderBy)
	} else {
		query = query.OrderBy("name ASC")
	}
	if opt.Limit > 0 {
		query = query.Limit(uint64(opt.Limit))
	}

	q, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.h().Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", recordType, err)
	}
	defer rows.Close()

	var recs []*Record
	for rows.Next() {
		vals := make([]any, len(fields))
		ptrs := make([]any, len(fields))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := &Record{Type: recordType, Fields: make(map[string]any)}
		for i, f := range fields {
			rec.Set(f, normalize(vals[i]))
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Count returns the number of matching records, or an error wrapping
// ErrTableMissing when the type has no physical table.
func (s *SQLStore) Count(recordType string, filters Filters) (int, error) {
	query := s.qb.Select("COUNT(*)").From(TableName(recordType))
	if len(filters) > 0 {
		query = query.Where(squirrel.Eq(filters))
	}
	q, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := s.h().QueryRow(q, args...).Scan(&n); err != nil {
		if ok, probeErr := s.TableExists(recordType); probeErr == nil && !ok {
			return 0, fmt.Errorf("%w: %s", ErrTableMissing, TableName(recordType))
		}
		return 0, fmt.Errorf("failed to count %s: %w", recordType, err)
	}
	return n, nil
}

// TableExists probes the catalog of the underlying database for the record
// type's physical table.
func (s *SQLStore) TableExists(recordType string) (bool, error) {
	table := TableName(recordType)
	var q string
	var args []any
	switch s.provider {
	case "sqlite", "sqlite3":
		q = "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?"
		args = []any{table}
	case "mysql":
		q = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?"
		args = []any{table}
	default:
		q = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1"
		args = []any{table}
	}
	var n int
	if err := s.h().QueryRow(q, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to probe table %s: %w", table, err)
	}
	return n > 0, nil
}

// Exists reports whether a record with the given identity exists.
func (s *SQLStore) Exists(recordType, name string) (bool, error) {
	n, err := s.Count(recordType, Filters{"name": name})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetValue returns one field value of one record, or nil when the record is
// absent.
func (s *SQLStore) GetValue(recordType, name, field string) (any, error) {
	query := s.qb.Select(field).From(TableName(recordType)).Where(squirrel.Eq{"name": name}).Limit(1)
	q, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	var v any
	if err := s.h().QueryRow(q, args...).Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s.%s of %s: %w", recordType, field, name, err)
	}
	return normalize(v), nil
}

// NewDraft builds an in-memory draft record.
func (s *SQLStore) NewDraft(recordType string, fields map[string]any) *Record {
	return NewRecord(recordType, fields)
}

// Insert persists a draft and its child rows inside the store's current
// transaction, assigning identities by the type's naming rule. Required
// data fields and required non-empty child tables are validated.
func (s *SQLStore) Insert(rec *Record, ignorePermissions bool) error {
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
		name, err := s.assignName(rec, meta)
		if err != nil {
			return err
		}
		rec.Name = name
	}

	h, err := s.begin()
	if err != nil {
		return err
	}
	if err := s.insertRow(h, rec, meta, "", "", 0); err != nil {
		return err
	}

	for _, cf := range meta.ChildFields() {
		childType := cf.LinkTarget()
		childMeta, err := s.GetMeta(childType)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", rec.Type, cf.Fieldname, err)
		}
		for i, row := range rec.Rows(cf.Fieldname) {
			row.Type = childType
			if row.Name == "" {
				row.Name = hashName(childMeta)
			}
			if err := s.insertRow(h, row, childMeta, rec.Name, cf.Fieldname, i+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *SQLStore) insertRow(h runner, rec *Record, meta *Meta, parent, parentField string, idx int) error {
	now := time.Now().Format(DatetimeFormat)
	cols := []string{"name", "docstatus", "creation", "modified"}
	vals := []any{rec.Name, 0, now, now}
	if meta.IsChildTable {
		cols = append(cols, "parent", "parent_field", "idx")
		vals = append(vals, parent, parentField, idx)
	}
	for _, f := range meta.DataFields() {
		if rec.IsSet(f.Fieldname) {
			cols = append(cols, f.Fieldname)
			vals = append(vals, rec.Fields[f.Fieldname])
		}
	}

	q, args, err := s.qb.Insert(TableName(meta.Name)).Columns(cols...).Values(vals...).ToSql()
	if err != nil {
		return err
	}
	if _, err := h.Exec(q, args...); err != nil {
		return fmt.Errorf("failed to insert %s %s: %w", meta.Name, rec.Name, err)
	}
	rec.Docstatus = 0
	return nil
}

func (s *SQLStore) assignName(rec *Record, meta *Meta) (string, error) {
	if f := meta.NamingField(); f != "" {
		name := rec.GetString(f)
		if name == "" {
			return "", fmt.Errorf("%s: naming field %s is empty", rec.Type, f)
		}
		exists, err := s.Exists(rec.Type, name)
		if err != nil {
			return "", err
		}
		if exists {
			name = name + "-" + shortID()
		}
		return name, nil
	}
	return hashName(meta), nil
}

func hashName(meta *Meta) string {
	prefix := "REC"
	if strings.HasPrefix(meta.Naming, "hash:") {
		prefix = strings.TrimPrefix(meta.Naming, "hash:")
	}
	return prefix + "-" + shortID()
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Submit transitions a persisted record and its child rows to Submitted.
func (s *SQLStore) Submit(rec *Record) error {
	if rec.Name == "" {
		return fmt.Errorf("cannot submit unsaved %s record", rec.Type)
	}
	meta, err := s.GetMeta(rec.Type)
	if err != nil {
		return err
	}

	h, err := s.begin()
	if err != nil {
		return err
	}
	now := time.Now().Format(DatetimeFormat)
	q, args, err := s.qb.Update(TableName(rec.Type)).
		Set("docstatus", 1).Set("modified", now).
		Where(squirrel.Eq{"name": rec.Name}).ToSql()
	if err != nil {
		return err
	}
	if _, err := h.Exec(q, args...); err != nil {
		return fmt.Errorf("failed to submit %s %s: %w", rec.Type, rec.Name, err)
	}

	for _, cf := range meta.ChildFields() {
		childType := cf.LinkTarget()
		q, args, err := s.qb.Update(TableName(childType)).
			Set("docstatus", 1).Set("modified", now).
			Where(squirrel.Eq{"parent": rec.Name, "parent_field": cf.Fieldname}).ToSql()
		if err != nil {
			return err
		}
		if _, err := h.Exec(q, args...); err != nil {
			return fmt.Errorf("failed to submit %s rows of %s: %w", childType, rec.Name, err)
		}
		for _, row := range rec.Rows(cf.Fieldname) {
			row.Docstatus = 1
		}
	}
	rec.Docstatus = 1
	return nil
}

// LogError persists a failure to the error log. Runs outside the current
// transaction so the entry survives a rollback; its own failures are
// swallowed.
func (s *SQLStore) LogError(title, message string) {
	now := time.Now().Format(DatetimeFormat)
	q, args, err := s.qb.Insert("error_logs").
		Columns("name", "title", "message", "creation").
		Values("ERR-"+shortID(), title, message, now).ToSql()
	if err != nil {
		return
	}
	_, _ = s.db.Exec(q, args...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// normalize converts driver-specific scan results into the store's value
// conventions ([]byte columns become strings).
func normalize(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(DatetimeFormat)
	default:
		return v
	}
}
