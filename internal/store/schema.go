package store

import (
	"fmt"
	"strings"
)

// columnType maps a field type to the provider's SQL column type.
func (s *SQLStore) columnType(ft FieldType) string {
	pg := s.provider == "postgresql" || s.provider == "postgres"
	my := s.provider == "mysql"

	switch ft {
	case TypeInt:
		return "INTEGER"
	case TypeFloat, TypeCurrency, TypePercent:
		if pg {
			return "DOUBLE PRECISION"
		}
		if my {
			return "DOUBLE"
		}
		return "REAL"
	case TypeCheck:
		if pg {
			return "BOOLEAN"
		}
		if my {
			return "TINYINT(1)"
		}
		return "INTEGER"
	case TypeLongText, TypeText:
		return "TEXT"
	default:
		// Data, Small Text, Select, Link, Date, Datetime, Time. Dates are
		// stored as formatted strings, matching the value conventions.
		if my {
			return "VARCHAR(255)"
		}
		return "TEXT"
	}
}

func (s *SQLStore) textColumn() string {
	if s.provider == "mysql" {
		return "VARCHAR(255)"
	}
	return "TEXT"
}

func (s *SQLStore) namePK() string {
	if s.provider == "mysql" {
		return "VARCHAR(255) PRIMARY KEY"
	}
	return "TEXT PRIMARY KEY"
}

// CreateTableSQL generates the DDL for a record type's physical table.
func (s *SQLStore) CreateTableSQL(meta *Meta) string {
	var cols []string
	cols = append(cols,
		"name "+s.namePK(),
		"docstatus INTEGER NOT NULL DEFAULT 0",
		"creation "+s.textColumn(),
		"modified "+s.textColumn(),
	)
	if meta.IsChildTable {
		cols = append(cols,
			"parent "+s.textColumn(),
			"parent_field "+s.textColumn(),
			"idx INTEGER",
		)
	}
	for _, f := range meta.DataFields() {
		cols = append(cols, f.Fieldname+" "+s.columnType(f.Fieldtype))
	}
	return fmt.Sprintf("CREATE TABLE %s (\n  %s\n)", TableName(meta.Name), strings.Join(cols, ",\n  "))
}

// SyncReport summarizes one SyncTables pass.
type SyncReport struct {
	Created []string
	Skipped []string
	Errors  map[string]string
}

// SyncTables creates the physical table of every registered non-single
// record type that is still missing one. Failures are collected per type,
// never aborting the pass.
func (s *SQLStore) SyncTables(modules []string) (*SyncReport, error) {
	metas, err := s.RecordTypes(modules)
	if err != nil {
		return nil, err
	}

	report := &SyncReport{Errors: make(map[string]string)}
	for _, m := range metas {
		if m.IsSingle {
			report.Skipped = append(report.Skipped, m.Name+" (single)")
			continue
		}
		exists, err := s.TableExists(m.Name)
		if err != nil {
			report.Errors[m.Name] = err.Error()
			continue
		}
		if exists {
			report.Skipped = append(report.Skipped, m.Name)
			continue
		}
		full, err := s.GetMeta(m.Name)
		if err != nil {
			report.Errors[m.Name] = err.Error()
			continue
		}
		if _, err := s.db.Exec(s.CreateTableSQL(full)); err != nil {
			report.Errors[m.Name] = err.Error()
			continue
		}
		report.Created = append(report.Created, m.Name)
	}
	return report, nil
}

// createSystemTables sets up the metadata and error-log tables.
func (s *SQLStore) createSystemTables() error {
	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS record_types (
  name %s,
  module %s,
  naming %s,
  is_child_table %s,
  is_single %s
)`, s.namePK(), s.textColumn(), s.textColumn(), s.columnType(TypeCheck), s.columnType(TypeCheck)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS record_fields (
  parent %s,
  idx INTEGER,
  fieldname %s,
  fieldtype %s,
  label %s,
  reqd %s,
  read_only %s,
  options TEXT
)`, s.textColumn(), s.textColumn(), s.textColumn(), s.textColumn(), s.columnType(TypeCheck), s.columnType(TypeCheck)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS error_logs (
  name %s,
  title %s,
  message TEXT,
  creation %s
)`, s.namePK(), s.textColumn(), s.textColumn()),
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create system tables: %w", err)
		}
	}
	return nil
}
