package store

import "errors"

// ErrTableMissing reports that a record type has no materialized physical
// table. Callers that can degrade (seeders, count reports) check for it with
// errors.Is and skip instead of failing.
var ErrTableMissing = errors.New("table missing")

// Filters is an equality filter set applied to List/Count queries.
type Filters map[string]any

// ListOptions bounds a List query. Fields defaults to ["name"]; Limit <= 0
// means no limit.
type ListOptions struct {
	Filters Filters
	Fields  []string
	OrderBy string
	Limit   int
}

// Store is the record store the generators run against. Implementations are
// not required to be safe for concurrent use; the seeder is single-threaded.
type Store interface {
	// List returns records of the given type matching the options. The
	// returned records carry only the requested fields.
	List(recordType string, opt ListOptions) ([]*Record, error)

	// Count returns the number of records of the given type matching the
	// filters. Returns an error wrapping ErrTableMissing when the type's
	// physical table does not exist.
	Count(recordType string, filters Filters) (int, error)

	// TableExists reports whether the record type's physical table exists.
	TableExists(recordType string) (bool, error)

	// Exists reports whether a record with the given identity exists.
	Exists(recordType, name string) (bool, error)

	// GetMeta returns the record type's metadata.
	GetMeta(recordType string) (*Meta, error)

	// RecordTypes lists the metadata headers of all registered record
	// types, ordered by module then name. Field lists may be omitted;
	// callers needing fields go through GetMeta.
	RecordTypes(modules []string) ([]*Meta, error)

	// GetValue returns a single field value of one record, or nil when the
	// record or value is absent.
	GetValue(recordType, name, field string) (any, error)

	// NewDraft builds an in-memory draft record; nothing is persisted until
	// Insert.
	NewDraft(recordType string, fields map[string]any) *Record

	// Insert persists a draft and its child rows, assigning its identity.
	// ignorePermissions bypasses any permission policy the store enforces.
	Insert(rec *Record, ignorePermissions bool) error

	// Submit transitions a persisted record from Draft to Submitted.
	Submit(rec *Record) error

	// Commit flushes the store's current open transaction, if any. The
	// generators commit after every completed unit of work so a later
	// rollback cannot take finished units with it.
	Commit() error

	// Rollback aborts the store's current open transaction, if any. Safe to
	// call when no transaction is open.
	Rollback()

	// LogError records a failure with context in the store's error log.
	// Never fails; logging problems are swallowed.
	LogError(title, message string)

	Close() error
}

// Truthy interprets a stored field value as a boolean. Check columns come
// back as bool, int64 or string depending on the driver.
func Truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case string:
		return t == "1" || t == "true"
	default:
		return false
	}
}

// Pluck lists just the identities of records matching the filters.
func Pluck(s Store, recordType string, filters Filters, limit int) ([]string, error) {
	recs, err := s.List(recordType, ListOptions{Filters: filters, Limit: limit})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(recs))
	for _, r := range recs {
		names = append(names, r.Name)
	}
	return names, nil
}

// First returns the identity of any one record matching the filters, or ""
// when none exists or the lookup fails. Mirrors the tolerant lookup the
// generators use for optional references.
func First(s Store, recordType string, filters Filters) string {
	ok, err := s.TableExists(recordType)
	if err != nil || !ok {
		return ""
	}
	names, err := Pluck(s, recordType, filters, 1)
	if err != nil || len(names) == 0 {
		return ""
	}
	return names[0]
}
