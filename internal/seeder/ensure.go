package seeder

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

// Resolution discriminates how Ensure satisfied a request. Unavailable is
// the zero value so a forgotten check reads as "dependency missing", not as
// a phantom record.
type Resolution int

const (
	// Unavailable means the record type has no backing table or every
	// attempt to find or create the record failed. Callers degrade (omit
	// the reference) rather than abort.
	Unavailable Resolution = iota
	// Resolved means a matching record already existed.
	Resolved
	// Created means a new record was inserted.
	Created
)

// EnsureResult is the outcome of one Ensure call.
type EnsureResult struct {
	Status Resolution
	Rec    *store.Record
}

// Name returns the resolved identity, or "" when unavailable.
func (r EnsureResult) Name() string {
	if r.Status == Unavailable || r.Rec == nil {
		return ""
	}
	return r.Rec.Name
}

// Ensure returns an existing record matching fields, or creates one.
// A "name" entry in fields is an explicit identity: if a record with that
// identity exists it is returned unchanged. Every failure is caught, logged
// with context and converted to Unavailable; Ensure never raises.
func (s *Seeder) Ensure(recordType string, fields map[string]any) EnsureResult {
	ok, err := s.store.TableExists(recordType)
	if err != nil || !ok {
		return EnsureResult{Status: Unavailable}
	}

	if name, _ := fields["name"].(string); name != "" {
		exists, err := s.store.Exists(recordType, name)
		if err != nil {
			s.store.LogError("ensure failed: "+recordType, err.Error())
			return EnsureResult{Status: Unavailable}
		}
		if exists {
			return EnsureResult{Status: Resolved, Rec: &store.Record{Type: recordType, Name: name}}
		}
	}

	filters, err := s.matchFilters(recordType, fields)
	if err != nil {
		s.store.LogError("ensure failed: "+recordType, err.Error())
		return EnsureResult{Status: Unavailable}
	}
	if len(filters) > 0 {
		names, err := store.Pluck(s.store, recordType, filters, 1)
		if err != nil {
			s.store.Rollback()
			s.store.LogError("ensure failed: "+recordType, err.Error())
			return EnsureResult{Status: Unavailable}
		}
		if len(names) > 0 {
			return EnsureResult{Status: Resolved, Rec: &store.Record{Type: recordType, Name: names[0]}}
		}
	}

	rec := s.store.NewDraft(recordType, fields)
	if err := s.store.Insert(rec, true); err != nil {
		s.store.Rollback()
		s.store.LogError("ensure failed: "+recordType, err.Error())
		return EnsureResult{Status: Unavailable}
	}
	if err := s.store.Commit(); err != nil {
		s.store.LogError("ensure failed: "+recordType, err.Error())
		return EnsureResult{Status: Unavailable}
	}
	return EnsureResult{Status: Created, Rec: rec}
}

// matchFilters keeps only the attributes that map to real columns of the
// record type, so the search cannot trip over child-table or unknown keys.
func (s *Seeder) matchFilters(recordType string, fields map[string]any) (store.Filters, error) {
	meta, err := s.store.GetMeta(recordType)
	if err != nil {
		return nil, fmt.Errorf("match filters: %w", err)
	}
	filters := store.Filters{}
	for k, v := range fields {
		if k == "name" || v == nil {
			continue
		}
		if f, ok := meta.Field(k); ok && f.Fieldtype.HasColumn() {
			filters[k] = v
		}
	}
	return filters, nil
}
