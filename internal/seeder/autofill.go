package seeder

// SeedStatus classifies the outcome of one autofill attempt.
type SeedStatus int

const (
	SeedCreated SeedStatus = iota
	SeedSkipped
	SeedFailed
)

// SeedResult reports what SeedOne did for one record type.
type SeedResult struct {
	Status SeedStatus
	// Name is the created record's identity when Status is SeedCreated.
	Name string
	// Reason explains a skip or failure.
	Reason string
}

// autoManagedFields are assigned by the store's naming machinery, never
// synthesized.
var autoManagedFields = map[string]bool{
	"naming_series": true,
	"amended_from":  true,
}

// SeedOne creates one record of the given type with synthesized field
// values. Child-table and single record types are skipped with a reason.
// An insert failure abandons the record, rolls back the open transaction
// and is reported, never retried.
func (s *Seeder) SeedOne(recordType string) SeedResult {
	meta, err := s.store.GetMeta(recordType)
	if err != nil {
		return SeedResult{Status: SeedFailed, Reason: "META ERROR: " + err.Error()}
	}
	if meta.IsChildTable {
		return SeedResult{Status: SeedSkipped, Reason: "child table"}
	}
	if meta.IsSingle {
		return SeedResult{Status: SeedSkipped, Reason: "single"}
	}

	company := s.company()
	rec := s.store.NewDraft(recordType, nil)

	for _, f := range meta.Fields {
		if f.Fieldname == "" || f.Fieldtype.IsLayout() {
			continue
		}
		if autoManagedFields[f.Fieldname] {
			continue
		}
		if f.ReadOnly {
			continue
		}
		// Child tables are never auto-populated.
		if f.Fieldtype.IsChildRef() {
			continue
		}
		if rec.IsSet(f.Fieldname) {
			continue
		}
		if v, ok := s.gen.Value(f, company); ok {
			rec.Set(f.Fieldname, v)
		}
	}

	// Permission checks are bypassed: this is the demo-mode default.
	if err := s.store.Insert(rec, true); err != nil {
		s.store.Rollback()
		return SeedResult{Status: SeedFailed, Reason: "INSERT ERROR: " + err.Error()}
	}
	if err := s.store.Commit(); err != nil {
		return SeedResult{Status: SeedFailed, Reason: "COMMIT ERROR: " + err.Error()}
	}
	return SeedResult{Status: SeedCreated, Name: rec.Name}
}
