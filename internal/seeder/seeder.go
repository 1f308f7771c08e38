// Package seeder generates demonstration data for the record store: a
// field-value synthesizer driven by record-type metadata, an idempotent
// master-data resolver, transactional buying/selling flow generators, and
// module-wide batch seeding sweeps. Failures are isolated per unit of work;
// one broken record or flow never aborts the run.
package seeder

import (
	"math/rand"
	"time"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

// Options tunes a Seeder. The zero value is usable; defaults are applied in
// New.
type Options struct {
	// Company pins the company context; empty means "any existing company".
	Company string
	// Currency used for bootstrapped price lists. Defaults to USD.
	Currency string
	// MaxPerFlow caps how many suppliers/customers get a generated flow.
	MaxPerFlow int
	// Seed fixes the random source for reproducible runs; 0 means
	// time-seeded.
	Seed int64
}

// Seeder drives all demo-data generation against one store. Single-threaded;
// not safe for concurrent use.
type Seeder struct {
	store      store.Store
	gen        *Generator
	rand       *rand.Rand
	currency   string
	maxPerFlow int

	companyOpt    string
	cachedCompany string
}

// New builds a Seeder over the given store.
func New(st store.Store, opts Options) *Seeder {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	currency := opts.Currency
	if currency == "" {
		currency = "USD"
	}
	maxPerFlow := opts.MaxPerFlow
	if maxPerFlow <= 0 {
		maxPerFlow = 3
	}

	return &Seeder{
		store:      st,
		gen:        &Generator{store: st, rand: r},
		rand:       r,
		currency:   currency,
		maxPerFlow: maxPerFlow,
		companyOpt: opts.Company,
	}
}

// company resolves the company context once: the configured company if set,
// else any existing company, else "".
func (s *Seeder) company() string {
	if s.cachedCompany != "" {
		return s.cachedCompany
	}
	if s.companyOpt != "" {
		s.cachedCompany = s.companyOpt
		return s.cachedCompany
	}
	s.cachedCompany = store.First(s.store, "Company", nil)
	return s.cachedCompany
}

// intBetween returns a random int in [lo, hi].
func (s *Seeder) intBetween(lo, hi int) int {
	return lo + s.rand.Intn(hi-lo+1)
}

// pastDate returns a date up to n days in the past.
func (s *Seeder) pastDate(n int) time.Time {
	return time.Now().AddDate(0, 0, -s.rand.Intn(n+1))
}

// sample returns up to k elements of names in random order. Fewer than k
// candidates means fewer picks, zero means none.
func (s *Seeder) sample(names []string, k int) []string {
	if k > len(names) {
		k = len(names)
	}
	idx := s.rand.Perm(len(names))[:k]
	out := make([]string, 0, k)
	for _, i := range idx {
		out = append(out, names[i])
	}
	return out
}
