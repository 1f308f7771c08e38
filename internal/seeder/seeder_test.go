package seeder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
	"github.com/Lumos-Labs-HQ/seedling/internal/store/catalog"
)

// newTestStore gives a fresh in-memory store with the full builtin catalog.
func newTestStore() *store.MemStore {
	return store.NewMemStore(catalog.Builtin())
}

func addCompany(t *testing.T, st *store.MemStore) string {
	t.Helper()
	rec := st.NewDraft("Company", map[string]any{
		"company_name":     "Demo Co",
		"abbr":             "DC",
		"default_currency": "USD",
	})
	require.NoError(t, st.Insert(rec, true))
	require.NoError(t, st.Commit())
	return rec.Name
}

func newTestSeeder(st store.Store) *Seeder {
	return New(st, Options{Seed: 42})
}

func TestSampleBounds(t *testing.T) {
	s := newTestSeeder(newTestStore())

	require.Empty(t, s.sample(nil, 3))
	require.Len(t, s.sample([]string{"a"}, 3), 1)
	require.Len(t, s.sample([]string{"a", "b", "c", "d"}, 3), 3)
}

func TestIntBetween(t *testing.T) {
	s := newTestSeeder(newTestStore())
	for i := 0; i < 100; i++ {
		v := s.intBetween(2, 10)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 10)
	}
}

func TestCompanyResolution(t *testing.T) {
	st := newTestStore()
	name := addCompany(t, st)

	require.Equal(t, name, newTestSeeder(st).company())

	pinned := New(st, Options{Company: "Other Co", Seed: 42})
	require.Equal(t, "Other Co", pinned.company())

	require.Equal(t, "", newTestSeeder(newTestStore()).company())
}
