package seeder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedOneCreatesMasterRecord(t *testing.T) {
	st := newTestStore()
	s := newTestSeeder(st)

	res := s.SeedOne("UOM")
	require.Equal(t, SeedCreated, res.Status)
	require.NotEmpty(t, res.Name)

	count, err := st.Count("UOM", nil)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestSeedOneSkipsChildTablesAndSingles(t *testing.T) {
	s := newTestSeeder(newTestStore())

	res := s.SeedOne("Sales Order Item")
	require.Equal(t, SeedSkipped, res.Status)
	require.Equal(t, "child table", res.Reason)

	res = s.SeedOne("Selling Settings")
	require.Equal(t, SeedSkipped, res.Status)
	require.Equal(t, "single", res.Reason)
}

func TestSeedOneResolvesLinks(t *testing.T) {
	st := newTestStore()
	company := addCompany(t, st)
	s := newTestSeeder(st)

	res := s.SeedOne("Warehouse")
	require.Equal(t, SeedCreated, res.Status)

	v, err := st.GetValue("Warehouse", res.Name, "company")
	require.NoError(t, err)
	require.Equal(t, company, v)
}

func TestSeedOneInsertFailureRollsBack(t *testing.T) {
	st := newTestStore()
	s := newTestSeeder(st)

	// Document types require a populated child table, which autofill never
	// provides; the insert fails and is rolled back.
	res := s.SeedOne("Sales Order")
	require.Equal(t, SeedFailed, res.Status)
	require.Contains(t, res.Reason, "INSERT ERROR")

	count, err := st.Count("Sales Order", nil)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestSeedOneSkipsReadOnlyAndManagedFields(t *testing.T) {
	st := newTestStore()
	addCompany(t, st)
	s := newTestSeeder(st)

	// Payment Entry has no required child table, so autofill can create it.
	res := s.SeedOne("Payment Entry")
	require.Equal(t, SeedCreated, res.Status)

	// naming_series and amended_from are store-managed and stay unset.
	for _, field := range []string{"naming_series", "amended_from"} {
		v, err := st.GetValue("Payment Entry", res.Name, field)
		require.NoError(t, err)
		require.Nil(t, v, field)
	}

	// The required select got its first option.
	v, err := st.GetValue("Payment Entry", res.Name, "payment_type")
	require.NoError(t, err)
	require.Equal(t, "Receive", v)
}
