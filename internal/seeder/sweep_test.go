package seeder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSweepSkipsSingles(t *testing.T) {
	st := newTestStore()
	s := newTestSeeder(st)

	for _, policy := range []SweepPolicy{SeedEmpty, SeedSparse} {
		var out bytes.Buffer
		_, err := s.Sweep(policy, []string{"Selling"}, &out)
		require.NoError(t, err)
		require.Contains(t, out.String(), "skipped (single)")

		// The single never reaches the store: it has no table, and the
		// sweep must not have tried to materialize one.
		ok, err := st.TableExists("Selling Settings")
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestSweepSeedEmpty(t *testing.T) {
	st := newTestStore()
	s := newTestSeeder(st)

	var out bytes.Buffer
	sum, err := s.Sweep(SeedEmpty, []string{"Stock"}, &out)
	require.NoError(t, err)

	// Master types got one record each; document types fail their required
	// child tables but the sweep carries on.
	require.Greater(t, sum.Created, 0)
	require.Greater(t, sum.Errors, 0)
	require.Contains(t, out.String(), "INSERT ERROR")

	count, err := st.Count("UOM", nil)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// Every record type of the module got exactly one status line tallied.
	metas, err := st.RecordTypes([]string{"Stock"})
	require.NoError(t, err)
	require.Equal(t, len(metas), sum.Created+sum.Skipped+sum.Errors)
}

func TestSweepSparsePolicyThreshold(t *testing.T) {
	st := newTestStore()
	s := newTestSeeder(st)

	rec := st.NewDraft("UOM", map[string]any{"uom_name": "Nos"})
	require.NoError(t, st.Insert(rec, true))
	require.NoError(t, st.Commit())

	var out bytes.Buffer
	_, err := s.Sweep(SeedEmpty, []string{"Stock"}, &out)
	require.NoError(t, err)

	count, err := st.Count("UOM", nil)
	require.NoError(t, err)
	require.Equal(t, 1, count, "seed empty must skip a populated type")

	_, err = s.Sweep(SeedSparse, []string{"Stock"}, &out)
	require.NoError(t, err)

	count, err = st.Count("UOM", nil)
	require.NoError(t, err)
	require.Equal(t, 2, count, "seed sparse always inserts one more")

	_, err = s.Sweep(SeedSparse, []string{"Stock"}, &out)
	require.NoError(t, err)

	count, err = st.Count("UOM", nil)
	require.NoError(t, err)
	require.Equal(t, 2, count, "two records put the type over the sparse threshold")
}

func TestSweepCountErrorDoesNotHalt(t *testing.T) {
	st := newTestStore()
	st.DropTable("Item")
	s := newTestSeeder(st)

	var out bytes.Buffer
	sum, err := s.Sweep(SeedEmpty, []string{"Stock"}, &out)
	require.NoError(t, err)
	require.Greater(t, sum.Errors, 0)
	require.Contains(t, out.String(), "COUNT ERROR")

	// Types after the broken one were still processed.
	count, err := st.Count("UOM", nil)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("empty")
	require.NoError(t, err)
	require.Equal(t, SeedEmpty, p)

	p, err = ParsePolicy("sparse")
	require.NoError(t, err)
	require.Equal(t, SeedSparse, p)

	_, err = ParsePolicy("everything")
	require.Error(t, err)
}
