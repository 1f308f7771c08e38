package seeder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

func TestEnsureCreatesThenResolves(t *testing.T) {
	st := newTestStore()
	s := newTestSeeder(st)

	attrs := map[string]any{"territory_name": "All Territories", "is_group": true}

	first := s.Ensure("Territory", attrs)
	require.Equal(t, Created, first.Status)
	require.Equal(t, "All Territories", first.Name())

	second := s.Ensure("Territory", attrs)
	require.Equal(t, Resolved, second.Status)
	require.Equal(t, first.Name(), second.Name())

	count, err := st.Count("Territory", nil)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestEnsureExplicitName(t *testing.T) {
	st := newTestStore()
	s := newTestSeeder(st)

	rec := st.NewDraft("UOM", map[string]any{"uom_name": "Nos"})
	require.NoError(t, st.Insert(rec, true))
	require.NoError(t, st.Commit())

	res := s.Ensure("UOM", map[string]any{"name": "Nos", "uom_name": "Nos"})
	require.Equal(t, Resolved, res.Status)
	require.Equal(t, "Nos", res.Name())
}

func TestEnsureMissingTableIsUnavailable(t *testing.T) {
	st := newTestStore()
	st.DropTable("Territory")
	s := newTestSeeder(st)

	res := s.Ensure("Territory", map[string]any{"territory_name": "North"})
	require.Equal(t, Unavailable, res.Status)
	require.Equal(t, "", res.Name())
}

func TestEnsureInsertFailureIsLoggedAndRolledBack(t *testing.T) {
	st := newTestStore()
	st.FailInsert = func(rec *store.Record) error {
		return fmt.Errorf("simulated validation failure")
	}
	s := newTestSeeder(st)

	res := s.Ensure("Territory", map[string]any{"territory_name": "North"})
	require.Equal(t, Unavailable, res.Status)

	require.NotEmpty(t, st.Logged)
	require.Contains(t, st.Logged[0].Title, "Territory")

	st.FailInsert = nil
	count, err := st.Count("Territory", nil)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestEnsureIgnoresNonColumnAttributes(t *testing.T) {
	st := newTestStore()
	s := newTestSeeder(st)

	// "unknown_field" maps to no column and must not break the match.
	first := s.Ensure("UOM", map[string]any{"uom_name": "Hour", "unknown_field": 1})
	require.Equal(t, Created, first.Status)

	second := s.Ensure("UOM", map[string]any{"uom_name": "Hour", "unknown_field": 2})
	require.Equal(t, Resolved, second.Status)
}
