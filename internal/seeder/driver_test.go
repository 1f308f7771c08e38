package seeder

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

func TestRunAbortsOnMissingCoreTable(t *testing.T) {
	st := newTestStore()
	addCompany(t, st)
	st.DropTable("Customer")

	_, err := newTestSeeder(st).Run()
	require.ErrorContains(t, err, "Customer")
	require.ErrorContains(t, err, "sync")
}

func TestRunRequiresCompany(t *testing.T) {
	_, err := newTestSeeder(newTestStore()).Run()
	require.ErrorContains(t, err, "no company")
}

func TestRunEndToEnd(t *testing.T) {
	st := newTestStore()
	addCompany(t, st)
	s := newTestSeeder(st)

	summary, err := s.Run()
	require.NoError(t, err)
	require.Contains(t, summary, "Demo Co")

	// Master data from the bootstrap.
	for rt, want := range map[string]int{"Customer": 5, "Supplier": 5, "Item": 8} {
		count, err := st.Count(rt, nil)
		require.NoError(t, err)
		require.Equal(t, want, count, rt)
	}

	// One opening stock entry plus one chain per sampled party.
	require.Len(t, st.SubmittedNames("Stock Entry"), 1)
	require.Len(t, st.SubmittedNames("Purchase Order"), 3)
	require.Len(t, st.SubmittedNames("Purchase Receipt"), 3)
	require.Len(t, st.SubmittedNames("Purchase Invoice"), 3)
	require.Len(t, st.SubmittedNames("Sales Order"), 3)
	require.Len(t, st.SubmittedNames("Sales Invoice"), 3)
}

func TestRunIsolatesFlowFailures(t *testing.T) {
	st := newTestStore()
	addCompany(t, st)
	st.FailInsert = func(rec *store.Record) error {
		if rec.Type == "Purchase Receipt" {
			return fmt.Errorf("simulated mid-chain failure")
		}
		return nil
	}

	summary, err := newTestSeeder(st).Run()
	require.NoError(t, err, "flow failures must not abort the run")
	require.Contains(t, summary, "failed")

	// Every buying flow broke mid-chain and was rolled back whole.
	require.Empty(t, st.SubmittedNames("Purchase Receipt"))
	require.Empty(t, st.SubmittedNames("Purchase Order"))

	// Selling flows still completed.
	require.Len(t, st.SubmittedNames("Sales Order"), 3)
	require.Len(t, st.SubmittedNames("Sales Invoice"), 3)

	var logged bool
	for _, e := range st.Logged {
		if strings.HasPrefix(e.Title, "buying flow failed:") {
			logged = true
		}
	}
	require.True(t, logged, "expected buying flow failures in the error log")
}
