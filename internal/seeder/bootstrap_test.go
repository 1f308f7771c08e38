package seeder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

func addAccount(t *testing.T, st *store.MemStore, name, company, accountType, rootType string) {
	t.Helper()
	rec := st.NewDraft("Account", map[string]any{
		"account_name": name,
		"company":      company,
		"account_type": accountType,
		"root_type":    rootType,
	})
	require.NoError(t, st.Insert(rec, true))
	require.NoError(t, st.Commit())
}

func TestBootstrapRequiresCompany(t *testing.T) {
	s := newTestSeeder(newTestStore())

	_, err := s.Bootstrap()
	require.ErrorContains(t, err, "no company")
}

func TestBootstrapCreatesMasterData(t *testing.T) {
	st := newTestStore()
	company := addCompany(t, st)
	s := newTestSeeder(st)

	ctx, err := s.Bootstrap()
	require.NoError(t, err)
	require.Equal(t, company, ctx.Company)
	require.Equal(t, "DC", ctx.Abbr)
	require.Equal(t, "Stores - DC", ctx.Stores)
	require.Equal(t, "Finished Goods - DC", ctx.FinishedGoods)
	require.Equal(t, "Main - DC", ctx.CostCenter)

	// No chart of accounts on this tenant: account context stays empty.
	require.Empty(t, ctx.Bank)
	require.Empty(t, ctx.Receivable)
	require.Empty(t, ctx.Income)

	expect := map[string]int{
		"Territory":      1,
		"Customer Group": 1,
		"Supplier Group": 1,
		"UOM":            2,
		"Item Group":     3,
		"Warehouse":      2,
		"Price List":     2,
		"Customer":       5,
		"Supplier":       5,
		"Item":           8,
	}
	for rt, want := range expect {
		count, err := st.Count(rt, nil)
		require.NoError(t, err)
		require.Equal(t, want, count, rt)
	}

	stock, err := st.Count("Item", store.Filters{"is_stock_item": true})
	require.NoError(t, err)
	require.Equal(t, 6, stock)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	st := newTestStore()
	addCompany(t, st)
	s := newTestSeeder(st)

	_, err := s.Bootstrap()
	require.NoError(t, err)
	_, err = s.Bootstrap()
	require.NoError(t, err)

	for _, rt := range []string{"Customer", "Supplier", "Item", "Warehouse", "Cost Center"} {
		first, err := st.Count(rt, nil)
		require.NoError(t, err)

		_, err = s.Bootstrap()
		require.NoError(t, err)

		again, err := st.Count(rt, nil)
		require.NoError(t, err)
		require.Equal(t, first, again, rt)
	}
}

func TestBootstrapResolvesAccountContext(t *testing.T) {
	st := newTestStore()
	company := addCompany(t, st)

	addAccount(t, st, "Main Bank", company, "Bank", "Asset")
	addAccount(t, st, "Debtors", company, "Receivable", "Asset")
	addAccount(t, st, "Creditors", company, "Payable", "Liability")
	addAccount(t, st, "Sales", company, "", "Income")
	addAccount(t, st, "Cost of Goods", company, "", "Expense")

	ctx, err := newTestSeeder(st).Bootstrap()
	require.NoError(t, err)

	require.Equal(t, "Main Bank", ctx.Bank)
	require.Equal(t, "Debtors", ctx.Receivable)
	require.Equal(t, "Creditors", ctx.Payable)
	require.Equal(t, "Sales", ctx.Income)
	require.Equal(t, "Cost of Goods", ctx.Expense)
}

func TestBootstrapAccountFallbackChain(t *testing.T) {
	st := newTestStore()
	company := addCompany(t, st)

	// No typed bank account; any asset account serves as the bank fallback.
	addAccount(t, st, "Fixed Assets", company, "", "Asset")

	ctx, err := newTestSeeder(st).Bootstrap()
	require.NoError(t, err)

	require.Equal(t, "Fixed Assets", ctx.Bank)
	require.Equal(t, "Fixed Assets", ctx.Receivable)
	require.Empty(t, ctx.Payable)
}
