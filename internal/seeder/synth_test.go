package seeder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

func testGenerator(st store.Store) *Generator {
	return newTestSeeder(st).gen
}

func TestRequiredCheckAlwaysTrue(t *testing.T) {
	g := testGenerator(newTestStore())
	f := store.FieldDef{Fieldname: "active", Fieldtype: store.TypeCheck, Reqd: true}

	for i := 0; i < 50; i++ {
		v, ok := g.Value(f, "")
		require.True(t, ok)
		require.Equal(t, true, v)
	}
}

func TestLinkWithoutCandidatesStaysEmpty(t *testing.T) {
	g := testGenerator(newTestStore())
	f := store.FieldDef{Fieldname: "item_group", Fieldtype: store.TypeLink, Options: "Item Group"}

	_, ok := g.Value(f, "")
	require.False(t, ok)
}

func TestLinkResolvesExistingRecord(t *testing.T) {
	st := newTestStore()
	rec := st.NewDraft("Territory", map[string]any{"territory_name": "North"})
	require.NoError(t, st.Insert(rec, true))

	g := testGenerator(st)
	v, ok := g.Value(store.FieldDef{Fieldname: "territory", Fieldtype: store.TypeLink, Options: "Territory"}, "")
	require.True(t, ok)
	require.Equal(t, "North", v)
}

func TestLinkSpecialFallbacks(t *testing.T) {
	st := newTestStore()
	company := addCompany(t, st)
	g := testGenerator(st)

	v, ok := g.Value(store.FieldDef{Fieldname: "company", Fieldtype: store.TypeLink, Options: "Company"}, company)
	require.True(t, ok)
	require.Equal(t, company, v)

	v, ok = g.Value(store.FieldDef{Fieldname: "owner", Fieldtype: store.TypeLink, Options: "User"}, "")
	require.True(t, ok)
	require.Equal(t, "Administrator", v)

	// Currency follows the company default, then any currency, then USD.
	v, ok = g.Value(store.FieldDef{Fieldname: "currency", Fieldtype: store.TypeLink, Options: "Currency"}, company)
	require.True(t, ok)
	require.Equal(t, "USD", v)

	v, ok = g.Value(store.FieldDef{Fieldname: "currency", Fieldtype: store.TypeLink, Options: "Currency"}, "")
	require.True(t, ok)
	require.Equal(t, "USD", v)
}

func TestSelectPicksFirstPlainOption(t *testing.T) {
	g := testGenerator(newTestStore())

	v, ok := g.Value(store.FieldDef{Fieldtype: store.TypeSelect, Options: "Open\nClosed"}, "")
	require.True(t, ok)
	require.Equal(t, "Open", v)

	v, ok = g.Value(store.FieldDef{Fieldtype: store.TypeSelect, Options: "Link:Item\nManual"}, "")
	require.True(t, ok)
	require.Equal(t, "Manual", v)

	_, ok = g.Value(store.FieldDef{Fieldtype: store.TypeSelect}, "")
	require.False(t, ok)
}

func TestTextValuesCarryLabel(t *testing.T) {
	g := testGenerator(newTestStore())

	v, ok := g.Value(store.FieldDef{Fieldname: "supplier_name", Fieldtype: store.TypeData, Label: "Supplier Name"}, "")
	require.True(t, ok)
	require.Contains(t, v.(string), "Demo Supplier Name")

	// Two invocations must not collide.
	w, _ := g.Value(store.FieldDef{Fieldname: "supplier_name", Fieldtype: store.TypeData, Label: "Supplier Name"}, "")
	require.NotEqual(t, v, w)
}

func TestLayoutFieldsAreNeverSynthesized(t *testing.T) {
	g := testGenerator(newTestStore())

	for _, ft := range []store.FieldType{store.TypeSectionBreak, store.TypeColumnBreak, store.TypeTable} {
		_, ok := g.Value(store.FieldDef{Fieldname: "x", Fieldtype: ft}, "")
		require.False(t, ok, string(ft))
	}
}
