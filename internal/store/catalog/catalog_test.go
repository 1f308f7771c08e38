package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

func TestBuiltinConsistency(t *testing.T) {
	metas := Builtin()
	require.NotEmpty(t, metas)

	byName := make(map[string]*store.Meta, len(metas))
	for _, m := range metas {
		require.NotEmpty(t, m.Name)
		require.Contains(t, Modules, m.Module, m.Name)
		require.Nil(t, byName[m.Name], "duplicate record type %s", m.Name)
		byName[m.Name] = m
	}

	for _, m := range metas {
		// Every child-table field must point at a registered child type.
		for _, f := range m.ChildFields() {
			target := byName[f.LinkTarget()]
			require.NotNil(t, target, "%s.%s references unknown type %q", m.Name, f.Fieldname, f.Options)
			require.True(t, target.IsChildTable, "%s.%s target %s is not a child table", m.Name, f.Fieldname, target.Name)
		}
		// Field-based naming must name a real field.
		if nf := m.NamingField(); nf != "" {
			require.True(t, m.HasField(nf), "%s names by missing field %s", m.Name, nf)
		}
	}
}

func TestFind(t *testing.T) {
	require.NotNil(t, Find("Sales Order"))
	require.NotNil(t, Find("Purchase Invoice Item"))
	require.Nil(t, Find("No Such Type"))
}

func TestDocumentChainBackReferences(t *testing.T) {
	// The flow generators rely on these line-level back-reference fields.
	cases := map[string][]string{
		"Purchase Receipt Item": {"purchase_order", "po_detail"},
		"Purchase Invoice Item": {"purchase_receipt", "pr_detail"},
		"Delivery Note Item":    {"against_sales_order", "so_detail"},
		"Sales Invoice Item":    {"sales_order", "so_detail"},
	}
	for name, fields := range cases {
		m := Find(name)
		require.NotNil(t, m, name)
		for _, f := range fields {
			require.True(t, m.HasField(f), "%s is missing %s", name, f)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	doc := `
name: Project
module: Custom
naming: "field:project_name"
fields:
  - fieldname: project_name
    fieldtype: Data
    label: Project Name
    reqd: true
  - fieldname: status
    fieldtype: Select
    label: Status
    options: "Open\nClosed"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "project.yaml"), []byte(doc), 0644))

	metas, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, metas, 1)

	m := metas[0]
	require.Equal(t, "Project", m.Name)
	require.Equal(t, "field:project_name", m.Naming)
	require.Len(t, m.Fields, 2)
	require.Equal(t, store.TypeSelect, m.Fields[1].Fieldtype)
	require.Equal(t, []string{"Open", "Closed"}, m.Fields[1].SelectOptions())
}

func TestLoadDirMissing(t *testing.T) {
	metas, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.Nil(t, metas)
}
