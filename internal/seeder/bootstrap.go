package seeder

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

// FlowContext carries the master-data identities the flow generators read.
// Built once by Bootstrap, read-only afterwards. Empty strings mean the
// dependency could not be resolved and the flows leave the reference out.
type FlowContext struct {
	Company       string
	Abbr          string
	Stores        string
	FinishedGoods string
	CostCenter    string
	Bank          string
	Receivable    string
	Payable       string
	Income        string
	Expense       string
}

// lineWarehouse picks the warehouse for order, receipt and delivery lines:
// the raw-material store when it exists, the finished-goods warehouse
// otherwise. Empty when neither resolved.
func (ctx *FlowContext) lineWarehouse() string {
	if ctx.Stores != "" {
		return ctx.Stores
	}
	return ctx.FinishedGoods
}

// Bootstrap creates the master data the transactional flows need, in
// dependency order, and resolves the account context. The only fatal
// precondition is a tenant with zero companies; every individual creation
// is independent and a failure in one does not block the rest.
func (s *Seeder) Bootstrap() (*FlowContext, error) {
	company := s.company()
	if company == "" {
		return nil, fmt.Errorf("no company exists on this site; create one before seeding")
	}

	abbr := "CMP"
	if v, err := s.store.GetValue("Company", company, "abbr"); err == nil {
		if a, ok := v.(string); ok && a != "" {
			abbr = a
		}
	}

	s.Ensure("Territory", map[string]any{"name": "All Territories", "territory_name": "All Territories", "is_group": true})
	s.Ensure("Customer Group", map[string]any{"customer_group_name": "Commercial", "is_group": false})
	s.Ensure("Supplier Group", map[string]any{"supplier_group_name": "All Supplier Groups", "is_group": true})
	s.Ensure("UOM", map[string]any{"uom_name": "Nos", "must_be_whole_number": true})
	s.Ensure("UOM", map[string]any{"uom_name": "Hour", "must_be_whole_number": false})

	root := s.Ensure("Item Group", map[string]any{"item_group_name": "All Item Groups", "is_group": true})
	prod := s.Ensure("Item Group", map[string]any{"item_group_name": "Products", "parent_item_group": root.Name(), "is_group": false})
	serv := s.Ensure("Item Group", map[string]any{"item_group_name": "Services", "parent_item_group": root.Name(), "is_group": false})

	stores := s.Ensure("Warehouse", map[string]any{"warehouse_name": "Stores - " + abbr, "company": company})
	fg := s.Ensure("Warehouse", map[string]any{"warehouse_name": "Finished Goods - " + abbr, "company": company})

	s.Ensure("Price List", map[string]any{"price_list_name": "Standard Selling", "selling": true, "buying": false, "currency": s.currency})
	s.Ensure("Price List", map[string]any{"price_list_name": "Standard Buying", "selling": false, "buying": true, "currency": s.currency})

	for i := 1; i <= 5; i++ {
		s.Ensure("Customer", map[string]any{
			"customer_name":  fmt.Sprintf("Demo Customer %d", i),
			"customer_group": "Commercial",
			"territory":      "All Territories",
		})
		s.Ensure("Supplier", map[string]any{
			"supplier_name":  fmt.Sprintf("Demo Supplier %d", i),
			"supplier_group": "All Supplier Groups",
		})
	}

	// Items resolve by explicit identity: the standard rate is random, so
	// attribute matching would never find them again.
	for i := 1; i <= 6; i++ {
		code := fmt.Sprintf("ITEM-%03d", i)
		s.Ensure("Item", map[string]any{
			"name":          code,
			"item_code":     code,
			"item_name":     fmt.Sprintf("Demo Stock Item %d", i),
			"stock_uom":     "Nos",
			"is_stock_item": true,
			"item_group":    prod.Name(),
			"standard_rate": float64(s.intBetween(50, 400)),
		})
	}
	for i := 1; i <= 2; i++ {
		code := fmt.Sprintf("SVC-%03d", i)
		s.Ensure("Item", map[string]any{
			"name":          code,
			"item_code":     code,
			"item_name":     fmt.Sprintf("Demo Service %d", i),
			"stock_uom":     "Hour",
			"is_stock_item": false,
			"item_group":    serv.Name(),
			"standard_rate": float64(s.intBetween(200, 700)),
		})
	}

	ctx := &FlowContext{
		Company:       company,
		Abbr:          abbr,
		Stores:        stores.Name(),
		FinishedGoods: fg.Name(),
	}

	// Accounts and cost center are best effort: each resolves through a
	// fallback chain and tolerates total absence.
	ctx.CostCenter = store.First(s.store, "Cost Center", store.Filters{"company": company})
	if ctx.CostCenter == "" {
		ctx.CostCenter = s.Ensure("Cost Center", map[string]any{"cost_center_name": "Main - " + abbr, "company": company}).Name()
	}

	ctx.Bank = s.lookupChain("Account", []store.Filters{
		{"company": company, "account_type": "Bank"},
		{"company": company, "root_type": "Asset"},
	})
	ctx.Receivable = s.lookupChain("Account", []store.Filters{
		{"company": company, "account_type": "Receivable"},
		{"company": company, "root_type": "Asset"},
	})
	ctx.Payable = s.lookupChain("Account", []store.Filters{
		{"company": company, "account_type": "Payable"},
		{"company": company, "root_type": "Liability"},
	})
	ctx.Income = s.lookupChain("Account", []store.Filters{
		{"company": company, "root_type": "Income"},
		{"company": company},
	})
	ctx.Expense = s.lookupChain("Account", []store.Filters{
		{"company": company, "root_type": "Expense"},
		{"company": company},
	})

	return ctx, nil
}

// lookupChain tries each filter set in order and returns the first match.
// All lookups exhausted means "": the caller leaves the field empty.
func (s *Seeder) lookupChain(recordType string, chain []store.Filters) string {
	for _, filters := range chain {
		if name := store.First(s.store, recordType, filters); name != "" {
			return name
		}
	}
	return ""
}
