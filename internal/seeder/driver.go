package seeder

import (
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

// coreTypes are the record types a demo scenario cannot run without. A
// missing backing table here is the one fatal condition past the company
// check.
var coreTypes = []string{
	"Customer",
	"Supplier",
	"Item",
	"Warehouse",
	"Sales Order",
	"Delivery Note",
	"Sales Invoice",
	"Purchase Order",
	"Purchase Receipt",
	"Purchase Invoice",
	"Stock Entry",
}

// Run executes the full demo scenario: bootstrap the master data, book
// opening stock once, then generate a buying flow per sampled supplier and a
// selling flow per sampled customer. Individual flow failures are logged,
// rolled back and skipped; the returned summary is non-fatal whenever the
// preconditions hold.
func (s *Seeder) Run() (string, error) {
	var missing []string
	for _, rt := range coreTypes {
		ok, err := s.store.TableExists(rt)
		if err != nil {
			return "", fmt.Errorf("checking tables: %w", err)
		}
		if !ok {
			missing = append(missing, rt)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("cannot seed: missing tables for %s; run sync first", strings.Join(missing, ", "))
	}

	ctx, err := s.Bootstrap()
	if err != nil {
		return "", err
	}

	var failed int
	if err := s.OpeningStock(ctx); err != nil {
		s.store.Rollback()
		s.store.LogError("opening stock failed", err.Error())
		failed++
	}

	suppliers, err := store.Pluck(s.store, "Supplier", nil, 0)
	if err != nil {
		s.store.Rollback()
		s.store.LogError("listing suppliers failed", err.Error())
	}
	buying := 0
	for _, supplier := range s.sample(suppliers, s.maxPerFlow) {
		if err := s.BuyingFlow(ctx, supplier); err != nil {
			s.store.Rollback()
			s.store.LogError("buying flow failed: "+supplier, err.Error())
			failed++
			continue
		}
		buying++
	}

	customers, err := store.Pluck(s.store, "Customer", nil, 0)
	if err != nil {
		s.store.Rollback()
		s.store.LogError("listing customers failed", err.Error())
	}
	selling := 0
	for _, customer := range s.sample(customers, s.maxPerFlow) {
		if err := s.SellingFlow(ctx, customer); err != nil {
			s.store.Rollback()
			s.store.LogError("selling flow failed: "+customer, err.Error())
			failed++
			continue
		}
		selling++
	}

	summary := fmt.Sprintf("Demo data generated for %s: %d buying flows, %d selling flows", ctx.Company, buying, selling)
	if failed > 0 {
		summary += fmt.Sprintf(" (%d units failed, see error log)", failed)
	}
	return summary, nil
}
