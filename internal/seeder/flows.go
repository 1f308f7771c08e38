package seeder

import (
	"fmt"
	"math"
	"time"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

// Each flow builds a chain of documents where every later document carries a
// back-reference to a persisted, submitted line of its predecessor. A flow
// either commits as a whole or returns an error; the caller rolls back.

func fmtDate(t time.Time) string {
	return t.Format(store.DateFormat)
}

// OpeningStock books initial inventory into the stores warehouse with one
// material receipt. No-op when there are no stock items or no stores
// warehouse.
func (s *Seeder) OpeningStock(ctx *FlowContext) error {
	if ctx.Stores == "" {
		return nil
	}
	items, err := store.Pluck(s.store, "Item", store.Filters{"is_stock_item": true}, 6)
	if err != nil {
		return fmt.Errorf("opening stock: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	entry := s.store.NewDraft("Stock Entry", map[string]any{
		"stock_entry_type": "Material Receipt",
		"company":          ctx.Company,
		"posting_date":     fmtDate(s.pastDate(120)),
	})
	for _, code := range items {
		entry.Append("items", map[string]any{
			"item_code":   code,
			"qty":         float64(s.intBetween(10, 80)),
			"basic_rate":  float64(s.intBetween(50, 300)),
			"t_warehouse": ctx.Stores,
		})
	}
	if err := s.store.Insert(entry, true); err != nil {
		return fmt.Errorf("opening stock: %w", err)
	}
	if err := s.store.Submit(entry); err != nil {
		return fmt.Errorf("opening stock: %w", err)
	}
	return s.store.Commit()
}

// BuyingFlow generates one order, receipt and invoice chain for the given
// supplier. No-op when there are no stock items.
func (s *Seeder) BuyingFlow(ctx *FlowContext, supplier string) error {
	items, err := store.Pluck(s.store, "Item", store.Filters{"is_stock_item": true}, 0)
	if err != nil {
		return fmt.Errorf("buying flow %s: %w", supplier, err)
	}
	if len(items) == 0 {
		return nil
	}
	picks := s.sample(items, s.maxPerFlow)

	orderDate := s.pastDate(35)
	schedule := orderDate.AddDate(0, 0, s.intBetween(0, 10))

	po := s.store.NewDraft("Purchase Order", map[string]any{
		"supplier":          supplier,
		"company":           ctx.Company,
		"transaction_date":  fmtDate(orderDate),
		"schedule_date":     fmtDate(schedule),
		"buying_price_list": "Standard Buying",
	})
	for _, code := range picks {
		row := map[string]any{
			"item_code":     code,
			"qty":           float64(s.intBetween(2, 10)),
			"rate":          float64(s.intBetween(50, 300)),
			"schedule_date": fmtDate(schedule),
		}
		if wh := ctx.lineWarehouse(); wh != "" {
			row["warehouse"] = wh
		}
		po.Append("items", row)
	}
	if err := s.submitDraft(po); err != nil {
		return fmt.Errorf("buying flow %s: %w", supplier, err)
	}

	receiptDate := schedule.AddDate(0, 0, s.intBetween(0, 5))
	pr := s.store.NewDraft("Purchase Receipt", map[string]any{
		"supplier":     supplier,
		"company":      ctx.Company,
		"posting_date": fmtDate(receiptDate),
	})
	for _, line := range po.Rows("items") {
		row := map[string]any{
			"item_code":      line.Get("item_code"),
			"qty":            line.Get("qty"),
			"rate":           line.Get("rate"),
			"purchase_order": po.Name,
			"po_detail":      line.Name,
		}
		if wh := ctx.lineWarehouse(); wh != "" {
			row["warehouse"] = wh
		}
		pr.Append("items", row)
	}
	if err := s.submitDraft(pr); err != nil {
		return fmt.Errorf("buying flow %s: %w", supplier, err)
	}

	lineMeta, err := s.store.GetMeta("Purchase Invoice Item")
	if err != nil {
		return fmt.Errorf("buying flow %s: %w", supplier, err)
	}
	invoiceDate := receiptDate.AddDate(0, 0, s.intBetween(0, 5))
	pi := s.store.NewDraft("Purchase Invoice", map[string]any{
		"supplier":     supplier,
		"company":      ctx.Company,
		"posting_date": fmtDate(invoiceDate),
		"due_date":     fmtDate(invoiceDate.AddDate(0, 0, 30)),
	})
	var total float64
	for _, line := range pr.Rows("items") {
		row := map[string]any{
			"item_code":        line.Get("item_code"),
			"qty":              line.Get("qty"),
			"rate":             line.Get("rate"),
			"purchase_receipt": pr.Name,
			"pr_detail":        line.Name,
		}
		if ctx.Expense != "" && lineMeta.HasField("expense_account") {
			row["expense_account"] = ctx.Expense
		}
		if ctx.CostCenter != "" && lineMeta.HasField("cost_center") {
			row["cost_center"] = ctx.CostCenter
		}
		pi.Append("items", row)
		total += lineAmount(line)
	}
	pi.Set("grand_total", total)
	pi.Set("rounded_total", math.Round(total))
	if err := s.submitDraft(pi); err != nil {
		return fmt.Errorf("buying flow %s: %w", supplier, err)
	}

	return s.store.Commit()
}

// SellingFlow generates one order, delivery, invoice and payment chain for
// the given customer. The delivery carries only stock-backed lines and is
// skipped entirely when no line qualifies; the payment is created only when
// the store has payment records and both a receivable and a bank-like
// account resolved.
func (s *Seeder) SellingFlow(ctx *FlowContext, customer string) error {
	items, err := store.Pluck(s.store, "Item", nil, 0)
	if err != nil {
		return fmt.Errorf("selling flow %s: %w", customer, err)
	}
	if len(items) == 0 {
		return nil
	}
	picks := s.sample(items, s.maxPerFlow)

	orderDate := s.pastDate(25)
	deliveryDate := orderDate.AddDate(0, 0, s.intBetween(0, 10))

	so := s.store.NewDraft("Sales Order", map[string]any{
		"customer":           customer,
		"company":            ctx.Company,
		"transaction_date":   fmtDate(orderDate),
		"delivery_date":      fmtDate(deliveryDate),
		"selling_price_list": "Standard Selling",
	})
	stocked := make(map[*store.Record]bool)
	for _, code := range picks {
		isStock := false
		if v, err := s.store.GetValue("Item", code, "is_stock_item"); err == nil {
			isStock = store.Truthy(v)
		}
		row := map[string]any{
			"item_code":     code,
			"qty":           float64(s.intBetween(1, 6)),
			"rate":          float64(s.intBetween(100, 600)),
			"delivery_date": fmtDate(deliveryDate),
		}
		if isStock && ctx.Stores != "" {
			row["warehouse"] = ctx.Stores
		}
		stocked[so.Append("items", row)] = isStock
	}
	if err := s.submitDraft(so); err != nil {
		return fmt.Errorf("selling flow %s: %w", customer, err)
	}

	var stockLines []*store.Record
	for _, line := range so.Rows("items") {
		if stocked[line] {
			stockLines = append(stockLines, line)
		}
	}
	if len(stockLines) > 0 {
		dn := s.store.NewDraft("Delivery Note", map[string]any{
			"customer":     customer,
			"company":      ctx.Company,
			"posting_date": fmtDate(deliveryDate.AddDate(0, 0, s.intBetween(0, 5))),
		})
		for _, line := range stockLines {
			row := map[string]any{
				"item_code":           line.Get("item_code"),
				"qty":                 line.Get("qty"),
				"rate":                line.Get("rate"),
				"against_sales_order": so.Name,
				"so_detail":           line.Name,
			}
			if wh := ctx.lineWarehouse(); wh != "" {
				row["warehouse"] = wh
			}
			dn.Append("items", row)
		}
		if err := s.submitDraft(dn); err != nil {
			return fmt.Errorf("selling flow %s: %w", customer, err)
		}
	}

	lineMeta, err := s.store.GetMeta("Sales Invoice Item")
	if err != nil {
		return fmt.Errorf("selling flow %s: %w", customer, err)
	}
	si := s.store.NewDraft("Sales Invoice", map[string]any{
		"customer":     customer,
		"company":      ctx.Company,
		"posting_date": fmtDate(deliveryDate.AddDate(0, 0, s.intBetween(0, 7))),
	})
	var total float64
	for _, line := range so.Rows("items") {
		row := map[string]any{
			"item_code":   line.Get("item_code"),
			"qty":         line.Get("qty"),
			"rate":        line.Get("rate"),
			"sales_order": so.Name,
			"so_detail":   line.Name,
		}
		if ctx.Income != "" && lineMeta.HasField("income_account") {
			row["income_account"] = ctx.Income
		}
		if ctx.CostCenter != "" && lineMeta.HasField("cost_center") {
			row["cost_center"] = ctx.CostCenter
		}
		si.Append("items", row)
		total += lineAmount(line)
	}
	si.Set("grand_total", total)
	si.Set("rounded_total", math.Round(total))
	if err := s.submitDraft(si); err != nil {
		return fmt.Errorf("selling flow %s: %w", customer, err)
	}

	if err := s.payInvoice(ctx, customer, si); err != nil {
		return fmt.Errorf("selling flow %s: %w", customer, err)
	}

	return s.store.Commit()
}

// payInvoice records a full payment against a submitted sales invoice. Quietly
// skipped when the store has no payment table or the account context is
// incomplete.
func (s *Seeder) payInvoice(ctx *FlowContext, customer string, si *store.Record) error {
	if ctx.Receivable == "" || ctx.Bank == "" {
		return nil
	}
	ok, err := s.store.TableExists("Payment Entry")
	if err != nil || !ok {
		return nil
	}

	amount, _ := si.Get("rounded_total").(float64)
	if amount == 0 {
		amount, _ = si.Get("grand_total").(float64)
	}
	pe := s.store.NewDraft("Payment Entry", map[string]any{
		"payment_type":    "Receive",
		"company":         ctx.Company,
		"posting_date":    fmtDate(s.pastDate(5)),
		"party_type":      "Customer",
		"party":           customer,
		"paid_from":       ctx.Receivable,
		"paid_to":         ctx.Bank,
		"paid_amount":     amount,
		"received_amount": amount,
	})
	pe.Append("references", map[string]any{
		"reference_doctype": "Sales Invoice",
		"reference_name":    si.Name,
		"allocated_amount":  amount,
	})
	return s.submitDraft(pe)
}

// submitDraft persists a draft and transitions it to Submitted in one step.
func (s *Seeder) submitDraft(rec *store.Record) error {
	if err := s.store.Insert(rec, true); err != nil {
		return err
	}
	return s.store.Submit(rec)
}

func lineAmount(line *store.Record) float64 {
	qty, _ := line.Get("qty").(float64)
	rate, _ := line.Get("rate").(float64)
	return qty * rate
}
