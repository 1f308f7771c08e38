// Package catalog holds the builtin record-type definitions the demo store
// ships with, grouped by module, plus a loader for user-supplied YAML
// definitions.
package catalog

import (
	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

// Modules lists the builtin modules in report order.
var Modules = []string{"Core", "Accounts", "Buying", "Selling", "Stock"}

// Builtin returns the full builtin catalog. The returned metas are fresh
// copies; callers may hold them for the duration of a run.
func Builtin() []*store.Meta {
	all := make([]*store.Meta, 0, len(builtin))
	all = append(all, builtin...)
	return all
}

// Find returns the builtin meta with the given record type name, or nil.
func Find(name string) *store.Meta {
	for _, m := range builtin {
		if m.Name == name {
			return m
		}
	}
	return nil
}

var builtin = []*store.Meta{
	// --- Core ---
	{
		Name: "Company", Module: "Core", Naming: "field:company_name",
		Fields: []store.FieldDef{
			{Fieldname: "company_name", Fieldtype: store.TypeData, Label: "Company Name", Reqd: true},
			{Fieldname: "abbr", Fieldtype: store.TypeData, Label: "Abbreviation", Reqd: true},
			{Fieldname: "default_currency", Fieldtype: store.TypeLink, Label: "Default Currency", Options: "Currency"},
			{Fieldname: "country", Fieldtype: store.TypeData, Label: "Country"},
			{Fieldname: "domain_section", Fieldtype: store.TypeSectionBreak, Label: "Domain"},
			{Fieldname: "website", Fieldtype: store.TypeData, Label: "Website"},
		},
	},
	{
		Name: "Currency", Module: "Core", Naming: "field:currency_name",
		Fields: []store.FieldDef{
			{Fieldname: "currency_name", Fieldtype: store.TypeData, Label: "Currency Name", Reqd: true},
			{Fieldname: "symbol", Fieldtype: store.TypeData, Label: "Symbol"},
			{Fieldname: "enabled", Fieldtype: store.TypeCheck, Label: "Enabled"},
		},
	},
	{
		Name: "User", Module: "Core", Naming: "field:email",
		Fields: []store.FieldDef{
			{Fieldname: "email", Fieldtype: store.TypeData, Label: "Email", Reqd: true},
			{Fieldname: "first_name", Fieldtype: store.TypeData, Label: "First Name", Reqd: true},
			{Fieldname: "last_name", Fieldtype: store.TypeData, Label: "Last Name"},
			{Fieldname: "enabled", Fieldtype: store.TypeCheck, Label: "Enabled"},
		},
	},

	// --- Accounts ---
	{
		Name: "Account", Module: "Accounts", Naming: "field:account_name",
		Fields: []store.FieldDef{
			{Fieldname: "account_name", Fieldtype: store.TypeData, Label: "Account Name", Reqd: true},
			{Fieldname: "company", Fieldtype: store.TypeLink, Label: "Company", Options: "Company", Reqd: true},
			{Fieldname: "account_type", Fieldtype: store.TypeSelect, Label: "Account Type", Options: "\nBank\nCash\nReceivable\nPayable\nStock\nTax"},
			{Fieldname: "root_type", Fieldtype: store.TypeSelect, Label: "Root Type", Options: "Asset\nLiability\nEquity\nIncome\nExpense"},
			{Fieldname: "parent_account", Fieldtype: store.TypeLink, Label: "Parent Account", Options: "Account"},
			{Fieldname: "is_group", Fieldtype: store.TypeCheck, Label: "Is Group"},
		},
	},
	{
		Name: "Cost Center", Module: "Accounts", Naming: "field:cost_center_name",
		Fields: []store.FieldDef{
			{Fieldname: "cost_center_name", Fieldtype: store.TypeData, Label: "Cost Center Name", Reqd: true},
			{Fieldname: "company", Fieldtype: store.TypeLink, Label: "Company", Options: "Company", Reqd: true},
			{Fieldname: "parent_cost_center", Fieldtype: store.TypeLink, Label: "Parent Cost Center", Options: "Cost Center"},
			{Fieldname: "is_group", Fieldtype: store.TypeCheck, Label: "Is Group"},
		},
	},
	{
		Name: "Purchase Invoice", Module: "Accounts", Naming: "hash:ACC-PINV",
		Fields: []store.FieldDef{
			{Fieldname: "naming_series", Fieldtype: store.TypeSelect, Label: "Series", Options: "ACC-PINV-"},
			{Fieldname: "supplier", Fieldtype: store.TypeLink, Label: "Supplier", Options: "Supplier", Reqd: true},
			{Fieldname: "company", Fieldtype: store.TypeLink, Label: "Company", Options: "Company", Reqd: true},
			{Fieldname: "posting_date", Fieldtype: store.TypeDate, Label: "Posting Date", Reqd: true},
			{Fieldname: "due_date", Fieldtype: store.TypeDate, Label: "Due Date"},
			{Fieldname: "items_section", Fieldtype: store.TypeSectionBreak, Label: "Items"},
			{Fieldname: "items", Fieldtype: store.TypeTable, Label: "Items", Options: "Purchase Invoice Item", Reqd: true},
			{Fieldname: "totals_section", Fieldtype: store.TypeSectionBreak, Label: "Totals"},
			{Fieldname: "grand_total", Fieldtype: store.TypeCurrency, Label: "Grand Total", ReadOnly: true},
			{Fieldname: "rounded_total", Fieldtype: store.TypeCurrency, Label: "Rounded Total", ReadOnly: true},
			{Fieldname: "amended_from", Fieldtype: store.TypeLink, Label: "Amended From", Options: "Purchase Invoice", ReadOnly: true},
		},
	},
	{
		Name: "Purchase Invoice Item", Module: "Accounts", Naming: "hash:PINV-ITEM", IsChildTable: true,
		Fields: []store.FieldDef{
			{Fieldname: "item_code", Fieldtype: store.TypeLink, Label: "Item Code", Options: "Item", Reqd: true},
			{Fieldname: "qty", Fieldtype: store.TypeFloat, Label: "Quantity", Reqd: true},
			{Fieldname: "rate", Fieldtype: store.TypeCurrency, Label: "Rate"},
			{Fieldname: "amount", Fieldtype: store.TypeCurrency, Label: "Amount", ReadOnly: true},
			{Fieldname: "expense_account", Fieldtype: store.TypeLink, Label: "Expense Account", Options: "Account"},
			{Fieldname: "cost_center", Fieldtype: store.TypeLink, Label: "Cost Center", Options: "Cost Center"},
			{Fieldname: "purchase_receipt", Fieldtype: store.TypeLink, Label: "Purchase Receipt", Options: "Purchase Receipt", ReadOnly: true},
			{Fieldname: "pr_detail", Fieldtype: store.TypeData, Label: "Purchase Receipt Detail", ReadOnly: true},
		},
	},
	{
		Name: "Sales Invoice", Module: "Accounts", Naming: "hash:ACC-SINV",
		Fields: []store.FieldDef{
			{Fieldname: "naming_series", Fieldtype: store.TypeSelect, Label: "Series", Options: "ACC-SINV-"},
			{Fieldname: "customer", Fieldtype: store.TypeLink, Label: "Customer", Options: "Customer", Reqd: true},
			{Fieldname: "company", Fieldtype: store.TypeLink, Label: "Company", Options: "Company", Reqd: true},
			{Fieldname: "posting_date", Fieldtype: store.TypeDate, Label: "Posting Date", Reqd: true},
			{Fieldname: "due_date", Fieldtype: store.TypeDate, Label: "Due Date"},
			{Fieldname: "items_section", Fieldtype: store.TypeSectionBreak, Label: "Items"},
			{Fieldname: "items", Fieldtype: store.TypeTable, Label: "Items", Options: "Sales Invoice Item", Reqd: true},
			{Fieldname: "totals_section", Fieldtype: store.TypeSectionBreak, Label: "Totals"},
			{Fieldname: "grand_total", Fieldtype: store.TypeCurrency, Label: "Grand Total", ReadOnly: true},
			{Fieldname: "rounded_total", Fieldtype: store.TypeCurrency, Label: "Rounded Total", ReadOnly: true},
			{Fieldname: "amended_from", Fieldtype: store.TypeLink, Label: "Amended From", Options: "Sales Invoice", ReadOnly: true},
		},
	},
	{
		Name: "Sales Invoice Item", Module: "Accounts", Naming: "hash:SINV-ITEM", IsChildTable: true,
		Fields: []store.FieldDef{
			{Fieldname: "item_code", Fieldtype: store.TypeLink, Label: "Item Code", Options: "Item", Reqd: true},
			{Fieldname: "qty", Fieldtype: store.TypeFloat, Label: "Quantity", Reqd: true},
			{Fieldname: "rate", Fieldtype: store.TypeCurrency, Label: "Rate"},
			{Fieldname: "amount", Fieldtype: store.TypeCurrency, Label: "Amount", ReadOnly: true},
			{Fieldname: "income_account", Fieldtype: store.TypeLink, Label: "Income Account", Options: "Account"},
			{Fieldname: "cost_center", Fieldtype: store.TypeLink, Label: "Cost Center", Options: "Cost Center"},
			{Fieldname: "sales_order", Fieldtype: store.TypeLink, Label: "Sales Order", Options: "Sales Order", ReadOnly: true},
			{Fieldname: "so_detail", Fieldtype: store.TypeData, Label: "Sales Order Detail", ReadOnly: true},
		},
	},
	{
		Name: "Payment Entry", Module: "Accounts", Naming: "hash:ACC-PAY",
		Fields: []store.FieldDef{
			{Fieldname: "naming_series", Fieldtype: store.TypeSelect, Label: "Series", Options: "ACC-PAY-"},
			{Fieldname: "payment_type", Fieldtype: store.TypeSelect, Label: "Payment Type", Options: "Receive\nPay\nInternal Transfer", Reqd: true},
			{Fieldname: "company", Fieldtype: store.TypeLink, Label: "Company", Options: "Company", Reqd: true},
			{Fieldname: "posting_date", Fieldtype: store.TypeDate, Label: "Posting Date", Reqd: true},
			{Fieldname: "party_type", Fieldtype: store.TypeSelect, Label: "Party Type", Options: "Customer\nSupplier"},
			{Fieldname: "party", Fieldtype: store.TypeData, Label: "Party"},
			{Fieldname: "accounts_section", Fieldtype: store.TypeSectionBreak, Label: "Accounts"},
			{Fieldname: "paid_from", Fieldtype: store.TypeLink, Label: "Paid From", Options: "Account"},
			{Fieldname: "paid_to", Fieldtype: store.TypeLink, Label: "Paid To", Options: "Account"},
			{Fieldname: "paid_amount", Fieldtype: store.TypeCurrency, Label: "Paid Amount"},
			{Fieldname: "received_amount", Fieldtype: store.TypeCurrency, Label: "Received Amount"},
			{Fieldname: "references", Fieldtype: store.TypeTable, Label: "References", Options: "Payment Entry Reference"},
			{Fieldname: "amended_from", Fieldtype: store.TypeLink, Label: "Amended From", Options: "Payment Entry", ReadOnly: true},
		},
	},
	{
		Name: "Payment Entry Reference", Module: "Accounts", Naming: "hash:PAY-REF", IsChildTable: true,
		Fields: []store.FieldDef{
			{Fieldname: "reference_doctype", Fieldtype: store.TypeData, Label: "Reference Type", Reqd: true},
			{Fieldname: "reference_name", Fieldtype: store.TypeData, Label: "Reference Name", Reqd: true},
			{Fieldname: "allocated_amount", Fieldtype: store.TypeCurrency, Label: "Allocated Amount"},
		},
	},

	// --- Buying ---
	{
		Name: "Supplier", Module: "Buying", Naming: "field:supplier_name",
		Fields: []store.FieldDef{
			{Fieldname: "supplier_name", Fieldtype: store.TypeData, Label: "Supplier Name", Reqd: true},
			{Fieldname: "supplier_group", Fieldtype: store.TypeLink, Label: "Supplier Group", Options: "Supplier Group"},
			{Fieldname: "supplier_type", Fieldtype: store.TypeSelect, Label: "Supplier Type", Options: "Company\nIndividual"},
			{Fieldname: "country", Fieldtype: store.TypeData, Label: "Country"},
			{Fieldname: "disabled", Fieldtype: store.TypeCheck, Label: "Disabled"},
		},
	},
	{
		Name: "Supplier Group", Module: "Buying", Naming: "field:supplier_group_name",
		Fields: []store.FieldDef{
			{Fieldname: "supplier_group_name", Fieldtype: store.TypeData, Label: "Supplier Group Name", Reqd: true},
			{Fieldname: "parent_supplier_group", Fieldtype: store.TypeLink, Label: "Parent Supplier Group", Options: "Supplier Group"},
			{Fieldname: "is_group", Fieldtype: store.TypeCheck, Label: "Is Group"},
		},
	},
	{
		Name: "Purchase Order", Module: "Buying", Naming: "hash:PUR-ORD",
		Fields: []store.FieldDef{
			{Fieldname: "naming_series", Fieldtype: store.TypeSelect, Label: "Series", Options: "PUR-ORD-"},
			{Fieldname: "supplier", Fieldtype: store.TypeLink, Label: "Supplier", Options: "Supplier", Reqd: true},
			{Fieldname: "company", Fieldtype: store.TypeLink, Label: "Company", Options: "Company", Reqd: true},
			{Fieldname: "transaction_date", Fieldtype: store.TypeDate, Label: "Date", Reqd: true},
			{Fieldname: "schedule_date", Fieldtype: store.TypeDate, Label: "Required By"},
			{Fieldname: "buying_price_list", Fieldtype: store.TypeLink, Label: "Price List", Options: "Price List"},
			{Fieldname: "items_section", Fieldtype: store.TypeSectionBreak, Label: "Items"},
			{Fieldname: "items", Fieldtype: store.TypeTable, Label: "Items", Options: "Purchase Order Item", Reqd: true},
			{Fieldname: "amended_from", Fieldtype: store.TypeLink, Label: "Amended From", Options: "Purchase Order", ReadOnly: true},
		},
	},
	{
		Name: "Purchase Order Item", Module: "Buying", Naming: "hash:PO-ITEM", IsChildTable: true,
		Fields: []store.FieldDef{
			{Fieldname: "item_code", Fieldtype: store.TypeLink, Label: "Item Code", Options: "Item", Reqd: true},
			{Fieldname: "item_name", Fieldtype: store.TypeData, Label: "Item Name"},
			{Fieldname: "qty", Fieldtype: store.TypeFloat, Label: "Quantity", Reqd: true},
			{Fieldname: "rate", Fieldtype: store.TypeCurrency, Label: "Rate"},
			{Fieldname: "amount", Fieldtype: store.TypeCurrency, Label: "Amount", ReadOnly: true},
			{Fieldname: "schedule_date", Fieldtype: store.TypeDate, Label: "Required By"},
			{Fieldname: "warehouse", Fieldtype: store.TypeLink, Label: "Warehouse", Options: "Warehouse"},
		},
	},

	// --- Selling ---
	{
		Name: "Customer", Module: "Selling", Naming: "field:customer_name",
		Fields: []store.FieldDef{
			{Fieldname: "customer_name", Fieldtype: store.TypeData, Label: "Customer Name", Reqd: true},
			{Fieldname: "customer_group", Fieldtype: store.TypeLink, Label: "Customer Group", Options: "Customer Group"},
			{Fieldname: "territory", Fieldtype: store.TypeLink, Label: "Territory", Options: "Territory"},
			{Fieldname: "customer_type", Fieldtype: store.TypeSelect, Label: "Customer Type", Options: "Company\nIndividual"},
			{Fieldname: "disabled", Fieldtype: store.TypeCheck, Label: "Disabled"},
		},
	},
	{
		Name: "Customer Group", Module: "Selling", Naming: "field:customer_group_name",
		Fields: []store.FieldDef{
			{Fieldname: "customer_group_name", Fieldtype: store.TypeData, Label: "Customer Group Name", Reqd: true},
			{Fieldname: "parent_customer_group", Fieldtype: store.TypeLink, Label: "Parent Customer Group", Options: "Customer Group"},
			{Fieldname: "is_group", Fieldtype: store.TypeCheck, Label: "Is Group"},
		},
	},
	{
		Name: "Territory", Module: "Selling", Naming: "field:territory_name",
		Fields: []store.FieldDef{
			{Fieldname: "territory_name", Fieldtype: store.TypeData, Label: "Territory Name", Reqd: true},
			{Fieldname: "parent_territory", Fieldtype: store.TypeLink, Label: "Parent Territory", Options: "Territory"},
			{Fieldname: "is_group", Fieldtype: store.TypeCheck, Label: "Is Group"},
		},
	},
	{
		Name: "Price List", Module: "Selling", Naming: "field:price_list_name",
		Fields: []store.FieldDef{
			{Fieldname: "price_list_name", Fieldtype: store.TypeData, Label: "Price List Name", Reqd: true},
			{Fieldname: "currency", Fieldtype: store.TypeLink, Label: "Currency", Options: "Currency"},
			{Fieldname: "selling", Fieldtype: store.TypeCheck, Label: "Selling"},
			{Fieldname: "buying", Fieldtype: store.TypeCheck, Label: "Buying"},
			{Fieldname: "enabled", Fieldtype: store.TypeCheck, Label: "Enabled"},
		},
	},
	{
		Name: "Sales Order", Module: "Selling", Naming: "hash:SAL-ORD",
		Fields: []store.FieldDef{
			{Fieldname: "naming_series", Fieldtype: store.TypeSelect, Label: "Series", Options: "SAL-ORD-"},
			{Fieldname: "customer", Fieldtype: store.TypeLink, Label: "Customer", Options: "Customer", Reqd: true},
			{Fieldname: "company", Fieldtype: store.TypeLink, Label: "Company", Options: "Company", Reqd: true},
			{Fieldname: "transaction_date", Fieldtype: store.TypeDate, Label: "Date", Reqd: true},
			{Fieldname: "delivery_date", Fieldtype: store.TypeDate, Label: "Delivery Date"},
			{Fieldname: "selling_price_list", Fieldtype: store.TypeLink, Label: "Price List", Options: "Price List"},
			{Fieldname: "items_section", Fieldtype: store.TypeSectionBreak, Label: "Items"},
			{Fieldname: "items", Fieldtype: store.TypeTable, Label: "Items", Options: "Sales Order Item", Reqd: true},
			{Fieldname: "amended_from", Fieldtype: store.TypeLink, Label: "Amended From", Options: "Sales Order", ReadOnly: true},
		},
	},
	{
		Name: "Sales Order Item", Module: "Selling", Naming: "hash:SO-ITEM", IsChildTable: true,
		Fields: []store.FieldDef{
			{Fieldname: "item_code", Fieldtype: store.TypeLink, Label: "Item Code", Options: "Item", Reqd: true},
			{Fieldname: "item_name", Fieldtype: store.TypeData, Label: "Item Name"},
			{Fieldname: "qty", Fieldtype: store.TypeFloat, Label: "Quantity", Reqd: true},
			{Fieldname: "rate", Fieldtype: store.TypeCurrency, Label: "Rate"},
			{Fieldname: "amount", Fieldtype: store.TypeCurrency, Label: "Amount", ReadOnly: true},
			{Fieldname: "delivery_date", Fieldtype: store.TypeDate, Label: "Delivery Date"},
			{Fieldname: "warehouse", Fieldtype: store.TypeLink, Label: "Warehouse", Options: "Warehouse"},
		},
	},
	{
		Name: "Selling Settings", Module: "Selling", IsSingle: true,
		Fields: []store.FieldDef{
			{Fieldname: "cust_master_name", Fieldtype: store.TypeSelect, Label: "Customer Naming By", Options: "Customer Name\nNaming Series"},
			{Fieldname: "territory", Fieldtype: store.TypeLink, Label: "Default Territory", Options: "Territory"},
		},
	},

	// --- Stock ---
	{
		Name: "Item", Module: "Stock", Naming: "field:item_code",
		Fields: []store.FieldDef{
			{Fieldname: "item_code", Fieldtype: store.TypeData, Label: "Item Code", Reqd: true},
			{Fieldname: "item_name", Fieldtype: store.TypeData, Label: "Item Name"},
			{Fieldname: "item_group", Fieldtype: store.TypeLink, Label: "Item Group", Options: "Item Group", Reqd: true},
			{Fieldname: "stock_uom", Fieldtype: store.TypeLink, Label: "Default Unit of Measure", Options: "UOM"},
			{Fieldname: "is_stock_item", Fieldtype: store.TypeCheck, Label: "Maintain Stock"},
			{Fieldname: "standard_rate", Fieldtype: store.TypeCurrency, Label: "Standard Selling Rate"},
			{Fieldname: "description", Fieldtype: store.TypeLongText, Label: "Description"},
			{Fieldname: "disabled", Fieldtype: store.TypeCheck, Label: "Disabled"},
		},
	},
	{
		Name: "Item Group", Module: "Stock", Naming: "field:item_group_name",
		Fields: []store.FieldDef{
			{Fieldname: "item_group_name", Fieldtype: store.TypeData, Label: "Item Group Name", Reqd: true},
			{Fieldname: "parent_item_group", Fieldtype: store.TypeLink, Label: "Parent Item Group", Options: "Item Group"},
			{Fieldname: "is_group", Fieldtype: store.TypeCheck, Label: "Is Group"},
		},
	},
	{
		Name: "UOM", Module: "Stock", Naming: "field:uom_name",
		Fields: []store.FieldDef{
			{Fieldname: "uom_name", Fieldtype: store.TypeData, Label: "UOM Name", Reqd: true},
			{Fieldname: "must_be_whole_number", Fieldtype: store.TypeCheck, Label: "Must be Whole Number"},
		},
	},
	{
		Name: "Warehouse", Module: "Stock", Naming: "field:warehouse_name",
		Fields: []store.FieldDef{
			{Fieldname: "warehouse_name", Fieldtype: store.TypeData, Label: "Warehouse Name", Reqd: true},
			{Fieldname: "company", Fieldtype: store.TypeLink, Label: "Company", Options: "Company", Reqd: true},
			{Fieldname: "parent_warehouse", Fieldtype: store.TypeLink, Label: "Parent Warehouse", Options: "Warehouse"},
			{Fieldname: "is_group", Fieldtype: store.TypeCheck, Label: "Is Group"},
			{Fieldname: "disabled", Fieldtype: store.TypeCheck, Label: "Disabled"},
		},
	},
	{
		Name: "Stock Entry", Module: "Stock", Naming: "hash:MAT-STE",
		Fields: []store.FieldDef{
			{Fieldname: "naming_series", Fieldtype: store.TypeSelect, Label: "Series", Options: "MAT-STE-"},
			{Fieldname: "stock_entry_type", Fieldtype: store.TypeSelect, Label: "Stock Entry Type", Options: "Material Receipt\nMaterial Issue\nMaterial Transfer"},
			{Fieldname: "company", Fieldtype: store.TypeLink, Label: "Company", Options: "Company", Reqd: true},
			{Fieldname: "posting_date", Fieldtype: store.TypeDate, Label: "Posting Date"},
			{Fieldname: "items_section", Fieldtype: store.TypeSectionBreak, Label: "Items"},
			{Fieldname: "items", Fieldtype: store.TypeTable, Label: "Items", Options: "Stock Entry Item", Reqd: true},
			{Fieldname: "remarks", Fieldtype: store.TypeSmallText, Label: "Remarks"},
			{Fieldname: "amended_from", Fieldtype: store.TypeLink, Label: "Amended From", Options: "Stock Entry", ReadOnly: true},
		},
	},
	{
		Name: "Stock Entry Item", Module: "Stock", Naming: "hash:STE-ITEM", IsChildTable: true,
		Fields: []store.FieldDef{
			{Fieldname: "item_code", Fieldtype: store.TypeLink, Label: "Item Code", Options: "Item", Reqd: true},
			{Fieldname: "qty", Fieldtype: store.TypeFloat, Label: "Quantity", Reqd: true},
			{Fieldname: "basic_rate", Fieldtype: store.TypeCurrency, Label: "Basic Rate"},
			{Fieldname: "s_warehouse", Fieldtype: store.TypeLink, Label: "Source Warehouse", Options: "Warehouse"},
			{Fieldname: "t_warehouse", Fieldtype: store.TypeLink, Label: "Target Warehouse", Options: "Warehouse"},
		},
	},
	{
		Name: "Purchase Receipt", Module: "Stock", Naming: "hash:MAT-PRE",
		Fields: []store.FieldDef{
			{Fieldname: "naming_series", Fieldtype: store.TypeSelect, Label: "Series", Options: "MAT-PRE-"},
			{Fieldname: "supplier", Fieldtype: store.TypeLink, Label: "Supplier", Options: "Supplier", Reqd: true},
			{Fieldname: "company", Fieldtype: store.TypeLink, Label: "Company", Options: "Company", Reqd: true},
			{Fieldname: "posting_date", Fieldtype: store.TypeDate, Label: "Posting Date", Reqd: true},
			{Fieldname: "items_section", Fieldtype: store.TypeSectionBreak, Label: "Items"},
			{Fieldname: "items", Fieldtype: store.TypeTable, Label: "Items", Options: "Purchase Receipt Item", Reqd: true},
			{Fieldname: "amended_from", Fieldtype: store.TypeLink, Label: "Amended From", Options: "Purchase Receipt", ReadOnly: true},
		},
	},
	{
		Name: "Purchase Receipt Item", Module: "Stock", Naming: "hash:PRE-ITEM", IsChildTable: true,
		Fields: []store.FieldDef{
			{Fieldname: "item_code", Fieldtype: store.TypeLink, Label: "Item Code", Options: "Item", Reqd: true},
			{Fieldname: "qty", Fieldtype: store.TypeFloat, Label: "Quantity", Reqd: true},
			{Fieldname: "rate", Fieldtype: store.TypeCurrency, Label: "Rate"},
			{Fieldname: "warehouse", Fieldtype: store.TypeLink, Label: "Warehouse", Options: "Warehouse"},
			{Fieldname: "purchase_order", Fieldtype: store.TypeLink, Label: "Purchase Order", Options: "Purchase Order", ReadOnly: true},
			{Fieldname: "po_detail", Fieldtype: store.TypeData, Label: "Purchase Order Item", ReadOnly: true},
		},
	},
	{
		Name: "Delivery Note", Module: "Stock", Naming: "hash:MAT-DN",
		Fields: []store.FieldDef{
			{Fieldname: "naming_series", Fieldtype: store.TypeSelect, Label: "Series", Options: "MAT-DN-"},
			{Fieldname: "customer", Fieldtype: store.TypeLink, Label: "Customer", Options: "Customer", Reqd: true},
			{Fieldname: "company", Fieldtype: store.TypeLink, Label: "Company", Options: "Company", Reqd: true},
			{Fieldname: "posting_date", Fieldtype: store.TypeDate, Label: "Posting Date", Reqd: true},
			{Fieldname: "items_section", Fieldtype: store.TypeSectionBreak, Label: "Items"},
			{Fieldname: "items", Fieldtype: store.TypeTable, Label: "Items", Options: "Delivery Note Item", Reqd: true},
			{Fieldname: "amended_from", Fieldtype: store.TypeLink, Label: "Amended From", Options: "Delivery Note", ReadOnly: true},
		},
	},
	{
		Name: "Delivery Note Item", Module: "Stock", Naming: "hash:DN-ITEM", IsChildTable: true,
		Fields: []store.FieldDef{
			{Fieldname: "item_code", Fieldtype: store.TypeLink, Label: "Item Code", Options: "Item", Reqd: true},
			{Fieldname: "qty", Fieldtype: store.TypeFloat, Label: "Quantity", Reqd: true},
			{Fieldname: "rate", Fieldtype: store.TypeCurrency, Label: "Rate"},
			{Fieldname: "warehouse", Fieldtype: store.TypeLink, Label: "Warehouse", Options: "Warehouse"},
			{Fieldname: "against_sales_order", Fieldtype: store.TypeLink, Label: "Against Sales Order", Options: "Sales Order", ReadOnly: true},
			{Fieldname: "so_detail", Fieldtype: store.TypeData, Label: "Sales Order Item", ReadOnly: true},
		},
	},
	{
		Name: "Stock Settings", Module: "Stock", IsSingle: true,
		Fields: []store.FieldDef{
			{Fieldname: "item_naming_by", Fieldtype: store.TypeSelect, Label: "Item Naming By", Options: "Item Code\nNaming Series"},
			{Fieldname: "default_warehouse", Fieldtype: store.TypeLink, Label: "Default Warehouse", Options: "Warehouse"},
		},
	},
}
