package statement

// Canonical accounting presentation order per statement kind. These are
// static reference lists: rows found in the input are emitted in this
// relative order, anything the lists don't recognize trails in its original
// order. Near-synonyms (e.g. "Total Revenue" vs "Revenue") are listed
// separately because providers use either label.

var incomeOrder = []string{
	"Total Revenue", "Revenue", "Operating Revenue",
	"Cost Of Revenue", "Gross Profit",
	"Operating Expense", "Selling General And Administration", "Research And Development",
	"Operating Income", "EBITDA", "EBIT",
	"Interest Expense", "Interest Income", "Other Income Expense",
	"Pretax Income", "Income Before Tax", "Tax Provision",
	"Net Income From Continuing Operations", "Net Income",
	"Diluted EPS", "Basic EPS",
	"Diluted Average Shares", "Basic Average Shares",
}

var balanceSheetOrder = []string{
	// Assets
	"Total Assets", "Current Assets",
	"Cash And Cash Equivalents", "Cash Cash Equivalents And Short Term Investments",
	"Receivables", "Accounts Receivable", "Inventory", "Other Current Assets",
	"Total Non Current Assets", "Net PPE", "Gross PPE", "Properties",
	"Goodwill", "Other Intangible Assets", "Investments And Advances",
	// Liabilities
	"Total Liabilities Net Minority Interest",
	"Current Liabilities", "Accounts Payable", "Current Debt",
	"Other Current Liabilities",
	"Total Non Current Liabilities Net Minority Interest",
	"Long Term Debt", "Other Non Current Liabilities",
	// Equity
	"Stockholders Equity", "Total Equity Gross Minority Interest",
	"Common Stock", "Retained Earnings", "Treasury Stock",
	"Total Capitalization", "Share Issued",
}

var cashFlowOrder = []string{
	// Operating activities
	"Operating Cash Flow", "Cash Flow From Continuing Operating Activities",
	"Net Income From Continuing Operations", "Depreciation And Amortization",
	"Deferred Tax", "Stock Based Compensation",
	"Change In Working Capital", "Change In Receivables", "Change In Inventory",
	"Change In Payables And Accrued Expense",
	// Investing activities
	"Investing Cash Flow", "Cash Flow From Continuing Investing Activities",
	"Net PPE Purchase And Sale", "Purchase Of PPE",
	"Net Investment Purchase And Sale", "Purchase Of Investment",
	"Sale Of Investment",
	// Financing activities
	"Financing Cash Flow", "Cash Flow From Continuing Financing Activities",
	"Net Issuance Payments Of Debt", "Net Long Term Debt Issuance",
	"Net Short Term Debt Issuance", "Repurchase Of Capital Stock",
	"Common Stock Dividend Paid",
	// Summary
	"End Cash Position", "Beginning Cash Position",
	"Free Cash Flow",
}

// CanonicalOrder returns the standard presentation sequence for a kind.
// Unspecified has no canonical order.
func CanonicalOrder(kind Kind) []string {
	switch kind {
	case Income:
		return incomeOrder
	case BalanceSheet:
		return balanceSheetOrder
	case CashFlow:
		return cashFlowOrder
	default:
		return nil
	}
}
