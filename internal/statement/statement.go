// Package statement implements the financial-statement normalization
// pipeline: canonical row ordering and magnitude formatting of raw
// statement tables fetched from the market-data provider.
package statement

// Kind selects which canonical row ordering applies to a table.
type Kind int

const (
	Unspecified Kind = iota
	Income
	BalanceSheet
	CashFlow
)

// ParseKind maps a statement kind token to its Kind. Anything unrecognized
// is treated as Unspecified, which disables reordering but not formatting.
func ParseKind(s string) Kind {
	switch s {
	case "income":
		return Income
	case "balance":
		return BalanceSheet
	case "cashflow":
		return CashFlow
	default:
		return Unspecified
	}
}

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case BalanceSheet:
		return "balance"
	case CashFlow:
		return "cashflow"
	default:
		return "unspecified"
	}
}

// Cell is an optional numeric value. Valid is false when the provider
// reported no figure for that line item and period.
type Cell struct {
	Value float64
	Valid bool
}

// Num returns a valid cell.
func Num(v float64) Cell { return Cell{Value: v, Valid: true} }

// Row is one line item across all period columns.
type Row struct {
	Label string
	Cells []Cell
}

// Table is a raw financial-statement table: rows are line items in
// presentation order, columns are fiscal periods in the source's order
// (typically most-recent-first). The normalizer never re-sorts columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// Empty reports whether the table carries no rows.
func (t *Table) Empty() bool { return t == nil || len(t.Rows) == 0 }

// Labels returns the row labels in presentation order.
func (t *Table) Labels() []string {
	if t == nil {
		return nil
	}
	labels := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		labels[i] = r.Label
	}
	return labels
}

// DisplayRow is a formatted line item ready for tabular rendering.
type DisplayRow struct {
	Label string   `json:"label"`
	Cells []string `json:"cells"`
}

// DisplayTable is the reordered, unit-formatted output of Normalize.
type DisplayTable struct {
	Columns []string     `json:"columns"`
	Rows    []DisplayRow `json:"rows"`
}
