package statement

import "StockScope/internal/format"

// Reorder rebuilds the row sequence of t into canonical accounting
// presentation order for kind. Two passes: first every canonical name
// present in the input, in canonical relative order, each placed at most
// once; then every remaining input row in its original relative order.
// The row set is conserved exactly. Columns and values are untouched.
// A nil or empty table, or an Unspecified kind, passes through as-is.
func Reorder(t *Table, kind Kind) *Table {
	if t.Empty() {
		return t
	}
	order := CanonicalOrder(kind)
	if order == nil {
		return t
	}

	byLabel := make(map[string]int, len(t.Rows))
	for i, r := range t.Rows {
		if _, dup := byLabel[r.Label]; !dup {
			byLabel[r.Label] = i
		}
	}

	out := &Table{Columns: t.Columns, Rows: make([]Row, 0, len(t.Rows))}
	placed := make(map[string]bool, len(t.Rows))

	for _, name := range order {
		if placed[name] {
			continue
		}
		if i, ok := byLabel[name]; ok {
			out.Rows = append(out.Rows, t.Rows[i])
			placed[name] = true
		}
	}
	for _, r := range t.Rows {
		if !placed[r.Label] {
			out.Rows = append(out.Rows, r)
			placed[r.Label] = true
		}
	}
	return out
}

// Normalize produces a display-ready table: rows reordered per kind, every
// numeric cell formatted to K/M/B magnitudes, missing cells rendered as
// "N/A". It is a pure function: no I/O, no shared state, total over its
// input domain. A nil table yields nil; an empty table yields an empty
// display table.
func Normalize(t *Table, kind Kind) *DisplayTable {
	if t == nil {
		return nil
	}
	ordered := Reorder(t, kind)

	out := &DisplayTable{
		Columns: ordered.Columns,
		Rows:    make([]DisplayRow, 0, len(ordered.Rows)),
	}
	for _, r := range ordered.Rows {
		dr := DisplayRow{Label: r.Label, Cells: make([]string, len(r.Cells))}
		for i, c := range r.Cells {
			if c.Valid {
				v := c.Value
				dr.Cells[i] = format.Financial(&v)
			} else {
				dr.Cells[i] = format.NotAvailable
			}
		}
		out.Rows = append(out.Rows, dr)
	}
	return out
}
