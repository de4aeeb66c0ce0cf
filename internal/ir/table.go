package ir

// Table is a numbered table instruction. Title is the full caption
// ("Таблица 3 – Характеристики"); cells are already resolved. A table with
// zero columns renders as its caption only.
type Table struct {
	Number  int
	Title   string
	Headers []string
	Rows    [][]string
}

// Columns returns the table width.
func (t *Table) Columns() int {
	if len(t.Headers) > 0 {
		return len(t.Headers)
	}
	max := 0
	for _, r := range t.Rows {
		if len(r) > max {
			max = len(r)
		}
	}
	return max
}
