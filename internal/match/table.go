package match

// Table is an ordered sequence of matches. Position is the only identity.
type Table []Match

// NewYearTable builds the table for one tournament year, repeating year on every row
func NewYearTable(cols Columns, year int) (Table, error) {
	n, err := cols.Len()
	if err != nil {
		return nil, err
	}

	table := make(Table, n)
	for i := 0; i < n; i++ {
		table[i] = Match{
			Home:  cols.Home[i],
			Score: cols.Score[i],
			Away:  cols.Away[i],
			Year:  year,
		}
	}
	return table, nil
}

// Concat joins tables row-wise, keeping order within and across tables.
// The result never aliases the inputs.
func Concat(tables ...Table) Table {
	total := 0
	for _, t := range tables {
		total += len(t)
	}

	combined := make(Table, 0, total)
	for _, t := range tables {
		combined = append(combined, t...)
	}
	return combined
}
