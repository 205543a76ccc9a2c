package api

// ScoreResponse is the reply of the scoring endpoint.
type ScoreResponse struct {
	Results Results `json:"Results"`
}

// Results holds the named output tables.
type Results struct {
	Output1 Output `json:"output1"`
}

// Output is one typed output table.
type Output struct {
	Type  string      `json:"type"`
	Value OutputTable `json:"value"`
}

// OutputTable carries parallel column names, column types and value rows.
type OutputTable struct {
	ColumnNames []string   `json:"ColumnNames"`
	ColumnTypes []string   `json:"ColumnTypes"`
	Values      [][]string `json:"Values"`
}

// Cell is one named, typed value of the output row.
type Cell struct {
	Name  string
	Type  string
	Value string
}

// Row returns the first output row, or nil if the service sent none.
func (r *ScoreResponse) Row() []string {
	if len(r.Results.Output1.Value.Values) == 0 {
		return nil
	}
	return r.Results.Output1.Value.Values[0]
}

// Consistent reports whether names, types and the first row share one length.
func (r *ScoreResponse) Consistent() bool {
	v := r.Results.Output1.Value
	row := r.Row()
	return len(v.ColumnNames) == len(v.ColumnTypes) && len(v.ColumnNames) == len(row)
}

// Cells zips names, types and the first row. It stops at the shortest sequence.
func (r *ScoreResponse) Cells() []Cell {
	v := r.Results.Output1.Value
	row := r.Row()

	n := len(row)
	if len(v.ColumnNames) < n {
		n = len(v.ColumnNames)
	}
	if len(v.ColumnTypes) < n {
		n = len(v.ColumnTypes)
	}

	cells := make([]Cell, 0, n)
	for i := 0; i < n; i++ {
		cells = append(cells, Cell{Name: v.ColumnNames[i], Type: v.ColumnTypes[i], Value: row[i]})
	}
	return cells
}

// ColumnIndex returns the position of the named output column, or -1.
func (r *ScoreResponse) ColumnIndex(name string) int {
	for i, n := range r.Results.Output1.Value.ColumnNames {
		if n == name {
			return i
		}
	}
	return -1
}
