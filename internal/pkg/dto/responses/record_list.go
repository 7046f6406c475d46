package responses

// RecordList is the display form of a list of records: one row per record,
// in input order, with every field already projected to a string.
type RecordList struct {
	Title   string          `json:"title"`
	Columns []RecordColumn  `json:"columns"`
	Rows    []RecordRow     `json:"rows"`
	Summary *BillingSummary `json:"summary,omitempty"`
}

type RecordColumn struct {
	Key    string `json:"key"`
	Header string `json:"header"`
	Kind   string `json:"kind,omitempty"`
}

type RecordRow struct {
	Key    int           `json:"key"`
	Cells  []RecordCell  `json:"cells"`
	Status *RecordStatus `json:"status,omitempty"`
}

type RecordCell struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type RecordStatus struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

type BillingSummary struct {
	Total             int    `json:"total"`
	Paid              int    `json:"paid"`
	Pending           int    `json:"pending"`
	OutstandingAmount string `json:"outstanding_amount"`
}

// Cell returns the display value of the column key, or "" when absent.
func (r RecordRow) Cell(key string) string {
	for _, cell := range r.Cells {
		if cell.Key == key {
			return cell.Value
		}
	}
	return ""
}
