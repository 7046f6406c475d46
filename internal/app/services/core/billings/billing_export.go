package billings

import "dentalclinic-service/internal/pkg/dto/responses"

type BillingExportRow struct {
	Patient     string `csv:"Patient" json:"patient"`
	Description string `csv:"Description" json:"description"`
	Amount      string `csv:"Amount" json:"amount"`
	Date        string `csv:"Date" json:"date"`
	Status      string `csv:"Status" json:"status"`
}

func toBillingExportRows(list *responses.RecordList) []BillingExportRow {
	rows := make([]BillingExportRow, len(list.Rows))
	for i, row := range list.Rows {
		rows[i] = BillingExportRow{
			Patient:     row.Cell(ColumnPatient),
			Description: row.Cell(ColumnDescription),
			Amount:      row.Cell(ColumnAmount),
			Date:        row.Cell(ColumnDate),
			Status:      row.Cell(ColumnStatus),
		}
	}
	return rows
}
