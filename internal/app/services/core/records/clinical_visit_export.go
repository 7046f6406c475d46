package records

import "dentalclinic-service/internal/pkg/dto/responses"

type ClinicalVisitExportRow struct {
	Date      string `csv:"Date" json:"date"`
	Treatment string `csv:"Treatment" json:"treatment"`
	Diagnosis string `csv:"Diagnosis" json:"diagnosis"`
	Dentist   string `csv:"Dentist" json:"dentist"`
	Notes     string `csv:"Notes" json:"notes"`
}

func toClinicalVisitExportRows(list *responses.RecordList) []ClinicalVisitExportRow {
	rows := make([]ClinicalVisitExportRow, len(list.Rows))
	for i, row := range list.Rows {
		rows[i] = ClinicalVisitExportRow{
			Date:      row.Cell(ColumnDate),
			Treatment: row.Cell(ColumnTreatment),
			Diagnosis: row.Cell(ColumnDiagnosis),
			Dentist:   row.Cell(ColumnDentist),
			Notes:     row.Cell(ColumnNotes),
		}
	}
	return rows
}
