package records

import (
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/recordlist"
)

const (
	ColumnTreatment = "treatment"
	ColumnDiagnosis = "diagnosis"
	ColumnDate      = "date"
	ColumnDentist   = "dentist"
	ColumnNotes     = "notes"
)

const ClinicalVisitListTitle = "Dental Records"

// NewClinicalVisitScheme passes every field through unchanged; visits carry no
// derived status.
func NewClinicalVisitScheme() recordlist.Scheme[models.ClinicalVisit] {
	return recordlist.Scheme[models.ClinicalVisit]{
		Title: ClinicalVisitListTitle,
		Columns: []recordlist.Column[models.ClinicalVisit]{
			{Key: ColumnTreatment, Header: "Treatment", Value: func(v models.ClinicalVisit) string { return v.Treatment }},
			{Key: ColumnDiagnosis, Header: "Diagnosis", Value: func(v models.ClinicalVisit) string { return v.Diagnosis }},
			{Key: ColumnDate, Header: "Date", Kind: recordlist.KindDate, Value: func(v models.ClinicalVisit) string { return v.Date }},
			{Key: ColumnDentist, Header: "Dentist", Value: func(v models.ClinicalVisit) string { return v.Dentist }},
			{Key: ColumnNotes, Header: "Notes", Value: func(v models.ClinicalVisit) string { return v.Notes }},
		},
		Key: func(v models.ClinicalVisit) int { return v.ID },
	}
}
