package models

// ClinicalVisit is one entry of a patient's dental treatment history.
type ClinicalVisit struct {
	ID        int
	Date      string
	Treatment string
	Diagnosis string
	Dentist   string
	Notes     string
}
