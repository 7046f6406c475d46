package records

import (
	"context"
	"dentalclinic-service/internal/app/models"
)

type clinicalVisitMemoryRepository struct{}

func NewClinicalVisitMemoryRepository() ClinicalVisitRepository {
	return &clinicalVisitMemoryRepository{}
}

func (r *clinicalVisitMemoryRepository) FindAll(ctx context.Context) ([]models.ClinicalVisit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sampleClinicalVisits(), nil
}

func sampleClinicalVisits() []models.ClinicalVisit {
	return []models.ClinicalVisit{
		{
			ID:        1,
			Date:      "2024-12-10",
			Treatment: "Root Canal Treatment",
			Diagnosis: "Infected tooth #14",
			Dentist:   "Dr. Sarah Johnson",
			Notes:     "Successfully completed root canal procedure. Patient tolerated well.",
		},
		{
			ID:        2,
			Date:      "2024-11-05",
			Treatment: "Teeth Whitening",
			Diagnosis: "Tooth discoloration",
			Dentist:   "Dr. Sarah Johnson",
			Notes:     "Professional whitening treatment completed. Advised to avoid staining foods.",
		},
		{
			ID:        3,
			Date:      "2024-09-20",
			Treatment: "Dental Cleaning",
			Diagnosis: "Plaque buildup",
			Dentist:   "Dr. Sarah Johnson",
			Notes:     "Routine cleaning performed. Good oral hygiene maintained.",
		},
	}
}
