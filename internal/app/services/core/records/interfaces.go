package records

import (
	"context"
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/exporter"
)

type ClinicalVisitRepository interface {
	FindAll(ctx context.Context) ([]models.ClinicalVisit, error)
}

type RecordUsecase interface {
	ListClinicalVisits(ctx context.Context) (*responses.RecordList, error)
	ExportClinicalVisits(ctx context.Context, format string) (*exporter.Document, error)
}
