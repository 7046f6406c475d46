package billings

import (
	"context"
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/exporter"
)

type BillingRepository interface {
	FindAll(ctx context.Context) ([]models.Billing, error)
}

type BillingUsecase interface {
	ListBillings(ctx context.Context) (*responses.RecordList, error)
	ExportBillings(ctx context.Context, format string) (*exporter.Document, error)
}
