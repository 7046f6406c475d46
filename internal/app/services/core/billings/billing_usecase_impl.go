package billings

import (
	"context"
	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/exporter"
	"dentalclinic-service/internal/pkg/formatter"
	"dentalclinic-service/internal/pkg/recordlist"
	"errors"
	"time"
)

type billingUsecase struct {
	BillingRepository BillingRepository
	Formatter         *formatter.Formatter
	InternalConfig    *config.InternalConfig
	Now               func() time.Time
}

func NewBillingUsecase(
	billingRepository BillingRepository,
	displayFormatter *formatter.Formatter,
	internalConfig *config.InternalConfig,
) BillingUsecase {
	return &billingUsecase{
		BillingRepository: billingRepository,
		Formatter:         displayFormatter,
		InternalConfig:    internalConfig,
		Now:               time.Now,
	}
}

func (uc *billingUsecase) ListBillings(ctx context.Context) (*responses.RecordList, error) {
	billings, err := uc.BillingRepository.FindAll(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, exceptions.ErrLoadBillings(err)
	}

	scheme := NewBillingScheme(uc.Formatter, uc.InternalConfig.App.CurrencyLabel)
	list := recordlist.Render(billings, scheme)
	list.Summary = uc.summarize(billings)

	return &list, nil
}

func (uc *billingUsecase) ExportBillings(ctx context.Context, format string) (*exporter.Document, error) {
	list, err := uc.ListBillings(ctx)
	if err != nil {
		return nil, err
	}

	return exporter.Export(exporter.Request{
		List:       *list,
		Rows:       toBillingExportRows(list),
		Format:     format,
		FilePrefix: constvars.ExportFilePrefixBillings,
		Now:        uc.Now(),
	})
}

func (uc *billingUsecase) summarize(billings []models.Billing) *responses.BillingSummary {
	summary := &responses.BillingSummary{Total: len(billings)}

	var outstanding int64
	for _, eachBilling := range billings {
		if eachBilling.Paid {
			summary.Paid++
			continue
		}
		summary.Pending++
		outstanding += eachBilling.Amount
	}
	summary.OutstandingAmount = uc.Formatter.Amount(outstanding)

	return summary
}
