package records

import (
	"context"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/exporter"
	"dentalclinic-service/internal/pkg/recordlist"
	"errors"
	"time"
)

type recordUsecase struct {
	ClinicalVisitRepository ClinicalVisitRepository
	Now                     func() time.Time
}

func NewRecordUsecase(clinicalVisitRepository ClinicalVisitRepository) RecordUsecase {
	return &recordUsecase{
		ClinicalVisitRepository: clinicalVisitRepository,
		Now:                     time.Now,
	}
}

func (uc *recordUsecase) ListClinicalVisits(ctx context.Context) (*responses.RecordList, error) {
	visits, err := uc.ClinicalVisitRepository.FindAll(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, exceptions.ErrLoadClinicalVisits(err)
	}

	list := recordlist.Render(visits, NewClinicalVisitScheme())
	return &list, nil
}

func (uc *recordUsecase) ExportClinicalVisits(ctx context.Context, format string) (*exporter.Document, error) {
	list, err := uc.ListClinicalVisits(ctx)
	if err != nil {
		return nil, err
	}

	return exporter.Export(exporter.Request{
		List:       *list,
		Rows:       toClinicalVisitExportRows(list),
		Format:     format,
		FilePrefix: constvars.ExportFilePrefixRecords,
		Now:        uc.Now(),
	})
}
