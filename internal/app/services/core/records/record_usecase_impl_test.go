package records

import (
	"context"
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockClinicalVisitRepository struct {
	mock.Mock
}

func (m *MockClinicalVisitRepository) FindAll(ctx context.Context) ([]models.ClinicalVisit, error) {
	args := m.Called(ctx)
	visits, _ := args.Get(0).([]models.ClinicalVisit)
	return visits, args.Error(1)
}

func newTestRecordUsecase(repository ClinicalVisitRepository) *recordUsecase {
	uc := NewRecordUsecase(repository).(*recordUsecase)
	uc.Now = func() time.Time { return time.Date(2025, time.January, 20, 8, 0, 0, 0, time.UTC) }
	return uc
}

func TestRecordUsecase_ListClinicalVisits(t *testing.T) {
	list, err := newTestRecordUsecase(NewClinicalVisitMemoryRepository()).ListClinicalVisits(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Dental Records", list.Title)
	assert.Len(t, list.Columns, 5)
	assert.Nil(t, list.Summary)
	require.Len(t, list.Rows, 3)

	wantTreatments := []string{"Root Canal Treatment", "Teeth Whitening", "Dental Cleaning"}
	for i, row := range list.Rows {
		assert.Equal(t, i+1, row.Key)
		assert.Equal(t, wantTreatments[i], row.Cell(ColumnTreatment))
		assert.Equal(t, "Dr. Sarah Johnson", row.Cell(ColumnDentist))
		assert.Nil(t, row.Status, "visits have no derived status")
	}
	assert.Equal(t, "2024-12-10", list.Rows[0].Cell(ColumnDate), "dates pass through unchanged")
}

func TestRecordUsecase_ListClinicalVisitsErrors(t *testing.T) {
	t.Run("Deadline passes through", func(t *testing.T) {
		repository := new(MockClinicalVisitRepository)
		repository.On("FindAll", mock.Anything).Return(nil, context.DeadlineExceeded)

		_, err := newTestRecordUsecase(repository).ListClinicalVisits(context.Background())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Repository failures are wrapped", func(t *testing.T) {
		repository := new(MockClinicalVisitRepository)
		repository.On("FindAll", mock.Anything).Return(nil, errors.New("source unavailable"))

		_, err := newTestRecordUsecase(repository).ListClinicalVisits(context.Background())

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	})
}

func TestRecordUsecase_ExportClinicalVisits(t *testing.T) {
	uc := newTestRecordUsecase(NewClinicalVisitMemoryRepository())

	t.Run("JSON", func(t *testing.T) {
		document, err := uc.ExportClinicalVisits(context.Background(), "json")
		require.NoError(t, err)

		assert.Equal(t, "dental_records_2025-01-20.json", document.FileName)

		var rows []ClinicalVisitExportRow
		require.NoError(t, json.Unmarshal(document.Body, &rows))
		require.Len(t, rows, 3)
		assert.Equal(t, "Root Canal Treatment", rows[0].Treatment)
		assert.Equal(t, "Infected tooth #14", rows[0].Diagnosis)
	})

	t.Run("Text", func(t *testing.T) {
		document, err := uc.ExportClinicalVisits(context.Background(), "text")
		require.NoError(t, err)

		body := string(document.Body)
		assert.Contains(t, body, "DENTAL RECORDS EXPORT")
		assert.Contains(t, body, "1. Treatment: Root Canal Treatment")
		assert.Contains(t, body, "   Date: December 10, 2024")
		assert.Contains(t, body, "3. Treatment: Dental Cleaning")
	})

	t.Run("Empty list", func(t *testing.T) {
		repository := new(MockClinicalVisitRepository)
		repository.On("FindAll", mock.Anything).Return([]models.ClinicalVisit{}, nil)

		document, err := newTestRecordUsecase(repository).ExportClinicalVisits(context.Background(), "text")
		require.NoError(t, err)
		assert.Contains(t, string(document.Body), "No records found.")
	})
}
