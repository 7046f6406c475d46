package billings

import (
	"context"
	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/formatter"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBillingRepository struct {
	mock.Mock
}

func (m *MockBillingRepository) FindAll(ctx context.Context) ([]models.Billing, error) {
	args := m.Called(ctx)
	billings, _ := args.Get(0).([]models.Billing)
	return billings, args.Error(1)
}

func newTestBillingUsecase(repository BillingRepository) *billingUsecase {
	internalConfig := &config.InternalConfig{App: config.App{CurrencyLabel: "PHP"}}
	uc := NewBillingUsecase(repository, formatter.MustNewFormatter("en-US"), internalConfig).(*billingUsecase)
	uc.Now = func() time.Time { return time.Date(2025, time.January, 20, 8, 0, 0, 0, time.UTC) }
	return uc
}

func TestBillingUsecase_ListBillings(t *testing.T) {
	uc := newTestBillingUsecase(NewBillingMemoryRepository())

	list, err := uc.ListBillings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Billing", list.Title)
	headers := make([]string, len(list.Columns))
	for i, column := range list.Columns {
		headers[i] = column.Header
	}
	assert.Equal(t, []string{"Patient", "Description", "Amount (PHP)", "Date", "Status"}, headers)

	require.Len(t, list.Rows, 2)

	first, second := list.Rows[0], list.Rows[1]
	assert.Equal(t, 1, first.Key)
	assert.Equal(t, "John Doe", first.Cell(ColumnPatient))
	assert.Equal(t, "Root Canal Treatment", first.Cell(ColumnDescription))
	assert.Equal(t, "15,000", first.Cell(ColumnAmount))
	assert.Equal(t, "2025-01-15", first.Cell(ColumnDate))
	assert.Equal(t, "Pending", first.Cell(ColumnStatus))
	require.NotNil(t, first.Status)
	assert.Equal(t, "warning", first.Status.Tone)

	assert.Equal(t, 2, second.Key)
	assert.Equal(t, "Jane Smith", second.Cell(ColumnPatient))
	assert.Equal(t, "8,000", second.Cell(ColumnAmount))
	assert.Equal(t, "Paid", second.Cell(ColumnStatus))
	require.NotNil(t, second.Status)
	assert.Equal(t, "success", second.Status.Tone)

	require.NotNil(t, list.Summary)
	assert.Equal(t, 2, list.Summary.Total)
	assert.Equal(t, 1, list.Summary.Paid)
	assert.Equal(t, 1, list.Summary.Pending)
	assert.Equal(t, "15,000", list.Summary.OutstandingAmount)
}

func TestBillingUsecase_ListBillingsEmpty(t *testing.T) {
	repository := new(MockBillingRepository)
	repository.On("FindAll", mock.Anything).Return([]models.Billing{}, nil)

	list, err := newTestBillingUsecase(repository).ListBillings(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, list.Rows)
	assert.Empty(t, list.Rows)
	assert.Len(t, list.Columns, 5)
	assert.Equal(t, 0, list.Summary.Total)
	assert.Equal(t, "0", list.Summary.OutstandingAmount)
	repository.AssertExpectations(t)
}

func TestBillingUsecase_ListBillingsErrors(t *testing.T) {
	t.Run("Context errors pass through", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newTestBillingUsecase(NewBillingMemoryRepository()).ListBillings(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Repository failures are wrapped", func(t *testing.T) {
		repository := new(MockBillingRepository)
		repository.On("FindAll", mock.Anything).Return(nil, errors.New("source unavailable"))

		_, err := newTestBillingUsecase(repository).ListBillings(context.Background())

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "source unavailable")
	})
}

func TestBillingUsecase_ExportBillings(t *testing.T) {
	uc := newTestBillingUsecase(NewBillingMemoryRepository())

	t.Run("CSV", func(t *testing.T) {
		document, err := uc.ExportBillings(context.Background(), "csv")
		require.NoError(t, err)

		assert.Equal(t, "billings_2025-01-20.csv", document.FileName)
		lines := strings.Split(strings.TrimSpace(string(document.Body)), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Patient,Description,Amount,Date,Status", lines[0])
		assert.Equal(t, `John Doe,Root Canal Treatment,"15,000",2025-01-15,Pending`, lines[1])
		assert.Equal(t, `Jane Smith,Teeth Whitening,"8,000",2025-01-10,Paid`, lines[2])
	})

	t.Run("Text", func(t *testing.T) {
		document, err := uc.ExportBillings(context.Background(), "text")
		require.NoError(t, err)

		body := string(document.Body)
		assert.Contains(t, body, "BILLING EXPORT")
		assert.Contains(t, body, "1. Patient: John Doe")
		assert.Contains(t, body, "   Amount (PHP): 15,000")
		assert.Contains(t, body, "   Date: January 15, 2025")
		assert.Contains(t, body, "   Status: Pending")
		assert.Contains(t, body, "2. Patient: Jane Smith")
	})

	t.Run("Unsupported format", func(t *testing.T) {
		_, err := uc.ExportBillings(context.Background(), "pdf")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	})
}

func TestBillingMemoryRepository_ReturnsFreshList(t *testing.T) {
	repository := NewBillingMemoryRepository()

	first, err := repository.FindAll(context.Background())
	require.NoError(t, err)
	first[0].Patient = "changed"

	second, err := repository.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", second[0].Patient)
}
