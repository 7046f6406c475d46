package cli

import (
	"bytes"
	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/services/core/billings"
	"dentalclinic-service/internal/app/services/core/records"
	"dentalclinic-service/internal/pkg/formatter"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var logs bytes.Buffer
	log := logrus.New()
	log.SetOutput(&logs)

	internalConfig := &config.InternalConfig{App: config.App{CurrencyLabel: "PHP"}}
	billingUsecase := billings.NewBillingUsecase(billings.NewBillingMemoryRepository(), formatter.MustNewFormatter("en-US"), internalConfig)
	recordUsecase := records.NewRecordUsecase(records.NewClinicalVisitMemoryRepository())

	var out bytes.Buffer
	cmd := NewRootCommand(log, billingUsecase, recordUsecase)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), logs.String(), err
}

func TestBillingCommand_DefaultTable(t *testing.T) {
	out, logs, err := runCommand(t, "billing")
	require.NoError(t, err)

	assert.Contains(t, out, "Amount (PHP)")
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "15,000")
	assert.Contains(t, out, "Pending")
	assert.Contains(t, logs, "Export written")
	assert.Contains(t, logs, "format=table")
}

func TestRecordsCommand_Text(t *testing.T) {
	out, _, err := runCommand(t, "records", "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "DENTAL RECORDS EXPORT")
	assert.Contains(t, out, "Date: December 10, 2024")
}

func TestBillingCommand_WritesOutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "billings.csv")

	out, logs, err := runCommand(t, "billing", "-f", "csv", "-o", target)
	require.NoError(t, err)

	assert.Empty(t, out)
	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(written), `Jane Smith,Teeth Whitening,"8,000",2025-01-10,Paid`)
	assert.Contains(t, logs, "billings.csv")
	assert.Contains(t, logs, " B")
}

func TestBillingCommand_RejectsUnknownFormat(t *testing.T) {
	_, _, err := runCommand(t, "billing", "--format", "pdf")

	require.Error(t, err)
	assert.Equal(t, "format must be one of [csv, json, text, table]", err.Error())
}
