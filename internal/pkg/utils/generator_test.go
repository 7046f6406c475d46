package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	_, err := uuid.Parse(first)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestGenerateExportFileName(t *testing.T) {
	now := time.Date(2025, time.January, 15, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "billings_2025-01-15.csv", GenerateExportFileName("billings", "csv", now))
	assert.Equal(t, "dental_records_2025-01-15.txt", GenerateExportFileName("dental_records", "txt", now))
}
