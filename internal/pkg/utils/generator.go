package utils

import (
	"dentalclinic-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateExportFileName builds names like billings_2025-01-15.csv.
func GenerateExportFileName(prefix, fileExtension string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format(constvars.ExportFileDateFormat), fileExtension)
}
