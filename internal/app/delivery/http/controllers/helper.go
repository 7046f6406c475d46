package controllers

import (
	"context"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func requestIDFromContext(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func withRequestTimeout(r *http.Request, seconds int) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(seconds)*time.Second)
}

// asUsecaseError maps context failures onto the gateway timeout error and
// leaves everything else untouched.
func asUsecaseError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return err
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, requestID, operation string, err error) {
	log.Error("Error in "+operation,
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	utils.BuildErrorResponse(log, w, asUsecaseError(err))
}
