package utils

import (
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildFileResponse writes body as a download named fileName.
func BuildFileResponse(w http.ResponseWriter, contentType, fileName string, body []byte) {
	w.Header().Set(constvars.HeaderContentType, contentType)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf(constvars.AttachmentContentDispositionFormat, fileName))
	w.Header().Set(constvars.HeaderXContentTypeOpts, "nosniff")
	w.WriteHeader(constvars.StatusOK)
	w.Write(body)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, clientMessage, customErr := resolveError(log, err)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if customErr != nil && appEnvironment != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	json.NewEncoder(w).Encode(response)
}

// BuildHTMLErrorResponse is the page counterpart of BuildErrorResponse; the
// body is plain text so it never depends on the template set that failed.
func BuildHTMLErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, clientMessage, _ := resolveError(log, err)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
	w.WriteHeader(code)
	w.Write([]byte(clientMessage))
}

func resolveError(log *zap.Logger, err error) (int, string, *exceptions.CustomError) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String("file", location.File),
				zap.Int("line", location.Line),
				zap.String("function_name", location.FunctionName),
			)
		}
		return code, clientMessage, customErr
	}

	log.Error(err.Error())
	return code, clientMessage, nil
}
