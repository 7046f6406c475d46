package controllers

import (
	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/services/core/records"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/requests"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/utils"
	"net/http"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

type RecordController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	RecordUsecase  records.RecordUsecase
}

func NewRecordController(logger *zap.Logger, internalConfig *config.InternalConfig, recordUsecase records.RecordUsecase) *RecordController {
	return &RecordController{
		Log:            logger,
		InternalConfig: internalConfig,
		RecordUsecase:  recordUsecase,
	}
}

func (ctrl *RecordController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromContext(r)
	ctrl.Log.Info("RecordController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	response, err := ctrl.RecordUsecase.ListClinicalVisits(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, requestID, "RecordUsecase.ListClinicalVisits", err)
		return
	}

	ctrl.Log.Info("RecordController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response.Rows)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicalVisitsSuccessMessage, response)
}

func (ctrl *RecordController) Export(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromContext(r)

	request := requests.ExportRecords{
		Format: r.URL.Query().Get(constvars.URLQueryParamFormat),
	}
	ctrl.Log.Info("RecordController.Export called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormatKey, request.Format))

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RecordController.Export invalid export request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	document, err := ctrl.RecordUsecase.ExportClinicalVisits(ctx, request.Format)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, requestID, "RecordUsecase.ExportClinicalVisits", err)
		return
	}

	ctrl.Log.Info("RecordController.Export succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, document.FileName),
		zap.String(constvars.LoggingSizeKey, humanize.Bytes(uint64(len(document.Body)))))
	utils.BuildFileResponse(w, document.ContentType, document.FileName, document.Body)
}
