package controllers

import (
	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/services/core/billings"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/requests"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/utils"
	"net/http"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

type BillingController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	BillingUsecase billings.BillingUsecase
}

func NewBillingController(logger *zap.Logger, internalConfig *config.InternalConfig, billingUsecase billings.BillingUsecase) *BillingController {
	return &BillingController{
		Log:            logger,
		InternalConfig: internalConfig,
		BillingUsecase: billingUsecase,
	}
}

func (ctrl *BillingController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromContext(r)
	ctrl.Log.Info("BillingController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	response, err := ctrl.BillingUsecase.ListBillings(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, requestID, "BillingUsecase.ListBillings", err)
		return
	}

	ctrl.Log.Info("BillingController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response.Rows)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBillingsSuccessMessage, response)
}

func (ctrl *BillingController) Export(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromContext(r)

	request := requests.ExportRecords{
		Format: r.URL.Query().Get(constvars.URLQueryParamFormat),
	}
	ctrl.Log.Info("BillingController.Export called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormatKey, request.Format))

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("BillingController.Export invalid export request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	document, err := ctrl.BillingUsecase.ExportBillings(ctx, request.Format)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, requestID, "BillingUsecase.ExportBillings", err)
		return
	}

	ctrl.Log.Info("BillingController.Export succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, document.FileName),
		zap.String(constvars.LoggingSizeKey, humanize.Bytes(uint64(len(document.Body)))))
	utils.BuildFileResponse(w, document.ContentType, document.FileName, document.Body)
}
